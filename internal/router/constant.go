package router

// Log prefixes
const (
	LogPrefixRoute = "internal.router.Route"
)

// Estimation
const (
	TokensPerWord          = 1.3
	SystemPromptOverhead   = 500
	InputOutputFactor      = 2
	DefaultCostPer1KTokens = 0.01
)

// Default models per tier.
const (
	ModelGeminiFlash  = "google/gemini-flash-1.5"
	ModelLlama3       = "meta-llama/llama-3-8b-instruct"
	ModelClaudeHaiku  = "anthropic/claude-3-haiku"
	ModelGPT35        = "openai/gpt-3.5-turbo"
	ModelClaudeSonnet = "anthropic/claude-3-sonnet"
	ModelGPT4Turbo    = "openai/gpt-4-turbo"
	ModelClaudeOpus   = "anthropic/claude-3-opus"
)

// Rationales
const (
	RationaleDirect   = "Consulta direta ao banco - sem necessidade de LLM"
	RationaleSimple   = "Consulta simples - modelo econômico"
	RationaleModerate = "Análise moderada - modelo balanceado"
	RationaleComplex  = "Query complexa - modelo avançado"
	RationaleCreative = "Geração criativa - modelo premium"
	RationaleCheap    = "dado pré-agregado disponível - modelo econômico"
)

// directQueries are answered from storage without a model.
var directQueries = []string{
	"obras ativas",
	"fornecedores ativos",
	"total de gastos",
	"lançamentos pendentes",
	"obras concluídas",
}

// cheapKeywords point at precomputed aggregates and force the cheapest model.
var cheapKeywords = []string{
	"dashboard",
	"resumo",
	"fluxo de caixa",
	"comparar obras",
	"top fornecedores",
}

var complexPatterns = []string{
	`relat[oó]rio`,
	`dashboard`,
	`proje[cç][aã]o`,
	`tend[eê]ncia`,
	`otimiza[rç]?`,
	`sugerir?`,
	`melhor\s+estrat[eé]gia`,
}

var moderatePatterns = []string{
	`analis[ae]r?`,
	`calcular?`,
	`total\s+de`,
	`m[eé]dia\s+de`,
	`resumo\s+de`,
	`comparar?`,
}

var simplePatterns = []string{
	`listar?`,
	`mostrar?`,
	`quais\s+s[aã]o`,
	`quantos?`,
	`status\s+de`,
	`informa[cç][oõ]es\s+sobre`,
}

// costPer1K is the USD price per 1000 tokens of each known model.
var costPer1K = map[string]float64{
	ModelGeminiFlash:  0.00025,
	ModelLlama3:       0.00018,
	ModelClaudeHaiku:  0.0025,
	ModelGPT35:        0.002,
	ModelClaudeSonnet: 0.015,
	ModelGPT4Turbo:    0.03,
	ModelClaudeOpus:   0.075,
}
