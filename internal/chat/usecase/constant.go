package usecase

// Log prefixes
const (
	LogPrefixDispatch = "internal.chat.usecase.Dispatch"
	LogPrefixDelegate = "internal.chat.usecase.delegate"
	LogPrefixCache    = "internal.chat.usecase.cache"
	LogPrefixSettings = "internal.chat.usecase.settings"
)

const MaxMessageLength = 2000

// Response texts
const (
	TextNoOperation      = "Não identifiquei uma operação para sua solicitação. Tente, por exemplo: \"quais obras estão ativas?\""
	TextDirectQuery      = "Essa consulta pode ser respondida diretamente pelos relatórios do sistema."
	TextDelegateDown     = "O assistente de IA está indisponível no momento. Tente novamente mais tarde."
	TextNotFound         = "Registro não encontrado."
	TextGenericFailure   = "Não foi possível concluir a operação."
	TextUnknownOperation = "Operação não permitida."
)
