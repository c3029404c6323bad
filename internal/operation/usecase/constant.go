package usecase

import "time"

// Log prefixes
const (
	LogPrefixCall    = "internal.operation.usecase.call"
	LogPrefixExecute = "internal.operation.usecase.Execute"
)

// User-facing failure messages, one per operation family.
const (
	MsgListProjectsFailed   = "Erro ao buscar obras"
	MsgCreateProjectFailed  = "Erro ao criar obra"
	MsgUpdateStatusFailed   = "Erro ao atualizar status da obra"
	MsgListSuppliersFailed  = "Erro ao buscar fornecedores"
	MsgCreateSupplierFailed = "Erro ao criar fornecedor"
	MsgProjectCostsFailed   = "Erro ao buscar custos das obras"
)

// Validation reasons
const (
	ReasonRequired       = "é obrigatório"
	ReasonStatus         = "deve ser um de: Em andamento, Paralisada, Finalizada"
	ReasonDate           = "deve estar no formato AAAA-MM-DD"
	ReasonUUID           = "deve ser um identificador válido"
	ReasonEmail          = "deve ser um e-mail válido"
	ReasonTooLong        = "excede o tamanho máximo"
	ReasonTooShort       = "é curto demais"
	ReasonInvalid        = "é inválido"
	ReasonEndBeforeStart = "não pode ser anterior à data de início"
	ReasonBadParams      = "parâmetros inválidos"
)

const (
	DefaultTimeout = 5 * time.Second
	DateLayout     = "2006-01-02"
	statusTag      = "project_status"
)
