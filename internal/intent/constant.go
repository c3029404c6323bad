package intent

import "secure-intent-router/internal/operation"

// ruleSet lists the patterns per operation in registration order. Earlier entries win
// when a message matches more than one operation.
var ruleSet = []struct {
	name     operation.Name
	patterns []string
}{
	{operation.GetActiveProjects, []string{
		`obras?\s+ativas?`,
		`obras?\s+(?:que\s+)?(?:est[aã]o\s+)?ativas?`,
		`obras?\s+em\s+andamento`,
		`projetos?\s+ativos?`,
		`obras?\s+andando`,
	}},
	{operation.ListProjects, []string{
		`todas?\s+(?:as\s+)?obras?`,
		`listar?\s+(?:as\s+)?obras?`,
		`minhas?\s+obras?`,
		`todos?\s+(?:os\s+)?projetos?`,
	}},
	{operation.GetFinishedProjects, []string{
		`obras?\s+finalizadas?`,
		`obras?\s+conclu[ií]das?`,
		`projetos?\s+finalizados?`,
	}},
	{operation.GetProjectCosts, []string{
		`custos?\s+(?:da\s+|das\s+)?obras?`,
		`quanto\s+(?:j[aá]\s+)?gast(?:ou|ei|amos)`,
		`valor\s+total\s+(?:da\s+)?obra`,
		`gastos?\s+(?:da\s+|das\s+)?obras?`,
	}},
	{operation.ListSuppliers, []string{
		`listar?\s+(?:os\s+)?fornecedores?`,
		`quais\s+(?:s[aã]o\s+)?(?:os\s+)?(?:meus\s+)?fornecedores?`,
		`(?:meus|os)\s+fornecedores`,
		`fornecedores\s+ativos`,
	}},
	{operation.CreateProject, []string{
		`criar?\s+(?:uma\s+)?(?:nova\s+)?obra`,
		`adicionar?\s+(?:uma\s+)?(?:nova\s+)?obra`,
		`nova\s+obra`,
		`cadastrar?\s+(?:uma\s+)?(?:nova\s+)?obra`,
	}},
	{operation.CreateSupplier, []string{
		`criar?\s+(?:um\s+)?(?:novo\s+)?fornecedor`,
		`adicionar?\s+(?:um\s+)?(?:novo\s+)?fornecedor`,
		`novo\s+fornecedor`,
		`cadastrar?\s+(?:um\s+)?(?:novo\s+)?fornecedor`,
	}},
	{operation.UpdateProjectStatus, []string{
		`(?:mudar|alterar|atualizar)\s+(?:o\s+)?status`,
		`(?:paralisar|finalizar|concluir|retomar)\s+(?:a\s+)?obra`,
	}},
}
