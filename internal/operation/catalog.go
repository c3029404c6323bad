package operation

import "time"

// CatalogVersion is bumped whenever a Name is added, removed or changes meaning.
const CatalogVersion = "v1"

// Definition describes one whitelisted operation.
type Definition struct {
	Name        Name           `json:"name"`
	Description string         `json:"description"`
	Kind        Kind           `json:"kind"`
	Cacheable   bool           `json:"cacheable"`
	TTL         time.Duration  `json:"ttl,omitempty"` // zero means the cache default
	Parameters  map[string]any `json:"parameters,omitempty"`
}

var catalog = []Definition{
	{
		Name:        GetActiveProjects,
		Description: "Lista as obras em andamento do usuário",
		Kind:        KindRead,
		Cacheable:   true,
	},
	{
		Name:        ListProjects,
		Description: "Lista todas as obras do usuário",
		Kind:        KindRead,
		Cacheable:   true,
	},
	{
		Name:        GetFinishedProjects,
		Description: "Lista as obras finalizadas do usuário",
		Kind:        KindRead,
		Cacheable:   true,
	},
	{
		Name:        GetProjectCosts,
		Description: "Soma os custos lançados por obra",
		Kind:        KindRead,
		Cacheable:   true,
		Parameters: objectSchema(nil, map[string]any{
			"project_id": stringProp("ID da obra (opcional)"),
		}),
	},
	{
		Name:        ListSuppliers,
		Description: "Lista os fornecedores ativos do usuário",
		Kind:        KindRead,
		Cacheable:   true,
		TTL:         15 * time.Minute,
	},
	{
		Name:        CreateProject,
		Description: "Cadastra uma nova obra",
		Kind:        KindWrite,
		Parameters: objectSchema([]string{"name", "owner"}, map[string]any{
			"name":          stringProp("Nome da obra"),
			"owner":         stringProp("Responsável"),
			"client":        stringProp("Cliente"),
			"status":        enumProp("Status", StatusInProgress, StatusPaused, StatusFinished),
			"start_date":    stringProp("Data de início (YYYY-MM-DD)"),
			"end_date":      stringProp("Data de término (YYYY-MM-DD)"),
			"address":       stringProp("Endereço"),
			"building_size": stringProp("Tamanho da obra"),
			"land_size":     stringProp("Tamanho do terreno"),
		}),
	},
	{
		Name:        CreateSupplier,
		Description: "Cadastra um novo fornecedor",
		Kind:        KindWrite,
		Parameters: objectSchema([]string{"name"}, map[string]any{
			"name":     stringProp("Nome do fornecedor"),
			"document": stringProp("CNPJ/CPF"),
			"email":    stringProp("E-mail"),
			"phone":    stringProp("Telefone"),
			"category": stringProp("Categoria"),
		}),
	},
	{
		Name:        UpdateProjectStatus,
		Description: "Altera o status de uma obra",
		Kind:        KindWrite,
		Parameters: objectSchema([]string{"project_id", "status"}, map[string]any{
			"project_id": stringProp("ID da obra"),
			"status":     enumProp("Novo status", StatusInProgress, StatusPaused, StatusFinished),
		}),
	},
}

var byName = func() map[Name]Definition {
	m := make(map[Name]Definition, len(catalog))
	for _, d := range catalog {
		m[d.Name] = d
	}
	return m
}()

// Catalog returns a copy of every whitelisted operation in registration order.
func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

// Names returns the whitelisted names in registration order.
func Names() []Name {
	out := make([]Name, len(catalog))
	for i, d := range catalog {
		out[i] = d.Name
	}
	return out
}

// Lookup returns the definition for name.
func Lookup(name Name) (Definition, bool) {
	d, ok := byName[name]
	return d, ok
}

// Known reports whether name is whitelisted.
func Known(name Name) bool {
	_, ok := byName[name]
	return ok
}

func objectSchema(required []string, props map[string]any) map[string]any {
	s := map[string]any{
		"type":                 "object",
		"properties":           props,
		"additionalProperties": false,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

func stringProp(desc string) map[string]any {
	return map[string]any{"type": "string", "description": desc}
}

func enumProp(desc string, values ...ProjectStatus) map[string]any {
	enum := make([]string, len(values))
	for i, v := range values {
		enum[i] = string(v)
	}
	return map[string]any{"type": "string", "description": desc, "enum": enum}
}
