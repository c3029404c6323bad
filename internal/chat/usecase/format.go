package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"secure-intent-router/internal/operation"
)

func formatResult(name operation.Name, data any) string {
	switch v := data.(type) {
	case []operation.Project:
		return formatProjects(name, v)
	case []operation.Supplier:
		return formatSuppliers(v)
	case []operation.ProjectCost:
		return formatCosts(v)
	case operation.Project:
		if name == operation.UpdateProjectStatus {
			return fmt.Sprintf("Status da obra \"%s\" atualizado para %s.", v.Name, v.Status)
		}
		return fmt.Sprintf("Obra \"%s\" criada com sucesso.", v.Name)
	case operation.Supplier:
		return fmt.Sprintf("Fornecedor \"%s\" cadastrado com sucesso.", v.Name)
	}
	return "Operação concluída."
}

func formatProjects(name operation.Name, projects []operation.Project) string {
	label, empty := "obra(s)", "Nenhuma obra encontrada."
	switch name {
	case operation.GetActiveProjects:
		label, empty = "obra(s) em andamento", "Nenhuma obra em andamento encontrada."
	case operation.GetFinishedProjects:
		label, empty = "obra(s) finalizada(s)", "Nenhuma obra finalizada encontrada."
	}
	if len(projects) == 0 {
		return empty
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Você tem %d %s:", len(projects), label)
	for _, p := range projects {
		fmt.Fprintf(&b, "\n- %s (%s)", p.Name, p.Status)
	}
	return b.String()
}

func formatSuppliers(suppliers []operation.Supplier) string {
	if len(suppliers) == 0 {
		return "Nenhum fornecedor ativo encontrado."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Você tem %d fornecedor(es) ativo(s):", len(suppliers))
	for _, s := range suppliers {
		b.WriteString("\n- " + s.Name)
		if s.Category != "" {
			b.WriteString(" (" + s.Category + ")")
		}
	}
	return b.String()
}

func formatCosts(costs []operation.ProjectCost) string {
	if len(costs) == 0 {
		return "Nenhum custo lançado."
	}
	var (
		b     strings.Builder
		total float64
	)
	b.WriteString("Custos por obra:")
	for _, c := range costs {
		total += c.Total
		fmt.Fprintf(&b, "\n- %s: %s (%d lançamento(s))", c.ProjectName, brl(c.Total), c.Entries)
	}
	fmt.Fprintf(&b, "\nTotal: %s", brl(total))
	return b.String()
}

// brl formats v as Brazilian currency, e.g. R$ 1.234,56.
func brl(v float64) string {
	return "R$ " + humanize.FormatFloat("#.###,##", v)
}

// failureText is the user-safe text of a registry error.
func failureText(err error) string {
	var verr *operation.ValidationError
	var opErr *operation.OperationError
	switch {
	case errors.As(err, &verr):
		return "Dados inválidos: " + verr.Error()
	case errors.As(err, &opErr):
		return opErr.Message
	case errors.Is(err, operation.ErrTenantMismatch):
		return TextNotFound
	case errors.Is(err, operation.ErrUnknownOperation):
		return TextUnknownOperation
	}
	return TextGenericFailure
}
