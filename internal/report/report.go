package report

import (
	"fmt"

	"chartref/internal/chart"
	"chartref/internal/diagnostic"
	"chartref/internal/match"
	"chartref/internal/resolve"
)

// maxSuggestions bounds the names proposed for an unresolved column.
const maxSuggestions = 3

// Row is the resolution outcome of one rendered column.
type Row struct {
	Column   string       `json:"column"`
	Base     string       `json:"base"`
	Derived  string       `json:"derived"`
	Resolved bool         `json:"resolved"`
	Field    string       `json:"field,omitempty"`
	Kind     string       `json:"kind,omitempty"`
	Source   string       `json:"source,omitempty"`
	Identity string       `json:"identity,omitempty"`
	Scope    string       `json:"scope,omitempty"`
	Step     resolve.Step `json:"step"`
	Suggest  []string     `json:"suggestions,omitempty"`
}

// Resolve resolves every column against b with r. Unresolved columns are
// reported as warnings carrying the closest field names.
func Resolve(r *resolve.Resolver, b chart.Binding, columns []string, opts resolve.Options) ([]Row, *diagnostic.Diagnostics) {
	diags := &diagnostic.Diagnostics{}
	rows := make([]Row, 0, len(columns))

	for _, column := range columns {
		ref, kind, ok := r.ResolveColumn(b, column, opts)
		base, _ := match.Normalize(column)

		row := Row{
			Column:   column,
			Base:     base,
			Derived:  kind.String(),
			Resolved: ok,
		}

		if !ok {
			row.Suggest = resolve.Suggest(b, base, maxSuggestions)
			diags.AddWarningWithSuggestions("unresolved_column",
				fmt.Sprintf("no field matches %q", base), column, row.Suggest)
			rows = append(rows, row)

			continue
		}

		row.Field = ref.Field.FullName()
		row.Kind = ref.Field.Kind().String()
		row.Source = ref.Source.FullName()
		row.Identity = ref.Identity
		row.Scope = ref.Scope.String()
		row.Step = ref.Step

		if ref.Reconciled() {
			diags.AddInfo("reconciled_runtime",
				fmt.Sprintf("runtime field %s traced to %s", row.Field, row.Source), column, row.Field)
		}

		rows = append(rows, row)
	}

	return rows, diags
}
