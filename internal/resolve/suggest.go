package resolve

import (
	"chartref/internal/chart"
	"chartref/internal/match"
)

// Suggest returns up to n field names of b closest to an unresolved name.
func Suggest(b chart.Binding, name string, n int) []string {
	if b == nil || n <= 0 {
		return nil
	}

	names := chart.Names(chart.DesignFields(b))
	names = append(names, chart.Names(chart.RuntimeFields(b))...)

	return match.RankNames(name, names, match.DefaultMinScore).Top(n)
}
