package resolve

import "chartref/internal/chart"

// ClassifyAnnotationScope decides where an annotation on f is stored.
// Annotations are chart-level when f is absent, or when the chart shares its
// aesthetics across measures (except radar and gantt) and f is an aggregate
// or the chart is a map. Every other annotation attaches to f itself.
func ClassifyAnnotationScope(b chart.Binding, f chart.Field) Scope {
	if b == nil || chart.IsNil(f) {
		return ScopeChartLevel
	}

	family := b.Family()
	if chart.IsMerged(b) &&
		family != chart.FamilyRadar &&
		family != chart.FamilyGantt &&
		(chart.IsAggregate(f) || family == chart.FamilyMap) {
		return ScopeChartLevel
	}

	return ScopeFieldLevel
}
