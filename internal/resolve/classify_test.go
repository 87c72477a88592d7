package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chartref/internal/chart"
)

func TestClassifyAnnotationScope(t *testing.T) {
	sales := agg("Sales", "Sum")
	region := dim("Region")
	state := geo("State")

	tests := []struct {
		name     string
		binding  chart.Binding
		field    chart.Field
		expected Scope
	}{
		{"absent field", &chart.Cartesian{}, nil, ScopeChartLevel},
		{"typed nil field", &chart.Merged{}, (*chart.Aggregate)(nil), ScopeChartLevel},

		{"cartesian aggregate", &chart.Cartesian{}, sales, ScopeFieldLevel},
		{"cartesian dimension", &chart.Cartesian{}, region, ScopeFieldLevel},

		{"merged aggregate", &chart.Merged{}, sales, ScopeChartLevel},
		{"merged dimension", &chart.Merged{}, region, ScopeFieldLevel},

		{"map aggregate", &chart.Map{}, sales, ScopeChartLevel},
		{"map dimension", &chart.Map{}, region, ScopeChartLevel},
		{"map geo", &chart.Map{}, state, ScopeChartLevel},

		{"candlestick aggregate", &chart.Candlestick{}, sales, ScopeChartLevel},
		{"relation aggregate", &chart.Relation{}, sales, ScopeChartLevel},
		{"relation dimension", &chart.Relation{}, region, ScopeFieldLevel},
		{"treemap aggregate", &chart.Treemap{}, sales, ScopeChartLevel},

		{"radar aggregate", &chart.Radar{}, sales, ScopeFieldLevel},
		{"gantt aggregate", &chart.Gantt{}, sales, ScopeFieldLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := ClassifyAnnotationScope(tt.binding, tt.field)
			second := ClassifyAnnotationScope(tt.binding, tt.field)

			assert.Equal(t, tt.expected, first)
			assert.Equal(t, first, second)
		})
	}
}

func TestClassifyNilBinding(t *testing.T) {
	assert.Equal(t, ScopeChartLevel, ClassifyAnnotationScope(nil, agg("Sales", "")))
}

func TestResolvedReferenceCarriesScope(t *testing.T) {
	sales := agg("Sales", "Sum")
	b := &chart.Merged{Common: chart.Common{X: fields(dim("Region")), Y: fields(sales)}}

	ref, ok := New(nil).Resolve(b, "Sum(Sales)", DefaultOptions())
	assert.True(t, ok)
	assert.Equal(t, ScopeChartLevel, ref.Scope)

	ref, ok = New(nil).Resolve(b, "Region", DefaultOptions())
	assert.True(t, ok)
	assert.Equal(t, ScopeFieldLevel, ref.Scope)
}
