package annotate

import (
	"chartref/internal/chart"
	"chartref/internal/resolve"
)

// cartesianChart is X=[Year(OrderDate), Region, City], Y=[Sum(Sales)] with a
// runtime Region expansion sharing the region group column.
func cartesianChart() *chart.Cartesian {
	return &chart.Cartesian{Common: chart.Common{
		X: []chart.Field{
			&chart.Dimension{Column: "OrderDate", Level: chart.LevelYear},
			&chart.Dimension{Column: "Region", Group: "region"},
			&chart.Dimension{Column: "City"},
		},
		Y: []chart.Field{&chart.Aggregate{Column: "Sales", Formula: "Sum"}},
		RuntimeFields: []chart.Field{
			&chart.Dimension{Column: "Region_1", Group: "region", Runtime: true},
		},
	}}
}

func mergedChart() *chart.Merged {
	return &chart.Merged{Common: chart.Common{
		X: []chart.Field{&chart.Dimension{Column: "Region"}},
		Y: []chart.Field{
			&chart.Aggregate{Column: "Sales", Formula: "Sum"},
			&chart.Aggregate{Column: "Profit", Formula: "Sum"},
		},
	}}
}

func services(b chart.Binding) (*Registry, *HighlightService, *HyperlinkService) {
	reg := NewRegistry()
	reg.Put("doc", b)

	r := resolve.New(nil)

	return reg, NewHighlightService(reg, r, nil), NewHyperlinkService(reg, r, nil)
}

func col(name string) Target {
	return Target{Column: name}
}
