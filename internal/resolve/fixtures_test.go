package resolve

import "chartref/internal/chart"

func dim(column string) *chart.Dimension {
	return &chart.Dimension{Column: column}
}

func agg(column, formula string) *chart.Aggregate {
	return &chart.Aggregate{Column: column, Formula: formula}
}

func geo(column string) *chart.GeoDimension {
	return &chart.GeoDimension{Dimension: chart.Dimension{Column: column}, Layer: "state"}
}

func fields(fs ...chart.Field) []chart.Field {
	return fs
}

// salesChart is the generic Cartesian scenario: X=[Region], Y=[SalesAmt].
func salesChart() (*chart.Cartesian, *chart.Dimension, *chart.Aggregate) {
	region := dim("Region")
	sales := agg("SalesAmt", "")

	return &chart.Cartesian{Common: chart.Common{
		X: fields(region),
		Y: fields(sales),
	}}, region, sales
}
