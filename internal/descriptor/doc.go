// Package descriptor handles loading, validation, and building of chart
// binding descriptors.
//
// A descriptor is the persisted form of a chart's field bindings. It is YAML
// (JSON is accepted too, being a YAML subset):
//
//	version: "1"
//	family: relation
//	style: default
//	x:
//	  - column: Region
//	y:
//	  - kind: aggregate
//	    column: Sales
//	    formula: Sum
//	relation:
//	  source: {column: From}
//	  target: {column: To}
//
// Field kinds are dimension (default), aggregate and geo. Family sections
// (map, candlestick, relation, gantt) are only valid on their own family.
package descriptor
