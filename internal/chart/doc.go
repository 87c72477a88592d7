// Package chart provides the read-only binding model of a chart: the fields
// bound to each role (axes, groups, aesthetics, family-specific roles), the
// runtime fields expanded from dynamic and date-comparison bindings, and
// lookup helpers over them.
//
// Key types:
//   - Field: sealed union of *Dimension, *Aggregate and *GeoDimension
//   - Binding: sealed union with one struct per chart family
//   - Common: field roles shared by every family
package chart
