// Package resolve maps rendered column identifiers back to the logical chart
// fields they came from, and decides where annotations on them are stored.
//
// Resolution pipeline (first matching rule wins):
//  1. Reject absent names and scatter-matrix charts
//  2. Date-comparison fields (exclusive override)
//  3. Text aesthetic (text requests and word clouds)
//  4. X+Y axes only, when the caller asked for an axis field (strict)
//  5. Family structural fields: treemap groups, relation target/source,
//     gantt start/end/milestone
//  6. Full field table, design time then runtime; runtime period parts are
//     left to step 7
//  7. Period-part fallback
//  8. Runtime dimensions are traced to their design-time counterpart by
//     group-column key; the result carries that canonical identity
//
// ClassifyAnnotationScope and OuterReferences are the companions used by the
// highlight and hyperlink collaborators.
package resolve
