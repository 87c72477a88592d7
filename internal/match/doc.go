// Package match provides rendered-column name normalization, Levenshtein
// distance calculation and name ranking for unresolved columns.
//
// Key functions:
//   - Normalize: strips synthetic prefixes from a rendered column identifier
//   - Levenshtein: computes edit distance between strings
//   - RankNames: ranks known field names by similarity to an unresolved one
package match
