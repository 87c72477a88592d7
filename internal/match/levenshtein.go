package match

import "strings"

// columnWeight is the share of a decorated-name score carried by the column.
const columnWeight = 0.75

// Levenshtein returns the edit distance between a and b counted in runes.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	src, dst := []rune(a), []rune(b)
	if len(src) < len(dst) {
		src, dst = dst, src
	}

	if len(dst) == 0 {
		return len(src)
	}

	// row[j] holds the distance between the consumed prefix of src and dst[:j].
	row := make([]int, len(dst)+1)
	for j := range row {
		row[j] = j
	}

	for i, sr := range src {
		diag := row[0]
		row[0] = i + 1

		for j, dr := range dst {
			above := row[j+1]

			best := diag
			if sr != dr {
				best = min(diag, above, row[j]) + 1
			}

			row[j+1] = best
			diag = above
		}
	}

	return row[len(dst)]
}

// LevenshteinNormalized maps the edit distance onto [0, 1], where 1 means equal.
func LevenshteinNormalized(a, b string) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1.0
	}

	return 1.0 - float64(Levenshtein(a, b))/float64(longest)
}

// NormalizedLevenshteinScore scores two field names after folding case and
// separators. When both names carry a wrapper such as Sum(Sales) or
// Year(OrderDate), the column and the wrapper are also scored apart so that
// Avg(Sales) stays close to Sum(Sales); the better of the two scores wins.
func NormalizedLevenshteinScore(a, b string) float64 {
	score := LevenshteinNormalized(NormalizeIdent(a), NormalizeIdent(b))

	wrapA, colA, okA := splitDecorated(a)
	wrapB, colB, okB := splitDecorated(b)

	if !okA || !okB {
		return score
	}

	column := LevenshteinNormalized(NormalizeIdent(colA), NormalizeIdent(colB))
	wrapper := LevenshteinNormalized(NormalizeIdent(wrapA), NormalizeIdent(wrapB))

	return max(score, columnWeight*column+(1-columnWeight)*wrapper)
}

// splitDecorated splits "Wrapper(Column)" into its wrapper and column.
func splitDecorated(name string) (wrapper, column string, ok bool) {
	open := strings.IndexByte(name, '(')
	if open <= 0 || !strings.HasSuffix(name, ")") {
		return "", "", false
	}

	column = name[open+1 : len(name)-1]
	if column == "" {
		return "", "", false
	}

	return name[:open], column, true
}
