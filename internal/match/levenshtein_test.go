package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		// Identical strings
		{"", "", 0},
		{"a", "a", 0},
		{"hello", "hello", 0},

		// Empty vs non-empty
		{"", "abc", 3},
		{"abc", "", 3},

		// Single character operations
		{"a", "b", 1},    // substitution
		{"a", "ab", 1},   // insertion
		{"ab", "a", 1},   // deletion
		{"abc", "ab", 1}, // deletion
		{"ab", "abc", 1}, // insertion

		// Multiple operations
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"algorithm", "altruistic", 6},

		// Case-sensitive
		{"ABC", "abc", 3},
		{"Hello", "hello", 1},

		// Field name examples
		{"sales", "sales", 0},
		{"Sum(Sales)", "Sum(sales)", 1}, // case difference
		{"region", "regions", 1},
		{"quantity", "quality", 2},

		// Multi-byte column names count runes
		{"Umsatz", "Umsätze", 2},
		{"売上", "売上高", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := Levenshtein(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}

			// Verify symmetry
			resultReverse := Levenshtein(tt.b, tt.a)
			if result != resultReverse {
				t.Errorf("Levenshtein symmetry failed: (%q, %q) = %d, (%q, %q) = %d",
					tt.a, tt.b, result, tt.b, tt.a, resultReverse)
			}
		})
	}
}

func TestLevenshteinNormalized(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected float64
	}{
		// Identical strings
		{"", "", 1.0},
		{"hello", "hello", 1.0},

		// Completely different
		{"abc", "xyz", 0.0},

		// Partial matches
		{"kitten", "sitting", 1.0 - 3.0/7.0}, // ~0.571
		{"abc", "ab", 1.0 - 1.0/3.0},         // ~0.667
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := LevenshteinNormalized(tt.a, tt.b)
			// Allow small floating point tolerance
			if diff := result - tt.expected; diff < -0.001 || diff > 0.001 {
				t.Errorf("LevenshteinNormalized(%q, %q) = %f, want %f", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestNormalizedLevenshteinScore(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		minScore float64 // minimum expected score
	}{
		// Exact match after normalization
		{"Sum(Sales)", "sum_sales", 1.0},
		{"order_date", "OrderDate", 1.0},
		{"Year(OrderDate)", "year order-date", 1.0},

		// Similar names
		{"OrderDate", "OrderData", 0.8},
		{"Profit", "Profits", 0.8},

		// Different names
		{"Region", "Quantity", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := NormalizedLevenshteinScore(tt.a, tt.b)
			if result < tt.minScore {
				t.Errorf("NormalizedLevenshteinScore(%q, %q) = %f, want >= %f",
					tt.a, tt.b, result, tt.minScore)
			}
		})
	}
}

func TestNormalizedLevenshteinScoreWrappers(t *testing.T) {
	// Same column under a different aggregation
	folded := LevenshteinNormalized(NormalizeIdent("Avg(Sales)"), NormalizeIdent("Sum(Sales)"))
	assert.InDelta(t, 0.75, NormalizedLevenshteinScore("Avg(Sales)", "Sum(Sales)"), 0.001)
	assert.Greater(t, NormalizedLevenshteinScore("Avg(Sales)", "Sum(Sales)"), folded)

	// Same wrapper, unrelated column
	assert.Less(t, NormalizedLevenshteinScore("Sum(Sales)", "Sum(Quantity)"), DefaultMinScore)

	// Undecorated names only use the folded comparison
	assert.InDelta(t,
		LevenshteinNormalized("saleamt", "sumsalesamt"),
		NormalizedLevenshteinScore("SaleAmt", "Sum(SalesAmt)"), 0.001)
}

func TestSplitDecorated(t *testing.T) {
	wrapper, column, ok := splitDecorated("Year(OrderDate)")
	assert.True(t, ok)
	assert.Equal(t, "Year", wrapper)
	assert.Equal(t, "OrderDate", column)

	for _, name := range []string{"Region", "(Sales)", "Sum()", "Sum(Sales"} {
		_, _, ok := splitDecorated(name)
		assert.False(t, ok, name)
	}
}

func TestLevenshteinNormalizedRunes(t *testing.T) {
	assert.InDelta(t, 1.0-1.0/3.0, LevenshteinNormalized("売上", "売上高"), 0.001)
}

// Benchmark tests
func BenchmarkLevenshtein(b *testing.B) {
	a := "algorithm"
	bStr := "altruistic"
	for i := 0; i < b.N; i++ {
		Levenshtein(a, bStr)
	}
}

func BenchmarkNormalizedLevenshteinScore(b *testing.B) {
	a := "Sum(OrderAmount)"
	bStr := "sum_order_amount"
	for i := 0; i < b.N; i++ {
		NormalizedLevenshteinScore(a, bStr)
	}
}
