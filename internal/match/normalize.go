package match

import (
	"strings"

	"chartref/internal/common"
)

// Prefixes the rendering layer uses to tag derived columns.
const (
	AllSeriesPrefix = "__all__"

	MaxPrefix    = "max_"
	MedianPrefix = "median_"
	MinPrefix    = "min_"
	Q25Prefix    = "q25_"
	Q75Prefix    = "q75_"
)

// Statistic identifies the box-plot statistic a derived column carries.
type Statistic int

const (
	StatNone Statistic = iota
	StatMax
	StatMedian
	StatMin
	StatQ25
	StatQ75
)

// String returns a human-readable statistic name.
func (s Statistic) String() string {
	switch s {
	case StatNone:
		return "none"
	case StatMax:
		return "max"
	case StatMedian:
		return "median"
	case StatMin:
		return "min"
	case StatQ25:
		return "q25"
	case StatQ75:
		return "q75"
	default:
		return common.UnknownStr
	}
}

// DerivedKind describes how a rendered column was derived from its base field.
type DerivedKind struct {
	Kind DerivedKindEnum
	// Stat is set only for DerivedBoxplotStatistic.
	Stat Statistic
}

// DerivedKindEnum is the tag of a DerivedKind.
type DerivedKindEnum int

const (
	DerivedNone DerivedKindEnum = iota
	DerivedAllSeriesAggregate
	DerivedBoxplotStatistic
)

// String returns a human-readable derived kind.
func (k DerivedKind) String() string {
	switch k.Kind {
	case DerivedNone:
		return "none"
	case DerivedAllSeriesAggregate:
		return "all-series"
	case DerivedBoxplotStatistic:
		return "boxplot:" + k.Stat.String()
	default:
		return common.UnknownStr
	}
}

// boxplotPrefixes is ordered; no prefix is a prefix of another.
var boxplotPrefixes = []struct {
	prefix string
	stat   Statistic
}{
	{MaxPrefix, StatMax},
	{MedianPrefix, StatMedian},
	{MinPrefix, StatMin},
	{Q25Prefix, StatQ25},
	{Q75Prefix, StatQ75},
}

// Normalize strips the synthetic prefix from a rendered column identifier and
// reports which derivation the prefix denoted. Input without a known prefix
// is returned unchanged with DerivedNone.
func Normalize(raw string) (string, DerivedKind) {
	if base, ok := strings.CutPrefix(raw, AllSeriesPrefix); ok {
		return base, DerivedKind{Kind: DerivedAllSeriesAggregate}
	}

	for _, p := range boxplotPrefixes {
		if base, ok := strings.CutPrefix(raw, p.prefix); ok {
			return base, DerivedKind{Kind: DerivedBoxplotStatistic, Stat: p.stat}
		}
	}

	return raw, DerivedKind{Kind: DerivedNone}
}

// WithPrefix is the inverse of Normalize: it tags base with the prefix of kind.
func WithPrefix(base string, kind DerivedKind) string {
	switch kind.Kind {
	case DerivedAllSeriesAggregate:
		return AllSeriesPrefix + base
	case DerivedBoxplotStatistic:
		for _, p := range boxplotPrefixes {
			if p.stat == kind.Stat {
				return p.prefix + base
			}
		}

		return base
	default:
		return base
	}
}

// NormalizeIdent folds an identifier for fuzzy comparison: lower case with
// separators removed.
func NormalizeIdent(s string) string {
	var result strings.Builder

	result.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		if !isSeparator(r) {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '(' || r == ')'
}
