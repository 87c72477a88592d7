package chart

import "chartref/internal/common"

//go:generate go tool stringer -type=Family -trimprefix=Family -output=family_string.go

// Family is the structural kind of a chart; it decides which field roles exist.
type Family int

const (
	// FamilyCartesian is a generic X/Y chart with separated (per-measure) styles.
	FamilyCartesian Family = iota
	// FamilyMerged is an X/Y chart whose measures share one style (stacked).
	FamilyMerged
	FamilyMap
	FamilyCandlestick
	FamilyRelation
	FamilyGantt
	// FamilyRadar is a radar chart with a single measure.
	FamilyRadar
	FamilyTreemap

	// FamilyTotal is the number of families defined.
	FamilyTotal = int(iota)
)

// Style is the rendering style of a chart, orthogonal to its family.
type Style int

const (
	StyleDefault Style = iota
	StyleScatterMatrix
	StyleWordCloud
	StyleBoxplot
)

// String returns a human-readable style name.
func (s Style) String() string {
	switch s {
	case StyleDefault:
		return "default"
	case StyleScatterMatrix:
		return "scatter-matrix"
	case StyleWordCloud:
		return "word-cloud"
	case StyleBoxplot:
		return "boxplot"
	default:
		return common.UnknownStr
	}
}
