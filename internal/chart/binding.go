package chart

// Binding is the queryable view of one chart's configuration.
// Implementations: *Cartesian, *Merged, *Map, *Candlestick, *Relation,
// *Gantt, *Radar, *Treemap. Family-specific roles exist only on their variant.
type Binding interface {
	Family() Family
	// Base returns the roles shared by every family.
	Base() *Common

	sealed()
}

// Common holds the field roles shared by every chart family.
type Common struct {
	Style Style

	X     []Field
	Y     []Field
	Group []Field
	Path  Field

	// Aesthetics are the chart-level visual bindings.
	Aesthetics Aesthetics
	// MultiAesthetic enables per-series aesthetics keyed by aggregate full name.
	MultiAesthetic   bool
	SeriesAesthetics map[string]Aesthetics

	// RuntimeFields are the fields expanded from dynamic bindings.
	RuntimeFields []Field
	// ComparisonFields are the runtime duplicates produced by date comparison.
	ComparisonFields []Field
	// Period is the active period comparison, if any.
	Period *Period
}

// Base implements Binding.
func (c *Common) Base() *Common { return c }

// TextField returns the text binding for series when multi-aesthetic is on
// and the series has its own text field, the chart-level text field otherwise.
func (c *Common) TextField(series string) Field {
	if c.MultiAesthetic && series != "" {
		if a, ok := c.SeriesAesthetics[series]; ok && !IsNil(a.Text) {
			return a.Text
		}
	}

	return c.Aesthetics.Text
}

// Aesthetics are the visual bindings of a chart or a single series.
type Aesthetics struct {
	Color Field
	Shape Field
	Size  Field
	Text  Field
}

// Fields returns the bound aesthetic fields in color, shape, size, text order.
func (a Aesthetics) Fields() []Field {
	return nonNil(a.Color, a.Shape, a.Size, a.Text)
}

// Period describes an active period-over-period comparison.
type Period struct {
	// Field is the dimension driving the comparison.
	Field *Dimension
	// Parts are the full names of the sub-fields synthesized by splitting
	// Field into its date components.
	Parts []string
}

// Active reports whether a period comparison is in effect.
func (p *Period) Active() bool {
	return p != nil && p.Field != nil
}

// IsPart reports whether name is one of the synthesized period parts.
func (p *Period) IsPart(name string) bool {
	if !p.Active() {
		return false
	}

	for _, part := range p.Parts {
		if part == name {
			return true
		}
	}

	return false
}

// Cartesian is a generic X/Y chart with separated per-measure styles.
type Cartesian struct{ Common }

// Merged is an X/Y chart whose measures share one style.
type Merged struct{ Common }

// Map is a geographic chart.
type Map struct {
	Common
	Geo []*GeoDimension
}

// Candlestick is a stock chart.
type Candlestick struct {
	Common
	Open, High, Low, Close Field
}

// Relation is a node/link chart.
type Relation struct {
	Common
	Source, Target Field
}

// Gantt is a task timeline chart.
type Gantt struct {
	Common
	Start, End, Milestone Field
}

// Radar is a single-measure radar chart.
type Radar struct{ Common }

// Treemap is a nested rectangle chart driven by its group fields.
type Treemap struct{ Common }

func (*Cartesian) Family() Family   { return FamilyCartesian }
func (*Merged) Family() Family      { return FamilyMerged }
func (*Map) Family() Family         { return FamilyMap }
func (*Candlestick) Family() Family { return FamilyCandlestick }
func (*Relation) Family() Family    { return FamilyRelation }
func (*Gantt) Family() Family       { return FamilyGantt }
func (*Radar) Family() Family       { return FamilyRadar }
func (*Treemap) Family() Family     { return FamilyTreemap }

func (*Cartesian) sealed()   {}
func (*Merged) sealed()      {}
func (*Map) sealed()         {}
func (*Candlestick) sealed() {}
func (*Relation) sealed()    {}
func (*Gantt) sealed()       {}
func (*Radar) sealed()       {}
func (*Treemap) sealed()     {}

// IsMerged reports whether the chart's measures share chart-level aesthetics.
// Only the separated Cartesian family keeps per-measure styles.
func IsMerged(b Binding) bool {
	switch b.(type) {
	case *Cartesian:
		return false
	case *Merged, *Map, *Candlestick, *Relation, *Gantt, *Radar, *Treemap:
		return true
	default:
		return false
	}
}

// FamilyFields returns the family-specific structural fields of b.
func FamilyFields(b Binding) []Field {
	switch v := b.(type) {
	case *Map:
		fields := make([]Field, 0, len(v.Geo))
		for _, g := range v.Geo {
			if g != nil {
				fields = append(fields, g)
			}
		}

		return fields
	case *Candlestick:
		return nonNil(v.Open, v.High, v.Low, v.Close)
	case *Relation:
		return nonNil(v.Source, v.Target)
	case *Gantt:
		return nonNil(v.Start, v.End, v.Milestone)
	case *Cartesian, *Merged, *Radar, *Treemap:
		return nil
	default:
		return nil
	}
}

func nonNil(fields ...Field) []Field {
	out := make([]Field, 0, len(fields))
	for _, f := range fields {
		if !IsNil(f) {
			out = append(out, f)
		}
	}

	return out
}
