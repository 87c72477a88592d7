package chart

import (
	"strings"
)

// Kind identifies the variant of a Field.
type Kind int

const (
	KindDimension Kind = iota
	KindAggregate
	KindGeo
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindDimension:
		return "dimension"
	case KindAggregate:
		return "aggregate"
	case KindGeo:
		return "geo"
	default:
		return "unknown"
	}
}

// Field is a logical field bound to a chart role.
// Implementations: *Dimension, *Aggregate, *GeoDimension.
type Field interface {
	// Name is the base column name without level or formula decoration.
	Name() string
	// FullName is the decorated name used by rendered columns.
	FullName() string
	// Kind reports the variant.
	Kind() Kind
	// IsRuntime is true for fields generated while rendering.
	IsRuntime() bool

	sealed()
}

// DateLevel is the date grouping applied to a dimension.
type DateLevel string

const (
	LevelNone    DateLevel = ""
	LevelYear    DateLevel = "Year"
	LevelQuarter DateLevel = "Quarter"
	LevelMonth   DateLevel = "Month"
	LevelWeek    DateLevel = "Week"
	LevelDay     DateLevel = "Day"

	LevelQuarterOfYear DateLevel = "QuarterOfYear"
	LevelMonthOfYear   DateLevel = "MonthOfYear"
	LevelDayOfMonth    DateLevel = "DayOfMonth"
)

// Dimension is a grouping field.
type Dimension struct {
	Column string
	Level  DateLevel
	// DateParts are the comparison parts a period dimension is split into.
	DateParts []DateLevel
	// Group is the group-column identity key; empty means the full name
	// without date parts.
	Group string
	// NamedGroup is the named group (range) definition applied, if any.
	NamedGroup string
	Runtime    bool
}

// Name implements Field.
func (d *Dimension) Name() string { return d.Column }

// FullName implements Field.
func (d *Dimension) FullName() string {
	name := d.levelName()
	if len(d.DateParts) == 0 {
		return name
	}

	parts := make([]string, len(d.DateParts))
	for i, p := range d.DateParts {
		parts[i] = string(p)
	}

	return name + "[" + strings.Join(parts, ",") + "]"
}

func (d *Dimension) levelName() string {
	if d.Level == LevelNone {
		return d.Column
	}

	return string(d.Level) + "(" + d.Column + ")"
}

// GroupColumn returns the identity key shared by a design-time dimension and
// every runtime instance expanded from it.
func (d *Dimension) GroupColumn() string {
	if d.Group != "" {
		return d.Group
	}

	return d.levelName()
}

// Kind implements Field.
func (d *Dimension) Kind() Kind { return KindDimension }

// IsRuntime implements Field.
func (d *Dimension) IsRuntime() bool { return d.Runtime }

// Clone returns a copy that shares nothing with d.
func (d *Dimension) Clone() *Dimension {
	c := *d
	c.DateParts = append([]DateLevel(nil), d.DateParts...)

	return &c
}

// ClearDateParts drops the comparison parts.
func (d *Dimension) ClearDateParts() {
	d.DateParts = nil
}

func (d *Dimension) sealed() {}

// GeoDimension is a dimension mapped to a geographic layer.
type GeoDimension struct {
	Dimension
	Layer string
}

// Kind implements Field.
func (g *GeoDimension) Kind() Kind { return KindGeo }

// Aggregate is a measure with an optional aggregation formula.
type Aggregate struct {
	Column   string
	Formula  string
	Discrete bool
	// Dynamic marks a binding expanded into runtime aggregates at render time.
	Dynamic bool
	Runtime bool
}

// Name implements Field.
func (a *Aggregate) Name() string { return a.Column }

// FullName implements Field.
func (a *Aggregate) FullName() string {
	if a.Formula == "" {
		return a.Column
	}

	return a.Formula + "(" + a.Column + ")"
}

// Kind implements Field.
func (a *Aggregate) Kind() Kind { return KindAggregate }

// IsRuntime implements Field.
func (a *Aggregate) IsRuntime() bool { return a.Runtime }

func (a *Aggregate) sealed() {}

// AsDimension returns the dimension part of f for both plain and geo dimensions.
func AsDimension(f Field) (*Dimension, bool) {
	switch v := f.(type) {
	case *Dimension:
		return v, v != nil
	case *GeoDimension:
		if v == nil {
			return nil, false
		}

		return &v.Dimension, true
	default:
		return nil, false
	}
}

// IsAggregate reports whether f is an aggregate.
func IsAggregate(f Field) bool {
	_, ok := f.(*Aggregate)
	return ok
}

// GroupColumn returns the identity key of f: the group column for
// dimensions, the full name otherwise. Nil fields have no identity.
func GroupColumn(f Field) string {
	if IsNil(f) {
		return ""
	}

	if d, ok := AsDimension(f); ok {
		return d.GroupColumn()
	}

	return f.FullName()
}

// SameField reports whether a and b denote the same logical field: equal
// full name and equal group-column key.
func SameField(a, b Field) bool {
	if IsNil(a) || IsNil(b) {
		return false
	}

	return a.FullName() == b.FullName() && GroupColumn(a) == GroupColumn(b)
}

// IsNil reports whether f is nil or a typed nil pointer.
func IsNil(f Field) bool {
	switch v := f.(type) {
	case nil:
		return true
	case *Dimension:
		return v == nil
	case *GeoDimension:
		return v == nil
	case *Aggregate:
		return v == nil
	default:
		return false
	}
}
