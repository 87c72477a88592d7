package resolve

import (
	"chartref/internal/chart"
	"chartref/internal/common"
)

// OuterReferences restricts candidates to the dimensions that enclose the
// resolved field on its own axis, the resolved field included. Aggregates,
// geo dimensions and fields found on no axis leave candidates unchanged.
func OuterReferences(b chart.Binding, resolvedFullName string, candidates []chart.Field) []chart.Field {
	if b == nil {
		return candidates
	}

	resolved := chart.FieldByName(b, resolvedFullName, false)
	if resolved == nil {
		resolved = chart.FieldByName(b, resolvedFullName, true)
	}

	if _, ok := resolved.(*chart.Dimension); !ok {
		return candidates
	}

	for _, axis := range outerAxes(b) {
		if chart.FindByFullName(axis, resolvedFullName) != nil {
			return walkOuter(axis, resolvedFullName, candidates)
		}
	}

	return candidates
}

// outerAxes lists the ordered field arrays searched for the resolved field.
// Break-by radar and gantt charts have a synthesized list checked first.
func outerAxes(b chart.Binding) [][]chart.Field {
	c := b.Base()

	var axes [][]chart.Field

	switch b.(type) {
	case *chart.Radar:
		if !common.IsEmpty(c.Group) {
			axes = append(axes, concat(c.Group, c.X, c.Y))
		}
	case *chart.Gantt:
		axes = append(axes, concat(c.Y, c.X))
	}

	axes = append(axes, c.X)

	if c.Period.Active() {
		axes = append(axes, concat([]chart.Field{c.Period.Field}, c.Y))
	} else {
		axes = append(axes, c.Y)
	}

	return axes
}

func walkOuter(axis []chart.Field, name string, candidates []chart.Field) []chart.Field {
	out := make([]chart.Field, 0, len(axis))

	for _, f := range axis {
		if chart.IsNil(f) {
			continue
		}

		if _, ok := chart.AsDimension(f); ok {
			c := chart.FindByFullName(candidates, f.FullName())
			if c == nil {
				c = chart.FindByName(candidates, f.Name())
			}

			if c != nil {
				out = append(out, c)
			}
		}

		if f.FullName() == name {
			break
		}
	}

	return out
}

func concat(lists ...[]chart.Field) []chart.Field {
	var out []chart.Field
	for _, l := range lists {
		out = append(out, l...)
	}

	return out
}
