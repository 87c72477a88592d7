package resolve

import (
	"context"
	"log/slog"

	"chartref/internal/chart"
	"chartref/internal/common"
	"chartref/internal/match"
)

// Resolver performs rendered-column resolution. The zero value and a nil
// *Resolver are usable and do not log.
type Resolver struct {
	logger *slog.Logger
}

// New creates a Resolver. If logger is nil, logging is disabled.
func New(logger *slog.Logger) *Resolver {
	return &Resolver{logger: logger}
}

var defaultResolver = New(nil)

// ResolveReference normalizes columnID and resolves it against b.
// It returns false when the column has no annotation target.
func ResolveReference(
	b chart.Binding,
	columnID string,
	axisOnly, textRequested, preferRuntimeForPeriodParts bool,
) (chart.Field, bool) {
	ref, _, ok := defaultResolver.ResolveColumn(b, columnID, Options{
		AxisOnly:                    axisOnly,
		TextRequested:               textRequested,
		PreferRuntimeForPeriodParts: preferRuntimeForPeriodParts,
	})
	if !ok {
		return nil, false
	}

	return ref.Field, true
}

// ResolveColumn strips synthetic prefixes from columnID and resolves the
// base name. The derived kind is returned even when nothing matched.
func (r *Resolver) ResolveColumn(
	b chart.Binding,
	columnID string,
	opts Options,
) (*ResolvedReference, match.DerivedKind, bool) {
	base, kind := match.Normalize(columnID)
	ref, ok := r.Resolve(b, base, opts)

	return ref, kind, ok
}

// Resolve maps baseName to the field of b it originated from.
// An empty baseName is treated as absent. Resolution never fails: false
// means the column is not annotatable.
func (r *Resolver) Resolve(b chart.Binding, baseName string, opts Options) (*ResolvedReference, bool) {
	if b == nil || baseName == "" || b.Base().Style == chart.StyleScatterMatrix {
		return nil, false
	}

	c := b.Base()

	// Comparison fields shadow every other path.
	if f := chart.FindByFullName(c.ComparisonFields, baseName); f != nil {
		return r.found(b, baseName, f, StepComparison), true
	}

	field, step := textField(b, baseName, opts)

	if field == nil && opts.AxisOnly {
		axis := make([]chart.Field, 0, len(c.X)+len(c.Y))
		axis = append(axis, c.X...)
		axis = append(axis, c.Y...)

		field = chart.FindByFullName(axis, baseName)
		if field == nil {
			r.debug("axis column unresolved", slog.String("name", baseName))
			return nil, false
		}

		step = StepAxis
	}

	if field == nil {
		field, step = structuralField(b, baseName)
	}

	if field == nil {
		if f := chart.FieldByName(b, baseName, false); f != nil {
			field, step = f, StepDesign
		}
	}

	// Runtime period parts are left to the period fallback.
	if field == nil && !c.Period.IsPart(baseName) {
		if f := chart.FieldByName(b, baseName, true); f != nil {
			field, step = f, StepRuntime
		}
	}

	if field == nil {
		field, step = periodField(b, baseName, opts)
	}

	if field == nil {
		r.debug("column unresolved",
			slog.String("name", baseName),
			slog.String("family", b.Family().String()))

		return nil, false
	}

	return r.found(b, baseName, field, step), true
}

func (r *Resolver) found(b chart.Binding, name string, field chart.Field, step Step) *ResolvedReference {
	source := field

	if step == StepRuntime || step == StepPeriodPart {
		if d, ok := chart.AsDimension(field); ok && field.IsRuntime() {
			if design := designCounterpart(b, d); design != nil {
				source = design
			}
		}
	}

	ref := &ResolvedReference{
		Field:    field,
		Source:   source,
		Identity: chart.GroupColumn(source),
		Scope:    ClassifyAnnotationScope(b, field),
		Step:     step,
	}

	r.debug("column resolved",
		slog.String("name", name),
		slog.String("step", step.String()),
		slog.String("field", field.FullName()),
		slog.String("identity", ref.Identity),
		slog.String("scope", ref.Scope.String()),
		slog.Bool("reconciled", ref.Reconciled()))

	return ref
}

func (r *Resolver) debug(msg string, attrs ...slog.Attr) {
	if r == nil || r.logger == nil {
		return
	}

	r.logger.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}

// textField resolves the text aesthetic for text requests and word clouds.
// A relation's source field never answers for the shared text binding.
func textField(b chart.Binding, baseName string, opts Options) (chart.Field, Step) {
	c := b.Base()
	if !opts.TextRequested && c.Style != chart.StyleWordCloud {
		return nil, StepNone
	}

	text := c.TextField(opts.Series)
	if chart.IsNil(text) {
		return nil, StepNone
	}

	if rel, ok := b.(*chart.Relation); ok && chart.SameField(text, rel.Source) {
		return nil, StepNone
	}

	if opts.TextRequested || text.FullName() == baseName {
		return text, StepText
	}

	return nil, StepNone
}

// structuralField checks the family-specific roles. Relation checks target
// before source and Gantt checks start, end, milestone, in that order.
func structuralField(b chart.Binding, baseName string) (chart.Field, Step) {
	switch v := b.(type) {
	case *chart.Treemap:
		if f := chart.FindByFullName(v.Group, baseName); f != nil {
			return f, StepTreemapGroup
		}
	case *chart.Relation:
		if f := firstNamed(baseName, v.Target, v.Source); f != nil {
			return f, StepRelation
		}
	case *chart.Gantt:
		if f := firstNamed(baseName, v.Start, v.End, v.Milestone); f != nil {
			return f, StepGantt
		}
	case *chart.Cartesian, *chart.Merged, *chart.Map, *chart.Candlestick, *chart.Radar:
	}

	return nil, StepNone
}

func firstNamed(name string, fields ...chart.Field) chart.Field {
	return chart.FindByFullName(fields, name)
}

// periodField handles names synthesized from splitting the period dimension.
func periodField(b chart.Binding, baseName string, opts Options) (chart.Field, Step) {
	p := b.Base().Period
	if !p.Active() {
		return nil, StepNone
	}

	if p.IsPart(baseName) {
		if opts.PreferRuntimeForPeriodParts {
			if f := chart.FieldByName(b, baseName, true); f != nil {
				return f, StepPeriodPart
			}

			return nil, StepNone
		}

		whole := p.Field.Clone()
		whole.ClearDateParts()

		if f := chart.FieldByName(b, whole.FullName(), false); f != nil {
			return f, StepPeriodPart
		}

		return nil, StepNone
	}

	if baseName == p.Field.GroupColumn() {
		return p.Field, StepPeriodField
	}

	return nil, StepNone
}

// designCounterpart finds the design-time dimension sharing rt's group-column
// key. Radar charts check their first group field before anything else.
func designCounterpart(b chart.Binding, rt *chart.Dimension) chart.Field {
	key := rt.GroupColumn()

	if _, ok := b.(*chart.Radar); ok {
		if first, ok := common.First(b.Base().Group); ok && sameGroup(first, key) {
			return first
		}
	}

	for _, f := range chart.DesignFields(b) {
		if sameGroup(f, key) {
			return f
		}
	}

	return nil
}

func sameGroup(f chart.Field, key string) bool {
	d, ok := chart.AsDimension(f)

	return ok && !d.Runtime && d.GroupColumn() == key
}
