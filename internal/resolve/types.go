package resolve

import (
	"chartref/internal/chart"
	"chartref/internal/common"
)

// Options carries the request hints that steer resolution.
type Options struct {
	// AxisOnly restricts the search to the X and Y fields.
	AxisOnly bool `json:"axisOnly,omitempty"`
	// TextRequested resolves the text aesthetic regardless of name.
	TextRequested bool `json:"textRequested,omitempty"`
	// PreferRuntimeForPeriodParts returns the runtime part field instead of
	// the design-time dimension the period was split from.
	PreferRuntimeForPeriodParts bool `json:"preferRuntimeForPeriodParts,omitempty"`
	// Series is the full name of the aggregate whose per-series aesthetics
	// apply when multi-aesthetic is enabled.
	Series string `json:"series,omitempty"`
}

// DefaultOptions returns options for a plain (non-axis, non-text) lookup.
func DefaultOptions() Options {
	return Options{}
}

// Scope is where an annotation on a resolved field is stored.
type Scope int

const (
	// ScopeChartLevel stores the annotation in the chart's shared group.
	ScopeChartLevel Scope = iota
	// ScopeFieldLevel attaches the annotation to the resolved field.
	ScopeFieldLevel
)

// String returns a human-readable scope name.
func (s Scope) String() string {
	switch s {
	case ScopeChartLevel:
		return "chart"
	case ScopeFieldLevel:
		return "field"
	default:
		return common.UnknownStr
	}
}

// Step identifies the resolution rule that produced a match.
type Step int

const (
	StepNone Step = iota
	StepComparison
	StepText
	StepAxis
	StepTreemapGroup
	StepRelation
	StepGantt
	StepDesign
	StepRuntime
	StepPeriodPart
	StepPeriodField
)

// String returns a human-readable step name.
func (s Step) String() string {
	switch s {
	case StepNone:
		return "none"
	case StepComparison:
		return "comparison"
	case StepText:
		return "text"
	case StepAxis:
		return "axis"
	case StepTreemapGroup:
		return "treemap-group"
	case StepRelation:
		return "relation"
	case StepGantt:
		return "gantt"
	case StepDesign:
		return "design"
	case StepRuntime:
		return "runtime"
	case StepPeriodPart:
		return "period-part"
	case StepPeriodField:
		return "period-field"
	default:
		return common.UnknownStr
	}
}

// ResolvedReference is the outcome of a successful resolution. It is computed
// per request and never persisted; annotations are stored by Identity.
type ResolvedReference struct {
	// Field is the matched field, possibly a runtime instance.
	Field chart.Field
	// Source is the design-time field Field traces back to. It equals Field
	// unless Field is a runtime dimension with a design-time counterpart.
	Source chart.Field
	// Identity is the stable key annotations are stored under: the group
	// column for dimensions, the full name for aggregates.
	Identity string
	// Scope is where annotations on Field are stored.
	Scope Scope
	// Step is the rule that matched.
	Step Step
}

// Reconciled reports whether a runtime field was traced to a distinct
// design-time field.
func (r *ResolvedReference) Reconciled() bool {
	return r.Field != r.Source
}

// MarshalText implements encoding.TextMarshaler.
func (s Scope) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Step) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
