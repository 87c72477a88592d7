package descriptor

import (
	"fmt"
	"strings"

	"chartref/internal/chart"
	"chartref/internal/diagnostic"
)

var knownLevels = []chart.DateLevel{
	chart.LevelNone,
	chart.LevelYear,
	chart.LevelQuarter,
	chart.LevelMonth,
	chart.LevelWeek,
	chart.LevelDay,
	chart.LevelQuarterOfYear,
	chart.LevelMonthOfYear,
	chart.LevelDayOfMonth,
}

var knownStyles = []chart.Style{
	chart.StyleDefault,
	chart.StyleScatterMatrix,
	chart.StyleWordCloud,
	chart.StyleBoxplot,
}

// ParseFamily returns the family named by name, case-insensitively.
func ParseFamily(name string) (chart.Family, bool) {
	for i := range chart.FamilyTotal {
		family := chart.Family(i)
		if strings.EqualFold(family.String(), name) {
			return family, true
		}
	}

	return 0, false
}

// ParseStyle returns the style named by name, case-insensitively. An empty
// name is the default style.
func ParseStyle(name string) (chart.Style, bool) {
	if name == "" {
		return chart.StyleDefault, true
	}

	for _, s := range knownStyles {
		if strings.EqualFold(s.String(), name) {
			return s, true
		}
	}

	return chart.StyleDefault, false
}

func isKnownLevel(level string) bool {
	for _, l := range knownLevels {
		if string(l) == level {
			return true
		}
	}

	return false
}

// Validate checks a descriptor for structural problems. It never stops at
// the first problem; every finding is reported.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("descriptor_is_nil", "descriptor is nil", "", "")
		return res
	}

	family, ok := ParseFamily(f.Family)
	if !ok {
		res.AddError("unknown_family", fmt.Sprintf("unknown chart family %q", f.Family), "", "family")
	}

	if _, ok := ParseStyle(f.Style); !ok {
		res.AddError("unknown_style", fmt.Sprintf("unknown chart style %q", f.Style), "", "style")
	}

	if ok {
		validateSections(res, f, family)
	}

	validateList(res, "x", f.X)
	validateList(res, "y", f.Y)
	validateList(res, "group", f.Group)
	validateList(res, "runtime", f.Runtime)
	validateList(res, "comparison", f.Comparison)
	validateOptional(res, "path", f.Path)
	validateAesthetics(res, "aesthetics", f.Aesthetics)

	validateSeries(res, f)
	validatePeriod(res, f.Period)

	if f.Map != nil {
		for i := range f.Map.Geo {
			path := fmt.Sprintf("map.geo[%d]", i)
			validateField(res, path, &f.Map.Geo[i])

			if k := f.Map.Geo[i].Kind; k != "" && k != KindGeo {
				res.AddError("expected_geo", fmt.Sprintf("map field must be geo, got %q", k), "", path)
			}
		}
	}

	if f.Candlestick != nil {
		validateOptional(res, "candlestick.open", f.Candlestick.Open)
		validateOptional(res, "candlestick.high", f.Candlestick.High)
		validateOptional(res, "candlestick.low", f.Candlestick.Low)
		validateOptional(res, "candlestick.close", f.Candlestick.Close)
	}

	if f.Relation != nil {
		validateOptional(res, "relation.source", f.Relation.Source)
		validateOptional(res, "relation.target", f.Relation.Target)
	}

	if f.Gantt != nil {
		validateOptional(res, "gantt.start", f.Gantt.Start)
		validateOptional(res, "gantt.end", f.Gantt.End)
		validateOptional(res, "gantt.milestone", f.Gantt.Milestone)
	}

	return res
}

// validateSections rejects family sections on other families.
func validateSections(res *diagnostic.Diagnostics, f *File, family chart.Family) {
	sections := []struct {
		name    string
		present bool
		family  chart.Family
	}{
		{"map", f.Map != nil, chart.FamilyMap},
		{"candlestick", f.Candlestick != nil, chart.FamilyCandlestick},
		{"relation", f.Relation != nil, chart.FamilyRelation},
		{"gantt", f.Gantt != nil, chart.FamilyGantt},
	}

	for _, s := range sections {
		if s.present && s.family != family {
			res.AddError("section_family_mismatch",
				fmt.Sprintf("section %q requires family %s, descriptor is %s", s.name, s.family, family),
				"", s.name)
		}
	}
}

func validateList(res *diagnostic.Diagnostics, name string, defs []FieldDef) {
	for i := range defs {
		validateField(res, fmt.Sprintf("%s[%d]", name, i), &defs[i])
	}
}

func validateOptional(res *diagnostic.Diagnostics, path string, def *FieldDef) {
	if def != nil {
		validateField(res, path, def)
	}
}

func validateAesthetics(res *diagnostic.Diagnostics, path string, a *AestheticsDef) {
	if a == nil {
		return
	}

	validateOptional(res, path+".color", a.Color)
	validateOptional(res, path+".shape", a.Shape)
	validateOptional(res, path+".size", a.Size)
	validateOptional(res, path+".text", a.Text)
}

func validateField(res *diagnostic.Diagnostics, path string, def *FieldDef) {
	if strings.TrimSpace(def.Column) == "" {
		res.AddError("empty_column", "field column is empty", "", path)
	}

	switch def.Kind {
	case "", KindDimension, KindGeo:
		if def.Formula != "" || def.Discrete || def.Dynamic {
			res.AddWarning("ignored_option", "aggregate options are ignored on dimensions", "", path)
		}
	case KindAggregate:
		if def.Level != "" || len(def.Parts) > 0 || def.Group != "" || def.NamedGroup != "" {
			res.AddWarning("ignored_option", "dimension options are ignored on aggregates", "", path)
		}
	default:
		res.AddError("unknown_kind", fmt.Sprintf("unknown field kind %q", def.Kind), "", path)
	}

	if !isKnownLevel(def.Level) {
		res.AddError("unknown_level", fmt.Sprintf("unknown date level %q", def.Level), "", path)
	}

	for _, p := range def.Parts {
		if p == "" || !isKnownLevel(p) {
			res.AddError("unknown_level", fmt.Sprintf("unknown date part %q", p), "", path)
		}
	}
}

func validateSeries(res *diagnostic.Diagnostics, f *File) {
	if len(f.Series) == 0 {
		return
	}

	if !f.MultiAesthetic {
		res.AddInfo("series_ignored", "per-series aesthetics are ignored without multiAesthetic", "", "series")
	}

	yNames := make(map[string]bool, len(f.Y))
	for i := range f.Y {
		yNames[toField(&f.Y[i]).FullName()] = true
	}

	for name, a := range f.Series {
		path := "series." + name
		if !yNames[name] {
			res.AddWarning("unknown_series", fmt.Sprintf("series %q is not bound on y", name), "", path)
		}

		validateAesthetics(res, path, &a)
	}
}

func validatePeriod(res *diagnostic.Diagnostics, p *PeriodDef) {
	if p == nil {
		return
	}

	validateField(res, "period.field", &p.Field)

	if k := p.Field.Kind; k != "" && k != KindDimension {
		res.AddError("period_not_dimension", fmt.Sprintf("period field must be a dimension, got %q", k), "", "period.field")
	}

	for i, part := range p.Parts {
		if part == "" {
			res.AddError("empty_period_part", "period part name is empty", "", fmt.Sprintf("period.parts[%d]", i))
		}
	}
}
