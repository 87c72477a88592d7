package descriptor

import (
	"chartref/internal/chart"
)

// Build validates f and converts it into a chart binding. Warnings do not
// prevent building; errors are returned as *Error.
func Build(f *File) (chart.Binding, error) {
	diags := Validate(f)
	if diags.HasErrors() {
		name := ""
		if f != nil {
			name = f.Name
		}

		return nil, &Error{Name: name, Diagnostics: *diags}
	}

	family, _ := ParseFamily(f.Family)
	style, _ := ParseStyle(f.Style)

	c := chart.Common{
		Style:            style,
		X:                toFields(f.X),
		Y:                toFields(f.Y),
		Group:            toFields(f.Group),
		Path:             optionalField(f.Path),
		Aesthetics:       toAesthetics(f.Aesthetics),
		MultiAesthetic:   f.MultiAesthetic,
		RuntimeFields:    runtimeFields(f.Runtime),
		ComparisonFields: runtimeFields(f.Comparison),
	}

	if len(f.Series) > 0 {
		c.SeriesAesthetics = make(map[string]chart.Aesthetics, len(f.Series))
		for name, a := range f.Series {
			c.SeriesAesthetics[name] = toAesthetics(&a)
		}
	}

	if f.Period != nil {
		d := toDimension(&f.Period.Field)
		c.Period = &chart.Period{Field: &d, Parts: append([]string(nil), f.Period.Parts...)}
	}

	switch family {
	case chart.FamilyCartesian:
		return &chart.Cartesian{Common: c}, nil
	case chart.FamilyMerged:
		return &chart.Merged{Common: c}, nil
	case chart.FamilyMap:
		m := &chart.Map{Common: c}
		if f.Map != nil {
			for i := range f.Map.Geo {
				d := toDimension(&f.Map.Geo[i])
				m.Geo = append(m.Geo, &chart.GeoDimension{Dimension: d, Layer: f.Map.Geo[i].Layer})
			}
		}

		return m, nil
	case chart.FamilyCandlestick:
		b := &chart.Candlestick{Common: c}
		if f.Candlestick != nil {
			b.Open = optionalField(f.Candlestick.Open)
			b.High = optionalField(f.Candlestick.High)
			b.Low = optionalField(f.Candlestick.Low)
			b.Close = optionalField(f.Candlestick.Close)
		}

		return b, nil
	case chart.FamilyRelation:
		b := &chart.Relation{Common: c}
		if f.Relation != nil {
			b.Source = optionalField(f.Relation.Source)
			b.Target = optionalField(f.Relation.Target)
		}

		return b, nil
	case chart.FamilyGantt:
		b := &chart.Gantt{Common: c}
		if f.Gantt != nil {
			b.Start = optionalField(f.Gantt.Start)
			b.End = optionalField(f.Gantt.End)
			b.Milestone = optionalField(f.Gantt.Milestone)
		}

		return b, nil
	case chart.FamilyRadar:
		return &chart.Radar{Common: c}, nil
	case chart.FamilyTreemap:
		return &chart.Treemap{Common: c}, nil
	default:
		return nil, &Error{Name: f.Name}
	}
}

func toFields(defs []FieldDef) []chart.Field {
	if len(defs) == 0 {
		return nil
	}

	fields := make([]chart.Field, len(defs))
	for i := range defs {
		fields[i] = toField(&defs[i])
	}

	return fields
}

// runtimeFields builds fields that are runtime whether or not flagged so.
func runtimeFields(defs []FieldDef) []chart.Field {
	fields := toFields(defs)
	for _, f := range fields {
		switch v := f.(type) {
		case *chart.Dimension:
			v.Runtime = true
		case *chart.GeoDimension:
			v.Runtime = true
		case *chart.Aggregate:
			v.Runtime = true
		}
	}

	return fields
}

func optionalField(def *FieldDef) chart.Field {
	if def == nil {
		return nil
	}

	return toField(def)
}

func toField(def *FieldDef) chart.Field {
	switch def.Kind {
	case KindAggregate:
		return &chart.Aggregate{
			Column:   def.Column,
			Formula:  def.Formula,
			Discrete: def.Discrete,
			Dynamic:  def.Dynamic,
			Runtime:  def.Runtime,
		}
	case KindGeo:
		return &chart.GeoDimension{Dimension: toDimension(def), Layer: def.Layer}
	default:
		d := toDimension(def)
		return &d
	}
}

func toDimension(def *FieldDef) chart.Dimension {
	var parts []chart.DateLevel
	for _, p := range def.Parts {
		parts = append(parts, chart.DateLevel(p))
	}

	return chart.Dimension{
		Column:     def.Column,
		Level:      chart.DateLevel(def.Level),
		DateParts:  parts,
		Group:      def.Group,
		NamedGroup: def.NamedGroup,
		Runtime:    def.Runtime,
	}
}

func toAesthetics(a *AestheticsDef) chart.Aesthetics {
	if a == nil {
		return chart.Aesthetics{}
	}

	return chart.Aesthetics{
		Color: optionalField(a.Color),
		Shape: optionalField(a.Shape),
		Size:  optionalField(a.Size),
		Text:  optionalField(a.Text),
	}
}
