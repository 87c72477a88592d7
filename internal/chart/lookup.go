package chart

import "sort"

// DesignFields returns every design-time field of b in lookup order:
// X, Y, family fields, group, path, chart aesthetics, per-series aesthetics
// (by series name) and finally the period field.
func DesignFields(b Binding) []Field {
	c := b.Base()

	var fields []Field

	fields = append(fields, nonNil(c.X...)...)
	fields = append(fields, nonNil(c.Y...)...)
	fields = append(fields, FamilyFields(b)...)
	fields = append(fields, nonNil(c.Group...)...)
	fields = append(fields, nonNil(c.Path)...)
	fields = append(fields, c.Aesthetics.Fields()...)

	series := make([]string, 0, len(c.SeriesAesthetics))
	for name := range c.SeriesAesthetics {
		series = append(series, name)
	}

	sort.Strings(series)

	for _, name := range series {
		fields = append(fields, c.SeriesAesthetics[name].Fields()...)
	}

	if c.Period.Active() {
		fields = append(fields, c.Period.Field)
	}

	return fields
}

// RuntimeFields returns the fields generated at render time: dynamic
// expansions first, then date-comparison duplicates.
func RuntimeFields(b Binding) []Field {
	c := b.Base()

	fields := nonNil(c.RuntimeFields...)

	return append(fields, nonNil(c.ComparisonFields...)...)
}

// FieldByName returns the first field whose full name is name, searching the
// runtime table when runtime is set and the design-time table otherwise.
func FieldByName(b Binding, name string, runtime bool) Field {
	fields := DesignFields(b)
	if runtime {
		fields = RuntimeFields(b)
	}

	return FindByFullName(fields, name)
}

// FindByFullName returns the first field in fields with the given full name.
func FindByFullName(fields []Field, name string) Field {
	for _, f := range fields {
		if !IsNil(f) && f.FullName() == name {
			return f
		}
	}

	return nil
}

// FindByName returns the first field in fields with the given base name.
func FindByName(fields []Field, name string) Field {
	for _, f := range fields {
		if !IsNil(f) && f.Name() == name {
			return f
		}
	}

	return nil
}

// Names returns the full names of fields.
func Names(fields []Field) []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		if !IsNil(f) {
			names = append(names, f.FullName())
		}
	}

	return names
}
