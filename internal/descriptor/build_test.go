package descriptor

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartref/internal/chart"
)

func TestBuildFamilies(t *testing.T) {
	tests := []struct {
		yaml   string
		family chart.Family
		check  func(t *testing.T, b chart.Binding)
	}{
		{
			yaml:   "family: cartesian\nx: [{column: Region}]",
			family: chart.FamilyCartesian,
		},
		{
			yaml:   "family: merged\ny: [{kind: aggregate, column: Sales}]",
			family: chart.FamilyMerged,
		},
		{
			yaml:   "family: map\nmap: {geo: [{column: State, layer: state}]}",
			family: chart.FamilyMap,
			check: func(t *testing.T, b chart.Binding) {
				m := b.(*chart.Map)
				require.Len(t, m.Geo, 1)
				assert.Equal(t, "state", m.Geo[0].Layer)
				assert.Equal(t, chart.KindGeo, m.Geo[0].Kind())
			},
		},
		{
			yaml:   "family: candlestick\ncandlestick: {open: {kind: aggregate, column: Open}, close: {kind: aggregate, column: Close}}",
			family: chart.FamilyCandlestick,
			check: func(t *testing.T, b chart.Binding) {
				c := b.(*chart.Candlestick)
				assert.Equal(t, "Open", c.Open.FullName())
				assert.Nil(t, c.High)
				assert.Equal(t, "Close", c.Close.FullName())
			},
		},
		{
			yaml:   relationYAML,
			family: chart.FamilyRelation,
			check: func(t *testing.T, b chart.Binding) {
				r := b.(*chart.Relation)
				assert.Equal(t, "From", r.Source.FullName())
				assert.Equal(t, "to_key", chart.GroupColumn(r.Target))
				assert.Equal(t, "Label", b.Base().Aesthetics.Text.FullName())
			},
		},
		{
			yaml:   "family: gantt\ngantt: {start: {column: Begin}, milestone: {column: Due}}",
			family: chart.FamilyGantt,
			check: func(t *testing.T, b chart.Binding) {
				g := b.(*chart.Gantt)
				assert.Equal(t, "Begin", g.Start.FullName())
				assert.Nil(t, g.End)
				assert.Equal(t, "Due", g.Milestone.FullName())
			},
		},
		{
			yaml:   "family: radar\ngroup: [{column: Segment}]",
			family: chart.FamilyRadar,
		},
		{
			yaml:   "family: treemap\nstyle: word-cloud\ngroup: [{column: Category}]",
			family: chart.FamilyTreemap,
			check: func(t *testing.T, b chart.Binding) {
				assert.Equal(t, chart.StyleWordCloud, b.Base().Style)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.family.String(), func(t *testing.T) {
			f, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)

			b, err := Build(f)
			require.NoError(t, err)
			assert.Equal(t, tt.family, b.Family(), spew.Sdump(b))

			if tt.check != nil {
				tt.check(t, b)
			}
		})
	}
}

func TestBuildFields(t *testing.T) {
	yaml := `
family: cartesian
multiAesthetic: true
x:
  - column: OrderDate
    level: Year
    group: order_year
y:
  - kind: aggregate
    column: Sales
    formula: Sum
    dynamic: true
series:
  Sum(Sales):
    text: {column: Note}
runtime:
  - column: Region
    group: region_key
comparison:
  - kind: aggregate
    column: Sales
    formula: PriorSum
period:
  field: {column: OrderDate, level: Year, parts: [MonthOfYear]}
  parts: [MonthOfYear(OrderDate)]
`

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)

	b, err := Build(f)
	require.NoError(t, err)

	c := b.Base()

	require.Len(t, c.X, 1)
	assert.Equal(t, "Year(OrderDate)", c.X[0].FullName())
	assert.Equal(t, "order_year", chart.GroupColumn(c.X[0]))

	sales, ok := c.Y[0].(*chart.Aggregate)
	require.True(t, ok)
	assert.True(t, sales.Dynamic)

	require.Len(t, c.RuntimeFields, 1)
	assert.True(t, c.RuntimeFields[0].IsRuntime(), "runtime section implies runtime")
	require.Len(t, c.ComparisonFields, 1)
	assert.True(t, c.ComparisonFields[0].IsRuntime())
	assert.Equal(t, "PriorSum(Sales)", c.ComparisonFields[0].FullName())

	require.True(t, c.Period.Active())
	assert.Equal(t, "Year(OrderDate)[MonthOfYear]", c.Period.Field.FullName())
	assert.True(t, c.Period.IsPart("MonthOfYear(OrderDate)"))

	assert.True(t, c.MultiAesthetic)
	assert.Equal(t, "Note", c.TextField("Sum(Sales)").FullName())
}

func TestBuildRejectsInvalid(t *testing.T) {
	f := &File{Name: "broken", Family: "cartesian", Gantt: &GanttDef{}}

	_, err := Build(f)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDescriptor))

	var derr *Error
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, "broken", derr.Name)
	assert.Contains(t, err.Error(), "section_family_mismatch")
}

func TestBuildNil(t *testing.T) {
	_, err := Build(nil)
	assert.ErrorIs(t, err, ErrInvalidDescriptor)
}
