package report

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"chartref/internal/chart"
	"chartref/internal/resolve"
)

func salesChart() chart.Binding {
	return &chart.Cartesian{Common: chart.Common{
		X: []chart.Field{&chart.Dimension{Column: "Region", Group: "region"}},
		Y: []chart.Field{&chart.Aggregate{Column: "SalesAmt", Formula: "Sum"}},
		RuntimeFields: []chart.Field{
			&chart.Dimension{Column: "Region_1", Group: "region", Runtime: true},
		},
	}}
}

func TestResolve(t *testing.T) {
	columns := []string{"Region", "__all__Sum(SalesAmt)", "Region_1", "Sum(SalesAmnt)"}

	rows, diags := Resolve(resolve.New(nil), salesChart(), columns, resolve.DefaultOptions())
	require.Len(t, rows, 4)

	assert.True(t, rows[0].Resolved)
	assert.Equal(t, "region", rows[0].Identity)
	assert.Equal(t, "field", rows[0].Scope)
	assert.Equal(t, resolve.StepDesign, rows[0].Step)

	assert.Equal(t, "Sum(SalesAmt)", rows[1].Base)
	assert.Equal(t, "all-series", rows[1].Derived)
	assert.Equal(t, "aggregate", rows[1].Kind)

	assert.Equal(t, resolve.StepRuntime, rows[2].Step)
	assert.Equal(t, "Region", rows[2].Source)
	assert.Equal(t, "region", rows[2].Identity)

	assert.False(t, rows[3].Resolved)
	assert.Equal(t, []string{"Sum(SalesAmt)"}, rows[3].Suggest)

	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "unresolved_column", diags.Warnings[0].Code)
	assert.Equal(t, "Sum(SalesAmnt)", diags.Warnings[0].Column)
	require.Len(t, diags.Infos, 1)
	assert.Equal(t, "reconciled_runtime", diags.Infos[0].Code)
	assert.True(t, diags.IsValid())
}

func TestResolveNilResolver(t *testing.T) {
	var r *resolve.Resolver

	rows, diags := Resolve(r, salesChart(), []string{"Region"}, resolve.DefaultOptions())
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Resolved)
	assert.Empty(t, diags.Warnings)
}

func TestWriteXLSX(t *testing.T) {
	rows, diags := Resolve(nil, salesChart(), []string{"Region", "Cost"}, resolve.DefaultOptions())

	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, WriteXLSX(rows, diags, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{ResolutionSheet, DiagnosticsSheet}, f.GetSheetList())

	got, err := f.GetRows(ResolutionSheet)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Column", got[0][0])
	assert.Equal(t, []string{"Region", "Region", "none", "TRUE", "Region", "dimension", "Region", "region", "field", "design"}, got[1])
	assert.Equal(t, "Cost", got[2][0])
	assert.Equal(t, "FALSE", got[2][3])

	d, err := f.GetRows(DiagnosticsSheet)
	require.NoError(t, err)
	require.Len(t, d, 2)
	assert.Equal(t, "warning", d[1][0])
	assert.Equal(t, "unresolved_column", d[1][1])
	assert.Equal(t, "Cost", d[1][2])
}

func TestWriteSheetRejectsEmptyHeader(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	err := writeSheet(f, "Sheet1", []any{}, nil, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to address Sheet1 header")
}
