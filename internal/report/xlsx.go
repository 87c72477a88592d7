package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"chartref/internal/diagnostic"
)

// Sheet names of the exported workbook.
const (
	ResolutionSheet  = "Resolution"
	DiagnosticsSheet = "Diagnostics"
)

var resolutionHeader = []any{
	"Column", "Base", "Derived", "Resolved", "Field", "Kind",
	"Source", "Identity", "Scope", "Step", "Suggestions",
}

var diagnosticsHeader = []any{"Severity", "Code", "Column", "Field", "Message", "Suggestions"}

// WriteXLSX writes rows and diags to a workbook at path.
func WriteXLSX(rows []Row, diags *diagnostic.Diagnostics, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ResolutionSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	if _, err := f.NewSheet(DiagnosticsSheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeSheet(f, ResolutionSheet, resolutionHeader, resolutionRows(rows), bold); err != nil {
		return err
	}

	if err := writeSheet(f, DiagnosticsSheet, diagnosticsHeader, diagnosticRows(diags), bold); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save report %s: %w", path, err)
	}

	return nil
}

func writeSheet(f *excelize.File, sheet string, header []any, rows [][]any, style int) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}

	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return fmt.Errorf("failed to address %s header: %w", sheet, err)
	}

	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return fmt.Errorf("failed to style %s header: %w", sheet, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address %s row %d: %w", sheet, i+1, err)
		}

		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}

	return nil
}

func resolutionRows(rows []Row) [][]any {
	out := make([][]any, 0, len(rows))
	for _, r := range rows {
		step := ""
		if r.Resolved {
			step = r.Step.String()
		}

		out = append(out, []any{
			r.Column, r.Base, r.Derived, r.Resolved, r.Field, r.Kind,
			r.Source, r.Identity, r.Scope, step, strings.Join(r.Suggest, ", "),
		})
	}

	return out
}

func diagnosticRows(diags *diagnostic.Diagnostics) [][]any {
	if diags == nil {
		return nil
	}

	var out [][]any
	for _, d := range diags.All() {
		out = append(out, []any{
			d.Severity.String(), d.Code, d.Column, d.Field, d.Message, strings.Join(d.Suggestions, ", "),
		})
	}

	return out
}
