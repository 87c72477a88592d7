package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"chartref/internal/common"
)

// Diagnostics holds all diagnostic information from resolution.
type Diagnostics struct {
	Errors   []Diagnostic `json:"errors,omitempty"`
	Warnings []Diagnostic `json:"warnings,omitempty"`
	Infos    []Diagnostic `json:"infos,omitempty"`
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity `json:"severity"`
	// Code is a unique identifier for this type of diagnostic.
	Code string `json:"code"`
	// Message is the human-readable description.
	Message string `json:"message"`
	// Column identifies the rendered column this relates to (if any).
	Column string `json:"column,omitempty"`
	// Field identifies the chart field or descriptor path this relates to (if any).
	Field string `json:"field,omitempty"`
	// Suggestions are potential fixes or alternatives.
	Suggestions []string `json:"suggestions,omitempty"`
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s DiagnosticSeverity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Add files diag under its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	bucket := d.bucket(diag.Severity)
	*bucket = append(*bucket, diag)
}

func (d *Diagnostics) bucket(s DiagnosticSeverity) *[]Diagnostic {
	switch s {
	case DiagnosticError:
		return &d.Errors
	case DiagnosticWarning:
		return &d.Warnings
	default:
		return &d.Infos
	}
}

func (d *Diagnostics) AddError(code, message, column, field string) {
	d.Add(Diagnostic{Severity: DiagnosticError, Code: code, Message: message, Column: column, Field: field})
}

func (d *Diagnostics) AddWarning(code, message, column, field string) {
	d.Add(Diagnostic{Severity: DiagnosticWarning, Code: code, Message: message, Column: column, Field: field})
}

func (d *Diagnostics) AddInfo(code, message, column, field string) {
	d.Add(Diagnostic{Severity: DiagnosticInfo, Code: code, Message: message, Column: column, Field: field})
}

// AddWarningWithSuggestions records an unresolved column together with the
// closest field names.
func (d *Diagnostics) AddWarningWithSuggestions(code, message, column string, suggestions []string) {
	d.Add(Diagnostic{
		Severity:    DiagnosticWarning,
		Code:        code,
		Message:     message,
		Column:      column,
		Suggestions: suggestions,
	})
}

// Merge appends every diagnostic of other, keeping its severity.
func (d *Diagnostics) Merge(other Diagnostics) {
	for _, s := range []DiagnosticSeverity{DiagnosticError, DiagnosticWarning, DiagnosticInfo} {
		for _, diag := range *other.bucket(s) {
			d.Add(diag)
		}
	}
}

// All returns every diagnostic, errors first, then warnings, then infos.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	out = append(out, d.Errors...)
	out = append(out, d.Warnings...)

	return append(out, d.Infos...)
}

// ForColumn returns the diagnostics raised for a rendered column, most severe first.
func (d *Diagnostics) ForColumn(column string) []Diagnostic {
	var out []Diagnostic

	for _, diag := range d.All() {
		if diag.Column == column {
			out = append(out, diag)
		}
	}

	return out
}

func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

func (d *Diagnostics) IsValid() bool {
	return !d.HasErrors()
}

// Error joins the error diagnostics with "; ", or returns nil when there are none.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	parts := make([]string, len(d.Errors))
	for i, e := range d.Errors {
		parts[i] = e.String()
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Column != "" {
		prefix = append(prefix, "["+d.Column+"]")
	}

	if d.Field != "" {
		prefix = append(prefix, d.Field)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
