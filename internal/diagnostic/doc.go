// Package diagnostic provides structured warnings, errors, and
// "why this resolved" explanations for descriptor validation and
// rendered-column resolution.
//
// Key capabilities:
//   - Unresolved column warnings with closest field-name suggestions
//   - Descriptor validation errors
//   - Notes on runtime fields traced to their design-time field
package diagnostic
