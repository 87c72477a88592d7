// Package report resolves a batch of rendered columns against one chart and
// exports the outcome as an xlsx workbook.
package report
