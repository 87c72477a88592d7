package annotate

import "errors"

var (
	// ErrDocumentNotFound is returned for an unknown document id.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrNoTarget is returned when a column resolves to no annotatable field.
	ErrNoTarget = errors.New("column has no annotation target")
	// ErrAnnotationNotFound is returned when removing an unknown annotation.
	ErrAnnotationNotFound = errors.New("annotation not found")
)
