package annotate

import (
	"log/slog"

	"chartref/internal/resolve"
)

// HighlightService applies conditional highlights to rendered columns.
type HighlightService struct {
	service
}

// NewHighlightService creates a HighlightService. logger may be nil.
func NewHighlightService(registry *Registry, resolver *resolve.Resolver, logger *slog.Logger) *HighlightService {
	return &HighlightService{service: newService(KindHighlight, registry, resolver, logger)}
}

// Apply stores h on the field t resolves to.
func (s *HighlightService) Apply(docID string, t Target, h Highlight) (*Annotation, error) {
	return s.apply(docID, t, func(a *Annotation) {
		hl := h
		a.Highlight = &hl
	})
}

// Get returns the highlights that apply to t.
func (s *HighlightService) Get(docID string, t Target) ([]Annotation, error) {
	return s.get(docID, t)
}

// Remove deletes the highlight with the given id.
func (s *HighlightService) Remove(docID, id string) error {
	return s.remove(docID, id)
}
