package annotate

import (
	"log/slog"

	"chartref/internal/chart"
	"chartref/internal/resolve"
)

// HyperlinkService attaches hyperlinks to rendered columns.
type HyperlinkService struct {
	service
}

// NewHyperlinkService creates a HyperlinkService. logger may be nil.
func NewHyperlinkService(registry *Registry, resolver *resolve.Resolver, logger *slog.Logger) *HyperlinkService {
	return &HyperlinkService{service: newService(KindHyperlink, registry, resolver, logger)}
}

// Apply stores h on the field t resolves to.
func (s *HyperlinkService) Apply(docID string, t Target, h Hyperlink) (*Annotation, error) {
	return s.apply(docID, t, func(a *Annotation) {
		a.Hyperlink = &Hyperlink{URL: h.URL, Parameters: append([]string(nil), h.Parameters...)}
	})
}

// Get returns the hyperlinks that apply to t.
func (s *HyperlinkService) Get(docID string, t Target) ([]Annotation, error) {
	return s.get(docID, t)
}

// Remove deletes the hyperlink with the given id.
func (s *HyperlinkService) Remove(docID, id string) error {
	return s.remove(docID, id)
}

// ParameterCandidates lists the full names of the fields a hyperlink on t
// may pass as parameters: the dimensions enclosing the resolved field's
// design-time source on its axis, or every bound field when it has no
// enclosing axis.
func (s *HyperlinkService) ParameterCandidates(docID string, t Target) ([]string, error) {
	doc, err := s.registry.Get(docID)
	if err != nil {
		return nil, err
	}

	var names []string

	err = doc.view(func(b chart.Binding, _ *Store) error {
		ref, _, err := s.target(b, t)
		if err != nil {
			return err
		}

		candidates := chart.DesignFields(b)
		names = chart.Names(resolve.OuterReferences(b, ref.Source.FullName(), candidates))

		return nil
	})

	return names, err
}
