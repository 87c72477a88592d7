package annotate

import "slices"

// Store keeps annotations in insertion order. It is not safe for
// concurrent use; Document guards it.
type Store struct {
	items []*Annotation
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add appends a.
func (s *Store) Add(a *Annotation) {
	s.items = append(s.items, a)
}

// Get returns the annotations of kind stored under key.
func (s *Store) Get(key Key, kind Kind) []Annotation {
	var out []Annotation
	for _, a := range s.items {
		if a.Key == key && a.Kind == kind {
			out = append(out, *a)
		}
	}

	return out
}

// Remove deletes the annotation of kind with the given id and returns it.
func (s *Store) Remove(id string, kind Kind) (*Annotation, bool) {
	i := slices.IndexFunc(s.items, func(a *Annotation) bool { return a.ID == id && a.Kind == kind })
	if i < 0 {
		return nil, false
	}

	removed := s.items[i]
	s.items = slices.Delete(s.items, i, i+1)

	return removed, true
}

// All returns every stored annotation.
func (s *Store) All() []Annotation {
	out := make([]Annotation, len(s.items))
	for i, a := range s.items {
		out[i] = *a
	}

	return out
}

// Len returns the number of stored annotations.
func (s *Store) Len() int {
	return len(s.items)
}
