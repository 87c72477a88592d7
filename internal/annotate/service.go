package annotate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"chartref/internal/chart"
	"chartref/internal/match"
	"chartref/internal/resolve"
)

// service is the resolve-classify-write routine shared by the highlight and
// hyperlink services.
type service struct {
	kind     Kind
	registry *Registry
	resolver *resolve.Resolver
	logger   *slog.Logger
	now      func() time.Time
}

func newService(kind Kind, registry *Registry, resolver *resolve.Resolver, logger *slog.Logger) service {
	return service{
		kind:     kind,
		registry: registry,
		resolver: resolver,
		logger:   logger,
		now:      time.Now,
	}
}

// target resolves t against b. The returned reference carries the scope the
// annotation is stored under.
func (s *service) target(b chart.Binding, t Target) (*resolve.ResolvedReference, match.DerivedKind, error) {
	ref, kind, ok := s.resolver.ResolveColumn(b, t.Column, t.Options)
	if !ok {
		return nil, kind, fmt.Errorf("%w: %q", ErrNoTarget, t.Column)
	}

	return ref, kind, nil
}

// apply resolves t and stores a new annotation filled in by fill.
func (s *service) apply(docID string, t Target, fill func(a *Annotation)) (*Annotation, error) {
	doc, err := s.registry.Get(docID)
	if err != nil {
		return nil, err
	}

	var stored Annotation

	err = doc.update(func(b chart.Binding, store *Store) error {
		ref, derived, err := s.target(b, t)
		if err != nil {
			return err
		}

		a := &Annotation{
			ID:        uuid.New().String(),
			Kind:      s.kind,
			Key:       KeyFor(ref),
			Column:    t.Column,
			Field:     ref.Field.FullName(),
			Derived:   derived.String(),
			CreatedAt: s.now(),
		}
		fill(a)

		store.Add(a)

		if a.Key.Scope == resolve.ScopeFieldLevel {
			doc.invalidateRuntime()
		}

		stored = *a

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log("annotation applied",
		slog.String("document", docID),
		slog.String("kind", s.kind.String()),
		slog.String("id", stored.ID),
		slog.String("scope", stored.Key.Scope.String()),
		slog.String("identity", stored.Key.Identity))

	return &stored, nil
}

// get returns the annotations stored where t resolves.
func (s *service) get(docID string, t Target) ([]Annotation, error) {
	doc, err := s.registry.Get(docID)
	if err != nil {
		return nil, err
	}

	var out []Annotation

	err = doc.view(func(b chart.Binding, store *Store) error {
		ref, _, err := s.target(b, t)
		if err != nil {
			return err
		}

		out = store.Get(KeyFor(ref), s.kind)

		return nil
	})

	return out, err
}

// remove deletes the annotation of the service's kind with the given id.
func (s *service) remove(docID, id string) error {
	doc, err := s.registry.Get(docID)
	if err != nil {
		return err
	}

	return doc.update(func(_ chart.Binding, store *Store) error {
		removed, ok := store.Remove(id, s.kind)
		if !ok {
			return fmt.Errorf("%w: %s %s", ErrAnnotationNotFound, s.kind, id)
		}

		if removed.Key.Scope == resolve.ScopeFieldLevel {
			doc.invalidateRuntime()
		}

		s.log("annotation removed", slog.String("document", docID), slog.String("id", id))

		return nil
	})
}

func (s *service) log(msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}

	s.logger.LogAttrs(context.Background(), slog.LevelInfo, msg, attrs...)
}
