package annotate

import (
	"fmt"
	"sort"
	"sync"

	"chartref/internal/chart"
)

// Document is one chart binding with its annotations. The binding, the
// store and the runtime cache change only under the write lock.
type Document struct {
	id string

	mu      sync.RWMutex
	binding chart.Binding
	store   *Store
	// runtimeVersion counts invalidations of the cached runtime aesthetic
	// metadata derived from the binding.
	runtimeVersion uint64
}

// NewDocument creates a document holding b.
func NewDocument(id string, b chart.Binding) *Document {
	return &Document{id: id, binding: b, store: NewStore()}
}

// ID returns the document id.
func (d *Document) ID() string { return d.id }

// Binding returns the current binding.
func (d *Document) Binding() chart.Binding {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.binding
}

// SetBinding replaces the binding and invalidates the runtime cache.
// Existing annotations keep their keys.
func (d *Document) SetBinding(b chart.Binding) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.binding = b
	d.runtimeVersion++
}

// RuntimeVersion returns the runtime cache version.
func (d *Document) RuntimeVersion() uint64 {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.runtimeVersion
}

// Annotations returns a snapshot of every annotation.
func (d *Document) Annotations() []Annotation {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.store.All()
}

// update runs fn with the binding and store under the write lock.
func (d *Document) update(fn func(b chart.Binding, s *Store) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	return fn(d.binding, d.store)
}

// view runs fn with the binding and store under the read lock.
func (d *Document) view(fn func(b chart.Binding, s *Store) error) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return fn(d.binding, d.store)
}

// invalidateRuntime must be called with the write lock held.
func (d *Document) invalidateRuntime() {
	d.runtimeVersion++
}

// Registry holds the open documents.
type Registry struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{docs: make(map[string]*Document)}
}

// Put stores b under id. An existing document keeps its annotations and
// gets the new binding.
func (r *Registry) Put(id string, b chart.Binding) *Document {
	r.mu.Lock()
	defer r.mu.Unlock()

	if doc, ok := r.docs[id]; ok {
		doc.SetBinding(b)
		return doc
	}

	doc := NewDocument(id, b)
	r.docs[id] = doc

	return doc
}

// Get returns the document with the given id.
func (r *Registry) Get(id string) (*Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.docs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, id)
	}

	return doc, nil
}

// Delete removes the document with the given id.
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[id]; !ok {
		return fmt.Errorf("%w: %s", ErrDocumentNotFound, id)
	}

	delete(r.docs, id)

	return nil
}

// IDs returns the sorted ids of all documents.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.docs))
	for id := range r.docs {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}
