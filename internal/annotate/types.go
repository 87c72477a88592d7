package annotate

import (
	"time"

	"chartref/internal/common"
	"chartref/internal/resolve"
)

// Kind is the annotation type.
type Kind int

const (
	KindHighlight Kind = iota
	KindHyperlink
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindHighlight:
		return "highlight"
	case KindHyperlink:
		return "hyperlink"
	default:
		return common.UnknownStr
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Key locates the annotation group of a resolved field. Chart-level
// annotations share the empty identity.
type Key struct {
	Scope    resolve.Scope `json:"scope"`
	Identity string        `json:"identity,omitempty"`
}

// KeyFor returns the storage key of a resolved reference.
func KeyFor(ref *resolve.ResolvedReference) Key {
	if ref.Scope == resolve.ScopeChartLevel {
		return Key{Scope: resolve.ScopeChartLevel}
	}

	return Key{Scope: resolve.ScopeFieldLevel, Identity: ref.Identity}
}

// Target names the rendered column an annotation request refers to.
type Target struct {
	Column  string          `json:"column"`
	Options resolve.Options `json:"options"`
}

// Annotation is a stored highlight or hyperlink.
type Annotation struct {
	ID     string `json:"id"`
	Kind   Kind   `json:"kind"`
	Key    Key    `json:"key"`
	Column string `json:"column"`
	// Field is the full name of the field the column resolved to.
	Field string `json:"field"`
	// Derived is the synthetic column kind, "none" for plain columns.
	Derived string `json:"derived"`

	Highlight *Highlight `json:"highlight,omitempty"`
	Hyperlink *Hyperlink `json:"hyperlink,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// Highlight is the payload of a highlight annotation.
type Highlight struct {
	Name      string `json:"name"`
	Color     string `json:"color"`
	Condition string `json:"condition,omitempty"`
}

// Hyperlink is the payload of a hyperlink annotation.
type Hyperlink struct {
	URL string `json:"url"`
	// Parameters are the full names of the fields passed to the link.
	Parameters []string `json:"parameters,omitempty"`
}
