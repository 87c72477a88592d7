package descriptor

// File is the root of a chart descriptor.
type File struct {
	Version string `yaml:"version,omitempty" json:"version,omitempty"`
	Name    string `yaml:"name,omitempty"    json:"name,omitempty"`
	Family  string `yaml:"family"            json:"family"`
	Style   string `yaml:"style,omitempty"   json:"style,omitempty"`

	X     []FieldDef `yaml:"x,omitempty"     json:"x,omitempty"`
	Y     []FieldDef `yaml:"y,omitempty"     json:"y,omitempty"`
	Group []FieldDef `yaml:"group,omitempty" json:"group,omitempty"`
	Path  *FieldDef  `yaml:"path,omitempty"  json:"path,omitempty"`

	Aesthetics     *AestheticsDef           `yaml:"aesthetics,omitempty"     json:"aesthetics,omitempty"`
	MultiAesthetic bool                     `yaml:"multiAesthetic,omitempty" json:"multiAesthetic,omitempty"`
	Series         map[string]AestheticsDef `yaml:"series,omitempty"         json:"series,omitempty"`

	Runtime    []FieldDef `yaml:"runtime,omitempty"    json:"runtime,omitempty"`
	Comparison []FieldDef `yaml:"comparison,omitempty" json:"comparison,omitempty"`
	Period     *PeriodDef `yaml:"period,omitempty"     json:"period,omitempty"`

	Map         *MapDef         `yaml:"map,omitempty"         json:"map,omitempty"`
	Candlestick *CandlestickDef `yaml:"candlestick,omitempty" json:"candlestick,omitempty"`
	Relation    *RelationDef    `yaml:"relation,omitempty"    json:"relation,omitempty"`
	Gantt       *GanttDef       `yaml:"gantt,omitempty"       json:"gantt,omitempty"`
}

// Field kinds accepted in FieldDef.Kind.
const (
	KindDimension = "dimension"
	KindAggregate = "aggregate"
	KindGeo       = "geo"
)

// FieldDef describes one bound field.
type FieldDef struct {
	// Kind is dimension, aggregate or geo. Empty means dimension.
	Kind   string `yaml:"kind,omitempty" json:"kind,omitempty"`
	Column string `yaml:"column"         json:"column"`

	// Dimension options.
	Level      string   `yaml:"level,omitempty"      json:"level,omitempty"`
	Parts      []string `yaml:"parts,omitempty"      json:"parts,omitempty"`
	Group      string   `yaml:"group,omitempty"      json:"group,omitempty"`
	NamedGroup string   `yaml:"namedGroup,omitempty" json:"namedGroup,omitempty"`
	Layer      string   `yaml:"layer,omitempty"      json:"layer,omitempty"`

	// Aggregate options.
	Formula  string `yaml:"formula,omitempty"  json:"formula,omitempty"`
	Discrete bool   `yaml:"discrete,omitempty" json:"discrete,omitempty"`
	Dynamic  bool   `yaml:"dynamic,omitempty"  json:"dynamic,omitempty"`

	Runtime bool `yaml:"runtime,omitempty" json:"runtime,omitempty"`
}

// AestheticsDef describes visual bindings.
type AestheticsDef struct {
	Color *FieldDef `yaml:"color,omitempty" json:"color,omitempty"`
	Shape *FieldDef `yaml:"shape,omitempty" json:"shape,omitempty"`
	Size  *FieldDef `yaml:"size,omitempty"  json:"size,omitempty"`
	Text  *FieldDef `yaml:"text,omitempty"  json:"text,omitempty"`
}

// PeriodDef describes an active period comparison.
type PeriodDef struct {
	Field FieldDef `yaml:"field"           json:"field"`
	Parts []string `yaml:"parts,omitempty" json:"parts,omitempty"`
}

// MapDef holds the geographic fields of a map chart.
type MapDef struct {
	Geo []FieldDef `yaml:"geo" json:"geo"`
}

// CandlestickDef holds the price fields of a candlestick chart.
type CandlestickDef struct {
	Open  *FieldDef `yaml:"open,omitempty"  json:"open,omitempty"`
	High  *FieldDef `yaml:"high,omitempty"  json:"high,omitempty"`
	Low   *FieldDef `yaml:"low,omitempty"   json:"low,omitempty"`
	Close *FieldDef `yaml:"close,omitempty" json:"close,omitempty"`
}

// RelationDef holds the node fields of a relation chart.
type RelationDef struct {
	Source *FieldDef `yaml:"source,omitempty" json:"source,omitempty"`
	Target *FieldDef `yaml:"target,omitempty" json:"target,omitempty"`
}

// GanttDef holds the timeline fields of a gantt chart.
type GanttDef struct {
	Start     *FieldDef `yaml:"start,omitempty"     json:"start,omitempty"`
	End       *FieldDef `yaml:"end,omitempty"       json:"end,omitempty"`
	Milestone *FieldDef `yaml:"milestone,omitempty" json:"milestone,omitempty"`
}
