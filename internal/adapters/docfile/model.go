package docfile

// File is the serialized form of a document.
type File struct {
	Name      string   `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Selection []string `json:"selection,omitempty" yaml:"selection,omitempty" toml:"selection,omitempty"`
	Nodes     []Node   `json:"nodes" yaml:"nodes" toml:"nodes"`
}

// Node is the serialized form of a document node.
type Node struct {
	ID   string `json:"id" yaml:"id" toml:"id"`
	Type string `json:"type" yaml:"type" toml:"type"`
	Name string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`

	// Visible defaults to true when omitted.
	Visible *bool `json:"visible,omitempty" yaml:"visible,omitempty" toml:"visible,omitempty"`
	Locked  bool  `json:"locked,omitempty" yaml:"locked,omitempty" toml:"locked,omitempty"`
	Removed bool  `json:"removed,omitempty" yaml:"removed,omitempty" toml:"removed,omitempty"`

	Characters string     `json:"characters,omitempty" yaml:"characters,omitempty" toml:"characters,omitempty"`
	Styles     []StyleRun `json:"styles,omitempty" yaml:"styles,omitempty" toml:"styles,omitempty"`
	Children   []Node     `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
}

// StyleRun applies a style to the characters [Start, End).
// Zero values fall back to the document defaults.
type StyleRun struct {
	Start int `json:"start" yaml:"start" toml:"start"`
	End   int `json:"end" yaml:"end" toml:"end"`

	Family string  `json:"family,omitempty" yaml:"family,omitempty" toml:"family,omitempty"`
	Style  string  `json:"style,omitempty" yaml:"style,omitempty" toml:"style,omitempty"`
	Weight float64 `json:"weight,omitempty" yaml:"weight,omitempty" toml:"weight,omitempty"`
	Size   float64 `json:"size,omitempty" yaml:"size,omitempty" toml:"size,omitempty"`

	LetterSpacing *Spacing `json:"letterSpacing,omitempty" yaml:"letterSpacing,omitempty" toml:"letterSpacing,omitempty"`
}

// Spacing is a serialized letter spacing.
type Spacing struct {
	Value float64 `json:"value" yaml:"value" toml:"value"`
	Unit  string  `json:"unit" yaml:"unit" toml:"unit"`
}
