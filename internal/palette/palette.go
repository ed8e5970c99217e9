package palette

// Tag is a symbolic colour name attached to sections, menu items, diagram
// nodes and connectors. It never carries concrete style values itself.
type Tag string

const (
	Blue   Tag = "blue"
	Green  Tag = "green"
	Orange Tag = "orange"
	Red    Tag = "red"
	Purple Tag = "purple"
	Yellow Tag = "yellow"
	Cyan   Tag = "cyan"
	Pink   Tag = "pink"
	Indigo Tag = "indigo"
)

// Style is the concrete set of colours a tag resolves to.
type Style struct {
	Background string `json:"background" yaml:"background"` // light panel fill
	Border     string `json:"border" yaml:"border"`
	Text       string `json:"text" yaml:"text"`
	Accent     string `json:"accent" yaml:"accent"` // solid fill for boxes, dots and strokes
}

// DefaultStyle is used for any tag that is not in the palette.
var DefaultStyle = Style{
	Background: "#f9fafb",
	Border:     "#e5e7eb",
	Text:       "#374151",
	Accent:     "#6b7280",
}

// order is the canonical palette order.
var order = []Tag{Blue, Green, Orange, Red, Purple, Yellow, Cyan, Pink, Indigo}

var styles = map[Tag]Style{
	Blue:   {Background: "#eff6ff", Border: "#bfdbfe", Text: "#1d4ed8", Accent: "#3b82f6"},
	Green:  {Background: "#ecfdf5", Border: "#a7f3d0", Text: "#047857", Accent: "#10b981"},
	Orange: {Background: "#fff7ed", Border: "#fed7aa", Text: "#c2410c", Accent: "#f97316"},
	Red:    {Background: "#fef2f2", Border: "#fecaca", Text: "#b91c1c", Accent: "#ef4444"},
	Purple: {Background: "#faf5ff", Border: "#e9d5ff", Text: "#7e22ce", Accent: "#a855f7"},
	Yellow: {Background: "#fefce8", Border: "#fef08a", Text: "#a16207", Accent: "#eab308"},
	Cyan:   {Background: "#ecfeff", Border: "#a5f3fc", Text: "#0e7490", Accent: "#06b6d4"},
	Pink:   {Background: "#fdf2f8", Border: "#fbcfe8", Text: "#be185d", Accent: "#ec4899"},
	Indigo: {Background: "#eef2ff", Border: "#c7d2fe", Text: "#4338ca", Accent: "#6366f1"},
}

// StyleFor resolves a tag to its style, falling back to DefaultStyle.
func StyleFor(tag Tag) Style {
	if s, ok := styles[tag]; ok {
		return s
	}
	return DefaultStyle
}

// Known reports whether tag is part of the palette.
func Known(tag Tag) bool {
	_, ok := styles[tag]
	return ok
}

// Tags returns every palette tag in canonical order.
func Tags() []Tag {
	out := make([]Tag, len(order))
	copy(out, order)
	return out
}
