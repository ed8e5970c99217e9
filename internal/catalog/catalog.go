package catalog

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/ziadkadry99/layermap/internal/palette"
)

// Section is one catalog entry: the prose and code sample for a layer.
type Section struct {
	ID             SectionID   `json:"id" yaml:"id"`
	Title          string      `json:"title" yaml:"title"`
	Category       Category    `json:"category" yaml:"category"`
	Color          palette.Tag `json:"color" yaml:"color"`
	Description    string      `json:"description" yaml:"description"`
	Responsibility string      `json:"responsibility" yaml:"responsibility"`
	CodeExample    string      `json:"code_example" yaml:"code_example"`
	Language       string      `json:"language" yaml:"language"` // advisory, picks the highlighter lexer
}

// Catalog is an ordered, immutable set of sections with exactly one entry
// per SectionID.
type Catalog struct {
	sections []Section
	byID     map[SectionID]Section
}

// New builds a catalog from sections, keeping their order. It fails if an id
// is outside the enumeration, appears twice, or is missing.
func New(sections []Section) (*Catalog, error) {
	var errs []error
	for _, s := range sections {
		if !s.ID.Valid() {
			errs = append(errs, fmt.Errorf("section %q: unknown id", s.ID))
		}
		if !s.Category.Valid() {
			errs = append(errs, fmt.Errorf("section %q: unknown category %q", s.ID, s.Category))
		}
	}
	for _, dup := range lo.FindDuplicatesBy(sections, func(s Section) SectionID { return s.ID }) {
		errs = append(errs, fmt.Errorf("section %q: duplicate id", dup.ID))
	}

	byID := lo.KeyBy(sections, func(s Section) SectionID { return s.ID })
	for _, id := range allIDs {
		if _, ok := byID[id]; !ok {
			errs = append(errs, fmt.Errorf("section %q: missing", id))
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	ordered := make([]Section, len(sections))
	copy(ordered, sections)
	return &Catalog{sections: ordered, byID: byID}, nil
}

// Get returns the section for id. ok is false only for ids outside the
// enumeration; callers render a not-found placeholder in that case.
func (c *Catalog) Get(id SectionID) (Section, bool) {
	s, ok := c.byID[id]
	return s, ok
}

// All returns the sections in catalog order.
func (c *Catalog) All() []Section {
	out := make([]Section, len(c.sections))
	copy(out, c.sections)
	return out
}

// ByCategory returns the sections of one tier in catalog order.
func (c *Catalog) ByCategory(cat Category) []Section {
	return lo.Filter(c.sections, func(s Section, _ int) bool { return s.Category == cat })
}

// Len returns the number of sections.
func (c *Catalog) Len() int { return len(c.sections) }
