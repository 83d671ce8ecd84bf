// Package region models the rendering surface as a set of named regions.
//
// A Page keeps the current text, markup, attributes and visibility of every
// declared region and records which fields changed since the last Flush, so
// the changes can be shipped to the browser as patches keyed by region id.
package region

import (
	"errors"
	"fmt"
	"html/template"
	"maps"
)

// ErrMissingRegion is returned for writes to a region the surface does not declare
var ErrMissingRegion = errors.New("region not found")

// Surface is write access to named regions
type Surface interface {
	SetText(id, text string) error
	SetHTML(id, html string) error
	SetAttr(id, name, value string) error
	SetVisible(id string, visible bool) error
}

// Patch describes the changed fields of one region. Nil fields are unchanged.
type Patch struct {
	ID      string            `json:"id"`
	Text    *string           `json:"text,omitempty"`
	HTML    *string           `json:"html,omitempty"`
	Visible *bool             `json:"visible,omitempty"`
	Attrs   map[string]string `json:"attrs,omitempty"`
}

type state struct {
	text    string
	html    string
	isHTML  bool
	visible bool
	attrs   map[string]string
}

// Page is an in-memory Surface. It is not safe for concurrent use.
type Page struct {
	order   []string
	regions map[string]*state
	dirty   map[string]*Patch
}

// NewPage declares the given region ids. Regions start visible and empty.
func NewPage(ids ...string) *Page {
	p := &Page{
		order:   make([]string, 0, len(ids)),
		regions: make(map[string]*state, len(ids)),
		dirty:   make(map[string]*Patch),
	}
	for _, id := range ids {
		if _, dup := p.regions[id]; dup {
			continue
		}
		p.order = append(p.order, id)
		p.regions[id] = &state{visible: true, attrs: make(map[string]string)}
	}
	return p
}

func (p *Page) lookup(id string) (*state, error) {
	s, ok := p.regions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingRegion, id)
	}
	return s, nil
}

func (p *Page) patch(id string) *Patch {
	if d, ok := p.dirty[id]; ok {
		return d
	}
	d := &Patch{ID: id}
	p.dirty[id] = d
	return d
}

// SetText replaces the region content with plain text
func (p *Page) SetText(id, text string) error {
	s, err := p.lookup(id)
	if err != nil {
		return err
	}
	if !s.isHTML && s.text == text {
		return nil
	}
	s.text, s.html, s.isHTML = text, "", false
	d := p.patch(id)
	d.Text, d.HTML = &text, nil
	return nil
}

// SetHTML replaces the region content with markup. The caller is responsible for escaping.
func (p *Page) SetHTML(id, html string) error {
	s, err := p.lookup(id)
	if err != nil {
		return err
	}
	if s.isHTML && s.html == html {
		return nil
	}
	s.text, s.html, s.isHTML = "", html, true
	d := p.patch(id)
	d.HTML, d.Text = &html, nil
	return nil
}

// SetAttr sets one attribute. An empty value clears it.
func (p *Page) SetAttr(id, name, value string) error {
	s, err := p.lookup(id)
	if err != nil {
		return err
	}
	if s.attrs[name] == value {
		return nil
	}
	if value == "" {
		delete(s.attrs, name)
	} else {
		s.attrs[name] = value
	}
	d := p.patch(id)
	if d.Attrs == nil {
		d.Attrs = make(map[string]string)
	}
	d.Attrs[name] = value
	return nil
}

// SetVisible shows or hides the region
func (p *Page) SetVisible(id string, visible bool) error {
	s, err := p.lookup(id)
	if err != nil {
		return err
	}
	if s.visible == visible {
		return nil
	}
	s.visible = visible
	p.patch(id).Visible = &visible
	return nil
}

// Flush returns the changes since the previous Flush in declaration order
func (p *Page) Flush() []Patch {
	if len(p.dirty) == 0 {
		return nil
	}
	out := make([]Patch, 0, len(p.dirty))
	for _, id := range p.order {
		if d, ok := p.dirty[id]; ok {
			out = append(out, *d)
		}
	}
	clear(p.dirty)
	return out
}

// Snapshot returns the full state of every region without touching pending changes
func (p *Page) Snapshot() []Patch {
	out := make([]Patch, 0, len(p.order))
	for _, id := range p.order {
		s := p.regions[id]
		visible := s.visible
		d := Patch{ID: id, Visible: &visible}
		if s.isHTML {
			html := s.html
			d.HTML = &html
		} else {
			text := s.text
			d.Text = &text
		}
		if len(s.attrs) > 0 {
			d.Attrs = maps.Clone(s.attrs)
		}
		out = append(out, d)
	}
	return out
}

// Has reports whether id is declared
func (p *Page) Has(id string) bool {
	_, ok := p.regions[id]
	return ok
}

// Text returns the plain text of a region
func (p *Page) Text(id string) string {
	if s, ok := p.regions[id]; ok && !s.isHTML {
		return s.text
	}
	return ""
}

// HTML returns the markup of a region for use in templates
func (p *Page) HTML(id string) template.HTML {
	if s, ok := p.regions[id]; ok && s.isHTML {
		return template.HTML(s.html)
	}
	return ""
}

// Attr returns an attribute value, "" when unset
func (p *Page) Attr(id, name string) string {
	if s, ok := p.regions[id]; ok {
		return s.attrs[name]
	}
	return ""
}

// Visible reports whether a region is shown. Undeclared regions are not.
func (p *Page) Visible(id string) bool {
	if s, ok := p.regions[id]; ok {
		return s.visible
	}
	return false
}
