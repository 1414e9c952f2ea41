package render

import (
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/jianifeng/folio/internal/mode"
)

// Document is the class list of the page's <body>. Global styles key off
// the mode class it carries.
type Document struct {
	mu      sync.Mutex
	classes []string
}

// NewDocument returns a document carrying the given extra classes.
func NewDocument(classes ...string) *Document {
	return &Document{classes: slices.Clone(classes)}
}

// ApplyMode makes the document reflect m. It returns false when the class
// list already did, in which case nothing changes.
func (d *Document) ApplyMode(m mode.Mode) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	want, stale := m.BodyClass(), m.Opposite().BodyClass()
	if slices.Contains(d.classes, want) && !slices.Contains(d.classes, stale) {
		return false
	}

	d.classes = withMode(d.classes, m)
	return true
}

// ClassFor returns the class attribute value with m's class in place of
// whatever mode class the document carries right now.
func (d *Document) ClassFor(m mode.Mode) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return strings.Join(withMode(slices.Clone(d.classes), m), " ")
}

func withMode(classes []string, m mode.Mode) []string {
	want, stale := m.BodyClass(), m.Opposite().BodyClass()
	classes = slices.DeleteFunc(classes, func(c string) bool { return c == stale || c == want })
	return append(classes, want)
}

// Class returns the class attribute value.
func (d *Document) Class() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return strings.Join(d.classes, " ")
}

// Classes returns a copy of the class list.
func (d *Document) Classes() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.classes)
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "s"
}
