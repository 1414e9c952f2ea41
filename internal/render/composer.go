package render

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/jianifeng/folio/internal/content"
	"github.com/jianifeng/folio/internal/mode"
)

// RenderedSection is the HTML produced for one section.
type RenderedSection struct {
	Name string
	HTML template.HTML
}

// PageView is what the page and body templates render.
type PageView struct {
	Meta      content.Meta
	Mode      mode.Mode
	BodyClass string
	Session   string
	Sections  []RenderedSection
}

// Header is the header section's HTML.
func (p *PageView) Header() template.HTML {
	return p.section(SectionHeader)
}

// Footer is the footer section's HTML.
func (p *PageView) Footer() template.HTML {
	return p.section(SectionFooter)
}

// Main returns the sections placed inside <main>, in order.
func (p *PageView) Main() []template.HTML {
	var out []template.HTML
	for _, s := range p.Sections {
		if s.Name != SectionHeader && s.Name != SectionFooter {
			out = append(out, s.HTML)
		}
	}
	return out
}

func (p *PageView) section(name string) template.HTML {
	for _, s := range p.Sections {
		if s.Name == name {
			return s.HTML
		}
	}
	return ""
}

// Composer assembles the page from the sections in fixed order.
type Composer struct {
	renderer *Renderer
	catalog  *content.Catalog
	sections []Section
}

// NewComposer returns a composer over catalog.
func NewComposer(r *Renderer, c *content.Catalog) *Composer {
	return &Composer{renderer: r, catalog: c, sections: Sections()}
}

// Renderer returns the renderer used by the composer.
func (c *Composer) Renderer() *Renderer {
	return c.renderer
}

// Catalog returns the catalog being rendered.
func (c *Composer) Catalog() *content.Catalog {
	return c.catalog
}

// Compose renders every section in the mode of the provider ctx is scoped
// to. When doc is non-nil it is brought in line with that mode first.
func (c *Composer) Compose(ctx context.Context, doc *Document, session string, routes Routes) (*PageView, error) {
	m, err := mode.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("compose page: %w", err)
	}

	// Every section renders in m even if the session toggles meanwhile.
	ctx = mode.Pin(ctx, m)
	ctx, span := otel.Tracer(tracerName).Start(ctx, "render.compose")
	defer span.End()
	span.SetAttributes(attribute.String("folio.mode", m.String()))

	bodyClass := m.BodyClass()
	if doc != nil {
		doc.ApplyMode(m)
		bodyClass = doc.ClassFor(m)
	}

	view := &PageView{
		Meta:      c.catalog.Meta,
		Mode:      m,
		BodyClass: bodyClass,
		Session:   session,
	}

	for _, s := range c.sections {
		var buf bytes.Buffer
		if err := c.renderer.RenderSection(ctx, &buf, s, c.catalog, routes); err != nil {
			return nil, err
		}
		view.Sections = append(view.Sections, RenderedSection{
			Name: s.Name,
			// Output of html/template, already escaped.
			HTML: template.HTML(buf.String()),
		})
	}

	return view, nil
}
