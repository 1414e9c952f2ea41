// Package render turns the content catalog into HTML. Every section picks
// one of two templates by the presentation mode found in the context.
package render

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/jianifeng/folio/internal/content"
	"github.com/jianifeng/folio/internal/mode"
)

//go:embed templates/*.html
var templateFS embed.FS

const tracerName = "github.com/jianifeng/folio/internal/render"

// Template names rendered outside the section list.
const (
	PageTemplate    = "page"
	BodyTemplate    = "body"
	PopoverTemplate = "qrcode.popover"
)

// Renderer owns the parsed template set.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("folio").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	for _, s := range Sections() {
		for _, m := range mode.All {
			name, ok := s.Variants[m]
			if !ok || tmpl.Lookup(name) == nil {
				return nil, fmt.Errorf("section %s has no %s template", s.Name, m)
			}
		}
	}

	return &Renderer{tmpl: tmpl}, nil
}

// Template exposes the template set so gin can render pages with it.
func (r *Renderer) Template() *template.Template {
	return r.tmpl
}

// RenderSection writes one section in the mode of the provider ctx is
// scoped to.
func (r *Renderer) RenderSection(ctx context.Context, w io.Writer, s Section, c *content.Catalog, routes Routes) error {
	m, err := mode.Get(ctx)
	if err != nil {
		return fmt.Errorf("render %s: %w", s.Name, err)
	}

	_, span := otel.Tracer(tracerName).Start(ctx, "render.section")
	defer span.End()
	span.SetAttributes(
		attribute.String("folio.section", s.Name),
		attribute.String("folio.mode", m.String()),
	)

	name := s.Variants[m]
	view := s.View(Scope{Mode: m, Catalog: c, Routes: routes})
	if err := r.tmpl.ExecuteTemplate(w, name, view); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "template failed")
		return fmt.Errorf("render %s: %w", s.Name, err)
	}
	return nil
}

// RenderPopover writes the QR code popover for an item. It reads no mode.
func (r *Renderer) RenderPopover(w io.Writer, it content.Item) error {
	if !it.HasQRCode() {
		return fmt.Errorf("item %s has no qr code", it.ID)
	}
	return r.tmpl.ExecuteTemplate(w, PopoverTemplate, it)
}

// RenderPage writes a full HTML document.
func (r *Renderer) RenderPage(w io.Writer, view *PageView) error {
	return r.tmpl.ExecuteTemplate(w, PageTemplate, view)
}

// RenderBody writes only the <body> element, as swapped in after a toggle.
func (r *Renderer) RenderBody(w io.Writer, view *PageView) error {
	return r.tmpl.ExecuteTemplate(w, BodyTemplate, view)
}
