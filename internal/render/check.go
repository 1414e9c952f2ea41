package render

import (
	"bytes"
	"context"

	"github.com/jianifeng/folio/internal/mode"
)

// Invariance is the outcome of rendering the page in both modes.
type Invariance struct {
	Art      FactSet
	Code     FactSet
	OnlyArt  []Fact
	OnlyCode []Fact
}

// OK reports whether both modes show the same facts.
func (i Invariance) OK() bool {
	return len(i.OnlyArt) == 0 && len(i.OnlyCode) == 0
}

// CheckInvariance renders the page once per mode under a private provider
// and compares the facts each rendering shows.
func CheckInvariance(ctx context.Context, c *Composer) (Invariance, error) {
	provider := mode.NewProvider()
	ctx = mode.WithProvider(ctx, provider)

	art, err := c.factsFor(ctx)
	if err != nil {
		return Invariance{}, err
	}

	provider.Toggle()
	code, err := c.factsFor(ctx)
	if err != nil {
		return Invariance{}, err
	}

	onlyArt, onlyCode := Diff(art, code)
	return Invariance{Art: art, Code: code, OnlyArt: onlyArt, OnlyCode: onlyCode}, nil
}

func (c *Composer) factsFor(ctx context.Context) (FactSet, error) {
	view, err := c.Compose(ctx, nil, "", Routes{})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := c.renderer.RenderPage(&buf, view); err != nil {
		return nil, err
	}
	return ExtractFacts(&buf)
}
