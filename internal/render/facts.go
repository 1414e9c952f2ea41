package render

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Fact is one semantic value shown on the page, located by section, item
// and field. Styling never contributes to a fact.
type Fact struct {
	Section string
	Item    string
	Field   string
	Value   string
}

func (f Fact) String() string {
	return fmt.Sprintf("%s/%s/%s=%q", f.Section, f.Item, f.Field, f.Value)
}

// FactSet is a set of facts.
type FactSet map[Fact]struct{}

// ExtractFacts collects every element marked with data-fact. Links
// contribute their href, everything else its whitespace-normalized text.
func ExtractFacts(r io.Reader) (FactSet, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse rendered html: %w", err)
	}

	facts := make(FactSet)
	doc.Find("[data-fact]").Each(func(_ int, s *goquery.Selection) {
		field := s.AttrOr("data-fact", "")
		f := Fact{
			Section: s.Closest("[data-section]").AttrOr("data-section", ""),
			Item:    s.Closest("[data-item]").AttrOr("data-item", ""),
			Field:   field,
		}
		if field == "link" {
			f.Value = s.AttrOr("href", "")
		} else {
			f.Value = strings.Join(strings.Fields(s.Text()), " ")
		}
		facts[f] = struct{}{}
	})
	return facts, nil
}

// Diff returns the facts only in a and the facts only in b, sorted.
func Diff(a, b FactSet) (onlyA, onlyB []Fact) {
	for f := range a {
		if _, ok := b[f]; !ok {
			onlyA = append(onlyA, f)
		}
	}
	for f := range b {
		if _, ok := a[f]; !ok {
			onlyB = append(onlyB, f)
		}
	}
	byString := func(x, y Fact) int { return strings.Compare(x.String(), y.String()) }
	slices.SortFunc(onlyA, byString)
	slices.SortFunc(onlyB, byString)
	return onlyA, onlyB
}

// Equal reports whether both sets hold the same facts.
func (fs FactSet) Equal(other FactSet) bool {
	onlyA, onlyB := Diff(fs, other)
	return len(onlyA) == 0 && len(onlyB) == 0
}

// Sorted returns the facts in a stable order.
func (fs FactSet) Sorted() []Fact {
	out := make([]Fact, 0, len(fs))
	for f := range fs {
		out = append(out, f)
	}
	slices.SortFunc(out, func(x, y Fact) int { return strings.Compare(x.String(), y.String()) })
	return out
}
