package render

import (
	"net/url"

	"github.com/jianifeng/folio/internal/content"
	"github.com/jianifeng/folio/internal/mode"
)

// Section names in page order.
const (
	SectionHeader  = "header"
	SectionHero    = "hero"
	SectionAbout   = "about"
	SectionWork    = "work"
	SectionProduct = "product"
	SectionFooter  = "footer"
)

// Scope is everything a section view is built from.
type Scope struct {
	Mode    mode.Mode
	Catalog *content.Catalog
	Routes  Routes
}

// Section renders one part of the page. Variants maps each mode to the
// template used for it.
type Section struct {
	Name     string
	Variants map[mode.Mode]string
	View     func(Scope) any
}

// Routes builds the URLs the page posts back to. Base is the session prefix.
type Routes struct {
	Base string
}

// Toggle is the toggle endpoint.
func (r Routes) Toggle() string {
	return r.Base + "/mode/toggle"
}

// QRCode is the popover endpoint for an item.
func (r Routes) QRCode(itemID string) string {
	return r.Base + "/items/" + url.PathEscape(itemID) + "/qrcode"
}

func variants(name string) map[mode.Mode]string {
	return map[mode.Mode]string{
		mode.Art:  name + ".art",
		mode.Code: name + ".code",
	}
}

// Sections returns the page sections in their fixed order.
func Sections() []Section {
	return []Section{
		{Name: SectionHeader, Variants: variants(SectionHeader), View: headerView},
		{Name: SectionHero, Variants: variants(SectionHero), View: heroView},
		{Name: SectionAbout, Variants: variants(SectionAbout), View: aboutView},
		{Name: SectionWork, Variants: variants(SectionWork), View: workView},
		{Name: SectionProduct, Variants: variants(SectionProduct), View: productView},
		{Name: SectionFooter, Variants: variants(SectionFooter), View: footerView},
	}
}

// ToggleView drives the toggle control. It is derived from the mode and
// holds nothing else.
type ToggleView struct {
	Mode   mode.Mode
	Action string
}

// Checked reports whether the switch sits on Code.
func (t ToggleView) Checked() bool {
	return t.Mode == mode.Code
}

// ArtClass emphasizes the Art label when Art is active.
func (t ToggleView) ArtClass() string {
	return emphasis(t.Mode == mode.Art)
}

// CodeClass emphasizes the Code label when Code is active.
func (t ToggleView) CodeClass() string {
	return emphasis(t.Mode == mode.Code)
}

func emphasis(active bool) string {
	if active {
		return "opacity-100"
	}
	return "opacity-50"
}

type HeaderData struct {
	Profile content.Profile
	Toggle  ToggleView
}

func headerView(s Scope) any {
	return HeaderData{
		Profile: s.Catalog.Profile,
		Toggle:  ToggleView{Mode: s.Mode, Action: s.Routes.Toggle()},
	}
}

func heroView(s Scope) any {
	return s.Catalog.Profile
}

type AboutData struct {
	content.About
	Profile content.Profile
}

// IsCurrent marks the last log entry, shown as the live one.
func (a AboutData) IsCurrent(i int) bool {
	return i == len(a.Logs)-1
}

func aboutView(s Scope) any {
	return AboutData{About: s.Catalog.About, Profile: s.Catalog.Profile}
}

// Card is a project in the work section.
type Card struct {
	content.Item
	Index  int
	Routes Routes
}

// Delay staggers the entry animation of consecutive cards.
func (c Card) Delay() string {
	return formatSeconds(float64(c.Index) * 0.15)
}

// QRCodeURL is the popover endpoint for this card.
func (c Card) QRCodeURL() string {
	return c.Routes.QRCode(c.ID)
}

type WorkData struct {
	Heading    string
	Subheading string
	Cards      []Card
}

func workView(s Scope) any {
	data := WorkData{Heading: s.Catalog.Work.Heading, Subheading: s.Catalog.Work.Subheading}
	for i, it := range s.Catalog.Work.Projects {
		data.Cards = append(data.Cards, Card{Item: it, Index: i, Routes: s.Routes})
	}
	return data
}

// ProductCard is a product in the product section.
type ProductCard struct {
	content.Item
	Index int
}

// Href is the product's outbound link, or "" when it has none.
func (p ProductCard) Href() string {
	if l, ok := p.PrimaryLink(); ok {
		return l.URL
	}
	return ""
}

// TagDelay staggers the post-it tags.
func (p ProductCard) TagDelay(i int) string {
	return formatSeconds(0.2 + float64(i)*0.1)
}

// TagClass alternates the post-it colors.
func (p ProductCard) TagClass(i int) string {
	if i%2 == 0 {
		return "rotate-3 bg-[#fef3c7] text-amber-800"
	}
	return "-rotate-2 bg-[#dcfce7] text-emerald-800"
}

// LineNumbers fills the editor gutter.
func (p ProductCard) LineNumbers() []int {
	return []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
}

type ProductData struct {
	Cards  []ProductCard
	Teaser string
}

func productView(s Scope) any {
	data := ProductData{Teaser: s.Catalog.Products.Teaser}
	for i, it := range s.Catalog.Products.Items {
		data.Cards = append(data.Cards, ProductCard{Item: it, Index: i})
	}
	return data
}

func footerView(s Scope) any {
	return s.Catalog.Footer
}
