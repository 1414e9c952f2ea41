// Package content defines the static data rendered by the portfolio.
package content

import "slices"

// Link kinds understood by the renderers.
const (
	LinkGitHub   = "github"
	LinkDemo     = "demo"
	LinkArticle  = "article"
	LinkQRCode   = "qrcode"
	LinkEmail    = "email"
	LinkLinkedIn = "linkedin"
	LinkTwitter  = "twitter"
	LinkWebsite  = "website"
)

// Link is an outbound reference attached to an Item.
type Link struct {
	Kind  string `yaml:"kind" json:"kind" validate:"required,oneof=github demo article qrcode email linkedin twitter website"`
	URL   string `yaml:"url" json:"url" validate:"required,link_url"`
	Label string `yaml:"label" json:"label" validate:"required"`
}

// Item is the one shape shared by projects, products, social links and log
// entries. Every field other than ID and Title is optional.
type Item struct {
	ID              string   `yaml:"id" json:"id" validate:"required,item_id"`
	Number          string   `yaml:"number,omitempty" json:"number,omitempty"`
	Title           string   `yaml:"title" json:"title" validate:"required"`
	Subtitle        string   `yaml:"subtitle,omitempty" json:"subtitle,omitempty"`
	Role            string   `yaml:"role,omitempty" json:"role,omitempty"`
	Date            string   `yaml:"date,omitempty" json:"date,omitempty"`
	Description     string   `yaml:"description,omitempty" json:"description,omitempty"`
	Tags            []string `yaml:"tags,omitempty" json:"tags,omitempty" validate:"omitempty,dive,required"`
	Highlights      []string `yaml:"highlights,omitempty" json:"highlights,omitempty" validate:"omitempty,dive,required"`
	Award           string   `yaml:"award,omitempty" json:"award,omitempty"`
	Links           []Link   `yaml:"links,omitempty" json:"links,omitempty" validate:"omitempty,dive"`
	Image           string   `yaml:"image,omitempty" json:"image,omitempty"`
	BackgroundImage string   `yaml:"background_image,omitempty" json:"background_image,omitempty"`
	QRCode          string   `yaml:"qrcode,omitempty" json:"qrcode,omitempty"`
	Icon            string   `yaml:"icon,omitempty" json:"icon,omitempty" validate:"omitempty,oneof=sparkles code palette"`
}

// Clone returns a deep copy of the item.
func (it Item) Clone() Item {
	it.Tags = slices.Clone(it.Tags)
	it.Highlights = slices.Clone(it.Highlights)
	it.Links = slices.Clone(it.Links)
	return it
}

// PrimaryLink returns the first link or false when the item has none.
func (it Item) PrimaryLink() (Link, bool) {
	if len(it.Links) == 0 {
		return Link{}, false
	}
	return it.Links[0], true
}

// HasQRCode reports whether the item offers the QR popover affordance.
func (it Item) HasQRCode() bool {
	if it.QRCode == "" {
		return false
	}
	for _, l := range it.Links {
		if l.Kind == LinkQRCode {
			return true
		}
	}
	return false
}

// Meta is handed to the document head.
type Meta struct {
	Title       string `yaml:"title" json:"title" validate:"required"`
	Description string `yaml:"description" json:"description" validate:"required"`
}

// Profile identifies the portfolio owner.
type Profile struct {
	Name     string `yaml:"name" json:"name" validate:"required"`
	Avatar   string `yaml:"avatar,omitempty" json:"avatar,omitempty"`
	Headline string `yaml:"headline" json:"headline" validate:"required"`
	Tagline  string `yaml:"tagline,omitempty" json:"tagline,omitempty"`
	Intro    string `yaml:"intro,omitempty" json:"intro,omitempty"`
}

// About carries the biographical facts. Both modes render all of them.
type About struct {
	Heading     string   `yaml:"heading" json:"heading" validate:"required"`
	Lead        string   `yaml:"lead,omitempty" json:"lead,omitempty"`
	Quote       string   `yaml:"quote,omitempty" json:"quote,omitempty"`
	Narrative   []string `yaml:"narrative,omitempty" json:"narrative,omitempty" validate:"omitempty,dive,required"`
	Closing     string   `yaml:"closing,omitempty" json:"closing,omitempty"`
	Traits      []string `yaml:"traits,omitempty" json:"traits,omitempty"`
	Class       string   `yaml:"class,omitempty" json:"class,omitempty"`
	Status      string   `yaml:"status,omitempty" json:"status,omitempty"`
	Mission     string   `yaml:"mission,omitempty" json:"mission,omitempty"`
	Skills      []string `yaml:"skills,omitempty" json:"skills,omitempty"`
	Achievement string   `yaml:"achievement,omitempty" json:"achievement,omitempty"`
	Logs        []Item   `yaml:"logs,omitempty" json:"logs,omitempty" validate:"omitempty,dive"`
}

// Work is the project list.
type Work struct {
	Heading    string `yaml:"heading" json:"heading" validate:"required"`
	Subheading string `yaml:"subheading,omitempty" json:"subheading,omitempty"`
	Projects   []Item `yaml:"projects,omitempty" json:"projects,omitempty" validate:"omitempty,dive"`
}

// Products is the product showcase.
type Products struct {
	Items  []Item `yaml:"items,omitempty" json:"items,omitempty" validate:"omitempty,dive"`
	Teaser string `yaml:"teaser,omitempty" json:"teaser,omitempty"`
}

// Footer holds the contact block.
type Footer struct {
	Heading   string `yaml:"heading" json:"heading" validate:"required"`
	Blurb     string `yaml:"blurb,omitempty" json:"blurb,omitempty"`
	Socials   []Item `yaml:"socials,omitempty" json:"socials,omitempty" validate:"omitempty,dive"`
	Copyright string `yaml:"copyright,omitempty" json:"copyright,omitempty"`
}

// Catalog is the full content of the page. It is defined once at startup and
// never mutated afterwards.
type Catalog struct {
	Meta     Meta     `yaml:"meta" json:"meta"`
	Profile  Profile  `yaml:"profile" json:"profile"`
	About    About    `yaml:"about" json:"about"`
	Work     Work     `yaml:"work" json:"work"`
	Products Products `yaml:"products" json:"products"`
	Footer   Footer   `yaml:"footer" json:"footer"`
}

// Collection names, used in validation errors and by the content database.
const (
	CollectionLogs     = "logs"
	CollectionProjects = "projects"
	CollectionProducts = "products"
	CollectionSocials  = "socials"
)

// CollectionOrder is the order collections are searched and validated in.
var CollectionOrder = []string{CollectionLogs, CollectionProjects, CollectionProducts, CollectionSocials}

// Collections returns each item collection keyed by name.
func (c *Catalog) Collections() map[string][]Item {
	return map[string][]Item{
		CollectionLogs:     c.About.Logs,
		CollectionProjects: c.Work.Projects,
		CollectionProducts: c.Products.Items,
		CollectionSocials:  c.Footer.Socials,
	}
}

// Clone returns a deep copy of the catalog.
func (c *Catalog) Clone() *Catalog {
	if c == nil {
		return nil
	}
	out := *c
	out.About.Narrative = slices.Clone(c.About.Narrative)
	out.About.Traits = slices.Clone(c.About.Traits)
	out.About.Skills = slices.Clone(c.About.Skills)
	out.About.Logs = cloneItems(c.About.Logs)
	out.Work.Projects = cloneItems(c.Work.Projects)
	out.Products.Items = cloneItems(c.Products.Items)
	out.Footer.Socials = cloneItems(c.Footer.Socials)
	return &out
}

// FindItem looks an item up by ID, walking collections in CollectionOrder.
// IDs are only unique per collection, so the first match wins.
func (c *Catalog) FindItem(id string) (Item, bool) {
	all := c.Collections()
	for _, name := range CollectionOrder {
		if it, ok := findIn(all[name], id); ok {
			return it, true
		}
	}
	return Item{}, false
}

// FindProject looks an item up in the work projects only.
func (c *Catalog) FindProject(id string) (Item, bool) {
	return findIn(c.Work.Projects, id)
}

func findIn(items []Item, id string) (Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it.Clone(), true
		}
	}
	return Item{}, false
}

func cloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}
