package tui

import (
	"fmt"
	"strings"

	"github.com/jianifeng/folio/internal/content"
)

// document writes the catalog as markdown in the given theme. focus marks
// the selected project; qrOpen shows that project's QR code.
func document(t theme, c *content.Catalog, focus int, qrOpen bool) string {
	var b strings.Builder

	p := c.Profile
	fmt.Fprintf(&b, "# %s\n\n", t.heading(p.Headline))
	if p.Tagline != "" {
		fmt.Fprintf(&b, "%s\n\n", t.quote(p.Tagline))
	}
	if p.Intro != "" {
		fmt.Fprintf(&b, "%s\n\n", p.Intro)
	}

	writeAbout(&b, t, c.About)
	writeWork(&b, t, c.Work, focus, qrOpen)
	writeProducts(&b, t, c.Products)
	writeFooter(&b, t, c.Footer)

	return b.String()
}

func writeAbout(b *strings.Builder, t theme, a content.About) {
	fmt.Fprintf(b, "## %s\n\n", t.heading(a.Heading))
	if a.Lead != "" {
		fmt.Fprintf(b, "%s\n\n", a.Lead)
	}
	if a.Quote != "" {
		fmt.Fprintf(b, "> %s\n\n", t.quote(a.Quote))
	}
	for _, para := range a.Narrative {
		fmt.Fprintf(b, "%s\n\n", para)
	}
	if a.Closing != "" {
		fmt.Fprintf(b, "%s\n\n", a.Closing)
	}

	var facts []string
	if len(a.Traits) > 0 {
		facts = append(facts, "traits: "+t.tags(a.Traits))
	}
	for _, kv := range [][2]string{{"class", a.Class}, {"status", a.Status}, {"mission", a.Mission}, {"achievement", a.Achievement}} {
		if kv[1] != "" {
			facts = append(facts, kv[0]+": "+kv[1])
		}
	}
	if len(a.Skills) > 0 {
		facts = append(facts, "skills: "+t.tags(a.Skills))
	}
	for _, f := range facts {
		fmt.Fprintf(b, "- %s\n", f)
	}
	if len(facts) > 0 {
		b.WriteString("\n")
	}

	for i, log := range a.Logs {
		line := fmt.Sprintf("- **%s** %s", log.Date, log.Title)
		if log.Description != "" {
			line += " · " + log.Description
		}
		if len(log.Tags) > 0 {
			line += " " + t.tags(log.Tags)
		}
		if i == len(a.Logs)-1 {
			line += " ◀"
		}
		b.WriteString(line + "\n")
	}
	if len(a.Logs) > 0 {
		b.WriteString("\n")
	}
}

func writeWork(b *strings.Builder, t theme, w content.Work, focus int, qrOpen bool) {
	fmt.Fprintf(b, "## %s\n\n", t.heading(w.Heading))
	if w.Subheading != "" {
		fmt.Fprintf(b, "%s\n\n", w.Subheading)
	}

	for i, it := range w.Projects {
		marker := ""
		if i == focus {
			marker = "▸ "
		}
		fmt.Fprintf(b, "### %s%s\n\n", marker, t.item(it.Number, it.Title))
		if it.Award != "" {
			fmt.Fprintf(b, "**%s**\n\n", it.Award)
		}
		if it.Role != "" {
			fmt.Fprintf(b, "%s\n\n", it.Role)
		}
		if len(it.Tags) > 0 {
			fmt.Fprintf(b, "%s\n\n", t.tags(it.Tags))
		}
		if it.Description != "" {
			fmt.Fprintf(b, "%s\n\n", it.Description)
		}
		for _, h := range it.Highlights {
			fmt.Fprintf(b, "- %s\n", h)
		}
		if len(it.Highlights) > 0 {
			b.WriteString("\n")
		}
		writeLinks(b, t, it.Links)
		if i == focus && qrOpen && it.HasQRCode() {
			fmt.Fprintf(b, "> 扫码体验小程序: %s\n>\n> 使用微信扫描二维码体验\n\n", it.QRCode)
		}
	}
}

func writeProducts(b *strings.Builder, t theme, p content.Products) {
	if len(p.Items) == 0 && p.Teaser == "" {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", t.heading("Products"))
	for _, it := range p.Items {
		fmt.Fprintf(b, "### %s\n\n", t.item("", it.Title))
		if it.Subtitle != "" {
			fmt.Fprintf(b, "%s\n\n", it.Subtitle)
		}
		if it.Description != "" {
			fmt.Fprintf(b, "%s\n\n", it.Description)
		}
		if len(it.Tags) > 0 {
			fmt.Fprintf(b, "%s\n\n", t.tags(it.Tags))
		}
		writeLinks(b, t, it.Links)
	}
	if p.Teaser != "" {
		fmt.Fprintf(b, "%s\n\n", t.quote(p.Teaser))
	}
}

func writeFooter(b *strings.Builder, t theme, f content.Footer) {
	fmt.Fprintf(b, "## %s\n\n", t.heading(f.Heading))
	if f.Blurb != "" {
		fmt.Fprintf(b, "%s\n\n", f.Blurb)
	}
	for _, s := range f.Socials {
		for _, l := range s.Links {
			fmt.Fprintf(b, "- %s: %s\n", s.Title, t.link(l.Label, l.URL))
		}
	}
	if len(f.Socials) > 0 {
		b.WriteString("\n")
	}
	if f.Copyright != "" {
		fmt.Fprintf(b, "%s\n", f.Copyright)
	}
}

func writeLinks(b *strings.Builder, t theme, links []content.Link) {
	for _, l := range links {
		fmt.Fprintf(b, "- %s\n", t.link(l.Label, l.URL))
	}
	if len(links) > 0 {
		b.WriteString("\n")
	}
}
