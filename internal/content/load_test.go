package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const minimalYAML = `meta:
  title: "Test"
  description: "A test page"
profile:
  name: "Tester"
  headline: "Hello"
about:
  heading: "About"
work:
  heading: "Works"
  projects:
    - id: one
      title: "Project One"
footer:
  heading: "Contact"
`

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	c, err := Default()
	require.NoError(t, err)
	require.Equal(t, "Jiani Feng", c.Profile.Name)
	require.NotEmpty(t, c.Meta.Title)
	require.NotEmpty(t, c.Meta.Description)
	require.Len(t, c.Footer.Socials, 4)

	it, ok := c.FindItem("modelscope-copilot")
	require.True(t, ok)
	require.Equal(t, "魔搭全栈开发 Copilot", it.Title)
	require.True(t, it.HasQRCode())
}

func TestDefaultReturnsIndependentCopies(t *testing.T) {
	t.Parallel()

	a, err := Default()
	require.NoError(t, err)
	b, err := Default()
	require.NoError(t, err)

	a.Work.Projects[0].Title = "changed"
	a.Work.Projects[0].Tags[0] = "changed"

	require.NotEqual(t, "changed", b.Work.Projects[0].Title)
	require.NotEqual(t, "changed", b.Work.Projects[0].Tags[0])
}

func TestFindItemPrefersEarlierCollection(t *testing.T) {
	t.Parallel()

	c, err := Default()
	require.NoError(t, err)
	c.Products.Items = append(c.Products.Items, Item{ID: "modelscope-copilot", Title: "Copilot Product"})
	require.NoError(t, Validate(c))

	for range 100 {
		it, ok := c.FindItem("modelscope-copilot")
		require.True(t, ok)
		require.Equal(t, "魔搭全栈开发 Copilot", it.Title)
		require.True(t, it.HasQRCode())
	}

	it, ok := c.FindProject("modelscope-copilot")
	require.True(t, ok)
	require.True(t, it.HasQRCode())

	_, ok = c.FindProject("deepinterview")
	require.False(t, ok, "products are not projects")
}

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		doc    string
		assert func(t *testing.T, c *Catalog, err error)
	}{
		{
			name: "minimal catalog is accepted",
			doc:  minimalYAML,
			assert: func(t *testing.T, c *Catalog, err error) {
				require.NoError(t, err)
				require.Len(t, c.Work.Projects, 1)
				require.Empty(t, c.Work.Projects[0].Links)
			},
		},
		{
			name: "malformed yaml is a parse error with a line",
			doc:  "meta:\n  title: [unclosed\n",
			assert: func(t *testing.T, c *Catalog, err error) {
				var parseErr *ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, "inline.yaml", parseErr.Path)
				require.Positive(t, parseErr.Line)
			},
		},
		{
			name: "missing required field is a validation error",
			doc:  "meta:\n  title: \"x\"\n",
			assert: func(t *testing.T, c *Catalog, err error) {
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "meta.description", validationErr.Field)
			},
		},
		{
			name: "duplicate ids within a collection are rejected",
			doc: minimalYAML + `products:
  items:
    - id: dup
      title: "A"
    - id: dup
      title: "B"
`,
			assert: func(t *testing.T, c *Catalog, err error) {
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "products[1].id", validationErr.Field)
			},
		},
		{
			name: "the same id in different collections is allowed",
			doc: minimalYAML + `products:
  items:
    - id: one
      title: "Product One"
`,
			assert: func(t *testing.T, c *Catalog, err error) {
				require.NoError(t, err)
			},
		},
		{
			name: "unknown link kind is rejected",
			doc: minimalYAML + `products:
  items:
    - id: p
      title: "P"
      links:
        - kind: fax
          url: "https://example.com"
          label: "Fax"
`,
			assert: func(t *testing.T, c *Catalog, err error) {
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "products.items[0].links[0].kind", validationErr.Field)
			},
		},
		{
			name: "link without scheme is rejected",
			doc: minimalYAML + `products:
  items:
    - id: p
      title: "P"
      links:
        - kind: demo
          url: "example.com"
          label: "Demo"
`,
			assert: func(t *testing.T, c *Catalog, err error) {
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "link_url")
			},
		},
		{
			name: "item id must be a slug",
			doc: minimalYAML + `products:
  items:
    - id: "Has Spaces"
      title: "P"
`,
			assert: func(t *testing.T, c *Catalog, err error) {
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "item_id")
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c, err := Parse("inline.yaml", []byte(tc.doc))
			tc.assert(t, c, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalYAML), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Tester", c.Profile.Name)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	t.Parallel()

	c, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "Jiani Feng", c.Profile.Name)
}

func TestMarshalRoundTripKeepsCatalog(t *testing.T) {
	t.Parallel()

	c, err := Default()
	require.NoError(t, err)

	out, err := Marshal(c)
	require.NoError(t, err)

	again, err := Parse("roundtrip.yaml", out)
	require.NoError(t, err)
	require.Equal(t, c, again)
}

func TestValidLinkURL(t *testing.T) {
	t.Parallel()

	require.True(t, validLinkURL("https://github.com/jianifeng"))
	require.True(t, validLinkURL("mailto:someone@example.com"))
	require.False(t, validLinkURL("mailto:"))
	require.False(t, validLinkURL("ftp://example.com"))
	require.False(t, validLinkURL("/images/avatar.png"))
}
