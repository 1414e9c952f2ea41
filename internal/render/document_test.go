package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jianifeng/folio/internal/mode"
)

func TestDocumentApplyMode(t *testing.T) {
	t.Parallel()

	doc := NewDocument("smooth-scroll")

	require.True(t, doc.ApplyMode(mode.Art))
	require.Equal(t, "smooth-scroll art-mode", doc.Class())

	require.False(t, doc.ApplyMode(mode.Art), "re-applying the same mode is a no-op")
	require.Equal(t, "smooth-scroll art-mode", doc.Class())

	require.True(t, doc.ApplyMode(mode.Code))
	require.Equal(t, []string{"smooth-scroll", "code-mode"}, doc.Classes())

	require.True(t, doc.ApplyMode(mode.Art))
	require.Equal(t, []string{"smooth-scroll", "art-mode"}, doc.Classes())
}

func TestDocumentRepairsConflictingClasses(t *testing.T) {
	t.Parallel()

	doc := NewDocument("art-mode", "code-mode")
	require.True(t, doc.ApplyMode(mode.Code))
	require.Equal(t, "code-mode", doc.Class())
}

func TestDocumentClassFor(t *testing.T) {
	t.Parallel()

	doc := NewDocument("smooth-scroll")
	doc.ApplyMode(mode.Art)

	require.Equal(t, "smooth-scroll code-mode", doc.ClassFor(mode.Code))
	require.Equal(t, "smooth-scroll art-mode", doc.ClassFor(mode.Art))
	require.Equal(t, "smooth-scroll art-mode", doc.Class(), "ClassFor leaves the document alone")
}

func TestDocumentFollowsProvider(t *testing.T) {
	t.Parallel()

	p := mode.NewProvider()
	doc := NewDocument()
	doc.ApplyMode(p.Mode())
	p.Subscribe(func(m mode.Mode) { doc.ApplyMode(m) })

	for i := 1; i <= 4; i++ {
		p.Toggle()
		require.Equal(t, p.Mode().BodyClass(), doc.Class())
		require.Equal(t, 1, strings.Count(doc.Class(), "-mode"))
	}
}

func TestToggleView(t *testing.T) {
	t.Parallel()

	art := ToggleView{Mode: mode.Art}
	require.False(t, art.Checked())
	require.Equal(t, "opacity-100", art.ArtClass())
	require.Equal(t, "opacity-50", art.CodeClass())

	code := ToggleView{Mode: mode.Code}
	require.True(t, code.Checked())
	require.Equal(t, "opacity-50", code.ArtClass())
	require.Equal(t, "opacity-100", code.CodeClass())
}

func TestFactDiff(t *testing.T) {
	t.Parallel()

	shared := Fact{Section: "work", Item: "a", Field: "title", Value: "A"}
	onlyLeft := Fact{Section: "work", Item: "a", Field: "tag", Value: "Go"}
	onlyRight := Fact{Section: "work", Item: "a", Field: "tag", Value: "Rust"}

	left := FactSet{shared: {}, onlyLeft: {}}
	right := FactSet{shared: {}, onlyRight: {}}

	a, b := Diff(left, right)
	require.Equal(t, []Fact{onlyLeft}, a)
	require.Equal(t, []Fact{onlyRight}, b)
	require.False(t, left.Equal(right))
	require.True(t, left.Equal(FactSet{shared: {}, onlyLeft: {}}))
}

func TestExtractFacts(t *testing.T) {
	t.Parallel()

	html := `<section data-section="work"><article data-item="p1">
		<h3 data-fact="title">  Hello
		   World </h3>
		<a data-fact="link" href="https://example.com">Go</a>
	</article></section>`

	facts, err := ExtractFacts(strings.NewReader(html))
	require.NoError(t, err)
	require.Equal(t, []Fact{
		{Section: "work", Item: "p1", Field: "link", Value: "https://example.com"},
		{Section: "work", Item: "p1", Field: "title", Value: "Hello World"},
	}, facts.Sorted())
}
