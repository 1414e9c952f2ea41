package mode

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProviderStartsInArt(t *testing.T) {
	t.Parallel()

	p := NewProvider()
	require.Equal(t, Art, p.Mode())
}

func TestToggleParity(t *testing.T) {
	t.Parallel()

	for n := 0; n <= 9; n++ {
		p := NewProvider()
		for i := 0; i < n; i++ {
			p.Toggle()
		}
		if n%2 == 0 {
			assert.Equal(t, Art, p.Mode(), "after %d toggles", n)
		} else {
			assert.Equal(t, Code, p.Mode(), "after %d toggles", n)
		}
	}
}

func TestToggleReturnsNewMode(t *testing.T) {
	t.Parallel()

	p := NewProvider()
	require.Equal(t, Code, p.Toggle())
	require.Equal(t, Art, p.Toggle())
}

func TestSubscribersSeeEveryToggle(t *testing.T) {
	t.Parallel()

	p := NewProvider()
	var first, second []Mode
	p.Subscribe(func(m Mode) { first = append(first, m) })
	cancel := p.Subscribe(func(m Mode) { second = append(second, m) })

	p.Toggle()
	cancel()
	p.Toggle()

	require.Equal(t, []Mode{Code, Art}, first)
	require.Equal(t, []Mode{Code}, second)
}

func TestSubscriberMayReadProvider(t *testing.T) {
	t.Parallel()

	p := NewProvider()
	var seen Mode
	p.Subscribe(func(Mode) { seen = p.Mode() })

	p.Toggle()
	require.Equal(t, Code, seen)
}

func TestContextAccessors(t *testing.T) {
	t.Parallel()

	ctx := WithProvider(context.Background(), NewProvider())

	m, err := Get(ctx)
	require.NoError(t, err)
	require.Equal(t, Art, m)

	m, err = Toggle(ctx)
	require.NoError(t, err)
	require.Equal(t, Code, m)
	require.Equal(t, Code, MustGet(ctx))
}

func TestAccessorsOutsideProvider(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	_, err := Get(ctx)
	require.ErrorIs(t, err, ErrOutsideProvider)

	_, err = Toggle(ctx)
	require.ErrorIs(t, err, ErrOutsideProvider)

	_, err = FromContext(WithProvider(ctx, nil))
	require.ErrorIs(t, err, ErrOutsideProvider)

	require.PanicsWithError(t, ErrOutsideProvider.Error(), func() { MustGet(ctx) })
}

func TestPinIgnoresLaterToggles(t *testing.T) {
	t.Parallel()

	ctx := WithProvider(context.Background(), NewProvider())
	pinned := Pin(ctx, Code)

	_, err := Toggle(ctx)
	require.NoError(t, err)
	require.Equal(t, Code, MustGet(ctx))
	require.Equal(t, Code, MustGet(pinned))

	_, err = Toggle(ctx)
	require.NoError(t, err)
	require.Equal(t, Art, MustGet(ctx))
	require.Equal(t, Code, MustGet(pinned))
}

func TestConcurrentTogglesKeepParity(t *testing.T) {
	t.Parallel()

	p := NewProvider()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Toggle()
			_ = p.Mode()
		}()
	}
	wg.Wait()

	require.Equal(t, Art, p.Mode())
}

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "art", want: Art},
		{in: " CODE ", want: Code},
		{in: "Art", want: Art},
		{in: "ide", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range cases {
		got, err := Parse(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		assert.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestModeTokens(t *testing.T) {
	t.Parallel()

	require.Equal(t, "art-mode", Art.BodyClass())
	require.Equal(t, "code-mode", Code.BodyClass())
	require.Equal(t, "Code", Code.Label())
	require.Equal(t, Code, Art.Opposite())
	require.Equal(t, Art, Code.Opposite())

	text, err := Code.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "code", string(text))

	var m Mode
	require.NoError(t, m.UnmarshalText([]byte("code")))
	require.Equal(t, Code, m)
}
