package mode

import (
	"context"
	"errors"
	"sync"
)

// ErrOutsideProvider is returned when the mode is read or toggled from a
// context that carries no Provider. It signals a wiring defect.
var ErrOutsideProvider = errors.New("mode: used outside provider")

// Provider owns one presentation mode and notifies subscribers on toggle.
type Provider struct {
	mu      sync.Mutex
	current Mode
	nextID  int
	subs    map[int]func(Mode)
}

// NewProvider returns a provider in the default mode.
func NewProvider() *Provider {
	return &Provider{
		current: Default,
		subs:    make(map[int]func(Mode)),
	}
}

// Mode returns the current mode.
func (p *Provider) Mode() Mode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Toggle flips the mode and returns the new value. Subscribers are called
// synchronously, in subscription order, before Toggle returns.
func (p *Provider) Toggle() Mode {
	p.mu.Lock()
	p.current = p.current.Opposite()
	next := p.current
	subs := p.snapshot()
	p.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
	return next
}

// Subscribe registers fn to run after every toggle. The returned function
// removes the subscription.
func (p *Provider) Subscribe(fn func(Mode)) (cancel func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextID
	p.nextID++
	p.subs[id] = fn

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.subs, id)
	}
}

func (p *Provider) snapshot() []func(Mode) {
	out := make([]func(Mode), 0, len(p.subs))
	for id := 0; id < p.nextID; id++ {
		if fn, ok := p.subs[id]; ok {
			out = append(out, fn)
		}
	}
	return out
}

type providerKey struct{}

// WithProvider returns a copy of ctx scoped to p.
func WithProvider(ctx context.Context, p *Provider) context.Context {
	return context.WithValue(ctx, providerKey{}, p)
}

// Pin returns a copy of ctx scoped to a fresh provider holding m. Reads
// through it stop seeing toggles of the provider ctx was scoped to.
func Pin(ctx context.Context, m Mode) context.Context {
	p := NewProvider()
	p.current = m
	return WithProvider(ctx, p)
}

// FromContext returns the provider ctx is scoped to.
func FromContext(ctx context.Context) (*Provider, error) {
	if ctx == nil {
		return nil, ErrOutsideProvider
	}
	p, ok := ctx.Value(providerKey{}).(*Provider)
	if !ok || p == nil {
		return nil, ErrOutsideProvider
	}
	return p, nil
}

// Get reads the mode of the provider ctx is scoped to.
func Get(ctx context.Context) (Mode, error) {
	p, err := FromContext(ctx)
	if err != nil {
		return Default, err
	}
	return p.Mode(), nil
}

// Toggle flips the mode of the provider ctx is scoped to.
func Toggle(ctx context.Context) (Mode, error) {
	p, err := FromContext(ctx)
	if err != nil {
		return Default, err
	}
	return p.Toggle(), nil
}

// MustGet is like Get but panics outside a provider.
func MustGet(ctx context.Context) Mode {
	m, err := Get(ctx)
	if err != nil {
		panic(err)
	}
	return m
}
