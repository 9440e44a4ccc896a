package csscode

import "context"

// Option customizes code construction. Options are applied in order into a
// config value that the Code keeps by value; there are no package-level
// defaults to mutate.
type Option func(*config)

type config struct {
	name       string          // label used in log lines
	sequential bool            // derive sectors one after another
	ctx        context.Context // construction only; not retained by Code
}

func newConfig(opts ...Option) config {
	cfg := config{name: "css", ctx: context.Background()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithName sets the name used in log output and String.
// Panics on an empty name.
func WithName(name string) Option {
	if name == "" {
		panic("csscode: WithName(\"\")")
	}
	return func(c *config) { c.name = name }
}

// WithSequential derives the X and Z sector structures on the calling
// goroutine instead of one goroutine per sector.
func WithSequential() Option {
	return func(c *config) { c.sequential = true }
}

// WithContext bounds construction by ctx: New stops deriving sector
// structures and returns the context error once ctx is done.
// Panics on a nil context.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("csscode: WithContext(nil)")
	}
	return func(c *config) { c.ctx = ctx }
}
