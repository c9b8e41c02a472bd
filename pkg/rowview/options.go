package rowview

import (
	"github.com/go-drift/rowkit/pkg/constraint"
	"github.com/go-drift/rowkit/pkg/skeleton"
)

type config struct {
	name     string
	engine   *constraint.Engine
	animator *skeleton.Animator
}

// Option configures a row at construction.
type Option func(*config)

// WithEngine places the row in an existing constraint engine, typically
// the one of the list that hosts it. By default each row gets its own.
func WithEngine(e *constraint.Engine) Option {
	return func(c *config) { c.engine = e }
}

// WithAnimator shares a placeholder animator between rows so their
// shimmers stay in phase.
func WithAnimator(a *skeleton.Animator) Option {
	return func(c *config) { c.animator = a }
}

// WithName sets the row's debug name. The default is "row".
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

func newConfig(opts []Option) config {
	c := config{name: "row"}
	for _, opt := range opts {
		opt(&c)
	}
	if c.engine == nil {
		c.engine = constraint.NewEngine()
	}
	if c.animator == nil {
		c.animator = skeleton.NewAnimator()
	}
	return c
}
