package accessor

import "go.uber.org/zap"

// Option configures a Compiler.
type Option func(*Compiler)

// WithLogger sets the logger used for compile decisions.
func WithLogger(l *zap.Logger) Option {
	return func(c *Compiler) {
		if l != nil {
			c.log = l
		}
	}
}

// WithInstanceCheck makes instance thunks assert the dynamic type of the
// instance argument before touching it. A mismatch panics with an
// *errors.Error of kind type_mismatch instead of reading foreign memory.
func WithInstanceCheck(enabled bool) Option {
	return func(c *Compiler) {
		c.checkInstance = enabled
	}
}

// WithRegistry sets the constructor registry used by Factory.
func WithRegistry(r *Registry) Option {
	return func(c *Compiler) {
		if r != nil {
			c.registry = r
		}
	}
}
