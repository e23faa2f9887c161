package koine

type options struct {
	register Register
	logger   *Logger
}

// Option configures an Analyzer at construction time.
type Option func(*options)

// WithRegister sets the stylistic register the analyzer assumes. The formal
// register relaxes the final-N drop rule.
func WithRegister(r Register) Option {
	return func(o *options) {
		o.register = r
	}
}

// WithLogger sets the logger. Nil restores the no-op default.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
