package eulerkit

type options struct {
	logger *Logger
}

// Option configures solver invocation behavior.
type Option func(*options)

// WithLogger configures the logger used by solvers for progress and timing
// output.
//
// If nil is passed, a NoopLogger is used.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

func applyOptions(optFns ...Option) *options {
	o := &options{
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		fn(o)
	}
	return o
}
