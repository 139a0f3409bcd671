package decoder

// Option configures DecodeHex.
type Option func(*options)

type options struct {
	strict     bool
	onTrailing func(extra int)
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithStrictLength rejects input whose length is not exactly one header.
func WithStrictLength(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithTrailingHook registers fn to be called with the number of characters
// ignored after the header. It is not called in strict mode.
func WithTrailingHook(fn func(extra int)) Option {
	return func(o *options) {
		o.onTrailing = fn
	}
}
