package virtual

type Option func(d *Device)

// WithFailure answers every request after the first n with error code.
func WithFailure(n int, code int) Option {
	return func(d *Device) {
		d.failAfter = n
		d.failCode = code
	}
}

// WithPostError makes every request fail on the transport level.
func WithPostError(err error) Option {
	return func(d *Device) {
		d.postErr = err
	}
}
