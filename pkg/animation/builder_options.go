package animation

type Option func(b *Builder)

// WithExtendHook is called whenever blank frames get appended, with the frame
// count before and after.
func WithExtendHook(fn func(from, to int)) Option {
	return func(b *Builder) {
		b.onExtend = fn
	}
}
