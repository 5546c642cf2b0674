package album

type Option func(a *Album)

// WithMaxPage wraps around to the first result page after max.
func WithMaxPage(max int) Option {
	return func(a *Album) {
		a.maxPage = max
	}
}

// WithFullSize uses the original image instead of the thumbnail for
// wallpapers up to max bytes.
func WithFullSize(max int) Option {
	return func(a *Album) {
		a.maxSize = max
	}
}
