package split

// Option configures a Controller during creation.
//
// Example:
//
//	c := split.New(
//	    split.WithHeightBounds(120, 900),
//	    split.WithOnChange(func(s split.Size) { redraw(s) }),
//	)
type Option func(*options)

// options holds optional configuration for Controller creation.
type options struct {
	height   Bounds
	width    Bounds
	onChange []func(Size)
}

// defaultOptions returns the default controller options: no clamping on
// either axis and no observers.
func defaultOptions() options {
	return options{
		height: Unbounded,
		width:  Unbounded,
	}
}

// WithHeightBounds limits the tracked height to [minH, maxH].
// Reversed arguments are swapped.
func WithHeightBounds(minH, maxH int) Option {
	return func(o *options) {
		o.height = newBounds(minH, maxH)
	}
}

// WithWidthBounds limits the tracked width to [minW, maxW].
// Reversed arguments are swapped.
func WithWidthBounds(minW, maxW int) Option {
	return func(o *options) {
		o.width = newBounds(minW, maxW)
	}
}

// WithOnChange registers fn to be called with a copy of the tracked size
// after every change. Multiple observers are called in registration order.
func WithOnChange(fn func(Size)) Option {
	return func(o *options) {
		if fn != nil {
			o.onChange = append(o.onChange, fn)
		}
	}
}

func newBounds(lo, hi int) Bounds {
	if lo > hi {
		lo, hi = hi, lo
	}
	return Bounds{Min: lo, Max: hi}
}

// PaneOption configures a pane binding.
type PaneOption func(*Pane)

// WithMeasureScale scales the rendered size adopted on first measurement.
// The left pane of a left/right split uses 0.5 so that both sides start
// equal. Non-positive factors are ignored.
func WithMeasureScale(factor float64) PaneOption {
	return func(p *Pane) {
		if factor > 0 {
			p.scale = factor
		}
	}
}
