package sketch

// Option configures a Canvas.
type Option func(*options)

type options struct {
	width, height int

	strokeColor string
	strokeWidth float64
	tension     float64

	hint         string
	hintX, hintY float64
	hintSize     float64
}

func defaultOptions() options {
	return options{
		width:       600,
		height:      350,
		strokeColor: "#df4b26",
		strokeWidth: 5,
		tension:     0.5,
		hint:        "Draw your idea here",
		hintX:       10,
		hintY:       30,
		hintSize:    12,
	}
}

// WithSize sets the canvas size in pixels. Non-positive values are ignored.
func WithSize(width, height int) Option {
	return func(o *options) {
		if width > 0 && height > 0 {
			o.width, o.height = width, height
		}
	}
}

// WithStroke sets the pen color as a hex string and the line width.
func WithStroke(hex string, width float64) Option {
	return func(o *options) {
		if hex != "" {
			o.strokeColor = hex
		}
		if width > 0 {
			o.strokeWidth = width
		}
	}
}

// WithTension sets the curve tension. 0 draws straight segments.
func WithTension(t float64) Option {
	return func(o *options) {
		if t >= 0 {
			o.tension = t
		}
	}
}

// WithHint sets the text drawn with its top-left corner at (x, y).
// An empty text disables the hint.
func WithHint(text string, x, y float64) Option {
	return func(o *options) {
		o.hint = text
		o.hintX, o.hintY = x, y
	}
}
