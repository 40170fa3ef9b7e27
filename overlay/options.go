package overlay

import (
	"runtime"

	"github.com/gogpu/playground/remap"
)

// Option configures a Session.
type Option func(*options)

type options struct {
	cacheSize   int
	coverRules  []remap.Rule
	parallelism int
}

func defaultOptions() options {
	return options{
		cacheSize:   32,
		coverRules:  remap.BackgroundToTransparent(),
		parallelism: runtime.GOMAXPROCS(0),
	}
}

// WithCacheSize sets how many remapped masks are kept. Values <= 0 disable
// the limit.
func WithCacheSize(n int) Option {
	return func(o *options) {
		o.cacheSize = n
	}
}

// WithCoverRules replaces the rules used when a mask is toggled on.
// The default makes the black background transparent.
func WithCoverRules(rules []remap.Rule) Option {
	return func(o *options) {
		o.coverRules = append([]remap.Rule(nil), rules...)
	}
}

// WithParallelism limits how many masks Colorize remaps at once.
// Values <= 0 are ignored.
func WithParallelism(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.parallelism = n
		}
	}
}
