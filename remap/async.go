package remap

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of one asynchronous remap.
type Result struct {
	URI string
	Err error
}

// Go starts Remap in a new goroutine and returns a channel that receives
// exactly one Result. A started remap cannot be cancelled.
func Go(src string, rules []Rule) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		uri, err := Remap(src, rules)
		ch <- Result{URI: uri, Err: err}
	}()
	return ch
}

// All remaps every source independently with the same rules, running at
// most limit remaps at a time (limit <= 0 uses GOMAXPROCS). Results are in
// source order; a failure affects only its own entry.
func All(srcs []string, rules []Rule, limit int) []Result {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	results := make([]Result, len(srcs))

	var g errgroup.Group
	g.SetLimit(limit)
	for i, src := range srcs {
		g.Go(func() error {
			uri, err := Remap(src, rules)
			results[i] = Result{URI: uri, Err: err}
			return nil
		})
	}
	_ = g.Wait()
	return results
}
