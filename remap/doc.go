// Package remap substitutes exact RGBA colors in PNG images.
//
// A remap takes a PNG, as a data URI or bare base64, and an ordered list of
// rules. Every pixel equal to a rule's target on all four channels takes
// that rule's replacement; when several rules target the same color the
// first one wins. Everything else passes through untouched. Matching is
// exact, so anti-aliased edges one step away from a target are left as they
// are.
//
//	out, err := remap.Remap(mask, []remap.Rule{
//	    {Target: remap.White, Replacement: remap.RGBA{R: 255, A: 255}},
//	    {Target: remap.Black, Replacement: remap.Transparent},
//	})
//
// Remap never mutates its input and produces either a complete data URI or
// an error, never partial output. Calls share no state and may run
// concurrently; [Go] and [All] wrap that for callers that must not block.
package remap
