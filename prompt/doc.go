// Package prompt holds the catalogue of prompt-engineering templates and
// dispatches on their category.
//
// Each template belongs to exactly one Category. Render picks the view for a
// category from a Views value, so adding a category is a compile-visible
// change for every caller that renders templates.
package prompt
