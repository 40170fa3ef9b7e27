package prompt

import (
	"errors"
	"fmt"
)

// ErrNoView is returned by Render when the view for a category is nil.
var ErrNoView = errors.New("prompt: no view for category")

// Views holds one view constructor per category.
type Views[T any] struct {
	Delimiter    func() T
	OutputFormat func() T
	Condition    func() T
	Imitate      func() T
}

// Render builds the view for category c.
func Render[T any](c Category, v Views[T]) (T, error) {
	var fn func() T
	switch c {
	case Delimiter:
		fn = v.Delimiter
	case OutputFormat:
		fn = v.OutputFormat
	case Condition:
		fn = v.Condition
	case Imitate:
		fn = v.Imitate
	default:
		var zero T
		return zero, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	if fn == nil {
		var zero T
		return zero, fmt.Errorf("%w: %s", ErrNoView, c)
	}
	return fn(), nil
}

// Guides returns short plain-text explanations of every category.
func Guides() Views[string] {
	return Views[string]{
		Delimiter: func() string {
			return "Wrap the input in clear delimiters such as triple quotes or XML tags, " +
				"so the model cannot confuse it with instructions."
		},
		OutputFormat: func() string {
			return "Ask for a structured answer, for example JSON with named fields, " +
				"so the result can be parsed by a program."
		},
		Condition: func() string {
			return "Ask the model to check whether the input satisfies a condition first " +
				"and to say so when it does not."
		},
		Imitate: func() string {
			return "Show one complete example answer and ask for the next one in the same style."
		},
	}
}
