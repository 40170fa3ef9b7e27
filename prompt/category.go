package prompt

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownCategory is returned for a category name or value that is not
// defined.
var ErrUnknownCategory = errors.New("prompt: unknown category")

// Category is the kind of prompt technique a template demonstrates.
type Category int

const (
	// Delimiter separates instructions from input with explicit markers.
	Delimiter Category = iota
	// OutputFormat asks for a structured output such as JSON or a table.
	OutputFormat
	// Condition makes the model check assumptions before answering.
	Condition
	// Imitate gives an example answer whose style should be followed.
	Imitate

	numCategories
)

var categoryNames = [numCategories]string{
	Delimiter:    "delimiter",
	OutputFormat: "output-format",
	Condition:    "condition",
	Imitate:      "imitate",
}

// Categories returns every defined category in declaration order.
func Categories() []Category {
	out := make([]Category, numCategories)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// Valid reports whether c is a defined category.
func (c Category) Valid() bool {
	return c >= 0 && c < numCategories
}

// String returns the category name, e.g. "output-format".
func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// Title returns a human readable label, e.g. "Output Format".
func (c Category) Title() string {
	return cases.Title(language.English).String(strings.ReplaceAll(c.String(), "-", " "))
}

// ParseCategory parses a category name. Matching is case-insensitive.
func ParseCategory(s string) (Category, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range categoryNames {
		if n == name {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	v, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
