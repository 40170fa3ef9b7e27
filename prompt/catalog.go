package prompt

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownTemplate is returned when selecting a template ID that is not
// in the catalogue.
var ErrUnknownTemplate = errors.New("prompt: unknown template")

// Template is one entry of the catalogue.
type Template struct {
	ID       int      `toml:"id"`
	Subject  string   `toml:"subject"`
	Category Category `toml:"category"`
}

// Catalog is an ordered list of templates with one selected entry.
// A Catalog is safe for concurrent use.
type Catalog struct {
	mu        sync.RWMutex
	templates []Template
	current   int
}

// NewCatalog creates a catalogue. IDs must be unique and categories valid.
// The first template is selected.
func NewCatalog(templates []Template) (*Catalog, error) {
	seen := make(map[int]bool, len(templates))
	for _, t := range templates {
		if seen[t.ID] {
			return nil, fmt.Errorf("prompt: duplicate template id %d", t.ID)
		}
		if !t.Category.Valid() {
			return nil, fmt.Errorf("%w: template %d", ErrUnknownCategory, t.ID)
		}
		seen[t.ID] = true
	}
	c := &Catalog{templates: append([]Template(nil), templates...), current: -1}
	if len(templates) > 0 {
		c.current = templates[0].ID
	}
	return c, nil
}

// DefaultTemplates returns the built-in catalogue entries, one per category.
func DefaultTemplates() []Template {
	return []Template{
		{ID: 1, Subject: "Use delimiters to mark the input", Category: Delimiter},
		{ID: 2, Subject: "Ask for structured output", Category: OutputFormat},
		{ID: 3, Subject: "Check conditions before answering", Category: Condition},
		{ID: 4, Subject: "Imitate a given example", Category: Imitate},
	}
}

// Templates returns a copy of the catalogue entries in order.
func (c *Catalog) Templates() []Template {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return append([]Template(nil), c.templates...)
}

// Select makes template id the current one.
func (c *Catalog) Select(id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, t := range c.templates {
		if t.ID == id {
			c.current = id
			return nil
		}
	}
	return fmt.Errorf("%w: %d", ErrUnknownTemplate, id)
}

// Current returns the selected template. ok is false for an empty catalogue.
func (c *Catalog) Current() (Template, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, t := range c.templates {
		if t.ID == c.current {
			return t, true
		}
	}
	return Template{}, false
}
