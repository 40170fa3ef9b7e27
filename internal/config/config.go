// Package config loads the playground command configuration from TOML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/playground/prompt"
	"github.com/gogpu/playground/puzzle"
	"github.com/gogpu/playground/remap"
	"github.com/gogpu/playground/sketch"
	"github.com/gogpu/playground/split"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid")

// Config is the full command configuration.
type Config struct {
	Remap   Remap   `toml:"remap"`
	Overlay Overlay `toml:"overlay"`
	Split   Split   `toml:"split"`
	Puzzle  Puzzle  `toml:"puzzle"`
	Sketch  Sketch  `toml:"sketch"`
	Prompt  Prompt  `toml:"prompt"`
}

// Rule is a color rule with hex colors, e.g. "#000000ff".
type Rule struct {
	Target      string `toml:"target"`
	Replacement string `toml:"replacement"`
}

// Remap configures the remap command.
type Remap struct {
	Rules       []Rule `toml:"rules"`
	Parallelism int    `toml:"parallelism"`
}

// Overlay configures overlay sessions.
type Overlay struct {
	CacheSize int `toml:"cache_size"`
}

// Range is an inclusive size bound.
type Range struct {
	Min int `toml:"min"`
	Max int `toml:"max"`
}

// Split configures the split-pane demo. Missing ranges are unbounded.
type Split struct {
	Height       *Range  `toml:"height"`
	Width        *Range  `toml:"width"`
	MeasureScale float64 `toml:"measure_scale"`
}

// Puzzle configures puzzle generation.
type Puzzle struct {
	Cols          int     `toml:"cols"`
	Rows          int     `toml:"rows"`
	PieceWidth    int     `toml:"piece_width"`
	PieceHeight   int     `toml:"piece_height"`
	Tolerance     float64 `toml:"tolerance"`
	ScatterWidth  int     `toml:"scatter_width"`
	ScatterHeight int     `toml:"scatter_height"`
	Seed          uint64  `toml:"seed"`
}

// Sketch configures the sketch canvas.
type Sketch struct {
	Width       int     `toml:"width"`
	Height      int     `toml:"height"`
	Stroke      string  `toml:"stroke"`
	StrokeWidth float64 `toml:"stroke_width"`
	Tension     float64 `toml:"tension"`
	Hint        string  `toml:"hint"`
}

// Prompt configures the prompt catalogue.
type Prompt struct {
	Templates []prompt.Template `toml:"templates"`
}

// Default returns the built-in configuration.
func Default() Config {
	l := puzzle.DefaultLayout()
	return Config{
		Remap: Remap{
			Rules: []Rule{{Target: "#000000ff", Replacement: "#00000000"}},
		},
		Overlay: Overlay{CacheSize: 32},
		Split:   Split{MeasureScale: 0.5},
		Puzzle: Puzzle{
			Cols:          l.Cols,
			Rows:          l.Rows,
			PieceWidth:    l.PieceWidth,
			PieceHeight:   l.PieceHeight,
			Tolerance:     l.Tolerance,
			ScatterWidth:  l.ScatterWidth,
			ScatterHeight: l.ScatterHeight,
		},
		Sketch: Sketch{
			Width:       600,
			Height:      350,
			Stroke:      "#df4b26",
			StrokeWidth: 5,
			Tension:     0.5,
			Hint:        "Draw your idea here",
		},
		Prompt: Prompt{Templates: prompt.DefaultTemplates()},
	}
}

// Load reads the TOML file at path over the defaults. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data over the defaults and validates the result.
// Unknown keys are rejected. A list given in the file replaces the default
// list instead of extending it.
func Parse(data []byte) (Config, error) {
	def := Default()
	cfg := def
	cfg.Remap.Rules = nil
	cfg.Prompt.Templates = nil

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return Config{}, fmt.Errorf("config: line %d column %d: %w", row, col, err)
		}
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if cfg.Remap.Rules == nil {
		cfg.Remap.Rules = def.Remap.Rules
	}
	if cfg.Prompt.Templates == nil {
		cfg.Prompt.Templates = def.Prompt.Templates
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that the decoder cannot.
func (c Config) Validate() error {
	if _, err := c.Remap.CompiledRules(); err != nil {
		return err
	}
	if err := c.Puzzle.Layout().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Split.MeasureScale <= 0 {
		return fmt.Errorf("%w: split.measure_scale must be positive", ErrInvalid)
	}
	if c.Sketch.Width <= 0 || c.Sketch.Height <= 0 {
		return fmt.Errorf("%w: sketch size %dx%d", ErrInvalid, c.Sketch.Width, c.Sketch.Height)
	}
	if _, err := prompt.NewCatalog(c.Prompt.Templates); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// CompiledRules parses the hex colors into remap rules.
func (r Remap) CompiledRules() ([]remap.Rule, error) {
	out := make([]remap.Rule, 0, len(r.Rules))
	for i, rule := range r.Rules {
		target, err := remap.ParseHex(rule.Target)
		if err != nil {
			return nil, fmt.Errorf("%w: remap.rules[%d].target %q: %w", ErrInvalid, i, rule.Target, err)
		}
		repl, err := remap.ParseHex(rule.Replacement)
		if err != nil {
			return nil, fmt.Errorf("%w: remap.rules[%d].replacement %q: %w", ErrInvalid, i, rule.Replacement, err)
		}
		out = append(out, remap.Rule{Target: target, Replacement: repl})
	}
	return out, nil
}

// Options converts the split settings to controller options.
func (s Split) Options() []split.Option {
	var opts []split.Option
	if s.Height != nil {
		opts = append(opts, split.WithHeightBounds(s.Height.Min, s.Height.Max))
	}
	if s.Width != nil {
		opts = append(opts, split.WithWidthBounds(s.Width.Min, s.Width.Max))
	}
	return opts
}

// Layout converts the puzzle settings.
func (p Puzzle) Layout() puzzle.Layout {
	return puzzle.Layout{
		Cols:          p.Cols,
		Rows:          p.Rows,
		PieceWidth:    p.PieceWidth,
		PieceHeight:   p.PieceHeight,
		Tolerance:     p.Tolerance,
		ScatterWidth:  p.ScatterWidth,
		ScatterHeight: p.ScatterHeight,
	}
}

// Options converts the sketch settings to canvas options.
func (s Sketch) Options() []sketch.Option {
	return []sketch.Option{
		sketch.WithSize(s.Width, s.Height),
		sketch.WithStroke(s.Stroke, s.StrokeWidth),
		sketch.WithTension(s.Tension),
		sketch.WithHint(s.Hint, 10, 30),
	}
}
