// Package config loads and validates the building configuration framegen
// works from. Configurations live in TOML files; Default returns the
// geometry used for quick runs when no file is given.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ErrInvalid is returned by Validate for a configuration that cannot
// produce a model. Advisory range findings are returned separately as
// warnings and never block generation.
var ErrInvalid = errors.New("invalid configuration")

// Section tags reserved for the cantilever edge beams, per side.
const (
	EdgeBeamFront = 101
	EdgeBeamRight = 102
	EdgeBeamLeft  = 103
)

// Config is the top-level TOML document.
type Config struct {
	Bays        Bays        `toml:"bays"`
	Stories     Stories     `toml:"stories"`
	Beams       Dim         `toml:"beams"`
	Columns     Columns     `toml:"columns"`
	Cantilevers Cantilevers `toml:"cantilevers"`
}

// Bays declares the horizontal grid.
type Bays struct {
	X       int       `toml:"x"`
	Y       int       `toml:"y"`
	WidthsX []float64 `toml:"widths_x"`
	WidthsY []float64 `toml:"widths_y"`
}

// Stories declares the vertical grid.
type Stories struct {
	Count   int       `toml:"count"`
	Heights []float64 `toml:"heights"`
}

// Dim is a rectangular cross-section, width × depth in meters.
type Dim struct {
	Width float64 `toml:"width"`
	Depth float64 `toml:"depth"`
}

func (d Dim) zero() bool { return d.Width == 0 && d.Depth == 0 }

// Columns selects the column-section scheme and its dimensions.
// Type is one of "uniform", "exterior-interior", "custom-groups".
type Columns struct {
	Type     string  `toml:"type"`
	Section  Dim     `toml:"section"`  // uniform
	Exterior Dim     `toml:"exterior"` // exterior-interior
	Interior Dim     `toml:"interior"`
	Groups   []Group `toml:"groups"` // custom-groups
}

// Group supplies the dimensions for one custom column group.
type Group struct {
	ID      int `toml:"id"`
	Section Dim `toml:"section"`
}

// SideCfg configures one cantilever side.
type SideCfg struct {
	Length   float64 `toml:"length"`
	EdgeBeam Dim     `toml:"edge_beam"`
}

// Cantilevers holds the optional per-side cantilever settings.
type Cantilevers struct {
	Front *SideCfg `toml:"front"`
	Right *SideCfg `toml:"right"`
	Left  *SideCfg `toml:"left"`
}

// Default returns the stock 3×3-bay, 3-story configuration with uniform
// 0.30×0.30 columns and 0.25×0.45 beams.
func Default() Config {
	return Config{
		Bays: Bays{
			X: 3, Y: 3,
			WidthsX: []float64{5, 6, 5},
			WidthsY: []float64{4, 5, 4},
		},
		Stories: Stories{Count: 3, Heights: []float64{3, 3, 3}},
		Beams:   Dim{Width: 0.25, Depth: 0.45},
		Columns: Columns{Type: "uniform", Section: Dim{Width: 0.30, Depth: 0.30}},
	}
}

// Load reads and validates a TOML configuration file.
func Load(path string) (Config, []string, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, nil, fmt.Errorf("decode %s: %w", path, err)
	}
	warnings, err := cfg.Validate()
	if err != nil {
		return Config{}, nil, err
	}
	return cfg, warnings, nil
}

// Save writes the configuration as TOML.
func Save(path string, cfg Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// Validate checks the configuration. Hard failures return ErrInvalid;
// values outside the recommended envelopes (bays ≤ 20, widths 3–15 m,
// heights 2.5–5 m) come back as warnings.
func (c Config) Validate() ([]string, error) {
	if c.Bays.X <= 0 || c.Bays.Y <= 0 {
		return nil, fmt.Errorf("%w: bay counts %dx%d", ErrInvalid, c.Bays.X, c.Bays.Y)
	}
	if c.Stories.Count <= 0 {
		return nil, fmt.Errorf("%w: story count %d", ErrInvalid, c.Stories.Count)
	}
	if len(c.Bays.WidthsX) != c.Bays.X {
		return nil, fmt.Errorf("%w: %d X widths for %d bays", ErrInvalid, len(c.Bays.WidthsX), c.Bays.X)
	}
	if len(c.Bays.WidthsY) != c.Bays.Y {
		return nil, fmt.Errorf("%w: %d Y widths for %d bays", ErrInvalid, len(c.Bays.WidthsY), c.Bays.Y)
	}
	if len(c.Stories.Heights) != c.Stories.Count {
		return nil, fmt.Errorf("%w: %d heights for %d stories", ErrInvalid, len(c.Stories.Heights), c.Stories.Count)
	}
	for _, w := range append(append([]float64{}, c.Bays.WidthsX...), c.Bays.WidthsY...) {
		if w <= 0 {
			return nil, fmt.Errorf("%w: bay width %g", ErrInvalid, w)
		}
	}
	for _, h := range c.Stories.Heights {
		if h <= 0 {
			return nil, fmt.Errorf("%w: story height %g", ErrInvalid, h)
		}
	}
	switch c.Columns.Type {
	case "", "uniform", "exterior-interior", "custom-groups":
	default:
		return nil, fmt.Errorf("%w: column scheme %q", ErrInvalid, c.Columns.Type)
	}
	for _, s := range []*SideCfg{c.Cantilevers.Front, c.Cantilevers.Right, c.Cantilevers.Left} {
		if s != nil && s.Length <= 0 {
			return nil, fmt.Errorf("%w: cantilever length %g", ErrInvalid, s.Length)
		}
	}

	var warnings []string
	if c.Bays.X > 20 || c.Bays.Y > 20 {
		warnings = append(warnings, fmt.Sprintf("bay counts %dx%d exceed the recommended maximum of 20", c.Bays.X, c.Bays.Y))
	}
	if c.Stories.Count > 20 {
		warnings = append(warnings, fmt.Sprintf("%d stories exceed the recommended maximum of 20", c.Stories.Count))
	}
	for _, w := range append(append([]float64{}, c.Bays.WidthsX...), c.Bays.WidthsY...) {
		if w < 3 || w > 15 {
			warnings = append(warnings, fmt.Sprintf("bay width %.2fm outside the recommended 3-15m range", w))
		}
	}
	for _, h := range c.Stories.Heights {
		if h < 2.5 || h > 5 {
			warnings = append(warnings, fmt.Sprintf("story height %.2fm outside the recommended 2.5-5m range", h))
		}
	}
	return warnings, nil
}
