// Package config resolves run settings from defaults, a TOML file and flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/termtorus/parameter"
	"github.com/lixenwraith/termtorus/parameter/visual"
	"github.com/lixenwraith/termtorus/render"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Output backends
const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"
	BackendPlain = "plain"
)

// Color settings
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
	ColorNone      = "none"
)

// maxWorkers caps row workers, rows are the unit of work
const maxWorkers = 256

// Duration is a time.Duration written as a Go duration string in TOML
type Duration time.Duration

// Std returns the value as a time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Config holds every tunable of a run
type Config struct {
	Frames      int      `toml:"frames"`
	FrameDelay  Duration `toml:"frame_delay"`
	AngularStep float32  `toml:"angular_step"`

	Backend string `toml:"backend"`
	Color   string `toml:"color"`
	Mode    string `toml:"mode"`
	Redraw  string `toml:"redraw"`

	// Ramp is a ramp name or a literal glyph sequence
	Ramp    string `toml:"ramp"`
	Palette string `toml:"palette"`

	GlyphScale float32 `toml:"glyph_scale"`
	ColorScale float32 `toml:"color_scale"`
	ColorFloor float32 `toml:"color_floor"`

	Workers int  `toml:"workers"`
	Debug   bool `toml:"debug"`
}

// Default returns the reference settings
func Default() Config {
	return Config{
		Frames:      parameter.FrameCount,
		FrameDelay:  Duration(parameter.FrameUpdateInterval),
		AngularStep: parameter.AngularStepDeg,
		Backend:     BackendANSI,
		Color:       ColorAuto,
		Mode:        render.GlyphAndColor.String(),
		Redraw:      render.FullClear.String(),
		Ramp:        "classic",
		Palette:     "spectrum",
		GlyphScale:  parameter.GlyphScale,
		ColorScale:  parameter.ColorScale,
		ColorFloor:  parameter.ColorFloor,
		Workers:     parameter.RenderWorkers,
	}
}

// Load decodes a TOML file over the defaults
// Keys absent from the file keep their default, unknown keys are rejected
func Load(path string) (Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	if err := Decode(f, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads TOML from r into cfg
func Decode(r io.Reader, cfg *Config) error {
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("%w: %s", ErrInvalid, strict.String())
		}
		return err
	}
	return nil
}

// Encode writes cfg as TOML
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Validate checks ranges and names, reporting every problem found
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Frames < 0 {
		bad("frames %d is negative", c.Frames)
	}
	if c.FrameDelay < 0 {
		bad("frame_delay %v is negative", time.Duration(c.FrameDelay))
	}
	if !finite(c.AngularStep) {
		bad("angular_step %v is not finite", c.AngularStep)
	}

	switch c.Backend {
	case BackendANSI, BackendTcell, BackendPlain:
	default:
		bad("backend %q, want ansi, tcell or plain", c.Backend)
	}
	switch c.Color {
	case ColorAuto, ColorTrueColor, Color256, ColorNone:
	default:
		bad("color %q, want auto, truecolor, 256 or none", c.Color)
	}
	if _, err := render.ParseMode(c.Mode); err != nil {
		bad("%v", err)
	}
	if _, err := render.ParseRedraw(c.Redraw); err != nil {
		bad("%v", err)
	}
	if _, err := c.resolveRamp(); err != nil {
		bad("%v", err)
	}
	if _, ok := visual.Palettes[c.Palette]; !ok {
		bad("palette %q, want spectrum, ocean or ember", c.Palette)
	}

	if !(c.GlyphScale > 0) || !finite(c.GlyphScale) {
		bad("glyph_scale %v must be positive", c.GlyphScale)
	}
	if !(c.ColorScale >= 0) || !finite(c.ColorScale) {
		bad("color_scale %v must not be negative", c.ColorScale)
	}
	if !(c.ColorFloor >= 0 && c.ColorFloor <= 1) {
		bad("color_floor %v outside [0,1]", c.ColorFloor)
	}
	if c.Workers < 1 || c.Workers > maxWorkers {
		bad("workers %d outside [1,%d]", c.Workers, maxWorkers)
	}

	return errors.Join(errs...)
}

func finite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}
