package config

import (
	"fmt"

	"github.com/lixenwraith/termtorus/parameter/visual"
	"github.com/lixenwraith/termtorus/render"
	"github.com/lixenwraith/termtorus/terminal"
)

// resolveRamp looks up a named ramp, anything else is taken as a literal ramp
func (c Config) resolveRamp() (render.Ramp, error) {
	if s, ok := visual.Ramps[c.Ramp]; ok {
		return render.Ramp(s), nil
	}
	return render.NewRamp(c.Ramp)
}

// ColorMode resolves the color setting, detecting it from the environment on auto
func (c Config) ColorMode() (terminal.ColorMode, error) {
	return terminal.ParseColorMode(c.Color)
}

// Renderer builds the renderer for this config
// A colorless terminal always renders glyphs only
func (c Config) Renderer(colors terminal.ColorMode) (*render.Renderer, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	mode, _ := render.ParseMode(c.Mode)
	if colors == terminal.ColorModeNone {
		mode = render.GlyphOnly
	}
	redraw, _ := render.ParseRedraw(c.Redraw)
	ramp, _ := c.resolveRamp()
	gradient, err := render.NewGradient(visual.Palettes[c.Palette])
	if err != nil {
		return nil, fmt.Errorf("palette %s: %w", c.Palette, err)
	}

	r := render.NewReference(mode, redraw)
	r.Ramp = ramp
	r.Scene.MinShade = ramp.MinShade()
	r.Gradient = gradient
	r.GlyphScale = c.GlyphScale
	r.ColorScale = c.ColorScale
	r.ColorFloor = c.ColorFloor
	r.Workers = c.Workers
	return r, nil
}
