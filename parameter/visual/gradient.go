package visual

import (
	"github.com/lixenwraith/termtorus/terminal"
)

// GradientStop anchors one color at an intensity threshold in [0,1]
type GradientStop struct {
	T     float32
	Color terminal.RGB
}

// PaletteSpectrum runs through eight equal bands:
// dark blue -> blue -> cyan -> green -> yellow -> orange -> red -> pink -> white
// Band edges sit on multiples of 1/8, each stop is the color at the start of its band
var PaletteSpectrum = []GradientStop{
	{0.000, terminal.RGB{R: 0, G: 0, B: 50}},
	{0.125, terminal.RGB{R: 0, G: 0, B: 200}},
	{0.250, terminal.RGB{R: 0, G: 150, B: 200}},
	{0.375, terminal.RGB{R: 0, G: 255, B: 0}},
	{0.500, terminal.RGB{R: 200, G: 255, B: 0}},
	{0.625, terminal.RGB{R: 255, G: 200, B: 0}},
	{0.750, terminal.RGB{R: 255, G: 0, B: 0}},
	{0.875, terminal.RGB{R: 255, G: 150, B: 150}},
	{1.000, terminal.RGB{R: 255, G: 255, B: 255}},
}

// PaletteOcean stays in cool hues: navy -> cobalt -> cyan -> ice
var PaletteOcean = []GradientStop{
	{0.00, terminal.RGB{R: 15, G: 25, B: 50}},
	{0.35, terminal.RGB{R: 50, G: 80, B: 200}},
	{0.70, terminal.RGB{R: 0, G: 206, B: 209}},
	{1.00, terminal.RGB{R: 240, G: 255, B: 255}},
}

// PaletteEmber is a heat ramp: oxblood -> flame -> gold -> cream
var PaletteEmber = []GradientStop{
	{0.00, terminal.RGB{R: 100, G: 20, B: 20}},
	{0.40, terminal.RGB{R: 240, G: 100, B: 30}},
	{0.75, terminal.RGB{R: 255, G: 215, B: 0}},
	{1.00, terminal.RGB{R: 255, G: 255, B: 200}},
}

// Palettes maps configuration names to stop tables
var Palettes = map[string][]GradientStop{
	"spectrum": PaletteSpectrum,
	"ocean":    PaletteOcean,
	"ember":    PaletteEmber,
}
