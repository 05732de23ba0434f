// Package render turns marched samples into glyph and color cells.
package render

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/termtorus/march"
	"github.com/lixenwraith/termtorus/parameter"
	"github.com/lixenwraith/termtorus/parameter/visual"
	"github.com/lixenwraith/termtorus/sdf"
	"github.com/lixenwraith/termtorus/vmath"
)

// Mode selects what a lit cell carries
type Mode uint8

const (
	GlyphAndColor Mode = iota
	GlyphOnly
)

func (m Mode) String() string {
	if m == GlyphOnly {
		return "glyph"
	}
	return "color"
}

// ParseMode accepts "color" or "glyph"
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "color", "glyph+color", "":
		return GlyphAndColor, nil
	case "glyph", "mono":
		return GlyphOnly, nil
	}
	return GlyphAndColor, fmt.Errorf("unknown render mode %q", s)
}

// Redraw selects how a display replaces the previous frame
// Both strategies rewrite every cell every frame
type Redraw uint8

const (
	// FullClear erases the screen before drawing
	FullClear Redraw = iota
	// InPlace homes the cursor and overwrites
	InPlace
)

func (r Redraw) String() string {
	if r == InPlace {
		return "inplace"
	}
	return "clear"
}

// ParseRedraw accepts "clear" or "inplace"
func ParseRedraw(s string) (Redraw, error) {
	switch strings.ToLower(s) {
	case "clear", "full", "":
		return FullClear, nil
	case "inplace", "overwrite":
		return InPlace, nil
	}
	return FullClear, fmt.Errorf("unknown redraw strategy %q", s)
}

// Renderer computes whole frames
// Fields are read-only while Render runs
type Renderer struct {
	Camera   march.Camera
	Scene    march.Scene
	Ramp     Ramp
	Gradient *Gradient

	Mode   Mode
	Redraw Redraw

	GlyphScale float32
	ColorScale float32
	ColorFloor float32

	// Workers > 1 splits rows across goroutines
	Workers int

	// Hoisted ray grid, rebuilt when the frame size or camera changes
	rays         []vmath.Vec3
	raysW, raysH int
	raysCam      march.Camera
}

// NewReference builds a renderer from the reference constants
func NewReference(mode Mode, redraw Redraw) *Renderer {
	origin := vmath.V3(parameter.CameraOriginX, parameter.CameraOriginY, parameter.CameraOriginZ)
	ramp := Ramp(visual.RampClassic)
	torus := sdf.Torus{
		Size: vmath.V2(parameter.TorusMajorRadius, parameter.TorusTubeRadius),
		Axis: vmath.V3(1, 1, 1).Normalize(),
	}
	light := vmath.V3(parameter.LightX, parameter.LightY, parameter.LightZ)

	return &Renderer{
		Camera:     march.Camera{Origin: origin, PixelAspect: parameter.PixelAspect},
		Scene:      march.NewScene(torus, light, origin, ramp.MinShade()),
		Ramp:       ramp,
		Gradient:   MustGradient(visual.PaletteSpectrum),
		Mode:       mode,
		Redraw:     redraw,
		GlyphScale: parameter.GlyphScale,
		ColorScale: parameter.ColorScale,
		ColorFloor: parameter.ColorFloor,
		Workers:    parameter.RenderWorkers,
	}
}

// Intensity converts a diffuse term to gradient input in [ColorFloor, 1]
func (r *Renderer) Intensity(diff float32) float32 {
	if r.ColorScale <= 0 {
		return 1
	}
	return vmath.Clamp(diff/r.ColorScale, r.ColorFloor, 1)
}

// Shade maps one sample to its cell
func (r *Renderer) Shade(s march.Sample) Cell {
	if s.State != march.Hit {
		return Cell{Glyph: r.Ramp.Background()}
	}
	c := Cell{
		Glyph: r.Ramp.Glyph(s.Diff, r.GlyphScale),
		State: march.Hit,
	}
	if r.Mode == GlyphAndColor && r.Gradient != nil {
		c.Color = r.Gradient.At(r.Intensity(s.Diff))
		c.Colored = true
	}
	return c
}

// Render marches every cell of fb with the torus spun to axis
// Each cell is written by exactly one goroutine
// Returns ctx.Err() if cancelled before every row was rendered
func (r *Renderer) Render(ctx context.Context, fb *FrameBuffer, axis vmath.Vec3) error {
	if fb.Width == 0 || fb.Height == 0 {
		return nil
	}
	r.prepareRays(fb.Width, fb.Height)
	scene := r.Scene.WithAxis(axis)

	if r.Workers <= 1 {
		for y := 0; y < fb.Height; y++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			r.renderRow(fb, &scene, y)
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.Workers)
	for y := 0; y < fb.Height; y++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r.renderRow(fb, &scene, y)
			return nil
		})
	}
	return g.Wait()
}

// renderRow fills row y
func (r *Renderer) renderRow(fb *FrameBuffer, scene *march.Scene, y int) {
	row := fb.Row(y)
	rays := r.rays[y*fb.Width : (y+1)*fb.Width]
	for x := range row {
		row[x] = r.Shade(scene.March(r.Camera.Origin, rays[x]))
	}
}

// prepareRays rebuilds the ray grid on size or camera change
func (r *Renderer) prepareRays(width, height int) {
	if r.rays != nil && r.raysW == width && r.raysH == height && r.raysCam == r.Camera {
		return
	}
	r.rays = r.Camera.Rays(width, height)
	r.raysW, r.raysH = width, height
	r.raysCam = r.Camera
}
