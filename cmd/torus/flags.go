package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/lixenwraith/termtorus/config"
)

// float32Value adapts a float32 field to flag.Value
type float32Value struct{ p *float32 }

func (v float32Value) String() string {
	if v.p == nil {
		return "0"
	}
	return strconv.FormatFloat(float64(*v.p), 'g', -1, 32)
}

func (v float32Value) Set(s string) error {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return err
	}
	*v.p = float32(f)
	return nil
}

// options are the command line settings outside the config file
type options struct {
	configPath  string
	printConfig bool
}

// parseConfig resolves defaults, then the -config file, then explicitly set flags
func parseConfig(args []string, output io.Writer) (config.Config, options, error) {
	var opts options
	fl := config.Default()

	fs := flag.NewFlagSet("torus", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.configPath, "config", "", "TOML config file")
	fs.BoolVar(&opts.printConfig, "print-config", false, "Print the effective config as TOML and exit")

	fs.IntVar(&fl.Frames, "frames", fl.Frames, "Frames to render, 0 runs until stopped")
	fs.DurationVar((*time.Duration)(&fl.FrameDelay), "delay", time.Duration(fl.FrameDelay), "Delay between frames")
	fs.Var(float32Value{&fl.AngularStep}, "step", "Axis spin per frame in degrees")
	fs.StringVar(&fl.Backend, "backend", fl.Backend, "Output: ansi, tcell, plain")
	fs.StringVar(&fl.Color, "color", fl.Color, "Color mode: auto, truecolor, 256, none")
	fs.StringVar(&fl.Mode, "mode", fl.Mode, "Render mode: color, glyph")
	fs.StringVar(&fl.Redraw, "redraw", fl.Redraw, "Redraw: clear, inplace")
	fs.StringVar(&fl.Ramp, "ramp", fl.Ramp, "Glyph ramp: classic, short, coarse or a literal ramp")
	fs.StringVar(&fl.Palette, "palette", fl.Palette, "Palette: spectrum, ocean, ember")
	fs.Var(float32Value{&fl.GlyphScale}, "glyph-scale", "Diffuse to ramp index scale")
	fs.Var(float32Value{&fl.ColorScale}, "color-scale", "Diffuse divisor for palette intensity")
	fs.Var(float32Value{&fl.ColorFloor}, "color-floor", "Minimum palette intensity")
	fs.IntVar(&fl.Workers, "workers", fl.Workers, "Row render workers")
	fs.BoolVar(&fl.Debug, "debug", fl.Debug, "Log to logs/torus.log")

	if err := fs.Parse(args); err != nil {
		return fl, opts, err
	}
	if fs.NArg() > 0 {
		return fl, opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return cfg, opts, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "frames":
			cfg.Frames = fl.Frames
		case "delay":
			cfg.FrameDelay = fl.FrameDelay
		case "step":
			cfg.AngularStep = fl.AngularStep
		case "backend":
			cfg.Backend = fl.Backend
		case "color":
			cfg.Color = fl.Color
		case "mode":
			cfg.Mode = fl.Mode
		case "redraw":
			cfg.Redraw = fl.Redraw
		case "ramp":
			cfg.Ramp = fl.Ramp
		case "palette":
			cfg.Palette = fl.Palette
		case "glyph-scale":
			cfg.GlyphScale = fl.GlyphScale
		case "color-scale":
			cfg.ColorScale = fl.ColorScale
		case "color-floor":
			cfg.ColorFloor = fl.ColorFloor
		case "workers":
			cfg.Workers = fl.Workers
		case "debug":
			cfg.Debug = fl.Debug
		}
	})

	return cfg, opts, cfg.Validate()
}
