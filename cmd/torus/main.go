package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"golang.org/x/term"

	"github.com/lixenwraith/termtorus/config"
	"github.com/lixenwraith/termtorus/display"
	"github.com/lixenwraith/termtorus/engine"
	"github.com/lixenwraith/termtorus/parameter"
	"github.com/lixenwraith/termtorus/status"
	"github.com/lixenwraith/termtorus/terminal"
)

func main() {
	// Terminal must be restored even if rendering panics
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mTORUS CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code
func run(args []string) int {
	cfg, opts, err := parseConfig(args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "torus: %v\n", err)
		return 2
	}
	if opts.printConfig {
		if err := cfg.Encode(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "torus: %v\n", err)
			return 1
		}
		return 0
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	colors, err := cfg.ColorMode()
	if err != nil {
		fmt.Fprintf(os.Stderr, "torus: %v\n", err)
		return 2
	}
	renderer, err := cfg.Renderer(colors)
	if err != nil {
		fmt.Fprintf(os.Stderr, "torus: %v\n", err)
		return 2
	}

	disp, err := openDisplay(cfg, colors)
	if err != nil {
		fmt.Fprintf(os.Stderr, "torus: %v\n", err)
		return 1
	}
	defer disp.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics := status.NewRegistry()
	driver := &engine.Driver{
		Renderer:      renderer,
		Display:       disp,
		Frames:        cfg.Frames,
		AngularStep:   cfg.AngularStep,
		StatsInterval: parameter.StatsInterval,
		Status:        metrics,
	}
	_, err = driver.Run(ctx)
	log.Printf("status: %s", metrics.Snapshot())

	// Restore before reporting so the message lands on the normal screen
	disp.Close()
	if err != nil {
		log.Printf("run failed: %v", err)
		fmt.Fprintf(os.Stderr, "torus: %v\n", err)
		return 1
	}
	return 0
}

// openDisplay creates the configured output backend
func openDisplay(cfg config.Config, colors terminal.ColorMode) (engine.Display, error) {
	delay := cfg.FrameDelay.Std()
	switch cfg.Backend {
	case config.BackendTcell:
		return display.NewTcell(nil, delay)
	case config.BackendPlain:
		w, h, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			w, h = 0, 0
		}
		return display.NewStream(os.Stdout, w, h, colors, delay), nil
	default:
		return display.NewANSI(terminal.New(colors), delay)
	}
}
