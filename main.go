package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"ledsim/app"
	"ledsim/hal"
	"ledsim/internal/buildinfo"
	"ledsim/internal/config"
	"ledsim/led"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		fatalf("%v", err)
	}

	var dark, bright string
	flag.IntVar(&cfg.Width, "width", cfg.Width, "Panel width in LEDs.")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Panel height in LEDs.")
	flag.IntVar(&cfg.Scale, "scale", cfg.Scale, "Window and snapshot magnification.")
	flag.Float64Var(&cfg.BlurRadius, "blur", cfg.BlurRadius, "Glow blur radius in texels.")
	flag.StringVar(&dark, "dark", cfg.Dark.Hex(), "Unlit LED colour.")
	flag.StringVar(&bright, "bright", cfg.Bright.Hex(), "Lit LED colour.")
	flag.BoolVar(&cfg.Uppercase, "upper", cfg.Uppercase, "Fold text to upper case.")
	flag.DurationVar(&cfg.UpdateEvery, "every", cfg.UpdateEvery, "Text refresh interval.")
	flag.BoolVar(&cfg.Headless, "headless", cfg.Headless, "Run without a window.")
	flag.BoolVar(&cfg.Terminal, "term", cfg.Terminal, "Draw the panel in the terminal.")
	flag.IntVar(&cfg.Hz, "hz", cfg.Hz, "Frame rate in headless and terminal mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", cfg.Ticks, "Stop after N frames in headless mode (0 = run forever).")
	flag.StringVar(&cfg.Snapshot, "snapshot", cfg.Snapshot, "Write the last headless frame to this PNG file.")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Show frame statistics.")
	flag.Parse()

	if cfg.Dark, err = config.ParseColor(dark); err != nil {
		fatalf("-dark: %v", err)
	}
	if cfg.Bright, err = config.ParseColor(bright); err != nil {
		fatalf("-bright: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		fatalf("%v", err)
	}

	hcfg := hal.Config{
		Width:  cfg.Width,
		Height: cfg.Height,
		Scale:  cfg.Scale,
		Glow: []led.CompositorOption{
			led.WithBlurRadius(cfg.BlurRadius),
			led.WithTint(cfg.Dark, cfg.Bright),
		},
		Debug: cfg.Debug,
	}
	acfg := app.Config{Uppercase: cfg.Uppercase, UpdateEvery: cfg.UpdateEvery}
	newApp := func(h hal.HAL) func() error {
		h.Logger().WriteLineString(fmt.Sprintf("ledsim %s: %dx%d panel, blur %.2f, started %s",
			buildinfo.String(), cfg.Width, cfg.Height, cfg.BlurRadius, time.Now().Format(time.RFC3339)))
		return app.NewWithConfig(h, acfg)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case cfg.Headless:
		err = hal.RunHeadless(ctx, hcfg, hal.HeadlessConfig{
			Hz:       cfg.Hz,
			Ticks:    cfg.Ticks,
			Snapshot: cfg.Snapshot,
		}, newApp)
	case cfg.Terminal:
		err = hal.RunTerminal(ctx, hcfg, cfg.Hz, newApp)
	default:
		err = hal.RunWindow(hcfg, newApp)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fatalf("%v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
