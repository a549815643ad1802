package hal

import (
	"context"
	"fmt"
	"os"
	"time"

	"ledsim/led"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Hz    int
	Ticks uint64
	// Snapshot, when set, names a PNG file written with the last frame.
	Snapshot string
}

// RunHeadless runs the app without opening a window. Frames are composited on
// the CPU so the full pipeline runs even on machines without a GPU.
func RunHeadless(ctx context.Context, cfg Config, hcfg HeadlessConfig, newApp func(HAL) func() error) error {
	if hcfg.Hz <= 0 {
		hcfg.Hz = 60
	}
	cfg = cfg.withDefaults()

	h := newHost(cfg)
	surface := led.NewSoftwareSurface(cfg.Scale)
	comp, err := h.newCompositor(surface, cfg)
	if err != nil {
		return err
	}
	step := newApp(h)

	d := time.Second / time.Duration(hcfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", hcfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			if err := writeSnapshot(hcfg.Snapshot, surface); err != nil {
				return err
			}
			return ctx.Err()
		case <-t.C:
			h.t.step(1)
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			comp.Render()
			tick++
			if hcfg.Ticks > 0 && tick >= hcfg.Ticks {
				return writeSnapshot(hcfg.Snapshot, surface)
			}
		}
	}
}

func writeSnapshot(path string, surface *led.SoftwareSurface) error {
	if path == "" {
		return nil
	}
	img := surface.Image()
	if img == nil {
		return fmt.Errorf("snapshot %s: no frame rendered", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := led.EncodePNG(f, img, 1); err != nil {
		f.Close()
		return fmt.Errorf("snapshot %s: %w", path, err)
	}
	return f.Close()
}
