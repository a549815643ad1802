package hal

import (
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRunHeadlessStopsAfterTicks(t *testing.T) {
	snap := filepath.Join(t.TempDir(), "frame.png")
	steps := 0
	err := RunHeadless(context.Background(), Config{Width: 16, Height: 8, Scale: 2},
		HeadlessConfig{Hz: 1000, Ticks: 3, Snapshot: snap},
		func(h HAL) func() error {
			h.Display().FrameBuffer().SetPixel(0, 0, true)
			return func() error {
				steps++
				return nil
			}
		})
	if err != nil {
		t.Fatalf("RunHeadless() error = %v", err)
	}
	if steps != 3 {
		t.Fatalf("steps = %d, want 3", steps)
	}

	f, err := os.Open(snap)
	if err != nil {
		t.Fatalf("open snapshot: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 16 {
		t.Fatalf("snapshot bounds = %v, want 32x16", b)
	}
	if r, _, _, _ := img.At(0, 0).RGBA(); r>>8 != 255 {
		t.Fatalf("lit LED red = %d, want 255", r>>8)
	}
}

func TestRunHeadlessCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := RunHeadless(ctx, Config{Width: 4, Height: 4}, HeadlessConfig{Hz: 100}, func(HAL) func() error { return nil })
	if err != context.DeadlineExceeded {
		t.Fatalf("RunHeadless() error = %v, want deadline exceeded", err)
	}
}

func TestRunHeadlessStepError(t *testing.T) {
	want := errors.New("step failed")
	err := RunHeadless(context.Background(), Config{Width: 4, Height: 4}, HeadlessConfig{Hz: 1000},
		func(HAL) func() error { return func() error { return want } })
	if err != want {
		t.Fatalf("RunHeadless() error = %v, want %v", err, want)
	}
}
