package hal

import (
	"context"
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"ledsim/led"
	"ledsim/term"
)

// RunTerminal presents the panel in the current terminal using half-block
// cells. Mouse presses become touches; Esc, q or Ctrl-C quit.
func RunTerminal(ctx context.Context, cfg Config, hz int, newApp func(HAL) func() error) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	return runTerminal(ctx, screen, cfg, hz, newApp, os.Stderr)
}

// runTerminal holds log lines while the terminal owns the screen and writes
// them to logOut once it has been restored.
func runTerminal(ctx context.Context, screen tcell.Screen, cfg Config, hz int, newApp func(HAL) func() error, logOut io.Writer) error {
	if hz <= 0 {
		hz = 30
	}
	cfg = cfg.withDefaults()

	h := newHost(cfg)
	var held bytes.Buffer
	h.logger.w = &held
	defer func() {
		h.logger.mu.Lock()
		defer h.logger.mu.Unlock()
		_, _ = logOut.Write(held.Bytes())
	}()

	surf := term.NewSurface(screen)
	comp, err := h.newCompositor(surf, cfg)
	if err != nil {
		return err
	}
	defer surf.Close()
	step := newApp(h)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go pollTerminal(ctx, cancel, surf, h.touch)

	t := time.NewTicker(time.Second / time.Duration(hz))
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			h.t.step(1)
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			comp.Render()
		}
	}
}

func pollTerminal(ctx context.Context, cancel context.CancelFunc, surf *term.Surface, touch *hostTouch) {
	screen := surf.Screen()
	for ctx.Err() == nil {
		ev := screen.PollEvent()
		if ev == nil {
			// Screen finalised.
			cancel()
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			surf.Resize()
			screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
				cancel()
			case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
				cancel()
			}
		case *tcell.EventMouse:
			if ev.Buttons()&tcell.Button1 == 0 {
				continue
			}
			col, row := ev.Position()
			p, m, ok := surf.Touch(col, row)
			if !ok {
				continue
			}
			touch.push(TouchEvent{Points: []led.TouchPoint{p}, Mapper: m})
		}
	}
}
