package hal

import (
	"fmt"
	"io"
	"os"
	"sync"

	"ledsim/led"
)

type hostHAL struct {
	logger *hostLogger
	fb     *led.FrameBuffer
	touch  *hostTouch
	t      *hostTime
}

// New returns a host HAL with a width x height panel.
func New(width, height int) HAL {
	return newHost(Config{Width: width, Height: height})
}

func newHost(cfg Config) *hostHAL {
	cfg = cfg.withDefaults()
	return &hostHAL{
		logger: &hostLogger{w: os.Stdout},
		fb:     led.NewFrameBuffer(cfg.Width, cfg.Height),
		touch:  newHostTouch(),
		t:      newHostTime(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{touch: h.touch} }
func (h *hostHAL) Time() Time       { return h.t }

// newCompositor builds the glow compositor for this host's panel on surface.
func (h *hostHAL) newCompositor(surface led.Surface, cfg Config) (*led.Compositor, error) {
	opts := append([]led.CompositorOption{led.WithLogger(h.logger)}, cfg.Glow...)
	return led.NewCompositor(surface, h.fb, opts...)
}

type hostDisplay struct {
	fb *led.FrameBuffer
}

func (d hostDisplay) FrameBuffer() *led.FrameBuffer { return d.fb }

type hostInput struct {
	touch *hostTouch
}

func (in hostInput) Touch() Touch { return in.touch }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// hostTouch queues pointer contacts for the app step. Pollers drop events
// when the app falls behind.
type hostTouch struct {
	ch chan TouchEvent
}

func newHostTouch() *hostTouch {
	return &hostTouch{ch: make(chan TouchEvent, 64)}
}

func (t *hostTouch) Events() <-chan TouchEvent { return t.ch }

func (t *hostTouch) push(ev TouchEvent) {
	if len(ev.Points) == 0 {
		return
	}
	select {
	case t.ch <- ev:
	default:
	}
}
