package hal

import (
	"errors"

	"ledsim/led"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// ErrNotImplemented is returned for host features missing from this build.
var ErrNotImplemented = errors.New("not implemented")

// Display provides the LED grid shown by the host.
type Display interface {
	FrameBuffer() *led.FrameBuffer
}

// TouchEvent is the set of contacts seen in one poll, in device coordinates,
// together with the mapping from the device to the grid at that moment.
type TouchEvent struct {
	Points []led.TouchPoint
	Mapper led.TouchMapper
}

// Touch provides pointer contacts (touch screen, mouse, terminal mouse).
type Touch interface {
	Events() <-chan TouchEvent
}

// Input provides access to input devices (if available).
type Input interface {
	Touch() Touch
}

// Time provides a base tick stream.
//
// The tick duration is platform-defined; higher-level timers live in userland.
type Time interface {
	Ticks() <-chan uint64
}

// HAL provides the only contact point between the simulator and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Time() Time
}

// Config describes the panel and how hosts present it.
type Config struct {
	Width  int
	Height int
	// Scale is the window or snapshot magnification.
	Scale int
	Glow  []led.CompositorOption
	Debug bool
}

func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = 256
	}
	if c.Height <= 0 {
		c.Height = 128
	}
	if c.Scale < 1 {
		c.Scale = 1
	}
	return c
}
