// Package app is the departure board: it refreshes the panel text from the
// schedule and lights the LEDs under touches.
package app

import (
	"time"

	"ledsim/hal"
	"ledsim/led"
	"ledsim/schedule"
)

// Config tunes the board.
type Config struct {
	// Uppercase folds text before lookup.
	Uppercase bool
	// UpdateEvery is the text refresh period in host ticks (milliseconds).
	UpdateEvery time.Duration
	// Now is the clock shown on the board. Defaults to time.Now.
	Now func() time.Time
}

type board struct {
	h     hal.HAL
	disp  *led.Display
	src   schedule.Source
	every uint64

	now  uint64
	next uint64
}

// New starts the board with default config.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

// NewWithConfig renders the first board immediately and returns the step
// function the host calls once per frame.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	b := newBoard(h, cfg)
	return b.step
}

func newBoard(h hal.HAL, cfg Config) *board {
	every := uint64(cfg.UpdateEvery / time.Millisecond)
	if every == 0 {
		every = 1000
	}
	b := &board{
		h:     h,
		disp:  led.NewDisplay(h.Display().FrameBuffer(), h.Logger(), led.WithUppercase(cfg.Uppercase)),
		src:   schedule.Source{Now: cfg.Now},
		every: every,
	}
	b.refresh()
	return b
}

func (b *board) step() error {
	b.drainTicks()
	if b.now >= b.next {
		b.refresh()
	}
	b.drainTouches()
	return nil
}

func (b *board) refresh() {
	b.disp.Update(b.src.Lines())
	b.next = b.now + b.every
}

func (b *board) drainTicks() {
	ht := b.h.Time()
	if ht == nil {
		return
	}
	ch := ht.Ticks()
	if ch == nil {
		return
	}
	for {
		select {
		case seq := <-ch:
			if seq > b.now {
				b.now = seq
			}
		default:
			return
		}
	}
}

func (b *board) drainTouches() {
	in := b.h.Input()
	if in == nil || in.Touch() == nil {
		return
	}
	ch := in.Touch().Events()
	fb := b.h.Display().FrameBuffer()
	for {
		select {
		case ev := <-ch:
			ev.Mapper.Apply(fb, ev.Points)
		default:
			return
		}
	}
}
