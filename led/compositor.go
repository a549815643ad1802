package led

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrNoContext is returned when a surface cannot provide a rendering context.
var ErrNoContext = errors.New("no rendering context")

// Logger receives newline-free diagnostic lines.
type Logger interface {
	WriteLineString(s string)
}

type nopLogger struct{}

func (nopLogger) WriteLineString(string) {}

// Surface is a fixed-size drawable able to hand out a rendering context.
type Surface interface {
	Acquire(width, height int) (Device, error)
}

// Device is a rendering context bound to a Surface. It owns one program, one
// single-channel texture and one quad. All calls come from a single goroutine.
type Device interface {
	// CompileProgram compiles and links the program. A failure leaves the
	// device usable; Draw then produces an undefined but safe image.
	CompileProgram(src ProgramSource) error
	// NewTexture allocates a one-byte-per-texel image initialised from pix.
	NewTexture(width, height int, pix []byte) error
	// NewQuad uploads the full-screen geometry.
	NewQuad(q [4]QuadVertex) error
	// Upload overwrites the whole texture.
	Upload(pix []byte)
	// Draw issues one full-screen draw with the compiled program.
	Draw(p GlowParams)
}

// Compositor presents a FrameBuffer through the glow program every frame.
type Compositor struct {
	fb      *FrameBuffer
	dev     Device
	params  GlowParams
	log     Logger
	scratch []byte
}

// CompositorOption configures a Compositor.
type CompositorOption func(*Compositor)

// WithBlurRadius sets the blur tap offset in texels.
func WithBlurRadius(r float64) CompositorOption {
	return func(c *Compositor) { c.params.BlurRadius = r }
}

// WithTint sets the unlit and lit colours.
func WithTint(dark, bright colorful.Color) CompositorOption {
	return func(c *Compositor) {
		c.params.Dark = dark
		c.params.Bright = bright
	}
}

// WithLogger routes compositor diagnostics to l.
func WithLogger(l Logger) CompositorOption {
	return func(c *Compositor) {
		if l != nil {
			c.log = l
		}
	}
}

// NewCompositor acquires a context from surface and sets up the program,
// texture and quad, in that order. Only the context is mandatory: a program
// that fails to compile is logged and construction continues.
func NewCompositor(surface Surface, fb *FrameBuffer, opts ...CompositorOption) (*Compositor, error) {
	if fb == nil {
		return nil, errors.New("compositor: nil framebuffer")
	}
	c := &Compositor{
		fb:      fb,
		params:  DefaultGlowParams(),
		log:     nopLogger{},
		scratch: make([]byte, fb.Width()*fb.Height()),
	}
	for _, opt := range opts {
		opt(c)
	}

	if surface == nil {
		return nil, fmt.Errorf("compositor: %w", ErrNoContext)
	}
	dev, err := surface.Acquire(fb.Width(), fb.Height())
	if err != nil {
		return nil, fmt.Errorf("compositor: acquire %dx%d: %w", fb.Width(), fb.Height(), err)
	}
	if dev == nil {
		return nil, fmt.Errorf("compositor: acquire %dx%d: %w", fb.Width(), fb.Height(), ErrNoContext)
	}
	c.dev = dev

	if err := dev.CompileProgram(GlowProgram); err != nil {
		c.log.WriteLineString(fmt.Sprintf("compositor: compile program %q: %v", GlowProgram.Name, err))
	}

	fb.Snapshot(c.scratch)
	if err := dev.NewTexture(fb.Width(), fb.Height(), c.scratch); err != nil {
		return nil, fmt.Errorf("compositor: texture: %w", err)
	}
	if err := dev.NewQuad(FullScreenQuad()); err != nil {
		return nil, fmt.Errorf("compositor: quad: %w", err)
	}
	return c, nil
}

// Params returns the glow uniforms in use.
func (c *Compositor) Params() GlowParams { return c.params }

// Device returns the rendering context.
func (c *Compositor) Device() Device { return c.dev }

// Render uploads the whole framebuffer and draws one frame. Hosts call it
// once per refresh tick for as long as the display runs.
func (c *Compositor) Render() {
	c.fb.Snapshot(c.scratch)
	c.dev.Upload(c.scratch)
	c.dev.Draw(c.params)
}
