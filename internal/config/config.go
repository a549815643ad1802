// Package config collects runtime settings from defaults, an optional .env
// file and LEDSIM_* environment variables. Command-line flags are applied on
// top by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/lucasb-eyer/go-colorful"
)

// EnvPrefix prefixes every recognised variable.
const EnvPrefix = "LEDSIM_"

// Config holds every tunable of the simulator.
type Config struct {
	Width  int
	Height int
	Scale  int

	BlurRadius float64
	Dark       colorful.Color
	Bright     colorful.Color

	Uppercase   bool
	UpdateEvery time.Duration

	Headless bool
	Terminal bool
	Hz       int
	Ticks    uint64
	Snapshot string
	Debug    bool
}

// Default returns the stock 256x128 red panel.
func Default() Config {
	return Config{
		Width:       256,
		Height:      128,
		Scale:       4,
		BlurRadius:  0.2,
		Dark:        colorful.Color{R: 0.2, G: 0, B: 0},
		Bright:      colorful.Color{R: 1, G: 0, B: 0},
		UpdateEvery: time.Second,
		Hz:          60,
	}
}

// Load returns Default overridden by the variables in envFile (if it exists)
// and then by the process environment.
func Load(envFile string) (Config, error) {
	vars := map[string]string{}
	if envFile != "" {
		m, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			vars = m
		case errors.Is(err, fs.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("config: read %s: %w", envFile, err)
		}
	}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(k, EnvPrefix) {
			vars[k] = v
		}
	}
	return FromMap(vars)
}

// FromMap applies LEDSIM_* entries of vars to Default.
func FromMap(vars map[string]string) (Config, error) {
	cfg := Default()
	p := parser{vars: vars}

	p.intVar("WIDTH", &cfg.Width)
	p.intVar("HEIGHT", &cfg.Height)
	p.intVar("SCALE", &cfg.Scale)
	p.floatVar("BLUR", &cfg.BlurRadius)
	p.colorVar("DARK", &cfg.Dark)
	p.colorVar("BRIGHT", &cfg.Bright)
	p.boolVar("UPPERCASE", &cfg.Uppercase)
	p.durationVar("UPDATE_EVERY", &cfg.UpdateEvery)
	p.boolVar("HEADLESS", &cfg.Headless)
	p.boolVar("TERMINAL", &cfg.Terminal)
	p.intVar("HZ", &cfg.Hz)
	p.uintVar("TICKS", &cfg.Ticks)
	p.strVar("SNAPSHOT", &cfg.Snapshot)
	p.boolVar("DEBUG", &cfg.Debug)
	if p.err != nil {
		return Config{}, p.err
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings the display cannot run with.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: invalid panel size %dx%d", c.Width, c.Height)
	}
	if c.Scale < 1 {
		return fmt.Errorf("config: invalid scale %d", c.Scale)
	}
	if c.BlurRadius < 0 {
		return fmt.Errorf("config: invalid blur radius %v", c.BlurRadius)
	}
	if c.UpdateEvery <= 0 {
		return fmt.Errorf("config: invalid update interval %v", c.UpdateEvery)
	}
	if c.Hz <= 0 {
		return fmt.Errorf("config: invalid hz %d", c.Hz)
	}
	if c.Headless && c.Terminal {
		return errors.New("config: headless and terminal modes are exclusive")
	}
	return nil
}

// ParseColor parses a #rrggbb or #rgb colour.
func ParseColor(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	return colorful.Hex(s)
}

type parser struct {
	vars map[string]string
	err  error
}

func (p *parser) lookup(key string) (string, bool) {
	if p.err != nil {
		return "", false
	}
	v, ok := p.vars[EnvPrefix+key]
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func (p *parser) fail(key, v string, err error) {
	p.err = fmt.Errorf("config: %s%s=%q: %w", EnvPrefix, key, v, err)
}

func (p *parser) intVar(key string, dst *int) {
	if v, ok := p.lookup(key); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			p.fail(key, v, err)
			return
		}
		*dst = n
	}
}

func (p *parser) uintVar(key string, dst *uint64) {
	if v, ok := p.lookup(key); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			p.fail(key, v, err)
			return
		}
		*dst = n
	}
}

func (p *parser) floatVar(key string, dst *float64) {
	if v, ok := p.lookup(key); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			p.fail(key, v, err)
			return
		}
		*dst = f
	}
}

func (p *parser) boolVar(key string, dst *bool) {
	if v, ok := p.lookup(key); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			p.fail(key, v, err)
			return
		}
		*dst = b
	}
}

func (p *parser) durationVar(key string, dst *time.Duration) {
	if v, ok := p.lookup(key); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			p.fail(key, v, err)
			return
		}
		*dst = d
	}
}

func (p *parser) colorVar(key string, dst *colorful.Color) {
	if v, ok := p.lookup(key); ok {
		c, err := ParseColor(v)
		if err != nil {
			p.fail(key, v, err)
			return
		}
		*dst = c
	}
}

func (p *parser) strVar(key string, dst *string) {
	if v, ok := p.lookup(key); ok {
		*dst = v
	}
}
