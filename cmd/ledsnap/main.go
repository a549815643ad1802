// Command ledsnap renders lines of text on the LED panel and writes the
// composited frame to a PNG file.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"ledsim/internal/config"
	"ledsim/led"
)

func main() {
	var (
		outPath = flag.String("out", "", "Output PNG file.")
		scale   = flag.Int("scale", 4, "Output magnification.")
		width   = flag.Int("width", 256, "Panel width in LEDs.")
		height  = flag.Int("height", 128, "Panel height in LEDs.")
		blur    = flag.Float64("blur", led.DefaultBlurRadius, "Glow blur radius in texels.")
		dark    = flag.String("dark", led.DefaultDarkTint.Hex(), "Unlit LED colour.")
		bright  = flag.String("bright", led.DefaultBrightTint.Hex(), "Lit LED colour.")
		upper   = flag.Bool("upper", false, "Fold text to upper case.")
		caption = flag.String("caption", "", "Text drawn centred on the bottom row.")
	)
	flag.Parse()

	if *outPath == "" {
		fatalf("usage: ledsnap -out board.png [-scale 4] [-caption text] [line ...]\n       (lines are read from stdin when none are given)")
	}

	lines := flag.Args()
	if len(lines) == 0 {
		var err error
		if lines, err = readLines(os.Stdin); err != nil {
			fatalf("read stdin: %v", err)
		}
	}

	darkC, err := config.ParseColor(*dark)
	if err != nil {
		fatalf("-dark: %v", err)
	}
	brightC, err := config.ParseColor(*bright)
	if err != nil {
		fatalf("-bright: %v", err)
	}

	fb := led.NewFrameBuffer(*width, *height)
	disp := led.NewDisplay(fb, stderrLogger{}, led.WithUppercase(*upper))
	disp.Update(lines)
	if *caption != "" {
		x := (fb.Width() - led.TextWidth(*caption)) / 2
		disp.DrawText(x, fb.Height()-led.GlyphHeight-1, *caption)
	}

	surface := led.NewSoftwareSurface(1)
	comp, err := led.NewCompositor(surface, fb,
		led.WithLogger(stderrLogger{}),
		led.WithBlurRadius(*blur),
		led.WithTint(darkC, brightC),
	)
	if err != nil {
		fatalf("compositor: %v", err)
	}
	comp.Render()

	if err := writePNG(*outPath, surface, *scale); err != nil {
		fatalf("write: %v", err)
	}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

func writePNG(path string, surface *led.SoftwareSurface, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := led.EncodePNG(f, surface.Image(), scale); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

type stderrLogger struct{}

func (stderrLogger) WriteLineString(s string) { _, _ = fmt.Fprintln(os.Stderr, s) }

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
