package led

import (
	"image"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"
)

// Upscale returns img enlarged scale times with nearest-neighbour sampling so
// individual LEDs stay crisp.
func Upscale(img image.Image, scale int) image.Image {
	if scale <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// EncodePNG writes img, upscaled by scale, as a PNG.
func EncodePNG(w io.Writer, img image.Image, scale int) error {
	return png.Encode(w, Upscale(img, scale))
}
