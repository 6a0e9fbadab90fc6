package texture

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// ChromaKey copies img into a new RGBA, turning every opaque pixel that
// matches key exactly into a fully transparent one.
func ChromaKey(img image.Image, key color.RGBA) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)

	for i := 0; i+3 < len(dst.Pix); i += 4 {
		px := dst.Pix[i : i+4 : i+4]
		if px[3] == 0xff && px[0] == key.R && px[1] == key.G && px[2] == key.B {
			px[0], px[1], px[2], px[3] = 0, 0, 0, 0
		}
	}
	return dst
}

// Resize resamples src by scale with Catmull-Rom. Each side is at least
// one pixel.
func Resize(src *image.RGBA, scale float64) *image.RGBA {
	b := src.Bounds()
	w := int(float64(b.Dx()) * scale)
	h := int(float64(b.Dy()) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if w == b.Dx() && h == b.Dy() {
		return src
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}
