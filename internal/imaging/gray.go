package imaging

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Grayscale converts any image to 8-bit grayscale using the standard
// luma weights. Images that are already *image.Gray are returned as-is.
func Grayscale(src image.Image) *image.Gray {
	if g, ok := src.(*image.Gray); ok {
		return g
	}
	bounds := src.Bounds()
	dst := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dst.Set(x, y, color.GrayModel.Convert(src.At(x, y)))
		}
	}
	return dst
}

// Scaling bounds: small crops are upscaled so OCR has enough pixels
// to work with, very wide frames are downscaled to keep the engine
// fast.
const (
	MinSideTarget = 400
	MaxWidth      = 1200
)

// ScaleForOCR resizes g so that its longer side is at least
// MinSideTarget and its width is at most MaxWidth. Returns g unchanged
// when no resize is needed.
func ScaleForOCR(g *image.Gray) *image.Gray {
	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return g
	}
	longSide := w
	if h > w {
		longSide = h
	}
	switch {
	case longSide < MinSideTarget:
		scale := float64(MinSideTarget) / float64(longSide)
		return resize(g, int(float64(w)*scale), int(float64(h)*scale))
	case w > MaxWidth:
		scale := float64(MaxWidth) / float64(w)
		return resize(g, MaxWidth, int(float64(h)*scale))
	default:
		return g
	}
}

func resize(g *image.Gray, w, h int) *image.Gray {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewGray(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), g, g.Bounds(), xdraw.Over, nil)
	return dst
}
