package imaging

import (
	"image"
	"math"
)

// Rotate returns g rotated by degrees around its center, keeping the
// original dimensions. Samples falling outside the source replicate the
// nearest border pixel, matching the retry behavior of the original
// detector for slightly skewed plates.
func Rotate(g *image.Gray, degrees float64) *image.Gray {
	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 || degrees == 0 {
		return g
	}
	rad := degrees * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	cx, cy := float64(w)/2, float64(h)/2

	dst := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// inverse mapping: destination pixel -> source pixel
			dx, dy := float64(x)-cx, float64(y)-cy
			sx := cos*dx + sin*dy + cx
			sy := -sin*dx + cos*dy + cy
			ix := clampInt(int(math.Round(sx)), 0, w-1)
			iy := clampInt(int(math.Round(sy)), 0, h-1)
			dst.Pix[y*dst.Stride+x] = g.GrayAt(b.Min.X+ix, b.Min.Y+iy).Y
		}
	}
	return dst
}
