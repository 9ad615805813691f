package imaging

import "image"

// OtsuThreshold binarizes g using Otsu's method: the threshold that
// maximizes between-class variance of the histogram. Pixels above the
// threshold become white (255), the rest black (0).
func OtsuThreshold(g *image.Gray) *image.Gray {
	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	var hist [256]int
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			hist[g.GrayAt(x, y).Y]++
		}
	}
	total := w * h
	if total == 0 {
		return g
	}

	var sum float64
	for i, c := range hist {
		sum += float64(i) * float64(c)
	}
	var sumB, wB float64
	var best float64
	threshold := 0
	for t := 0; t < 256; t++ {
		wB += float64(hist[t])
		if wB == 0 {
			continue
		}
		wF := float64(total) - wB
		if wF == 0 {
			break
		}
		sumB += float64(t) * float64(hist[t])
		mB := sumB / wB
		mF := (sum - sumB) / wF
		between := wB * wF * (mB - mF) * (mB - mF)
		if between > best {
			best = between
			threshold = t
		}
	}
	return applyThreshold(g, func(x, y int, v uint8) bool { return int(v) > threshold })
}

// Adaptive-threshold defaults (window size must be odd).
const (
	DefaultAdaptiveWindow = 15
	DefaultAdaptiveBias   = 2
)

// AdaptiveThreshold binarizes g against the local mean of a
// window×window neighborhood minus bias, computed with an integral
// image so the cost is independent of the window size.
func AdaptiveThreshold(g *image.Gray, window, bias int) *image.Gray {
	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return g
	}
	if window < 3 {
		window = DefaultAdaptiveWindow
	}
	if window%2 == 0 {
		window++
	}
	r := window / 2

	// integral[y][x] = sum of pixels in [0,x) x [0,y)
	integral := make([]int64, (w+1)*(h+1))
	stride := w + 1
	for y := 0; y < h; y++ {
		var rowSum int64
		for x := 0; x < w; x++ {
			rowSum += int64(g.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
			integral[(y+1)*stride+x+1] = integral[y*stride+x+1] + rowSum
		}
	}

	return applyThreshold(g, func(x, y int, v uint8) bool {
		x0, y0 := clampInt(x-r, 0, w-1), clampInt(y-r, 0, h-1)
		x1, y1 := clampInt(x+r, 0, w-1), clampInt(y+r, 0, h-1)
		count := int64((x1 - x0 + 1) * (y1 - y0 + 1))
		sum := integral[(y1+1)*stride+x1+1] - integral[y0*stride+x1+1] -
			integral[(y1+1)*stride+x0] + integral[y0*stride+x0]
		mean := sum / count
		return int64(v) > mean-int64(bias)
	})
}

func applyThreshold(g *image.Gray, above func(x, y int, v uint8) bool) *image.Gray {
	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if above(x, y, g.GrayAt(b.Min.X+x, b.Min.Y+y).Y) {
				dst.Pix[y*dst.Stride+x] = 255
			}
		}
	}
	return dst
}

// CloseGaps runs a 2x2 morphological close (dilate then erode) on a
// binary image, filling single-pixel holes inside character strokes.
func CloseGaps(g *image.Gray) *image.Gray {
	return erode2(dilate2(g))
}

func dilate2(g *image.Gray) *image.Gray {
	return morph2(g, func(a, b, c, d uint8) uint8 {
		if a == 255 || b == 255 || c == 255 || d == 255 {
			return 255
		}
		return 0
	})
}

func erode2(g *image.Gray) *image.Gray {
	return morph2(g, func(a, b, c, d uint8) uint8 {
		if a == 255 && b == 255 && c == 255 && d == 255 {
			return 255
		}
		return 0
	})
}

// morph2 applies a 2x2 structuring element anchored at the top-left.
func morph2(g *image.Gray, combine func(a, b, c, d uint8) uint8) *image.Gray {
	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))
	at := func(x, y int) uint8 {
		return g.GrayAt(b.Min.X+clampInt(x, 0, w-1), b.Min.Y+clampInt(y, 0, h-1)).Y
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.Pix[y*dst.Stride+x] = combine(at(x, y), at(x+1, y), at(x, y+1), at(x+1, y+1))
		}
	}
	return dst
}
