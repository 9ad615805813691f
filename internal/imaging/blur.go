package imaging

import "image"

// GaussianBlur3 applies a 3x3 gaussian kernel (sigma ~0.8). Border
// pixels replicate their nearest neighbor inside the image.
func GaussianBlur3(g *image.Gray) *image.Gray {
	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 3 || h < 3 {
		return g
	}
	// 1 2 1 / 2 4 2 / 1 2 1, normalized by 16
	kernel := [3][3]int{{1, 2, 1}, {2, 4, 2}, {1, 2, 1}}
	dst := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum int
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					sx := clampInt(x+kx, 0, w-1)
					sy := clampInt(y+ky, 0, h-1)
					sum += int(g.GrayAt(b.Min.X+sx, b.Min.Y+sy).Y) * kernel[ky+1][kx+1]
				}
			}
			dst.Pix[y*dst.Stride+x] = uint8(sum / 16)
		}
	}
	return dst
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
