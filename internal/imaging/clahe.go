package imaging

import "image"

// CLAHE defaults carried over from the original detector.
const (
	DefaultClipLimit = 3.0
	DefaultTileGrid  = 8
)

// CLAHE applies contrast-limited adaptive histogram equalization.
// The image is split into a tiles×tiles grid; each tile gets its own
// clipped-histogram equalization mapping, and pixels are remapped by
// bilinear interpolation between the four nearest tile mappings to
// avoid visibly blocky tile seams.
func CLAHE(g *image.Gray, clipLimit float64, tiles int) *image.Gray {
	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return g
	}
	if clipLimit <= 0 {
		clipLimit = DefaultClipLimit
	}
	if tiles < 1 {
		tiles = DefaultTileGrid
	}
	if tiles > w {
		tiles = w
	}
	if tiles > h {
		tiles = h
	}

	tileW := (w + tiles - 1) / tiles
	tileH := (h + tiles - 1) / tiles

	// Per-tile lookup tables.
	luts := make([][256]uint8, tiles*tiles)
	for ty := 0; ty < tiles; ty++ {
		for tx := 0; tx < tiles; tx++ {
			x0, y0 := tx*tileW, ty*tileH
			x1, y1 := minInt(x0+tileW, w), minInt(y0+tileH, h)
			luts[ty*tiles+tx] = tileLUT(g, b, x0, y0, x1, y1, clipLimit)
		}
	}

	dst := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		// Fractional tile coordinates relative to tile centers.
		fy := (float64(y)-float64(tileH)/2 + 0.5) / float64(tileH)
		ty0 := int(fy)
		if fy < 0 {
			fy, ty0 = 0, 0
		}
		ty1 := minInt(ty0+1, tiles-1)
		wy := fy - float64(ty0)
		if ty0 >= tiles {
			ty0, ty1, wy = tiles-1, tiles-1, 0
		}
		for x := 0; x < w; x++ {
			fx := (float64(x)-float64(tileW)/2 + 0.5) / float64(tileW)
			tx0 := int(fx)
			if fx < 0 {
				fx, tx0 = 0, 0
			}
			tx1 := minInt(tx0+1, tiles-1)
			wx := fx - float64(tx0)
			if tx0 >= tiles {
				tx0, tx1, wx = tiles-1, tiles-1, 0
			}

			v := g.GrayAt(b.Min.X+x, b.Min.Y+y).Y
			tl := float64(luts[ty0*tiles+tx0][v])
			tr := float64(luts[ty0*tiles+tx1][v])
			bl := float64(luts[ty1*tiles+tx0][v])
			br := float64(luts[ty1*tiles+tx1][v])
			top := tl + (tr-tl)*wx
			bot := bl + (br-bl)*wx
			dst.Pix[y*dst.Stride+x] = uint8(top + (bot-top)*wy + 0.5)
		}
	}
	return dst
}

// tileLUT builds the clipped equalization mapping for one tile.
func tileLUT(g *image.Gray, b image.Rectangle, x0, y0, x1, y1 int, clipLimit float64) [256]uint8 {
	var hist [256]int
	n := 0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			hist[g.GrayAt(b.Min.X+x, b.Min.Y+y).Y]++
			n++
		}
	}
	var lut [256]uint8
	if n == 0 {
		for i := range lut {
			lut[i] = uint8(i)
		}
		return lut
	}

	// Clip and redistribute excess uniformly.
	limit := int(clipLimit * float64(n) / 256.0)
	if limit < 1 {
		limit = 1
	}
	excess := 0
	for i, c := range hist {
		if c > limit {
			excess += c - limit
			hist[i] = limit
		}
	}
	share := excess / 256
	rem := excess % 256
	for i := range hist {
		hist[i] += share
		if i < rem {
			hist[i]++
		}
	}

	cum := 0
	for i, c := range hist {
		cum += c
		lut[i] = uint8(255 * cum / n) // cum <= n keeps this in range
	}
	return lut
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
