package imaging

import (
	"image"
	"math"
	"sort"
)

// Geometry filters for plate-shaped regions. Plates are wide and
// short; blobs outside these bounds are noise or whole vehicles.
const (
	MinRegionWidth    = 40
	MinRegionHeight   = 15
	MinRegionAspect   = 1.2
	MaxRegionAspect   = 8.0
	MinRegionAreaFrac = 0.0005
	MaxRegionAreaFrac = 0.6
	RegionPad         = 8
)

// EdgeMap computes a binary edge image from Sobel gradient magnitudes
// with hysteresis. The two thresholds derive from the median intensity
// of g (0.66x and 1.33x), so the sensitivity adapts to the frame's
// overall brightness. A flat frame produces an empty map.
func EdgeMap(g *image.Gray) *image.Gray {
	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))
	if w < 3 || h < 3 {
		return dst
	}

	med := medianIntensity(g)
	lower := clampInt(int(0.66*float64(med)), 1, 255)
	upper := clampInt(int(1.33*float64(med)), lower, 255)

	at := func(x, y int) int {
		return int(g.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
	}

	// 1 = weak edge, 255 = strong edge; weak pixels survive only when
	// connected to a strong one.
	mag := make([]uint8, w*h)
	type point struct{ x, y int }
	var strong []point
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			gx := at(x+1, y-1) + 2*at(x+1, y) + at(x+1, y+1) -
				at(x-1, y-1) - 2*at(x-1, y) - at(x-1, y+1)
			gy := at(x-1, y+1) + 2*at(x, y+1) + at(x+1, y+1) -
				at(x-1, y-1) - 2*at(x, y-1) - at(x+1, y-1)
			m := int(math.Sqrt(float64(gx*gx + gy*gy)))
			switch {
			case m >= upper:
				mag[y*w+x] = 255
				strong = append(strong, point{x, y})
			case m >= lower:
				mag[y*w+x] = 1
			}
		}
	}

	// Grow strong edges into adjacent weak pixels.
	for len(strong) > 0 {
		p := strong[len(strong)-1]
		strong = strong[:len(strong)-1]
		dst.Pix[p.y*dst.Stride+p.x] = 255
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				nx, ny := p.x+dx, p.y+dy
				if nx < 0 || ny < 0 || nx >= w || ny >= h {
					continue
				}
				if mag[ny*w+nx] == 1 {
					mag[ny*w+nx] = 255
					strong = append(strong, point{nx, ny})
				}
			}
		}
	}
	return dst
}

// EdgePixels counts the set pixels of a binary image.
func EdgePixels(g *image.Gray) int {
	n := 0
	for _, v := range g.Pix {
		if v != 0 {
			n++
		}
	}
	return n
}

// Dilate3 applies a 3x3 dilation the given number of times, bridging
// the gaps between nearby edge fragments so they merge into one blob.
func Dilate3(g *image.Gray, iterations int) *image.Gray {
	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	cur := g
	for i := 0; i < iterations; i++ {
		dst := image.NewGray(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if maxNeighbor(cur, x, y, w, h) == 255 {
					dst.Pix[y*dst.Stride+x] = 255
				}
			}
		}
		cur = dst
	}
	return cur
}

func maxNeighbor(g *image.Gray, x, y, w, h int) uint8 {
	b := g.Bounds()
	var m uint8
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx := clampInt(x+dx, 0, w-1)
			ny := clampInt(y+dy, 0, h-1)
			if v := g.GrayAt(b.Min.X+nx, b.Min.Y+ny).Y; v > m {
				m = v
			}
		}
	}
	return m
}

// PlateRegions proposes plate-shaped bounding boxes from an edge map:
// the edges are dilated twice, connected blobs are boxed, boxes are
// filtered by the geometry constants above and padded by RegionPad.
// Results are sorted largest-area first.
func PlateRegions(edges *image.Gray) []image.Rectangle {
	b := edges.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil
	}
	dil := Dilate3(edges, 2)
	imgArea := float64(w * h)

	var regions []image.Rectangle
	seen := make([]bool, w*h)
	type point struct{ x, y int }
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if seen[y*w+x] || dil.Pix[y*dil.Stride+x] == 0 {
				continue
			}
			// Flood the component, tracking its bounding box.
			minX, minY, maxX, maxY := x, y, x, y
			stack := []point{{x, y}}
			seen[y*w+x] = true
			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if p.x < minX {
					minX = p.x
				}
				if p.x > maxX {
					maxX = p.x
				}
				if p.y < minY {
					minY = p.y
				}
				if p.y > maxY {
					maxY = p.y
				}
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						nx, ny := p.x+dx, p.y+dy
						if nx < 0 || ny < 0 || nx >= w || ny >= h {
							continue
						}
						if !seen[ny*w+nx] && dil.Pix[ny*dil.Stride+nx] != 0 {
							seen[ny*w+nx] = true
							stack = append(stack, point{nx, ny})
						}
					}
				}
			}

			bw, bh := maxX-minX+1, maxY-minY+1
			if bw < MinRegionWidth || bh < MinRegionHeight {
				continue
			}
			ar := float64(bw) / float64(bh)
			frac := float64(bw*bh) / imgArea
			if ar < MinRegionAspect || ar > MaxRegionAspect {
				continue
			}
			if frac <= MinRegionAreaFrac || frac >= MaxRegionAreaFrac {
				continue
			}
			r := image.Rect(minX-RegionPad, minY-RegionPad, maxX+1+RegionPad, maxY+1+RegionPad)
			regions = append(regions, r.Intersect(image.Rect(0, 0, w, h)))
		}
	}

	sort.SliceStable(regions, func(i, j int) bool {
		return regions[i].Dx()*regions[i].Dy() > regions[j].Dx()*regions[j].Dy()
	})
	return regions
}

// Tile sweep bounds: tiles are at least this big, growing to a third
// of the width and a sixth of the height on larger frames.
const (
	MinTileWidth  = 200
	MinTileHeight = 60
)

// TileRegions covers bounds with overlapping tiles stepping half a
// tile at a time, row-major. Slivers narrower than half a tile at the
// right and bottom edges are skipped; the preceding tile already
// covers them.
func TileRegions(bounds image.Rectangle) []image.Rectangle {
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return nil
	}
	tw := maxInt(MinTileWidth, w/3)
	th := maxInt(MinTileHeight, h/6)

	var tiles []image.Rectangle
	for y := 0; y < h; y += th / 2 {
		if y > 0 && h-y < th/2 {
			break
		}
		for x := 0; x < w; x += tw / 2 {
			if x > 0 && w-x < tw/2 {
				break
			}
			r := image.Rect(x, y, minInt(x+tw, w), minInt(y+th, h))
			tiles = append(tiles, r)
		}
	}
	return tiles
}

// Crop copies the subregion r of g into a zero-origin image, so the
// caller can feed it to code that indexes from (0,0).
func Crop(g *image.Gray, r image.Rectangle) *image.Gray {
	b := g.Bounds()
	r = r.Add(b.Min).Intersect(b)
	dst := image.NewGray(image.Rect(0, 0, r.Dx(), r.Dy()))
	for y := 0; y < r.Dy(); y++ {
		for x := 0; x < r.Dx(); x++ {
			dst.Pix[y*dst.Stride+x] = g.GrayAt(r.Min.X+x, r.Min.Y+y).Y
		}
	}
	return dst
}

func medianIntensity(g *image.Gray) int {
	b := g.Bounds()
	var hist [256]int
	total := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			hist[g.GrayAt(x, y).Y]++
			total++
		}
	}
	half := total / 2
	run := 0
	for v, c := range hist {
		run += c
		if run > half {
			return v
		}
	}
	return 0
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
