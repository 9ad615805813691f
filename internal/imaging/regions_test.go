package imaging

import (
	"image"
	"testing"
)

// stripedBlock paints a plate-like block of alternating dark/light
// vertical bars onto a flat background.
func stripedBlock(w, h int, block image.Rectangle) *image.Gray {
	g := image.NewGray(image.Rect(0, 0, w, h))
	for i := range g.Pix {
		g.Pix[i] = 120
	}
	for y := block.Min.Y; y < block.Max.Y; y++ {
		for x := block.Min.X; x < block.Max.X; x++ {
			v := uint8(0)
			if (x/4)%2 == 0 {
				v = 255
			}
			g.Pix[y*g.Stride+x] = v
		}
	}
	return g
}

func TestEdgeMapFlatImageIsEmpty(t *testing.T) {
	for _, shade := range []uint8{0, 120, 255} {
		g := image.NewGray(image.Rect(0, 0, 200, 100))
		for i := range g.Pix {
			g.Pix[i] = shade
		}
		if n := EdgePixels(EdgeMap(g)); n != 0 {
			t.Errorf("shade %d: %d edge pixels, want 0", shade, n)
		}
	}
}

func TestEdgeMapMarksHighContrastTransitions(t *testing.T) {
	g := stripedBlock(400, 200, image.Rect(100, 80, 300, 130))
	edges := EdgeMap(g)
	if EdgePixels(edges) == 0 {
		t.Fatal("striped block produced no edges")
	}
	// Edges stay inside the block's neighborhood.
	for y := 0; y < 70; y++ {
		for x := 0; x < 400; x++ {
			if edges.Pix[y*edges.Stride+x] != 0 {
				t.Fatalf("edge at (%d,%d) on the flat background", x, y)
			}
		}
	}
}

func TestPlateRegionsFindsPlateSizedBlock(t *testing.T) {
	block := image.Rect(300, 180, 500, 230) // 200x50, aspect 4.0
	g := stripedBlock(800, 400, block)

	regions := PlateRegions(EdgeMap(g))
	if len(regions) != 1 {
		t.Fatalf("regions = %d (%v), want 1", len(regions), regions)
	}
	r := regions[0]
	if !block.In(r) {
		t.Errorf("region %v does not contain the block %v", r, block)
	}
	// Padding plus dilation slop stays bounded.
	outer := block.Inset(-(RegionPad + 8))
	if !r.In(outer) {
		t.Errorf("region %v grew past %v", r, outer)
	}
}

func TestPlateRegionsRejectsSquareBlob(t *testing.T) {
	g := stripedBlock(800, 400, image.Rect(350, 150, 450, 250)) // aspect 1.0
	if regions := PlateRegions(EdgeMap(g)); len(regions) != 0 {
		t.Errorf("square blob proposed as plate region: %v", regions)
	}
}

func TestPlateRegionsRejectsTinyBlob(t *testing.T) {
	g := stripedBlock(800, 400, image.Rect(400, 200, 430, 210)) // 30x10, below minimums
	if regions := PlateRegions(EdgeMap(g)); len(regions) != 0 {
		t.Errorf("tiny blob proposed as plate region: %v", regions)
	}
}

func TestPlateRegionsSortsLargestFirst(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 1000, 600))
	for i := range g.Pix {
		g.Pix[i] = 120
	}
	small := image.Rect(100, 100, 260, 150)
	large := image.Rect(400, 300, 700, 380)
	for _, block := range []image.Rectangle{small, large} {
		for y := block.Min.Y; y < block.Max.Y; y++ {
			for x := block.Min.X; x < block.Max.X; x++ {
				v := uint8(0)
				if (x/4)%2 == 0 {
					v = 255
				}
				g.Pix[y*g.Stride+x] = v
			}
		}
	}

	regions := PlateRegions(EdgeMap(g))
	if len(regions) != 2 {
		t.Fatalf("regions = %d (%v), want 2", len(regions), regions)
	}
	if !large.In(regions[0]) {
		t.Errorf("largest region first: got %v, want it to contain %v", regions[0], large)
	}
}

func TestTileRegionsCoverBounds(t *testing.T) {
	bounds := image.Rect(0, 0, 800, 400)
	tiles := TileRegions(bounds)
	if len(tiles) == 0 {
		t.Fatal("no tiles for a large frame")
	}
	covered := image.NewGray(bounds)
	for _, tl := range tiles {
		if !tl.In(bounds) {
			t.Errorf("tile %v escapes %v", tl, bounds)
		}
		for y := tl.Min.Y; y < tl.Max.Y; y++ {
			for x := tl.Min.X; x < tl.Max.X; x++ {
				covered.Pix[y*covered.Stride+x] = 255
			}
		}
	}
	for i, v := range covered.Pix {
		if v == 0 {
			t.Fatalf("pixel %d not covered by any tile", i)
		}
	}
}

func TestTileRegionsDeterministic(t *testing.T) {
	bounds := image.Rect(0, 0, 1200, 700)
	a, b := TileRegions(bounds), TileRegions(bounds)
	if len(a) != len(b) {
		t.Fatalf("tile counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tile %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestCropIsZeroOriginCopy(t *testing.T) {
	g := stripedBlock(100, 50, image.Rect(20, 10, 80, 40))
	r := image.Rect(20, 10, 80, 40)
	c := Crop(g, r)

	if c.Bounds().Min != (image.Point{}) || c.Bounds().Dx() != 60 || c.Bounds().Dy() != 30 {
		t.Fatalf("crop bounds = %v", c.Bounds())
	}
	if c.GrayAt(0, 0).Y != g.GrayAt(20, 10).Y {
		t.Error("crop pixel mismatch at origin")
	}
	c.Pix[0] = 77
	if g.GrayAt(20, 10).Y == 77 {
		t.Error("crop shares memory with the source")
	}
}
