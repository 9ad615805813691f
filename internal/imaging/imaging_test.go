package imaging

import (
	"image"
	"image/color"
	"testing"
)

func grayImage(w, h int, fill uint8) *image.Gray {
	g := image.NewGray(image.Rect(0, 0, w, h))
	for i := range g.Pix {
		g.Pix[i] = fill
	}
	return g
}

func TestGrayscaleFromRGBA(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.Set(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	g := Grayscale(src)
	if g.GrayAt(0, 0).Y != 255 {
		t.Errorf("white pixel converted to %d, want 255", g.GrayAt(0, 0).Y)
	}
}

func TestGrayscalePassthrough(t *testing.T) {
	src := grayImage(4, 4, 10)
	if got := Grayscale(src); got != src {
		t.Error("expected *image.Gray input to be returned unchanged")
	}
}

func TestScaleForOCRUpscalesSmall(t *testing.T) {
	g := ScaleForOCR(grayImage(100, 50, 128))
	b := g.Bounds()
	if b.Dx() < MinSideTarget && b.Dy() < MinSideTarget {
		t.Errorf("longer side is %dx%d, want >= %d", b.Dx(), b.Dy(), MinSideTarget)
	}
}

func TestScaleForOCRDownscalesWide(t *testing.T) {
	g := ScaleForOCR(grayImage(2400, 600, 128))
	if got := g.Bounds().Dx(); got != MaxWidth {
		t.Errorf("width = %d, want %d", got, MaxWidth)
	}
}

func TestScaleForOCRNoop(t *testing.T) {
	src := grayImage(800, 600, 128)
	if got := ScaleForOCR(src); got != src {
		t.Error("mid-size image should not be resized")
	}
}

func TestOtsuThresholdBimodal(t *testing.T) {
	// Left half dark, right half bright; Otsu must separate them.
	g := image.NewGray(image.Rect(0, 0, 40, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			v := uint8(30)
			if x >= 20 {
				v = 220
			}
			g.SetGray(x, y, color.Gray{Y: v})
		}
	}
	bin := OtsuThreshold(g)
	if bin.GrayAt(5, 10).Y != 0 {
		t.Errorf("dark side = %d, want 0", bin.GrayAt(5, 10).Y)
	}
	if bin.GrayAt(35, 10).Y != 255 {
		t.Errorf("bright side = %d, want 255", bin.GrayAt(35, 10).Y)
	}
}

func TestAdaptiveThresholdBinaryOutput(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 30, 30))
	for i := range g.Pix {
		g.Pix[i] = uint8(i % 251)
	}
	bin := AdaptiveThreshold(g, DefaultAdaptiveWindow, DefaultAdaptiveBias)
	for i, v := range bin.Pix {
		if v != 0 && v != 255 {
			t.Fatalf("pixel %d = %d, want 0 or 255", i, v)
		}
	}
}

func TestCLAHEFlatImageStaysUniform(t *testing.T) {
	// Equalizing a constant image must not introduce tile seams.
	out := CLAHE(grayImage(64, 64, 90), DefaultClipLimit, DefaultTileGrid)
	first := out.Pix[0]
	for i, v := range out.Pix {
		if v != first {
			t.Fatalf("pixel %d = %d, want uniform %d", i, v, first)
		}
	}
}

func TestCLAHEPreservesDimensions(t *testing.T) {
	g := grayImage(37, 23, 90)
	out := CLAHE(g, DefaultClipLimit, DefaultTileGrid)
	if out.Bounds().Dx() != 37 || out.Bounds().Dy() != 23 {
		t.Errorf("dimensions changed: %v", out.Bounds())
	}
}

func TestCloseGapsFillsHole(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 10, 10))
	for y := 2; y < 8; y++ {
		for x := 2; x < 8; x++ {
			g.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	g.SetGray(5, 5, color.Gray{Y: 0}) // one-pixel hole
	out := CloseGaps(g)
	if out.GrayAt(5, 5).Y != 255 {
		t.Error("expected 2x2 close to fill a single-pixel hole")
	}
}

func TestRotatePreservesDimensions(t *testing.T) {
	g := grayImage(50, 30, 128)
	out := Rotate(g, 5)
	if out.Bounds().Dx() != 50 || out.Bounds().Dy() != 30 {
		t.Errorf("dimensions changed: %v", out.Bounds())
	}
}

func TestRotateZeroIsNoop(t *testing.T) {
	g := grayImage(10, 10, 77)
	if out := Rotate(g, 0); out != g {
		t.Error("zero rotation should return the input")
	}
}
