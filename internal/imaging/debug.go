package imaging

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// DumpPNG writes img to dir as <label>.png, creating dir if needed.
// Used by the detection pipeline when a debug directory is configured.
func DumpPNG(dir, label string, img image.Image) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create debug dir: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, label+".png"))
	if err != nil {
		return fmt.Errorf("create debug file: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode debug png: %w", err)
	}
	return nil
}
