package ocr

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/autocare/platetrack/internal/common"
)

type Config struct {
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	Lang        string // default "eng"
	TessdataDir string
}

// AttemptConfig is one immutable engine configuration tried during a
// detection call: page segmentation mode, engine mode and the character
// whitelist passed to tesseract for that single invocation.
type AttemptConfig struct {
	PSM       int
	OEM       int
	Whitelist string
}

func (c AttemptConfig) String() string {
	return fmt.Sprintf("oem%d-psm%d", c.OEM, c.PSM)
}

// Text is the raw outcome of one engine invocation: the whitespace-
// joined recognized words and their mean confidence on the engine's
// native 0..100 scale.
type Text struct {
	Raw        string
	Confidence float64
}

// Engine invokes the tesseract binary once per attempt. It holds no
// mutable state after construction and is safe for concurrent use.
type Engine struct {
	cfg    Config
	runner Runner
	logger *slog.Logger

	checkOnce sync.Once
	checkErr  error
}

func NewEngine(cfg Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Lang == "" {
		cfg.Lang = "eng"
	}
	return &Engine{cfg: cfg, runner: execRunner{}, logger: logger}
}

// NewEngineWithRunner is used by tests to substitute the exec layer.
func NewEngineWithRunner(cfg Config, r Runner, logger *slog.Logger) *Engine {
	e := NewEngine(cfg, logger)
	e.runner = r
	return e
}

// Available reports whether the tesseract binary is resolvable. The
// lookup runs once; later calls return the cached outcome.
func (e *Engine) Available() error {
	e.checkOnce.Do(func() {
		if _, err := e.runner.LookPath(e.cfg.Tesseract); err != nil {
			e.logger.Warn("tesseract not found", "binary", e.cfg.Tesseract, "error", err)
			e.checkErr = fmt.Errorf("%w: %q not found in PATH", common.ErrEngineUnavailable, e.cfg.Tesseract)
			return
		}
		e.logger.Debug("tesseract resolved", "binary", e.cfg.Tesseract)
	})
	return e.checkErr
}

// Recognize runs one tesseract attempt over img in TSV mode and parses
// word-level confidences. The image is staged as a temporary PNG
// because the binary reads from a path.
func (e *Engine) Recognize(ctx context.Context, img image.Image, attempt AttemptConfig) (Text, error) {
	if err := e.Available(); err != nil {
		return Text{}, err
	}

	path, cleanup, err := stagePNG(img)
	if err != nil {
		return Text{}, err
	}
	defer cleanup()

	args := []string{path, "stdout", "-l", e.cfg.Lang}
	if attempt.PSM > 0 {
		args = append(args, "--psm", strconv.Itoa(attempt.PSM))
	}
	if attempt.OEM > 0 {
		args = append(args, "--oem", strconv.Itoa(attempt.OEM))
	}
	if attempt.Whitelist != "" {
		args = append(args, "-c", "tessedit_char_whitelist="+attempt.Whitelist)
	}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}
	args = append(args, "tsv")

	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return Text{}, fmt.Errorf("tesseract %s: %w (%s)", attempt, err, truncate(string(errb), 512))
	}
	raw, conf := parseTSV(string(out))
	return Text{Raw: raw, Confidence: conf}, nil
}

// stagePNG writes img to a temp file and returns its path and a cleanup func.
func stagePNG(img image.Image) (string, func(), error) {
	tmpDir, err := os.MkdirTemp("", "pt-ocr-*")
	if err != nil {
		return "", nil, fmt.Errorf("temp dir: %w", err)
	}
	cleanup := func() { _ = os.RemoveAll(tmpDir) }
	path := filepath.Join(tmpDir, "in.png")
	f, err := os.Create(path)
	if err != nil {
		cleanup()
		return "", nil, fmt.Errorf("stage image: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, fmt.Errorf("encode image: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, err
	}
	return path, cleanup, nil
}
