package detect

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"log/slog"

	_ "image/jpeg"
	_ "image/png"

	"github.com/autocare/platetrack/internal/common"
	"github.com/autocare/platetrack/internal/imaging"
	"github.com/autocare/platetrack/internal/ocr"
	"github.com/autocare/platetrack/internal/plate"
)

// DefaultMinConfidence is the policy default for the confidence
// threshold on the engine's 0..100 scale.
const DefaultMinConfidence = 60

// EarlyExitConfidence stops the tile sweep once a candidate scores
// this high; scanning further tiles cannot meaningfully beat it.
const EarlyExitConfidence = 90

// Engine is the single external collaborator of the pipeline.
// *ocr.Engine satisfies it; tests substitute fakes.
type Engine interface {
	Available() error
	Recognize(ctx context.Context, img image.Image, attempt ocr.AttemptConfig) (ocr.Text, error)
}

// Attempt records one engine invocation for diagnostics.
type Attempt struct {
	Profile    string  `json:"profile"`
	RawText    string  `json:"raw_text"`
	Confidence float64 `json:"confidence"`
}

// Result is the outcome of one detection call. Plate is empty when
// nothing survived filtering; that is a successful result, not an
// error. Confidence values are comparable only within this one call.
type Result struct {
	Plate      string    `json:"plate"`
	Confidence float64   `json:"confidence"`
	Attempts   []Attempt `json:"attempts"`
}

// Found reports whether a plate passed the format policy and threshold.
func (r Result) Found() bool { return r.Plate != "" }

// Options tune one detection call.
type Options struct {
	// MinConfidence in [0,100]; zero means DefaultMinConfidence.
	MinConfidence float64
	// DebugDir, when set, receives one PNG per preprocessed variant.
	DebugDir string
}

// Detector runs the fixed preprocessing/OCR profile table over one
// image per call. It holds only immutable configuration, so concurrent
// calls are safe as long as each supplies its own image.
type Detector struct {
	engine   Engine
	policy   *plate.Policy
	profiles []Profile
	minConf  float64
	debugDir string
	logger   *slog.Logger
}

type DetectorOption func(*Detector)

// WithPolicy overrides the plate-format policy.
func WithPolicy(p *plate.Policy) DetectorOption {
	return func(d *Detector) {
		if p != nil {
			d.policy = p
		}
	}
}

// WithProfiles overrides the ordered profile table.
func WithProfiles(profiles []Profile) DetectorOption {
	return func(d *Detector) {
		if len(profiles) > 0 {
			d.profiles = profiles
		}
	}
}

// WithMinConfidence sets the default threshold for calls that do not
// override it.
func WithMinConfidence(v float64) DetectorOption {
	return func(d *Detector) {
		if v > 0 && v <= 100 {
			d.minConf = v
		}
	}
}

// WithDebugDir enables intermediate-variant dumps for every call.
func WithDebugDir(dir string) DetectorOption {
	return func(d *Detector) { d.debugDir = dir }
}

func NewDetector(engine Engine, logger *slog.Logger, opts ...DetectorOption) *Detector {
	if logger == nil {
		logger = slog.Default()
	}
	d := &Detector{
		engine:   engine,
		policy:   plate.DefaultPolicy(),
		profiles: DefaultProfiles(),
		minConf:  DefaultMinConfidence,
		logger:   logger,
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Detect decodes data and looks for a plate in three passes: edge-based
// plate-shaped regions (largest first), a tile sweep when no region
// reads, and finally the full frame. Each pass runs every profile in
// table order and keeps the best candidate that passes the format
// policy and threshold; ties on confidence resolve to the earliest
// attempt. An image with no detectable plate yields an empty Result,
// not an error.
func (d *Detector) Detect(ctx context.Context, data []byte, opts Options) (Result, error) {
	if len(data) == 0 {
		return Result{}, fmt.Errorf("%w: empty input", common.ErrInvalidImage)
	}
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", common.ErrInvalidImage, err)
	}
	if err := d.engine.Available(); err != nil {
		return Result{}, err
	}

	minConf := opts.MinConfidence
	if minConf <= 0 {
		minConf = d.minConf
	}
	debugDir := opts.DebugDir
	if debugDir == "" {
		debugDir = d.debugDir
	}

	enhanced := d.preprocess(src)
	if debugDir != "" {
		if err := imaging.DumpPNG(debugDir, "enhanced", enhanced); err != nil {
			d.logger.Warn("debug dump failed", "label", "enhanced", "error", err)
		}
	}

	edges := imaging.EdgeMap(enhanced)
	regions := imaging.PlateRegions(edges)
	if debugDir != "" {
		if err := imaging.DumpPNG(debugDir, "edges", edges); err != nil {
			d.logger.Warn("debug dump failed", "label", "edges", "error", err)
		}
	}

	d.logger.Debug("starting detection",
		"format", format, "profiles", len(d.profiles), "regions", len(regions), "min_confidence", minConf)

	result := Result{Attempts: make([]Attempt, 0, len(d.profiles))}

	// Plate-shaped regions first, largest first.
	var best scored
	for i, r := range regions {
		cand, err := d.runProfiles(ctx, imaging.Crop(enhanced, r), fmt.Sprintf("region%d-", i+1), minConf, debugDir, &result)
		if err != nil {
			return Result{}, err
		}
		best = best.better(cand)
	}

	// When no region read, sweep overlapping tiles to widen focus. A
	// frame with no edge content has nothing to localize, so the sweep
	// is skipped and the full frame settles it.
	if !best.ok && imaging.EdgePixels(edges) > 0 {
		for i, tile := range imaging.TileRegions(enhanced.Bounds()) {
			cand, err := d.runProfiles(ctx, imaging.Crop(enhanced, tile), fmt.Sprintf("tile%d-", i+1), minConf, debugDir, &result)
			if err != nil {
				return Result{}, err
			}
			best = best.better(cand)
			if best.ok && best.conf >= EarlyExitConfidence {
				break
			}
		}
	}

	// Full frame as the last resort.
	if !best.ok {
		cand, err := d.runProfiles(ctx, enhanced, "", minConf, debugDir, &result)
		if err != nil {
			return Result{}, err
		}
		best = best.better(cand)
	}

	if best.ok {
		result.Plate = best.plate
		result.Confidence = best.conf
	}

	if result.Found() {
		d.logger.Info("plate detected",
			"plate", result.Plate, "confidence", result.Confidence, "attempts", len(result.Attempts))
	} else {
		d.logger.Info("no plate found", "attempts", len(result.Attempts))
	}
	return result, nil
}

// scored is a candidate that passed the policy and threshold.
type scored struct {
	plate string
	conf  float64
	ok    bool
}

// better keeps the stronger of two candidates; the receiver wins ties,
// so earlier attempts take precedence.
func (s scored) better(o scored) scored {
	if o.ok && (!s.ok || o.conf > s.conf) {
		return o
	}
	return s
}

// runProfiles runs the whole profile table over one grayscale crop,
// appending diagnostics to result. Binarized variants are shared
// across profiles; rotation applies per profile on top.
func (d *Detector) runProfiles(ctx context.Context, g *image.Gray, prefix string, minConf float64, debugDir string, result *Result) (scored, error) {
	variants := map[string]*image.Gray{}
	variant := func(p Profile) *image.Gray {
		base, ok := variants[p.Binarize]
		if !ok {
			base = d.binarize(p.Binarize, g)
			variants[p.Binarize] = base
		}
		if p.Rotation == 0 {
			return base
		}
		return imaging.Rotate(base, p.Rotation)
	}

	var best scored
	for _, p := range d.profiles {
		select {
		case <-ctx.Done():
			return scored{}, ctx.Err()
		default:
		}

		name := prefix + p.Name
		img := variant(p)
		if debugDir != "" {
			if err := imaging.DumpPNG(debugDir, name, img); err != nil {
				d.logger.Warn("debug dump failed", "label", name, "error", err)
			}
		}

		text, err := d.engine.Recognize(ctx, img, p.Attempt)
		if err != nil {
			// One bad configuration must not abort the call.
			d.logger.Warn("ocr attempt failed", "profile", name, "error", err)
			result.Attempts = append(result.Attempts, Attempt{Profile: name})
			continue
		}
		result.Attempts = append(result.Attempts, Attempt{
			Profile:    name,
			RawText:    text.Raw,
			Confidence: text.Confidence,
		})

		normalized := plate.Normalize(text.Raw)
		if !d.policy.Valid(normalized) || text.Confidence < minConf {
			continue
		}
		// Strict comparison keeps the earliest profile on ties.
		if !best.ok || text.Confidence > best.conf {
			best = scored{plate: normalized, conf: text.Confidence, ok: true}
		}
	}
	return best, nil
}

// preprocess applies the transforms shared by every profile: grayscale,
// OCR-friendly scaling, light blur and CLAHE against uneven lighting.
func (d *Detector) preprocess(src image.Image) *image.Gray {
	g := imaging.Grayscale(src)
	g = imaging.ScaleForOCR(g)
	g = imaging.GaussianBlur3(g)
	return imaging.CLAHE(g, imaging.DefaultClipLimit, imaging.DefaultTileGrid)
}

func (d *Detector) binarize(strategy string, g *image.Gray) *image.Gray {
	var bin *image.Gray
	switch strategy {
	case BinarizeAdaptive:
		bin = imaging.AdaptiveThreshold(g, imaging.DefaultAdaptiveWindow, imaging.DefaultAdaptiveBias)
	default:
		bin = imaging.OtsuThreshold(g)
	}
	return imaging.CloseGaps(bin)
}
