package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/autocare/platetrack/internal/common"
	"github.com/autocare/platetrack/internal/detect"
	"github.com/autocare/platetrack/internal/ocr"
)

// detectplate runs the detection pipeline once on a single image and
// prints the result as JSON. Useful for tuning profiles against a
// sample before pointing the batch tooling at a directory.
func main() {
	var (
		minConf  = flag.Float64("min-confidence", 0, "override confidence threshold (0..100, 0 = use MIN_CONFIDENCE)")
		debugDir = flag.String("debug-dir", "", "dump preprocessed image variants to this directory")
		profiles = flag.String("profiles", "", "JSON profile table override")
		timeout  = flag.Duration("timeout", 2*time.Minute, "detection timeout")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <image-path>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	imagePath := flag.Arg(0)

	_ = godotenv.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if *profiles != "" {
		cfg.Detection.ProfilesFile = *profiles
	}
	if *minConf > 0 {
		cfg.Detection.MinConfidence = *minConf
	}

	data, err := os.ReadFile(imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading image: %v\n", err)
		os.Exit(1)
	}

	engine := ocr.NewEngine(ocr.Config{
		Tesseract:   cfg.Detection.Tesseract,
		Lang:        cfg.Detection.TesseractLang,
		TessdataDir: cfg.Detection.TessdataDir,
	}, logger)

	opts := []detect.DetectorOption{
		detect.WithMinConfidence(cfg.Detection.MinConfidence),
	}
	if cfg.Detection.ProfilesFile != "" {
		fileOpts, err := detect.LoadProfilesFile(cfg.Detection.ProfilesFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "loading profiles: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, fileOpts...)
	}
	detector := detect.NewDetector(engine, logger, opts...)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	res, err := detector.Detect(ctx, data, detect.Options{DebugDir: *debugDir})
	if err != nil {
		fmt.Fprintf(os.Stderr, "detection failed: %v\n", err)
		os.Exit(1)
	}

	out := struct {
		Plate      *string          `json:"plate"`
		Confidence float64          `json:"confidence"`
		Attempts   []detect.Attempt `json:"attempts"`
	}{Confidence: res.Confidence, Attempts: res.Attempts}
	if res.Found() {
		out.Plate = &res.Plate
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "encoding result: %v\n", err)
		os.Exit(1)
	}
	if !res.Found() {
		os.Exit(3)
	}
}
