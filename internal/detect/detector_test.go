package detect

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"reflect"
	"strings"
	"testing"

	"github.com/autocare/platetrack/internal/common"
	"github.com/autocare/platetrack/internal/ocr"
)

// fakeEngine scripts Recognize outcomes by the attempt's PSM value, so
// tests stay independent of pixel content.
type fakeEngine struct {
	availableErr error
	byPSM        map[int]ocr.Text
	errByPSM     map[int]error
	calls        int
}

func (f *fakeEngine) Available() error { return f.availableErr }

func (f *fakeEngine) Recognize(_ context.Context, _ image.Image, a ocr.AttemptConfig) (ocr.Text, error) {
	f.calls++
	if err, ok := f.errByPSM[a.PSM]; ok {
		return ocr.Text{}, err
	}
	return f.byPSM[a.PSM], nil
}

func twoProfiles() []Profile {
	return []Profile{
		{Name: "p1", Binarize: BinarizeOtsu, Attempt: ocr.AttemptConfig{OEM: 3, PSM: 7, Whitelist: PlateWhitelist}},
		{Name: "p2", Binarize: BinarizeOtsu, Attempt: ocr.AttemptConfig{OEM: 3, PSM: 8, Whitelist: PlateWhitelist}},
	}
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, 60, 20))); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return buf.Bytes()
}

func newTestDetector(e Engine) *Detector {
	return NewDetector(e, nil, WithProfiles(twoProfiles()))
}

func TestDetectPicksHighestConfidence(t *testing.T) {
	e := &fakeEngine{byPSM: map[int]ocr.Text{
		7: {Raw: "ABC123", Confidence: 82},
		8: {Raw: "ABC12", Confidence: 55},
	}}
	res, err := newTestDetector(e).Detect(context.Background(), pngBytes(t), Options{})
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if res.Plate != "ABC123" || res.Confidence != 82 {
		t.Errorf("got %q/%v, want ABC123/82", res.Plate, res.Confidence)
	}
	if len(res.Attempts) != 2 {
		t.Errorf("attempts = %d, want 2", len(res.Attempts))
	}
}

func TestDetectNoCandidateAboveThreshold(t *testing.T) {
	e := &fakeEngine{byPSM: map[int]ocr.Text{
		7: {Raw: "ABC123", Confidence: 40},
		8: {Raw: "XYZ789", Confidence: 59},
	}}
	res, err := newTestDetector(e).Detect(context.Background(), pngBytes(t), Options{})
	if err != nil {
		t.Fatalf("no match must not be an error, got %v", err)
	}
	if res.Found() || res.Confidence != 0 {
		t.Errorf("got %q/%v, want empty result", res.Plate, res.Confidence)
	}
	if len(res.Attempts) != 2 {
		t.Errorf("attempts = %d, want 2 (diagnostics survive a miss)", len(res.Attempts))
	}
}

func TestDetectTieGoesToEarliestProfile(t *testing.T) {
	e := &fakeEngine{byPSM: map[int]ocr.Text{
		7: {Raw: "ABC123", Confidence: 75},
		8: {Raw: "XYZ789", Confidence: 75},
	}}
	res, err := newTestDetector(e).Detect(context.Background(), pngBytes(t), Options{})
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if res.Plate != "ABC123" {
		t.Errorf("tie resolved to %q, want earliest profile's ABC123", res.Plate)
	}
}

func TestDetectNormalizesRawText(t *testing.T) {
	e := &fakeEngine{byPSM: map[int]ocr.Text{
		7: {Raw: "AB-123-X!", Confidence: 80},
	}}
	res, err := newTestDetector(e).Detect(context.Background(), pngBytes(t), Options{})
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if res.Plate != "AB123X" {
		t.Errorf("plate = %q, want AB123X", res.Plate)
	}
}

func TestDetectInvalidImage(t *testing.T) {
	e := &fakeEngine{}
	d := newTestDetector(e)

	for _, data := range [][]byte{nil, {}, []byte("not an image")} {
		if _, err := d.Detect(context.Background(), data, Options{}); !errors.Is(err, common.ErrInvalidImage) {
			t.Errorf("data %q: err = %v, want ErrInvalidImage", data, err)
		}
	}
	if e.calls != 0 {
		t.Errorf("engine invoked %d times for undecodable input", e.calls)
	}
}

func TestDetectEngineUnavailable(t *testing.T) {
	e := &fakeEngine{availableErr: common.ErrEngineUnavailable}
	_, err := newTestDetector(e).Detect(context.Background(), pngBytes(t), Options{})
	if !errors.Is(err, common.ErrEngineUnavailable) {
		t.Fatalf("err = %v, want ErrEngineUnavailable", err)
	}
	if e.calls != 0 {
		t.Errorf("engine invoked %d times before availability check", e.calls)
	}
}

func TestDetectFailedAttemptIsSkipped(t *testing.T) {
	e := &fakeEngine{
		errByPSM: map[int]error{7: errors.New("segfault in profile")},
		byPSM:    map[int]ocr.Text{8: {Raw: "DEF456", Confidence: 90}},
	}
	res, err := newTestDetector(e).Detect(context.Background(), pngBytes(t), Options{})
	if err != nil {
		t.Fatalf("one bad profile must not abort the call: %v", err)
	}
	if res.Plate != "DEF456" {
		t.Errorf("plate = %q, want DEF456 from the surviving profile", res.Plate)
	}
	if len(res.Attempts) != 2 {
		t.Errorf("attempts = %d, want 2 (failed attempt recorded)", len(res.Attempts))
	}
}

func TestDetectDeterministicAndIdempotent(t *testing.T) {
	e := &fakeEngine{byPSM: map[int]ocr.Text{
		7: {Raw: "GHI789", Confidence: 70},
		8: {Raw: "JKL012", Confidence: 65},
	}}
	d := newTestDetector(e)

	data := pngBytes(t)
	orig := append([]byte(nil), data...)

	first, err := d.Detect(context.Background(), data, Options{})
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := d.Detect(context.Background(), data, Options{})
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ:\n1: %+v\n2: %+v", first, second)
	}
	if !bytes.Equal(data, orig) {
		t.Error("input image was mutated")
	}
}

func TestDetectMinConfidenceOverride(t *testing.T) {
	e := &fakeEngine{byPSM: map[int]ocr.Text{
		7: {Raw: "MNO345", Confidence: 50},
	}}
	d := newTestDetector(e)

	res, err := d.Detect(context.Background(), pngBytes(t), Options{MinConfidence: 40})
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if res.Plate != "MNO345" {
		t.Errorf("plate = %q, want MNO345 at lowered threshold", res.Plate)
	}
}

func TestDetectContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e := &fakeEngine{}
	if _, err := newTestDetector(e).Detect(ctx, pngBytes(t), Options{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

// recordingEngine returns one scripted text for every attempt and
// records the width of each image it was handed.
type recordingEngine struct {
	text   ocr.Text
	widths []int
}

func (r *recordingEngine) Available() error { return nil }

func (r *recordingEngine) Recognize(_ context.Context, img image.Image, _ ocr.AttemptConfig) (ocr.Text, error) {
	r.widths = append(r.widths, img.Bounds().Dx())
	return r.text, nil
}

// texturedPNG encodes a flat 800x400 frame with a block of alternating
// vertical bars, which the edge stage localizes.
func texturedPNG(t *testing.T, block image.Rectangle) []byte {
	t.Helper()
	g := image.NewGray(image.Rect(0, 0, 800, 400))
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
	var buf bytes.Buffer
	if err := png.Encode(&buf, g); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return buf.Bytes()
}

func TestDetectOCRsLocalizedRegionBeforeFullFrame(t *testing.T) {
	// A plate-shaped textured block yields a candidate region, so the
	// engine should only ever see crops, never the 800px frame.
	data := texturedPNG(t, image.Rect(300, 180, 500, 230))
	e := &recordingEngine{text: ocr.Text{Raw: "ABC123", Confidence: 95}}

	res, err := newTestDetector(e).Detect(context.Background(), data, Options{})
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if res.Plate != "ABC123" || res.Confidence != 95 {
		t.Errorf("got %q/%v, want ABC123/95", res.Plate, res.Confidence)
	}
	if len(res.Attempts) == 0 || !strings.HasPrefix(res.Attempts[0].Profile, "region1-") {
		t.Errorf("first attempt = %+v, want a region1- profile", res.Attempts)
	}
	if len(e.widths) == 0 {
		t.Fatal("engine never invoked")
	}
	for _, w := range e.widths {
		if w >= 800 {
			t.Errorf("engine saw a %dpx-wide image; localization should have cropped first", w)
		}
	}
}

func TestDetectTileSweepWhenRegionsRejectEverything(t *testing.T) {
	// A square textured blob fails the plate aspect filter, so the
	// sweep over overlapping tiles takes over; a strong hit stops it.
	data := texturedPNG(t, image.Rect(350, 150, 450, 250))
	e := &recordingEngine{text: ocr.Text{Raw: "TILE42", Confidence: 95}}

	res, err := newTestDetector(e).Detect(context.Background(), data, Options{})
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if res.Plate != "TILE42" || res.Confidence != 95 {
		t.Errorf("got %q/%v, want TILE42/95", res.Plate, res.Confidence)
	}
	if len(res.Attempts) == 0 || !strings.HasPrefix(res.Attempts[0].Profile, "tile1-") {
		t.Errorf("first attempt = %+v, want a tile1- profile", res.Attempts)
	}
	if len(res.Attempts) != 2 {
		t.Errorf("attempts = %d, want 2 (sweep stops after a strong hit)", len(res.Attempts))
	}
}

func TestDetectFullFrameWhenNoEdges(t *testing.T) {
	// A flat frame has nothing to localize; the profile table runs
	// directly over the whole image with unprefixed names.
	e := &fakeEngine{byPSM: map[int]ocr.Text{
		7: {Raw: "ABC123", Confidence: 82},
	}}
	res, err := newTestDetector(e).Detect(context.Background(), pngBytes(t), Options{})
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if len(res.Attempts) != 2 || res.Attempts[0].Profile != "p1" {
		t.Errorf("attempts = %+v, want exactly the two base profiles", res.Attempts)
	}
}

func TestDefaultProfilesOrderIsStable(t *testing.T) {
	a, b := DefaultProfiles(), DefaultProfiles()
	if !reflect.DeepEqual(a, b) {
		t.Fatal("profile table is not deterministic")
	}
	if len(a) != 12 {
		t.Errorf("profile count = %d, want 12 (2 strategies x 4 attempts + 4 rotations)", len(a))
	}
	if a[0].Binarize != BinarizeOtsu || a[0].Attempt.PSM != 8 {
		t.Errorf("first profile = %+v, want otsu oem3-psm8", a[0])
	}
	for _, p := range a[:8] {
		if p.Rotation != 0 {
			t.Errorf("base profile %s carries rotation %v", p.Name, p.Rotation)
		}
	}
	for _, p := range a[8:] {
		if p.Rotation == 0 {
			t.Errorf("retry profile %s missing rotation", p.Name)
		}
	}
}
