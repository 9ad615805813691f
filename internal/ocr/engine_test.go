package ocr

import (
	"context"
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/autocare/platetrack/internal/common"
)

const sampleTSV = "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext\n" +
	"1\t1\t0\t0\t0\t0\t0\t0\t100\t40\t-1\t\n" +
	"5\t1\t1\t1\t1\t1\t4\t6\t60\t20\t91\tABC\n" +
	"5\t1\t1\t1\t1\t2\t66\t6\t30\t20\t73\t123\n"

type stubRunner struct {
	lookErr error
	stdout  string
	runErr  error

	calls    int
	lastName string
	lastArgs []string
}

func (s *stubRunner) LookPath(name string) (string, error) {
	if s.lookErr != nil {
		return "", s.lookErr
	}
	return "/usr/bin/" + name, nil
}

func (s *stubRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.calls++
	s.lastName = name
	s.lastArgs = args
	if s.runErr != nil {
		return nil, []byte("boom"), s.runErr
	}
	return []byte(s.stdout), nil, nil
}

func testImage() image.Image {
	return image.NewGray(image.Rect(0, 0, 8, 8))
}

func TestParseTSV(t *testing.T) {
	text, conf := parseTSV(sampleTSV)
	if text != "ABC 123" {
		t.Errorf("text = %q, want %q", text, "ABC 123")
	}
	if conf != 82 {
		t.Errorf("conf = %v, want 82", conf)
	}
}

func TestParseTSVEmpty(t *testing.T) {
	if text, conf := parseTSV(""); text != "" || conf != 0 {
		t.Errorf("got (%q, %v), want empty", text, conf)
	}
	// layout rows only, no words
	if text, conf := parseTSV("header\n1\t1\t0\t0\t0\t0\t0\t0\t9\t9\t-1\t\n"); text != "" || conf != 0 {
		t.Errorf("got (%q, %v), want empty", text, conf)
	}
}

func TestRecognizeArgs(t *testing.T) {
	r := &stubRunner{stdout: sampleTSV}
	e := NewEngineWithRunner(Config{}, r, nil)

	got, err := e.Recognize(context.Background(), testImage(), AttemptConfig{PSM: 8, OEM: 3, Whitelist: "ABC123"})
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if got.Raw != "ABC 123" || got.Confidence != 82 {
		t.Errorf("got %+v", got)
	}
	if r.lastName != "tesseract" {
		t.Errorf("binary = %q", r.lastName)
	}
	joined := strings.Join(r.lastArgs, " ")
	for _, want := range []string{"--psm 8", "--oem 3", "tessedit_char_whitelist=ABC123", "-l eng"} {
		if !strings.Contains(joined, want) {
			t.Errorf("args %q missing %q", joined, want)
		}
	}
	if r.lastArgs[len(r.lastArgs)-1] != "tsv" {
		t.Errorf("last arg = %q, want tsv", r.lastArgs[len(r.lastArgs)-1])
	}
}

func TestRecognizeEngineUnavailable(t *testing.T) {
	r := &stubRunner{lookErr: errors.New("not found")}
	e := NewEngineWithRunner(Config{}, r, nil)

	_, err := e.Recognize(context.Background(), testImage(), AttemptConfig{PSM: 8})
	if !errors.Is(err, common.ErrEngineUnavailable) {
		t.Fatalf("err = %v, want ErrEngineUnavailable", err)
	}
	if r.calls != 0 {
		t.Errorf("engine was invoked %d times despite missing binary", r.calls)
	}
}

func TestRecognizeRunFailure(t *testing.T) {
	r := &stubRunner{runErr: errors.New("exit status 1")}
	e := NewEngineWithRunner(Config{}, r, nil)

	if _, err := e.Recognize(context.Background(), testImage(), AttemptConfig{PSM: 8}); err == nil {
		t.Fatal("expected error from failed invocation")
	}
}
