package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/autocare/platetrack/internal/common"
	"github.com/autocare/platetrack/internal/detect"
)

type fakeDetector struct {
	res detect.Result
	err error

	gotData []byte
	gotOpts detect.Options
}

func (f *fakeDetector) Detect(_ context.Context, data []byte, opts detect.Options) (detect.Result, error) {
	f.gotData = data
	f.gotOpts = opts
	return f.res, f.err
}

func newTestRouter(d Detector) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHTTPHandler(d, nil).Register(r)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/plates/detect", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDetectPlateJSON(t *testing.T) {
	d := &fakeDetector{res: detect.Result{
		Plate:      "ABC123",
		Confidence: 82,
		Attempts:   []detect.Attempt{{Profile: "p1", RawText: "ABC123", Confidence: 82}},
	}}
	r := newTestRouter(d)

	w := postJSON(t, r, map[string]any{
		"image_base64":   base64.StdEncoding.EncodeToString([]byte("fake-bytes")),
		"min_confidence": 70,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Plate      *string          `json:"plate"`
		Confidence float64          `json:"confidence"`
		Attempts   []detect.Attempt `json:"attempts"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Plate == nil || *resp.Plate != "ABC123" || resp.Confidence != 82 {
		t.Errorf("resp = %+v", resp)
	}
	if len(resp.Attempts) != 1 {
		t.Errorf("attempts = %d, want 1", len(resp.Attempts))
	}
	if string(d.gotData) != "fake-bytes" {
		t.Errorf("detector received %q", d.gotData)
	}
	if d.gotOpts.MinConfidence != 70 {
		t.Errorf("min_confidence passthrough = %v", d.gotOpts.MinConfidence)
	}
}

func TestDetectPlateNoMatchIsNullPlate(t *testing.T) {
	d := &fakeDetector{res: detect.Result{Attempts: []detect.Attempt{{Profile: "p1"}}}}
	w := postJSON(t, newTestRouter(d), map[string]any{
		"image_base64": base64.StdEncoding.EncodeToString([]byte("x")),
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatal(err)
	}
	if string(raw["plate"]) != "null" {
		t.Errorf("plate = %s, want null", raw["plate"])
	}
}

func TestDetectPlateErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{common.ErrInvalidImage, http.StatusBadRequest},
		{common.ErrEngineUnavailable, http.StatusServiceUnavailable},
		{context.DeadlineExceeded, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		d := &fakeDetector{err: tc.err}
		w := postJSON(t, newTestRouter(d), map[string]any{
			"image_base64": base64.StdEncoding.EncodeToString([]byte("x")),
		})
		if w.Code != tc.code {
			t.Errorf("%v: status = %d, want %d", tc.err, w.Code, tc.code)
		}
	}
}

func TestDetectPlateBadPayload(t *testing.T) {
	r := newTestRouter(&fakeDetector{})
	for name, body := range map[string]any{
		"missing image": map[string]any{"min_confidence": 50},
		"bad base64":    map[string]any{"image_base64": "!!!not-base64!!!"},
		"bad threshold": map[string]any{"image_base64": base64.StdEncoding.EncodeToString([]byte("x")), "min_confidence": 200},
	} {
		if w := postJSON(t, r, body); w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", name, w.Code)
		}
	}
}

func TestDetectPlateMultipart(t *testing.T) {
	d := &fakeDetector{res: detect.Result{Plate: "XYZ789", Confidence: 91}}
	r := newTestRouter(d)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", "car.png")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write([]byte("png-bytes")); err != nil {
		t.Fatal(err)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/plates/detect", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if string(d.gotData) != "png-bytes" {
		t.Errorf("detector received %q", d.gotData)
	}
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(&fakeDetector{})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", w.Code)
	}
}
