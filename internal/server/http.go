package server

import (
	"encoding/base64"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/autocare/platetrack/internal/common"
	"github.com/autocare/platetrack/internal/detect"
)

// detectRequestJSON is the JSON alternative to a multipart upload.
type detectRequestJSON struct {
	ImageBase64   string  `json:"image_base64" binding:"required"`
	MinConfidence float64 `json:"min_confidence"`
}

// detectResponse is the wire shape of one detection outcome. Plate is
// null (not "") when nothing was found.
type detectResponse struct {
	Plate      *string          `json:"plate"`
	Confidence float64          `json:"confidence"`
	Attempts   []detect.Attempt `json:"attempts"`
}

// HTTPHandler serves the JSON boundary for hosts that do not speak gRPC.
type HTTPHandler struct {
	detector Detector
	logger   *slog.Logger
}

func NewHTTPHandler(d Detector, logger *slog.Logger) *HTTPHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPHandler{detector: d, logger: logger}
}

// Register mounts the detection routes on r.
func (h *HTTPHandler) Register(r *gin.Engine) {
	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	v1 := r.Group("/api/v1")
	v1.POST("/plates/detect", h.detectPlate)
}

// POST /api/v1/plates/detect
// Accepts either a multipart upload under the "image" field or a JSON
// body with a base64 image.
func (h *HTTPHandler) detectPlate(c *gin.Context) {
	data, minConf, ok := h.readImage(c)
	if !ok {
		return
	}

	res, err := h.detector.Detect(c.Request.Context(), data, detect.Options{MinConfidence: minConf})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidImage):
			c.JSON(http.StatusBadRequest, gin.H{"error": "image could not be decoded"})
		case errors.Is(err, common.ErrEngineUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "ocr engine unavailable"})
		default:
			h.logger.Warn("detection failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "detection failed"})
		}
		return
	}

	out := detectResponse{Confidence: res.Confidence, Attempts: res.Attempts}
	if res.Found() {
		out.Plate = &res.Plate
	}
	c.JSON(http.StatusOK, out)
}

func (h *HTTPHandler) readImage(c *gin.Context) ([]byte, float64, bool) {
	if file, err := c.FormFile("image"); err == nil {
		f, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable upload"})
			return nil, 0, false
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable upload"})
			return nil, 0, false
		}
		return data, 0, true
	}

	var req detectRequestJSON
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload: " + err.Error()})
		return nil, 0, false
	}
	data, err := base64.StdEncoding.DecodeString(req.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image data"})
		return nil, 0, false
	}
	if len(data) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty image data"})
		return nil, 0, false
	}
	if req.MinConfidence < 0 || req.MinConfidence > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "min_confidence must be in [0,100]"})
		return nil, 0, false
	}
	return data, req.MinConfidence, true
}
