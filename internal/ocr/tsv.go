package ocr

import (
	"strconv"
	"strings"
)

// parseTSV extracts recognized words and their mean confidence from
// tesseract TSV output. The conf column is the second to last, the
// word text is last; header rows and entries with conf "-1" (layout
// rows, not words) are skipped. Confidence stays on the native 0..100
// scale.
func parseTSV(out string) (string, float64) {
	lines := strings.Split(out, "\n")
	var words []string
	var sum float64
	var n int
	for i, ln := range lines {
		if i == 0 || len(ln) == 0 {
			continue // skip header
		}
		cols := strings.Split(ln, "\t")
		if len(cols) < 12 {
			continue // defensive
		}
		confStr := cols[len(cols)-2]
		word := strings.TrimSpace(cols[len(cols)-1])
		if confStr == "" || confStr == "-1" || word == "" {
			continue
		}
		v, err := strconv.ParseFloat(confStr, 64)
		if err != nil {
			continue
		}
		words = append(words, word)
		sum += v
		n++
	}
	if n == 0 {
		return "", 0
	}
	return strings.Join(words, " "), sum / float64(n)
}
