package plate

import (
	"regexp"
	"strings"
)

// Policy is the format rule a normalized OCR string must satisfy to be
// accepted as a license plate. The zero value is not usable; construct
// with DefaultPolicy or NewPolicy. A Policy is immutable after
// construction and safe for concurrent use.
type Policy struct {
	minLen   int
	maxLen   int
	patterns []*regexp.Regexp
}

// Default length bounds for normalized plate strings.
const (
	DefaultMinLength = 3
	DefaultMaxLength = 12
)

// defaultPatterns cover common international plate layouts, tried in order.
// The last pattern is a plain alphanumeric fallback.
var defaultPatterns = []string{
	`^[A-Z]{1,4}[0-9]{1,4}$`,            // ABC1234
	`^[0-9]{1,4}[A-Z]{1,4}$`,            // 1234ABC
	`^[A-Z]{1,2}[0-9]{1,4}[A-Z]{0,2}$`,  // AB12C
	`^[A-Z0-9]{3,10}$`,                  // fallback
}

// DefaultPolicy returns the built-in plate-format policy.
func DefaultPolicy() *Policy {
	p, _ := NewPolicy(DefaultMinLength, DefaultMaxLength, defaultPatterns)
	return p
}

// NewPolicy compiles a custom policy. Patterns are matched against the
// normalized (uppercase, separator-free) string in the given order.
func NewPolicy(minLen, maxLen int, patterns []string) (*Policy, error) {
	if minLen <= 0 {
		minLen = DefaultMinLength
	}
	if maxLen < minLen {
		maxLen = DefaultMaxLength
	}
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pat := range patterns {
		re, err := regexp.Compile(pat)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, re)
	}
	return &Policy{minLen: minLen, maxLen: maxLen, patterns: compiled}, nil
}

// digitFold maps Arabic-Indic and Extended Arabic-Indic digits to ASCII.
var digitFold = map[rune]rune{
	'٠': '0', '١': '1', '٢': '2', '٣': '3', '٤': '4',
	'٥': '5', '٦': '6', '٧': '7', '٨': '8', '٩': '9',
	'۰': '0', '۱': '1', '۲': '2', '۳': '3', '۴': '4',
	'۵': '5', '۶': '6', '۷': '7', '۸': '8', '۹': '9',
}

// Normalize folds digits to ASCII, uppercases, drops everything outside
// [A-Z0-9- ] and finally collapses separators (hyphens, spaces) away.
// "AB-123-x!" becomes "AB123X".
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range strings.ToUpper(raw) {
		if folded, ok := digitFold[r]; ok {
			r = folded
		}
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == ' ':
			// separators may be part of some plate formats; dropped
			// here so length and pattern checks see the compact form
		}
	}
	return b.String()
}

// Valid reports whether a normalized string satisfies the policy.
func (p *Policy) Valid(s string) bool {
	if len(s) < p.minLen || len(s) > p.maxLen {
		return false
	}
	hasAlnum := false
	for _, r := range s {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			hasAlnum = true
			break
		}
	}
	if !hasAlnum {
		return false
	}
	for _, re := range p.patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
