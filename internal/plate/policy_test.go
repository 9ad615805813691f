package plate

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"AB-123-X!", "AB123X"},
		{"ab 123 x", "AB123X"},
		{"  KA-01-AB-1234 ", "KA01AB1234"},
		{"٣٤AB", "34AB"},
		{"۴۵-cd", "45CD"},
		{"@#$%", ""},
		{"", ""},
		{"ABC123", "ABC123"},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPolicyValid(t *testing.T) {
	p := DefaultPolicy()
	cases := []struct {
		in    string
		valid bool
	}{
		{"ABC123", true},
		{"1234ABC", true},
		{"AB12C", true},
		{"A1", false},        // too short
		{"ABCDEFGHIJKLM", false}, // too long
		{"", false},
		{"AB123X", true},
		{"ABCDE12345", true}, // fallback alnum pattern
	}
	for _, tc := range cases {
		if got := p.Valid(tc.in); got != tc.valid {
			t.Errorf("Valid(%q) = %v, want %v", tc.in, got, tc.valid)
		}
	}
}

func TestNewPolicyCustomPatterns(t *testing.T) {
	p, err := NewPolicy(5, 8, []string{`^[0-9]{2}[A-Z]{1,2}[0-9]{3,5}$`})
	if err != nil {
		t.Fatalf("NewPolicy: %v", err)
	}
	if !p.Valid("29A12345") {
		t.Error("expected 29A12345 to match custom pattern")
	}
	if p.Valid("ABC123") {
		t.Error("default-style plate should not match custom pattern")
	}
}

func TestNewPolicyBadPattern(t *testing.T) {
	if _, err := NewPolicy(3, 12, []string{`^[`}); err == nil {
		t.Error("expected compile error for malformed pattern")
	}
}
