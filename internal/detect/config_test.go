package detect

import (
	"os"
	"path/filepath"
	"testing"
)

func writeProfiles(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadProfilesFile(t *testing.T) {
	path := writeProfiles(t, `{
		"min_confidence": 70,
		"policy": {"min_length": 5, "max_length": 8, "patterns": ["^[0-9]{2}[A-Z][0-9]{3,5}$"]},
		"profiles": [
			{"name": "vn-line", "binarize": "otsu", "psm": 7, "oem": 3},
			{"name": "vn-word-tilt", "binarize": "adaptive", "psm": 8, "rotation": -5}
		]
	}`)

	opts, err := LoadProfilesFile(path)
	if err != nil {
		t.Fatalf("LoadProfilesFile: %v", err)
	}

	d := NewDetector(&fakeEngine{}, nil, opts...)
	if d.minConf != 70 {
		t.Errorf("minConf = %v, want 70", d.minConf)
	}
	if len(d.profiles) != 2 {
		t.Fatalf("profiles = %d, want 2", len(d.profiles))
	}
	if d.profiles[0].Name != "vn-line" || d.profiles[0].Attempt.PSM != 7 {
		t.Errorf("first profile = %+v", d.profiles[0])
	}
	if d.profiles[1].Rotation != -5 {
		t.Errorf("rotation = %v, want -5", d.profiles[1].Rotation)
	}
	if d.profiles[0].Attempt.Whitelist != PlateWhitelist {
		t.Errorf("empty whitelist should default, got %q", d.profiles[0].Attempt.Whitelist)
	}
	if !d.policy.Valid("29A12345") {
		t.Error("custom policy should accept 29A12345")
	}
	if d.policy.Valid("ABC123") {
		t.Error("custom policy should reject default-style plate")
	}
}

func TestLoadProfilesFileSchemaViolations(t *testing.T) {
	cases := map[string]string{
		"missing profiles":  `{"min_confidence": 50}`,
		"empty profiles":    `{"profiles": []}`,
		"bad binarize":      `{"profiles": [{"name": "x", "binarize": "canny", "psm": 7}]}`,
		"psm out of range":  `{"profiles": [{"name": "x", "binarize": "otsu", "psm": 99}]}`,
		"conf out of range": `{"min_confidence": 130, "profiles": [{"name": "x", "binarize": "otsu", "psm": 7}]}`,
		"not json":          `profiles:`,
	}
	for name, content := range cases {
		if _, err := LoadProfilesFile(writeProfiles(t, content)); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}

func TestLoadProfilesFileMissing(t *testing.T) {
	if _, err := LoadProfilesFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
