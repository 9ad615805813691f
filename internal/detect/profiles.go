package detect

import (
	"fmt"

	"github.com/autocare/platetrack/internal/ocr"
)

// PlateWhitelist is the character set handed to the engine for every
// attempt: plate alphanumerics plus the hyphen some formats carry.
const PlateWhitelist = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-"

// Binarization strategy names used in the profile table.
const (
	BinarizeOtsu     = "otsu"
	BinarizeAdaptive = "adaptive"
)

// Profile is one named preprocessing/engine combination tried exactly
// once per detection call. The profile list is ordered data: iteration
// order doubles as the tie-break rule, so tuning the table never
// touches control flow.
type Profile struct {
	Name     string
	Binarize string  // BinarizeOtsu | BinarizeAdaptive
	Rotation float64 // degrees, applied after binarization
	Attempt  ocr.AttemptConfig
}

// baseAttempts are the engine configurations from most to least
// promising for single-line plate crops.
var baseAttempts = []ocr.AttemptConfig{
	{OEM: 3, PSM: 8, Whitelist: PlateWhitelist},  // single word
	{OEM: 3, PSM: 7, Whitelist: PlateWhitelist},  // single text line
	{OEM: 1, PSM: 11, Whitelist: PlateWhitelist}, // sparse text
	{OEM: 3, PSM: 6, Whitelist: PlateWhitelist},  // uniform block
}

// rotationRetries are the skew angles tried when upright attempts are
// exhausted, paired with the most promising engine configuration only.
var rotationRetries = []float64{-10, -5, 5, 10}

// DefaultProfiles returns the built-in ordered profile table: every
// binarization strategy crossed with every base attempt, followed by
// small-angle rotation retries.
func DefaultProfiles() []Profile {
	var out []Profile
	for _, bin := range []string{BinarizeOtsu, BinarizeAdaptive} {
		for _, a := range baseAttempts {
			out = append(out, Profile{
				Name:     fmt.Sprintf("%s-%s", bin, a),
				Binarize: bin,
				Attempt:  a,
			})
		}
	}
	for _, deg := range rotationRetries {
		out = append(out, Profile{
			Name:     fmt.Sprintf("%s-%s-rot%+g", BinarizeOtsu, baseAttempts[0], deg),
			Binarize: BinarizeOtsu,
			Rotation: deg,
			Attempt:  baseAttempts[0],
		})
	}
	return out
}
