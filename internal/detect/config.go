package detect

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/autocare/platetrack/internal/ocr"
	"github.com/autocare/platetrack/internal/plate"
)

// profilesSchema guards the shape of an external profile table before
// it replaces the built-in one. A malformed file fails loudly at
// startup instead of silently degrading detection.
const profilesSchema = `{
  "type": "object",
  "properties": {
    "min_confidence": {"type": "number", "minimum": 0, "maximum": 100},
    "policy": {
      "type": "object",
      "properties": {
        "min_length": {"type": "integer", "minimum": 1},
        "max_length": {"type": "integer", "minimum": 1},
        "patterns": {"type": "array", "items": {"type": "string"}, "minItems": 1}
      },
      "required": ["patterns"]
    },
    "profiles": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "binarize": {"enum": ["otsu", "adaptive"]},
          "rotation": {"type": "number"},
          "psm": {"type": "integer", "minimum": 0, "maximum": 13},
          "oem": {"type": "integer", "minimum": 0, "maximum": 3},
          "whitelist": {"type": "string"}
        },
        "required": ["name", "binarize", "psm"]
      }
    }
  },
  "required": ["profiles"]
}`

type profileFile struct {
	MinConfidence float64 `json:"min_confidence"`
	Policy        *struct {
		MinLength int      `json:"min_length"`
		MaxLength int      `json:"max_length"`
		Patterns  []string `json:"patterns"`
	} `json:"policy"`
	Profiles []struct {
		Name      string  `json:"name"`
		Binarize  string  `json:"binarize"`
		Rotation  float64 `json:"rotation"`
		PSM       int     `json:"psm"`
		OEM       int     `json:"oem"`
		Whitelist string  `json:"whitelist"`
	} `json:"profiles"`
}

// LoadProfilesFile reads, validates and compiles an external profile
// table, returning detector options that apply it.
func LoadProfilesFile(path string) ([]DetectorOption, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles file: %w", err)
	}
	if err := validateProfilesJSON(data); err != nil {
		return nil, fmt.Errorf("profiles file %s: %w", path, err)
	}

	var pf profileFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parse profiles file: %w", err)
	}

	var opts []DetectorOption
	if pf.MinConfidence > 0 {
		opts = append(opts, WithMinConfidence(pf.MinConfidence))
	}
	if pf.Policy != nil {
		policy, err := plate.NewPolicy(pf.Policy.MinLength, pf.Policy.MaxLength, pf.Policy.Patterns)
		if err != nil {
			return nil, fmt.Errorf("compile policy: %w", err)
		}
		opts = append(opts, WithPolicy(policy))
	}
	profiles := make([]Profile, 0, len(pf.Profiles))
	for _, p := range pf.Profiles {
		whitelist := p.Whitelist
		if whitelist == "" {
			whitelist = PlateWhitelist
		}
		profiles = append(profiles, Profile{
			Name:     p.Name,
			Binarize: p.Binarize,
			Rotation: p.Rotation,
			Attempt:  ocr.AttemptConfig{PSM: p.PSM, OEM: p.OEM, Whitelist: whitelist},
		})
	}
	opts = append(opts, WithProfiles(profiles))
	return opts, nil
}

func validateProfilesJSON(data []byte) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("profiles.json", bytes.NewReader([]byte(profilesSchema))); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("profiles.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
