package matching

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Weights defines the coefficient of each apartment-scoring term. A term with
// a zero weight is skipped entirely, so a preset chooses which terms exist as
// well as how much they count.
type Weights struct {
	Budget    float64 `yaml:"budget"`
	Bedrooms  float64 `yaml:"bedrooms"`
	Distance  float64 `yaml:"distance"`
	Amenities float64 `yaml:"amenities"`
	Study     float64 `yaml:"study"`
	Parking   float64 `yaml:"parking"`
	Lifestyle float64 `yaml:"lifestyle"`
	Shopping  float64 `yaml:"shopping"`
}

// DefaultWeights is the canonical, profile-driven configuration.
func DefaultWeights() Weights {
	return Weights{
		Budget:    0.30,
		Bedrooms:  0.20,
		Distance:  0.15,
		Amenities: 0.15,
		Study:     0.10,
		Parking:   0.10,
	}
}

// CampusLifeWeights trades the bedroom term for lifestyle and shopping
// proximity and leans harder on distance and amenities.
func CampusLifeWeights() Weights {
	return Weights{
		Budget:    0.30,
		Distance:  0.20,
		Amenities: 0.25,
		Study:     0.15,
		Parking:   0.10,
		Lifestyle: 0.10,
		Shopping:  0.05,
	}
}

// PresetWeights resolves a preset by name; unknown names fall back to the
// default preset.
func PresetWeights(name string) Weights {
	switch name {
	case "campus-life":
		return CampusLifeWeights()
	default:
		return DefaultWeights()
	}
}

// LoadWeightsFromFile loads weights from a YAML file, returning the defaults
// alongside the error when the file cannot be read or parsed.
func LoadWeightsFromFile(path string) (Weights, error) {
	w := DefaultWeights()
	b, err := os.ReadFile(path)
	if err != nil {
		return w, fmt.Errorf("read weights file: %w", err)
	}
	if err := yaml.Unmarshal(b, &w); err != nil {
		return DefaultWeights(), fmt.Errorf("unmarshal weights: %w", err)
	}
	return w, nil
}
