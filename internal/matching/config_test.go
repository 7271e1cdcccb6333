package matching

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultWeightsSumToOne(t *testing.T) {
	t.Parallel()

	for name, w := range map[string]Weights{"default": DefaultWeights(), "campus-life": CampusLifeWeights()} {
		sum := w.Budget + w.Bedrooms + w.Distance + w.Amenities + w.Study + w.Parking + w.Lifestyle + w.Shopping
		if math.Abs(sum-1.0) > 1e-9 {
			t.Errorf("%s weights sum to %v, want 1.0", name, sum)
		}
	}
}

func TestPresetWeights(t *testing.T) {
	t.Parallel()

	if got := PresetWeights("campus-life"); got != CampusLifeWeights() {
		t.Errorf("campus-life preset = %+v", got)
	}
	if got := PresetWeights("nope"); got != DefaultWeights() {
		t.Errorf("unknown preset should fall back to defaults, got %+v", got)
	}
	if got := PresetWeights(""); got != DefaultWeights() {
		t.Errorf("empty preset should fall back to defaults, got %+v", got)
	}
}

func TestLoadWeightsFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "weights.yaml")
	body := "budget: 0.5\nbedrooms: 0.1\ndistance: 0.4\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := LoadWeightsFromFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if w.Budget != 0.5 || w.Bedrooms != 0.1 || w.Distance != 0.4 {
		t.Fatalf("loaded weights = %+v", w)
	}
	// Keys absent from the file keep their default values.
	if w.Amenities != DefaultWeights().Amenities {
		t.Fatalf("amenities should keep default, got %v", w.Amenities)
	}
}

func TestLoadWeightsFromFileMissing(t *testing.T) {
	t.Parallel()

	w, err := LoadWeightsFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if w != DefaultWeights() {
		t.Fatalf("missing file should yield defaults, got %+v", w)
	}
}

func TestLoadWeightsFromFileMalformed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "weights.yaml")
	if err := os.WriteFile(path, []byte("{{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := LoadWeightsFromFile(path)
	if err == nil {
		t.Fatal("expected error for malformed yaml")
	}
	if w != DefaultWeights() {
		t.Fatalf("malformed file should yield defaults, got %+v", w)
	}
}
