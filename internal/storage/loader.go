package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bedathon/roommate-matching/internal/domain"
)

// LoadApartmentsFromFile reads the apartment catalog from a JSON file. The
// catalog is loaded once per process and treated as read-only afterwards.
func LoadApartmentsFromFile(path string) ([]domain.Apartment, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read apartments file: %w", err)
	}

	var apartments []domain.Apartment
	if err := json.Unmarshal(b, &apartments); err != nil {
		return nil, fmt.Errorf("unmarshal apartments: %w", err)
	}
	return apartments, nil
}

// LoadRestaurantsFromFile reads the restaurant reference dataset. A missing
// or unreadable file degrades to an empty dataset: enrichment is optional.
func LoadRestaurantsFromFile(path string) []domain.Restaurant {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var restaurants []domain.Restaurant
	if err := json.Unmarshal(b, &restaurants); err != nil {
		return nil
	}
	return restaurants
}

// LoadPlacesFromFile reads the city amenity reference dataset, with the same
// degrade-to-empty behavior as the restaurant loader.
func LoadPlacesFromFile(path string) []domain.Place {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var places []domain.Place
	if err := json.Unmarshal(b, &places); err != nil {
		return nil
	}
	return places
}
