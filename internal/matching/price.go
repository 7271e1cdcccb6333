package matching

import (
	"github.com/bedathon/roommate-matching/internal/domain"
)

// ExtractPrice reads the apartment's price field for the given bedroom count
// and returns the first integer found by a left-to-right scan ("879-979"
// yields 879, "1020+" yields 1020). Absent, empty, or "X"-sentinel fields
// yield no price, which is distinct from a legitimate zero.
func ExtractPrice(apartment domain.Apartment, bedrooms int) (int, bool) {
	raw := apartment.PriceField(bedrooms)
	if raw == "" || raw == "X" || raw == "x" {
		return 0, false
	}

	value := 0
	seen := false
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			value = value*10 + int(r-'0')
			seen = true
			continue
		}
		if seen {
			break
		}
	}
	if !seen {
		return 0, false
	}
	return value, true
}

// MaxBedroomCount is the apartment's implied maximum offered size: the
// highest unit size (0..5) with a usable price, defaulting to 1 when no
// price field is populated.
func MaxBedroomCount(apartment domain.Apartment) int {
	max := -1
	for i := 0; i <= 5; i++ {
		if _, ok := ExtractPrice(apartment, i); ok {
			max = i
		}
	}
	if max < 0 {
		return 1
	}
	return max
}
