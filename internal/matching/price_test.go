package matching

import (
	"testing"

	"github.com/bedathon/roommate-matching/internal/domain"
)

func TestExtractPrice(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw    string
		want   int
		wantOK bool
	}{
		{"879-979", 879, true},
		{"1020+", 1020, true},
		{"809", 809, true},
		{"$1200", 1200, true},
		{"from 950", 950, true},
		{"X", 0, false},
		{"x", 0, false},
		{"", 0, false},
		{"TBD", 0, false},
	}

	for _, c := range cases {
		apt := domain.Apartment{TwoBedroomPrice: c.raw}
		got, ok := ExtractPrice(apt, 2)
		if ok != c.wantOK || got != c.want {
			t.Errorf("ExtractPrice(%q) = (%d, %v), want (%d, %v)", c.raw, got, ok, c.want, c.wantOK)
		}
	}
}

func TestExtractPriceUnknownBedroomCount(t *testing.T) {
	t.Parallel()

	apt := domain.Apartment{TwoBedroomPrice: "900"}
	if _, ok := ExtractPrice(apt, 3); ok {
		t.Fatal("no three-bedroom field, expected no price")
	}
	if _, ok := ExtractPrice(apt, 7); ok {
		t.Fatal("out-of-range bedroom count, expected no price")
	}
}

func TestMaxBedroomCount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		apt  domain.Apartment
		want int
	}{
		{"studio only", domain.Apartment{StudioPrice: "700"}, 0},
		{"two and four", domain.Apartment{TwoBedroomPrice: "900", FourBedroomPrice: "650"}, 4},
		{"sentinel ignored", domain.Apartment{TwoBedroomPrice: "900", FiveBedroomPrice: "X"}, 2},
		{"nothing populated", domain.Apartment{}, 1},
	}

	for _, c := range cases {
		if got := MaxBedroomCount(c.apt); got != c.want {
			t.Errorf("%s: MaxBedroomCount = %d, want %d", c.name, got, c.want)
		}
	}
}
