package domain

import "testing"

func TestParsePreferenceLevel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want PreferenceLevel
	}{
		{"VERY_LOW", VeryLow},
		{"low", Low},
		{"Medium", Medium},
		{"HIGH", High},
		{"very_high", VeryHigh},
		{"very high", VeryHigh},
		{"Very-High", VeryHigh},
		{"  LOW  ", Low},
		{"", Medium},
		{"whatever", Medium},
		{"3", Medium},
	}

	for _, c := range cases {
		if got := ParsePreferenceLevel(c.in); got != c.want {
			t.Errorf("ParsePreferenceLevel(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestPreferenceLevelFromIntClamps(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   int
		want PreferenceLevel
	}{
		{-3, VeryLow},
		{0, Medium},
		{1, VeryLow},
		{3, Medium},
		{5, VeryHigh},
		{9, VeryHigh},
	}
	for _, c := range cases {
		if got := PreferenceLevelFromInt(c.in); got != c.want {
			t.Errorf("PreferenceLevelFromInt(%d) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestPreferenceLevelStringRoundTrip(t *testing.T) {
	t.Parallel()

	for _, level := range []PreferenceLevel{VeryLow, Low, Medium, High, VeryHigh} {
		if got := ParsePreferenceLevel(level.String()); got != level {
			t.Errorf("round trip of %v via %q = %v", level, level.String(), got)
		}
	}
}

func TestProfileNormalize(t *testing.T) {
	t.Parallel()

	p := Profile{Name: "N", Email: "n@vt.edu", BudgetMin: 800}.Normalize()
	if p.BudgetMax != 1000 {
		t.Errorf("single budget should imply +200 ceiling, got max=%d", p.BudgetMax)
	}
	if p.PreferredBedrooms != 1 {
		t.Errorf("preferred bedrooms should default to 1, got %d", p.PreferredBedrooms)
	}
	if p.Cleanliness != Medium || p.SleepSchedule != Medium {
		t.Errorf("unset levels should default to MEDIUM, got %+v", p)
	}

	swapped := Profile{BudgetMin: 1200, BudgetMax: 900}.Normalize()
	if swapped.BudgetMin != 900 || swapped.BudgetMax != 1200 {
		t.Errorf("inverted budget bounds should be reordered, got [%d,%d]", swapped.BudgetMin, swapped.BudgetMax)
	}

	big := Profile{PreferredBedrooms: 9}.Normalize()
	if big.PreferredBedrooms != 5 {
		t.Errorf("bedrooms should clamp to 5, got %d", big.PreferredBedrooms)
	}
}
