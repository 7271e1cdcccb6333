package domain

import "strings"

// PreferenceLevel is the ordinal 1..5 scale used for the five lifestyle
// dimensions (cleanliness, noise, study time, social level, sleep schedule).
type PreferenceLevel int

const (
	VeryLow  PreferenceLevel = 1
	Low      PreferenceLevel = 2
	Medium   PreferenceLevel = 3
	High     PreferenceLevel = 4
	VeryHigh PreferenceLevel = 5
)

var preferenceLabels = map[string]PreferenceLevel{
	"VERY_LOW":  VeryLow,
	"LOW":       Low,
	"MEDIUM":    Medium,
	"HIGH":      High,
	"VERY_HIGH": VeryHigh,
}

// ParsePreferenceLevel maps a label to a level. Matching is case-insensitive
// and tolerates spaces or dashes instead of underscores. Unknown or empty
// labels resolve to Medium; callers may rely on the result always being
// a valid 1..5 level and must not rely on bad input being rejected.
func ParsePreferenceLevel(s string) PreferenceLevel {
	key := strings.ToUpper(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, " ", "_")
	key = strings.ReplaceAll(key, "-", "_")
	if level, ok := preferenceLabels[key]; ok {
		return level
	}
	return Medium
}

// PreferenceLevelFromInt clamps a raw integer into the 1..5 domain, with 0
// (unset) resolving to Medium.
func PreferenceLevelFromInt(v int) PreferenceLevel {
	switch {
	case v == 0:
		return Medium
	case v <= 1:
		return VeryLow
	case v >= 5:
		return VeryHigh
	default:
		return PreferenceLevel(v)
	}
}

// Value returns the raw 1..5 integer. Levels outside the domain (zero value
// included) are clamped so factor math never sees an out-of-range level.
func (p PreferenceLevel) Value() int {
	return int(PreferenceLevelFromInt(int(p)))
}

func (p PreferenceLevel) String() string {
	switch PreferenceLevelFromInt(int(p)) {
	case VeryLow:
		return "VERY_LOW"
	case Low:
		return "LOW"
	case High:
		return "HIGH"
	case VeryHigh:
		return "VERY_HIGH"
	default:
		return "MEDIUM"
	}
}
