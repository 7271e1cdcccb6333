package matching

import (
	"math"
	"sort"

	"github.com/bedathon/roommate-matching/internal/domain"
)

// Compatibility term weights. The smoking mismatch penalty is deliberately
// larger than the matched bonus: a smoking mismatch is costlier to ignore
// than any other single axis.
const (
	compatBudgetWeight      = 0.20
	compatCleanlinessWeight = 0.25
	compatNoiseWeight       = 0.20
	compatStudyWeight       = 0.15
	compatSocialWeight      = 0.10
	compatSleepWeight       = 0.10
	compatPetWeight         = 0.05
	compatSmokingWeight     = 0.10
	compatSmokingBonus      = 0.05
	compatSmokingPenalty    = -0.10
)

// Factor is one term's contribution to a score. Contribution is the weighted
// amount added to the running score; Weight is the amount added to the
// running maximum. Keeping the terms structured makes the accumulation
// auditable and testable per factor.
type Factor struct {
	Key          string
	Contribution float64
	Weight       float64
	Reason       string
}

// CompatibilityFactors breaks the pairwise comparison of two profiles into
// its weighted terms: five lifestyle-level differences, a budget-ceiling
// difference, and the pet/smoking bonus-penalty terms.
func CompatibilityFactors(a, b domain.Profile) []Factor {
	factors := []Factor{
		{Key: "budget", Contribution: budgetCompat(a.BudgetMax, b.BudgetMax) * compatBudgetWeight, Weight: compatBudgetWeight},
		{Key: "cleanliness", Contribution: levelCompat(a.Cleanliness, b.Cleanliness) * compatCleanlinessWeight, Weight: compatCleanlinessWeight},
		{Key: "noise_level", Contribution: levelCompat(a.NoiseLevel, b.NoiseLevel) * compatNoiseWeight, Weight: compatNoiseWeight},
		{Key: "study_time", Contribution: levelCompat(a.StudyTime, b.StudyTime) * compatStudyWeight, Weight: compatStudyWeight},
		{Key: "social_level", Contribution: levelCompat(a.SocialLevel, b.SocialLevel) * compatSocialWeight, Weight: compatSocialWeight},
		{Key: "sleep_schedule", Contribution: levelCompat(a.SleepSchedule, b.SleepSchedule) * compatSleepWeight, Weight: compatSleepWeight},
	}

	pet := Factor{Key: "pet_friendly", Weight: compatPetWeight}
	if a.PetFriendly == b.PetFriendly {
		pet.Contribution = compatPetWeight
	} else {
		pet.Contribution = -compatPetWeight
	}
	factors = append(factors, pet)

	smoking := Factor{Key: "smoking", Weight: compatSmokingWeight}
	if a.Smoking == b.Smoking {
		smoking.Contribution = compatSmokingBonus
	} else {
		smoking.Contribution = compatSmokingPenalty
	}
	factors = append(factors, smoking)

	return factors
}

// CompatibilityScore computes the symmetric 0..1 compatibility between two
// profiles. Pure and deterministic; safe for concurrent callers.
func CompatibilityScore(a, b domain.Profile) float64 {
	var score, maxScore float64
	for _, f := range CompatibilityFactors(a, b) {
		score += f.Contribution
		maxScore += f.Weight
	}
	if maxScore <= 0 {
		return 0
	}
	return clamp(score/maxScore, 0, 1)
}

// FindRoommatePairs scores every i<j pairing, keeps pairs at or above the
// threshold, and returns them sorted by compatibility descending. Fewer than
// two profiles yield an empty result.
func FindRoommatePairs(profiles []domain.Profile, minCompatibility float64) []domain.RoommatePair {
	pairs := []domain.RoommatePair{}
	for i := 0; i < len(profiles); i++ {
		for j := i + 1; j < len(profiles); j++ {
			score := CompatibilityScore(profiles[i], profiles[j])
			if score < minCompatibility {
				continue
			}
			pairs = append(pairs, domain.RoommatePair{
				Roommate1:               profiles[i],
				Roommate2:               profiles[j],
				CompatibilityScore:      round3(score),
				CompatibilityPercentage: round1(score * 100),
			})
		}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].CompatibilityScore > pairs[j].CompatibilityScore
	})
	return pairs
}

// levelCompat maps the absolute difference of two 1..5 levels onto 0..1,
// where identical levels score 1 and opposite extremes score 0.
func levelCompat(a, b domain.PreferenceLevel) float64 {
	diff := math.Abs(float64(a.Value() - b.Value()))
	return math.Max(0, 1-diff/4)
}

// budgetCompat compares budget ceilings relative to the larger of the two.
// Two zero budgets have no difference to measure and count as a perfect
// match.
func budgetCompat(a, b int) float64 {
	larger := math.Max(float64(a), float64(b))
	if larger <= 0 {
		return 1
	}
	diff := math.Abs(float64(a-b)) / larger
	return math.Max(0, 1-diff)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
