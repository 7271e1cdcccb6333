package matching

import (
	"math"
	"testing"

	"github.com/bedathon/roommate-matching/internal/domain"
)

func alice() domain.Profile {
	return domain.Profile{
		Name: "Alice Johnson", Email: "alice@vt.edu",
		BudgetMin: 800, BudgetMax: 1200, PreferredBedrooms: 2,
		Cleanliness:   domain.High,
		NoiseLevel:    domain.Low,
		StudyTime:     domain.VeryHigh,
		SocialLevel:   domain.Medium,
		SleepSchedule: domain.High,
		PetFriendly:   true,
	}
}

func bob() domain.Profile {
	return domain.Profile{
		Name: "Bob Smith", Email: "bob@vt.edu",
		BudgetMin: 900, BudgetMax: 1300, PreferredBedrooms: 2,
		Cleanliness:   domain.Medium,
		NoiseLevel:    domain.Medium,
		StudyTime:     domain.Medium,
		SocialLevel:   domain.High,
		SleepSchedule: domain.Low,
	}
}

func TestCompatibilityScoreSymmetry(t *testing.T) {
	t.Parallel()

	a, b := alice(), bob()
	if got, rev := CompatibilityScore(a, b), CompatibilityScore(b, a); got != rev {
		t.Fatalf("score not symmetric: %v vs %v", got, rev)
	}
}

func TestCompatibilityScoreSelfMatch(t *testing.T) {
	t.Parallel()

	// A perfect match tops out below 1.0: matched smoking earns 0.05
	// against the 0.10 weight it puts in the denominator.
	want := 1.10 / 1.15
	for _, p := range []domain.Profile{alice(), bob()} {
		if got := CompatibilityScore(p, p); math.Abs(got-want) > 1e-9 {
			t.Fatalf("self match for %s = %v, want %v", p.Name, got, want)
		}
	}
}

func TestCompatibilityScoreScenario(t *testing.T) {
	t.Parallel()

	// Moderate pair: diverging sleep/study, matching smoking, mismatched pets.
	got := CompatibilityScore(alice(), bob())
	if got < 0.55 || got > 0.70 {
		t.Fatalf("alice/bob compatibility = %v, want within [0.55, 0.70]", got)
	}
}

func TestCompatibilityScoreBounds(t *testing.T) {
	t.Parallel()

	low := domain.Profile{
		BudgetMax: 100, Cleanliness: domain.VeryLow, NoiseLevel: domain.VeryLow,
		StudyTime: domain.VeryLow, SocialLevel: domain.VeryLow, SleepSchedule: domain.VeryLow,
		PetFriendly: true, Smoking: true,
	}
	high := domain.Profile{
		BudgetMax: 5000, Cleanliness: domain.VeryHigh, NoiseLevel: domain.VeryHigh,
		StudyTime: domain.VeryHigh, SocialLevel: domain.VeryHigh, SleepSchedule: domain.VeryHigh,
	}

	for _, pair := range [][2]domain.Profile{{low, high}, {low, low}, {high, high}, {alice(), bob()}} {
		got := CompatibilityScore(pair[0], pair[1])
		if got < 0 || got > 1 {
			t.Fatalf("score %v out of [0,1]", got)
		}
	}
}

func TestCompatibilityScoreMonotonicOnCleanliness(t *testing.T) {
	t.Parallel()

	base := alice()
	base.Cleanliness = domain.VeryLow

	prev := 2.0
	for level := domain.VeryLow; level <= domain.VeryHigh; level++ {
		other := alice()
		other.Cleanliness = level
		// Growing distance from VERY_LOW must never raise the score.
		got := CompatibilityScore(base, other)
		if got > prev {
			t.Fatalf("score increased with larger cleanliness gap: level=%v score=%v prev=%v", level, got, prev)
		}
		prev = got
	}
}

func TestSmokingMismatchOutweighsPetMismatch(t *testing.T) {
	t.Parallel()

	base := alice()

	petMismatch := alice()
	petMismatch.PetFriendly = !base.PetFriendly

	smokingMismatch := alice()
	smokingMismatch.Smoking = !base.Smoking

	if pet, smoke := CompatibilityScore(base, petMismatch), CompatibilityScore(base, smokingMismatch); smoke >= pet {
		t.Fatalf("smoking mismatch (%v) should cost more than pet mismatch (%v)", smoke, pet)
	}
}

func TestBudgetFactorZeroBudgets(t *testing.T) {
	t.Parallel()

	var a, b domain.Profile
	for _, f := range CompatibilityFactors(a, b) {
		if f.Key == "budget" && math.Abs(f.Contribution-0.20) > 1e-9 {
			t.Fatalf("two zero budgets should be a perfect budget match, contribution=%v", f.Contribution)
		}
	}
}

func TestFindRoommatePairs(t *testing.T) {
	t.Parallel()

	if got := FindRoommatePairs(nil, 0.5); len(got) != 0 {
		t.Fatalf("no profiles should yield no pairs, got %d", len(got))
	}
	if got := FindRoommatePairs([]domain.Profile{alice()}, 0.5); len(got) != 0 {
		t.Fatalf("a single profile should yield no pairs, got %d", len(got))
	}

	carol := alice()
	carol.Name, carol.Email = "Carol Davis", "carol@vt.edu"
	carol.SocialLevel = domain.Low

	pairs := FindRoommatePairs([]domain.Profile{alice(), bob(), carol}, 0)
	if len(pairs) != 3 {
		t.Fatalf("expected 3 pairs, got %d", len(pairs))
	}
	for i := 1; i < len(pairs); i++ {
		if pairs[i].CompatibilityScore > pairs[i-1].CompatibilityScore {
			t.Fatalf("pairs not sorted descending at %d", i)
		}
	}
	// alice/carol differ on one axis only; they must rank first.
	if pairs[0].Roommate1.Email != "alice@vt.edu" || pairs[0].Roommate2.Email != "carol@vt.edu" {
		t.Fatalf("unexpected top pair: %s / %s", pairs[0].Roommate1.Email, pairs[0].Roommate2.Email)
	}

	strict := FindRoommatePairs([]domain.Profile{alice(), bob(), carol}, 0.9)
	for _, p := range strict {
		if p.CompatibilityScore < 0.9 {
			t.Fatalf("pair below threshold leaked through: %v", p.CompatibilityScore)
		}
	}
}
