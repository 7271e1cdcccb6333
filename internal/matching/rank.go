package matching

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bedathon/roommate-matching/internal/domain"
)

const defaultLimit = 5

// Engine ranks apartment listings against a profile's preferences. The
// catalog and reference datasets are read-only; the engine never mutates its
// inputs, so one engine may serve concurrent callers.
type Engine struct {
	weights     Weights
	restaurants []domain.Restaurant
	places      []domain.Place
}

// NewEngine builds a ranking engine. The restaurant and place datasets are
// optional and only enrich reason strings; pass nil to skip enrichment.
func NewEngine(w Weights, restaurants []domain.Restaurant, places []domain.Place) *Engine {
	return &Engine{weights: w, restaurants: restaurants, places: places}
}

// RankFactor is one scoring term for a single apartment: what it added to
// the score, how much of the denominator it claimed, and the human-readable
// reasons it produced.
type RankFactor struct {
	Key          string
	Contribution float64
	Weight       float64
	Reasons      []string
}

// RankApartments scores the catalog against the profile and returns up to
// limit matches, best first. Ties keep catalog order.
func (e *Engine) RankApartments(profile domain.Profile, apartments []domain.Apartment, limit int) []domain.ApartmentMatch {
	profile = profile.Normalize()

	matches := []domain.ApartmentMatch{}
	for _, apartment := range apartments {
		score, reasons := e.scoreApartment(profile, apartment)
		matches = append(matches, domain.ApartmentMatch{
			ApartmentName:    apartment.Name,
			ApartmentAddress: apartment.Address,
			BedroomCount:     MaxBedroomCount(apartment),
			Price:            priceLabel(apartment, profile.PreferredBedrooms),
			DistanceToVT:     apartment.DistanceToVT,
			Amenities:        apartment.Amenities,
			MatchScore:       round3(score),
			MatchPercentage:  round1(score * 100),
			Reasons:          reasons,
			// Neutral placeholder until the caller pairs the profile with
			// actual roommates.
			RoommateCompatibility: 0.5,
			Apartment:             apartment,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
	if limit <= 0 {
		limit = defaultLimit
	}
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// scoreApartment folds the structured factor list into a normalized score
// and the flat reason list, in factor order.
func (e *Engine) scoreApartment(profile domain.Profile, apartment domain.Apartment) (float64, []string) {
	var score, maxScore float64
	reasons := []string{}
	for _, f := range e.ApartmentFactors(profile, apartment) {
		score += f.Contribution
		maxScore += f.Weight
		reasons = append(reasons, f.Reasons...)
	}
	if maxScore <= 0 {
		return 0, reasons
	}
	return score / maxScore, reasons
}

// ApartmentFactors computes the weighted scoring terms for one apartment.
// Zero-weight terms are absent. The budget term is also absent when no price
// exists for the requested bedroom count, so missing data neither helps nor
// hurts; every other term keeps its weight in the denominator even when it
// contributes nothing.
func (e *Engine) ApartmentFactors(profile domain.Profile, apartment domain.Apartment) []RankFactor {
	var factors []RankFactor

	if e.weights.Budget > 0 {
		if f, ok := e.budgetFactor(profile, apartment); ok {
			factors = append(factors, f)
		}
	}
	if e.weights.Bedrooms > 0 {
		factors = append(factors, e.bedroomFactor(profile, apartment))
	}
	if e.weights.Distance > 0 {
		factors = append(factors, e.distanceFactor(apartment))
	}
	if e.weights.Amenities > 0 {
		factors = append(factors, e.amenityFactor(profile, apartment))
	}
	if e.weights.Study > 0 {
		factors = append(factors, e.studyFactor(profile, apartment))
	}
	if e.weights.Parking > 0 {
		factors = append(factors, e.parkingFactor(apartment))
	}
	if e.weights.Lifestyle > 0 {
		factors = append(factors, e.lifestyleFactor(profile, apartment))
	}
	if e.weights.Shopping > 0 {
		factors = append(factors, e.shoppingFactor(apartment))
	}

	return factors
}

func (e *Engine) budgetFactor(profile domain.Profile, apartment domain.Apartment) (RankFactor, bool) {
	price, ok := ExtractPrice(apartment, profile.PreferredBedrooms)
	if !ok {
		return RankFactor{}, false
	}

	f := RankFactor{Key: "budget", Weight: e.weights.Budget}
	switch {
	case price >= profile.BudgetMin && price <= profile.BudgetMax:
		f.Contribution = e.weights.Budget
		f.Reasons = []string{fmt.Sprintf("Price $%d fits your budget ($%d-$%d)", price, profile.BudgetMin, profile.BudgetMax)}
	case price < profile.BudgetMin:
		f.Contribution = 0.8 * e.weights.Budget
		f.Reasons = []string{fmt.Sprintf("Price $%d is below your minimum budget", price)}
	default:
		f.Contribution = clamp(float64(profile.BudgetMax)/float64(price), 0, 1) * e.weights.Budget
		f.Reasons = []string{fmt.Sprintf("Price $%d is above your budget", price)}
	}
	return f, true
}

func (e *Engine) bedroomFactor(profile domain.Profile, apartment domain.Apartment) RankFactor {
	f := RankFactor{Key: "bedrooms", Weight: e.weights.Bedrooms}
	offered := MaxBedroomCount(apartment)
	if offered == profile.PreferredBedrooms {
		f.Contribution = e.weights.Bedrooms
		f.Reasons = []string{fmt.Sprintf("Perfect bedroom count: %d", profile.PreferredBedrooms)}
	} else {
		f.Contribution = 0.5 * e.weights.Bedrooms
		f.Reasons = []string{fmt.Sprintf("Bedroom count: %d (preferred: %d)", offered, profile.PreferredBedrooms)}
	}
	return f
}

func (e *Engine) distanceFactor(apartment domain.Apartment) RankFactor {
	f := RankFactor{Key: "distance", Weight: e.weights.Distance}
	distance := apartment.DistanceToVT
	if distance <= 0 {
		// Unknown distance: no contribution, no reason.
		return f
	}
	var band float64
	var label string
	switch {
	case distance <= 1.0:
		band, label = 1.0, "Very close to VT"
	case distance <= 2.0:
		band, label = 0.8, "Close to VT"
	case distance <= 3.0:
		band, label = 0.6, "Moderate distance to VT"
	default:
		band, label = 0.4, "Far from VT"
	}
	f.Contribution = band * e.weights.Distance
	f.Reasons = []string{fmt.Sprintf("%s: %g miles", label, distance)}
	return f
}

func (e *Engine) amenityFactor(profile domain.Profile, apartment domain.Apartment) RankFactor {
	f := RankFactor{Key: "amenities", Weight: e.weights.Amenities}
	var sub float64

	if profile.Cleanliness.Value() >= 4 && hasAmenity(apartment, "Laundry") {
		sub += 0.3
		f.Reasons = append(f.Reasons, "Has laundry facilities (good for cleanliness)")
	}
	if profile.SocialLevel.Value() >= 4 && hasAmenity(apartment, "Pool") {
		sub += 0.2
		f.Reasons = append(f.Reasons, "Has pool (good for socializing)")
	}
	if profile.NoiseLevel.Value() <= 2 && hasAmenity(apartment, "Fitness Center") {
		sub += 0.2
		f.Reasons = append(f.Reasons, "Has fitness center (quiet activity)")
	}
	if profile.PetFriendly && apartment.PetFriendly {
		sub += 0.3
		f.Reasons = append(f.Reasons, "Pet-friendly apartment")
	}

	f.Contribution = clamp(sub, 0, 1) * e.weights.Amenities
	return f
}

func (e *Engine) studyFactor(profile domain.Profile, apartment domain.Apartment) RankFactor {
	f := RankFactor{Key: "study", Weight: e.weights.Study}
	if profile.StudyTime.Value() < 4 {
		return f
	}
	var sub float64
	if hasAmenity(apartment, "WiFi") || apartment.WifiIncluded {
		sub += 0.5
		f.Reasons = append(f.Reasons, "Includes WiFi (good for studying)")
	}
	if !apartment.Pool && !hasAmenity(apartment, "Pool") {
		sub += 0.5
		f.Reasons = append(f.Reasons, "Quiet environment for studying")
	}
	f.Contribution = sub * e.weights.Study
	return f
}

func (e *Engine) parkingFactor(apartment domain.Apartment) RankFactor {
	f := RankFactor{Key: "parking", Weight: e.weights.Parking}
	if strings.TrimSpace(apartment.Parking) != "" {
		f.Contribution = 0.8 * e.weights.Parking
		f.Reasons = []string{fmt.Sprintf("Parking available: %s", apartment.Parking)}
	}
	return f
}

// lifestyleFactor rewards being near campus hotspots, with a linear decay
// between 2 and 5 miles, and names nearby restaurants or the library when
// the profile's social or study preferences warrant it.
func (e *Engine) lifestyleFactor(profile domain.Profile, apartment domain.Apartment) RankFactor {
	f := RankFactor{Key: "lifestyle", Weight: e.weights.Lifestyle}
	distance := apartment.DistanceToVT
	if distance <= 0 {
		return f
	}

	var band float64
	switch {
	case distance <= 2.0:
		band = 1.0
	case distance >= 5.0:
		band = 0.2
	default:
		band = clamp(1.0-(distance-2.0)/3.0, 0.2, 1.0)
	}
	f.Contribution = band * e.weights.Lifestyle

	var highlights []string
	if profile.SocialLevel.Value() >= 4 {
		for i, r := range e.restaurants {
			if i >= 2 {
				break
			}
			if r.Name != "" {
				highlights = append(highlights, r.Name)
			}
		}
	}
	if profile.StudyTime.Value() >= 4 {
		for _, p := range e.places {
			if p.Category == "library" && p.Name != "" {
				highlights = append(highlights, p.Name)
				break
			}
		}
	}
	if len(highlights) > 0 {
		f.Reasons = []string{"Close to campus hotspots: " + strings.Join(highlights, ", ")}
	}
	return f
}

func (e *Engine) shoppingFactor(apartment domain.Apartment) RankFactor {
	f := RankFactor{Key: "shopping", Weight: e.weights.Shopping}
	distance := apartment.DistanceToVT
	if distance <= 0 {
		return f
	}

	switch {
	case distance <= 2.5:
		f.Contribution = e.weights.Shopping
		for _, p := range e.places {
			if p.Category == "shopping" && p.Name != "" {
				f.Reasons = []string{fmt.Sprintf("Convenient shopping nearby (e.g., %s)", p.Name)}
				break
			}
		}
	case distance <= 4.0:
		f.Contribution = 0.6 * e.weights.Shopping
	default:
		f.Contribution = 0.3 * e.weights.Shopping
	}
	return f
}

// GenerateRecommendations builds the batch report for a set of profiles:
// compatible pairings plus each profile's top apartments, keyed by email.
func (e *Engine) GenerateRecommendations(profiles []domain.Profile, apartments []domain.Apartment, minCompatibility float64) domain.Recommendations {
	rec := domain.Recommendations{
		RoommateMatches:  FindRoommatePairs(profiles, minCompatibility),
		ApartmentMatches: make(map[string][]domain.ApartmentMatch, len(profiles)),
		Summary: domain.Summary{
			TotalRoommates:   len(profiles),
			TotalApartments:  len(apartments),
			TotalRestaurants: len(e.restaurants),
			TotalAmenities:   len(e.places),
		},
	}
	for _, profile := range profiles {
		rec.ApartmentMatches[profile.Email] = e.RankApartments(profile, apartments, defaultLimit)
	}
	return rec
}

// DatasetCounts reports the sizes of the optional reference datasets.
func (e *Engine) DatasetCounts() (restaurants, places int) {
	return len(e.restaurants), len(e.places)
}

func hasAmenity(apartment domain.Apartment, name string) bool {
	for _, a := range apartment.Amenities {
		if strings.EqualFold(strings.TrimSpace(a), name) {
			return true
		}
	}
	return false
}

func priceLabel(apartment domain.Apartment, bedrooms int) string {
	if price, ok := ExtractPrice(apartment, bedrooms); ok {
		return fmt.Sprintf("$%d", price)
	}
	return "$N/A"
}
