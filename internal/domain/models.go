package domain

// AgeRange is an optional inclusive age window on a profile.
type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Profile is a roommate's housing and lifestyle preference record. The five
// preference levels always resolve to 1..5; Normalize takes care of absent
// input.
type Profile struct {
	ID                string          `json:"id,omitempty"`
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	BudgetMin         int             `json:"budget_min"`
	BudgetMax         int             `json:"budget_max"`
	PreferredBedrooms int             `json:"preferred_bedrooms"`
	Cleanliness       PreferenceLevel `json:"cleanliness"`
	NoiseLevel        PreferenceLevel `json:"noise_level"`
	StudyTime         PreferenceLevel `json:"study_time"`
	SocialLevel       PreferenceLevel `json:"social_level"`
	SleepSchedule     PreferenceLevel `json:"sleep_schedule"`
	PetFriendly       bool            `json:"pet_friendly"`
	Smoking           bool            `json:"smoking"`
	GenderPreference  string          `json:"gender_preference,omitempty"`
	AgeRange          *AgeRange       `json:"age_range,omitempty"`
	MoveInDate        string          `json:"move_in_date,omitempty"`
	LeaseLength       int             `json:"lease_length,omitempty"`
}

// Normalize resolves partially filled profiles into the documented input
// domain: a lone budget becomes [budget, budget+200], unset preference levels
// become MEDIUM, and preferred bedrooms are forced into 1..5.
func (p Profile) Normalize() Profile {
	if p.BudgetMax == 0 && p.BudgetMin > 0 {
		p.BudgetMax = p.BudgetMin + 200
	}
	if p.BudgetMax < p.BudgetMin {
		p.BudgetMin, p.BudgetMax = p.BudgetMax, p.BudgetMin
	}
	if p.PreferredBedrooms < 1 {
		p.PreferredBedrooms = 1
	}
	if p.PreferredBedrooms > 5 {
		p.PreferredBedrooms = 5
	}
	p.Cleanliness = PreferenceLevelFromInt(int(p.Cleanliness))
	p.NoiseLevel = PreferenceLevelFromInt(int(p.NoiseLevel))
	p.StudyTime = PreferenceLevelFromInt(int(p.StudyTime))
	p.SocialLevel = PreferenceLevelFromInt(int(p.SocialLevel))
	p.SleepSchedule = PreferenceLevelFromInt(int(p.SleepSchedule))
	return p
}

// Apartment is one listing from the catalog. Price fields are free text as
// scraped ("879-979", "1020+", "X" for not offered) and are indexed by unit
// size from studio to five-bedroom.
type Apartment struct {
	Name              string   `json:"name"`
	Address           string   `json:"address"`
	StudioPrice       string   `json:"studio_price,omitempty"`
	OneBedroomPrice   string   `json:"one_bedroom_price,omitempty"`
	TwoBedroomPrice   string   `json:"two_bedroom_price,omitempty"`
	ThreeBedroomPrice string   `json:"three_bedroom_price,omitempty"`
	FourBedroomPrice  string   `json:"four_bedroom_price,omitempty"`
	FiveBedroomPrice  string   `json:"five_bedroom_price,omitempty"`
	DistanceToVT      float64  `json:"distance_to_vt"`
	Amenities         []string `json:"amenities"`
	PetFriendly       bool     `json:"pet_friendly"`
	Parking           string   `json:"parking,omitempty"`
	Pool              bool     `json:"pool,omitempty"`
	Gym               bool     `json:"gym,omitempty"`
	Laundry           string   `json:"laundry,omitempty"`
	WifiIncluded      bool     `json:"wifi_included,omitempty"`
	UtilitiesIncluded []string `json:"utilities_included,omitempty"`
	BusStopNearby     bool     `json:"bus_stop_nearby,omitempty"`
	Phone             string   `json:"phone,omitempty"`
	Website           string   `json:"website,omitempty"`
	Description       string   `json:"description,omitempty"`
}

// PriceField returns the raw price text for a bedroom count (0 = studio).
// Unknown counts yield "".
func (a Apartment) PriceField(bedrooms int) string {
	switch bedrooms {
	case 0:
		return a.StudioPrice
	case 1:
		return a.OneBedroomPrice
	case 2:
		return a.TwoBedroomPrice
	case 3:
		return a.ThreeBedroomPrice
	case 4:
		return a.FourBedroomPrice
	case 5:
		return a.FiveBedroomPrice
	default:
		return ""
	}
}

// RoommatePair is one scored pairing of two profiles.
type RoommatePair struct {
	Roommate1               Profile `json:"roommate1"`
	Roommate2               Profile `json:"roommate2"`
	CompatibilityScore      float64 `json:"compatibility_score"`
	CompatibilityPercentage float64 `json:"compatibility_percentage"`
}

// ApartmentMatch is one ranked listing for a profile, with the reasons that
// contributed to the score.
type ApartmentMatch struct {
	ApartmentName         string    `json:"apartment_name"`
	ApartmentAddress      string    `json:"apartment_address"`
	BedroomCount          int       `json:"bedroom_count"`
	Price                 string    `json:"price"`
	DistanceToVT          float64   `json:"distance_to_vt"`
	Amenities             []string  `json:"amenities"`
	MatchScore            float64   `json:"match_score"`
	MatchPercentage       float64   `json:"match_percentage"`
	Reasons               []string  `json:"reasons"`
	RoommateCompatibility float64   `json:"roommate_compatibility"`
	Apartment             Apartment `json:"apartment_features"`
}

// Restaurant is an auxiliary reference record used only to enrich reason
// strings. Absence of the dataset degrades to no enrichment.
type Restaurant struct {
	Name     string  `json:"name"`
	Category string  `json:"category,omitempty"`
	Address  string  `json:"address,omitempty"`
	Distance float64 `json:"distance_to_vt,omitempty"`
}

// Place is an auxiliary city amenity record (library, shopping, ...).
type Place struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Address  string  `json:"address,omitempty"`
	Distance float64 `json:"distance_to_vt,omitempty"`
}

// Summary counts the datasets behind a recommendation report.
type Summary struct {
	TotalRoommates   int `json:"total_roommates"`
	TotalApartments  int `json:"total_apartments"`
	TotalRestaurants int `json:"total_restaurants"`
	TotalAmenities   int `json:"total_amenities"`
}

/// Recommendations is the batch report: every compatible roommate pairing plus
// the top apartments for each profile, keyed by email.
type Recommendations struct {
	RoommateMatches  []RoommatePair              `json:"roommate_matches"`
	ApartmentMatches map[string][]ApartmentMatch `json:"apartment_matches"`
	Summary          Summary                     `json:"summary"`
}
