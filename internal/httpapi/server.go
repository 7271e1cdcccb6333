package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/bedathon/roommate-matching/internal/domain"
	"github.com/bedathon/roommate-matching/internal/matching"
)

// Server is the thin HTTP layer over the matching core: it parses requests,
// calls the pure scoring functions, and serializes results. All state it
// holds is either immutable (engine, catalog) or behind the injected profile
// repository.
type Server struct {
	Engine     *matching.Engine
	Apartments []domain.Apartment
	Profiles   ProfileRepository
	Logger     *zap.Logger

	validate *validator.Validate
}

func NewServer(engine *matching.Engine, apartments []domain.Apartment, profiles ProfileRepository, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if profiles == nil {
		profiles = NewMemoryProfileRepo()
	}
	return &Server{
		Engine:     engine,
		Apartments: apartments,
		Profiles:   profiles,
		Logger:     logger,
		validate:   validator.New(),
	}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/profiles", s.handleProfiles)
	mux.HandleFunc("/profiles/", s.handleProfileByEmail)
	mux.HandleFunc("/match", s.handleMatch)
	mux.HandleFunc("/matches/roommates", s.handleRoommateMatches)
	mux.HandleFunc("/matches/apartments/", s.handleApartmentMatches)
	mux.HandleFunc("/recommendations", s.handleRecommendations)
	mux.HandleFunc("/summary", s.handleSummary)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ProfileRequest is the wire form of a profile. Preference levels arrive as
// labels (VERY_LOW..VERY_HIGH); absent or unrecognized labels resolve to
// MEDIUM. A single "budget" value stands in for budget_min with an implicit
// +200 ceiling.
type ProfileRequest struct {
	Name              string           `json:"name" validate:"required"`
	Email             string           `json:"email" validate:"required,email"`
	Budget            int              `json:"budget" validate:"omitempty,min=0"`
	BudgetMin         int              `json:"budget_min" validate:"omitempty,min=0"`
	BudgetMax         int              `json:"budget_max" validate:"omitempty,min=0"`
	PreferredBedrooms int              `json:"preferred_bedrooms" validate:"omitempty,min=1,max=5"`
	Cleanliness       string           `json:"cleanliness"`
	NoiseLevel        string           `json:"noise_level"`
	StudyTime         string           `json:"study_time"`
	SocialLevel       string           `json:"social_level"`
	SleepSchedule     string           `json:"sleep_schedule"`
	PetFriendly       bool             `json:"pet_friendly"`
	Smoking           bool             `json:"smoking"`
	GenderPreference  string           `json:"gender_preference"`
	AgeRange          *domain.AgeRange `json:"age_range"`
	MoveInDate        string           `json:"move_in_date"`
	LeaseLength       int              `json:"lease_length"`
}

func (req ProfileRequest) toProfile() domain.Profile {
	budgetMin := req.BudgetMin
	if budgetMin == 0 {
		budgetMin = req.Budget
	}
	return domain.Profile{
		Name:              req.Name,
		Email:             req.Email,
		BudgetMin:         budgetMin,
		BudgetMax:         req.BudgetMax,
		PreferredBedrooms: req.PreferredBedrooms,
		Cleanliness:       domain.ParsePreferenceLevel(req.Cleanliness),
		NoiseLevel:        domain.ParsePreferenceLevel(req.NoiseLevel),
		StudyTime:         domain.ParsePreferenceLevel(req.StudyTime),
		SocialLevel:       domain.ParsePreferenceLevel(req.SocialLevel),
		SleepSchedule:     domain.ParsePreferenceLevel(req.SleepSchedule),
		PetFriendly:       req.PetFriendly,
		Smoking:           req.Smoking,
		GenderPreference:  req.GenderPreference,
		AgeRange:          req.AgeRange,
		MoveInDate:        req.MoveInDate,
		LeaseLength:       req.LeaseLength,
	}.Normalize()
}

func (s *Server) handleProfiles(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		profiles, err := s.Profiles.List()
		if err != nil {
			s.Logger.Error("listing profiles", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "storage_error"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"profiles": profiles, "total": len(profiles)})

	case http.MethodPost:
		var req ProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		if err := s.validate.Struct(req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		profile, err := s.Profiles.Create(req.toProfile())
		if err != nil {
			s.Logger.Error("creating profile", zap.Error(err), zap.String("email", req.Email))
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "storage_error"})
			return
		}
		profilesCreatedTotal.Inc()
		writeJSON(w, http.StatusCreated, profile)

	case http.MethodDelete:
		if err := s.Profiles.Clear(); err != nil {
			s.Logger.Error("clearing profiles", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "storage_error"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleProfileByEmail(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimPrefix(r.URL.Path, "/profiles/")
	if email == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing_email"})
		return
	}

	switch r.Method {
	case http.MethodGet:
		profile, ok, err := s.Profiles.GetByEmail(email)
		if err != nil {
			s.Logger.Error("getting profile", zap.Error(err), zap.String("email", email))
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "storage_error"})
			return
		}
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found"})
			return
		}
		writeJSON(w, http.StatusOK, profile)

	case http.MethodDelete:
		deleted, err := s.Profiles.DeleteByEmail(email)
		if err != nil {
			s.Logger.Error("deleting profile", zap.Error(err), zap.String("email", email))
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "storage_error"})
			return
		}
		if !deleted {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

type MatchRequest struct {
	Profile ProfileRequest `json:"profile"`
	Limit   int            `json:"limit"`
}

type MatchResponse struct {
	Results []domain.ApartmentMatch `json:"results"`
}

// handleMatch ranks the catalog against an inline profile without storing it.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	limit := req.Limit
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}

	matchRequestsTotal.WithLabelValues("match").Inc()
	results := s.Engine.RankApartments(req.Profile.toProfile(), s.Apartments, limit)
	for _, m := range results {
		apartmentMatchScores.Observe(m.MatchScore)
	}
	writeJSON(w, http.StatusOK, MatchResponse{Results: results})
}

type RoommateMatchRequest struct {
	MinCompatibility float64 `json:"min_compatibility"`
}

type RoommateMatchResponse struct {
	Matches []domain.RoommatePair `json:"matches"`
	Total   int                   `json:"total"`
}

func (s *Server) handleRoommateMatches(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req RoommateMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	profiles, err := s.Profiles.List()
	if err != nil {
		s.Logger.Error("listing profiles", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "storage_error"})
		return
	}

	matchRequestsTotal.WithLabelValues("roommates").Inc()
	pairs := matching.FindRoommatePairs(profiles, req.MinCompatibility)
	for _, p := range pairs {
		compatibilityScores.Observe(p.CompatibilityScore)
	}
	writeJSON(w, http.StatusOK, RoommateMatchResponse{Matches: pairs, Total: len(pairs)})
}

func (s *Server) handleApartmentMatches(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	email := strings.TrimPrefix(r.URL.Path, "/matches/apartments/")
	if email == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing_email"})
		return
	}

	profile, ok, err := s.Profiles.GetByEmail(email)
	if err != nil {
		s.Logger.Error("getting profile", zap.Error(err), zap.String("email", email))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "storage_error"})
		return
	}
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found"})
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}

	matchRequestsTotal.WithLabelValues("apartments").Inc()
	results := s.Engine.RankApartments(profile, s.Apartments, limit)
	for _, m := range results {
		apartmentMatchScores.Observe(m.MatchScore)
	}
	writeJSON(w, http.StatusOK, MatchResponse{Results: results})
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	minCompatibility := 0.6
	if v := r.URL.Query().Get("min_compatibility"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			minCompatibility = parsed
		}
	}

	profiles, err := s.Profiles.List()
	if err != nil {
		s.Logger.Error("listing profiles", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "storage_error"})
		return
	}

	matchRequestsTotal.WithLabelValues("recommendations").Inc()
	writeJSON(w, http.StatusOK, s.Engine.GenerateRecommendations(profiles, s.Apartments, minCompatibility))
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	profiles, err := s.Profiles.List()
	if err != nil {
		s.Logger.Error("listing profiles", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "storage_error"})
		return
	}

	restaurants, places := s.Engine.DatasetCounts()
	writeJSON(w, http.StatusOK, domain.Summary{
		TotalRoommates:   len(profiles),
		TotalApartments:  len(s.Apartments),
		TotalRestaurants: restaurants,
		TotalAmenities:   places,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
