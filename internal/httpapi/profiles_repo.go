package httpapi

import (
	"sync"

	"github.com/google/uuid"

	"github.com/bedathon/roommate-matching/internal/domain"
	"github.com/bedathon/roommate-matching/internal/storage"
)

// ProfileRepository is the injected store for roommate profiles. The former
// design kept an ad-hoc profile list attached to the routing layer; handlers
// now only ever see this interface.
type ProfileRepository interface {
	Create(p domain.Profile) (domain.Profile, error)
	GetByEmail(email string) (domain.Profile, bool, error)
	List() ([]domain.Profile, error)
	DeleteByEmail(email string) (bool, error)
	Clear() error
}

// SQLiteProfilesRepo adapts the SQLite store to the repository interface.
// A nil receiver or store behaves as an empty repository.
type SQLiteProfilesRepo struct {
	Store *storage.SQLiteStore
}

func (r *SQLiteProfilesRepo) Create(p domain.Profile) (domain.Profile, error) {
	if r == nil || r.Store == nil {
		return p, nil
	}
	return r.Store.CreateProfile(p)
}

func (r *SQLiteProfilesRepo) GetByEmail(email string) (domain.Profile, bool, error) {
	if r == nil || r.Store == nil {
		return domain.Profile{}, false, nil
	}
	return r.Store.GetProfileByEmail(email)
}

func (r *SQLiteProfilesRepo) List() ([]domain.Profile, error) {
	if r == nil || r.Store == nil {
		return nil, nil
	}
	return r.Store.ListProfiles()
}

func (r *SQLiteProfilesRepo) DeleteByEmail(email string) (bool, error) {
	if r == nil || r.Store == nil {
		return false, nil
	}
	return r.Store.DeleteProfileByEmail(email)
}

func (r *SQLiteProfilesRepo) Clear() error {
	if r == nil || r.Store == nil {
		return nil
	}
	return r.Store.ClearProfiles()
}

// MemoryProfileRepo keeps profiles in memory, preserving insertion order.
// Used when no database is configured and by the tests.
type MemoryProfileRepo struct {
	mu       sync.RWMutex
	profiles []domain.Profile
}

func NewMemoryProfileRepo() *MemoryProfileRepo {
	return &MemoryProfileRepo{}
}

func (r *MemoryProfileRepo) Create(p domain.Profile) (domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p = p.Normalize()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	// Replace on duplicate email so repeated submits update the profile.
	for i, existing := range r.profiles {
		if existing.Email == p.Email {
			r.profiles[i] = p
			return p, nil
		}
	}
	r.profiles = append(r.profiles, p)
	return p, nil
}

func (r *MemoryProfileRepo) GetByEmail(email string) (domain.Profile, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.profiles {
		if p.Email == email {
			return p, true, nil
		}
	}
	return domain.Profile{}, false, nil
}

func (r *MemoryProfileRepo) List() ([]domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Profile, len(r.profiles))
	copy(out, r.profiles)
	return out, nil
}

func (r *MemoryProfileRepo) DeleteByEmail(email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.profiles {
		if p.Email == email {
			r.profiles = append(r.profiles[:i], r.profiles[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryProfileRepo) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles = nil
	return nil
}
