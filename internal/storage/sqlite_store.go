package storage

import (
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/bedathon/roommate-matching/internal/domain"
)

// SQLiteStore persists roommate profiles and caches the imported apartment
// catalog. Profiles have an explicit create/read/delete/clear lifecycle;
// the apartment rows are a seed-once catalog.
type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys=ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) EnsureSchema() error {
	const createProfiles = `
CREATE TABLE IF NOT EXISTS profiles (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  budget_min INTEGER NOT NULL,
  budget_max INTEGER NOT NULL,
  preferred_bedrooms INTEGER NOT NULL,
  cleanliness INTEGER NOT NULL,
  noise_level INTEGER NOT NULL,
  study_time INTEGER NOT NULL,
  social_level INTEGER NOT NULL,
  sleep_schedule INTEGER NOT NULL,
  pet_friendly INTEGER NOT NULL DEFAULT 0,
  smoking INTEGER NOT NULL DEFAULT 0,
  gender_preference TEXT NOT NULL DEFAULT '',
  age_min INTEGER NOT NULL DEFAULT 0,
  age_max INTEGER NOT NULL DEFAULT 0,
  move_in_date TEXT NOT NULL DEFAULT '',
  lease_length INTEGER NOT NULL DEFAULT 0
);
`
	if _, err := s.db.Exec(createProfiles); err != nil {
		return err
	}
	if _, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_profiles_email ON profiles(email);`); err != nil {
		return err
	}

	const createApartments = `
CREATE TABLE IF NOT EXISTS apartments (
  name TEXT PRIMARY KEY,
  address TEXT NOT NULL DEFAULT '',
  studio_price TEXT NOT NULL DEFAULT '',
  one_bedroom_price TEXT NOT NULL DEFAULT '',
  two_bedroom_price TEXT NOT NULL DEFAULT '',
  three_bedroom_price TEXT NOT NULL DEFAULT '',
  four_bedroom_price TEXT NOT NULL DEFAULT '',
  five_bedroom_price TEXT NOT NULL DEFAULT '',
  distance_to_vt REAL NOT NULL DEFAULT 0,
  amenities_json TEXT NOT NULL DEFAULT '[]',
  pet_friendly INTEGER NOT NULL DEFAULT 0,
  parking TEXT NOT NULL DEFAULT '',
  pool INTEGER NOT NULL DEFAULT 0,
  gym INTEGER NOT NULL DEFAULT 0,
  laundry TEXT NOT NULL DEFAULT '',
  wifi_included INTEGER NOT NULL DEFAULT 0,
  utilities_json TEXT NOT NULL DEFAULT '[]',
  bus_stop_nearby INTEGER NOT NULL DEFAULT 0,
  phone TEXT NOT NULL DEFAULT '',
  website TEXT NOT NULL DEFAULT '',
  description TEXT NOT NULL DEFAULT ''
);
`
	if _, err := s.db.Exec(createApartments); err != nil {
		return err
	}

	return nil
}

// ---- profiles ----

func (s *SQLiteStore) CreateProfile(p domain.Profile) (domain.Profile, error) {
	p = p.Normalize()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	var ageMin, ageMax int
	if p.AgeRange != nil {
		ageMin, ageMax = p.AgeRange.Min, p.AgeRange.Max
	}

	_, err := s.db.Exec(`
INSERT INTO profiles
(id, name, email, budget_min, budget_max, preferred_bedrooms,
 cleanliness, noise_level, study_time, social_level, sleep_schedule,
 pet_friendly, smoking, gender_preference, age_min, age_max, move_in_date, lease_length)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`,
		p.ID, p.Name, p.Email, p.BudgetMin, p.BudgetMax, p.PreferredBedrooms,
		p.Cleanliness.Value(), p.NoiseLevel.Value(), p.StudyTime.Value(),
		p.SocialLevel.Value(), p.SleepSchedule.Value(),
		boolToInt(p.PetFriendly), boolToInt(p.Smoking),
		p.GenderPreference, ageMin, ageMax, p.MoveInDate, p.LeaseLength,
	)
	return p, err
}

func (s *SQLiteStore) GetProfileByEmail(email string) (domain.Profile, bool, error) {
	row := s.db.QueryRow(profileSelect+` WHERE email = ?`, email)
	p, err := scanProfile(row)
	if err == sql.ErrNoRows {
		return domain.Profile{}, false, nil
	}
	if err != nil {
		return domain.Profile{}, false, err
	}
	return p, true, nil
}

func (s *SQLiteStore) ListProfiles() ([]domain.Profile, error) {
	rows, err := s.db.Query(profileSelect + ` ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) DeleteProfileByEmail(email string) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM profiles WHERE email = ?`, email)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

func (s *SQLiteStore) ClearProfiles() error {
	_, err := s.db.Exec(`DELETE FROM profiles`)
	return err
}

func (s *SQLiteStore) CountProfiles() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM profiles`).Scan(&n)
	return n, err
}

const profileSelect = `
SELECT id, name, email, budget_min, budget_max, preferred_bedrooms,
       cleanliness, noise_level, study_time, social_level, sleep_schedule,
       pet_friendly, smoking, gender_preference, age_min, age_max, move_in_date, lease_length
FROM profiles`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (domain.Profile, error) {
	var p domain.Profile
	var cleanliness, noise, study, social, sleep int
	var petFriendly, smoking int
	var ageMin, ageMax int

	err := row.Scan(
		&p.ID, &p.Name, &p.Email, &p.BudgetMin, &p.BudgetMax, &p.PreferredBedrooms,
		&cleanliness, &noise, &study, &social, &sleep,
		&petFriendly, &smoking, &p.GenderPreference, &ageMin, &ageMax, &p.MoveInDate, &p.LeaseLength,
	)
	if err != nil {
		return domain.Profile{}, err
	}

	p.Cleanliness = domain.PreferenceLevelFromInt(cleanliness)
	p.NoiseLevel = domain.PreferenceLevelFromInt(noise)
	p.StudyTime = domain.PreferenceLevelFromInt(study)
	p.SocialLevel = domain.PreferenceLevelFromInt(social)
	p.SleepSchedule = domain.PreferenceLevelFromInt(sleep)
	p.PetFriendly = petFriendly != 0
	p.Smoking = smoking != 0
	if ageMin != 0 || ageMax != 0 {
		p.AgeRange = &domain.AgeRange{Min: ageMin, Max: ageMax}
	}
	return p, nil
}

// ---- apartments ----

// UpsertApartments seeds the catalog without duplicating by name.
func (s *SQLiteStore) UpsertApartments(items []domain.Apartment) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
INSERT OR IGNORE INTO apartments
(name, address, studio_price, one_bedroom_price, two_bedroom_price, three_bedroom_price,
 four_bedroom_price, five_bedroom_price, distance_to_vt, amenities_json, pet_friendly,
 parking, pool, gym, laundry, wifi_included, utilities_json, bus_stop_nearby,
 phone, website, description)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, a := range items {
		am, _ := json.Marshal(a.Amenities)
		ut, _ := json.Marshal(a.UtilitiesIncluded)

		if _, err := stmt.Exec(
			a.Name, a.Address, a.StudioPrice, a.OneBedroomPrice, a.TwoBedroomPrice,
			a.ThreeBedroomPrice, a.FourBedroomPrice, a.FiveBedroomPrice,
			a.DistanceToVT, string(am), boolToInt(a.PetFriendly),
			a.Parking, boolToInt(a.Pool), boolToInt(a.Gym), a.Laundry,
			boolToInt(a.WifiIncluded), string(ut), boolToInt(a.BusStopNearby),
			a.Phone, a.Website, a.Description,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) ListApartments() ([]domain.Apartment, error) {
	rows, err := s.db.Query(`
SELECT name, address, studio_price, one_bedroom_price, two_bedroom_price, three_bedroom_price,
       four_bedroom_price, five_bedroom_price, distance_to_vt, amenities_json, pet_friendly,
       parking, pool, gym, laundry, wifi_included, utilities_json, bus_stop_nearby,
       phone, website, description
FROM apartments
ORDER BY rowid
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Apartment
	for rows.Next() {
		var a domain.Apartment
		var amJSON, utJSON string
		var petFriendly, pool, gym, wifi, busStop int

		if err := rows.Scan(
			&a.Name, &a.Address, &a.StudioPrice, &a.OneBedroomPrice, &a.TwoBedroomPrice,
			&a.ThreeBedroomPrice, &a.FourBedroomPrice, &a.FiveBedroomPrice,
			&a.DistanceToVT, &amJSON, &petFriendly,
			&a.Parking, &pool, &gym, &a.Laundry, &wifi, &utJSON, &busStop,
			&a.Phone, &a.Website, &a.Description,
		); err != nil {
			return nil, err
		}
		_ = json.Unmarshal([]byte(amJSON), &a.Amenities)
		_ = json.Unmarshal([]byte(utJSON), &a.UtilitiesIncluded)
		a.PetFriendly = petFriendly != 0
		a.Pool = pool != 0
		a.Gym = gym != 0
		a.WifiIncluded = wifi != 0
		a.BusStopNearby = busStop != 0
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) CountApartments() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM apartments`).Scan(&n)
	return n, err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
