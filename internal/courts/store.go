package courts

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/courtside/courtside/internal/sport"
)

// New creates a new CourtStore.
func New(db *sql.DB) CourtStore {
	return &store{
		db: db,
	}
}

// AddCourt inserts a new court.
func (s *store) AddCourt(court Court) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO courts (id, name, sport, latitude, longitude, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, court.ID, court.Name, string(court.Sport), court.Latitude, court.Longitude, court.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert court: %w", err)
	}
	return nil
}

// GetCourt returns one court by ID, or nil when it does not exist.
func (s *store) GetCourt(courtID string) (*Court, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var c Court
	var sportName string
	err := s.db.QueryRow(`
		SELECT id, name, sport, latitude, longitude, created_at FROM courts WHERE id = ?
	`, courtID).Scan(&c.ID, &c.Name, &sportName, &c.Latitude, &c.Longitude, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c.Sport = sport.Sport(sportName)
	return &c, nil
}

// GetAllCourts returns every court.
func (s *store) GetAllCourts() ([]Court, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`SELECT id, name, sport, latitude, longitude, created_at FROM courts ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Court{}
	for rows.Next() {
		var c Court
		var sportName string
		if err := rows.Scan(&c.ID, &c.Name, &sportName, &c.Latitude, &c.Longitude, &c.CreatedAt); err != nil {
			return nil, err
		}
		c.Sport = sport.Sport(sportName)
		out = append(out, c)
	}
	return out, rows.Err()
}

// Exists reports whether the court is in the registry.
func (s *store) Exists(courtID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var exists bool
	err := s.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM courts WHERE id = ?)`, courtID).Scan(&exists)
	if err != nil {
		log.Error("Failed to check court existence", "error", err, "courtID", courtID)
		return false
	}
	return exists
}
