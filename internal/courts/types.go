package courts

import (
	"database/sql"
	"sync"

	"github.com/courtside/courtside/internal/sport"
)

// store handles database operations for courts.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Court is a community-submitted playing location. Map rendering and the
// moderation queue live elsewhere; matches only reference courts by ID.
type Court struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Sport     sport.Sport `json:"sport"`
	Latitude  float64     `json:"latitude"`
	Longitude float64     `json:"longitude"`
	CreatedAt int64       `json:"created_at"`
}
