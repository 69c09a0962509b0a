package players

import (
	"database/sql"
	"sync"
)

// store handles all database operations for players and ratings.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// PlayerInfo represents a player profile in the store.
type PlayerInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LeaderboardEntry is one row of a per-sport rating leaderboard.
type LeaderboardEntry struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	Rating     int    `json:"rating"`
}
