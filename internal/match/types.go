package match

import (
	"database/sql"
	"encoding/json"
	"sync"

	"github.com/courtside/courtside/internal/elo"
	"github.com/courtside/courtside/internal/sport"
)

// store handles all database operations for matches and participants.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// TeamSide identifies which roster a participant played on.
type TeamSide string

const (
	SideTeamA TeamSide = "team_a"
	SideTeamB TeamSide = "team_b"
)

// Match is a settled match record. It is immutable once created.
type Match struct {
	ID             string          `json:"id"`
	Sport          sport.Sport     `json:"sport"`
	TeamAPlayerIDs []string        `json:"team_a_player_ids"`
	TeamBPlayerIDs []string        `json:"team_b_player_ids"`
	Winner         elo.Result      `json:"winner"`
	Score          json.RawMessage `json:"score,omitempty"`
	CourtID        *string         `json:"court_id,omitempty"`
	CreatedAt      int64           `json:"created_at"`
}

// Participant is the historical ledger entry linking one player to one
// match with before/after ratings. Never mutated after creation.
type Participant struct {
	MatchID      string   `json:"match_id"`
	PlayerID     string   `json:"player_id"`
	Team         TeamSide `json:"team"`
	RatingBefore int      `json:"rating_before"`
	RatingAfter  int      `json:"rating_after"`
	RatingChange int      `json:"rating_change"`
}

// ParticipantHistory is a participant record joined with the outcome of
// its match, as needed for win/loss roll-ups.
type ParticipantHistory struct {
	Participant
	Winner elo.Result  `json:"winner"`
	Sport  sport.Sport `json:"sport"`
}
