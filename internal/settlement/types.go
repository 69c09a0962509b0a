package settlement

import (
	"encoding/json"

	"github.com/courtside/courtside/internal/courts"
	"github.com/courtside/courtside/internal/elo"
	"github.com/courtside/courtside/internal/match"
	"github.com/courtside/courtside/internal/metrics"
	"github.com/courtside/courtside/internal/players"
	"github.com/courtside/courtside/internal/pubsub"
	"github.com/courtside/courtside/internal/sport"
)

// Service settles matches: it resolves rosters, runs the Elo calculation,
// persists the outcome and exposes the read-only preview and stats paths.
type Service struct {
	players players.PlayerStore
	matches match.MatchStore
	courts  courts.CourtStore
	metrics metrics.Metrics
	pubsub  pubsub.PubSubClient
}

// CreateMatchRequest is the input to CreateMatch.
type CreateMatchRequest struct {
	Sport          sport.Sport     `json:"sport"`
	TeamAPlayerIDs []string        `json:"team_a_player_ids"`
	TeamBPlayerIDs []string        `json:"team_b_player_ids"`
	Result         elo.Result      `json:"result"`
	Score          json.RawMessage `json:"score,omitempty"`
	CourtID        *string         `json:"court_id,omitempty"`
}

// PreviewRequest is the input to Preview. It carries no score or court
// because nothing is persisted.
type PreviewRequest struct {
	Sport          sport.Sport `json:"sport"`
	TeamAPlayerIDs []string    `json:"team_a_player_ids"`
	TeamBPlayerIDs []string    `json:"team_b_player_ids"`
	Result         elo.Result  `json:"result"`
}

// Settlement is the outcome of a committed match.
type Settlement struct {
	Match      *match.Match       `json:"match"`
	EloUpdates []elo.PlayerUpdate `json:"elo_updates"`
	// Warnings lists non-fatal persistence failures (rating or participant
	// writes) that occurred after the match record was committed.
	Warnings []string `json:"warnings,omitempty"`
}

// Preview is a dry-run settlement: what would happen, with nothing written.
type Preview struct {
	EloUpdates []elo.PlayerUpdate `json:"elo_updates"`
	Prediction elo.Prediction     `json:"prediction"`
}

// PlayerMatchStats is the roll-up of a player's participant history.
type PlayerMatchStats struct {
	PlayerID         string  `json:"player_id"`
	TotalMatches     int     `json:"total_matches"`
	Wins             int     `json:"wins"`
	Losses           int     `json:"losses"`
	Draws            int     `json:"draws"`
	WinRate          float64 `json:"win_rate"`
	AverageEloChange float64 `json:"average_elo_change"`
	CurrentElo       int     `json:"current_elo"`
}

// ResultSettledEvent is the pubsub payload published after a settlement.
// The push-subscription handler consumes it to send the result
// notification.
type ResultSettledEvent struct {
	Match      *match.Match       `json:"match"`
	EloUpdates []elo.PlayerUpdate `json:"elo_updates"`
}
