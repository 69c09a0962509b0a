package elo

// DefaultRating is the rating assigned to a player for a sport they have
// never played.
const DefaultRating = 1500

// Result is the declared outcome of a match.
type Result string

const (
	ResultTeamA Result = "team_a"
	ResultTeamB Result = "team_b"
	ResultDraw  Result = "draw"
)

// IsValid reports whether r is one of the three declared outcomes.
func (r Result) IsValid() bool {
	return r == ResultTeamA || r == ResultTeamB || r == ResultDraw
}

// Player is a roster member with its rating already resolved for the
// match's sport.
type Player struct {
	ID     string
	Rating int
}

// Team is a roster assembled for exactly one match. It is never persisted;
// it exists only for the duration of a calculation.
type Team struct {
	Players []Player
}

// PlayerUpdate is the computed rating change for one player.
type PlayerUpdate struct {
	PlayerID     string `json:"player_id"`
	RatingBefore int    `json:"rating_before"`
	RatingAfter  int    `json:"rating_after"`
	RatingChange int    `json:"rating_change"`
}

// Prediction is a result-independent forecast for a pairing.
type Prediction struct {
	TeamAWinProbability float64 `json:"team_a_win_probability"`
	TeamBWinProbability float64 `json:"team_b_win_probability"`
	RatingAdvantage     float64 `json:"rating_advantage"`
}
