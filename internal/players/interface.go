package players

import "github.com/courtside/courtside/internal/sport"

// PlayerStore defines the interface for interacting with player profiles
// and their per-sport ratings.
type PlayerStore interface {
	AddPlayer(playerID, name string)
	UpsertPlayers(players []PlayerInfo) error
	GetAllPlayers() ([]PlayerInfo, error)
	GetPlayers(playerIDs []string) ([]PlayerInfo, error)
	IsKnownPlayer(playerID string) bool

	// GetRatings resolves the current rating of each requested player for
	// one sport. Players without a rating row for the sport get the 1500
	// default. Unknown player IDs are simply absent from the result, so
	// callers can tell exactly which identifiers did not resolve.
	GetRatings(playerIDs []string, s sport.Sport) (map[string]int, error)
	GetRating(playerID string, s sport.Sport) (int, error)
	SetRating(playerID string, s sport.Sport, rating int) error

	Leaderboard(s sport.Sport) ([]LeaderboardEntry, error)
	Clear()
}
