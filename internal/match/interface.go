package match

import "github.com/courtside/courtside/internal/sport"

// MatchStore defines the interface for persisting matches and their
// participant records.
type MatchStore interface {
	InsertMatch(m *Match) error
	InsertParticipants(participants []Participant) error
	GetMatch(matchID string) (*Match, error)
	GetAllMatches() ([]*Match, error)

	// ParticipantsForPlayer returns the player's full participant history,
	// newest first. An empty sport returns history across all sports.
	ParticipantsForPlayer(playerID string, s sport.Sport) ([]ParticipantHistory, error)

	ClearMatch(matchID string)
	Clear()
}
