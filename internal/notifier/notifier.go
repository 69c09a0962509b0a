package notifier

import (
	"github.com/courtside/courtside/internal/elo"
	"github.com/courtside/courtside/internal/match"
	"github.com/courtside/courtside/internal/players"
	"github.com/courtside/courtside/internal/settlement"
	"github.com/courtside/courtside/internal/sport"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For settled matches. names maps player IDs to display names; IDs
	// missing from the map are rendered as-is.
	SendResultNotification(m *match.Match, updates []elo.PlayerUpdate, names map[string]string, dryRun bool) error
	// For slash commands
	SendLeaderboard(s sport.Sport, entries []players.LeaderboardEntry, dryRun bool) error
	SendPlayerStats(stats *settlement.PlayerMatchStats, name string, dryRun bool) error
	SendPlayerNotFound(query string, dryRun bool) error

	// For formatting responses for slash commands
	FormatLeaderboardResponse(s sport.Sport, entries []players.LeaderboardEntry) (any, error)
	FormatPlayerStatsResponse(stats *settlement.PlayerMatchStats, name string) (any, error)
	FormatPlayerNotFoundResponse(query string) (any, error)
}
