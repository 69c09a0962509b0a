package notifier

import (
	"sync"

	"github.com/courtside/courtside/internal/elo"
	"github.com/courtside/courtside/internal/match"
	"github.com/courtside/courtside/internal/players"
	"github.com/courtside/courtside/internal/settlement"
	"github.com/courtside/courtside/internal/sport"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Call records
	SendResultNotificationCalls []ResultNotificationCall
	SendLeaderboardCalls        []LeaderboardCall
	SendPlayerStatsCalls        []PlayerStatsCall
	SendPlayerNotFoundCalls     []string

	// Spies for send functions
	SendResultNotificationFunc func(m *match.Match, updates []elo.PlayerUpdate, names map[string]string, dryRun bool) error
	SendLeaderboardFunc        func(s sport.Sport, entries []players.LeaderboardEntry, dryRun bool) error

	// Spies for format functions
	FormatLeaderboardResponseFunc    func(s sport.Sport, entries []players.LeaderboardEntry) (any, error)
	FormatPlayerStatsResponseFunc    func(stats *settlement.PlayerMatchStats, name string) (any, error)
	FormatPlayerNotFoundResponseFunc func(query string) (any, error)
}

// ResultNotificationCall holds the arguments of one SendResultNotification call.
type ResultNotificationCall struct {
	Match   *match.Match
	Updates []elo.PlayerUpdate
	DryRun  bool
}

// LeaderboardCall holds the arguments of one SendLeaderboard call.
type LeaderboardCall struct {
	Sport   sport.Sport
	Entries []players.LeaderboardEntry
	DryRun  bool
}

// PlayerStatsCall holds the arguments of one SendPlayerStats call.
type PlayerStatsCall struct {
	Stats  *settlement.PlayerMatchStats
	Name   string
	DryRun bool
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendResultNotificationCalls = nil
	m.SendLeaderboardCalls = nil
	m.SendPlayerStatsCalls = nil
	m.SendPlayerNotFoundCalls = nil
}

func (m *Mock) SendResultNotification(mt *match.Match, updates []elo.PlayerUpdate, names map[string]string, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendResultNotificationCalls = append(m.SendResultNotificationCalls, ResultNotificationCall{Match: mt, Updates: updates, DryRun: dryRun})
	if m.SendResultNotificationFunc != nil {
		return m.SendResultNotificationFunc(mt, updates, names, dryRun)
	}
	return nil
}

func (m *Mock) SendLeaderboard(s sport.Sport, entries []players.LeaderboardEntry, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendLeaderboardCalls = append(m.SendLeaderboardCalls, LeaderboardCall{Sport: s, Entries: entries, DryRun: dryRun})
	if m.SendLeaderboardFunc != nil {
		return m.SendLeaderboardFunc(s, entries, dryRun)
	}
	return nil
}

func (m *Mock) SendPlayerStats(stats *settlement.PlayerMatchStats, name string, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendPlayerStatsCalls = append(m.SendPlayerStatsCalls, PlayerStatsCall{Stats: stats, Name: name, DryRun: dryRun})
	return nil
}

func (m *Mock) SendPlayerNotFound(query string, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendPlayerNotFoundCalls = append(m.SendPlayerNotFoundCalls, query)
	return nil
}

func (m *Mock) FormatLeaderboardResponse(s sport.Sport, entries []players.LeaderboardEntry) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatLeaderboardResponseFunc != nil {
		return m.FormatLeaderboardResponseFunc(s, entries)
	}
	return "formatted_leaderboard", nil
}

func (m *Mock) FormatPlayerStatsResponse(stats *settlement.PlayerMatchStats, name string) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatPlayerStatsResponseFunc != nil {
		return m.FormatPlayerStatsResponseFunc(stats, name)
	}
	return "formatted_player_stats", nil
}

func (m *Mock) FormatPlayerNotFoundResponse(query string) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatPlayerNotFoundResponseFunc != nil {
		return m.FormatPlayerNotFoundResponseFunc(query)
	}
	return "formatted_player_not_found", nil
}
