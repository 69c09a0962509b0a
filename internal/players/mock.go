package players

import (
	"sync"

	"github.com/courtside/courtside/internal/elo"
	"github.com/courtside/courtside/internal/sport"
)

// MockStore is a mock implementation of the PlayerStore interface for
// testing. It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	AddPlayerFunc     func(playerID, name string)
	UpsertPlayersFunc func(players []PlayerInfo) error
	GetAllPlayersFunc func() ([]PlayerInfo, error)
	GetPlayersFunc    func(playerIDs []string) ([]PlayerInfo, error)
	IsKnownPlayerFunc func(playerID string) bool
	GetRatingsFunc    func(playerIDs []string, s sport.Sport) (map[string]int, error)
	GetRatingFunc     func(playerID string, s sport.Sport) (int, error)
	SetRatingFunc     func(playerID string, s sport.Sport, rating int) error
	LeaderboardFunc   func(s sport.Sport) ([]LeaderboardEntry, error)

	// Call records
	AddPlayerCalls     []PlayerInfo
	UpsertPlayersCalls [][]PlayerInfo
	GetRatingsCalls    [][]string
	SetRatingCalls     []SetRatingCall
	LeaderboardCalls   []sport.Sport
}

// SetRatingCall holds the arguments of one SetRating call.
type SetRatingCall struct {
	PlayerID string
	Sport    sport.Sport
	Rating   int
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddPlayerCalls = nil
	m.UpsertPlayersCalls = nil
	m.GetRatingsCalls = nil
	m.SetRatingCalls = nil
	m.LeaderboardCalls = nil
}

func (m *MockStore) AddPlayer(playerID, name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddPlayerCalls = append(m.AddPlayerCalls, PlayerInfo{ID: playerID, Name: name})
	if m.AddPlayerFunc != nil {
		m.AddPlayerFunc(playerID, name)
	}
}

func (m *MockStore) UpsertPlayers(playerInfos []PlayerInfo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertPlayersCalls = append(m.UpsertPlayersCalls, playerInfos)
	if m.UpsertPlayersFunc != nil {
		return m.UpsertPlayersFunc(playerInfos)
	}
	return nil
}

func (m *MockStore) GetAllPlayers() ([]PlayerInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllPlayersFunc != nil {
		return m.GetAllPlayersFunc()
	}
	return []PlayerInfo{}, nil
}

func (m *MockStore) GetPlayers(playerIDs []string) ([]PlayerInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetPlayersFunc != nil {
		return m.GetPlayersFunc(playerIDs)
	}
	return []PlayerInfo{}, nil
}

func (m *MockStore) IsKnownPlayer(playerID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.IsKnownPlayerFunc != nil {
		return m.IsKnownPlayerFunc(playerID)
	}
	return false
}

func (m *MockStore) GetRatings(playerIDs []string, s sport.Sport) (map[string]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetRatingsCalls = append(m.GetRatingsCalls, playerIDs)
	if m.GetRatingsFunc != nil {
		return m.GetRatingsFunc(playerIDs, s)
	}
	ratings := make(map[string]int, len(playerIDs))
	for _, id := range playerIDs {
		ratings[id] = elo.DefaultRating
	}
	return ratings, nil
}

func (m *MockStore) GetRating(playerID string, s sport.Sport) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetRatingFunc != nil {
		return m.GetRatingFunc(playerID, s)
	}
	return elo.DefaultRating, nil
}

func (m *MockStore) SetRating(playerID string, s sport.Sport, rating int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetRatingCalls = append(m.SetRatingCalls, SetRatingCall{PlayerID: playerID, Sport: s, Rating: rating})
	if m.SetRatingFunc != nil {
		return m.SetRatingFunc(playerID, s, rating)
	}
	return nil
}

func (m *MockStore) Leaderboard(s sport.Sport) ([]LeaderboardEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LeaderboardCalls = append(m.LeaderboardCalls, s)
	if m.LeaderboardFunc != nil {
		return m.LeaderboardFunc(s)
	}
	return []LeaderboardEntry{}, nil
}

func (m *MockStore) Clear() {}
