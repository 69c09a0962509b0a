package match

import (
	"sync"

	"github.com/courtside/courtside/internal/sport"
)

// MockStore is a mock implementation of the MatchStore interface for
// testing. It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	InsertMatchFunc           func(m *Match) error
	InsertParticipantsFunc    func(participants []Participant) error
	GetMatchFunc              func(matchID string) (*Match, error)
	GetAllMatchesFunc         func() ([]*Match, error)
	ParticipantsForPlayerFunc func(playerID string, s sport.Sport) ([]ParticipantHistory, error)

	// Call records
	InsertMatchCalls        []*Match
	InsertParticipantsCalls [][]Participant
	ClearMatchCalls         []string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InsertMatchCalls = nil
	m.InsertParticipantsCalls = nil
	m.ClearMatchCalls = nil
}

func (m *MockStore) InsertMatch(mt *Match) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InsertMatchCalls = append(m.InsertMatchCalls, mt)
	if m.InsertMatchFunc != nil {
		return m.InsertMatchFunc(mt)
	}
	return nil
}

func (m *MockStore) InsertParticipants(participants []Participant) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InsertParticipantsCalls = append(m.InsertParticipantsCalls, participants)
	if m.InsertParticipantsFunc != nil {
		return m.InsertParticipantsFunc(participants)
	}
	return nil
}

func (m *MockStore) GetMatch(matchID string) (*Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetMatchFunc != nil {
		return m.GetMatchFunc(matchID)
	}
	return nil, nil
}

func (m *MockStore) GetAllMatches() ([]*Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllMatchesFunc != nil {
		return m.GetAllMatchesFunc()
	}
	return []*Match{}, nil
}

func (m *MockStore) ParticipantsForPlayer(playerID string, s sport.Sport) ([]ParticipantHistory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ParticipantsForPlayerFunc != nil {
		return m.ParticipantsForPlayerFunc(playerID, s)
	}
	return []ParticipantHistory{}, nil
}

func (m *MockStore) ClearMatch(matchID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearMatchCalls = append(m.ClearMatchCalls, matchID)
}

func (m *MockStore) Clear() {}
