package courts

import "sync"

// MockStore is a mock implementation of the CourtStore interface for
// testing. It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	AddCourtFunc     func(court Court) error
	GetCourtFunc     func(courtID string) (*Court, error)
	GetAllCourtsFunc func() ([]Court, error)
	ExistsFunc       func(courtID string) bool

	// Call records
	AddCourtCalls []Court
	ExistsCalls   []string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) AddCourt(court Court) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddCourtCalls = append(m.AddCourtCalls, court)
	if m.AddCourtFunc != nil {
		return m.AddCourtFunc(court)
	}
	return nil
}

func (m *MockStore) GetCourt(courtID string) (*Court, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetCourtFunc != nil {
		return m.GetCourtFunc(courtID)
	}
	return nil, nil
}

func (m *MockStore) GetAllCourts() ([]Court, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllCourtsFunc != nil {
		return m.GetAllCourtsFunc()
	}
	return []Court{}, nil
}

func (m *MockStore) Exists(courtID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ExistsCalls = append(m.ExistsCalls, courtID)
	if m.ExistsFunc != nil {
		return m.ExistsFunc(courtID)
	}
	return false
}
