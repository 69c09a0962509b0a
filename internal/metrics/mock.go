package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                       sync.Mutex
	matchesSettled           int
	settlementFailures       int
	previews                 int
	ratingWriteFailures      int
	participantWriteFailures int
	settlementDurations      []float64
	slackNotifSent           int
	slackNotifFailed         int
	startupTime              float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		settlementDurations: make([]float64, 0),
	}
}

func (m *Mock) IncMatchesSettled() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesSettled++
}

func (m *Mock) IncSettlementFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settlementFailures++
}

func (m *Mock) IncPreviews() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.previews++
}

func (m *Mock) IncRatingWriteFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ratingWriteFailures++
}

func (m *Mock) IncParticipantWriteFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.participantWriteFailures++
}

func (m *Mock) ObserveSettlementDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settlementDurations = append(m.settlementDurations, duration)
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// MatchesSettled returns the number of times IncMatchesSettled was called.
func (m *Mock) MatchesSettled() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesSettled
}

// SettlementFailures returns the number of times IncSettlementFailures was called.
func (m *Mock) SettlementFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settlementFailures
}

// Previews returns the number of times IncPreviews was called.
func (m *Mock) Previews() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.previews
}

// RatingWriteFailures returns the number of times IncRatingWriteFailures was called.
func (m *Mock) RatingWriteFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ratingWriteFailures
}

// ParticipantWriteFailures returns the number of times IncParticipantWriteFailures was called.
func (m *Mock) ParticipantWriteFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.participantWriteFailures
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}
