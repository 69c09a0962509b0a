package match

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/courtside/courtside/internal/elo"
	"github.com/courtside/courtside/internal/sport"
)

// New creates a new MatchStore.
func New(db *sql.DB) MatchStore {
	return &store{
		db: db,
	}
}

// InsertMatch persists one match record.
func (s *store) InsertMatch(m *Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	teamAJSON, err := json.Marshal(m.TeamAPlayerIDs)
	if err != nil {
		return fmt.Errorf("failed to marshal team A roster: %w", err)
	}
	teamBJSON, err := json.Marshal(m.TeamBPlayerIDs)
	if err != nil {
		return fmt.Errorf("failed to marshal team B roster: %w", err)
	}

	var score any
	if len(m.Score) > 0 {
		score = string(m.Score)
	}

	_, err = s.db.Exec(`
		INSERT INTO matches (id, sport, team_a_json, team_b_json, winner, score_json, court_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, m.ID, string(m.Sport), teamAJSON, teamBJSON, string(m.Winner), score, m.CourtID, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert match: %w", err)
	}
	return nil
}

// InsertParticipants writes one batch of participant records in a single
// transaction.
func (s *store) InsertParticipants(participants []Participant) error {
	if len(participants) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO match_participants (match_id, player_id, team, rating_before, rating_after, rating_change)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare participant insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range participants {
		if _, err := stmt.Exec(p.MatchID, p.PlayerID, string(p.Team), p.RatingBefore, p.RatingAfter, p.RatingChange); err != nil {
			return fmt.Errorf("failed to insert participant %s: %w", p.PlayerID, err)
		}
	}

	return tx.Commit()
}

// GetMatch returns one match by ID, or nil when it does not exist.
func (s *store) GetMatch(matchID string) (*Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT id, sport, team_a_json, team_b_json, winner, score_json, court_id, created_at
		FROM matches WHERE id = ?
	`, matchID)

	m, err := scanMatch(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return m, err
}

// GetAllMatches returns every settled match, newest first.
func (s *store) GetAllMatches() ([]*Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, sport, team_a_json, team_b_json, winner, score_json, court_id, created_at
		FROM matches ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := []*Match{}
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			log.Error("Failed to scan match row", "error", err)
			continue
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// ParticipantsForPlayer returns the player's participant history joined
// with match outcomes, newest first.
func (s *store) ParticipantsForPlayer(playerID string, sp sport.Sport) ([]ParticipantHistory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT mp.match_id, mp.player_id, mp.team, mp.rating_before, mp.rating_after, mp.rating_change,
		       m.winner, m.sport
		FROM match_participants mp
		JOIN matches m ON m.id = mp.match_id
		WHERE mp.player_id = ?
	`
	args := []any{playerID}
	if sp != "" {
		query += " AND m.sport = ?"
		args = append(args, string(sp))
	}
	query += " ORDER BY m.created_at DESC, mp.id DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := []ParticipantHistory{}
	for rows.Next() {
		var h ParticipantHistory
		var team, winner, sportName string
		if err := rows.Scan(&h.MatchID, &h.PlayerID, &team, &h.RatingBefore, &h.RatingAfter, &h.RatingChange, &winner, &sportName); err != nil {
			return nil, err
		}
		h.Team = TeamSide(team)
		h.Winner = elo.Result(winner)
		h.Sport = sport.Sport(sportName)
		history = append(history, h)
	}
	return history, rows.Err()
}

// ClearMatch removes one match and, via cascades, its participants.
func (s *store) ClearMatch(matchID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM matches WHERE id = ?`, matchID); err != nil {
		log.Error("Failed to clear match", "error", err, "matchID", matchID)
	}
}

// Clear removes every match and participant record.
func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM matches`); err != nil {
		log.Error("Failed to clear matches", "error", err)
	}
}

type rowScanner interface{ Scan(...any) error }

func scanMatch(scanner rowScanner) (*Match, error) {
	var m Match
	var sportName, winner string
	var teamAJSON, teamBJSON string
	var scoreJSON sql.NullString

	err := scanner.Scan(&m.ID, &sportName, &teamAJSON, &teamBJSON, &winner, &scoreJSON, &m.CourtID, &m.CreatedAt)
	if err != nil {
		return nil, err
	}

	m.Sport = sport.Sport(sportName)
	m.Winner = elo.Result(winner)
	if err := json.Unmarshal([]byte(teamAJSON), &m.TeamAPlayerIDs); err != nil {
		log.Error("Failed to unmarshal team_a_json", "error", err, "matchID", m.ID)
	}
	if err := json.Unmarshal([]byte(teamBJSON), &m.TeamBPlayerIDs); err != nil {
		log.Error("Failed to unmarshal team_b_json", "error", err, "matchID", m.ID)
	}
	if scoreJSON.Valid && scoreJSON.String != "" {
		m.Score = json.RawMessage(scoreJSON.String)
	}
	return &m, nil
}
