package players

import (
	"fmt"
	"strings"

	"database/sql"

	"github.com/charmbracelet/log"
	"github.com/courtside/courtside/internal/elo"
	"github.com/courtside/courtside/internal/sport"
)

// New creates a new PlayerStore.
func New(db *sql.DB) PlayerStore {
	return &store{
		db: db,
	}
}

// AddPlayer inserts a player, ignoring duplicates.
func (s *store) AddPlayer(playerID, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`INSERT OR IGNORE INTO players (id, name) VALUES (?, ?)`, playerID, name)
	if err != nil {
		log.Error("Failed to add player", "error", err, "playerID", playerID)
	}
}

// UpsertPlayers inserts or updates a batch of player profiles.
func (s *store) UpsertPlayers(playerInfos []PlayerInfo) error {
	if len(playerInfos) == 0 {
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
		INSERT INTO players (id, name) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name;
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare upsert statement: %w", err)
	}
	defer stmt.Close()

	for _, p := range playerInfos {
		if _, err := stmt.Exec(p.ID, p.Name); err != nil {
			return fmt.Errorf("failed to upsert player %s: %w", p.ID, err)
		}
	}

	return tx.Commit()
}

// GetAllPlayers returns every player profile.
func (s *store) GetAllPlayers() ([]PlayerInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`SELECT id, name FROM players ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := []PlayerInfo{}
	for rows.Next() {
		var p PlayerInfo
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// GetPlayers returns the profiles for the given IDs. IDs that do not exist
// are absent from the result.
func (s *store) GetPlayers(playerIDs []string) ([]PlayerInfo, error) {
	if len(playerIDs) == 0 {
		return []PlayerInfo{}, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	query := fmt.Sprintf(`SELECT id, name FROM players WHERE id IN (%s)`, placeholders(len(playerIDs)))
	rows, err := s.db.Query(query, toAnySlice(playerIDs)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := []PlayerInfo{}
	for rows.Next() {
		var p PlayerInfo
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// IsKnownPlayer reports whether the player exists in the store.
func (s *store) IsKnownPlayer(playerID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var exists bool
	err := s.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM players WHERE id = ?)`, playerID).Scan(&exists)
	if err != nil {
		log.Error("Failed to check player existence", "error", err, "playerID", playerID)
		return false
	}
	return exists
}

// GetRatings resolves the current per-sport rating for each requested
// player. Known players without a rating row get elo.DefaultRating;
// unknown IDs are left out of the map entirely.
func (s *store) GetRatings(playerIDs []string, sp sport.Sport) (map[string]int, error) {
	if len(playerIDs) == 0 {
		return map[string]int{}, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	query := fmt.Sprintf(`
		SELECT p.id, COALESCE(r.rating, ?)
		FROM players p
		LEFT JOIN player_ratings r ON r.player_id = p.id AND r.sport = ?
		WHERE p.id IN (%s)
	`, placeholders(len(playerIDs)))

	args := []any{elo.DefaultRating, string(sp)}
	args = append(args, toAnySlice(playerIDs)...)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ratings := make(map[string]int, len(playerIDs))
	for rows.Next() {
		var id string
		var rating int
		if err := rows.Scan(&id, &rating); err != nil {
			return nil, err
		}
		ratings[id] = rating
	}
	return ratings, rows.Err()
}

// GetRating resolves one player's rating for one sport, defaulting to 1500.
func (s *store) GetRating(playerID string, sp sport.Sport) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rating int
	err := s.db.QueryRow(
		`SELECT rating FROM player_ratings WHERE player_id = ? AND sport = ?`,
		playerID, string(sp),
	).Scan(&rating)
	if err == sql.ErrNoRows {
		return elo.DefaultRating, nil
	}
	if err != nil {
		return 0, err
	}
	return rating, nil
}

// SetRating overwrites a player's rating for one sport.
func (s *store) SetRating(playerID string, sp sport.Sport, rating int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO player_ratings (player_id, sport, rating) VALUES (?, ?, ?)
		ON CONFLICT(player_id, sport) DO UPDATE SET rating = excluded.rating;
	`, playerID, string(sp), rating)
	if err != nil {
		return fmt.Errorf("failed to set rating for player %s: %w", playerID, err)
	}
	return nil
}

// Leaderboard returns all rated players for a sport, highest rating first.
func (s *store) Leaderboard(sp sport.Sport) ([]LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT p.id, p.name, r.rating
		FROM player_ratings r
		JOIN players p ON p.id = r.player_id
		WHERE r.sport = ?
		ORDER BY r.rating DESC, p.name ASC
	`, string(sp))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []LeaderboardEntry{}
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(&e.PlayerID, &e.PlayerName, &e.Rating); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Clear removes every player and, via cascades, their ratings.
func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM players`); err != nil {
		log.Error("Failed to clear players", "error", err)
	}
}

// placeholders returns n comma-separated SQL placeholders.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func toAnySlice(ids []string) []any {
	out := make([]any, len(ids))
	for i, id := range ids {
		out[i] = id
	}
	return out
}
