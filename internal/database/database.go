package database

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// InitDB opens the database and ensures the schema exists.
// For local-only databases, dbPath is the filename (":memory:" for tests).
// When primaryURL is set, the remote Turso database is used instead.
func InitDB(dbPath string, primaryURL string, authToken string) (*sql.DB, func(), error) {
	var db *sql.DB
	var err error

	if primaryURL == "" {
		log.Info("Initializing local SQLite database", "path", dbPath)
		db, err = sql.Open("libsql", "file:"+dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open local database: %w", err)
		}
	} else {
		log.Info("Initializing Turso database", "url", primaryURL)
		db, err = sql.Open("libsql", primaryURL+"?authToken="+authToken)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open db %s: %w", primaryURL, err)
		}
	}

	if err = createTables(db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to create tables: %w", err)
	}

	teardown := func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", "error", err)
		}
	}
	return db, teardown, nil
}

func createTables(db *sql.DB) error {
	// Foreign key support is not enabled by default in SQLite.
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		log.Error("Error enabling foreign keys", "error", err)
		return err
	}

	createPlayersTable := `
	CREATE TABLE IF NOT EXISTS players (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		created_at INTEGER NOT NULL DEFAULT (unixepoch())
	);`

	createPlayerRatingsTable := `
	CREATE TABLE IF NOT EXISTS player_ratings (
		player_id TEXT NOT NULL,
		sport TEXT NOT NULL,
		rating INTEGER NOT NULL DEFAULT 1500,
		PRIMARY KEY (player_id, sport),
		FOREIGN KEY (player_id) REFERENCES players(id) ON DELETE CASCADE
	);`

	createCourtsTable := `
	CREATE TABLE IF NOT EXISTS courts (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		sport TEXT NOT NULL,
		latitude DOUBLE NOT NULL,
		longitude DOUBLE NOT NULL,
		created_at INTEGER NOT NULL
	);`

	createMatchesTable := `
	CREATE TABLE IF NOT EXISTS matches (
		id TEXT PRIMARY KEY,
		sport TEXT NOT NULL,
		team_a_json TEXT NOT NULL,
		team_b_json TEXT NOT NULL,
		winner TEXT NOT NULL,
		score_json TEXT,
		court_id TEXT,
		created_at INTEGER NOT NULL,
		FOREIGN KEY (court_id) REFERENCES courts(id) ON DELETE SET NULL
	);`

	createMatchParticipantsTable := `
	CREATE TABLE IF NOT EXISTS match_participants (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		match_id TEXT NOT NULL,
		player_id TEXT NOT NULL,
		team TEXT NOT NULL,
		rating_before INTEGER NOT NULL,
		rating_after INTEGER NOT NULL,
		rating_change INTEGER NOT NULL,
		FOREIGN KEY (match_id) REFERENCES matches(id) ON DELETE CASCADE,
		FOREIGN KEY (player_id) REFERENCES players(id) ON DELETE CASCADE
	);`

	createParticipantIndex := `
	CREATE INDEX IF NOT EXISTS idx_match_participants_player
	ON match_participants(player_id);`

	for _, stmt := range []string{
		createPlayersTable,
		createPlayerRatingsTable,
		createCourtsTable,
		createMatchesTable,
		createMatchParticipantsTable,
		createParticipantIndex,
	} {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	log.Info("Database initialized successfully")
	return nil
}
