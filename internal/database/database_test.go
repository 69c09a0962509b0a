package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_CreatesTables(t *testing.T) {
	db, teardown, err := InitDB(":memory:", "", "")
	require.NoError(t, err, "InitDB should not return an error")
	defer teardown()

	for _, table := range []string{"players", "player_ratings", "courts", "matches", "match_participants"} {
		var name string
		err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, "querying for %s table should not produce an error", table)
		assert.Equal(t, table, name, "the '%s' table should be created", table)
	}
}

func TestInitDB_RatingDefaultsTo1500(t *testing.T) {
	db, teardown, err := InitDB(":memory:", "", "")
	require.NoError(t, err)
	defer teardown()

	_, err = db.Exec(`INSERT INTO players (id, name) VALUES ('p1', 'Player One')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO player_ratings (player_id, sport) VALUES ('p1', 'tennis')`)
	require.NoError(t, err)

	var rating int
	err = db.QueryRow(`SELECT rating FROM player_ratings WHERE player_id='p1' AND sport='tennis'`).Scan(&rating)
	require.NoError(t, err)
	assert.Equal(t, 1500, rating)
}
