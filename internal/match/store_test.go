package match_test

import (
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/courtside/courtside/internal/database"
	"github.com/courtside/courtside/internal/elo"
	"github.com/courtside/courtside/internal/match"
	"github.com/courtside/courtside/internal/sport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (match.MatchStore, *sql.DB, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO players (id, name) VALUES
		('p1', 'Player One'),
		('p2', 'Player Two'),
		('p3', 'Player Three')`)
	require.NoError(t, err)

	store := match.New(db)
	return store, db, dbTeardown
}

func TestInsertAndGetMatch(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	m := &match.Match{
		ID:             "m1",
		Sport:          sport.Tennis,
		TeamAPlayerIDs: []string{"p1"},
		TeamBPlayerIDs: []string{"p2"},
		Winner:         elo.ResultTeamA,
		Score:          json.RawMessage(`{"sets":[[6,3],[6,4]]}`),
		CreatedAt:      1700000000,
	}
	require.NoError(t, store.InsertMatch(m))

	got, err := store.GetMatch("m1")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, sport.Tennis, got.Sport)
	assert.Equal(t, []string{"p1"}, got.TeamAPlayerIDs)
	assert.Equal(t, []string{"p2"}, got.TeamBPlayerIDs)
	assert.Equal(t, elo.ResultTeamA, got.Winner)
	assert.JSONEq(t, `{"sets":[[6,3],[6,4]]}`, string(got.Score))
	assert.Nil(t, got.CourtID)
}

func TestGetMatch_NotFound(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	got, err := store.GetMatch("ghost")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestInsertMatch_DuplicateIDFails(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	m := &match.Match{
		ID:             "m1",
		Sport:          sport.Padel,
		TeamAPlayerIDs: []string{"p1"},
		TeamBPlayerIDs: []string{"p2"},
		Winner:         elo.ResultDraw,
		CreatedAt:      1700000000,
	}
	require.NoError(t, store.InsertMatch(m))
	assert.Error(t, store.InsertMatch(m), "match records are immutable; a second insert must fail")
}

func TestParticipantsForPlayer(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	insert := func(id string, sp sport.Sport, winner elo.Result, createdAt int64) {
		require.NoError(t, store.InsertMatch(&match.Match{
			ID:             id,
			Sport:          sp,
			TeamAPlayerIDs: []string{"p1"},
			TeamBPlayerIDs: []string{"p2"},
			Winner:         winner,
			CreatedAt:      createdAt,
		}))
	}
	insert("m1", sport.Tennis, elo.ResultTeamA, 100)
	insert("m2", sport.Tennis, elo.ResultTeamB, 200)
	insert("m3", sport.Padel, elo.ResultDraw, 300)

	for _, id := range []string{"m1", "m2", "m3"} {
		require.NoError(t, store.InsertParticipants([]match.Participant{
			{MatchID: id, PlayerID: "p1", Team: match.SideTeamA, RatingBefore: 1500, RatingAfter: 1516, RatingChange: 16},
			{MatchID: id, PlayerID: "p2", Team: match.SideTeamB, RatingBefore: 1500, RatingAfter: 1484, RatingChange: -16},
		}))
	}

	t.Run("filters by sport", func(t *testing.T) {
		history, err := store.ParticipantsForPlayer("p1", sport.Tennis)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, "m2", history[0].MatchID, "newest first")
		assert.Equal(t, elo.ResultTeamB, history[0].Winner)
		assert.Equal(t, match.SideTeamA, history[0].Team)
	})

	t.Run("empty sport returns all history", func(t *testing.T) {
		history, err := store.ParticipantsForPlayer("p1", "")
		require.NoError(t, err)
		assert.Len(t, history, 3)
	})

	t.Run("player with no history gets empty slice", func(t *testing.T) {
		history, err := store.ParticipantsForPlayer("p3", "")
		require.NoError(t, err)
		assert.Len(t, history, 0)
	})
}

func TestInsertParticipants_EmptyBatchIsNoop(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	assert.NoError(t, store.InsertParticipants(nil))
}

func TestClearMatch(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.InsertMatch(&match.Match{
		ID:             "m1",
		Sport:          sport.Squash,
		TeamAPlayerIDs: []string{"p1"},
		TeamBPlayerIDs: []string{"p2"},
		Winner:         elo.ResultTeamA,
		CreatedAt:      100,
	}))
	require.NoError(t, store.InsertParticipants([]match.Participant{
		{MatchID: "m1", PlayerID: "p1", Team: match.SideTeamA, RatingBefore: 1500, RatingAfter: 1516, RatingChange: 16},
	}))

	store.ClearMatch("m1")

	got, err := store.GetMatch("m1")
	require.NoError(t, err)
	assert.Nil(t, got)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM match_participants`).Scan(&count))
	assert.Zero(t, count, "participant records cascade with the match")
}
