package courts_test

import (
	"testing"

	"github.com/courtside/courtside/internal/courts"
	"github.com/courtside/courtside/internal/database"
	"github.com/courtside/courtside/internal/sport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (courts.CourtStore, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)

	return courts.New(db), dbTeardown
}

func TestAddAndGetCourt(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	court := courts.Court{
		ID:        "c1",
		Name:      "Riverside Tennis Court",
		Sport:     sport.Tennis,
		Latitude:  52.5200,
		Longitude: 13.4050,
		CreatedAt: 1700000000,
	}
	require.NoError(t, store.AddCourt(court))

	got, err := store.GetCourt("c1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, court, *got)

	assert.True(t, store.Exists("c1"))
	assert.False(t, store.Exists("ghost"))
}

func TestGetCourt_NotFound(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	got, err := store.GetCourt("ghost")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetAllCourts(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.AddCourt(courts.Court{ID: "c1", Name: "B Court", Sport: sport.Padel}))
	require.NoError(t, store.AddCourt(courts.Court{ID: "c2", Name: "A Court", Sport: sport.Basketball}))

	all, err := store.GetAllCourts()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "A Court", all[0].Name, "sorted by name")
}
