package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/courtside/courtside/internal/courts"
	"github.com/courtside/courtside/internal/database"
	"github.com/courtside/courtside/internal/elo"
	"github.com/courtside/courtside/internal/match"
	"github.com/courtside/courtside/internal/metrics"
	"github.com/courtside/courtside/internal/players"
	"github.com/courtside/courtside/internal/pubsub"
	"github.com/courtside/courtside/internal/settlement"
	"github.com/courtside/courtside/internal/sport"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := map[string]string{"DB_NAME": "courtside-seed.db"}
	if value, ok := os.LookupEnv("DB_NAME"); ok {
		config["DB_NAME"] = value
	}
	config["TURSO_PRIMARY_URL"] = os.Getenv("TURSO_PRIMARY_URL")
	config["TURSO_AUTH_TOKEN"] = os.Getenv("TURSO_AUTH_TOKEN")
	return config
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	db, teardown, err := database.InitDB(cfg["DB_NAME"], cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"])
	if err != nil {
		log.Fatalf("Failed to open database: %s", err)
	}
	defer teardown()

	log.Info("Successfully connected to the database.")

	playerStore := players.New(db)
	matchStore := match.New(db)
	courtStore := courts.New(db)
	metricsSvc := metrics.NewService(prometheus.NewRegistry())
	// Seeding settles matches locally; nothing downstream should be notified.
	settlementSvc := settlement.New(playerStore, matchStore, courtStore, metricsSvc, pubsub.NewMock("seeder"))

	dummyPlayers := []players.PlayerInfo{
		{ID: "player-1", Name: "Seeder Player A"},
		{ID: "player-2", Name: "Seeder Player B"},
		{ID: "player-3", Name: "Seeder Player C"},
		{ID: "player-4", Name: "Seeder Player D"},
		{ID: "player-5", Name: "Seeder Player E"},
		{ID: "player-6", Name: "Seeder Player F"},
	}
	if err := playerStore.UpsertPlayers(dummyPlayers); err != nil {
		log.Fatalf("Failed to insert dummy players: %s", err)
	}
	log.Info("Ensured dummy players exist.", "count", len(dummyPlayers))

	dummyCourts := []courts.Court{
		{ID: uuid.NewString(), Name: "Riverside Court", Sport: sport.Basketball, Latitude: 55.6761, Longitude: 12.5683},
		{ID: uuid.NewString(), Name: "Harbour Padel", Sport: sport.Padel, Latitude: 55.6633, Longitude: 12.5939},
		{ID: uuid.NewString(), Name: "Old Town Tennis Club", Sport: sport.Tennis, Latitude: 55.6794, Longitude: 12.5714},
	}
	for _, c := range dummyCourts {
		if err := courtStore.AddCourt(c); err != nil {
			log.Fatalf("Failed to insert dummy court %s: %s", c.Name, err)
		}
	}
	log.Info("Ensured dummy courts exist.", "count", len(dummyCourts))

	const numMatches = 200
	results := []elo.Result{elo.ResultTeamA, elo.ResultTeamB, elo.ResultDraw}
	sports := []sport.Sport{sport.Tennis, sport.Padel, sport.Basketball}

	log.Info("Settling dummy matches...", "total", numMatches)
	startTime := time.Now()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i < numMatches; i++ {
		// Pick four distinct players and split them two versus two.
		perm := rng.Perm(len(dummyPlayers))
		teamA := []string{dummyPlayers[perm[0]].ID, dummyPlayers[perm[1]].ID}
		teamB := []string{dummyPlayers[perm[2]].ID, dummyPlayers[perm[3]].ID}

		sp := sports[rng.Intn(len(sports))]
		var courtID *string
		for _, c := range dummyCourts {
			if c.Sport == sp {
				id := c.ID
				courtID = &id
				break
			}
		}

		_, err := settlementSvc.CreateMatch(settlement.CreateMatchRequest{
			Sport:          sp,
			TeamAPlayerIDs: teamA,
			TeamBPlayerIDs: teamB,
			Result:         results[rng.Intn(len(results))],
			CourtID:        courtID,
		})
		if err != nil {
			log.Fatalf("Failed to settle dummy match %d: %s", i, err)
		}
	}

	elapsed := time.Since(startTime)
	log.Info("Seeding complete.", "matches", numMatches, "duration", fmt.Sprintf("%.2fs", elapsed.Seconds()))
}
