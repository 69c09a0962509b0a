// Package settlement orchestrates match settlement: roster resolution,
// Elo calculation, and the write sequence match record -> rating updates
// -> participant records. The match insert gates everything else; rating
// and participant write failures after it are surfaced as warnings, never
// as partial rollbacks.
package settlement

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/courtside/courtside/internal/courts"
	"github.com/courtside/courtside/internal/elo"
	"github.com/courtside/courtside/internal/match"
	"github.com/courtside/courtside/internal/metrics"
	"github.com/courtside/courtside/internal/players"
	"github.com/courtside/courtside/internal/pubsub"
	"github.com/courtside/courtside/internal/sport"
	"github.com/google/uuid"
)

// New creates a new settlement Service.
func New(playerStore players.PlayerStore, matchStore match.MatchStore, courtStore courts.CourtStore, metricsSvc metrics.Metrics, pubsubClient pubsub.PubSubClient) *Service {
	return &Service{
		players: playerStore,
		matches: matchStore,
		courts:  courtStore,
		metrics: metricsSvc,
		pubsub:  pubsubClient,
	}
}

// CreateMatch settles one match. Roster resolution failures and a rejected
// match insert fail the whole call with no writes; later per-player rating
// or participant write failures are logged, counted and reported in
// Settlement.Warnings while the match stands.
func (s *Service) CreateMatch(req CreateMatchRequest) (*Settlement, error) {
	startTime := time.Now()

	teamA, teamB, err := s.resolveTeams(req.Sport, req.TeamAPlayerIDs, req.TeamBPlayerIDs, req.Result)
	if err != nil {
		s.metrics.IncSettlementFailures()
		return nil, err
	}
	if req.CourtID != nil && !s.courts.Exists(*req.CourtID) {
		s.metrics.IncSettlementFailures()
		return nil, fmt.Errorf("%w: %s", ErrUnknownCourt, *req.CourtID)
	}

	updates := elo.UpdateTeamElo(teamA, teamB, req.Result)

	m := &match.Match{
		ID:             uuid.New().String(),
		Sport:          req.Sport,
		TeamAPlayerIDs: req.TeamAPlayerIDs,
		TeamBPlayerIDs: req.TeamBPlayerIDs,
		Winner:         req.Result,
		Score:          req.Score,
		CourtID:        req.CourtID,
		CreatedAt:      time.Now().Unix(),
	}

	// The match insert gates every other write.
	if err := s.matches.InsertMatch(m); err != nil {
		s.metrics.IncSettlementFailures()
		log.Error("Failed to insert match record", "error", err, "sport", req.Sport)
		return nil, fmt.Errorf("%w: %v", ErrMatchInsert, err)
	}

	var warnings []string
	for _, u := range updates {
		if err := s.players.SetRating(u.PlayerID, req.Sport, u.RatingAfter); err != nil {
			s.metrics.IncRatingWriteFailures()
			log.Error("Failed to apply rating update", "error", err, "matchID", m.ID, "playerID", u.PlayerID)
			warnings = append(warnings, fmt.Sprintf("rating update for player %s failed", u.PlayerID))
		}
	}

	participants := buildParticipants(m.ID, updates, len(teamA.Players))
	if err := s.matches.InsertParticipants(participants); err != nil {
		// Non-fatal: the match and rating updates are the source of truth,
		// but history views degrade without participant records.
		s.metrics.IncParticipantWriteFailures()
		log.Error("Failed to insert participant records", "error", err, "matchID", m.ID)
		warnings = append(warnings, "participant history records were not written")
	}

	if err := s.pubsub.SendMessage(pubsub.EventResultSettled, &ResultSettledEvent{Match: m, EloUpdates: updates}); err != nil {
		log.Error("Failed to publish settlement event", "error", err, "matchID", m.ID)
	}

	s.metrics.IncMatchesSettled()
	s.metrics.ObserveSettlementDuration(time.Since(startTime).Seconds())
	log.Info("Match settled", "matchID", m.ID, "sport", m.Sport, "winner", m.Winner, "players", len(updates))

	return &Settlement{Match: m, EloUpdates: updates, Warnings: warnings}, nil
}

// Preview computes what CreateMatch would do, with zero writes. Given
// unchanged ratings it produces updates identical to CreateMatch.
func (s *Service) Preview(req PreviewRequest) (*Preview, error) {
	teamA, teamB, err := s.resolveTeams(req.Sport, req.TeamAPlayerIDs, req.TeamBPlayerIDs, req.Result)
	if err != nil {
		return nil, err
	}

	s.metrics.IncPreviews()
	return &Preview{
		EloUpdates: elo.Simulate(teamA, teamB, req.Result),
		Prediction: elo.PredictOutcome(teamA, teamB),
	}, nil
}

// PlayerStats rolls up a player's participant history. An unknown player
// yields zeroed stats, not an error; this is a convenience query, not a
// correctness-critical path.
func (s *Service) PlayerStats(playerID string, sp sport.Sport) (*PlayerMatchStats, error) {
	stats := &PlayerMatchStats{PlayerID: playerID, CurrentElo: elo.DefaultRating}

	if !s.players.IsKnownPlayer(playerID) {
		return stats, nil
	}

	history, err := s.matches.ParticipantsForPlayer(playerID, sp)
	if err != nil {
		return nil, fmt.Errorf("failed to load participant history: %w", err)
	}

	totalChange := 0
	for _, h := range history {
		stats.TotalMatches++
		totalChange += h.RatingChange
		switch {
		case h.Winner == elo.ResultDraw:
			stats.Draws++
		case string(h.Winner) == string(h.Team):
			stats.Wins++
		default:
			stats.Losses++
		}
	}
	if stats.TotalMatches > 0 {
		stats.WinRate = float64(stats.Wins) / float64(stats.TotalMatches)
		stats.AverageEloChange = float64(totalChange) / float64(stats.TotalMatches)
	}

	// Without a sport filter there is no canonical "overall" rating; the
	// default stands in.
	if sp != "" {
		rating, err := s.players.GetRating(playerID, sp)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve current rating: %w", err)
		}
		stats.CurrentElo = rating
	}

	return stats, nil
}

// resolveTeams validates the request and resolves each roster member's
// current per-sport rating. Any failure here means nothing has been
// written.
func (s *Service) resolveTeams(sp sport.Sport, teamAIDs, teamBIDs []string, result elo.Result) (elo.Team, elo.Team, error) {
	var none elo.Team

	if !sport.IsSupported(sp) {
		return none, none, fmt.Errorf("%w: %q", ErrUnsupportedSport, sp)
	}
	if !result.IsValid() {
		return none, none, fmt.Errorf("%w: got %q", ErrInvalidResult, result)
	}
	if len(teamAIDs) == 0 || len(teamBIDs) == 0 {
		return none, none, ErrEmptyRoster
	}

	seenA := make(map[string]bool, len(teamAIDs))
	for _, id := range teamAIDs {
		if seenA[id] {
			return none, none, fmt.Errorf("%w: %s", ErrDuplicatePlayer, id)
		}
		seenA[id] = true
	}
	seenB := make(map[string]bool, len(teamBIDs))
	for _, id := range teamBIDs {
		if seenB[id] {
			return none, none, fmt.Errorf("%w: %s", ErrDuplicatePlayer, id)
		}
		if seenA[id] {
			return none, none, fmt.Errorf("%w: %s", ErrRosterOverlap, id)
		}
		seenB[id] = true
	}

	allIDs := make([]string, 0, len(teamAIDs)+len(teamBIDs))
	allIDs = append(allIDs, teamAIDs...)
	allIDs = append(allIDs, teamBIDs...)

	ratings, err := s.players.GetRatings(allIDs, sp)
	if err != nil {
		return none, none, fmt.Errorf("failed to resolve player ratings: %w", err)
	}

	var missing []string
	for _, id := range allIDs {
		if _, ok := ratings[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return none, none, fmt.Errorf("%w: missing %s", ErrUnknownPlayer, strings.Join(missing, ", "))
	}

	return buildTeam(teamAIDs, ratings), buildTeam(teamBIDs, ratings), nil
}

func buildTeam(ids []string, ratings map[string]int) elo.Team {
	team := elo.Team{Players: make([]elo.Player, 0, len(ids))}
	for _, id := range ids {
		team.Players = append(team.Players, elo.Player{ID: id, Rating: ratings[id]})
	}
	return team
}

// buildParticipants maps computed updates onto participant records. The
// update slice keeps team A entries first, so the split index is team A's
// size.
func buildParticipants(matchID string, updates []elo.PlayerUpdate, teamASize int) []match.Participant {
	participants := make([]match.Participant, 0, len(updates))
	for i, u := range updates {
		side := match.SideTeamA
		if i >= teamASize {
			side = match.SideTeamB
		}
		participants = append(participants, match.Participant{
			MatchID:      matchID,
			PlayerID:     u.PlayerID,
			Team:         side,
			RatingBefore: u.RatingBefore,
			RatingAfter:  u.RatingAfter,
			RatingChange: u.RatingChange,
		})
	}
	return participants
}
