// Package elo implements team-based Elo rating arithmetic. All functions are
// pure and deterministic; callers guarantee non-empty rosters before
// invoking them.
package elo

import "math"

// KFactor returns the maximum per-match rating swing for a team of the
// given size. Smaller teams carry more individual signal per game, so each
// player's rating moves more; larger teams dilute it.
func KFactor(teamSize int) int {
	switch {
	case teamSize == 1:
		return 32
	case teamSize <= 3:
		return 26
	default:
		return 18
	}
}

// TeamAverage returns the arithmetic mean of the team's resolved ratings.
func TeamAverage(team Team) float64 {
	sum := 0
	for _, p := range team.Players {
		sum += p.Rating
	}
	return float64(sum) / float64(len(team.Players))
}

// ExpectedScore returns the logistic win probability for a side rated
// `rating` against a side rated `opponent`. ExpectedScore(a,b) and
// ExpectedScore(b,a) always sum to 1.
func ExpectedScore(rating, opponent float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (opponent-rating)/400.0))
}

// NewRating applies one Elo update. The result is rounded half away from
// zero (math.Round); the rule is fixed so identical inputs always produce
// identical outputs.
func NewRating(current int, expected, actual float64, kFactor int) int {
	return int(math.Round(float64(current) + float64(kFactor)*(actual-expected)))
}

// actualScores maps a declared result to the (teamA, teamB) actual scores.
func actualScores(result Result) (float64, float64) {
	switch result {
	case ResultTeamA:
		return 1, 0
	case ResultTeamB:
		return 0, 1
	default:
		return 0.5, 0.5
	}
}

// UpdateTeamElo computes the rating update for every player in a match.
// Expected scores come from the team averages, but the K-factor is chosen
// per team from that team's own size: in a 1v4 the solo player moves with
// K=32 while each of the four moves with K=18. Team A's entries come
// first; callers must key on PlayerID, not position.
func UpdateTeamElo(teamA, teamB Team, result Result) []PlayerUpdate {
	avgA := TeamAverage(teamA)
	avgB := TeamAverage(teamB)

	expectedA := ExpectedScore(avgA, avgB)
	expectedB := 1 - expectedA
	actualA, actualB := actualScores(result)

	kFactorA := KFactor(len(teamA.Players))
	kFactorB := KFactor(len(teamB.Players))

	updates := make([]PlayerUpdate, 0, len(teamA.Players)+len(teamB.Players))
	for _, p := range teamA.Players {
		after := NewRating(p.Rating, expectedA, actualA, kFactorA)
		updates = append(updates, PlayerUpdate{
			PlayerID:     p.ID,
			RatingBefore: p.Rating,
			RatingAfter:  after,
			RatingChange: after - p.Rating,
		})
	}
	for _, p := range teamB.Players {
		after := NewRating(p.Rating, expectedB, actualB, kFactorB)
		updates = append(updates, PlayerUpdate{
			PlayerID:     p.ID,
			RatingBefore: p.Rating,
			RatingAfter:  after,
			RatingChange: after - p.Rating,
		})
	}
	return updates
}

// PredictOutcome forecasts a pairing without a declared result.
func PredictOutcome(teamA, teamB Team) Prediction {
	avgA := TeamAverage(teamA)
	avgB := TeamAverage(teamB)
	expectedA := ExpectedScore(avgA, avgB)
	return Prediction{
		TeamAWinProbability: expectedA,
		TeamBWinProbability: 1 - expectedA,
		RatingAdvantage:     avgA - avgB,
	}
}

// Simulate computes the same updates as UpdateTeamElo. It exists as a
// separate entry point so preview callers state their intent at the call
// site; nothing is persisted by anything in this package.
func Simulate(teamA, teamB Team, result Result) []PlayerUpdate {
	return UpdateTeamElo(teamA, teamB, result)
}
