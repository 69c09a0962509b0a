package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/courtside/courtside/internal/elo"
	"github.com/courtside/courtside/internal/match"
	"github.com/courtside/courtside/internal/metrics"
	"github.com/courtside/courtside/internal/notifier"
	"github.com/courtside/courtside/internal/players"
	"github.com/courtside/courtside/internal/settlement"
	"github.com/courtside/courtside/internal/sport"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// Implement the Notifier interface
func (s *Notifier) SendResultNotification(m *match.Match, updates []elo.PlayerUpdate, names map[string]string, dryRun bool) error {
	msg := s.formatResultNotification(m, updates, names)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendLeaderboard(sp sport.Sport, entries []players.LeaderboardEntry, dryRun bool) error {
	msg := s.formatLeaderboard(sp, entries)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendPlayerStats(stats *settlement.PlayerMatchStats, name string, dryRun bool) error {
	msg := s.formatPlayerStats(stats, name)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendPlayerNotFound(query string, dryRun bool) error {
	msg := s.formatPlayerNotFound(query)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// FormatLeaderboardResponse formats a leaderboard message for a slash command response.
func (s *Notifier) FormatLeaderboardResponse(sp sport.Sport, entries []players.LeaderboardEntry) (any, error) {
	return s.formatLeaderboard(sp, entries), nil
}

// FormatPlayerStatsResponse formats a player stats message for a slash command response.
func (s *Notifier) FormatPlayerStatsResponse(stats *settlement.PlayerMatchStats, name string) (any, error) {
	return s.formatPlayerStats(stats, name), nil
}

// FormatPlayerNotFoundResponse formats a player not found message for a slash command response.
func (s *Notifier) FormatPlayerNotFoundResponse(query string) (any, error) {
	return s.formatPlayerNotFound(query), nil
}

// displayName resolves a player ID through the name map, falling back to
// the raw ID.
func displayName(id string, names map[string]string) string {
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	return id
}

// signedDelta renders a rating change with an explicit sign, e.g. "+16".
func signedDelta(change int) string {
	if change >= 0 {
		return fmt.Sprintf("+%d", change)
	}
	return fmt.Sprintf("%d", change)
}

// formatResultNotification creates the Slack message for a settled match using Block Kit.
func (s *Notifier) formatResultNotification(m *match.Match, updates []elo.PlayerUpdate, names map[string]string) slack.Message {
	blocks := make([]slack.Block, 0)

	// Header - The Header block itself provides bolding. No asterisks needed.
	headerText := slack.NewTextBlockObject("plain_text", "🏅 Match settled!", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	// Outcome
	var outcomeText string
	switch m.Winner {
	case elo.ResultTeamA:
		outcomeText = fmt.Sprintf("%s win: %s", teamLabel(m.TeamAPlayerIDs, names), m.Sport)
	case elo.ResultTeamB:
		outcomeText = fmt.Sprintf("%s win: %s", teamLabel(m.TeamBPlayerIDs, names), m.Sport)
	default:
		outcomeText = fmt.Sprintf("Draw: %s", m.Sport)
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", outcomeText, true, false), nil, nil))

	// Rating movements
	deltas := make(map[string]elo.PlayerUpdate, len(updates))
	for _, u := range updates {
		deltas[u.PlayerID] = u
	}
	teamLines := func(ids []string) []string {
		lines := make([]string, 0, len(ids))
		for _, id := range ids {
			if u, ok := deltas[id]; ok {
				lines = append(lines, fmt.Sprintf("• %s: %d → %d (%s)", displayName(id, names), u.RatingBefore, u.RatingAfter, signedDelta(u.RatingChange)))
			} else {
				lines = append(lines, fmt.Sprintf("• %s", displayName(id, names)))
			}
		}
		return lines
	}
	ratingsText := "Team A:\n" + strings.Join(teamLines(m.TeamAPlayerIDs), "\n") +
		"\nTeam B:\n" + strings.Join(teamLines(m.TeamBPlayerIDs), "\n")
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", ratingsText, true, false), nil, nil))

	// Context - For simpler, single-line info.
	var contextElements []slack.MixedElement
	if m.CourtID != nil {
		contextElements = append(contextElements, slack.NewTextBlockObject("plain_text", fmt.Sprintf("Played at court %s", *m.CourtID), true, false))
	}
	timeStr := time.Unix(m.CreatedAt, 0).Format("Monday 02 Jan, 15:04")
	contextElements = append(contextElements, slack.NewTextBlockObject("plain_text", timeStr, true, false))
	blocks = append(blocks, slack.NewContextBlock("", contextElements...))

	return slack.NewBlockMessage(blocks...)
}

func teamLabel(ids []string, names map[string]string) string {
	labels := make([]string, len(ids))
	for i, id := range ids {
		labels[i] = displayName(id, names)
	}
	return strings.Join(labels, " & ")
}

// formatLeaderboard creates a Slack message to display the rating leaderboard for one sport.
func (s *Notifier) formatLeaderboard(sp sport.Sport, entries []players.LeaderboardEntry) slack.Message {
	blocks := make([]slack.Block, 0)

	// Header
	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("🏆 Leaderboard: %s 🏆", sp), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(entries) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No ratings yet. Go play some matches!", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	// Player Ranks
	for i, entry := range entries {
		rank := i + 1
		var medal string
		switch rank {
		case 1:
			medal = "🥇"
		case 2:
			medal = "🥈"
		case 3:
			medal = "🥉"
		}

		name := entry.PlayerName
		if name == "" {
			name = entry.PlayerID
		}
		playerText := fmt.Sprintf("%d. %s %s\n> *Rating*: %d", rank, medal, name, entry.Rating)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", playerText, false, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatPlayerStats creates a Slack message to display a single player's stats.
func (s *Notifier) formatPlayerStats(stats *settlement.PlayerMatchStats, name string) slack.Message {
	blocks := make([]slack.Block, 0)

	// Header
	headerText := fmt.Sprintf("🏆 Stats for %s 🏆", name)
	blocks = append(blocks, slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", headerText, true, false)))

	playerText := fmt.Sprintf("> *Rating*: %d\n> *Record*: %dW / %dL / %dD (%d matches)\n> *Win rate*: %.1f%%\n> *Avg rating change*: %+.1f",
		stats.CurrentElo,
		stats.Wins,
		stats.Losses,
		stats.Draws,
		stats.TotalMatches,
		stats.WinRate*100,
		stats.AverageEloChange,
	)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", playerText, false, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatPlayerNotFound creates a Slack message for when a player's stats are not found.
func (s *Notifier) formatPlayerNotFound(query string) slack.Message {
	text := fmt.Sprintf("Sorry, I couldn't find a player matching *%s*. Try a different name.", query)
	return slack.NewBlockMessage(
		slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil),
	)
}
