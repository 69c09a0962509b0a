package slack

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/courtside/courtside/internal/elo"
	"github.com/courtside/courtside/internal/match"
	"github.com/courtside/courtside/internal/metrics"
	"github.com/courtside/courtside/internal/players"
	"github.com/courtside/courtside/internal/settlement"
	"github.com/courtside/courtside/internal/sport"
	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSlackAPI is a mock implementation of the parts of the slack.Client that we use.
type mockSlackAPI struct {
	postMessageContextFunc func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return "C12345", "123456789.12345", nil
}

func TestSendMessage_DryRun(t *testing.T) {
	metrics := metrics.NewMock()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	notifier := NewNotifierWithAPI(nil, "C123", metrics)

	message := slackapi.NewBlockMessage()
	_, _, err := notifier.sendMessage(message, true)
	require.NoError(t, err)
}

func TestSendMessage_Success(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			assert.Equal(t, "C123", channelID)
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	message := slackapi.NewBlockMessage(slackapi.NewSectionBlock(slackapi.NewTextBlockObject("plain_text", "hello", false, false), nil, nil))
	_, _, err := notifier.sendMessage(message, false)

	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 1, metrics.SlackNotifSent())
	assert.Equal(t, 0, metrics.SlackNotifFailed())
}

func TestSendMessage_Failure(t *testing.T) {
	postMessageCalled := false
	expectedErr := errors.New("slack API is down")
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			return "", "", expectedErr
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	message := slackapi.NewBlockMessage()
	_, _, err := notifier.sendMessage(message, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 0, metrics.SlackNotifSent())
	assert.Equal(t, 1, metrics.SlackNotifFailed())
}

// Test one of the public methods to ensure it calls the private sender.
func TestSendResultNotification_CallsSender(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	m := &match.Match{
		ID:             "m1",
		Sport:          sport.Padel,
		TeamAPlayerIDs: []string{"a"},
		TeamBPlayerIDs: []string{"b"},
		Winner:         elo.ResultTeamA,
		CreatedAt:      time.Now().Unix(),
	}

	err := notifier.SendResultNotification(m, nil, nil, false)
	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called via SendResultNotification")
}

func TestFormatResultNotification(t *testing.T) {
	courtID := "court-1"
	m := &match.Match{
		ID:             "m1",
		Sport:          sport.Padel,
		TeamAPlayerIDs: []string{"a1", "a2"},
		TeamBPlayerIDs: []string{"b1", "b2"},
		Winner:         elo.ResultTeamA,
		CourtID:        &courtID,
		CreatedAt:      time.Date(2025, 7, 9, 20, 0, 0, 0, time.Local).Unix(),
	}
	updates := []elo.PlayerUpdate{
		{PlayerID: "a1", RatingBefore: 1500, RatingAfter: 1516, RatingChange: 16},
		{PlayerID: "a2", RatingBefore: 1480, RatingAfter: 1496, RatingChange: 16},
		{PlayerID: "b1", RatingBefore: 1500, RatingAfter: 1484, RatingChange: -16},
		{PlayerID: "b2", RatingBefore: 1520, RatingAfter: 1504, RatingChange: -16},
	}
	names := map[string]string{
		"a1": "Player A",
		"a2": "Player B",
		"b1": "Player C",
		"b2": "Player D",
	}

	client := &Notifier{channelID: "C123"}
	msg := client.formatResultNotification(m, updates, names)

	require.Len(t, msg.Blocks.BlockSet, 4, "Expected 4 blocks")

	header, ok := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	require.True(t, ok, "First block should be a HeaderBlock")
	assert.Equal(t, "🏅 Match settled!", header.Text.Text)
	assert.True(t, *header.Text.Emoji)

	outcome, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok, "Second block should be a SectionBlock")
	assert.Equal(t, "Player A & Player B win: padel", outcome.Text.Text)

	ratings, ok := msg.Blocks.BlockSet[2].(*slackapi.SectionBlock)
	require.True(t, ok, "Third block should be a SectionBlock")
	assert.Contains(t, ratings.Text.Text, "• Player A: 1500 → 1516 (+16)")
	assert.Contains(t, ratings.Text.Text, "• Player C: 1500 → 1484 (-16)")

	contextBlock, ok := msg.Blocks.BlockSet[3].(*slackapi.ContextBlock)
	require.True(t, ok, "Fourth block should be a ContextBlock")
	require.Len(t, contextBlock.ContextElements.Elements, 2)

	courtElement, ok := contextBlock.ContextElements.Elements[0].(*slackapi.TextBlockObject)
	require.True(t, ok)
	assert.Equal(t, "Played at court court-1", courtElement.Text)
}

func TestFormatResultNotification_DrawAndUnknownNames(t *testing.T) {
	m := &match.Match{
		ID:             "m1",
		Sport:          sport.Tennis,
		TeamAPlayerIDs: []string{"a"},
		TeamBPlayerIDs: []string{"b"},
		Winner:         elo.ResultDraw,
		CreatedAt:      time.Now().Unix(),
	}

	client := &Notifier{channelID: "C123"}
	msg := client.formatResultNotification(m, nil, nil)

	outcome, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Equal(t, "Draw: tennis", outcome.Text.Text)

	// Without a name map the raw player IDs are shown.
	ratings, ok := msg.Blocks.BlockSet[2].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, ratings.Text.Text, "• a")
	assert.Contains(t, ratings.Text.Text, "• b")
}

func TestFormatLeaderboard(t *testing.T) {
	client := &Notifier{channelID: "C123"}

	t.Run("displays leaderboard with ratings", func(t *testing.T) {
		entries := []players.LeaderboardEntry{
			{PlayerID: "a", PlayerName: "Player A", Rating: 1620},
			{PlayerID: "b", PlayerName: "Player B", Rating: 1544},
			{PlayerID: "c", PlayerName: "Player C", Rating: 1490},
		}

		msg := client.formatLeaderboard(sport.Padel, entries)
		require.Len(t, msg.Blocks.BlockSet, 4, "Expected 4 blocks (header + 3 players)")

		header, ok := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
		require.True(t, ok)
		assert.Equal(t, "🏆 Leaderboard: padel 🏆", header.Text.Text)

		player1, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
		require.True(t, ok)
		assert.Contains(t, player1.Text.Text, "1. 🥇 Player A")
		assert.Contains(t, player1.Text.Text, "> *Rating*: 1620")

		player2, ok := msg.Blocks.BlockSet[2].(*slackapi.SectionBlock)
		require.True(t, ok)
		assert.Contains(t, player2.Text.Text, "2. 🥈 Player B")

		player3, ok := msg.Blocks.BlockSet[3].(*slackapi.SectionBlock)
		require.True(t, ok)
		assert.Contains(t, player3.Text.Text, "3. 🥉 Player C")
	})

	t.Run("displays message when no ratings are available", func(t *testing.T) {
		msg := client.formatLeaderboard(sport.Padel, []players.LeaderboardEntry{})
		require.Len(t, msg.Blocks.BlockSet, 2, "Expected 2 blocks (header + message)")

		message, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
		require.True(t, ok)
		assert.Equal(t, "No ratings yet. Go play some matches!", message.Text.Text)
	})
}

func TestFormatPlayerStats(t *testing.T) {
	client := &Notifier{channelID: "C123"}

	t.Run("formats stats for a found player", func(t *testing.T) {
		stats := &settlement.PlayerMatchStats{
			PlayerID:         "a",
			TotalMatches:     10,
			Wins:             8,
			Losses:           1,
			Draws:            1,
			WinRate:          0.8,
			AverageEloChange: 4.2,
			CurrentElo:       1542,
		}

		msg := client.formatPlayerStats(stats, "Morten Voss")
		require.Len(t, msg.Blocks.BlockSet, 2)

		header, ok := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
		require.True(t, ok)
		assert.Equal(t, "🏆 Stats for Morten Voss 🏆", header.Text.Text)

		section, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
		require.True(t, ok)
		assert.Contains(t, section.Text.Text, "> *Rating*: 1542")
		assert.Contains(t, section.Text.Text, "> *Record*: 8W / 1L / 1D (10 matches)")
		assert.Contains(t, section.Text.Text, "> *Win rate*: 80.0%")
		assert.Contains(t, section.Text.Text, "> *Avg rating change*: +4.2")
	})

	t.Run("formats message for a player not found", func(t *testing.T) {
		msg := client.formatPlayerNotFound("Unknown Player")
		require.Len(t, msg.Blocks.BlockSet, 1)

		section, ok := msg.Blocks.BlockSet[0].(*slackapi.SectionBlock)
		require.True(t, ok)
		assert.Equal(t, "Sorry, I couldn't find a player matching *Unknown Player*. Try a different name.", section.Text.Text)
	})
}
