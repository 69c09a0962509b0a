package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(courtsCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(settleCmd)
	rootCmd.AddCommand(previewCmd)
	announceCmd.AddCommand(announceLeaderboardCmd)
	announceCmd.AddCommand(announceStatsCmd)
	rootCmd.AddCommand(announceCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the registered players",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/players")
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List the settled matches",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/matches")
	},
}

var courtsCmd = &cobra.Command{
	Use:   "courts",
	Short: "List the registered courts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/courts")
	},
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard [sport]",
	Short: "Show the rating leaderboard for a sport",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/leaderboard?sport=" + args[0])
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats [playerID] [sport]",
	Short: "Show a player's match statistics",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint := "/players/stats?playerID=" + args[0]
		if len(args) == 2 {
			endpoint += "&sport=" + args[1]
		}
		return performGetRequest(endpoint)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

var settleCmd = &cobra.Command{
	Use:   "settle [json]",
	Short: "Settle a match from a JSON request body",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/matches", args[0])
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview [json]",
	Short: "Preview a settlement without committing it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/matches/preview", args[0])
	},
}

var announceCmd = &cobra.Command{
	Use:   "announce",
	Short: "Post to the notification channel",
}

var announceLeaderboardCmd = &cobra.Command{
	Use:   "leaderboard [sport]",
	Short: "Post the leaderboard for a sport to the channel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/announce/leaderboard?sport="+args[0], "")
	},
}

var announceStatsCmd = &cobra.Command{
	Use:   "stats [name] [sport]",
	Short: "Post a player's stats to the channel, looked up by name",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint := "/announce/player-stats?name=" + url.QueryEscape(args[0])
		if len(args) == 2 {
			endpoint += "&sport=" + args[1]
		}
		return performPostRequest(endpoint, "")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func performPostRequest(endpoint, body string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
