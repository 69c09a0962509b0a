package http

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/courtside/courtside/internal/courts"
	"github.com/courtside/courtside/internal/players"
	"github.com/courtside/courtside/internal/settlement"
	"github.com/courtside/courtside/internal/sport"
	"github.com/google/uuid"
	"github.com/slack-go/slack"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) ClearStoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := r.URL.Query().Get("matchID")
		if matchID != "" {
			log.Info("Received request to clear a specific match", "matchID", matchID)
			s.Matches.ClearMatch(matchID)
			w.WriteHeader(http.StatusOK)
			fmt.Fprintf(w, "Cleared match %s from store!", matchID)
			log.Info("Successfully cleared match from store", "matchID", matchID)
		} else {
			log.Info("Received request to clear entire store")
			s.Matches.Clear()
			s.Players.Clear()
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, "Store cleared!")
			log.Info("Store cleared successfully")
		}
	}
}

// settlementErrorStatus maps a settlement error to an HTTP status code.
// Validation failures are the caller's fault; everything else is ours.
func settlementErrorStatus(err error) int {
	for _, validation := range []error{
		settlement.ErrEmptyRoster,
		settlement.ErrRosterOverlap,
		settlement.ErrDuplicatePlayer,
		settlement.ErrUnknownPlayer,
		settlement.ErrUnknownCourt,
		settlement.ErrUnsupportedSport,
		settlement.ErrInvalidResult,
	} {
		if errors.Is(err, validation) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

// writeJSON encodes v as the response body. Encoding failures are logged,
// not surfaced, because the status line is already committed.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

func (s *Server) PlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var body []players.PlayerInfo
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				http.Error(w, "Invalid JSON", http.StatusBadRequest)
				return
			}
			for i := range body {
				if body[i].ID == "" {
					body[i].ID = uuid.NewString()
				}
			}
			if err := s.Players.UpsertPlayers(body); err != nil {
				http.Error(w, "Failed to save players", http.StatusInternalServerError)
				log.Error("Failed to upsert players", "error", err)
				return
			}
			w.WriteHeader(http.StatusCreated)
			writeJSON(w, body)
		default:
			allPlayers, err := s.Players.GetAllPlayers()
			if err != nil {
				http.Error(w, "Failed to get players", http.StatusInternalServerError)
				log.Error("Failed to get players from store", "error", err)
				return
			}
			writeJSON(w, allPlayers)
		}
	}
}

func (s *Server) PlayerStatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := r.URL.Query().Get("playerID")
		if playerID == "" {
			http.Error(w, "playerID is required", http.StatusBadRequest)
			return
		}
		sp := sport.Sport(r.URL.Query().Get("sport"))
		if sp != "" && !sport.IsSupported(sp) {
			http.Error(w, "Unsupported sport", http.StatusBadRequest)
			return
		}

		stats, err := s.Settlement.PlayerStats(playerID, sp)
		if err != nil {
			http.Error(w, "Failed to get player stats", http.StatusInternalServerError)
			log.Error("Failed to get player stats", "error", err, "playerID", playerID)
			return
		}
		writeJSON(w, stats)
	}
}

func (s *Server) LeaderboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sp := sport.Sport(r.URL.Query().Get("sport"))
		if !sport.IsSupported(sp) {
			http.Error(w, "Unsupported sport", http.StatusBadRequest)
			return
		}

		entries, err := s.Players.Leaderboard(sp)
		if err != nil {
			http.Error(w, "Failed to get leaderboard", http.StatusInternalServerError)
			log.Error("Failed to get leaderboard from store", "error", err, "sport", sp)
			return
		}
		writeJSON(w, entries)
	}
}

func (s *Server) CourtsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var court courts.Court
			if err := json.NewDecoder(r.Body).Decode(&court); err != nil {
				http.Error(w, "Invalid JSON", http.StatusBadRequest)
				return
			}
			if court.Name == "" {
				http.Error(w, "Court name is required", http.StatusBadRequest)
				return
			}
			if !sport.IsSupported(court.Sport) {
				http.Error(w, "Unsupported sport", http.StatusBadRequest)
				return
			}
			if court.ID == "" {
				court.ID = uuid.NewString()
			}
			if err := s.Courts.AddCourt(court); err != nil {
				http.Error(w, "Failed to save court", http.StatusInternalServerError)
				log.Error("Failed to add court", "error", err, "court", court.Name)
				return
			}
			w.WriteHeader(http.StatusCreated)
			writeJSON(w, court)
		default:
			allCourts, err := s.Courts.GetAllCourts()
			if err != nil {
				http.Error(w, "Failed to get courts", http.StatusInternalServerError)
				log.Error("Failed to get courts from store", "error", err)
				return
			}
			writeJSON(w, allCourts)
		}
	}
}

func (s *Server) MatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var req settlement.CreateMatchRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "Invalid JSON", http.StatusBadRequest)
				return
			}

			// dry_run settles nothing: respond with the preview instead.
			if isDryRunFromContext(r) {
				preview, err := s.Settlement.Preview(settlement.PreviewRequest{
					Sport:          req.Sport,
					TeamAPlayerIDs: req.TeamAPlayerIDs,
					TeamBPlayerIDs: req.TeamBPlayerIDs,
					Result:         req.Result,
				})
				if err != nil {
					http.Error(w, err.Error(), settlementErrorStatus(err))
					return
				}
				writeJSON(w, preview)
				return
			}

			settled, err := s.Settlement.CreateMatch(req)
			if err != nil {
				http.Error(w, err.Error(), settlementErrorStatus(err))
				return
			}
			w.WriteHeader(http.StatusCreated)
			writeJSON(w, settled)
		default:
			matchID := r.URL.Query().Get("id")
			if matchID != "" {
				m, err := s.Matches.GetMatch(matchID)
				if err != nil {
					http.Error(w, "Failed to get match", http.StatusInternalServerError)
					log.Error("Failed to get match from store", "error", err, "matchID", matchID)
					return
				}
				if m == nil {
					http.Error(w, "Match not found", http.StatusNotFound)
					return
				}
				writeJSON(w, m)
				return
			}

			matches, err := s.Matches.GetAllMatches()
			if err != nil {
				http.Error(w, "Failed to get matches", http.StatusInternalServerError)
				log.Error("Failed to get matches from store", "error", err)
				return
			}
			writeJSON(w, matches)
		}
	}
}

func (s *Server) PreviewMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req settlement.PreviewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		preview, err := s.Settlement.Preview(req)
		if err != nil {
			http.Error(w, err.Error(), settlementErrorStatus(err))
			return
		}
		writeJSON(w, preview)
	}
}

func (s *Server) NotifyResultHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received notify result message", "body", string(bodyBytes))

		var pubsubMsg struct {
			Subscription string `json:"subscription"`
			Message      struct {
				Data string `json:"data"` // base64-encoded message payload
			} `json:"message"`
		}

		if err := json.Unmarshal(bodyBytes, &pubsubMsg); err != nil {
			log.Error("Failed to unmarshal wrapper JSON", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		rawData, err := base64.StdEncoding.DecodeString(pubsubMsg.Message.Data)
		if err != nil {
			log.Error("Failed to decode base64 data", "error", err)
			http.Error(w, "Invalid base64 data", http.StatusBadRequest)
			return
		}
		isDryRun := isDryRunFromContext(r)
		event := settlement.ResultSettledEvent{}
		if err := s.pubsub.ProcessMessage(rawData, &event); err != nil {
			log.Error("Failed to decode settlement event", "error", err)
			http.Error(w, "Invalid message payload", http.StatusBadRequest)
			return
		}
		if event.Match == nil {
			http.Error(w, "Missing match in payload", http.StatusBadRequest)
			return
		}

		names := s.playerNames(append(append([]string{}, event.Match.TeamAPlayerIDs...), event.Match.TeamBPlayerIDs...))
		if err := s.Notifier.SendResultNotification(event.Match, event.EloUpdates, names, isDryRun); err != nil {
			log.Error("Failed to notify result", "error", err, "matchID", event.Match.ID)
			http.Error(w, "Failed to notify result", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}

// playerNames resolves display names for a set of player IDs. A lookup
// failure degrades to raw IDs in the notification, never an error.
func (s *Server) playerNames(ids []string) map[string]string {
	infos, err := s.Players.GetPlayers(ids)
	if err != nil {
		log.Error("Failed to resolve player names", "error", err)
		return nil
	}
	names := make(map[string]string, len(infos))
	for _, info := range infos {
		names[info.ID] = info.Name
	}
	return names
}

// AnnounceLeaderboardHandler posts the current leaderboard for a sport to
// the configured channel. Unlike the slash command, which responds only to
// the invoking user, this pushes to everyone; dry_run skips the post.
func (s *Server) AnnounceLeaderboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		sp := sport.Sport(r.URL.Query().Get("sport"))
		if !sport.IsSupported(sp) {
			http.Error(w, "Unsupported sport", http.StatusBadRequest)
			return
		}

		entries, err := s.Players.Leaderboard(sp)
		if err != nil {
			http.Error(w, "Failed to get leaderboard", http.StatusInternalServerError)
			log.Error("Failed to get leaderboard from store", "error", err, "sport", sp)
			return
		}

		if err := s.Notifier.SendLeaderboard(sp, entries, isDryRunFromContext(r)); err != nil {
			http.Error(w, "Failed to announce leaderboard", http.StatusInternalServerError)
			log.Error("Failed to announce leaderboard", "error", err, "sport", sp)
			return
		}
		w.Write([]byte("OK"))
	}
}

// AnnouncePlayerStatsHandler posts a player's stats to the channel, looked
// up by display name. An unknown name still posts, so whoever triggered the
// announcement sees the miss in the channel.
func (s *Server) AnnouncePlayerStatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		name := strings.TrimSpace(r.URL.Query().Get("name"))
		if name == "" {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}
		sp := sport.Sport(r.URL.Query().Get("sport"))
		if sp == "" {
			sp = sport.Padel
		}
		if !sport.IsSupported(sp) {
			http.Error(w, "Unsupported sport", http.StatusBadRequest)
			return
		}

		isDryRun := isDryRunFromContext(r)
		player, err := s.findPlayerByName(name)
		if err != nil {
			http.Error(w, "Failed to look up player", http.StatusInternalServerError)
			log.Error("Failed to look up player", "error", err, "name", name)
			return
		}
		if player == nil {
			if err := s.Notifier.SendPlayerNotFound(name, isDryRun); err != nil {
				log.Error("Failed to send player-not-found notice", "error", err, "name", name)
			}
			http.Error(w, "Player not found", http.StatusNotFound)
			return
		}

		stats, err := s.Settlement.PlayerStats(player.ID, sp)
		if err != nil {
			http.Error(w, "Failed to get player stats", http.StatusInternalServerError)
			log.Error("Failed to get player stats", "error", err, "playerID", player.ID)
			return
		}
		if err := s.Notifier.SendPlayerStats(stats, player.Name, isDryRun); err != nil {
			http.Error(w, "Failed to announce player stats", http.StatusInternalServerError)
			log.Error("Failed to announce player stats", "error", err, "playerID", player.ID)
			return
		}
		w.Write([]byte("OK"))
	}
}

// respondWithSlackMsg is a helper to format and write a Slack message as an HTTP response.
func respondWithSlackMsg(w http.ResponseWriter, msg slack.Message) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		log.Error("Failed to encode slack message to JSON", "error", err)
	}
}

// parsePlayerStatsText parses the text field from Slack to extract player name and sport.
// Expected formats: "John Doe", "John Doe tennis", "John Doe padel"
func parsePlayerStatsText(text string) (playerName string, sp sport.Sport) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return "", ""
	}

	if len(parts) > 1 {
		last := sport.Sport(strings.ToLower(parts[len(parts)-1]))
		if sport.IsSupported(last) {
			sp = last
			parts = parts[:len(parts)-1]
		}
	}

	return strings.Join(parts, " "), sp
}

func (s *Server) LeaderboardCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}

		sp := sport.Sport(strings.ToLower(strings.TrimSpace(r.FormValue("text"))))
		if sp == "" {
			sp = sport.Padel
		}
		if !sport.IsSupported(sp) {
			http.Error(w, "Unsupported sport", http.StatusBadRequest)
			return
		}

		entries, err := s.Players.Leaderboard(sp)
		if err != nil {
			http.Error(w, "Failed to get leaderboard", http.StatusInternalServerError)
			log.Error("Failed to get leaderboard from store", "error", err, "sport", sp)
			return
		}

		msg, err := s.Notifier.FormatLeaderboardResponse(sp, entries)
		if err != nil {
			http.Error(w, "Failed to format leaderboard", http.StatusInternalServerError)
			log.Error("Failed to format leaderboard", "error", err)
			return
		}

		slackMsg, ok := msg.(slack.Message)
		if !ok {
			http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
			log.Error("Failed to cast message to slack.Message")
			return
		}

		respondWithSlackMsg(w, slackMsg)
	}
}

func (s *Server) PlayerStatsCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}

		playerName, sp := parsePlayerStatsText(r.FormValue("text"))
		if playerName == "" {
			http.Error(w, "Player name is required.", http.StatusBadRequest)
			return
		}
		if sp == "" {
			sp = sport.Padel
		}

		log.Info("Received player stats command", "player", playerName, "sport", sp)
		player, err := s.findPlayerByName(playerName)
		var msg any
		if err != nil || player == nil {
			log.Warn("Could not find player", "player", playerName, "error", err)
			msg, err = s.Notifier.FormatPlayerNotFoundResponse(playerName)
		} else {
			var stats *settlement.PlayerMatchStats
			stats, err = s.Settlement.PlayerStats(player.ID, sp)
			if err != nil {
				http.Error(w, "Failed to get player stats", http.StatusInternalServerError)
				log.Error("Failed to get player stats", "error", err, "playerID", player.ID)
				return
			}
			msg, err = s.Notifier.FormatPlayerStatsResponse(stats, player.Name)
		}

		if err != nil {
			http.Error(w, "Failed to format player stats", http.StatusInternalServerError)
			log.Error("Failed to format player stats", "error", err)
			return
		}

		slackMsg, ok := msg.(slack.Message)
		if !ok {
			http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
			log.Error("Failed to cast message to slack.Message")
			return
		}
		respondWithSlackMsg(w, slackMsg)
	}
}

// findPlayerByName does a case-insensitive name lookup across all players.
func (s *Server) findPlayerByName(name string) (*players.PlayerInfo, error) {
	all, err := s.Players.GetAllPlayers()
	if err != nil {
		return nil, err
	}
	for i := range all {
		if strings.EqualFold(all[i].Name, name) {
			return &all[i], nil
		}
	}
	return nil, nil
}
