package http

import (
	"net/http"

	"github.com/courtside/courtside/internal/config"
	"github.com/courtside/courtside/internal/courts"
	"github.com/courtside/courtside/internal/match"
	"github.com/courtside/courtside/internal/metrics"
	"github.com/courtside/courtside/internal/notifier"
	"github.com/courtside/courtside/internal/players"
	"github.com/courtside/courtside/internal/pubsub"
	"github.com/courtside/courtside/internal/settlement"
)

func NewServer(playerStore players.PlayerStore, matchStore match.MatchStore, courtStore courts.CourtStore, settlementSvc *settlement.Service, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Players:        playerStore,
		Matches:        matchStore,
		Courts:         courtStore,
		Settlement:     settlementSvc,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/clear", Chain(s.ClearStoreHandler(), paramsMiddleware))
	s.Router.Handle("/players", Chain(s.PlayersHandler(), paramsMiddleware))
	s.Router.Handle("/players/stats", Chain(s.PlayerStatsHandler(), paramsMiddleware))
	s.Router.Handle("/leaderboard", Chain(s.LeaderboardHandler(), paramsMiddleware))
	s.Router.Handle("/courts", Chain(s.CourtsHandler(), paramsMiddleware))
	s.Router.Handle("/matches", Chain(s.MatchesHandler(), paramsMiddleware))
	s.Router.Handle("/matches/preview", Chain(s.PreviewMatchHandler(), paramsMiddleware))
	// The push endpoint is named after the subscription's event type so the
	// topic-to-endpoint mapping stays obvious.
	s.Router.Handle("/"+string(pubsub.EventNotifyResult), Chain(s.NotifyResultHandler(), paramsMiddleware))
	s.Router.Handle("/announce/leaderboard", Chain(s.AnnounceLeaderboardHandler(), paramsMiddleware))
	s.Router.Handle("/announce/player-stats", Chain(s.AnnouncePlayerStatsHandler(), paramsMiddleware))
	s.Router.Handle("/slack/command/leaderboard", Chain(s.LeaderboardCommandHandler(), paramsMiddleware))
	s.Router.Handle("/slack/command/player-stats", Chain(s.PlayerStatsCommandHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
