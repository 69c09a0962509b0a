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

type Server struct {
	Players        players.PlayerStore
	Matches        match.MatchStore
	Courts         courts.CourtStore
	Settlement     *settlement.Service
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}
