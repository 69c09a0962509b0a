package http

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"
)

// Middleware wraps a handler with cross-cutting behavior.
type Middleware func(http.Handler) http.Handler

// Chain wraps h with the given middlewares, outermost first, so
// Chain(h, a, b) runs a, then b, then h.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// ctxKey keeps request-scoped values from colliding with other packages.
type ctxKey string

const dryRunCtxKey ctxKey = "dryRun"

// paramsMiddleware logs every request and interprets the shared query
// parameters: verbose=true bumps the log level for the duration of the
// handler, and dry_run=true is stashed in the context for handlers that
// support write-free execution (POST /matches previews instead of
// settling, /notify-result and /announce/* skip the Slack post).
func paramsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Info("incoming request", "method", r.Method, "url", r.URL.String())

		if r.URL.Query().Get("verbose") == "true" {
			prev := log.GetLevel()
			log.SetLevel(log.DebugLevel)
			// Restores the level once the handler returns; goroutines that
			// outlive the request go back to the normal level with it.
			defer log.SetLevel(prev)
		}

		dryRun := r.URL.Query().Get("dry_run") == "true"
		ctx := context.WithValue(r.Context(), dryRunCtxKey, dryRun)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// isDryRunFromContext reports whether the request carries dry_run=true.
// Requests that never went through paramsMiddleware count as real runs.
func isDryRunFromContext(r *http.Request) bool {
	dryRun, ok := r.Context().Value(dryRunCtxKey).(bool)
	return ok && dryRun
}
