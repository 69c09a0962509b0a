package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChain(t *testing.T) {
	appender := func(tag string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Add("X-Order", tag)
				next.ServeHTTP(w, r)
			})
		}
	}
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("X-Order", "handler")
	})

	rr := httptest.NewRecorder()
	Chain(handler, appender("outer"), appender("inner")).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer", "inner", "handler"}, rr.Header().Values("X-Order"))
}

func TestParamsMiddleware_DryRun(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   bool
	}{
		{"dry_run=true is propagated", "/matches?dry_run=true", true},
		{"dry_run=false is a real run", "/matches?dry_run=false", false},
		{"absent param is a real run", "/matches", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got bool
			handler := paramsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = isDryRunFromContext(r)
			}))

			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, tt.target, nil))
			require.Equal(t, tt.want, got)
		})
	}
}

func TestIsDryRunFromContext_WithoutMiddleware(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/matches?dry_run=true", nil)
	assert.False(t, isDryRunFromContext(r), "unwrapped requests should never count as dry runs")
}
