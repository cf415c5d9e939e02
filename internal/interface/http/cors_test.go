package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/soulmatch/internal/infra/config"
)

func TestOriginPolicy(t *testing.T) {
	open := newOriginPolicy(nil)
	require.Equal(t, "*", open.allowOrigin("https://any.example"))

	wildcard := newOriginPolicy([]string{"https://a.example", "*"})
	require.Equal(t, "*", wildcard.allowOrigin(""))

	strict := newOriginPolicy([]string{" https://Soulmatch.example "})
	require.Equal(t, "https://soulmatch.example", strict.allowOrigin("https://soulmatch.example"))
	require.Equal(t, "", strict.allowOrigin("https://evil.example"))
	require.Equal(t, "", strict.allowOrigin(""))
}

func TestRouter_CORSRejectsUnknownOrigin(t *testing.T) {
	r := newRouterUnderTest(t, func(cfg *config.Config) {
		cfg.HTTP.AllowedOrigins = []string{"https://soulmatch.example"}
	})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()
	r.server.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, "Origin", rec.Header().Get("Vary"))
}
