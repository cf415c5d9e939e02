package http

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/soulmatch/internal/infra/config"
)

func flakyHandler(failures int, calls *int, bodies *[]string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		data, _ := io.ReadAll(r.Body)
		*bodies = append(*bodies, string(data))
		if *calls <= failures {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}

func TestWithRetry_ReplaysBody(t *testing.T) {
	var calls int
	var bodies []string
	handler := withRetry(flakyHandler(2, &calls, &bodies), config.RetryConfig{Enabled: true, MaxAttempts: 3}, newTestLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/compatibility", bytes.NewBufferString(`{"x":1}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
	require.Equal(t, 3, calls)
	require.Equal(t, []string{`{"x":1}`, `{"x":1}`, `{"x":1}`}, bodies)
}

func TestWithRetry_SkipsExcludedAndGet(t *testing.T) {
	cfg := config.RetryConfig{Enabled: true, MaxAttempts: 3, Exclude: []string{"/api/v1/charts"}}

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/charts"},
		{http.MethodPost, "/api/v1/charts/abc"},
		{http.MethodGet, "/api/v1/predictions/ashwini"},
	} {
		var calls int
		var bodies []string
		handler := withRetry(flakyHandler(5, &calls, &bodies), cfg, newTestLogger())
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		require.Equal(t, http.StatusBadGateway, rec.Code, tc.path)
		require.Equal(t, 1, calls, tc.path)
	}
}

func TestExcluded(t *testing.T) {
	require.True(t, excluded("/api/v1/charts", []string{"/api/v1/charts"}))
	require.True(t, excluded("/api/v1/charts/1", []string{"/api/v1/charts/"}))
	require.False(t, excluded("/api/v1/chartsx", []string{"/api/v1/charts"}))
	require.False(t, excluded("/api/v1/horoscopes", nil))
}
