package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	srv := httptest.NewServer(Handler(log))
	t.Cleanup(srv.Close)
	return srv
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestServesCalculatorPage(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/", "/index.html"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		page, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		require.NoError(t, err)

		// The page carries its own evaluator with the engine's error
		// strings, so it works without any backend.
		assert.Contains(t, string(page), "TI-CAL")
		assert.Contains(t, string(page), "ERROR: SYNTAX")
		assert.Contains(t, string(page), "ERROR: DIVIDE BY 0")
	}
}

func TestPageNumberFormatting(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	page, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	// The page's formatter may strip trailing zeros only after a decimal
	// point; an unanchored strip would rewrite an integer rendering like
	// 2000000000 down to 2.
	assert.Contains(t, string(page), `(\.\d*?)0+($|e)`)
	assert.NotContains(t, string(page), `\.?0+$`)
}

func TestUnknownPathIs404(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/nope.html")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}
