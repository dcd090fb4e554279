package main

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAuthenticateMiddleware(t *testing.T) {
	app := newTestApplication(t, testConfig())
	ts := newTestServer(t, app.routes())

	token, _ := ts.signupUser(t, "Alice", "alice@example.com")

	t.Run("missing token on a protected route", func(t *testing.T) {
		status, body := ts.do(t, http.MethodGet, "/user/list", "", nil)

		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "you must be authenticated to access this resource", body["message"])
	})

	t.Run("tampered token", func(t *testing.T) {
		status, body := ts.do(t, http.MethodGet, "/user/list", token+"x", nil)

		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "invalid or missing authentication token", body["message"])
	})

	t.Run("valid token", func(t *testing.T) {
		status, _ := ts.do(t, http.MethodGet, "/user/list", token, nil)

		assert.Equal(t, http.StatusOK, status)
	})

	t.Run("public routes work without a token", func(t *testing.T) {
		status, _ := ts.do(t, http.MethodGet, "/blogs/all", "", nil)

		assert.Equal(t, http.StatusOK, status)
	})
}

func TestExpiredToken(t *testing.T) {
	cfg := testConfig()
	cfg.TokenExpiry = -time.Minute

	app := newTestApplication(t, cfg)
	ts := newTestServer(t, app.routes())

	token, _ := ts.signupUser(t, "Alice", "alice@example.com")

	status, body := ts.do(t, http.MethodGet, "/user/list", token, nil)

	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "invalid or missing authentication token", body["message"])
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.LimiterEnabled = true
	cfg.LimiterRPS = 2
	cfg.LimiterBurst = 4

	app := newTestApplication(t, cfg)
	ts := newTestServer(t, app.routes())

	var limited bool
	for i := 0; i < 8; i++ {
		status, _ := ts.do(t, http.MethodGet, "/blogs/all", "", nil)
		if status == http.StatusTooManyRequests {
			limited = true
			break
		}
	}

	assert.True(t, limited, "expected at least one request to be rate limited")
}
