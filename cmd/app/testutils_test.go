package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sushihentaime/blogpages/internal/blogservice"
	"github.com/sushihentaime/blogpages/internal/common"
	"github.com/sushihentaime/blogpages/internal/userservice"
)

type noopProducer struct{}

func (noopProducer) Publish(ctx context.Context, msg []byte, key common.BindingKey, exchange common.Exchange) error {
	return nil
}

func newTestApplication(t *testing.T, cfg *Config) *application {
	db := common.TestDB("file://../../migrations", t)
	cache := common.NewCache(5*time.Minute, 10*time.Minute)

	return &application{
		config:      cfg,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		userService: userservice.NewUserService(db, noopProducer{}, cfg.TokenSecret, cfg.TokenExpiry),
		blogService: blogservice.NewBlogService(db, cache, cfg.ArticleMinLength),
	}
}

func testConfig() *Config {
	return &Config{
		Environment:      "test",
		TokenSecret:      "test-secret-key",
		TokenExpiry:      time.Hour,
		ArticleMinLength: 50,
		LimiterEnabled:   false,
	}
}

type testServer struct {
	*httptest.Server
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return &testServer{srv}
}

// do issues a request against the test server and decodes the JSON response
// envelope. An empty token leaves the request unauthenticated.
func (ts *testServer) do(t *testing.T, method, path, token string, body any) (int, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("could not encode request body: %v", err)
		}
	}

	req, err := http.NewRequest(method, ts.URL+path, &buf)
	if err != nil {
		t.Fatalf("could not create request: %v", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatalf("could not send request: %v", err)
	}
	defer res.Body.Close()

	var payload envelope
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
		t.Fatalf("could not decode response body: %v", err)
	}

	return res.StatusCode, payload
}

// signupUser registers a user and returns the bearer token and user id.
func (ts *testServer) signupUser(t *testing.T, firstName, email string) (string, int) {
	t.Helper()

	status, body := ts.do(t, http.MethodPost, "/user/signup", "", map[string]any{
		"firstName": firstName,
		"lastName":  "Tester",
		"email":     email,
		"password":  "password123",
	})
	if status != http.StatusOK {
		t.Fatalf("signup failed with status %d: %s", status, body.JSON())
	}

	token := body["token"].(map[string]any)["token"].(string)
	userID := int(body["user"].(map[string]any)["id"].(float64))

	return token, userID
}
