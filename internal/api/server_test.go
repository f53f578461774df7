package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/storage"
)

func newTestServer(t *testing.T, scores ...int) (*Server, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for _, s := range scores {
		if _, err := store.SaveScore("runner", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	return NewServer(store, "runner", nil), store
}

func get(t *testing.T, h http.Handler, target string, out any) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if out != nil && w.Code == http.StatusOK {
		if ct := w.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		if err := json.NewDecoder(w.Body).Decode(out); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
	}
	return w.Code
}

func TestHealthEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	var resp HealthResponse
	if code := get(t, server.Routes(), "/healthz", &resp); code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", code)
	}
	if resp.Status != "ok" {
		t.Errorf("status = %q", resp.Status)
	}
}

func TestHighScoreEndpoint(t *testing.T) {
	server, store := newTestServer(t, 40, 90, 10)
	h := server.Routes()

	var resp HighScoreResponse
	get(t, h, "/api/highscore", &resp)
	if resp.GameID != "runner" || resp.HighScore != 90 {
		t.Errorf("response = %+v", resp)
	}

	// The session high score counts even when no run reached it.
	store.SetHighScore("runner", 150)
	get(t, h, "/api/highscore", &resp)
	if resp.HighScore != 150 {
		t.Errorf("HighScore = %d, expected 150", resp.HighScore)
	}
}

func TestScoresEndpoint(t *testing.T) {
	server, _ := newTestServer(t, 40, 90, 10, 70)
	h := server.Routes()

	var resp ScoresResponse
	if code := get(t, h, "/api/scores?limit=3", &resp); code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", code)
	}
	if resp.Order != "top" || len(resp.Runs) != 3 {
		t.Fatalf("response = %+v", resp)
	}
	for i, want := range []int{90, 70, 40} {
		if resp.Runs[i].Score != want || resp.Runs[i].Rank != i+1 {
			t.Errorf("runs[%d] = %+v, expected score %d", i, resp.Runs[i], want)
		}
		if resp.Runs[i].RunID == "" {
			t.Errorf("runs[%d] has no run id", i)
		}
	}

	get(t, h, "/api/scores?order=recent&limit=2", &resp)
	if resp.Order != "recent" || len(resp.Runs) != 2 || resp.Runs[0].Score != 70 {
		t.Errorf("recent response = %+v", resp)
	}
}

func TestScoresEndpointRejectsBadQuery(t *testing.T) {
	server, _ := newTestServer(t)
	h := server.Routes()

	for _, target := range []string{"/api/scores?limit=abc", "/api/scores?limit=0", "/api/scores?order=worst"} {
		if code := get(t, h, target, nil); code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, expected 400", target, code)
		}
	}
}

func TestStatsEndpoint(t *testing.T) {
	server, _ := newTestServer(t)
	h := server.Routes()

	var resp StatsResponse
	get(t, h, "/api/stats", &resp)
	if resp.Runs != 0 || resp.LastPlayed != nil {
		t.Errorf("empty stats = %+v", resp)
	}

	server, _ = newTestServer(t, 10, 30)
	get(t, server.Routes(), "/api/stats", &resp)
	if resp.Runs != 2 || resp.HighScore != 30 || resp.AvgScore != 20 || resp.TotalScore != 40 || resp.LastPlayed == nil {
		t.Errorf("stats = %+v", resp)
	}
}

// brokenReader fails every query.
type brokenReader struct{}

var errBroken = errors.New("disk I/O error")

func (brokenReader) HighScore(string) (int, error) { return 0, errBroken }
func (brokenReader) TopScores(string, int) ([]storage.ScoreEntry, error) {
	return nil, errBroken
}
func (brokenReader) RecentScores(string, int) ([]storage.ScoreEntry, error) {
	return nil, errBroken
}
func (brokenReader) GetGameStats(string) (*storage.GameStats, error) { return nil, errBroken }

func TestStoreErrorsAreHidden(t *testing.T) {
	var buf bytes.Buffer
	h := NewServer(brokenReader{}, "runner", log.New(&buf)).Routes()

	for _, target := range []string{"/api/highscore", "/api/scores", "/api/stats"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("%s: status = %d, expected 500", target, w.Code)
		}
		if strings.Contains(w.Body.String(), "disk") {
			t.Errorf("%s: internal error leaked: %s", target, w.Body.String())
		}
	}
	if !strings.Contains(buf.String(), "disk I/O error") {
		t.Error("errors should be logged")
	}
}

func TestUnknownRoute(t *testing.T) {
	server, _ := newTestServer(t)
	if code := get(t, server.Routes(), "/api/nope", nil); code != http.StatusNotFound {
		t.Errorf("status = %d, expected 404", code)
	}
}
