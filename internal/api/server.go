// Package api serves the run history over HTTP for leaderboards and health checks.
package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vovakirdan/tui-runner/internal/storage"
)

// maxLimit caps how many runs one request may list.
const maxLimit = 100

// ScoreReader is the read side of the score store.
type ScoreReader interface {
	HighScore(gameID string) (int, error)
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	RecentScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
}

// Server handles HTTP requests for one game's scores.
type Server struct {
	scores    ScoreReader
	gameID    string
	logger    *log.Logger
	startTime time.Time
}

// NewServer creates a new API server. logger may be nil.
func NewServer(scores ScoreReader, gameID string, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Server{
		scores:    scores,
		gameID:    gameID,
		logger:    logger,
		startTime: time.Now(),
	}
}

// Routes sets up the HTTP routes.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/highscore", s.handleHighScore)
		r.Get("/scores", s.handleScores)
		r.Get("/stats", s.handleStats)
	})

	return r
}

// requestLogger logs each request once it completes.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// HealthResponse is returned by /healthz.
type HealthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

// HighScoreResponse is returned by /api/highscore.
type HighScoreResponse struct {
	GameID    string `json:"game_id"`
	HighScore int    `json:"high_score"`
}

// RunResponse is one run in /api/scores.
type RunResponse struct {
	Rank      int       `json:"rank"`
	RunID     string    `json:"run_id"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// ScoresResponse is returned by /api/scores.
type ScoresResponse struct {
	GameID string        `json:"game_id"`
	Order  string        `json:"order"`
	Runs   []RunResponse `json:"runs"`
}

// StatsResponse is returned by /api/stats.
type StatsResponse struct {
	GameID     string     `json:"game_id"`
	Runs       int        `json:"runs"`
	HighScore  int        `json:"high_score"`
	AvgScore   float64    `json:"avg_score"`
	TotalScore int64      `json:"total_score"`
	LastPlayed *time.Time `json:"last_played,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Uptime: time.Since(s.startTime).Round(time.Second).String(),
	})
}

func (s *Server) handleHighScore(w http.ResponseWriter, r *http.Request) {
	high, err := s.scores.HighScore(s.gameID)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, HighScoreResponse{GameID: s.gameID, HighScore: high})
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			s.writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxLimit)
	}

	order := r.URL.Query().Get("order")
	var (
		entries []storage.ScoreEntry
		err     error
	)
	switch order {
	case "", "top":
		order = "top"
		entries, err = s.scores.TopScores(s.gameID, limit)
	case "recent":
		entries, err = s.scores.RecentScores(s.gameID, limit)
	default:
		s.writeError(w, http.StatusBadRequest, "order must be top or recent")
		return
	}
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	resp := ScoresResponse{GameID: s.gameID, Order: order, Runs: make([]RunResponse, len(entries))}
	for i, e := range entries {
		resp.Runs[i] = RunResponse{Rank: i + 1, RunID: e.RunID, Score: e.Score, CreatedAt: e.CreatedAt}
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.scores.GetGameStats(s.gameID)
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	resp := StatsResponse{
		GameID:     stats.GameID,
		Runs:       stats.RunsCount,
		HighScore:  stats.HighScore,
		AvgScore:   stats.AvgScore,
		TotalScore: stats.TotalScore,
	}
	if !stats.LastPlayed.IsZero() {
		resp.LastPlayed = &stats.LastPlayed
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// writeJSON writes a JSON response with proper headers.
func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("could not encode response", "error", err)
	}
}

// writeError writes an error response.
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

// internalError logs err and hides it from the client.
func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("request failed", "path", r.URL.Path, "request_id", middleware.GetReqID(r.Context()), "error", err)
	s.writeError(w, http.StatusInternalServerError, "internal error")
}
