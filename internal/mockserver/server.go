// Package mockserver serves canned fantasy-cricket data over the same REST
// surface as the real backend, for local development and tests.
package mockserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

// Server answers the cricket API from canned data.
type Server struct {
	logger zerolog.Logger
	now    func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures a Server
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// WithSeed makes the randomized counters reproducible.
func WithSeed(seed uint64) Option {
	return func(s *Server) {
		s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// New creates a Server
func New(opts ...Option) *Server {
	s := &Server{
		logger: zerolog.Nop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		seed := uint64(s.now().UnixNano())
		s.rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return s
}

// Handler returns the router with every endpoint mounted under /api.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(s.logRequests)

	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", s.handleChat)
		r.Get("/quick-actions/{action}", s.handleQuickAction)
		r.Get("/live-stats", s.handleLiveStats)
		r.Get("/match-analysis", s.handleMatchAnalysis)
		r.Get("/matches", s.handleMatches)
		r.Get("/health", s.handleHealth)
	})
	return r
}

// ListenAndServe serves on addr until ctx ends.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", addr).Msg("mock backend listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down: %w", err)
		}
		return nil
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) intn(lo, hi int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo + s.rng.IntN(hi-lo+1)
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "No message provided")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"response":  Reply(req.Message),
		"timestamp": s.now().Format(time.RFC3339),
	})
}

// Reply picks the canned answer for a chat message.
func Reply(message string) string {
	lower := strings.ToLower(message)
	for _, rule := range replies {
		if matches(lower, rule.keywords, rule.anyOf) {
			return rule.text
		}
	}
	return fmt.Sprintf(defaultReplyFormat, message)
}

func matches(text string, keywords []string, anyOf bool) bool {
	for _, k := range keywords {
		found := strings.Contains(text, k)
		if anyOf && found {
			return true
		}
		if !anyOf && !found {
			return false
		}
	}
	return !anyOf
}

func (s *Server) handleQuickAction(w http.ResponseWriter, r *http.Request) {
	action := chi.URLParam(r, "action")
	data, ok := quickActionData[action]
	if !ok {
		writeError(w, http.StatusBadRequest, "Unknown action")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": data})
}

func (s *Server) handleLiveStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"stats": map[string]int{
			"active_users":  s.intn(15000, 25000),
			"teams_created": s.intn(45000, 65000),
			"success_rate":  s.intn(68, 85),
			"live_contests": s.intn(150, 300),
		},
	})
}

func (s *Server) handleMatchAnalysis(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"analysis": map[string]any{
			"weather": map[string]string{
				"temperature": fmt.Sprintf("%d°C", s.intn(25, 35)),
				"wind_speed":  fmt.Sprintf("%d km/h", s.intn(10, 25)),
				"humidity":    fmt.Sprintf("%d%%", s.intn(45, 75)),
			},
			"pitch": map[string]int{
				"batting_friendly": s.intn(60, 85),
				"pace_support":     s.intn(70, 90),
				"spin_support":     s.intn(65, 85),
			},
		},
	})
}

func (s *Server) handleMatches(w http.ResponseWriter, _ *http.Request) {
	now := s.now()
	writeJSON(w, http.StatusOK, map[string]any{
		"matches": []matchCard{
			{
				Name:   "Mumbai Indians vs Chennai Super Kings",
				Venue:  "Wankhede Stadium, Mumbai",
				Status: "Live",
				Score:  strPtr("MI: 156/4 (18.2) vs CSK: 145/6 (20)"),
				Time:   now.Format("15:04"),
			},
			{
				Name:   "Royal Challengers Bangalore vs Kolkata Knight Riders",
				Venue:  "M. Chinnaswamy Stadium, Bangalore",
				Status: "Upcoming",
				Time:   now.Add(4 * time.Hour).Format("15:04"),
			},
			{
				Name:   "Delhi Capitals vs Rajasthan Royals",
				Venue:  "Arun Jaitley Stadium, Delhi",
				Status: "Concluded",
				Score:  strPtr("DC: 189/6 (20) beat RR: 142/9 (20)"),
				Time:   now.Add(-2 * time.Hour).Format("15:04"),
			},
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": s.now().Format(time.RFC3339),
		"ai_status": map[string]bool{
			"openai":    false,
			"anthropic": false,
		},
	})
}
