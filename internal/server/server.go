// Package server provides the HTTP REST API for the career advisor.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rithwika/career-advisor/internal/app"
	"github.com/rithwika/career-advisor/internal/config"
	"github.com/rithwika/career-advisor/internal/server/middleware"
	"github.com/rithwika/career-advisor/internal/server/ratelimit"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	advisor     app.Advisor
	sessions    *SessionStore
	tokens      *TokenService
	rateLimiter *ratelimit.Limiter
}

// Config holds server configuration
type Config struct {
	Port    int
	Session *config.SessionConfig
}

// New creates a new server instance
func New(cfg Config, advisor app.Advisor) (*Server, error) {
	if cfg.Session == nil {
		sessionCfg, err := config.NewSessionConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create session config: %w", err)
		}
		cfg.Session = sessionCfg
	}

	s := &Server{
		advisor:     advisor,
		sessions:    NewSessionStore(),
		tokens:      NewTokenService(cfg.Session),
		rateLimiter: ratelimit.NewLimiter(ratelimit.LoadConfig()),
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.router()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Long timeout for model calls and SSE streams
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// router assembles public and session-scoped routes.
func (s *Server) router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("GET /health", s.handleHealth)

	auth := middleware.AuthMiddleware(s.tokens.AsTokenValidator())
	protect := func(h http.HandlerFunc) http.Handler { return auth(h) }

	mux.Handle("POST /logout", protect(s.handleLogout))
	mux.Handle("GET /state", protect(s.handleState))
	mux.Handle("POST /navigate", protect(s.handleNavigate))
	mux.Handle("POST /analyze", protect(s.handleAnalyze))
	mux.Handle("POST /analyze/upload", protect(s.handleAnalyzeUpload))
	mux.Handle("POST /reset", protect(s.handleReset))
	mux.Handle("POST /jobs/select", protect(s.handleSelectJob))
	mux.Handle("GET /insights", protect(s.handleInsights))
	mux.Handle("POST /resources/toggle", protect(s.handleToggleResource))
	mux.Handle("GET /progress", protect(s.handleProgress))
	mux.Handle("POST /theme/toggle", protect(s.handleToggleTheme))
	mux.Handle("POST /chat", protect(s.handleChat))
	mux.Handle("GET /export/job", protect(s.handleExportJob))

	return mux
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Println("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	err := g.Wait()

	// Stop rate limiter cleanup goroutine
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	log.Println("Server stopped")
	return err
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// For MVP, this uses the IP address from RemoteAddr.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
