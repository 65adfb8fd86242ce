// Package main implements the whentz web server: a JSON API for converting
// natural-language time strings between timezones.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"sync"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/codeGROOVE-dev/whenTZ/pkg/tzconvert"
	"github.com/codeGROOVE-dev/whenTZ/pkg/whentz"
	"github.com/maypok86/otter/v2"
)

var (
	port    = flag.String("port", "8080", "Port for web server (or set PORT)")
	verbose = flag.Bool("verbose", false, "Enable verbose logging")
	version = flag.Bool("version", false, "Show version")
)

type rateLimiter struct {
	requests map[string][]time.Time
	mu       sync.Mutex
}

func newRateLimiter() *rateLimiter {
	return &rateLimiter{
		requests: make(map[string][]time.Time),
	}
}

func (rl *rateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-time.Minute)

	var valid []time.Time
	for _, t := range rl.requests[ip] {
		if t.After(cutoff) {
			valid = append(valid, t)
		}
	}

	// Rate limit: 60 requests per minute per IP
	if len(valid) >= 60 {
		rl.requests[ip] = valid
		return false
	}

	rl.requests[ip] = append(valid, now)
	return true
}

type server struct {
	converter *whentz.Converter
	cache     *otter.Cache[string, whentz.Result]
	limiter   *rateLimiter
	logger    *slog.Logger
	now       func() time.Time
}

func main() {
	flag.Parse()

	if *version {
		fmt.Println("whenTZ Server v1.0.0")
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if env := os.Getenv("PORT"); env != "" && *port == "8080" {
		*port = env
	}

	logger.Info("Server configuration", "port", *port, "verbose", *verbose)

	// Conversions depend on "today" when the input carries no date, so the
	// cache key includes the civil date and entries expire well before any
	// date rollover could matter.
	cache := otter.Must(&otter.Options[string, whentz.Result]{
		MaximumSize:      10_000,
		InitialCapacity:  1_000,
		ExpiryCalculator: otter.ExpiryWriting[string, whentz.Result](time.Hour),
	})

	srv := newServer(logger, cache, time.Now)

	httpSrv := &http.Server{
		Addr:              ":" + *port,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "port", *port)
		if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		logger.Error("Shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}

func newServer(logger *slog.Logger, cache *otter.Cache[string, whentz.Result], now func() time.Time) *server {
	return &server{
		converter: whentz.New(whentz.WithLogger(logger), whentz.WithNow(now)),
		cache:     cache,
		limiter:   newRateLimiter(),
		logger:    logger,
		now:       now,
	}
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/convert", s.handleConvert)
	mux.HandleFunc("GET /api/convert", s.handleConvert)
	mux.HandleFunc("GET /api/zones", s.handleZones)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	return s.wrap(mux)
}

func (s *server) wrap(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				const size = 64 << 10
				buf := make([]byte, size)
				buf = buf[:runtime.Stack(buf, false)]
				s.logger.Error("PANIC: Request handler crashed",
					"error", err,
					"path", r.URL.Path,
					"method", r.Method,
					"client_ip", clientIP(r),
					"stack", string(buf))
				http.Error(w, "Internal server error", http.StatusInternalServerError)
			}
		}()

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		if strings.HasPrefix(r.URL.Path, "/api/") {
			w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
		}

		handler.ServeHTTP(w, r)
	})
}

func (s *server) handleConvert(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ip := clientIP(r)

	if !s.limiter.allow(ip) {
		s.logger.Warn("Rate limit exceeded", "client_ip", ip)
		http.Error(w, "Too many requests", http.StatusTooManyRequests)
		return
	}

	req, err := decodeRequest(r)
	if err != nil {
		s.logger.Debug("Bad convert request", "client_ip", ip, "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	key := fmt.Sprintf("%s|%s|%s|%s",
		s.now().UTC().Format("2006-01-02"), req.InputTime, req.SourceTimezone, req.TargetTimezone)

	result, cached := s.cache.GetIfPresent(key)
	if !cached {
		result = s.converter.Convert(req.InputTime, req.SourceTimezone, req.TargetTimezone)
		s.cache.Set(key, result)
	}

	s.logger.Info("Conversion request",
		"client_ip", ip,
		"input", req.InputTime,
		"source", req.SourceTimezone,
		"target", req.TargetTimezone,
		"success", result.Success,
		"cached", cached,
		"duration_ms", time.Since(start).Milliseconds())

	writeJSON(w, s.logger, result)
}

func (s *server) handleZones(w http.ResponseWriter, r *http.Request) {
	if !s.limiter.allow(clientIP(r)) {
		http.Error(w, "Too many requests", http.StatusTooManyRequests)
		return
	}
	writeJSON(w, s.logger, tzconvert.CommonZones(s.now()))
}

func (s *server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "ok")
}

// decodeRequest accepts either a JSON body (POST) or query parameters (GET).
func decodeRequest(r *http.Request) (whentz.Request, error) {
	var req whentz.Request
	if r.Method == http.MethodPost {
		if err := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 4096)).Decode(&req); err != nil {
			return req, fmt.Errorf("invalid JSON body: %w", err)
		}
	} else {
		q := r.URL.Query()
		req.InputTime = q.Get("input")
		req.SourceTimezone = q.Get("source")
		req.TargetTimezone = q.Get("target")
	}

	if strings.TrimSpace(req.InputTime) == "" {
		return req, errors.New("inputTime is required")
	}
	if req.SourceTimezone == "" {
		req.SourceTimezone = "UTC"
	}
	if req.TargetTimezone == "" {
		req.TargetTimezone = "UTC"
	}
	return req, nil
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Response encoding failed", "error", err)
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
