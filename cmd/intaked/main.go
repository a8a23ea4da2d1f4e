package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hazyhaar/intake/config"
	"github.com/hazyhaar/intake/middleware"
	"github.com/hazyhaar/intake/pipeline"
)

func main() {
	configPath := env("CONFIG", "intake.yaml")
	mcpTransport := env("MCP_TRANSPORT", "")
	logLevel := env("LOG_LEVEL", "")

	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("config", "error", err)
		os.Exit(1)
	}
	if logLevel == "" {
		logLevel = cfg.Logging.Level
	}
	if addr := os.Getenv("ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}

	// Logging. In stdio MCP mode stdout carries the protocol, so logs go
	// to stderr.
	var lvl slog.Level
	switch logLevel {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	logOut := os.Stdout
	if mcpTransport == "stdio" {
		logOut = os.Stderr
	}
	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)

	// Signal context.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	pipe := pipeline.New(pipeline.Config{
		IntentRules: cfg.Intents,
		Logger:      logger,
	})

	// Stdio MCP mode: the process is the MCP server, no HTTP listener.
	if mcpTransport == "stdio" {
		mcpSrv := mcp.NewServer(&mcp.Implementation{
			Name:    "intake",
			Version: "1.0.0",
		}, nil)
		pipe.RegisterMCP(mcpSrv)

		slog.Info("MCP stdio starting")
		if err := mcpSrv.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
			slog.Error("MCP stdio", "error", err)
			os.Exit(1)
		}
		return
	}

	rl := middleware.NewRateLimiter(middleware.RateLimitConfig{
		PerSecond: cfg.Limits.RatePerSecond,
		Burst:     cfg.Limits.RateBurst,
	}, "/health")
	rl.StartGC(ctx.Done())

	// HTTP server.
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           newRouter(pipe, cfg, rl),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown", "error", err)
	}
	slog.Info("server stopped")
}

func newRouter(pipe *pipeline.Pipeline, cfg *config.Config, rl *middleware.RateLimiter) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.SecurityHeaders(middleware.DefaultHeaders()))
	r.Use(middleware.RequestID)
	r.Use(middleware.MaxBody(cfg.Limits.MaxBodyBytes))
	r.Use(rl.Middleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, 200, map[string]string{"status": "ok"})
	})

	r.Post("/api/documents", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Content    string `json:"content"`
			FormatHint string `json:"format_hint"`
			FileName   string `json:"file_name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, 400, err)
			return
		}
		if req.Content == "" {
			writeError(w, 400, fmt.Errorf("content required"))
			return
		}
		res, err := pipe.Process(r.Context(), pipeline.Submission{
			Content:    req.Content,
			FormatHint: req.FormatHint,
			FileName:   req.FileName,
		})
		if err != nil {
			switch {
			case errors.Is(err, pipeline.ErrBusy):
				w.Header().Set("Retry-After", "1")
				writeError(w, 429, err)
			default:
				writeError(w, 500, err)
			}
			return
		}
		writeJSON(w, 201, res)
	})

	r.Get("/api/history", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, 200, pipe.History())
	})

	r.Delete("/api/history", func(w http.ResponseWriter, _ *http.Request) {
		pipe.ClearHistory()
		writeJSON(w, 200, map[string]string{"status": "cleared"})
	})

	r.Get("/api/stats", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, 200, pipe.Stats())
	})

	r.Get("/api/formats", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, 200, map[string]any{"formats": pipe.Formats()})
	})

	r.Get("/api/samples", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, 200, pipeline.Samples())
	})

	r.Post("/api/samples/{key}", func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")
		sample, ok := pipeline.Sample(key)
		if !ok {
			writeError(w, 404, fmt.Errorf("unknown sample %q", key))
			return
		}
		res, err := pipe.Process(r.Context(), pipeline.Submission{
			Content:    sample.Content,
			FormatHint: sample.FormatHint,
			FileName:   sample.FileName,
		})
		if err != nil {
			switch {
			case errors.Is(err, pipeline.ErrBusy):
				w.Header().Set("Retry-After", "1")
				writeError(w, 429, err)
			default:
				writeError(w, 500, err)
			}
			return
		}
		writeJSON(w, 201, res)
	})

	return r
}

// --- Helpers ---

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}
