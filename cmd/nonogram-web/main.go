package main

import (
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	httpadapter "github.com/daniel-ldg/simple-nonogram-solver/internal/adapters/http"
	"github.com/daniel-ldg/simple-nonogram-solver/internal/config"
	"github.com/daniel-ldg/simple-nonogram-solver/internal/hint"
	"github.com/daniel-ldg/simple-nonogram-solver/internal/infrastructure/storage"
	"github.com/daniel-ldg/simple-nonogram-solver/internal/ports"
	"github.com/daniel-ldg/simple-nonogram-solver/internal/solver"
	"github.com/daniel-ldg/simple-nonogram-solver/internal/usecase"
	"github.com/daniel-ldg/simple-nonogram-solver/internal/validator"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration in a human-readable format.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		dur := time.Since(start)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", dur.Round(time.Millisecond),
		)
	})
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config error", "err", err)
		os.Exit(1)
	}

	lvl := slog.LevelInfo
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))

	// Choose solver: pooled by default, inline line solves via config.
	solverCfg := solver.Config{
		MaxIterations: cfg.Solver.MaxIterations,
		Workers:       cfg.Solver.Workers,
	}
	var s ports.Solver
	if cfg.Solver.Parallel {
		f := solver.NewParallel(solverCfg, nil)
		defer f.Close()
		s = f
	} else {
		s = solver.New(solverCfg)
	}

	// Choose storage backend: fs JSON files by default, sqlite via config.
	var st ports.Storage
	switch strings.ToLower(strings.TrimSpace(cfg.Storage.Backend)) {
	case "sqlite":
		db, err := storage.OpenSQLite(cfg.Storage.Path, cfg.Storage.Migrations)
		if err != nil {
			logger.Error("storage error", "err", err)
			os.Exit(1)
		}
		defer db.Close()
		st = db
	default:
		_ = os.MkdirAll(cfg.Storage.Path, 0o755)
		st = storage.NewFS(cfg.Storage.Path)
	}

	// Wire providers → use cases → HTTP adapter
	v := validator.New()
	hin := hint.NewForcedCell(solver.NewForcedCellSolver())
	uc := usecase.NewService(s, v, hin, st)
	h := httpadapter.New(uc)

	mux := http.NewServeMux()
	h.Register(mux)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening",
		"addr", cfg.Server.Addr,
		"storage", cfg.Storage.Backend,
		"parallel", cfg.Solver.Parallel,
	)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
