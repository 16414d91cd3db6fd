package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IronWill79/chirpy/internal/auth"
	"github.com/IronWill79/chirpy/internal/metrics"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

type apiConfig struct {
	fileserverHits    metrics.Counter
	log               *slog.Logger
	jwtSecret         string
	adminPasswordHash string
	adminID           uuid.UUID
	tokenDuration     time.Duration
}

func newAPIConfig(cfg Config, log *slog.Logger) (*apiConfig, error) {
	adminID := uuid.New()
	if cfg.AdminID != "" {
		id, err := uuid.Parse(cfg.AdminID)
		if err != nil {
			return nil, fmt.Errorf("parsing ADMIN_ID: %w", err)
		}
		adminID = id
	}
	return &apiConfig{
		log:               log,
		jwtSecret:         cfg.JWTSecret,
		adminPasswordHash: cfg.AdminPasswordHash,
		adminID:           adminID,
		tokenDuration:     cfg.TokenDuration,
	}, nil
}

func (cfg *apiConfig) adminAuthEnabled() bool {
	return cfg.jwtSecret != "" && cfg.adminPasswordHash != ""
}

func (cfg *apiConfig) routes(filepathRoot string) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/app/",
		cfg.middlewareMetricsInc(http.StripPrefix("/app", http.FileServer(http.Dir(filepathRoot)))),
	)
	mux.HandleFunc("GET /api/healthz", cfg.handle(handlerReadiness))
	mux.HandleFunc("POST /api/validate_chirp", cfg.handle(handlerValidateChirp))
	mux.HandleFunc("POST /admin/login", cfg.handle(cfg.handlerAdminLogin))
	mux.Handle("GET /admin/metrics", cfg.middlewareAdmin(cfg.handle(cfg.handlerDisplayMetrics)))
	mux.Handle("POST /admin/reset", cfg.middlewareAdmin(cfg.handle(cfg.handlerResetMetrics)))
	return middlewareRequestID(cfg.middlewareLogResponse(mux))
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "hash-password" {
		if err := hashPassword(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func hashPassword(args []string) error {
	if len(args) != 1 || args[0] == "" {
		return errors.New("usage: chirpy hash-password <password>")
	}
	hash, err := auth.HashPassword(args[0])
	if err != nil {
		return err
	}
	fmt.Println(hash)
	return nil
}

func run() error {
	_ = godotenv.Load()
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(cfg.LogLevel)

	apiCfg, err := newAPIConfig(cfg, log)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           apiCfg.routes(cfg.FilepathRoot),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(log.Handler(), slog.LevelError),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		log.Info("chirpy listening",
			"addr", server.Addr,
			"filepath_root", cfg.FilepathRoot,
			"admin_auth", cfg.AdminAuthEnabled(),
		)
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
