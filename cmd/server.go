package cmd

import (
	"context"
	"errors"
	"fmt"
	"jekomo/internal/auth"
	"jekomo/internal/config"
	"jekomo/internal/core"
	"jekomo/internal/db"
	"jekomo/internal/faults"
	"jekomo/internal/http/handler"
	"jekomo/internal/http/handler/middleware"
	"jekomo/internal/http/payload"
	"jekomo/internal/http/server"
	"jekomo/internal/repository"
	"jekomo/pkg/jwt"
	"jekomo/pkg/log"
	"jekomo/pkg/password"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "jekomo"

// accountStore is satisfied by both the postgres and the in-memory repository.
type accountStore interface {
	core.Repository
	auth.UserLookup
	MigrateAndSeed(ctx context.Context, users ...repository.User) error
}

func Start() error {
	logger := log.NewZapLogger(serviceName, zapcore.InfoLevel)

	config, err := config.NewAppConfig(".env")
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	if !config.IsProduction() {
		logger = log.NewDevelopmentLogger(serviceName, zapcore.DebugLevel)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	repo, closeStore, err := newStore(config, logger)
	if err != nil {
		logger.Errorw("failed to open store", "error", err, "driver", config.StoreDriver)
		return err
	}
	defer closeStore()

	hasher := password.NewBcrypt(config.BcryptCost)

	seeds, err := adminSeed(config, hasher)
	if err != nil {
		logger.Errorw("failed to prepare admin seed", "error", err)
		return err
	}

	if err = repo.MigrateAndSeed(ctx, seeds...); err != nil {
		logger.Errorw("failed to migrate and seed database", "error", err)
		return err
	}

	reporter, flush, err := newReporter(config, logger)
	if err != nil {
		logger.Errorw("failed to create fault reporter", "error", err)
		return err
	}
	defer flush()

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// accounts
	accounts := core.NewAccounts(
		logger,
		repo,
		jwtService,
		hasher,
		config.TokenTTL)

	policy := auth.NewPolicy(jwtService, repo)

	// handler
	accountHlr := handler.NewAccountHandler(
		logger,
		payload.DecodeValidator{},
		accounts,
		reporter)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	authMw := middleware.NewAuthMiddleware(logger, policy, reporter)

	// register routes
	mux := newRouter(
		accountHlr,
		authMw,
		rateLimit{rps: config.RateLimitRPS, burst: config.RateLimitBurst},
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	// middleware
	hdlr := middleware.NewRecoverMiddleware(logger, reporter, !config.IsProduction()).Recover(mux)
	hdlr = middleware.NewMetricsMiddleware(registry).Metrics(hdlr)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func newStore(cfg config.App, logger *zap.SugaredLogger) (accountStore, func(), error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		logger.Warnw("using in-memory store, data is lost on restart")
		return repository.NewMemoryRepository(), func() {}, nil
	}

	dbConn, err := db.NewPostgresDB(cfg.DBConnectionURL)
	if err != nil {
		return nil, nil, err
	}

	closeStore := func() {
		if err := dbConn.Close(); err != nil {
			logger.Errorw("failed to close database", "error", err)
		}
	}

	return repository.NewUserRepository(dbConn), closeStore, nil
}

// adminSeed returns the bootstrap admin when one is configured. Role changes
// require an admin caller, so without it no admin could ever exist.
func adminSeed(cfg config.App, hasher core.PasswordHasher) ([]repository.User, error) {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return nil, nil
	}

	hash, err := hasher.Hash(cfg.AdminPassword)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}

	return []repository.User{{
		ID:           uuid.NewString(),
		Username:     cfg.AdminUsername,
		PasswordHash: hash,
		Role:         repository.RoleAdmin,
	}}, nil
}

func newReporter(cfg config.App, logger *zap.SugaredLogger) (faults.Reporter, func(), error) {
	if cfg.SentryDSN == "" {
		return faults.NewLogReporter(logger), func() {}, nil
	}

	reporter, err := faults.NewSentryReporter(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.Env,
	})
	if err != nil {
		return nil, nil, err
	}

	return reporter, func() { reporter.Flush(2 * time.Second) }, nil
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if errors.Is(err, http.ErrServerClosed) || err == nil {
		return sdErr
	}

	return err
}
