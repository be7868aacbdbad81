package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/beerstock/internal/auth"
	"github.com/rogerio-castellano/beerstock/internal/config"
	"github.com/rogerio-castellano/beerstock/internal/db"
	"github.com/rogerio-castellano/beerstock/internal/http/handlers"
	rl "github.com/rogerio-castellano/beerstock/internal/http/rate_limiter"
	"github.com/rogerio-castellano/beerstock/internal/http/router"
	"github.com/rogerio-castellano/beerstock/internal/logger"
	"github.com/rogerio-castellano/beerstock/internal/redissvc"
	"github.com/rogerio-castellano/beerstock/internal/repo"
	"github.com/rogerio-castellano/beerstock/internal/service"
	"go.uber.org/zap"
)

// @title Beerstock API
// @version 1.0
// @description REST API for managing a beer catalog and its stock.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load(os.Getenv("BEERSTOCK_CONFIG"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg, err := logger.New(cfg.Log.Level, cfg.Log.Env)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer lg.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, lg); err != nil {
		lg.Fatal("server stopped", zap.Error(err))
	}
}

type repositories struct {
	beers     repo.BeerRepository
	movements repo.MovementRepository
	users     repo.UserRepository
	metrics   repo.MetricsRepository
}

func run(ctx context.Context, cfg config.Config, lg *zap.Logger) error {
	repos, database, err := openRepositories(ctx, cfg.Database, lg)
	if err != nil {
		return err
	}
	if database != nil {
		defer database.Close()
	}

	beerService := service.NewBeerService(repos.beers, lg.Named("beer_service"))
	if cfg.Redis.Addr != "" {
		rdb, err := redissvc.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer closeRedis(rdb, lg)
		beerService = service.NewCachedBeerService(beerService, rdb, cfg.Redis.CacheTTL, lg.Named("beer_cache"))
		lg.Info("beer cache enabled", zap.String("redis_addr", cfg.Redis.Addr))
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	handlers.SetLogger(lg.Named("http"))
	handlers.SetBeerService(beerService)
	handlers.SetMovementRepo(repos.movements)
	handlers.SetUserRepo(repos.users)
	handlers.SetMetricsRepo(repos.metrics)
	handlers.SetJWTManager(jwtManager)

	opts := router.Options{Logger: lg.Named("http")}
	if cfg.Auth.Enabled {
		opts.TokenParser = jwtManager
	}
	if cfg.RateLimit.Enabled {
		opts.Limiter = rl.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		go opts.Limiter.StartVisitorCleanupLoop(ctx)
	}

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router.NewRouter(opts),
	}

	errCh := make(chan error, 1)
	go func() {
		lg.Info("server running", zap.String("addr", cfg.Server.Addr), zap.Bool("auth", cfg.Auth.Enabled))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	lg.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openRepositories connects to postgres when a URL is configured and falls
// back to the in-memory repositories otherwise.
func openRepositories(ctx context.Context, cfg config.Database, lg *zap.Logger) (repositories, *sql.DB, error) {
	if cfg.URL == "" {
		lg.Warn("no database configured, using in-memory storage")
		beers := repo.NewInMemoryBeerRepository()
		movements := repo.NewInMemoryMovementRepository()
		return repositories{
			beers:     beers,
			movements: movements,
			users:     repo.NewInMemoryUserRepository(),
			metrics:   repo.NewInMemoryMetricsRepository(beers, movements),
		}, nil, nil
	}

	if cfg.Migrate {
		if err := db.Migrate(ctx, cfg.URL); err != nil {
			return repositories{}, nil, err
		}
		lg.Info("migrations applied")
	}

	database, err := db.Connect(ctx, cfg.URL)
	if err != nil {
		return repositories{}, nil, err
	}

	return repositories{
		beers:     repo.NewPostgresBeerRepository(database),
		movements: repo.NewPostgresMovementRepository(database),
		users:     repo.NewPostgresUserRepository(database),
		metrics:   repo.NewPostgresMetricsRepository(database),
	}, database, nil
}

func closeRedis(rdb *redis.Client, lg *zap.Logger) {
	if err := rdb.Close(); err != nil {
		lg.Warn("failed to close redis", zap.Error(err))
	}
}
