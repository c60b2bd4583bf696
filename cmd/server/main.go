package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"octofit.backend/internal/config"
	"octofit.backend/internal/infrastructure/datasources"
	"octofit.backend/internal/infrastructure/jobs"
	"octofit.backend/internal/infrastructure/repositories"
	"octofit.backend/internal/interfaces/http/handlers"
	"octofit.backend/internal/usecases"
	"octofit.backend/pkg/crypto"
	"octofit.backend/pkg/logger"
	"octofit.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = datasources.Open
	// runServer blocks until the server stops. It returns nil after a
	// graceful shutdown triggered by ctx.
	runServer = func(ctx context.Context, srv *http.Server, shutdown func(context.Context) error) error {
		errCh := make(chan error, 1)
		go func() { errCh <- srv.ListenAndServe() }()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
			return shutdown(context.Background())
		}
	}
	notifyContext = signal.NotifyContext
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	defer logger.Sync()
	ctx := context.Background()
	logger.Info(ctx, "Logger initialized", zap.String("env", cfg.Server.Env))

	if cfg.Redis.URL != "" {
		if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
			logger.Error(ctx, "Failed to initialize Redis", zap.Error(err))
			return fmt.Errorf("failed to initialize redis: %w", err)
		}
		defer redis.Close()
		logger.Info(ctx, "Redis initialized")
	} else {
		logger.Warn(ctx, "Redis disabled, idempotency and the leaderboard lock are off")
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()
	logger.Info(ctx, "Database connected", zap.String("driver", cfg.Database.Driver))

	app := buildApp(cfg, db)

	runCtx, stop := notifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Leaderboard.RefreshInterval > 0 {
		refreshJob := jobs.NewLeaderboardRefreshJob(app.leaderboard, cfg.Leaderboard.RefreshInterval)
		go refreshJob.Start(runCtx)
		defer refreshJob.Stop()
	}

	r := newRouter(cfg, app.routes)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}
	shutdown := func(shutdownCtx context.Context) error {
		logger.Info(ctx, "Shutting down server")
		c, cancel := context.WithTimeout(shutdownCtx, cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(c)
	}

	logger.Info(ctx, "OctoFit backend starting",
		zap.String("port", cfg.Server.Port),
		zap.Int("routes", len(r.Routes())),
	)
	if err := runServer(runCtx, srv, shutdown); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

type app struct {
	leaderboard *usecases.LeaderboardUsecase
	routes      routeDeps
}

func buildApp(cfg *config.Config, db *gorm.DB) app {
	teamRepo := repositories.NewTeamRepository(db)
	userRepo := repositories.NewUserRepository(db)
	activityRepo := repositories.NewActivityRepository(db)
	leaderboardRepo := repositories.NewLeaderboardRepository(db)
	workoutRepo := repositories.NewWorkoutRepository(db)
	uow := repositories.NewSnapshotUnitOfWork(db)

	teamUsecase := usecases.NewTeamUsecase(teamRepo)
	userUsecase := usecases.NewUserUsecase(userRepo, crypto.NewHasher(cfg.Security.PasswordHashCost))
	activityUsecase := usecases.NewActivityUsecase(activityRepo)
	workoutUsecase := usecases.NewWorkoutUsecase(workoutRepo)
	leaderboardUsecase := usecases.NewLeaderboardUsecase(
		leaderboardRepo, userRepo, teamRepo, activityRepo, uow, nil, cfg.Leaderboard.LockTTL,
	)

	ping := func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}

	return app{
		leaderboard: leaderboardUsecase,
		routes: routeDeps{
			rootHandler:        handlers.NewRootHandler(cfg.Server.PublicBaseURL, ping),
			userHandler:        handlers.NewUserHandler(userUsecase),
			teamHandler:        handlers.NewTeamHandler(teamUsecase),
			activityHandler:    handlers.NewActivityHandler(activityUsecase),
			leaderboardHandler: handlers.NewLeaderboardHandler(leaderboardUsecase),
			workoutHandler:     handlers.NewWorkoutHandler(workoutUsecase),
		},
	}
}
