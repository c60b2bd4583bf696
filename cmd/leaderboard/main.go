package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"octofit.backend/internal/config"
	"octofit.backend/internal/domain/entities"
	"octofit.backend/internal/infrastructure/datasources"
	"octofit.backend/internal/infrastructure/repositories"
	"octofit.backend/internal/usecases"
	"octofit.backend/pkg/logger"
	"octofit.backend/pkg/redis"
)

var (
	openLeaderboardDB    = datasources.Open
	openLeaderboardSQLDB = func(db *gorm.DB) (io.Closer, error) {
		return db.DB()
	}
	initLeaderboardRedis = redis.Init
)

type recomputeRuntime interface {
	Recompute(ctx context.Context) (*entities.RecomputeSummary, error)
}

type leaderboardDeps struct {
	loadEnv func() error
	loadCfg func() *config.Config
	prepare func(cfg *config.Config) (recomputeRuntime, io.Closer, error)
	out     io.Writer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func defaultLeaderboardDeps() leaderboardDeps {
	return leaderboardDeps{
		loadEnv: func() error { return godotenv.Load() },
		loadCfg: config.Load,
		prepare: func(cfg *config.Config) (recomputeRuntime, io.Closer, error) {
			if cfg.Redis.URL != "" {
				if err := initLeaderboardRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
					return nil, nil, fmt.Errorf("failed to initialize redis: %w", err)
				}
			}

			db, err := openLeaderboardDB(cfg.Database)
			if err != nil {
				_ = redis.Close()
				return nil, nil, fmt.Errorf("failed to connect db: %w", err)
			}
			sqlDB, err := openLeaderboardSQLDB(db)
			if err != nil {
				_ = redis.Close()
				return nil, nil, fmt.Errorf("failed to init sql db: %w", err)
			}

			leaderboard := usecases.NewLeaderboardUsecase(
				repositories.NewLeaderboardRepository(db),
				repositories.NewUserRepository(db),
				repositories.NewTeamRepository(db),
				repositories.NewActivityRepository(db),
				repositories.NewSnapshotUnitOfWork(db),
				nil,
				cfg.Leaderboard.LockTTL,
			)
			closer := closerFunc(func() error {
				return errors.Join(sqlDB.Close(), redis.Close())
			})
			return leaderboard, closer, nil
		},
		out: os.Stdout,
	}
}

func runLeaderboard(args []string, deps leaderboardDeps) error {
	def := defaultLeaderboardDeps()
	if deps.loadEnv == nil {
		deps.loadEnv = def.loadEnv
	}
	if deps.loadCfg == nil {
		deps.loadCfg = def.loadCfg
	}
	if deps.prepare == nil {
		deps.prepare = def.prepare
	}
	if deps.out == nil {
		deps.out = def.out
	}

	fs := flag.NewFlagSet("leaderboard", flag.ContinueOnError)
	jsonFlag := fs.Bool("json", false, "print the run summary as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := deps.loadEnv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := deps.loadCfg()
	logger.Init(cfg.Server.Env)
	defer logger.Sync()

	runtime, closer, err := deps.prepare(cfg)
	if err != nil {
		return err
	}
	if closer == nil {
		closer = nopCloser{}
	}
	defer closer.Close()

	ctx := context.Background()
	summary, err := runtime.Recompute(ctx)
	if err != nil {
		if errors.Is(err, usecases.ErrRecomputeInProgress) {
			return fmt.Errorf("another leaderboard run holds the lock: %w", err)
		}
		return fmt.Errorf("failed to recompute leaderboard: %w", err)
	}

	logger.Info(ctx, "Leaderboard recomputed",
		zap.Int("entries", summary.Entries),
		zap.Int("created", summary.Created),
		zap.Int("updated", summary.Updated),
		zap.Int("deleted", summary.Deleted),
		zap.Duration("duration", summary.Duration),
	)

	if *jsonFlag {
		return json.NewEncoder(deps.out).Encode(summary)
	}
	_, _ = fmt.Fprintf(deps.out, "Leaderboard updated with %d entries\n", summary.Entries)
	_, _ = fmt.Fprintf(deps.out, "created=%d updated=%d deleted=%d unchanged=%d\n",
		summary.Created, summary.Updated, summary.Deleted, summary.Unchanged)
	return nil
}

func main() {
	if err := runLeaderboard(os.Args[1:], defaultLeaderboardDeps()); err != nil {
		log.Fatal(err)
	}
}
