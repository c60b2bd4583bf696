package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"octofit.backend/internal/config"
	"octofit.backend/internal/domain/entities"
	"octofit.backend/internal/infrastructure/datasources"
	"octofit.backend/internal/infrastructure/repositories"
	"octofit.backend/internal/usecases"
	"octofit.backend/pkg/crypto"
	"octofit.backend/pkg/logger"
)

var openPopulateDB = datasources.Open

var openPopulateSQLDB = func(db *gorm.DB) (io.Closer, error) {
	return db.DB()
}

type seedRuntime interface {
	Seed(ctx context.Context) (*entities.SeedSummary, error)
}

type populateDeps struct {
	loadEnv func() error
	loadCfg func() *config.Config
	prepare func(cfg *config.Config, seed int64) (seedRuntime, io.Closer, error)
	out     io.Writer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func defaultPopulateDeps() populateDeps {
	return populateDeps{
		loadEnv: func() error { return godotenv.Load() },
		loadCfg: config.Load,
		prepare: func(cfg *config.Config, seed int64) (seedRuntime, io.Closer, error) {
			db, err := openPopulateDB(cfg.Database)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to connect db: %w", err)
			}
			sqlDB, err := openPopulateSQLDB(db)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to init sql db: %w", err)
			}

			teamRepo := repositories.NewTeamRepository(db)
			userRepo := repositories.NewUserRepository(db)
			activityRepo := repositories.NewActivityRepository(db)
			leaderboardRepo := repositories.NewLeaderboardRepository(db)
			workoutRepo := repositories.NewWorkoutRepository(db)
			uow := repositories.NewUnitOfWork(db)

			leaderboard := usecases.NewLeaderboardUsecase(
				leaderboardRepo, userRepo, teamRepo, activityRepo, uow, nil, cfg.Leaderboard.LockTTL,
			)
			seeder := usecases.NewSeeder(
				teamRepo, userRepo, activityRepo, leaderboardRepo, workoutRepo,
				leaderboard, uow,
				crypto.NewHasher(cfg.Security.PasswordHashCost),
				newRand(seed),
			)
			return seeder, sqlDB, nil
		},
		out: os.Stdout,
	}
}

func runPopulate(args []string, deps populateDeps) error {
	def := defaultPopulateDeps()
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

	fs := flag.NewFlagSet("populate-db", flag.ContinueOnError)
	seedFlag := fs.Int64("seed", 0, "random seed for activity generation (overrides SEED_RANDOM_SEED)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := deps.loadEnv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := deps.loadCfg()
	logger.Init(cfg.Server.Env)
	defer logger.Sync()

	seed := cfg.Seed.RandomSeed
	if *seedFlag != 0 {
		seed = *seedFlag
	}

	runtime, closer, err := deps.prepare(cfg, seed)
	if err != nil {
		return err
	}
	if closer == nil {
		closer = nopCloser{}
	}
	defer closer.Close()

	ctx := context.Background()
	summary, err := runtime.Seed(ctx)
	if err != nil {
		return fmt.Errorf("failed to populate database: %w", err)
	}

	logger.Info(ctx, "Database populated",
		zap.Int("teams", summary.Teams),
		zap.Int("users", summary.Users),
		zap.Int("activities", summary.Activities),
		zap.Int("leaderboard_entries", summary.Leaderboard.Entries),
		zap.Int("workouts", summary.Workouts),
		zap.Int64("seed", seed),
	)

	_, _ = fmt.Fprintln(deps.out, "Populated the octofit database with test data")
	_, _ = fmt.Fprintf(deps.out, "teams=%d\n", summary.Teams)
	_, _ = fmt.Fprintf(deps.out, "users=%d\n", summary.Users)
	_, _ = fmt.Fprintf(deps.out, "activities=%d\n", summary.Activities)
	_, _ = fmt.Fprintf(deps.out, "leaderboard_entries=%d\n", summary.Leaderboard.Entries)
	_, _ = fmt.Fprintf(deps.out, "workouts=%d\n", summary.Workouts)
	return nil
}

func main() {
	if err := runPopulate(os.Args[1:], defaultPopulateDeps()); err != nil {
		log.Fatal(err)
	}
}
