package jobs

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"octofit.backend/internal/domain/entities"
	"octofit.backend/internal/usecases"
	"octofit.backend/pkg/logger"
)

type leaderboardRecomputer interface {
	Recompute(ctx context.Context) (*entities.RecomputeSummary, error)
}

// LeaderboardRefreshJob rebuilds the leaderboard on a fixed interval.
type LeaderboardRefreshJob struct {
	leaderboard leaderboardRecomputer
	interval    time.Duration
	stop        chan struct{}
	stopOnce    sync.Once
}

func NewLeaderboardRefreshJob(leaderboard leaderboardRecomputer, interval time.Duration) *LeaderboardRefreshJob {
	return &LeaderboardRefreshJob{
		leaderboard: leaderboard,
		interval:    interval,
		stop:        make(chan struct{}),
	}
}

// Start blocks until ctx is cancelled or Stop is called.
func (j *LeaderboardRefreshJob) Start(ctx context.Context) {
	logger.Info(ctx, "Starting leaderboard refresh job", zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Leaderboard refresh job stopped (context cancelled)")
			return
		case <-j.stop:
			logger.Info(ctx, "Leaderboard refresh job stopped")
			return
		case <-ticker.C:
			j.refresh(ctx)
		}
	}
}

func (j *LeaderboardRefreshJob) Stop() {
	j.stopOnce.Do(func() { close(j.stop) })
}

func (j *LeaderboardRefreshJob) refresh(ctx context.Context) {
	summary, err := j.leaderboard.Recompute(ctx)
	if err != nil {
		if errors.Is(err, usecases.ErrRecomputeInProgress) {
			logger.Debug(ctx, "Leaderboard refresh skipped, another run holds the lock")
			return
		}
		logger.Error(ctx, "Leaderboard refresh failed", zap.Error(err))
		return
	}
	if summary.Created+summary.Updated+summary.Deleted > 0 {
		logger.Info(ctx, "Leaderboard refreshed",
			zap.Int("created", summary.Created),
			zap.Int("updated", summary.Updated),
			zap.Int("deleted", summary.Deleted),
		)
	}
}
