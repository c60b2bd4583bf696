package repositories

import (
	"context"

	"octofit.backend/internal/domain/entities"
)

// LeaderboardRepository defines leaderboard data operations. List returns
// ranked rows first, by rank, then unranked rows by points.
type LeaderboardRepository interface {
	Create(ctx context.Context, entry *entities.LeaderboardEntry) error
	GetByID(ctx context.Context, id uint) (*entities.LeaderboardEntry, error)
	GetByUserID(ctx context.Context, userID uint) (*entities.LeaderboardEntry, error)
	List(ctx context.Context, limit, offset int) ([]*entities.LeaderboardEntry, int64, error)
	Update(ctx context.Context, entry *entities.LeaderboardEntry) error
	Delete(ctx context.Context, id uint) error
	DeleteAll(ctx context.Context) error
}
