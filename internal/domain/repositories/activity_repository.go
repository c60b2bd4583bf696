package repositories

import (
	"context"

	"octofit.backend/internal/domain/entities"
)

// ActivityRepository defines activity data operations
type ActivityRepository interface {
	Create(ctx context.Context, activity *entities.Activity) error
	CreateBatch(ctx context.Context, activities []*entities.Activity) error
	GetByID(ctx context.Context, id uint) (*entities.Activity, error)
	List(ctx context.Context, limit, offset int) ([]*entities.Activity, int64, error)
	Update(ctx context.Context, activity *entities.Activity) error
	Delete(ctx context.Context, id uint) error
	DeleteAll(ctx context.Context) error
	// TotalsByUser aggregates count, duration and calories per user_id.
	// Users without activities are absent from the result.
	TotalsByUser(ctx context.Context) (map[uint]entities.ActivityTotals, error)
}
