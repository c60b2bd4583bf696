package repositories

import (
	"context"

	"octofit.backend/internal/domain/entities"
)

// WorkoutRepository defines workout catalog operations
type WorkoutRepository interface {
	Create(ctx context.Context, workout *entities.Workout) error
	GetByID(ctx context.Context, id uint) (*entities.Workout, error)
	List(ctx context.Context, limit, offset int) ([]*entities.Workout, int64, error)
	Update(ctx context.Context, workout *entities.Workout) error
	Delete(ctx context.Context, id uint) error
	DeleteAll(ctx context.Context) error
}
