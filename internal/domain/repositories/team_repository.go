package repositories

import (
	"context"

	"octofit.backend/internal/domain/entities"
)

// TeamRepository defines team data operations
type TeamRepository interface {
	Create(ctx context.Context, team *entities.Team) error
	GetByID(ctx context.Context, id uint) (*entities.Team, error)
	GetByName(ctx context.Context, name string) (*entities.Team, error)
	// List returns teams by id. A limit of 0 returns every row.
	List(ctx context.Context, limit, offset int) ([]*entities.Team, int64, error)
	Update(ctx context.Context, team *entities.Team) error
	Delete(ctx context.Context, id uint) error
	DeleteAll(ctx context.Context) error
}
