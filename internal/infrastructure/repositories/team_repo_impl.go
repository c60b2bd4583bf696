package repositories

import (
	"context"
	"time"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"octofit.backend/internal/domain/entities"
	"octofit.backend/internal/infrastructure/models"
)

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, team *entities.Team) error {
	m := r.toModel(team)
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateError(err)
	}
	team.ID = m.ID
	team.CreatedAt = m.CreatedAt
	team.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id uint) (*entities.Team, error) {
	var m models.Team
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

func (r *TeamRepository) GetByName(ctx context.Context, name string) (*entities.Team, error) {
	var m models.Team
	if err := GetDB(ctx, r.db).Where("name = ?", name).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

func (r *TeamRepository) List(ctx context.Context, limit, offset int) ([]*entities.Team, int64, error) {
	var total int64
	if err := GetDB(ctx, r.db).Model(&models.Team{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Team
	if err := paginate(GetDB(ctx, r.db).Order("id ASC"), limit, offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.Team, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, total, nil
}

func (r *TeamRepository) Update(ctx context.Context, team *entities.Team) error {
	now := time.Now()
	updates := map[string]interface{}{
		"name":        team.Name,
		"description": team.Description.Ptr(),
		"updated_at":  now,
	}

	result := GetDB(ctx, r.db).
		Model(&models.Team{}).
		Where("id = ?", team.ID).
		Updates(updates)
	if err := checkAffected(result); err != nil {
		return err
	}
	team.UpdatedAt = now
	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, id uint) error {
	return checkAffected(GetDB(ctx, r.db).Delete(&models.Team{}, "id = ?", id))
}

func (r *TeamRepository) DeleteAll(ctx context.Context) error {
	return GetDB(ctx, r.db).Where("1 = 1").Delete(&models.Team{}).Error
}

func (r *TeamRepository) toEntity(m *models.Team) *entities.Team {
	return &entities.Team{
		ID:          m.ID,
		Name:        m.Name,
		Description: null.StringFromPtr(m.Description),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *TeamRepository) toModel(e *entities.Team) *models.Team {
	return &models.Team{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description.Ptr(),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
