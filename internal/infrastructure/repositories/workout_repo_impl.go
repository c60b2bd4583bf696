package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"octofit.backend/internal/domain/entities"
	"octofit.backend/internal/infrastructure/models"
)

type WorkoutRepository struct {
	db *gorm.DB
}

func NewWorkoutRepository(db *gorm.DB) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

func (r *WorkoutRepository) Create(ctx context.Context, workout *entities.Workout) error {
	m, err := r.toModel(workout)
	if err != nil {
		return err
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateError(err)
	}
	workout.ID = m.ID
	workout.CreatedAt = m.CreatedAt
	workout.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *WorkoutRepository) GetByID(ctx context.Context, id uint) (*entities.Workout, error) {
	var m models.Workout
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m)
}

func (r *WorkoutRepository) List(ctx context.Context, limit, offset int) ([]*entities.Workout, int64, error) {
	var total int64
	if err := GetDB(ctx, r.db).Model(&models.Workout{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Workout
	if err := paginate(GetDB(ctx, r.db).Order("id ASC"), limit, offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.Workout, 0, len(ms))
	for i := range ms {
		item, err := r.toEntity(&ms[i])
		if err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}
	return items, total, nil
}

func (r *WorkoutRepository) Update(ctx context.Context, workout *entities.Workout) error {
	muscles, err := marshalMuscles(workout.TargetMuscles)
	if err != nil {
		return err
	}
	now := time.Now()
	result := GetDB(ctx, r.db).
		Model(&models.Workout{}).
		Where("id = ?", workout.ID).
		Updates(map[string]interface{}{
			"name":           workout.Name,
			"description":    workout.Description,
			"difficulty":     workout.Difficulty,
			"duration":       workout.Duration,
			"workout_type":   workout.WorkoutType,
			"target_muscles": muscles,
			"updated_at":     now,
		})
	if err := checkAffected(result); err != nil {
		return err
	}
	workout.UpdatedAt = now
	return nil
}

func (r *WorkoutRepository) Delete(ctx context.Context, id uint) error {
	return checkAffected(GetDB(ctx, r.db).Delete(&models.Workout{}, "id = ?", id))
}

func (r *WorkoutRepository) DeleteAll(ctx context.Context) error {
	return GetDB(ctx, r.db).Where("1 = 1").Delete(&models.Workout{}).Error
}

func marshalMuscles(muscles []string) (datatypes.JSON, error) {
	if muscles == nil {
		muscles = []string{}
	}
	b, err := json.Marshal(muscles)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

func (r *WorkoutRepository) toEntity(m *models.Workout) (*entities.Workout, error) {
	muscles := []string{}
	if len(m.TargetMuscles) > 0 {
		if err := json.Unmarshal(m.TargetMuscles, &muscles); err != nil {
			return nil, fmt.Errorf("workout %d: decode target_muscles: %w", m.ID, err)
		}
	}
	if muscles == nil {
		muscles = []string{}
	}
	return &entities.Workout{
		ID:            m.ID,
		Name:          m.Name,
		Description:   m.Description,
		Difficulty:    m.Difficulty,
		Duration:      m.Duration,
		WorkoutType:   m.WorkoutType,
		TargetMuscles: muscles,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}, nil
}

func (r *WorkoutRepository) toModel(e *entities.Workout) (*models.Workout, error) {
	muscles, err := marshalMuscles(e.TargetMuscles)
	if err != nil {
		return nil, err
	}
	return &models.Workout{
		ID:            e.ID,
		Name:          e.Name,
		Description:   e.Description,
		Difficulty:    e.Difficulty,
		Duration:      e.Duration,
		WorkoutType:   e.WorkoutType,
		TargetMuscles: muscles,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}, nil
}
