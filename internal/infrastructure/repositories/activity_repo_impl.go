package repositories

import (
	"context"
	"time"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"octofit.backend/internal/domain/entities"
	"octofit.backend/internal/infrastructure/models"
)

const activityBatchSize = 100

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Create(ctx context.Context, activity *entities.Activity) error {
	m := r.toModel(activity)
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateError(err)
	}
	activity.ID = m.ID
	activity.CreatedAt = m.CreatedAt
	activity.UpdatedAt = m.UpdatedAt
	return nil
}

// CreateBatch inserts activities in chunks and fills in their ids.
func (r *ActivityRepository) CreateBatch(ctx context.Context, activities []*entities.Activity) error {
	if len(activities) == 0 {
		return nil
	}
	ms := make([]*models.Activity, 0, len(activities))
	for _, a := range activities {
		ms = append(ms, r.toModel(a))
	}
	if err := GetDB(ctx, r.db).CreateInBatches(ms, activityBatchSize).Error; err != nil {
		return translateError(err)
	}
	for i, m := range ms {
		activities[i].ID = m.ID
		activities[i].CreatedAt = m.CreatedAt
		activities[i].UpdatedAt = m.UpdatedAt
	}
	return nil
}

func (r *ActivityRepository) GetByID(ctx context.Context, id uint) (*entities.Activity, error) {
	var m models.Activity
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

func (r *ActivityRepository) List(ctx context.Context, limit, offset int) ([]*entities.Activity, int64, error) {
	var total int64
	if err := GetDB(ctx, r.db).Model(&models.Activity{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Activity
	if err := paginate(GetDB(ctx, r.db).Order("id ASC"), limit, offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.Activity, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, total, nil
}

func (r *ActivityRepository) Update(ctx context.Context, activity *entities.Activity) error {
	now := time.Now()
	result := GetDB(ctx, r.db).
		Model(&models.Activity{}).
		Where("id = ?", activity.ID).
		Updates(map[string]interface{}{
			"user_id":       activity.UserID,
			"activity_type": activity.ActivityType,
			"duration":      activity.Duration,
			"distance":      activity.Distance.Ptr(),
			"calories":      activity.Calories.Ptr(),
			"date":          activity.Date,
			"updated_at":    now,
		})
	if err := checkAffected(result); err != nil {
		return err
	}
	activity.UpdatedAt = now
	return nil
}

func (r *ActivityRepository) Delete(ctx context.Context, id uint) error {
	return checkAffected(GetDB(ctx, r.db).Delete(&models.Activity{}, "id = ?", id))
}

func (r *ActivityRepository) DeleteAll(ctx context.Context) error {
	return GetDB(ctx, r.db).Where("1 = 1").Delete(&models.Activity{}).Error
}

type activityTotalsRow struct {
	UserID          uint
	TotalActivities int
	TotalDuration   int
	TotalPoints     int
}

// TotalsByUser runs one grouped query over the activity history.
func (r *ActivityRepository) TotalsByUser(ctx context.Context) (map[uint]entities.ActivityTotals, error) {
	var rows []activityTotalsRow
	if err := GetDB(ctx, r.db).
		Model(&models.Activity{}).
		Select(`user_id,
			COUNT(*) AS total_activities,
			COALESCE(SUM(duration), 0) AS total_duration,
			COALESCE(SUM(COALESCE(calories, 0)), 0) AS total_points`).
		Group("user_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	totals := make(map[uint]entities.ActivityTotals, len(rows))
	for _, row := range rows {
		totals[row.UserID] = entities.ActivityTotals{
			UserID:          row.UserID,
			TotalActivities: row.TotalActivities,
			TotalDuration:   row.TotalDuration,
			TotalPoints:     row.TotalPoints,
		}
	}
	return totals, nil
}

func (r *ActivityRepository) toEntity(m *models.Activity) *entities.Activity {
	return &entities.Activity{
		ID:           m.ID,
		UserID:       m.UserID,
		ActivityType: m.ActivityType,
		Duration:     m.Duration,
		Distance:     null.Float64FromPtr(m.Distance),
		Calories:     null.IntFromPtr(m.Calories),
		Date:         m.Date,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (r *ActivityRepository) toModel(e *entities.Activity) *models.Activity {
	return &models.Activity{
		ID:           e.ID,
		UserID:       e.UserID,
		ActivityType: e.ActivityType,
		Duration:     e.Duration,
		Distance:     e.Distance.Ptr(),
		Calories:     e.Calories.Ptr(),
		Date:         e.Date,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
