package repositories

import (
	"context"
	"time"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"octofit.backend/internal/domain/entities"
	"octofit.backend/internal/infrastructure/models"
)

// leaderboardOrder puts ranked rows first, by rank, then unranked rows by points.
const leaderboardOrder = "rank IS NULL, rank ASC, total_points DESC, id ASC"

type LeaderboardRepository struct {
	db *gorm.DB
}

func NewLeaderboardRepository(db *gorm.DB) *LeaderboardRepository {
	return &LeaderboardRepository{db: db}
}

func (r *LeaderboardRepository) Create(ctx context.Context, entry *entities.LeaderboardEntry) error {
	m := r.toModel(entry)
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateError(err)
	}
	entry.ID = m.ID
	entry.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *LeaderboardRepository) GetByID(ctx context.Context, id uint) (*entities.LeaderboardEntry, error) {
	var m models.LeaderboardEntry
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

func (r *LeaderboardRepository) GetByUserID(ctx context.Context, userID uint) (*entities.LeaderboardEntry, error) {
	var m models.LeaderboardEntry
	if err := GetDB(ctx, r.db).Where("user_id = ?", userID).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

func (r *LeaderboardRepository) List(ctx context.Context, limit, offset int) ([]*entities.LeaderboardEntry, int64, error) {
	var total int64
	if err := GetDB(ctx, r.db).Model(&models.LeaderboardEntry{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.LeaderboardEntry
	if err := paginate(GetDB(ctx, r.db).Order(leaderboardOrder), limit, offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.LeaderboardEntry, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, total, nil
}

func (r *LeaderboardRepository) Update(ctx context.Context, entry *entities.LeaderboardEntry) error {
	now := time.Now()
	result := GetDB(ctx, r.db).
		Model(&models.LeaderboardEntry{}).
		Where("id = ?", entry.ID).
		Updates(map[string]interface{}{
			"user_id":          entry.UserID,
			"user_name":        entry.UserName,
			"team_id":          entry.TeamID.Ptr(),
			"team_name":        entry.TeamName.Ptr(),
			"total_points":     entry.TotalPoints,
			"total_activities": entry.TotalActivities,
			"total_duration":   entry.TotalDuration,
			"rank":             entry.Rank.Ptr(),
			"updated_at":       now,
		})
	if err := checkAffected(result); err != nil {
		return err
	}
	entry.UpdatedAt = now
	return nil
}

func (r *LeaderboardRepository) Delete(ctx context.Context, id uint) error {
	return checkAffected(GetDB(ctx, r.db).Delete(&models.LeaderboardEntry{}, "id = ?", id))
}

func (r *LeaderboardRepository) DeleteAll(ctx context.Context) error {
	return GetDB(ctx, r.db).Where("1 = 1").Delete(&models.LeaderboardEntry{}).Error
}

func (r *LeaderboardRepository) toEntity(m *models.LeaderboardEntry) *entities.LeaderboardEntry {
	return &entities.LeaderboardEntry{
		ID:              m.ID,
		UserID:          m.UserID,
		UserName:        m.UserName,
		TeamID:          null.UintFromPtr(m.TeamID),
		TeamName:        null.StringFromPtr(m.TeamName),
		TotalPoints:     m.TotalPoints,
		TotalActivities: m.TotalActivities,
		TotalDuration:   m.TotalDuration,
		Rank:            null.IntFromPtr(m.Rank),
		UpdatedAt:       m.UpdatedAt,
	}
}

func (r *LeaderboardRepository) toModel(e *entities.LeaderboardEntry) *models.LeaderboardEntry {
	return &models.LeaderboardEntry{
		ID:              e.ID,
		UserID:          e.UserID,
		UserName:        e.UserName,
		TeamID:          e.TeamID.Ptr(),
		TeamName:        e.TeamName.Ptr(),
		TotalPoints:     e.TotalPoints,
		TotalActivities: e.TotalActivities,
		TotalDuration:   e.TotalDuration,
		Rank:            e.Rank.Ptr(),
		UpdatedAt:       e.UpdatedAt,
	}
}
