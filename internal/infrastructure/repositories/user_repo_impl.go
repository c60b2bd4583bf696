package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"octofit.backend/internal/domain/entities"
	"octofit.backend/internal/infrastructure/models"
)

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := r.toModel(user)
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateError(err)
	}
	user.ID = m.ID
	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

// GetByEmail gets a user by exact email, matching the unique index.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).
		Where("email = ?", strings.TrimSpace(email)).
		First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

// List returns users by id
func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]*entities.User, int64, error) {
	var total int64
	if err := GetDB(ctx, r.db).Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.User
	if err := paginate(GetDB(ctx, r.db).Order("id ASC"), limit, offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	users := make([]*entities.User, 0, len(ms))
	for i := range ms {
		users = append(users, r.toEntity(&ms[i]))
	}
	return users, total, nil
}

// Update writes every column of user
func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	now := time.Now()
	result := GetDB(ctx, r.db).
		Model(&models.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"name":       user.Name,
			"email":      user.Email,
			"password":   user.Password,
			"team_id":    user.TeamID.Ptr(),
			"updated_at": now,
		})
	if err := checkAffected(result); err != nil {
		return err
	}
	user.UpdatedAt = now
	return nil
}

// Delete removes a user
func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	return checkAffected(GetDB(ctx, r.db).Delete(&models.User{}, "id = ?", id))
}

// DeleteAll removes every user
func (r *UserRepository) DeleteAll(ctx context.Context) error {
	return GetDB(ctx, r.db).Where("1 = 1").Delete(&models.User{}).Error
}

func (r *UserRepository) toEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Password:  m.Password,
		TeamID:    null.UintFromPtr(m.TeamID),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *UserRepository) toModel(e *entities.User) *models.User {
	return &models.User{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Password:  e.Password,
		TeamID:    e.TeamID.Ptr(),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
