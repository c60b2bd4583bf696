package usecases_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"octofit.backend/internal/domain/entities"
	"octofit.backend/internal/domain/repositories"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f repositories.TxFunc) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock Locker
type MockLocker struct {
	mock.Mock
}

func (m *MockLocker) Acquire(ctx context.Context, name string, ttl time.Duration) (func(), error) {
	args := m.Called(ctx, name, ttl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(func()), args.Error(1)
}

// Mock TeamRepository
type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) Create(ctx context.Context, team *entities.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) GetByID(ctx context.Context, id uint) (*entities.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *MockTeamRepository) GetByName(ctx context.Context, name string) (*entities.Team, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *MockTeamRepository) List(ctx context.Context, limit, offset int) ([]*entities.Team, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Team), args.Get(1).(int64), args.Error(2)
}

func (m *MockTeamRepository) Update(ctx context.Context, team *entities.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTeamRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]*entities.User, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Mock ActivityRepository
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Create(ctx context.Context, activity *entities.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockActivityRepository) CreateBatch(ctx context.Context, activities []*entities.Activity) error {
	args := m.Called(ctx, activities)
	return args.Error(0)
}

func (m *MockActivityRepository) GetByID(ctx context.Context, id uint) (*entities.Activity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Activity), args.Error(1)
}

func (m *MockActivityRepository) List(ctx context.Context, limit, offset int) ([]*entities.Activity, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Activity), args.Get(1).(int64), args.Error(2)
}

func (m *MockActivityRepository) Update(ctx context.Context, activity *entities.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockActivityRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockActivityRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockActivityRepository) TotalsByUser(ctx context.Context) (map[uint]entities.ActivityTotals, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uint]entities.ActivityTotals), args.Error(1)
}

// Mock LeaderboardRepository
type MockLeaderboardRepository struct {
	mock.Mock
}

func (m *MockLeaderboardRepository) Create(ctx context.Context, entry *entities.LeaderboardEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLeaderboardRepository) GetByID(ctx context.Context, id uint) (*entities.LeaderboardEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.LeaderboardEntry), args.Error(1)
}

func (m *MockLeaderboardRepository) GetByUserID(ctx context.Context, userID uint) (*entities.LeaderboardEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.LeaderboardEntry), args.Error(1)
}

func (m *MockLeaderboardRepository) List(ctx context.Context, limit, offset int) ([]*entities.LeaderboardEntry, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.LeaderboardEntry), args.Get(1).(int64), args.Error(2)
}

func (m *MockLeaderboardRepository) Update(ctx context.Context, entry *entities.LeaderboardEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLeaderboardRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLeaderboardRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Mock WorkoutRepository
type MockWorkoutRepository struct {
	mock.Mock
}

func (m *MockWorkoutRepository) Create(ctx context.Context, workout *entities.Workout) error {
	args := m.Called(ctx, workout)
	return args.Error(0)
}

func (m *MockWorkoutRepository) GetByID(ctx context.Context, id uint) (*entities.Workout, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Workout), args.Error(1)
}

func (m *MockWorkoutRepository) List(ctx context.Context, limit, offset int) ([]*entities.Workout, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Workout), args.Get(1).(int64), args.Error(2)
}

func (m *MockWorkoutRepository) Update(ctx context.Context, workout *entities.Workout) error {
	args := m.Called(ctx, workout)
	return args.Error(0)
}

func (m *MockWorkoutRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWorkoutRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
