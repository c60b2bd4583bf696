package usecases_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"octofit.backend/internal/domain/entities"
	domainerrors "octofit.backend/internal/domain/errors"
	"octofit.backend/internal/usecases"
	"octofit.backend/pkg/redis"
)

type leaderboardMocks struct {
	board      *MockLeaderboardRepository
	users      *MockUserRepository
	teams      *MockTeamRepository
	activities *MockActivityRepository
	uow        *MockUnitOfWork
	locker     *MockLocker
}

func newLeaderboardUsecase() (*usecases.LeaderboardUsecase, *leaderboardMocks) {
	m := &leaderboardMocks{
		board:      new(MockLeaderboardRepository),
		users:      new(MockUserRepository),
		teams:      new(MockTeamRepository),
		activities: new(MockActivityRepository),
		uow:        new(MockUnitOfWork),
		locker:     new(MockLocker),
	}
	uc := usecases.NewLeaderboardUsecase(m.board, m.users, m.teams, m.activities, m.uow, m.locker, time.Minute)
	return uc, m
}

func TestBuildLeaderboard_TotalsRanksAndTeams(t *testing.T) {
	users := []*entities.User{
		{ID: 3, Name: "Clark", TeamID: null.UintFrom(2)},
		{ID: 1, Name: "Tony", TeamID: null.UintFrom(1)},
		{ID: 2, Name: "Peter", TeamID: null.UintFrom(99)},
		{ID: 4, Name: "Loner"},
	}
	teams := []*entities.Team{{ID: 1, Name: "Team Marvel"}, {ID: 2, Name: "Team DC"}}
	totals := map[uint]entities.ActivityTotals{
		1: {UserID: 1, TotalActivities: 2, TotalDuration: 90, TotalPoints: 500},
		2: {UserID: 2, TotalActivities: 1, TotalDuration: 30, TotalPoints: 500},
		3: {UserID: 3, TotalActivities: 4, TotalDuration: 200, TotalPoints: 900},
	}

	entries := usecases.BuildLeaderboard(users, teams, totals)
	require.Len(t, entries, 4)

	assert.Equal(t, uint(3), entries[0].UserID)
	assert.Equal(t, null.StringFrom("Team DC"), entries[0].TeamName)
	// ties keep user id order
	assert.Equal(t, uint(1), entries[1].UserID)
	assert.Equal(t, uint(2), entries[2].UserID)
	assert.False(t, entries[2].TeamName.Valid, "dangling team_id resolves to null")
	assert.Equal(t, null.UintFrom(99), entries[2].TeamID)
	assert.Equal(t, uint(4), entries[3].UserID)
	assert.Zero(t, entries[3].TotalActivities)
	assert.False(t, entries[3].TeamID.Valid)

	for i, e := range entries {
		assert.Equal(t, null.IntFrom(i+1), e.Rank)
	}
	for _, a := range entries {
		for _, b := range entries {
			if a.TotalPoints > b.TotalPoints {
				assert.Less(t, a.Rank.Int, b.Rank.Int)
			}
		}
	}
}

func TestBuildLeaderboard_Empty(t *testing.T) {
	assert.Empty(t, usecases.BuildLeaderboard(nil, nil, nil))
}

func TestLeaderboardUsecase_Recompute_Reconciles(t *testing.T) {
	uc, m := newLeaderboardUsecase()
	ctx := context.Background()

	released := false
	m.locker.On("Acquire", ctx, "leaderboard:recompute", time.Minute).Return(func() { released = true }, nil).Once()
	m.uow.On("Do", ctx, mock.Anything).Return(nil).Once()

	m.users.On("List", ctx, 0, 0).Return([]*entities.User{
		{ID: 1, Name: "Tony", TeamID: null.UintFrom(1)},
		{ID: 2, Name: "Steve", TeamID: null.UintFrom(1)},
		{ID: 3, Name: "Thor", TeamID: null.UintFrom(1)},
	}, int64(3), nil).Once()
	m.teams.On("List", ctx, 0, 0).Return([]*entities.Team{{ID: 1, Name: "Team Marvel"}}, int64(1), nil).Once()
	m.activities.On("TotalsByUser", ctx).Return(map[uint]entities.ActivityTotals{
		1: {UserID: 1, TotalActivities: 1, TotalDuration: 10, TotalPoints: 100},
		2: {UserID: 2, TotalActivities: 1, TotalDuration: 10, TotalPoints: 50},
	}, nil).Once()

	unchanged := &entities.LeaderboardEntry{ID: 10, UserID: 1, UserName: "Tony", TeamID: null.UintFrom(1), TeamName: null.StringFrom("Team Marvel"),
		TotalPoints: 100, TotalActivities: 1, TotalDuration: 10, Rank: null.IntFrom(1)}
	stale := &entities.LeaderboardEntry{ID: 11, UserID: 2, UserName: "Steve", TotalPoints: 0, Rank: null.IntFrom(2)}
	orphan := &entities.LeaderboardEntry{ID: 12, UserID: 77, UserName: "Gone", Rank: null.IntFrom(3)}
	m.board.On("List", ctx, 0, 0).Return([]*entities.LeaderboardEntry{unchanged, stale, orphan}, int64(3), nil).Once()

	m.board.On("Update", ctx, mock.MatchedBy(func(e *entities.LeaderboardEntry) bool {
		return e.ID == 11 && e.TotalPoints == 50 && e.TeamName == null.StringFrom("Team Marvel") && e.Rank == null.IntFrom(2)
	})).Return(nil).Once()
	m.board.On("Create", ctx, mock.MatchedBy(func(e *entities.LeaderboardEntry) bool {
		return e.UserID == 3 && e.Rank == null.IntFrom(3)
	})).Return(nil).Once()
	m.board.On("Delete", ctx, uint(12)).Return(nil).Once()

	summary, err := uc.Recompute(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Entries)
	assert.Equal(t, 1, summary.Unchanged)
	assert.Equal(t, 1, summary.Updated)
	assert.Equal(t, 1, summary.Created)
	assert.Equal(t, 1, summary.Deleted)
	assert.True(t, released)
	m.board.AssertExpectations(t)
}

func TestLeaderboardUsecase_Recompute_LockHeld(t *testing.T) {
	uc, m := newLeaderboardUsecase()
	ctx := context.Background()

	m.locker.On("Acquire", ctx, mock.Anything, mock.Anything).Return(nil, redis.ErrLockHeld).Once()

	_, err := uc.Recompute(ctx)
	assert.ErrorIs(t, err, usecases.ErrRecomputeInProgress)
	m.uow.AssertNotCalled(t, "Do", mock.Anything, mock.Anything)
}

func TestLeaderboardUsecase_Recompute_StorageErrorReleasesLock(t *testing.T) {
	uc, m := newLeaderboardUsecase()
	ctx := context.Background()

	released := false
	m.locker.On("Acquire", ctx, mock.Anything, mock.Anything).Return(func() { released = true }, nil).Once()
	m.uow.On("Do", ctx, mock.Anything).Return(nil).Once()
	m.users.On("List", ctx, 0, 0).Return(nil, int64(0), errors.New("db down")).Once()

	_, err := uc.Recompute(ctx)
	assert.EqualError(t, err, "db down")
	assert.True(t, released)
}

func TestLeaderboardUsecase_Create_DuplicateUser(t *testing.T) {
	uc, m := newLeaderboardUsecase()
	ctx := context.Background()

	m.board.On("GetByUserID", ctx, uint(5)).Return(&entities.LeaderboardEntry{ID: 1, UserID: 5}, nil).Once()

	_, err := uc.Create(ctx, &entities.LeaderboardInput{UserID: entities.Value(uint(5)), UserName: entities.Value("Diana")})
	requireFieldError(t, err, "user_id", "leaderboard with this user id already exists.")
}

func TestLeaderboardUsecase_CreateAndUpdate(t *testing.T) {
	uc, m := newLeaderboardUsecase()
	ctx := context.Background()

	m.board.On("GetByUserID", ctx, uint(5)).Return(nil, domainerrors.ErrNotFound).Once()
	m.board.On("Create", ctx, mock.MatchedBy(func(e *entities.LeaderboardEntry) bool {
		return e.UserID == 5 && e.TotalPoints == 0 && !e.Rank.Valid
	})).Return(nil).Once()

	entry, err := uc.Create(ctx, &entities.LeaderboardInput{UserID: entities.Value(uint(5)), UserName: entities.Value("Diana")})
	require.NoError(t, err)
	entry.ID = 4

	m.board.On("GetByID", ctx, uint(4)).Return(entry, nil).Once()
	m.board.On("Update", ctx, mock.Anything).Return(nil).Once()
	updated, err := uc.Update(ctx, 4, &entities.LeaderboardInput{Rank: entities.Value(1)}, true)
	require.NoError(t, err)
	assert.Equal(t, null.IntFrom(1), updated.Rank)
}
