package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"octofit.backend/internal/domain/entities"
	domainerrors "octofit.backend/internal/domain/errors"
	"octofit.backend/internal/usecases"
)

func TestActivityUsecase_Create(t *testing.T) {
	repo := new(MockActivityRepository)
	uc := usecases.NewActivityUsecase(repo)
	ctx := context.Background()
	when := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	repo.On("Create", ctx, mock.MatchedBy(func(a *entities.Activity) bool {
		return a.UserID == 4 && a.ActivityType == "Yoga" && !a.Calories.Valid && a.Date.Equal(when)
	})).Return(nil).Once()

	a, err := uc.Create(ctx, &entities.ActivityInput{
		UserID:       entities.Value(uint(4)),
		ActivityType: entities.Value("Yoga"),
		Duration:     entities.Value(40),
		Date:         entities.Value(when),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, a.Points())
	repo.AssertExpectations(t)
}

func TestActivityUsecase_Create_Invalid(t *testing.T) {
	repo := new(MockActivityRepository)
	uc := usecases.NewActivityUsecase(repo)

	_, err := uc.Create(context.Background(), &entities.ActivityInput{Duration: entities.Value(-3)})
	requireFieldError(t, err, "duration", "Ensure this value is greater than or equal to 0.")
	requireFieldError(t, err, "user_id", entities.MsgRequired)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestActivityUsecase_PatchClearsCalories(t *testing.T) {
	repo := new(MockActivityRepository)
	uc := usecases.NewActivityUsecase(repo)
	ctx := context.Background()

	stored := &entities.Activity{ID: 2, UserID: 1, ActivityType: "Boxing", Duration: 30, Calories: null.IntFrom(300), Date: time.Now()}
	repo.On("GetByID", ctx, uint(2)).Return(stored, nil).Once()
	repo.On("Update", ctx, mock.Anything).Return(nil).Once()

	a, err := uc.Update(ctx, 2, &entities.ActivityInput{Calories: entities.Null[int]()}, true)
	require.NoError(t, err)
	assert.False(t, a.Calories.Valid)
	assert.Equal(t, "Boxing", a.ActivityType)
}

func TestActivityUsecase_DeleteNotFound(t *testing.T) {
	repo := new(MockActivityRepository)
	uc := usecases.NewActivityUsecase(repo)
	ctx := context.Background()

	repo.On("Delete", ctx, uint(8)).Return(domainerrors.ErrNotFound).Once()
	assert.ErrorIs(t, uc.Delete(ctx, 8), domainerrors.ErrNotFound)
}
