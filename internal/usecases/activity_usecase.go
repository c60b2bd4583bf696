package usecases

import (
	"context"

	"octofit.backend/internal/domain/entities"
	"octofit.backend/internal/domain/repositories"
)

// ActivityUsecase handles activity logging. Writes never touch the
// leaderboard; it is rebuilt by the aggregator.
type ActivityUsecase struct {
	activityRepo repositories.ActivityRepository
}

// NewActivityUsecase creates a new activity usecase
func NewActivityUsecase(activityRepo repositories.ActivityRepository) *ActivityUsecase {
	return &ActivityUsecase{activityRepo: activityRepo}
}

func (u *ActivityUsecase) List(ctx context.Context, limit, offset int) ([]*entities.Activity, int64, error) {
	return u.activityRepo.List(ctx, limit, offset)
}

func (u *ActivityUsecase) Get(ctx context.Context, id uint) (*entities.Activity, error) {
	return u.activityRepo.GetByID(ctx, id)
}

func (u *ActivityUsecase) Create(ctx context.Context, input *entities.ActivityInput) (*entities.Activity, error) {
	if err := input.Validate(false); err != nil {
		return nil, err
	}
	activity := &entities.Activity{}
	input.ApplyTo(activity)
	if err := u.activityRepo.Create(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (u *ActivityUsecase) Update(ctx context.Context, id uint, input *entities.ActivityInput, partial bool) (*entities.Activity, error) {
	activity, err := u.activityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(partial); err != nil {
		return nil, err
	}
	input.ApplyTo(activity)
	if err := u.activityRepo.Update(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (u *ActivityUsecase) Delete(ctx context.Context, id uint) error {
	return u.activityRepo.Delete(ctx, id)
}
