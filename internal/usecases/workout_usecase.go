package usecases

import (
	"context"

	"octofit.backend/internal/domain/entities"
	"octofit.backend/internal/domain/repositories"
)

// WorkoutUsecase manages the workout catalog
type WorkoutUsecase struct {
	workoutRepo repositories.WorkoutRepository
}

// NewWorkoutUsecase creates a new workout usecase
func NewWorkoutUsecase(workoutRepo repositories.WorkoutRepository) *WorkoutUsecase {
	return &WorkoutUsecase{workoutRepo: workoutRepo}
}

func (u *WorkoutUsecase) List(ctx context.Context, limit, offset int) ([]*entities.Workout, int64, error) {
	return u.workoutRepo.List(ctx, limit, offset)
}

func (u *WorkoutUsecase) Get(ctx context.Context, id uint) (*entities.Workout, error) {
	return u.workoutRepo.GetByID(ctx, id)
}

func (u *WorkoutUsecase) Create(ctx context.Context, input *entities.WorkoutInput) (*entities.Workout, error) {
	if err := input.Validate(false); err != nil {
		return nil, err
	}
	workout := &entities.Workout{TargetMuscles: []string{}}
	input.ApplyTo(workout)
	if err := u.workoutRepo.Create(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

func (u *WorkoutUsecase) Update(ctx context.Context, id uint, input *entities.WorkoutInput, partial bool) (*entities.Workout, error) {
	workout, err := u.workoutRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(partial); err != nil {
		return nil, err
	}
	input.ApplyTo(workout)
	if err := u.workoutRepo.Update(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

func (u *WorkoutUsecase) Delete(ctx context.Context, id uint) error {
	return u.workoutRepo.Delete(ctx, id)
}
