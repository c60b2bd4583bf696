package usecases

import (
	"context"
	"strings"

	"octofit.backend/internal/domain/entities"
	"octofit.backend/internal/domain/repositories"
)

// TeamUsecase handles team business logic
type TeamUsecase struct {
	teamRepo repositories.TeamRepository
}

// NewTeamUsecase creates a new team usecase
func NewTeamUsecase(teamRepo repositories.TeamRepository) *TeamUsecase {
	return &TeamUsecase{teamRepo: teamRepo}
}

// List returns teams by id. A limit of 0 returns every team.
func (u *TeamUsecase) List(ctx context.Context, limit, offset int) ([]*entities.Team, int64, error) {
	return u.teamRepo.List(ctx, limit, offset)
}

// Get returns one team
func (u *TeamUsecase) Get(ctx context.Context, id uint) (*entities.Team, error) {
	return u.teamRepo.GetByID(ctx, id)
}

// Create validates input and stores a new team
func (u *TeamUsecase) Create(ctx context.Context, input *entities.TeamInput) (*entities.Team, error) {
	if err := input.Validate(false); err != nil {
		return nil, err
	}

	team := &entities.Team{}
	input.ApplyTo(team)
	if err := u.ensureUniqueName(ctx, team.Name, 0); err != nil {
		return nil, err
	}

	if err := u.teamRepo.Create(ctx, team); err != nil {
		return nil, mapDuplicate(err, resourceTeam, "name")
	}
	return team, nil
}

// Update applies input to an existing team. partial skips required checks
// for omitted fields.
func (u *TeamUsecase) Update(ctx context.Context, id uint, input *entities.TeamInput, partial bool) (*entities.Team, error) {
	team, err := u.teamRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(partial); err != nil {
		return nil, err
	}

	input.ApplyTo(team)
	if input.Name.Present() {
		if err := u.ensureUniqueName(ctx, team.Name, team.ID); err != nil {
			return nil, err
		}
	}

	if err := u.teamRepo.Update(ctx, team); err != nil {
		return nil, mapDuplicate(err, resourceTeam, "name")
	}
	return team, nil
}

// Delete removes a team. Users and leaderboard rows keep their team_id.
func (u *TeamUsecase) Delete(ctx context.Context, id uint) error {
	return u.teamRepo.Delete(ctx, id)
}

func (u *TeamUsecase) ensureUniqueName(ctx context.Context, name string, selfID uint) error {
	existing, err := u.teamRepo.GetByName(ctx, strings.TrimSpace(name))
	if err != nil {
		if isNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return uniqueViolation(resourceTeam, "name")
	}
	return nil
}
