package usecases

import (
	"context"

	"octofit.backend/internal/domain/entities"
	"octofit.backend/internal/domain/repositories"
	"octofit.backend/pkg/crypto"
)

// PasswordHasher turns a plaintext password into its stored form.
type PasswordHasher func(password string) (string, error)

// UserUsecase handles user business logic
type UserUsecase struct {
	userRepo     repositories.UserRepository
	hashPassword PasswordHasher
}

// NewUserUsecase creates a new user usecase. A nil hasher uses bcrypt at the
// default cost.
func NewUserUsecase(userRepo repositories.UserRepository, hasher PasswordHasher) *UserUsecase {
	if hasher == nil {
		hasher = crypto.HashPassword
	}
	return &UserUsecase{userRepo: userRepo, hashPassword: hasher}
}

// List returns users by id
func (u *UserUsecase) List(ctx context.Context, limit, offset int) ([]*entities.User, int64, error) {
	return u.userRepo.List(ctx, limit, offset)
}

// Get returns one user
func (u *UserUsecase) Get(ctx context.Context, id uint) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// Create validates input, hashes the password and stores a new user
func (u *UserUsecase) Create(ctx context.Context, input *entities.UserInput) (*entities.User, error) {
	if err := input.Validate(false); err != nil {
		return nil, err
	}

	user := &entities.User{}
	input.ApplyTo(user)
	if err := u.ensureUniqueEmail(ctx, user.Email, 0); err != nil {
		return nil, err
	}
	if err := u.setPassword(user, input); err != nil {
		return nil, err
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, mapDuplicate(err, resourceUser, "email")
	}
	return user, nil
}

// Update merges input into the stored user. Full and partial updates behave
// the same: omitted fields keep their value and the password only changes
// when supplied.
func (u *UserUsecase) Update(ctx context.Context, id uint, input *entities.UserInput) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(true); err != nil {
		return nil, err
	}

	input.ApplyTo(user)
	if input.Email.Present() {
		if err := u.ensureUniqueEmail(ctx, user.Email, user.ID); err != nil {
			return nil, err
		}
	}
	if err := u.setPassword(user, input); err != nil {
		return nil, err
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, mapDuplicate(err, resourceUser, "email")
	}
	return user, nil
}

// Delete removes a user. Activities and leaderboard rows referencing it stay.
func (u *UserUsecase) Delete(ctx context.Context, id uint) error {
	return u.userRepo.Delete(ctx, id)
}

func (u *UserUsecase) setPassword(user *entities.User, input *entities.UserInput) error {
	if !input.Password.Present() {
		return nil
	}
	hash, err := u.hashPassword(input.Password.Value)
	if err != nil {
		return err
	}
	user.Password = hash
	return nil
}

func (u *UserUsecase) ensureUniqueEmail(ctx context.Context, email string, selfID uint) error {
	existing, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return uniqueViolation(resourceUser, "email")
	}
	return nil
}
