package usecases

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/volatiletech/null/v8"

	"octofit.backend/internal/domain/entities"
	"octofit.backend/internal/domain/repositories"
	"octofit.backend/pkg/crypto"
)

// LeaderboardRecomputer rebuilds the leaderboard.
type LeaderboardRecomputer interface {
	Recompute(ctx context.Context) (*entities.RecomputeSummary, error)
}

// Seeder replaces the whole dataset with the demo teams, heroes, activities
// and workout catalog. It reports what it wrote instead of printing.
type Seeder struct {
	teamRepo        repositories.TeamRepository
	userRepo        repositories.UserRepository
	activityRepo    repositories.ActivityRepository
	leaderboardRepo repositories.LeaderboardRepository
	workoutRepo     repositories.WorkoutRepository
	leaderboard     LeaderboardRecomputer
	uow             repositories.UnitOfWork
	hashPassword    PasswordHasher
	rng             *rand.Rand
	now             func() time.Time
}

// NewSeeder creates a seeder. rng drives activity generation; a nil rng is
// seeded from the clock. A nil hasher uses bcrypt at the default cost.
func NewSeeder(
	teamRepo repositories.TeamRepository,
	userRepo repositories.UserRepository,
	activityRepo repositories.ActivityRepository,
	leaderboardRepo repositories.LeaderboardRepository,
	workoutRepo repositories.WorkoutRepository,
	leaderboard LeaderboardRecomputer,
	uow repositories.UnitOfWork,
	hasher PasswordHasher,
	rng *rand.Rand,
) *Seeder {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if hasher == nil {
		hasher = crypto.HashPassword
	}
	return &Seeder{
		teamRepo:        teamRepo,
		userRepo:        userRepo,
		activityRepo:    activityRepo,
		leaderboardRepo: leaderboardRepo,
		workoutRepo:     workoutRepo,
		leaderboard:     leaderboard,
		uow:             uow,
		hashPassword:    hasher,
		rng:             rng,
		now:             time.Now,
	}
}

// SetClock replaces the time source activity dates are derived from.
func (s *Seeder) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// Seed clears every table and repopulates it in one transaction.
func (s *Seeder) Seed(ctx context.Context) (*entities.SeedSummary, error) {
	var summary entities.SeedSummary
	err := s.uow.Do(ctx, func(txCtx context.Context) error {
		if err := s.clear(txCtx); err != nil {
			return fmt.Errorf("clear data: %w", err)
		}

		users, err := s.createTeamsAndUsers(txCtx, &summary)
		if err != nil {
			return err
		}

		activities := s.generateActivities(users)
		if err := s.activityRepo.CreateBatch(txCtx, activities); err != nil {
			return fmt.Errorf("create activities: %w", err)
		}
		summary.Activities = len(activities)

		board, err := s.leaderboard.Recompute(txCtx)
		if err != nil {
			return fmt.Errorf("recompute leaderboard: %w", err)
		}
		summary.Leaderboard = *board

		for _, w := range seedWorkouts() {
			if err := s.workoutRepo.Create(txCtx, w); err != nil {
				return fmt.Errorf("create workout %q: %w", w.Name, err)
			}
			summary.Workouts++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (s *Seeder) clear(ctx context.Context) error {
	for _, del := range []func(context.Context) error{
		s.userRepo.DeleteAll,
		s.teamRepo.DeleteAll,
		s.activityRepo.DeleteAll,
		s.leaderboardRepo.DeleteAll,
		s.workoutRepo.DeleteAll,
	} {
		if err := del(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) createTeamsAndUsers(ctx context.Context, summary *entities.SeedSummary) ([]*entities.User, error) {
	var users []*entities.User
	for _, st := range seedTeams {
		team := &entities.Team{Name: st.name, Description: null.StringFrom(st.description)}
		if err := s.teamRepo.Create(ctx, team); err != nil {
			return nil, fmt.Errorf("create team %q: %w", st.name, err)
		}
		summary.Teams++

		for _, hero := range st.heroes {
			hash, err := s.hashPassword(hero.password)
			if err != nil {
				return nil, fmt.Errorf("hash password for %q: %w", hero.email, err)
			}
			user := &entities.User{
				Name:     hero.name,
				Email:    hero.email,
				Password: hash,
				TeamID:   null.UintFrom(team.ID),
			}
			if err := s.userRepo.Create(ctx, user); err != nil {
				return nil, fmt.Errorf("create user %q: %w", hero.email, err)
			}
			users = append(users, user)
			summary.Users++
		}
	}
	return users, nil
}

func (s *Seeder) generateActivities(users []*entities.User) []*entities.Activity {
	now := s.now()
	var out []*entities.Activity
	for _, user := range users {
		n := s.between(seedMinActivities, seedMaxActivities)
		for i := 0; i < n; i++ {
			activityType := seedActivityTypes[s.rng.Intn(len(seedActivityTypes))]
			duration := s.between(seedMinDuration, seedMaxDuration)

			activity := &entities.Activity{
				UserID:       user.ID,
				ActivityType: activityType,
				Duration:     duration,
				Calories:     null.IntFrom(duration * s.between(seedMinCaloriesPerMin, seedMaxCaloriesPerMin)),
				Date:         now.AddDate(0, 0, -s.between(0, seedMaxAgeDays)),
			}
			if seedDistanceTypes[activityType] {
				km := seedMinDistanceKM + s.rng.Float64()*(seedMaxDistanceKM-seedMinDistanceKM)
				activity.Distance = null.Float64From(math.Round(km*100) / 100)
			}
			out = append(out, activity)
		}
	}
	return out
}

// between returns a uniform int in [lo, hi].
func (s *Seeder) between(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo+1)
}
