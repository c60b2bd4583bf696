package usecases

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"octofit.backend/internal/domain/entities"
	domainerrors "octofit.backend/internal/domain/errors"
	"octofit.backend/internal/domain/repositories"
	"octofit.backend/internal/observability"
	"octofit.backend/pkg/logger"
	"octofit.backend/pkg/redis"
)

// ErrRecomputeInProgress is returned when another process holds the
// aggregator lock.
var ErrRecomputeInProgress = errors.New("leaderboard recomputation already in progress")

// Locker provides cross-process mutual exclusion.
type Locker interface {
	Acquire(ctx context.Context, name string, ttl time.Duration) (func(), error)
}

// LeaderboardUsecase serves leaderboard rows and rebuilds them from the
// activity history.
type LeaderboardUsecase struct {
	leaderboardRepo repositories.LeaderboardRepository
	userRepo        repositories.UserRepository
	teamRepo        repositories.TeamRepository
	activityRepo    repositories.ActivityRepository
	uow             repositories.UnitOfWork
	locker          Locker
	lockTTL         time.Duration
	now             func() time.Time
}

// NewLeaderboardUsecase creates a new leaderboard usecase
func NewLeaderboardUsecase(
	leaderboardRepo repositories.LeaderboardRepository,
	userRepo repositories.UserRepository,
	teamRepo repositories.TeamRepository,
	activityRepo repositories.ActivityRepository,
	uow repositories.UnitOfWork,
	locker Locker,
	lockTTL time.Duration,
) *LeaderboardUsecase {
	if lockTTL <= 0 {
		lockTTL = DefaultLeaderboardTTL
	}
	if locker == nil {
		locker = redis.NewLocker(lockKeyPrefix)
	}
	return &LeaderboardUsecase{
		leaderboardRepo: leaderboardRepo,
		userRepo:        userRepo,
		teamRepo:        teamRepo,
		activityRepo:    activityRepo,
		uow:             uow,
		locker:          locker,
		lockTTL:         lockTTL,
		now:             time.Now,
	}
}

// SetClock replaces the time source used for run durations.
func (u *LeaderboardUsecase) SetClock(now func() time.Time) {
	if now != nil {
		u.now = now
	}
}

// List returns ranked rows first, by rank, then unranked rows by points.
func (u *LeaderboardUsecase) List(ctx context.Context, limit, offset int) ([]*entities.LeaderboardEntry, int64, error) {
	return u.leaderboardRepo.List(ctx, limit, offset)
}

func (u *LeaderboardUsecase) Get(ctx context.Context, id uint) (*entities.LeaderboardEntry, error) {
	return u.leaderboardRepo.GetByID(ctx, id)
}

// Create stores a manual entry. The next recomputation overwrites it.
func (u *LeaderboardUsecase) Create(ctx context.Context, input *entities.LeaderboardInput) (*entities.LeaderboardEntry, error) {
	if err := input.Validate(false); err != nil {
		return nil, err
	}
	entry := &entities.LeaderboardEntry{}
	input.ApplyTo(entry)
	if err := u.ensureUniqueUser(ctx, entry.UserID, 0); err != nil {
		return nil, err
	}
	if err := u.leaderboardRepo.Create(ctx, entry); err != nil {
		return nil, mapDuplicate(err, resourceLeaderboard, "user_id")
	}
	return entry, nil
}

func (u *LeaderboardUsecase) Update(ctx context.Context, id uint, input *entities.LeaderboardInput, partial bool) (*entities.LeaderboardEntry, error) {
	entry, err := u.leaderboardRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(partial); err != nil {
		return nil, err
	}
	input.ApplyTo(entry)
	if input.UserID.Present() {
		if err := u.ensureUniqueUser(ctx, entry.UserID, entry.ID); err != nil {
			return nil, err
		}
	}
	if err := u.leaderboardRepo.Update(ctx, entry); err != nil {
		return nil, mapDuplicate(err, resourceLeaderboard, "user_id")
	}
	return entry, nil
}

func (u *LeaderboardUsecase) Delete(ctx context.Context, id uint) error {
	return u.leaderboardRepo.Delete(ctx, id)
}

func (u *LeaderboardUsecase) ensureUniqueUser(ctx context.Context, userID, selfID uint) error {
	existing, err := u.leaderboardRepo.GetByUserID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return uniqueViolation(resourceLeaderboard, "user_id")
	}
	return nil
}

// Recompute rebuilds the leaderboard from the activity history in a single
// transaction under the aggregator lock. Rows whose standing did not change
// are left untouched, so back-to-back runs produce identical rows.
func (u *LeaderboardUsecase) Recompute(ctx context.Context) (*entities.RecomputeSummary, error) {
	start := u.now()

	release, err := u.locker.Acquire(ctx, leaderboardLockName, u.lockTTL)
	if err != nil {
		if errors.Is(err, redis.ErrLockHeld) {
			observability.RecordLeaderboardOutcome(observability.OutcomeSkipped)
			return nil, ErrRecomputeInProgress
		}
		observability.RecordLeaderboardOutcome(observability.OutcomeError)
		return nil, err
	}
	defer release()

	var summary entities.RecomputeSummary
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		s, err := u.reconcile(txCtx)
		if err != nil {
			return err
		}
		summary = s
		return nil
	})
	if err != nil {
		observability.RecordLeaderboardOutcome(observability.OutcomeError)
		logger.Error(ctx, "Leaderboard recomputation failed", zap.Error(err))
		return nil, err
	}

	end := u.now()
	summary.Duration = end.Sub(start)
	observability.RecordLeaderboardRun(summary.Entries, summary.Duration, end)
	logger.Info(ctx, "Leaderboard recomputed",
		zap.Int("entries", summary.Entries),
		zap.Int("created", summary.Created),
		zap.Int("updated", summary.Updated),
		zap.Int("deleted", summary.Deleted),
		zap.Int("unchanged", summary.Unchanged),
		zap.Duration("duration", summary.Duration),
	)
	return &summary, nil
}

func (u *LeaderboardUsecase) reconcile(ctx context.Context) (entities.RecomputeSummary, error) {
	var summary entities.RecomputeSummary

	users, _, err := u.userRepo.List(ctx, 0, 0)
	if err != nil {
		return summary, err
	}
	teams, _, err := u.teamRepo.List(ctx, 0, 0)
	if err != nil {
		return summary, err
	}
	totals, err := u.activityRepo.TotalsByUser(ctx)
	if err != nil {
		return summary, err
	}
	existing, _, err := u.leaderboardRepo.List(ctx, 0, 0)
	if err != nil {
		return summary, err
	}

	stored := make(map[uint]*entities.LeaderboardEntry, len(existing))
	for _, row := range existing {
		stored[row.UserID] = row
	}

	computed := BuildLeaderboard(users, teams, totals)
	summary.Entries = len(computed)
	for _, entry := range computed {
		old, ok := stored[entry.UserID]
		if !ok {
			if err := u.leaderboardRepo.Create(ctx, entry); err != nil {
				return summary, err
			}
			summary.Created++
			continue
		}
		delete(stored, entry.UserID)

		if old.SameStanding(entry) {
			summary.Unchanged++
			continue
		}
		entry.ID = old.ID
		if err := u.leaderboardRepo.Update(ctx, entry); err != nil {
			return summary, err
		}
		summary.Updated++
	}

	// rows left over belong to users that no longer exist
	orphans := make([]*entities.LeaderboardEntry, 0, len(stored))
	for _, row := range stored {
		orphans = append(orphans, row)
	}
	sort.Slice(orphans, func(i, j int) bool { return orphans[i].ID < orphans[j].ID })
	for _, row := range orphans {
		if err := u.leaderboardRepo.Delete(ctx, row.ID); err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return summary, err
		}
		summary.Deleted++
	}

	return summary, nil
}

// BuildLeaderboard computes one entry per user from the activity totals.
// Users with no activities score zero. team_name is looked up by team_id and
// left null when the team does not exist. Entries are ordered by points,
// ties keeping user id order, and ranked 1..N without gaps.
func BuildLeaderboard(users []*entities.User, teams []*entities.Team, totals map[uint]entities.ActivityTotals) []*entities.LeaderboardEntry {
	teamNames := make(map[uint]string, len(teams))
	for _, t := range teams {
		teamNames[t.ID] = t.Name
	}

	ordered := make([]*entities.User, len(users))
	copy(ordered, users)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	entries := make([]*entities.LeaderboardEntry, 0, len(ordered))
	for _, user := range ordered {
		t := totals[user.ID]
		entry := &entities.LeaderboardEntry{
			UserID:          user.ID,
			UserName:        user.Name,
			TeamID:          user.TeamID,
			TotalPoints:     t.TotalPoints,
			TotalActivities: t.TotalActivities,
			TotalDuration:   t.TotalDuration,
		}
		if user.TeamID.Valid {
			if name, ok := teamNames[user.TeamID.Uint]; ok {
				entry.TeamName = null.StringFrom(name)
			}
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalPoints > entries[j].TotalPoints
	})
	for i, entry := range entries {
		entry.Rank = null.IntFrom(i + 1)
	}
	return entries
}
