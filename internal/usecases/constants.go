package usecases

import "time"

// Leaderboard aggregator settings
const (
	lockKeyPrefix         = "octofit:lock:"
	leaderboardLockName   = "leaderboard:recompute"
	DefaultLeaderboardTTL = 2 * time.Minute
)

// Resource names used in uniqueness messages
const (
	resourceTeam        = "team"
	resourceUser        = "user"
	resourceLeaderboard = "leaderboard"
)
