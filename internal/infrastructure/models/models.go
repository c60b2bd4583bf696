package models

// All lists every persisted model, in migration order.
func All() []interface{} {
	return []interface{}{
		&Team{},
		&User{},
		&Activity{},
		&LeaderboardEntry{},
		&Workout{},
	}
}
