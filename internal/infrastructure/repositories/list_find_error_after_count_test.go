package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRepository_List_FindErrorAfterCount_Branches(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		table string
		list  func(db *gorm.DB) error
	}{
		{"teams", func(db *gorm.DB) error { _, _, err := NewTeamRepository(db).List(ctx, 10, 0); return err }},
		{"users", func(db *gorm.DB) error { _, _, err := NewUserRepository(db).List(ctx, 10, 0); return err }},
		{"activities", func(db *gorm.DB) error { _, _, err := NewActivityRepository(db).List(ctx, 10, 0); return err }},
		{"leaderboard", func(db *gorm.DB) error { _, _, err := NewLeaderboardRepository(db).List(ctx, 10, 0); return err }},
		{"workouts", func(db *gorm.DB) error { _, _, err := NewWorkoutRepository(db).List(ctx, 10, 0); return err }},
	}

	for _, tc := range cases {
		t.Run(tc.table, func(t *testing.T) {
			db := newMigratedDB(t)
			registerFindErrorAfterCount(t, db, tc.table)
			require.Error(t, tc.list(db))
		})
	}
}

func TestRepository_List_CountError(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	_, _, err := NewTeamRepository(db).List(ctx, 0, 0)
	require.Error(t, err, "missing table surfaces as an error")
	_, err = NewActivityRepository(db).TotalsByUser(ctx)
	require.Error(t, err)
}
