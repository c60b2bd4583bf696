package models

import "testing"

func TestTableNames(t *testing.T) {
	if got := (LeaderboardEntry{}).TableName(); got != "leaderboard" {
		t.Fatalf("unexpected LeaderboardEntry table name: %s", got)
	}
}

func TestAllListsEveryModel(t *testing.T) {
	if got := len(All()); got != 5 {
		t.Fatalf("expected 5 models, got %d", got)
	}
}
