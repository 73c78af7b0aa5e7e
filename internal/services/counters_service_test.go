package services

import (
	"testing"
	"time"
)

func TestStreakFromDays(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		days []string
		want int
	}{
		{"no logins", nil, 0},
		{"single login today", []string{"2025-06-10"}, 1},
		{"three consecutive days ending today", []string{"2025-06-10", "2025-06-09", "2025-06-08"}, 3},
		{"streak ends yesterday, not logged today", []string{"2025-06-09", "2025-06-08", "2025-06-07"}, 3},
		{"gap breaks streak", []string{"2025-06-10", "2025-06-09", "2025-06-07"}, 2},
		{"stale logins only", []string{"2025-06-01", "2025-05-31"}, 0},
		{"month boundary", []string{"2025-06-10", "2025-06-09", "2025-06-08", "2025-06-07", "2025-06-06", "2025-06-05", "2025-06-04", "2025-06-03", "2025-06-02", "2025-06-01", "2025-05-31"}, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := streakFromDays(tt.days, now); got != tt.want {
				t.Errorf("streakFromDays(%v) = %d, want %d", tt.days, got, tt.want)
			}
		})
	}
}

func TestAllOwned(t *testing.T) {
	owned := map[string]bool{"bulbasaur": true, "charmander": true, "squirtle": true}

	if !allOwned(owned, starterNames) {
		t.Error("expected complete starter set to satisfy allOwned")
	}
	delete(owned, "squirtle")
	if allOwned(owned, starterNames) {
		t.Error("expected incomplete starter set to fail allOwned")
	}
	if !allOwned(map[string]bool{}, nil) {
		t.Error("expected empty requirement list to be vacuously satisfied")
	}
}
