// services/rank.go - Leaderboard ranking
package services

import (
	"sort"

	"github.com/gcroch/TRP-2024/models"
)

// LeaderboardEntry is one row of the ranked leaderboard.
type LeaderboardEntry struct {
	DNI           string `json:"DNI"`
	Name          string `json:"name"`
	Lastname      string `json:"lastname"`
	XP            int    `json:"exp"`
	IsCurrentUser bool   `json:"isCurrentUser"`
}

// Rank merges the server user list with the viewer's live record and
// orders it by XP descending. The viewer is de-duplicated by DNI (never by
// name, which collides on common names) and appears exactly once, flagged
// IsCurrentUser. The sort is stable: equal XP keeps input order.
func Rank(users []models.User, current models.User) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(users)+1)
	for _, u := range users {
		if u.DNI == current.DNI {
			continue
		}
		entries = append(entries, LeaderboardEntry{
			DNI:      u.DNI,
			Name:     u.Name,
			Lastname: u.Lastname,
			XP:       u.XP,
		})
	}
	entries = append(entries, LeaderboardEntry{
		DNI:           current.DNI,
		Name:          current.Name,
		Lastname:      current.Lastname,
		XP:            current.XP,
		IsCurrentUser: true,
	})

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].XP > entries[j].XP
	})
	return entries
}

// RankOf returns the 1-based place of the user with the given DNI in a
// ranked list, or false when they are absent.
func RankOf(entries []LeaderboardEntry, dni string) (int, bool) {
	for i, e := range entries {
		if e.DNI == dni {
			return i + 1, true
		}
	}
	return 0, false
}
