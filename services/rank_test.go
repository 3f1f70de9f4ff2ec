package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcroch/TRP-2024/models"
)

func TestRank_SortsByXPDescending(t *testing.T) {
	users := []models.User{
		{DNI: "11", Name: "Ana", XP: 30},
		{DNI: "22", Name: "Bruno", XP: 90},
		{DNI: "33", Name: "Carla", XP: 60},
	}
	current := models.User{DNI: "44", Name: "Diego", XP: 50}

	entries := Rank(users, current)

	require.Len(t, entries, 4)
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].XP, entries[i].XP)
	}
	assert.Equal(t, "22", entries[0].DNI)
}

func TestRank_DeduplicatesCurrentUserByDNI(t *testing.T) {
	// Server list already contains the viewer; the live record wins.
	users := []models.User{
		{DNI: "A", Name: "Alba", XP: 50},
		{DNI: "B", Name: "Beto", XP: 90},
	}
	current := models.User{DNI: "A", Name: "Alba", XP: 50}

	entries := Rank(users, current)

	require.Len(t, entries, 2)
	assert.Equal(t, "B", entries[0].DNI)
	assert.Equal(t, "A", entries[1].DNI)
	assert.True(t, entries[1].IsCurrentUser)
	assert.False(t, entries[0].IsCurrentUser)

	place, ok := RankOf(entries, "A")
	require.True(t, ok)
	assert.Equal(t, 2, place)
}

func TestRank_SameNameDifferentDNIBothKept(t *testing.T) {
	// Name collisions must not collapse entries; only the DNI matters.
	users := []models.User{
		{DNI: "X1", Name: "Juan", Lastname: "Pérez", XP: 40},
	}
	current := models.User{DNI: "X2", Name: "Juan", Lastname: "Pérez", XP: 40}

	entries := Rank(users, current)
	require.Len(t, entries, 2)
}

func TestRank_StableForEqualXP(t *testing.T) {
	users := []models.User{
		{DNI: "1", Name: "a", XP: 10},
		{DNI: "2", Name: "b", XP: 10},
		{DNI: "3", Name: "c", XP: 10},
	}
	current := models.User{DNI: "4", Name: "d", XP: 10}

	entries := Rank(users, current)

	got := make([]string, 0, len(entries))
	for _, e := range entries {
		got = append(got, e.DNI)
	}
	assert.Equal(t, []string{"1", "2", "3", "4"}, got)
}

func TestRank_NormalizesMissingFields(t *testing.T) {
	users := []models.User{{DNI: "9"}}
	current := models.User{DNI: "8", Name: "Eva", XP: 5}

	entries := Rank(users, current)

	require.Len(t, entries, 2)
	assert.Equal(t, "", entries[1].Lastname)
	assert.Equal(t, 0, entries[1].XP)
}

func TestRankOf_AbsentUser(t *testing.T) {
	entries := Rank(nil, models.User{DNI: "1", XP: 1})
	_, ok := RankOf(entries, "nope")
	assert.False(t, ok)
}
