package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pathTiles(ids ...uint) []Tile {
	tiles := make([]Tile, 0, len(ids))
	for _, id := range ids {
		tiles = append(tiles, Tile{QuestionID: id, Category: TileBook})
	}
	return tiles
}

func TestComputeStatuses_SequentialOrder(t *testing.T) {
	// Unit with 3 questions, first one answered: complete / active / locked.
	tiles := pathTiles(1, 2, 3)
	completed := NewCompletedSet([]uint{1})

	statuses := ComputeStatuses(tiles, completed, PolicySequential)

	require.Len(t, statuses, 3)
	assert.Equal(t, StatusComplete, statuses[1])
	assert.Equal(t, StatusActive, statuses[2])
	assert.Equal(t, StatusLocked, statuses[3])
}

func TestComputeStatuses_NothingCompleted(t *testing.T) {
	statuses := ComputeStatuses(pathTiles(10, 20), NewCompletedSet(nil), PolicySequential)

	assert.Equal(t, StatusActive, statuses[10])
	assert.Equal(t, StatusLocked, statuses[20])
}

func TestComputeStatuses_AllCompleted(t *testing.T) {
	statuses := ComputeStatuses(pathTiles(1, 2), NewCompletedSet([]uint{1, 2}), PolicySequential)

	for id, s := range statuses {
		assert.Equalf(t, StatusComplete, s, "tile %d", id)
	}
}

func TestComputeStatuses_AtMostOneActive(t *testing.T) {
	tiles := pathTiles(1, 2, 3, 4, 5)
	completedSets := [][]uint{nil, {1}, {1, 2}, {1, 2, 3, 4}, {1, 2, 3, 4, 5}, {3, 5}}

	for _, ids := range completedSets {
		statuses := ComputeStatuses(tiles, NewCompletedSet(ids), PolicySequential)
		active := 0
		for _, s := range statuses {
			if s == StatusActive {
				active++
			}
		}
		assert.LessOrEqualf(t, active, 1, "completed=%v", ids)
	}
}

func TestComputeStatuses_CompletePrefixOnly(t *testing.T) {
	// Answers recorded ahead of the active tile do not unlock it: COMPLETE
	// is always a contiguous prefix, everything past the active tile stays
	// locked even when already answered.
	tiles := pathTiles(1, 2, 3, 4, 5)

	cases := []struct {
		completed []uint
		want      map[uint]TileStatus
	}{
		{[]uint{3, 5}, map[uint]TileStatus{
			1: StatusActive, 2: StatusLocked, 3: StatusLocked, 4: StatusLocked, 5: StatusLocked,
		}},
		{[]uint{1, 2, 4}, map[uint]TileStatus{
			1: StatusComplete, 2: StatusComplete, 3: StatusActive, 4: StatusLocked, 5: StatusLocked,
		}},
		{[]uint{2, 3, 4, 5}, map[uint]TileStatus{
			1: StatusActive, 2: StatusLocked, 3: StatusLocked, 4: StatusLocked, 5: StatusLocked,
		}},
	}

	for _, tc := range cases {
		statuses := ComputeStatuses(tiles, NewCompletedSet(tc.completed), PolicySequential)
		assert.Equalf(t, tc.want, statuses, "completed=%v", tc.completed)
	}
}

func TestComputeStatuses_UnknownCompletedIDsIgnored(t *testing.T) {
	statuses := ComputeStatuses(pathTiles(1, 2), NewCompletedSet([]uint{99, 1}), PolicySequential)

	require.Len(t, statuses, 2)
	assert.Equal(t, StatusComplete, statuses[1])
	assert.Equal(t, StatusActive, statuses[2])
	assert.NotContains(t, statuses, uint(99))
}

func TestComputeStatuses_EmptyTiles(t *testing.T) {
	statuses := ComputeStatuses(nil, NewCompletedSet([]uint{1}), PolicySequential)
	assert.Empty(t, statuses)
}

func TestComputeStatuses_Idempotent(t *testing.T) {
	tiles := pathTiles(4, 5, 6, 7)
	completed := NewCompletedSet([]uint{4, 5})

	first := ComputeStatuses(tiles, completed, PolicySequential)
	second := ComputeStatuses(tiles, completed, PolicySequential)

	assert.Equal(t, first, second)
}

func TestComputeStatuses_RandomPolicy(t *testing.T) {
	tiles := pathTiles(1, 2, 3, 4)
	completed := NewCompletedSet([]uint{1})

	statuses := ComputeStatuses(tiles, completed, PolicyRandom)

	assert.Equal(t, StatusComplete, statuses[1])

	// Exactly one of the incomplete tiles is active, wherever it landed.
	active := 0
	for _, id := range []uint{2, 3, 4} {
		switch statuses[id] {
		case StatusActive:
			active++
		case StatusLocked:
		default:
			t.Fatalf("tile %d: unexpected status %s", id, statuses[id])
		}
	}
	assert.Equal(t, 1, active)
}

func TestComputeStatuses_RandomPolicyAllComplete(t *testing.T) {
	statuses := ComputeStatuses(pathTiles(1, 2), NewCompletedSet([]uint{1, 2}), PolicyRandom)
	assert.Equal(t, StatusComplete, statuses[1])
	assert.Equal(t, StatusComplete, statuses[2])
}

func TestSelectActive(t *testing.T) {
	tiles := pathTiles(1, 2, 3)

	id, ok := SelectActive(tiles, NewCompletedSet([]uint{1}))
	require.True(t, ok)
	assert.Equal(t, uint(2), id)

	_, ok = SelectActive(tiles, NewCompletedSet([]uint{1, 2, 3}))
	assert.False(t, ok)

	_, ok = SelectActive(nil, NewCompletedSet(nil))
	assert.False(t, ok)
}
