// services/progress.go - Lock/unlock derivation for path tiles
package services

import (
	"math/rand"
)

// TileStatus is the computed state of a tile on the learning path.
type TileStatus string

const (
	StatusLocked   TileStatus = "LOCKED"
	StatusActive   TileStatus = "ACTIVE"
	StatusComplete TileStatus = "COMPLETE"
)

// UnlockPolicy selects how the next active tile is chosen within a unit.
type UnlockPolicy int

const (
	// PolicySequential unlocks tiles strictly in unit order: the first
	// incomplete tile is active, everything after it locked. This is the
	// served default.
	PolicySequential UnlockPolicy = iota

	// PolicyRandom picks a uniformly random incomplete tile as active on
	// every recomputation. Non-deterministic between calls; kept for
	// parity with an earlier iteration of the product and only reachable
	// by explicit opt-in.
	PolicyRandom
)

// CompletedSet is the set of question ids the user has answered correctly.
type CompletedSet map[uint]struct{}

// NewCompletedSet builds a CompletedSet from a list of question ids.
func NewCompletedSet(ids []uint) CompletedSet {
	set := make(CompletedSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (s CompletedSet) Has(id uint) bool {
	_, ok := s[id]
	return ok
}

// ComputeStatuses derives the status of every tile in a unit.
//
// Sequential policy: tiles before the first incomplete one are COMPLETE,
// the first incomplete one is ACTIVE, the rest are LOCKED even when they
// appear in completed, so COMPLETE is always a prefix of the unit. When
// every tile is complete no tile is ACTIVE and none is LOCKED. Ids present
// in completed but absent from tiles are ignored. Pure; same inputs yield
// the same map (sequential policy only).
func ComputeStatuses(tiles []Tile, completed CompletedSet, policy UnlockPolicy) map[uint]TileStatus {
	statuses := make(map[uint]TileStatus, len(tiles))
	if len(tiles) == 0 {
		return statuses
	}

	if policy == PolicyRandom {
		return computeRandomStatuses(tiles, completed)
	}

	activeSeen := false
	for _, t := range tiles {
		switch {
		case activeSeen:
			statuses[t.QuestionID] = StatusLocked
		case completed.Has(t.QuestionID):
			statuses[t.QuestionID] = StatusComplete
		default:
			statuses[t.QuestionID] = StatusActive
			activeSeen = true
		}
	}
	return statuses
}

func computeRandomStatuses(tiles []Tile, completed CompletedSet) map[uint]TileStatus {
	statuses := make(map[uint]TileStatus, len(tiles))
	var incomplete []uint
	for _, t := range tiles {
		if completed.Has(t.QuestionID) {
			statuses[t.QuestionID] = StatusComplete
		} else {
			statuses[t.QuestionID] = StatusLocked
			incomplete = append(incomplete, t.QuestionID)
		}
	}
	if len(incomplete) > 0 {
		statuses[incomplete[rand.Intn(len(incomplete))]] = StatusActive
	}
	return statuses
}

// SelectActive returns the id of the active tile under the sequential
// policy: the first tile not in completed. The second return is false when
// there are no tiles or every tile is complete.
func SelectActive(tiles []Tile, completed CompletedSet) (uint, bool) {
	for _, t := range tiles {
		if !completed.Has(t.QuestionID) {
			return t.QuestionID, true
		}
	}
	return 0, false
}
