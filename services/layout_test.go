package services

import (
	"math"
	"testing"
)

func TestLayout_LastTileCentered(t *testing.T) {
	for _, count := range []int{1, 2, 5, 8, 13} {
		positions := Layout(count, 1)
		if len(positions) != count {
			t.Fatalf("count=%d: got %d positions", count, len(positions))
		}
		if positions[count-1].Left != 0 {
			t.Errorf("count=%d: last tile at %v, want 0", count, positions[count-1].Left)
		}
	}
}

func TestLayout_BoundedDisplacement(t *testing.T) {
	max := MaxOffset()
	for unit := 1; unit <= 4; unit++ {
		for _, p := range Layout(20, unit) {
			if math.Abs(p.Left) > max {
				t.Errorf("unit=%d index=%d: |%v| exceeds %v", unit, p.Index, p.Left, max)
			}
		}
	}
}

func TestLayout_AlternatesWithUnitParity(t *testing.T) {
	odd := Layout(9, 1)
	even := Layout(9, 2)

	// The second tile leans left on odd units and right on even units.
	if odd[1].Left >= 0 {
		t.Errorf("odd unit second tile at %v, want < 0", odd[1].Left)
	}
	if even[1].Left <= 0 {
		t.Errorf("even unit second tile at %v, want > 0", even[1].Left)
	}
}

func TestLayout_Deterministic(t *testing.T) {
	a := Layout(12, 3)
	b := Layout(12, 3)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d: %v != %v", i, a[i], b[i])
		}
	}
}

func TestSineLayout_SingleTileDoesNotPanic(t *testing.T) {
	positions := SineLayout(1, 70)
	if len(positions) != 1 || positions[0].Left != 0 {
		t.Errorf("single tile: %+v", positions)
	}
}

func TestSineLayout_SymmetricAndBounded(t *testing.T) {
	const amplitude = 70.0
	positions := SineLayout(9, amplitude)

	for i, p := range positions {
		if math.Abs(p.Left) > amplitude {
			t.Errorf("index %d: |%v| exceeds amplitude", i, p.Left)
		}
		mirror := positions[len(positions)-1-i]
		if math.Abs(p.Left-mirror.Left) > 1e-9 {
			t.Errorf("index %d not symmetric: %v vs %v", i, p.Left, mirror.Left)
		}
	}

	// Endpoints sit at center, midpoint at the peak.
	if positions[0].Left != 0 || math.Abs(positions[8].Left) > 1e-9 {
		t.Errorf("endpoints not centered: %v, %v", positions[0].Left, positions[8].Left)
	}
	if math.Abs(positions[4].Left-amplitude) > 1e-9 {
		t.Errorf("midpoint at %v, want %v", positions[4].Left, amplitude)
	}
}
