// services/layout.go - Path geometry for the learning trail
package services

import (
	"math"
)

// Position is the horizontal placement of one tile, in pixels left of
// center. Negative values shift left, positive right.
type Position struct {
	Index int     `json:"index"`
	Left  float64 `json:"left"`
}

// offsetPattern is the 8-step repeating left-offset cycle for odd units.
// Even units walk the same cycle phase-shifted by half, mirroring the
// winding direction.
var offsetPattern = [8]float64{0, -45, -70, -45, 0, 45, 70, 45}

// Layout places count tiles along the winding trail of a unit. The
// displacement repeats every 8 tiles, alternates direction with unit
// parity, and the last tile is always forced back to center. Deterministic
// in (index, count, unitOrdinal).
func Layout(count, unitOrdinal int) []Position {
	positions := make([]Position, 0, count)
	for i := 0; i < count; i++ {
		positions = append(positions, Position{Index: i, Left: tileLeft(i, count, unitOrdinal)})
	}
	return positions
}

func tileLeft(index, count, unitOrdinal int) float64 {
	if index >= count-1 {
		return 0
	}
	phase := index % len(offsetPattern)
	if unitOrdinal%2 == 0 {
		phase = (phase + len(offsetPattern)/2) % len(offsetPattern)
	}
	return offsetPattern[phase]
}

// SineLayout is the alternate strategy: a symmetric S-curve where the
// displacement is sin(t*pi)*amplitude and t is the tile's fractional
// position within the unit. A single tile sits at center (the count <= 1
// guard avoids dividing by zero).
func SineLayout(count int, amplitude float64) []Position {
	positions := make([]Position, 0, count)
	for i := 0; i < count; i++ {
		left := 0.0
		if count > 1 {
			t := float64(i) / float64(count-1)
			left = math.Sin(t*math.Pi) * amplitude
		}
		positions = append(positions, Position{Index: i, Left: left})
	}
	return positions
}

// MaxOffset is the largest displacement Layout can produce. Exposed so
// render code can size the trail container.
func MaxOffset() float64 {
	max := 0.0
	for _, v := range offsetPattern {
		if a := math.Abs(v); a > max {
			max = a
		}
	}
	return max
}
