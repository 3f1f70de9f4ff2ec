// services/learnpath.go - Learn page assembly
package services

import (
	"sort"

	"github.com/gcroch/TRP-2024/models"
)

// PathTile is a tile with its derived status and placement, ready to
// render.
type PathTile struct {
	Tile
	Status TileStatus `json:"status"`
	Left   float64    `json:"left"`
}

// PathUnit is one unit of the learning path with its tiles fully derived.
type PathUnit struct {
	UnitID     uint       `json:"_id"`
	Title      string     `json:"title"`
	Level      int        `json:"level"`
	Color      string     `json:"color,omitempty"`
	UnitNumber int        `json:"unitNumber"`
	Tiles      []PathTile `json:"tiles"`
}

// BuildLearnPath runs the full derivation chain over snapshots of units,
// questions and the user's completed set: project questions into tiles per
// unit, compute lock/unlock statuses, and place each tile on the winding
// trail. Units come out ordered by level ascending; the unit ordinal
// driving the layout parity is the 1-based position in that order.
func BuildLearnPath(units []models.Unit, questions []models.Question, completed CompletedSet, policy UnlockPolicy) []PathUnit {
	ordered := make([]models.Unit, len(units))
	copy(ordered, units)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Level < ordered[j].Level
	})

	path := make([]PathUnit, 0, len(ordered))
	for i, unit := range ordered {
		unitNumber := i + 1
		tiles := ProjectTiles(questions, unit)
		statuses := ComputeStatuses(tiles, completed, policy)
		positions := Layout(len(tiles), unitNumber)

		pathTiles := make([]PathTile, 0, len(tiles))
		for j, tile := range tiles {
			pathTiles = append(pathTiles, PathTile{
				Tile:   tile,
				Status: statuses[tile.QuestionID],
				Left:   positions[j].Left,
			})
		}

		path = append(path, PathUnit{
			UnitID:     unit.ID,
			Title:      unit.Title,
			Level:      unit.Level,
			Color:      unit.Color,
			UnitNumber: unitNumber,
			Tiles:      pathTiles,
		})
	}
	return path
}
