// services/tiles.go - Tile projection for the learning path
package services

import (
	"github.com/gcroch/TRP-2024/models"
)

// TileCategory is the visual kind of a node on the learning path.
type TileCategory string

const (
	TileStar        TileCategory = "star"
	TileBook        TileCategory = "book"
	TileDumbbell    TileCategory = "dumbbell"
	TileTrophy      TileCategory = "trophy"
	TileTreasure    TileCategory = "treasure"
	TileFastForward TileCategory = "fast-forward"
)

// Tile is a question projected for path rendering. It carries no state of
// its own; lock/unlock status is computed separately from the completed set.
type Tile struct {
	QuestionID  uint         `json:"questionId"`
	Category    TileCategory `json:"type"`
	Description string       `json:"description"`
	Exp         int          `json:"exp"`
}

// categoryFor maps a question kind to its tile category. The mapping is
// total and stable: Choice questions render as books, OpenEntry as stars,
// anything unrecognized falls back to star.
func categoryFor(questionType string) TileCategory {
	switch questionType {
	case models.QuestionChoice:
		return TileBook
	case models.QuestionOpenEntry:
		return TileStar
	default:
		return TileStar
	}
}

// ProjectTiles filters questions belonging to the unit and maps each one
// to a Tile, preserving the input order. An empty filter result yields an
// empty, non-nil slice.
func ProjectTiles(questions []models.Question, unit models.Unit) []Tile {
	tiles := make([]Tile, 0)
	for _, q := range questions {
		if q.UnitID != unit.ID {
			continue
		}
		tiles = append(tiles, Tile{
			QuestionID:  q.ID,
			Category:    categoryFor(q.Type),
			Description: q.Body,
			Exp:         q.Exp,
		})
	}
	return tiles
}
