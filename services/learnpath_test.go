package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcroch/TRP-2024/models"
)

func TestBuildLearnPath_OrdersUnitsByLevel(t *testing.T) {
	units := []models.Unit{
		{ID: 2, Title: "Geografía", Level: 2},
		{ID: 1, Title: "Matemáticas", Level: 1},
	}

	path := BuildLearnPath(units, nil, NewCompletedSet(nil), PolicySequential)

	require.Len(t, path, 2)
	assert.Equal(t, "Matemáticas", path[0].Title)
	assert.Equal(t, 1, path[0].UnitNumber)
	assert.Equal(t, "Geografía", path[1].Title)
	assert.Equal(t, 2, path[1].UnitNumber)
}

func TestBuildLearnPath_DerivesStatusesPerUnit(t *testing.T) {
	units := []models.Unit{{ID: 1, Title: "Matemáticas", Level: 1}}
	questions := []models.Question{
		{ID: 1, UnitID: 1, Type: models.QuestionChoice, Body: "q1", Exp: 10},
		{ID: 2, UnitID: 1, Type: models.QuestionOpenEntry, Body: "q2", Exp: 10},
		{ID: 3, UnitID: 1, Type: models.QuestionChoice, Body: "q3", Exp: 10},
	}

	path := BuildLearnPath(units, questions, NewCompletedSet([]uint{1}), PolicySequential)

	require.Len(t, path, 1)
	tiles := path[0].Tiles
	require.Len(t, tiles, 3)
	assert.Equal(t, StatusComplete, tiles[0].Status)
	assert.Equal(t, StatusActive, tiles[1].Status)
	assert.Equal(t, StatusLocked, tiles[2].Status)
}

func TestBuildLearnPath_PlacesTilesOnTrail(t *testing.T) {
	units := []models.Unit{{ID: 1, Level: 1}}
	questions := make([]models.Question, 0, 5)
	for i := uint(1); i <= 5; i++ {
		questions = append(questions, models.Question{ID: i, UnitID: 1, Type: models.QuestionChoice})
	}

	path := BuildLearnPath(units, questions, NewCompletedSet(nil), PolicySequential)

	require.Len(t, path[0].Tiles, 5)
	max := MaxOffset()
	for _, tile := range path[0].Tiles {
		assert.LessOrEqual(t, tile.Left, max)
		assert.GreaterOrEqual(t, tile.Left, -max)
	}
	// Last tile of the unit sits centered.
	assert.Zero(t, path[0].Tiles[4].Left)
}

func TestBuildLearnPath_UnitWithoutQuestions(t *testing.T) {
	path := BuildLearnPath([]models.Unit{{ID: 3, Level: 1}}, nil, NewCompletedSet(nil), PolicySequential)

	require.Len(t, path, 1)
	assert.Empty(t, path[0].Tiles)
}
