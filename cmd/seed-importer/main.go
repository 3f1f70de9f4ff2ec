package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/gcroch/TRP-2024/database"
	"github.com/gcroch/TRP-2024/models"
)

type seedOption struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

type seedQuestion struct {
	Type           string        `json:"type"`
	Body           string        `json:"body"`
	Exp            int           `json:"exp"`
	ExpectedAnswer string        `json:"expectedAnswer"`
	Options        []seedOption  `json:"options"`
	Hint1          *models.Hint  `json:"hint1"`
	Hint2          *models.Hint  `json:"hint2"`
}

type seedUnit struct {
	Title     string         `json:"title"`
	Level     int            `json:"level"`
	Color     string         `json:"color"`
	Questions []seedQuestion `json:"questions"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	jsonPath := "./seed/units.json"
	if len(os.Args) > 1 {
		jsonPath = os.Args[1]
	}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		log.Fatal("Failed to read JSON file:", err)
	}

	var units []seedUnit
	if err := json.Unmarshal(data, &units); err != nil {
		log.Fatal("Failed to parse JSON:", err)
	}

	database.InitDB()
	db := database.GetDB()

	fmt.Printf("Found %d units\n\n", len(units))

	questionsTotal := 0
	for _, su := range units {
		fmt.Printf("Processing: %s (level %d)\n", su.Title, su.Level)

		unit := models.Unit{Title: su.Title, Level: su.Level, Color: su.Color}
		if err := db.Create(&unit).Error; err != nil {
			log.Printf("Error inserting unit %q: %v\n", su.Title, err)
			continue
		}

		for _, sq := range su.Questions {
			question := models.Question{
				UnitID:         unit.ID,
				Type:           sq.Type,
				Body:           sq.Body,
				Exp:            sq.Exp,
				ExpectedAnswer: sq.ExpectedAnswer,
				Hint1:          sq.Hint1,
				Hint2:          sq.Hint2,
			}
			for i, so := range sq.Options {
				question.Options = append(question.Options, models.Option{
					Position:  i,
					Text:      so.Text,
					IsCorrect: so.IsCorrect,
				})
			}
			if err := db.Create(&question).Error; err != nil {
				log.Printf("Error inserting question %q: %v\n", sq.Body, err)
				continue
			}
			questionsTotal++
		}
	}

	fmt.Println("\n✓ Import completed successfully!")

	var count int64
	db.Model(&models.Question{}).Count(&count)
	fmt.Printf("✓ Imported %d questions this run, %d total in database\n", questionsTotal, count)
}
