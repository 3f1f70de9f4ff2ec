// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"github.com/gcroch/TRP-2024/models"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.Unit{},
		&models.Question{},
		&models.Option{},
		&models.Answer{},
		&models.HelpReveal{},
	); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	createIndexes()

	log.Println("✅ All migrations completed successfully")
}

// createIndexes creates indexes the auto-migration does not cover
func createIndexes() {
	db := GetDB()

	// User indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_dni ON users(dni)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_xp ON users(xp DESC)")

	// Unit and question indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_units_level ON units(level)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_questions_unit ON questions(unit_id)")

	// Answer indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_answers_user ON answers(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_answers_question ON answers(question_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_answers_user_correct ON answers(user_id, correct)")
}
