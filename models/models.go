// models/models.go - Core Models (User lives in user.go)
package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Question kinds accepted by the API.
const (
	QuestionChoice    = "Choice"
	QuestionOpenEntry = "OpenEntry"
)

// Unit is a lesson module (math, geography, ...). Level ascending drives
// the presentation order of the learning path.
type Unit struct {
	ID        uint       `json:"_id" gorm:"primaryKey"`
	Title     string     `json:"title" gorm:"not null;size:200"`
	Level     int        `json:"level" gorm:"not null;index"`
	Color     string     `json:"color,omitempty" gorm:"size:20"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:UnitID"`
}

// Hint is a reveal-on-demand help text. Penalty is the fraction of the
// question's exp lost when the hint is revealed, in [0, 1]. Stored as a
// JSON column so an absent hint stays NULL.
type Hint struct {
	Text    string  `json:"text"`
	Penalty float64 `json:"penalty"`
}

func (h Hint) Value() (driver.Value, error) {
	return json.Marshal(h)
}

func (h *Hint) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, h)
	case string:
		return json.Unmarshal([]byte(v), h)
	default:
		return errors.New("unsupported hint column type")
	}
}

// Question is a single exercise inside a unit. Choice questions carry
// options; OpenEntry questions carry an expected answer compared
// case-insensitively after trimming.
type Question struct {
	ID             uint      `json:"_id" gorm:"primaryKey"`
	UnitID         uint      `json:"unit_id" gorm:"not null;index"`
	Unit           *Unit     `json:"unit,omitempty" gorm:"foreignKey:UnitID"`
	Type           string    `json:"type" gorm:"not null;size:20"`
	Body           string    `json:"body" gorm:"not null;type:text"`
	Exp            int       `json:"exp" gorm:"default:0"`
	ExpectedAnswer string    `json:"expectedAnswer,omitempty" gorm:"size:500"`
	ImagePath      string    `json:"imagePath,omitempty" gorm:"size:255"`
	Hint1          *Hint     `json:"hint1,omitempty" gorm:"type:jsonb"`
	Hint2          *Hint     `json:"hint2,omitempty" gorm:"type:jsonb"`
	Options        []Option  `json:"options,omitempty" gorm:"foreignKey:QuestionID"`
	CreatedAt      time.Time `json:"created_at"`
}

// Option is one answer choice of a Choice question. Position preserves the
// order options were submitted in.
type Option struct {
	ID         uint   `json:"-" gorm:"primaryKey"`
	QuestionID uint   `json:"-" gorm:"not null;index"`
	Position   int    `json:"-" gorm:"not null"`
	Text       string `json:"text" gorm:"not null;size:500"`
	IsCorrect  bool   `json:"isCorrect" gorm:"default:false"`
}

// Answer records one submission. Exactly one of Body / SelectedOption is
// set, matching the question type. Correct and XPEarned are graded at
// insertion time and never rewritten.
type Answer struct {
	ID             uint      `json:"_id" gorm:"primaryKey"`
	QuestionID     uint      `json:"question_id" gorm:"not null;index"`
	Question       *Question `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	UserID         uint      `json:"user_id" gorm:"not null;index"`
	User           *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Body           *string   `json:"body,omitempty" gorm:"size:1000"`
	SelectedOption *int      `json:"selectedOption,omitempty"`
	Correct        bool      `json:"correct" gorm:"default:false"`
	XPEarned       int       `json:"xp_earned" gorm:"default:0"`
	CreatedAt      time.Time `json:"created_at"`
}

// HelpReveal marks that a user has seen a given hint of a question. The
// unique index keeps each hint revealed at most once per user.
type HelpReveal struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	QuestionID uint      `json:"question_id" gorm:"not null;uniqueIndex:idx_help_once,priority:1"`
	UserID     uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_help_once,priority:2"`
	HelpNumber int       `json:"help_number" gorm:"not null;uniqueIndex:idx_help_once,priority:3"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName methods for custom table names (optional)
func (Unit) TableName() string {
	return "units"
}

func (Question) TableName() string {
	return "questions"
}

func (Option) TableName() string {
	return "options"
}

func (Answer) TableName() string {
	return "answers"
}

func (HelpReveal) TableName() string {
	return "help_reveals"
}
