package services

import (
	"testing"

	"github.com/gcroch/TRP-2024/models"
)

func choiceQuestion() models.Question {
	return models.Question{
		ID:   1,
		Type: models.QuestionChoice,
		Exp:  40,
		Options: []models.Option{
			{Position: 0, Text: "3", IsCorrect: false},
			{Position: 1, Text: "4", IsCorrect: true},
			{Position: 2, Text: "5", IsCorrect: false},
		},
	}
}

func TestGradeChoice(t *testing.T) {
	q := choiceQuestion()

	if !GradeChoice(q, 1) {
		t.Error("correct option judged wrong")
	}
	if GradeChoice(q, 0) || GradeChoice(q, 2) {
		t.Error("wrong option judged correct")
	}
	if GradeChoice(q, 7) {
		t.Error("out-of-range option judged correct")
	}
}

func TestGradeOpenEntry_TrimAndCaseFold(t *testing.T) {
	q := models.Question{Type: models.QuestionOpenEntry, ExpectedAnswer: "paris"}

	cases := []struct {
		body string
		want bool
	}{
		{"paris", true},
		{"  Paris ", true},
		{"PARIS", true},
		{"pariss", false},
		{"", false},
	}
	for _, c := range cases {
		if got := GradeOpenEntry(q, c.body); got != c.want {
			t.Errorf("GradeOpenEntry(%q) = %v, want %v", c.body, got, c.want)
		}
	}
}

func TestGradeOpenEntry_NoExpectedAnswer(t *testing.T) {
	q := models.Question{Type: models.QuestionOpenEntry}
	if GradeOpenEntry(q, "anything") {
		t.Error("question without expected answer judged correct")
	}
}

func TestHintPenalty(t *testing.T) {
	q := models.Question{
		Exp:   100,
		Hint1: &models.Hint{Text: "starts with P", Penalty: 0.25},
		Hint2: &models.Hint{Text: "ends with s", Penalty: 0.5},
	}

	if got := HintPenalty(q, nil); got != 0 {
		t.Errorf("no reveals: penalty %d, want 0", got)
	}

	one := []models.HelpReveal{{HelpNumber: 1}}
	if got := HintPenalty(q, one); got != 25 {
		t.Errorf("hint1: penalty %d, want 25", got)
	}

	both := []models.HelpReveal{{HelpNumber: 1}, {HelpNumber: 2}}
	if got := HintPenalty(q, both); got != 75 {
		t.Errorf("both hints: penalty %d, want 75", got)
	}
}

func TestHintPenalty_CappedAtFullReward(t *testing.T) {
	q := models.Question{
		Exp:   10,
		Hint1: &models.Hint{Penalty: 0.9},
		Hint2: &models.Hint{Penalty: 0.9},
	}
	both := []models.HelpReveal{{HelpNumber: 1}, {HelpNumber: 2}}
	if got := HintPenalty(q, both); got != 10 {
		t.Errorf("penalty %d, want capped at 10", got)
	}
}
