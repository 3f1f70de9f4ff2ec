// services/grade.go - Answer grading
package services

import (
	"strings"

	"github.com/gcroch/TRP-2024/models"
)

// GradeChoice checks a Choice submission: the selected option index must
// exist and be flagged correct. Options are matched by their stored
// position so the index the client sent lines up with the order it saw.
func GradeChoice(q models.Question, selected int) bool {
	for _, opt := range q.Options {
		if opt.Position == selected {
			return opt.IsCorrect
		}
	}
	return false
}

// GradeOpenEntry compares a free-text submission against the expected
// answer, trimmed and case-folded on both sides, so "  Paris " matches
// "paris".
func GradeOpenEntry(q models.Question, body string) bool {
	if q.ExpectedAnswer == "" {
		return false
	}
	given := strings.ToLower(strings.TrimSpace(body))
	expected := strings.ToLower(strings.TrimSpace(q.ExpectedAnswer))
	return given == expected
}

// HintPenalty returns the exp deduction for the revealed hints of a
// question, rounding down. Each hint's penalty is a fraction of the
// question's exp in [0, 1]; the total never exceeds the full reward.
func HintPenalty(q models.Question, revealed []models.HelpReveal) int {
	penalty := 0.0
	for _, r := range revealed {
		switch r.HelpNumber {
		case 1:
			if q.Hint1 != nil {
				penalty += q.Hint1.Penalty
			}
		case 2:
			if q.Hint2 != nil {
				penalty += q.Hint2.Penalty
			}
		}
	}
	if penalty > 1 {
		penalty = 1
	}
	return int(penalty * float64(q.Exp))
}
