// handlers/admin/report.go - Answer reports
package admin

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"github.com/gcroch/TRP-2024/database"
	"github.com/gcroch/TRP-2024/models"
)

type answeredQuestion struct {
	Question *models.Question `json:"question"`
	Answer   models.Answer    `json:"answer"`
}

type userReport struct {
	User struct {
		ID       uint   `json:"id"`
		Name     string `json:"name"`
		Lastname string `json:"lastname"`
	} `json:"user"`
	QuestionsAnswered []answeredQuestion `json:"questions_answered"`
}

// GetUsersReport builds the answers report: every answer a user gave,
// joined with its question. Scoped to one user via ?user_id=, otherwise
// covers everyone. ?format=xlsx downloads a spreadsheet instead of JSON.
// GET /users/report
func GetUsersReport(c *fiber.Ctx) error {
	db := database.GetDB()

	var users []models.User
	if raw := c.Query("user_id"); raw != "" {
		id, err := parseUserID(raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "user_id inválido"})
		}
		var user models.User
		if err := db.First(&user, id).Error; err != nil {
			return c.Status(404).JSON(fiber.Map{"error": "Usuario no encontrado"})
		}
		users = []models.User{user}
	} else {
		if err := db.Order("id ASC").Find(&users).Error; err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch users"})
		}
	}

	reports := make([]userReport, 0, len(users))
	for _, user := range users {
		report, err := buildUserReport(user)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to build report"})
		}
		reports = append(reports, report)
	}

	if c.Query("format") == "xlsx" {
		return writeReportXLSX(c, reports)
	}

	// Single-user requests return the report object itself, matching the
	// shape the admin pages consume.
	if c.Query("user_id") != "" && len(reports) == 1 {
		return c.JSON(reports[0])
	}
	return c.JSON(reports)
}

func buildUserReport(user models.User) (userReport, error) {
	db := database.GetDB()

	var report userReport
	report.User.ID = user.ID
	report.User.Name = user.Name
	report.User.Lastname = user.Lastname

	var answers []models.Answer
	if err := db.Preload("Question").Preload("Question.Options").
		Where("user_id = ?", user.ID).
		Order("id ASC").
		Find(&answers).Error; err != nil {
		return report, err
	}

	report.QuestionsAnswered = make([]answeredQuestion, 0, len(answers))
	for _, a := range answers {
		question := a.Question
		a.Question = nil
		report.QuestionsAnswered = append(report.QuestionsAnswered, answeredQuestion{
			Question: question,
			Answer:   a,
		})
	}
	return report, nil
}

// writeReportXLSX streams the report as a spreadsheet, one row per
// answered question.
func writeReportXLSX(c *fiber.Ctx, reports []userReport) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Report"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"User ID", "Name", "Lastname", "Question", "Type", "Answer", "Correct", "XP"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, report := range reports {
		for _, qa := range report.QuestionsAnswered {
			answerText := ""
			questionBody := ""
			questionType := ""
			if qa.Answer.Body != nil {
				answerText = *qa.Answer.Body
			} else if qa.Answer.SelectedOption != nil {
				answerText = fmt.Sprintf("opción %d", *qa.Answer.SelectedOption)
			}
			if qa.Question != nil {
				questionBody = qa.Question.Body
				questionType = qa.Question.Type
			}

			values := []interface{}{
				report.User.ID,
				report.User.Name,
				report.User.Lastname,
				questionBody,
				questionType,
				answerText,
				qa.Answer.Correct,
				qa.Answer.XPEarned,
			}
			for i, v := range values {
				cell, _ := excelize.CoordinatesToCellName(i+1, row)
				f.SetCellValue(sheet, cell, v)
			}
			row++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build spreadsheet"})
	}

	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", `attachment; filename="users-report.xlsx"`)
	return c.Send(buf.Bytes())
}
