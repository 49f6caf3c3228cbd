package controllers

import (
	"errors"

	"amashuri/middleware"
	"amashuri/store"
	"amashuri/utils"

	"github.com/gofiber/fiber/v2"
)

type QuizController struct {
	Catalog *store.Catalog
}

func NewQuizController(catalog *store.Catalog) *QuizController {
	return &QuizController{Catalog: catalog}
}

// GetQuiz selects a quiz within a course and returns it.
func (qc *QuizController) GetQuiz(c *fiber.Ctx) error {
	if _, err := qc.Catalog.SetCourse(c.Params("id")); err != nil {
		return utils.NotFound(c, "Course not found")
	}

	quiz, err := qc.Catalog.SetQuiz(c.Params("quizId"))
	if err != nil {
		return utils.NotFound(c, "Quiz not found")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"quiz": quiz})
}

// SubmitQuiz grades the submitted answers and returns the recorded score.
// Unanswered questions count as incorrect; resubmission overwrites the
// previous score.
func (qc *QuizController) SubmitQuiz(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var input struct {
		Answers map[string]string `json:"answers"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if _, err := qc.Catalog.SetCourse(c.Params("id")); err != nil {
		return utils.NotFound(c, "Course not found")
	}

	score, err := qc.Catalog.SubmitQuiz(c.Context(), user.ID, c.Params("quizId"), input.Answers)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrNoCourseSelected) {
			return utils.NotFound(c, "Quiz not found")
		}
		return utils.InternalServerError(c, "Could not submit quiz")
	}

	quiz, _ := qc.Catalog.CurrentQuiz()
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"score": score,
		"quiz":  quiz,
	})
}
