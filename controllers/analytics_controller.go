package controllers

import (
	"amashuri/store"
	"amashuri/utils"

	"github.com/gofiber/fiber/v2"
)

type AnalyticsController struct {
	Catalog *store.Catalog
}

func NewAnalyticsController(catalog *store.Catalog) *AnalyticsController {
	return &AnalyticsController{Catalog: catalog}
}

// GetOverview returns the dashboard numbers derived from the catalog:
// per-course progress plus aggregate lesson and quiz totals.
func (ac *AnalyticsController) GetOverview(c *fiber.Ctx) error {
	courses := ac.Catalog.Courses()

	var (
		totalLessons     int
		completedLessons int
		totalQuizzes     int
		completedQuizzes int
		scoreSum         int
		progressSum      int
	)
	perCourse := make([]fiber.Map, 0, len(courses))

	for _, course := range courses {
		totalLessons += course.TotalLessons
		completedLessons += course.CompletedLessons
		progressSum += course.Progress

		for _, quiz := range course.Quizzes {
			totalQuizzes++
			if quiz.Completed {
				completedQuizzes++
				scoreSum += quiz.Score
			}
		}

		perCourse = append(perCourse, fiber.Map{
			"course_id":         course.ID,
			"title":             course.Title,
			"category":          course.Category,
			"level":             course.Level,
			"progress":          course.Progress,
			"completed_lessons": course.CompletedLessons,
			"total_lessons":     course.TotalLessons,
		})
	}

	averageProgress := 0
	if len(courses) > 0 {
		averageProgress = progressSum / len(courses)
	}
	averageScore := 0
	if completedQuizzes > 0 {
		averageScore = scoreSum / completedQuizzes
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"courses":           perCourse,
		"total_courses":     len(courses),
		"total_lessons":     totalLessons,
		"completed_lessons": completedLessons,
		"total_quizzes":     totalQuizzes,
		"completed_quizzes": completedQuizzes,
		"average_progress":  averageProgress,
		"average_score":     averageScore,
	})
}
