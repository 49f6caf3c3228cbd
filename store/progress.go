package store

import (
	"math"
	"strings"

	"amashuri/models"
)

// LessonProgress derives the completed-lesson count and progress percentage
// for a course from the authoritative lesson flags. total is the course's
// advertised lesson count, which may exceed the lessons actually loaded.
func LessonProgress(lessons []models.Lesson, total int) (completed, percent int) {
	for _, l := range lessons {
		if l.Completed {
			completed++
		}
	}
	if total <= 0 {
		return completed, 0
	}
	percent = int(math.Round(float64(completed) / float64(total) * 100))
	return completed, percent
}

// ScoreQuiz grades an answer map against a quiz. Comparison is exact string
// equality against the correct option; missing answers count as incorrect.
// The denominator is the number of questions actually on the quiz.
func ScoreQuiz(quiz models.Quiz, answers map[string]string) int {
	if len(quiz.Questions) == 0 {
		return 0
	}

	correct := 0
	for _, q := range quiz.Questions {
		if answers[q.ID] == q.CorrectAnswer {
			correct++
		}
	}
	return int(math.Round(float64(correct) / float64(len(quiz.Questions)) * 100))
}

// MatchesFilters reports whether a course passes the filter criteria.
// Category and level match exactly, duration matches as a substring, and
// search is a case-insensitive substring over title, description and
// instructor. Empty criteria and the literal "All" do not restrict.
func MatchesFilters(c models.Course, f models.Filters) bool {
	if active(f.Category) && c.Category != f.Category {
		return false
	}
	if active(f.Level) && c.Level != f.Level {
		return false
	}
	if active(f.Duration) && !strings.Contains(c.Duration, f.Duration) && c.Duration != f.Duration {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(c.Title), needle) &&
			!strings.Contains(strings.ToLower(c.Description), needle) &&
			!strings.Contains(strings.ToLower(c.Instructor), needle) {
			return false
		}
	}
	return true
}

func active(criterion string) bool {
	return criterion != "" && criterion != "All"
}
