package store

import (
	"testing"

	"amashuri/models"

	"github.com/stretchr/testify/assert"
)

func TestLessonProgress(t *testing.T) {
	lessons := []models.Lesson{
		{ID: "l1", Completed: true},
		{ID: "l2", Completed: true},
		{ID: "l3", Completed: true},
		{ID: "l4", Completed: true},
		{ID: "l5", Completed: false},
	}

	completed, percent := LessonProgress(lessons, 5)
	assert.Equal(t, 4, completed)
	assert.Equal(t, 80, percent)
}

func TestLessonProgressRounding(t *testing.T) {
	lessons := []models.Lesson{
		{ID: "l1", Completed: true},
		{ID: "l2", Completed: false},
		{ID: "l3", Completed: false},
	}

	completed, percent := LessonProgress(lessons, 3)
	assert.Equal(t, 1, completed)
	assert.Equal(t, 33, percent)
}

func TestLessonProgressZeroTotal(t *testing.T) {
	completed, percent := LessonProgress(nil, 0)
	assert.Equal(t, 0, completed)
	assert.Equal(t, 0, percent)
}

func quizForScoring() models.Quiz {
	return models.Quiz{
		ID: "quiz-1",
		Questions: []models.Question{
			{ID: "q1", Options: []string{"Paris", "London", "Berlin"}, CorrectAnswer: "Paris"},
			{ID: "q2", Options: []string{"3", "4", "5"}, CorrectAnswer: "4"},
			{ID: "q3", Options: []string{"Red", "Blue", "Green"}, CorrectAnswer: "Red"},
		},
	}
}

func TestScoreQuizAllCorrect(t *testing.T) {
	score := ScoreQuiz(quizForScoring(), map[string]string{
		"q1": "Paris",
		"q2": "4",
		"q3": "Red",
	})
	assert.Equal(t, 100, score)
}

func TestScoreQuizEmptyAnswers(t *testing.T) {
	score := ScoreQuiz(quizForScoring(), map[string]string{})
	assert.Equal(t, 0, score)
}

func TestScoreQuizPartial(t *testing.T) {
	// Two of three correct rounds to 67.
	score := ScoreQuiz(quizForScoring(), map[string]string{
		"q1": "Paris",
		"q2": "5",
		"q3": "Red",
	})
	assert.Equal(t, 67, score)
}

func TestScoreQuizHalfCorrect(t *testing.T) {
	quiz := models.Quiz{
		Questions: []models.Question{
			{ID: "q1", CorrectAnswer: "a"},
			{ID: "q2", CorrectAnswer: "b"},
			{ID: "q3", CorrectAnswer: "c"},
			{ID: "q4", CorrectAnswer: "d"},
		},
	}
	score := ScoreQuiz(quiz, map[string]string{"q1": "a", "q2": "b", "q3": "x", "q4": "y"})
	assert.Equal(t, 50, score)
}

func TestScoreQuizExactMatchOnly(t *testing.T) {
	// Comparison is case- and whitespace-sensitive.
	score := ScoreQuiz(quizForScoring(), map[string]string{
		"q1": "paris",
		"q2": " 4",
		"q3": "Red",
	})
	assert.Equal(t, 33, score)
}

func TestScoreQuizNoQuestions(t *testing.T) {
	score := ScoreQuiz(models.Quiz{TotalQuestions: 10}, map[string]string{"q1": "a"})
	assert.Equal(t, 0, score)
}

func TestMatchesFilters(t *testing.T) {
	course := models.Course{
		Title:       "Kinyarwanda for Beginners",
		Description: "Learn the basics of Kinyarwanda language.",
		Instructor:  "Mugisha Jean",
		Category:    "Language",
		Level:       models.LevelBeginner,
		Duration:    "8 weeks",
	}

	assert.True(t, MatchesFilters(course, models.Filters{}))
	assert.True(t, MatchesFilters(course, models.Filters{Category: "All", Level: "All", Duration: "All"}))
	assert.True(t, MatchesFilters(course, models.Filters{Category: "Language"}))
	assert.False(t, MatchesFilters(course, models.Filters{Category: "History"}))
	assert.True(t, MatchesFilters(course, models.Filters{Level: models.LevelBeginner}))
	assert.False(t, MatchesFilters(course, models.Filters{Level: models.LevelAdvanced}))
	assert.True(t, MatchesFilters(course, models.Filters{Duration: "8 weeks"}))
	assert.True(t, MatchesFilters(course, models.Filters{Duration: "weeks"}))
	assert.False(t, MatchesFilters(course, models.Filters{Duration: "4 weeks"}))

	// Search is case-insensitive over title, description and instructor.
	assert.True(t, MatchesFilters(course, models.Filters{Search: "KINYARWANDA"}))
	assert.True(t, MatchesFilters(course, models.Filters{Search: "mugisha"}))
	assert.False(t, MatchesFilters(course, models.Filters{Search: "cuisine"}))
}
