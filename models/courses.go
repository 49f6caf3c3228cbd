package models

import "time"

const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// Course is a catalog entry with its owned lessons and quizzes.
// CompletedLessons and Progress are derived from the lesson completed flags
// and must never be incremented independently.
type Course struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Instructor       string    `json:"instructor"`
	Category         string    `json:"category"`
	Level            string    `json:"level"` // Beginner, Intermediate, Advanced
	Duration         string    `json:"duration"`
	ImageURL         string    `json:"image_url"`
	Progress         int       `json:"progress"`
	TotalLessons     int       `json:"total_lessons"`
	CompletedLessons int       `json:"completed_lessons"`
	CreatedAt        time.Time `json:"created_at"`
	Lessons          []Lesson  `json:"lessons"`
	Quizzes          []Quiz    `json:"quizzes"`
}

// Lesson belongs to exactly one course. Completion is monotonic: once true
// it never reverts.
type Lesson struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Content     string `json:"content"`
	VideoURL    string `json:"video_url,omitempty"`
	Completed   bool   `json:"completed"`
}

type Quiz struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	TotalQuestions int        `json:"total_questions"`
	Completed      bool       `json:"completed"`
	Score          int        `json:"score"`
	Questions      []Question `json:"questions"`
}

// Question options are unique; CorrectAnswer equals exactly one option
// verbatim.
type Question struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// Filters is the transient filter criteria over the catalog. Nil/empty
// fields mean "no restriction"; so does the literal "All".
type Filters struct {
	Category string `json:"category"`
	Level    string `json:"level"`
	Duration string `json:"duration"`
	Search   string `json:"search"`
}

// FilterUpdate is a partial filter change; nil fields are left untouched.
type FilterUpdate struct {
	Category *string `json:"category"`
	Level    *string `json:"level"`
	Duration *string `json:"duration"`
	Search   *string `json:"search"`
}

// FilterOptions are the selectable vocabularies derived from the loaded
// catalog.
type FilterOptions struct {
	Category []string `json:"category"`
	Level    []string `json:"level"`
	Duration []string `json:"duration"`
}
