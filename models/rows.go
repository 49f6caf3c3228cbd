package models

import "time"

// Row types for the hosted database. Resource names follow the remote
// schema, hence the explicit TableName overrides.

type ProfileRow struct {
	ID           string `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;not null"`
	FullName     string
	Role         string `gorm:"default:student"`
	AvatarURL    string
	PasswordHash string `gorm:"not null" json:"-"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (ProfileRow) TableName() string { return "profiles" }

type CourseRow struct {
	ID           string `gorm:"primaryKey"`
	Title        string
	Description  string
	Instructor   string
	Category     string
	Level        string
	Duration     string
	ImageURL     string
	TotalLessons int
	CreatedAt    time.Time
	Lessons      []LessonRow `gorm:"foreignKey:CourseID"`
	Quizzes      []QuizRow   `gorm:"foreignKey:CourseID"`
}

func (CourseRow) TableName() string { return "courses" }

type LessonRow struct {
	ID            string `gorm:"primaryKey"`
	CourseID      string `gorm:"index"`
	Title         string
	Description   string
	Duration      string
	Content       string
	VideoURL      string
	SequenceOrder int
}

func (LessonRow) TableName() string { return "lessons" }

type EnrollmentRow struct {
	ID         string `gorm:"primaryKey"`
	UserID     string `gorm:"index"`
	CourseID   string `gorm:"index"`
	EnrolledAt time.Time
}

func (EnrollmentRow) TableName() string { return "enrollments" }

type LessonProgressRow struct {
	ID          string `gorm:"primaryKey"`
	UserID      string `gorm:"index"`
	CourseID    string `gorm:"index"`
	LessonID    string `gorm:"index"`
	Completed   bool
	CompletedAt time.Time
}

func (LessonProgressRow) TableName() string { return "lesson_progress" }

type QuizRow struct {
	ID             string `gorm:"primaryKey"`
	CourseID       string `gorm:"index"`
	Title          string
	Description    string
	TotalQuestions int
	SequenceOrder  int
}

func (QuizRow) TableName() string { return "quizzes" }

type QuizAttemptRow struct {
	ID          string `gorm:"primaryKey"`
	UserID      string `gorm:"index"`
	CourseID    string `gorm:"index"`
	QuizID      string `gorm:"index"`
	Score       int
	Answers     string // JSON object of questionID -> chosen option
	SubmittedAt time.Time
}

func (QuizAttemptRow) TableName() string { return "quiz_attempts" }
