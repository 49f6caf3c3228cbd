// Package gateway is the boundary to the hosted backend service: password
// authentication, session retrieval and row-level access to the named
// resources (profiles, courses, lessons, enrollments, lesson_progress,
// quizzes, quiz_attempts).
package gateway

import (
	"context"
	"errors"
	"time"

	"amashuri/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrNotFound           = errors.New("not found")
	ErrNoSession          = errors.New("no active session")
	ErrInvalidCode        = errors.New("invalid auth code")
)

// AuthUser is the authenticated identity returned by the auth calls, before
// the profile row is resolved.
type AuthUser struct {
	ID    string
	Email string
}

// Session is an established remote session.
type Session struct {
	UserID    string
	Token     string
	ExpiresAt time.Time
}

// SignUpMetadata travels with a remote registration, mirroring the profile
// row created for the new user.
type SignUpMetadata struct {
	FullName string
	Role     string
}

type Gateway interface {
	SignInWithPassword(ctx context.Context, email, password string) (*AuthUser, error)
	SignUp(ctx context.Context, email, password string, meta SignUpMetadata) (*AuthUser, error)
	SignOut(ctx context.Context) error
	GetSession(ctx context.Context) (*Session, error)
	ExchangeCodeForSession(ctx context.Context, code string) error

	Profile(ctx context.Context, userID string) (*models.UserProfile, error)
	ListCourses(ctx context.Context) ([]models.Course, error)
	Enroll(ctx context.Context, userID, courseID string) error
	UpsertLessonProgress(ctx context.Context, row models.LessonProgressRow) error
	InsertQuizAttempt(ctx context.Context, row models.QuizAttemptRow) error
}
