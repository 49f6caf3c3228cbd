package gateway

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"amashuri/models"
	"amashuri/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const sessionTTL = 72 * time.Hour

// Remote is the gorm-backed gateway against the hosted Postgres service.
// It keeps at most one live session, matching the single-identity model of
// the client it serves.
type Remote struct {
	db  *gorm.DB
	key []byte

	mu      sync.RWMutex
	session *Session
}

func NewRemote(db *gorm.DB, key string) (*Remote, error) {
	if err := db.AutoMigrate(
		&models.ProfileRow{},
		&models.CourseRow{},
		&models.LessonRow{},
		&models.EnrollmentRow{},
		&models.LessonProgressRow{},
		&models.QuizRow{},
		&models.QuizAttemptRow{},
	); err != nil {
		return nil, fmt.Errorf("gateway: migrate: %w", err)
	}
	return &Remote{db: db, key: []byte(key)}, nil
}

func (r *Remote) SignInWithPassword(ctx context.Context, email, password string) (*AuthUser, error) {
	var row models.ProfileRow
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("gateway: sign in: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateSessionToken(row.ID, r.key, sessionTTL)
	if err != nil {
		return nil, fmt.Errorf("gateway: sign in: %w", err)
	}

	r.setSession(&Session{UserID: row.ID, Token: token, ExpiresAt: time.Now().Add(sessionTTL)})
	return &AuthUser{ID: row.ID, Email: row.Email}, nil
}

func (r *Remote) SignUp(ctx context.Context, email, password string, meta SignUpMetadata) (*AuthUser, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("gateway: sign up: %w", err)
	}

	now := time.Now()
	row := models.ProfileRow{
		ID:           uuid.NewString(),
		Email:        email,
		FullName:     meta.FullName,
		Role:         meta.Role,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("gateway: sign up: %w", err)
	}

	return &AuthUser{ID: row.ID, Email: row.Email}, nil
}

func (r *Remote) SignOut(ctx context.Context) error {
	r.setSession(nil)
	return nil
}

func (r *Remote) GetSession(ctx context.Context) (*Session, error) {
	r.mu.RLock()
	s := r.session
	r.mu.RUnlock()

	if s == nil || time.Now().After(s.ExpiresAt) {
		return nil, ErrNoSession
	}
	return s, nil
}

// ExchangeCodeForSession accepts a session token minted by the hosted
// service (the OAuth-callback flow) and adopts it as the live session.
func (r *Remote) ExchangeCodeForSession(ctx context.Context, code string) error {
	userID, err := utils.ParseSessionToken(code, r.key)
	if err != nil {
		return ErrInvalidCode
	}

	var row models.ProfileRow
	if err := r.db.WithContext(ctx).First(&row, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidCode
		}
		return fmt.Errorf("gateway: exchange code: %w", err)
	}

	r.setSession(&Session{UserID: userID, Token: code, ExpiresAt: time.Now().Add(sessionTTL)})
	return nil
}

func (r *Remote) Profile(ctx context.Context, userID string) (*models.UserProfile, error) {
	var row models.ProfileRow
	if err := r.db.WithContext(ctx).First(&row, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("gateway: profile: %w", err)
	}

	return &models.UserProfile{
		ID:        row.ID,
		Email:     row.Email,
		FullName:  row.FullName,
		Role:      row.Role,
		AvatarURL: row.AvatarURL,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func (r *Remote) ListCourses(ctx context.Context) ([]models.Course, error) {
	var rows []models.CourseRow
	err := r.db.WithContext(ctx).
		Preload("Lessons", func(db *gorm.DB) *gorm.DB { return db.Order("sequence_order") }).
		Preload("Quizzes", func(db *gorm.DB) *gorm.DB { return db.Order("sequence_order") }).
		Order("created_at").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("gateway: list courses: %w", err)
	}

	courses := make([]models.Course, 0, len(rows))
	for _, row := range rows {
		course := models.Course{
			ID:           row.ID,
			Title:        row.Title,
			Description:  row.Description,
			Instructor:   row.Instructor,
			Category:     row.Category,
			Level:        row.Level,
			Duration:     row.Duration,
			ImageURL:     row.ImageURL,
			TotalLessons: row.TotalLessons,
			CreatedAt:    row.CreatedAt,
		}
		for _, l := range row.Lessons {
			course.Lessons = append(course.Lessons, models.Lesson{
				ID:          l.ID,
				Title:       l.Title,
				Description: l.Description,
				Duration:    l.Duration,
				Content:     l.Content,
				VideoURL:    l.VideoURL,
			})
		}
		for _, q := range row.Quizzes {
			course.Quizzes = append(course.Quizzes, models.Quiz{
				ID:             q.ID,
				Title:          q.Title,
				Description:    q.Description,
				TotalQuestions: q.TotalQuestions,
			})
		}
		courses = append(courses, course)
	}
	return courses, nil
}

func (r *Remote) Enroll(ctx context.Context, userID, courseID string) error {
	var existing models.EnrollmentRow
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&existing).Error
	if err == nil {
		return nil // already enrolled
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("gateway: enroll: %w", err)
	}

	row := models.EnrollmentRow{
		ID:         uuid.NewString(),
		UserID:     userID,
		CourseID:   courseID,
		EnrolledAt: time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("gateway: enroll: %w", err)
	}
	return nil
}

func (r *Remote) UpsertLessonProgress(ctx context.Context, row models.LessonProgressRow) error {
	var existing models.LessonProgressRow
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND lesson_id = ?", row.UserID, row.LessonID).
		First(&existing).Error
	if err == nil {
		existing.Completed = row.Completed
		existing.CompletedAt = row.CompletedAt
		if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
			return fmt.Errorf("gateway: lesson progress: %w", err)
		}
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("gateway: lesson progress: %w", err)
	}

	if row.ID == "" {
		row.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("gateway: lesson progress: %w", err)
	}
	return nil
}

func (r *Remote) InsertQuizAttempt(ctx context.Context, row models.QuizAttemptRow) error {
	if row.ID == "" {
		row.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("gateway: quiz attempt: %w", err)
	}
	return nil
}

func (r *Remote) setSession(s *Session) {
	r.mu.Lock()
	r.session = s
	r.mu.Unlock()
}
