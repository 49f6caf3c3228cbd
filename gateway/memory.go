package gateway

import (
	"context"
	"fmt"
	"sync"
	"time"

	"amashuri/models"

	"github.com/google/uuid"
)

// Memory is the in-process gateway used by tests and DSN-less runs. It
// records the auth calls it receives so tests can assert which paths hit
// the gateway at all.
type Memory struct {
	mu       sync.Mutex
	profiles map[string]*models.UserProfile // by id
	accounts map[string]account             // by email
	courses  []models.Course
	session  *Session

	enrollments []models.EnrollmentRow
	progress    []models.LessonProgressRow
	attempts    []models.QuizAttemptRow

	calls []string
	fail  error // when set, every auth call fails with this error
}

type account struct {
	id       string
	password string
}

func NewMemory() *Memory {
	return &Memory{
		profiles: make(map[string]*models.UserProfile),
		accounts: make(map[string]account),
	}
}

// AddProfile registers a profile with a password so it can sign in.
func (m *Memory) AddProfile(p models.UserProfile, password string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := p
	m.profiles[p.ID] = &cp
	m.accounts[p.Email] = account{id: p.ID, password: password}
}

// SetCourses seeds the course list returned by ListCourses.
func (m *Memory) SetCourses(courses []models.Course) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.courses = courses
}

// FailWith makes every subsequent auth call return err.
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fail = err
}

// Calls returns the names of the gateway calls made so far.
func (m *Memory) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// Attempts returns the recorded quiz attempts.
func (m *Memory) Attempts() []models.QuizAttemptRow {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.QuizAttemptRow(nil), m.attempts...)
}

// Progress returns the recorded lesson progress rows.
func (m *Memory) Progress() []models.LessonProgressRow {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.LessonProgressRow(nil), m.progress...)
}

func (m *Memory) SignInWithPassword(ctx context.Context, email, password string) (*AuthUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, "sign_in")

	if m.fail != nil {
		return nil, m.fail
	}
	acct, ok := m.accounts[email]
	if !ok || acct.password != password {
		return nil, ErrInvalidCredentials
	}

	m.session = &Session{
		UserID:    acct.id,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	return &AuthUser{ID: acct.id, Email: email}, nil
}

func (m *Memory) SignUp(ctx context.Context, email, password string, meta SignUpMetadata) (*AuthUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, "sign_up")

	if m.fail != nil {
		return nil, m.fail
	}
	if _, ok := m.accounts[email]; ok {
		return nil, ErrEmailTaken
	}

	now := time.Now()
	p := &models.UserProfile{
		ID:        uuid.NewString(),
		Email:     email,
		FullName:  meta.FullName,
		Role:      meta.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.profiles[p.ID] = p
	m.accounts[email] = account{id: p.ID, password: password}
	return &AuthUser{ID: p.ID, Email: email}, nil
}

func (m *Memory) SignOut(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, "sign_out")

	if m.fail != nil {
		return m.fail
	}
	m.session = nil
	return nil
}

func (m *Memory) GetSession(ctx context.Context) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, "get_session")

	if m.fail != nil {
		return nil, m.fail
	}
	if m.session == nil {
		return nil, ErrNoSession
	}
	return m.session, nil
}

func (m *Memory) ExchangeCodeForSession(ctx context.Context, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, "exchange_code")

	if m.fail != nil {
		return m.fail
	}
	for _, acct := range m.accounts {
		if acct.id == code { // codes are user ids in the test double
			m.session = &Session{
				UserID:    acct.id,
				Token:     uuid.NewString(),
				ExpiresAt: time.Now().Add(time.Hour),
			}
			return nil
		}
	}
	return ErrInvalidCode
}

func (m *Memory) Profile(ctx context.Context, userID string) (*models.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, "profile")

	p, ok := m.profiles[userID]
	if !ok {
		return nil, ErrProfileNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *Memory) ListCourses(ctx context.Context) ([]models.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, "list_courses")

	if m.fail != nil {
		return nil, fmt.Errorf("gateway: list courses: %w", m.fail)
	}
	return append([]models.Course(nil), m.courses...), nil
}

func (m *Memory) Enroll(ctx context.Context, userID, courseID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, "enroll")

	for _, e := range m.enrollments {
		if e.UserID == userID && e.CourseID == courseID {
			return nil
		}
	}
	m.enrollments = append(m.enrollments, models.EnrollmentRow{
		ID:         uuid.NewString(),
		UserID:     userID,
		CourseID:   courseID,
		EnrolledAt: time.Now(),
	})
	return nil
}

func (m *Memory) UpsertLessonProgress(ctx context.Context, row models.LessonProgressRow) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, "lesson_progress")

	for i, existing := range m.progress {
		if existing.UserID == row.UserID && existing.LessonID == row.LessonID {
			row.ID = existing.ID
			m.progress[i] = row
			return nil
		}
	}
	if row.ID == "" {
		row.ID = uuid.NewString()
	}
	m.progress = append(m.progress, row)
	return nil
}

func (m *Memory) InsertQuizAttempt(ctx context.Context, row models.QuizAttemptRow) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, "quiz_attempt")

	if row.ID == "" {
		row.ID = uuid.NewString()
	}
	m.attempts = append(m.attempts, row)
	return nil
}
