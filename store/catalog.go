package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"amashuri/gateway"
	"amashuri/models"
)

var (
	// ErrNotFound is returned when a selection pointer resolves to nothing.
	// Misses are explicit rather than silently retaining the old selection.
	ErrNotFound = errors.New("not found")

	// ErrNoCourseSelected is returned by operations that act within the
	// currently selected course when there is none.
	ErrNoCourseSelected = errors.New("no course selected")
)

// Catalog holds the in-memory course list, the current selection pointers
// and the filter criteria. Filtering is a derived view and never mutates
// the stored list.
type Catalog struct {
	gw      gateway.Gateway // optional remote source; nil means seed only
	seed    []models.Course
	latency time.Duration // simulated fetch latency
	logger  *log.Logger

	mu              sync.RWMutex
	courses         []models.Course
	currentCourseID string
	currentLessonID string
	currentQuizID   string
	filters         models.Filters
	loading         bool
	lastErr         string
	subs            map[int]func()
	nextSub         int
}

// CatalogConfig wires a catalog store.
type CatalogConfig struct {
	Gateway gateway.Gateway
	Seed    []models.Course
	Latency time.Duration
	Logger  *log.Logger
}

func NewCatalog(cfg CatalogConfig) *Catalog {
	return &Catalog{
		gw:      cfg.Gateway,
		seed:    cfg.Seed,
		latency: cfg.Latency,
		logger:  cfg.Logger,
		subs:    make(map[int]func()),
	}
}

// FetchCourses populates the course list, replacing it wholesale. The
// gateway is tried first when configured; an empty remote catalog falls
// back to the seed. A canceled context never overwrites existing state.
func (c *Catalog) FetchCourses(ctx context.Context) error {
	c.setLoading(true)

	if c.latency > 0 {
		select {
		case <-time.After(c.latency):
		case <-ctx.Done():
			c.setLoading(false)
			return ctx.Err()
		}
	}

	courses := copyCourses(c.seed)
	if c.gw != nil {
		remote, err := c.gw.ListCourses(ctx)
		if err != nil {
			return c.fail(fmt.Errorf("fetch courses: %w", err))
		}
		if len(remote) > 0 {
			courses = copyCourses(remote)
		}
	}

	// A fetch whose caller has gone away must not clobber newer state.
	if err := ctx.Err(); err != nil {
		c.setLoading(false)
		return err
	}

	c.mu.Lock()
	c.courses = courses
	c.loading = false
	c.lastErr = ""
	subs := c.listeners()
	c.mu.Unlock()

	c.notify(subs)
	return nil
}

// Courses returns a copy of the full course list.
func (c *Catalog) Courses() []models.Course {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return copyCourses(c.courses)
}

// SetCourse selects a course by id. A miss returns ErrNotFound and leaves
// the previous selection untouched.
func (c *Catalog) SetCourse(courseID string) (models.Course, error) {
	c.mu.Lock()
	idx := c.courseIndex(courseID)
	if idx < 0 {
		c.mu.Unlock()
		c.logMiss("course", courseID)
		return models.Course{}, ErrNotFound
	}
	if c.currentCourseID != courseID {
		c.currentCourseID = courseID
		c.currentLessonID = ""
		c.currentQuizID = ""
	}
	course := copyCourse(c.courses[idx])
	subs := c.listeners()
	c.mu.Unlock()

	c.notify(subs)
	return course, nil
}

// SetLesson selects a lesson within the currently selected course.
func (c *Catalog) SetLesson(lessonID string) (models.Lesson, error) {
	c.mu.Lock()
	idx := c.courseIndex(c.currentCourseID)
	if idx < 0 {
		c.mu.Unlock()
		return models.Lesson{}, ErrNoCourseSelected
	}
	for _, l := range c.courses[idx].Lessons {
		if l.ID == lessonID {
			c.currentLessonID = lessonID
			lesson := l
			subs := c.listeners()
			c.mu.Unlock()
			c.notify(subs)
			return lesson, nil
		}
	}
	c.mu.Unlock()
	c.logMiss("lesson", lessonID)
	return models.Lesson{}, ErrNotFound
}

// SetQuiz selects a quiz within the currently selected course.
func (c *Catalog) SetQuiz(quizID string) (models.Quiz, error) {
	c.mu.Lock()
	idx := c.courseIndex(c.currentCourseID)
	if idx < 0 {
		c.mu.Unlock()
		return models.Quiz{}, ErrNoCourseSelected
	}
	for _, q := range c.courses[idx].Quizzes {
		if q.ID == quizID {
			c.currentQuizID = quizID
			quiz := copyQuiz(q)
			subs := c.listeners()
			c.mu.Unlock()
			c.notify(subs)
			return quiz, nil
		}
	}
	c.mu.Unlock()
	c.logMiss("quiz", quizID)
	return models.Quiz{}, ErrNotFound
}

// CurrentCourse resolves the course selection pointer.
func (c *Catalog) CurrentCourse() (models.Course, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	idx := c.courseIndex(c.currentCourseID)
	if idx < 0 {
		return models.Course{}, false
	}
	return copyCourse(c.courses[idx]), true
}

// CurrentLesson resolves the lesson selection pointer.
func (c *Catalog) CurrentLesson() (models.Lesson, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	idx := c.courseIndex(c.currentCourseID)
	if idx < 0 {
		return models.Lesson{}, false
	}
	for _, l := range c.courses[idx].Lessons {
		if l.ID == c.currentLessonID {
			return l, true
		}
	}
	return models.Lesson{}, false
}

// CurrentQuiz resolves the quiz selection pointer.
func (c *Catalog) CurrentQuiz() (models.Quiz, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	idx := c.courseIndex(c.currentCourseID)
	if idx < 0 {
		return models.Quiz{}, false
	}
	for _, q := range c.courses[idx].Quizzes {
		if q.ID == c.currentQuizID {
			return copyQuiz(q), true
		}
	}
	return models.Quiz{}, false
}

// CompleteLesson marks a lesson of the currently selected course complete
// and rederives the course's completed count and progress from the lesson
// flags. Completion is monotonic; repeating the call is a no-op, as is an
// unknown lesson id. The updated progress is mirrored to the gateway
// best-effort; a failed write is logged, never surfaced.
func (c *Catalog) CompleteLesson(ctx context.Context, userID, lessonID string) error {
	c.mu.Lock()
	idx := c.courseIndex(c.currentCourseID)
	if idx < 0 {
		c.mu.Unlock()
		return ErrNoCourseSelected
	}

	course := &c.courses[idx]
	changed := false
	for i := range course.Lessons {
		if course.Lessons[i].ID == lessonID {
			if !course.Lessons[i].Completed {
				course.Lessons[i].Completed = true
				changed = true
			}
			break
		}
	}

	if changed {
		course.CompletedLessons, course.Progress = LessonProgress(course.Lessons, course.TotalLessons)
	}
	courseID := course.ID
	subs := c.listeners()
	c.mu.Unlock()

	if !changed {
		return nil
	}
	c.notify(subs)

	if c.gw != nil && userID != "" {
		row := models.LessonProgressRow{
			UserID:      userID,
			CourseID:    courseID,
			LessonID:    lessonID,
			Completed:   true,
			CompletedAt: time.Now(),
		}
		if err := c.gw.UpsertLessonProgress(ctx, row); err != nil && c.logger != nil {
			c.logger.Printf("catalog: lesson progress write failed: %v", err)
		}
	}
	return nil
}

// SubmitQuiz grades the answers against the quiz, marks it completed with
// the computed score and returns the score. Resubmission overwrites the
// previous score. The attempt is recorded through the gateway best-effort.
func (c *Catalog) SubmitQuiz(ctx context.Context, userID, quizID string, answers map[string]string) (int, error) {
	c.mu.Lock()
	idx := c.courseIndex(c.currentCourseID)
	if idx < 0 {
		c.mu.Unlock()
		return 0, ErrNoCourseSelected
	}

	course := &c.courses[idx]
	qIdx := -1
	for i := range course.Quizzes {
		if course.Quizzes[i].ID == quizID {
			qIdx = i
			break
		}
	}
	if qIdx < 0 {
		c.mu.Unlock()
		c.logMiss("quiz", quizID)
		return 0, ErrNotFound
	}

	quiz := &course.Quizzes[qIdx]
	score := ScoreQuiz(*quiz, answers)
	quiz.Completed = true
	quiz.Score = score
	c.currentQuizID = quizID
	courseID := course.ID
	subs := c.listeners()
	c.mu.Unlock()

	c.notify(subs)

	if c.gw != nil && userID != "" {
		encoded, _ := json.Marshal(answers)
		row := models.QuizAttemptRow{
			UserID:      userID,
			CourseID:    courseID,
			QuizID:      quizID,
			Score:       score,
			Answers:     string(encoded),
			SubmittedAt: time.Now(),
		}
		if err := c.gw.InsertQuizAttempt(ctx, row); err != nil && c.logger != nil {
			c.logger.Printf("catalog: quiz attempt write failed: %v", err)
		}
	}
	return score, nil
}

// ApplyFilters merges a partial filter change into the criteria.
func (c *Catalog) ApplyFilters(update models.FilterUpdate) {
	c.mu.Lock()
	if update.Category != nil {
		c.filters.Category = *update.Category
	}
	if update.Level != nil {
		c.filters.Level = *update.Level
	}
	if update.Duration != nil {
		c.filters.Duration = *update.Duration
	}
	if update.Search != nil {
		c.filters.Search = *update.Search
	}
	subs := c.listeners()
	c.mu.Unlock()

	c.notify(subs)
}

// ResetFilters clears all filter criteria.
func (c *Catalog) ResetFilters() {
	c.mu.Lock()
	c.filters = models.Filters{}
	subs := c.listeners()
	c.mu.Unlock()

	c.notify(subs)
}

func (c *Catalog) Filters() models.Filters {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filters
}

// FilteredCourses is the derived view of the course list under the current
// filter criteria.
func (c *Catalog) FilteredCourses() []models.Course {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Course, 0, len(c.courses))
	for _, course := range c.courses {
		if MatchesFilters(course, c.filters) {
			out = append(out, copyCourse(course))
		}
	}
	return out
}

// FilterOptions derives the selectable filter vocabularies from the loaded
// catalog. "All" always comes first.
func (c *Catalog) FilterOptions() models.FilterOptions {
	c.mu.RLock()
	defer c.mu.RUnlock()

	opts := models.FilterOptions{
		Category: []string{"All"},
		Level:    []string{"All", models.LevelBeginner, models.LevelIntermediate, models.LevelAdvanced},
		Duration: []string{"All"},
	}
	seenCat := map[string]bool{}
	seenDur := map[string]bool{}
	for _, course := range c.courses {
		if course.Category != "" && !seenCat[course.Category] {
			seenCat[course.Category] = true
			opts.Category = append(opts.Category, course.Category)
		}
		if course.Duration != "" && !seenDur[course.Duration] {
			seenDur[course.Duration] = true
			opts.Duration = append(opts.Duration, course.Duration)
		}
	}
	return opts
}

func (c *Catalog) Err() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr
}

func (c *Catalog) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// Subscribe registers a change listener and returns its unsubscribe func.
func (c *Catalog) Subscribe(fn func()) func() {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// courseIndex must be called with the lock held.
func (c *Catalog) courseIndex(id string) int {
	if id == "" {
		return -1
	}
	for i := range c.courses {
		if c.courses[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *Catalog) setLoading(v bool) {
	c.mu.Lock()
	c.loading = v
	if v {
		c.lastErr = ""
	}
	c.mu.Unlock()
}

func (c *Catalog) fail(err error) error {
	c.mu.Lock()
	c.lastErr = err.Error()
	c.loading = false
	subs := c.listeners()
	c.mu.Unlock()

	if c.logger != nil {
		c.logger.Printf("catalog: %v", err)
	}
	c.notify(subs)
	return err
}

func (c *Catalog) logMiss(kind, id string) {
	if c.logger != nil {
		c.logger.Printf("catalog: %s %q not found", kind, id)
	}
}

// listeners must be called with the lock held.
func (c *Catalog) listeners() []func() {
	out := make([]func(), 0, len(c.subs))
	for _, fn := range c.subs {
		out = append(out, fn)
	}
	return out
}

func (c *Catalog) notify(subs []func()) {
	for _, fn := range subs {
		fn()
	}
}

func copyCourses(in []models.Course) []models.Course {
	out := make([]models.Course, len(in))
	for i, course := range in {
		out[i] = copyCourse(course)
	}
	return out
}

func copyCourse(in models.Course) models.Course {
	out := in
	out.Lessons = append([]models.Lesson(nil), in.Lessons...)
	out.Quizzes = make([]models.Quiz, len(in.Quizzes))
	for i, q := range in.Quizzes {
		out.Quizzes[i] = copyQuiz(q)
	}
	return out
}

func copyQuiz(in models.Quiz) models.Quiz {
	out := in
	out.Questions = make([]models.Question, len(in.Questions))
	for i, q := range in.Questions {
		cp := q
		cp.Options = append([]string(nil), q.Options...)
		out.Questions[i] = cp
	}
	return out
}
