package controllers

import (
	"errors"

	"amashuri/gateway"
	"amashuri/middleware"
	"amashuri/models"
	"amashuri/store"
	"amashuri/utils"

	"github.com/gofiber/fiber/v2"
)

type CoursesController struct {
	Catalog *store.Catalog
	Gateway gateway.Gateway
}

func NewCoursesController(catalog *store.Catalog, gw gateway.Gateway) *CoursesController {
	return &CoursesController{Catalog: catalog, Gateway: gw}
}

// GetCourses returns the filtered course list. Present query parameters
// are merged into the stored filter criteria first.
func (cc *CoursesController) GetCourses(c *fiber.Ctx) error {
	update := models.FilterUpdate{}
	changed := false
	for key, target := range map[string]**string{
		"category": &update.Category,
		"level":    &update.Level,
		"duration": &update.Duration,
		"search":   &update.Search,
	} {
		if value := c.Query(key, "\x00"); value != "\x00" {
			v := value
			*target = &v
			changed = true
		}
	}
	if changed {
		cc.Catalog.ApplyFilters(update)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"courses": cc.Catalog.FilteredCourses(),
		"filters": cc.Catalog.Filters(),
	})
}

// GetCourseDetails selects a course and returns it.
func (cc *CoursesController) GetCourseDetails(c *fiber.Ctx) error {
	course, err := cc.Catalog.SetCourse(c.Params("id"))
	if err != nil {
		return utils.NotFound(c, "Course not found")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"course": course})
}

// Enroll records the current user's enrollment in a course.
func (cc *CoursesController) Enroll(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	course, err := cc.Catalog.SetCourse(c.Params("id"))
	if err != nil {
		return utils.NotFound(c, "Course not found")
	}

	if err := cc.Gateway.Enroll(c.Context(), user.ID, course.ID); err != nil {
		return utils.InternalServerError(c, "Could not enroll")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"course_id": course.ID})
}

// GetLesson selects a lesson within a course and returns it.
func (cc *CoursesController) GetLesson(c *fiber.Ctx) error {
	if _, err := cc.Catalog.SetCourse(c.Params("id")); err != nil {
		return utils.NotFound(c, "Course not found")
	}

	lesson, err := cc.Catalog.SetLesson(c.Params("lessonId"))
	if err != nil {
		return utils.NotFound(c, "Lesson not found")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"lesson": lesson})
}

// CompleteLesson marks a lesson complete and returns the course's updated
// progress.
func (cc *CoursesController) CompleteLesson(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	if _, err := cc.Catalog.SetCourse(c.Params("id")); err != nil {
		return utils.NotFound(c, "Course not found")
	}

	if err := cc.Catalog.CompleteLesson(c.Context(), user.ID, c.Params("lessonId")); err != nil {
		if errors.Is(err, store.ErrNoCourseSelected) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not update progress")
	}

	course, _ := cc.Catalog.CurrentCourse()
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"course_id":         course.ID,
		"completed_lessons": course.CompletedLessons,
		"progress":          course.Progress,
	})
}

// GetFilters returns the derived filter vocabularies and the current
// criteria.
func (cc *CoursesController) GetFilters(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"options": cc.Catalog.FilterOptions(),
		"filters": cc.Catalog.Filters(),
	})
}

// ResetFilters clears the filter criteria.
func (cc *CoursesController) ResetFilters(c *fiber.Ctx) error {
	cc.Catalog.ResetFilters()
	return utils.Success(c, fiber.StatusOK, fiber.Map{"filters": cc.Catalog.Filters()})
}
