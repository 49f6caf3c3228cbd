package routes

import (
	"amashuri/controllers"
	"amashuri/gateway"
	"amashuri/middleware"
	"amashuri/store"

	"github.com/gofiber/fiber/v2"
)

// Deps are the wired components the route tree is built over.
type Deps struct {
	Session *store.Session
	Catalog *store.Catalog
	Gateway gateway.Gateway
}

func SetupRoutes(app *fiber.App, deps Deps) {
	// Auth routes
	authController := controllers.NewAuthController(deps.Session, deps.Gateway)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)
	app.Post("/api/auth/logout", authController.Logout)
	app.Get("/api/auth/session", authController.GetSession)
	app.Get("/api/auth/callback", authController.Callback)

	// Middleware
	authMiddleware := middleware.RequireUser(deps.Session)
	teacherMiddleware := middleware.RequireTeacher(deps.Session)

	// Courses routes
	coursesController := controllers.NewCoursesController(deps.Catalog, deps.Gateway)
	courses := app.Group("/api/courses", authMiddleware)
	courses.Get("/", coursesController.GetCourses)
	courses.Get("/:id", coursesController.GetCourseDetails)
	courses.Post("/:id/enroll", coursesController.Enroll)
	courses.Get("/:id/lessons/:lessonId", coursesController.GetLesson)
	courses.Post("/:id/lessons/:lessonId/complete", coursesController.CompleteLesson)

	// Quiz routes
	quizController := controllers.NewQuizController(deps.Catalog)
	courses.Get("/:id/quizzes/:quizId", quizController.GetQuiz)
	courses.Post("/:id/quizzes/:quizId/submit", quizController.SubmitQuiz)

	// Filter routes
	app.Get("/api/filters", authMiddleware, coursesController.GetFilters)
	app.Post("/api/filters/reset", authMiddleware, coursesController.ResetFilters)

	// Analytics routes
	analyticsController := controllers.NewAnalyticsController(deps.Catalog)
	app.Get("/api/analytics/overview", authMiddleware, analyticsController.GetOverview)
	app.Get("/api/teacher/analytics/overview", teacherMiddleware, analyticsController.GetOverview)
}
