package middleware

import (
	"amashuri/models"
	"amashuri/store"
	"amashuri/utils"

	"github.com/gofiber/fiber/v2"
)

// RequireUser guards routes behind an authenticated session. The resolved
// profile is stored in the request locals under "user".
func RequireUser(session *store.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := session.User()
		if user == nil {
			return utils.Unauthorized(c, "Authentication required")
		}
		c.Locals("user", user)
		return c.Next()
	}
}

// RequireTeacher guards the teacher portal routes.
func RequireTeacher(session *store.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := session.User()
		if user == nil {
			return utils.Unauthorized(c, "Authentication required")
		}
		if user.Role != models.RoleTeacher {
			return utils.Forbidden(c, "Teacher access required")
		}
		c.Locals("user", user)
		return c.Next()
	}
}

// CurrentUser pulls the profile set by RequireUser.
func CurrentUser(c *fiber.Ctx) *models.UserProfile {
	user, _ := c.Locals("user").(*models.UserProfile)
	return user
}
