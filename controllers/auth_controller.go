package controllers

import (
	"context"

	"amashuri/gateway"
	"amashuri/models"
	"amashuri/store"
	"amashuri/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	Session *store.Session
	Gateway gateway.Gateway
}

func NewAuthController(session *store.Session, gw gateway.Gateway) *AuthController {
	return &AuthController{Session: session, Gateway: gw}
}

// Register creates an account. The session is established immediately; the
// remote registration resolves in the background.
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		FullName string `json:"full_name"`
		Role     string `json:"role"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Email == "" || input.Password == "" {
		return utils.BadRequest(c, "Email and password are required")
	}
	if input.Role == "" {
		input.Role = models.RoleStudent
	}
	if input.Role != models.RoleStudent && input.Role != models.RoleTeacher {
		return utils.BadRequest(c, "Role must be student or teacher")
	}

	// The remote outcome is logged by the store; registration never blocks
	// on it. The request context cannot be used here because the remote
	// call outlives the request.
	_, err := ac.Session.SignUp(context.Background(), input.Email, input.Password, input.FullName, input.Role)
	if err != nil {
		return utils.InternalServerError(c, "Could not sign up")
	}

	return utils.Created(c, fiber.Map{"user": ac.Session.User()})
}

// Login authenticates a credential pair.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if err := ac.Session.SignIn(c.Context(), input.Email, input.Password); err != nil {
		return utils.Unauthorized(c, ac.Session.Err())
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"user": ac.Session.User()})
}

// Logout ends the session. The local user is cleared even when the remote
// sign-out fails.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	_ = ac.Session.SignOut(c.Context())
	return utils.NoContent(c)
}

// GetSession returns the current user, resolving a remote session first
// when no local one exists.
func (ac *AuthController) GetSession(c *fiber.Ctx) error {
	if ac.Session.User() == nil {
		if err := ac.Session.CheckSession(c.Context()); err != nil {
			return utils.Unauthorized(c, ac.Session.Err())
		}
	}

	user := ac.Session.User()
	if user == nil {
		return utils.Unauthorized(c, "No active session")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"user": user})
}

// Callback handles the OAuth-style redirect: exchanges the code for a
// remote session, then resolves it into a profile.
func (ac *AuthController) Callback(c *fiber.Ctx) error {
	code := c.Query("code")
	if code == "" {
		return utils.BadRequest(c, "Missing code")
	}

	if err := ac.Gateway.ExchangeCodeForSession(c.Context(), code); err != nil {
		return utils.Unauthorized(c, "Invalid auth code")
	}
	if err := ac.Session.CheckSession(c.Context()); err != nil {
		return utils.Unauthorized(c, ac.Session.Err())
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"user": ac.Session.User()})
}
