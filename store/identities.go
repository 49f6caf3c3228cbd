package store

import (
	"time"

	"amashuri/models"
)

// IdentityProvider resolves credentials without touching the remote
// gateway. It exists so demo/test logins stay injectable instead of being
// compiled into the sign-in path.
type IdentityProvider interface {
	Lookup(email, password string) (*models.UserProfile, bool)
}

// StaticIdentity is one fixed credential pair with its fabricated profile.
type StaticIdentity struct {
	Email    string
	Password string
	ID       string
	FullName string
	Role     string
}

// StaticIdentities resolves against a fixed list.
type StaticIdentities []StaticIdentity

func (ids StaticIdentities) Lookup(email, password string) (*models.UserProfile, bool) {
	for _, id := range ids {
		if id.Email == email && id.Password == password {
			now := time.Now()
			return &models.UserProfile{
				ID:        id.ID,
				Email:     id.Email,
				FullName:  id.FullName,
				Role:      id.Role,
				CreatedAt: now,
				UpdatedAt: now,
			}, true
		}
	}
	return nil, false
}

// TestIdentities are the demo logins wired in when TEST_LOGINS is enabled.
func TestIdentities() StaticIdentities {
	return StaticIdentities{
		{
			Email:    "student@test.com",
			Password: "test123",
			ID:       "test-student-id",
			FullName: "Test Student",
			Role:     models.RoleStudent,
		},
		{
			Email:    "teacher@test.com",
			Password: "test123",
			ID:       "test-teacher-id",
			FullName: "Test Teacher",
			Role:     models.RoleTeacher,
		},
	}
}
