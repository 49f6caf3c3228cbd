package models

import "time"

const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
)

// UserProfile is the identity record held by the session store for the
// lifetime of a session. Destroyed on sign-out.
type UserProfile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"` // student, teacher
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
