package model

// UserDto is the authenticated identity carried inside the JWT.
type UserDto struct {
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}
