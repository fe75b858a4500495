package auth

import "time"

type Role string

const (
	RoleUser       Role = "user"
	RoleResearcher Role = "researcher"
	RoleAdmin      Role = "admin"
)

// User is the domain representation of a platform account. It mirrors the
// users table and carries no JSON annotations so it can be reused by
// different presentation layers; the password hash never leaves this package
// except stripped through PublicUser.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Institution  string
	Role         Role
	ResearchArea []string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the externally visible shape of an account. It deliberately
// has no password field at all, so serialization cannot leak the hash.
type PublicUser struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Institution  string    `json:"institution"`
	Role         Role      `json:"role"`
	ResearchArea []string  `json:"researchArea"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Public strips the credential material from a user record.
func (u User) Public() PublicUser {
	area := u.ResearchArea
	if area == nil {
		area = []string{}
	}
	return PublicUser{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Institution:  u.Institution,
		Role:         u.Role,
		ResearchArea: area,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
	}
}

// RegisterRequest contains account registration data supplied by callers.
type RegisterRequest struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Password     string   `json:"password"`
	Institution  string   `json:"institution"`
	Role         Role     `json:"role"`
	ResearchArea []string `json:"researchArea"`
}

// LoginRequest contains login credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
