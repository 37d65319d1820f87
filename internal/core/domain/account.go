package domain

import (
	"errors"
	"time"
)

const (
	RoleUser       = "user"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

var ErrAccountNotFound = errors.New("account not found")
var ErrAccountExists = errors.New("account already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidRole = errors.New("invalid role")
var ErrInvalidToken = errors.New("invalid or expired token")
var ErrSessionRevoked = errors.New("session revoked or expired")

// Account models a registered actor in the system. The role is fixed at
// registration time; there is no role-change path.
type Account struct {
	ID           string    `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// RegistrableRole reports whether a role may be chosen at registration.
// Admin accounts are provisioned out of band, never self-registered.
func RegistrableRole(role string) bool {
	return role == RoleUser || role == RoleInstructor
}
