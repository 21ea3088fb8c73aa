package auth

import (
	"time"

	"github.com/google/uuid"
)

// Role разделяет работодателей и кандидатов.
type Role string

const (
	RoleEmployer  Role = "employer"
	RoleCandidate Role = "candidate"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool { return r == RoleEmployer || r == RoleCandidate }

// User is a domain entity representing a system user.
type User struct {
	ID           uuid.UUID
	Email        string
	FullName     string
	Role         Role
	PasswordHash string
	CreatedAt    time.Time
}
