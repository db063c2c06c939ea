package domain

import (
	"errors"
	"time"
)

// User is an authenticated actor. Participants are users with a
// participant type set; plain users can view but not mutate finances.
type User struct {
	ID        string
	Email     string
	Name      string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
	Active    bool
}

// Role represents a user's access level.
type Role string

const (
	// RoleAdmin can settle invoices, adjust balances, and manage
	// reference data.
	RoleAdmin Role = "admin"

	// RoleMember can create jobs and view finances.
	RoleMember Role = "member"
)

var validRoles = map[Role]bool{
	RoleAdmin:  true,
	RoleMember: true,
}

// IsValid checks if the role is a valid role.
func (r Role) IsValid() bool {
	return validRoles[r]
}

// CanSettle reports whether the role may run financial mutations:
// settlement, adjustments, payouts, status changes.
func (r Role) CanSettle() bool {
	return r == RoleAdmin
}

// Authentication errors
var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInsufficientRole = errors.New("insufficient role for this operation")
)
