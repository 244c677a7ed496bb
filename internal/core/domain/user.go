package domain

import (
	"fmt"
	"time"
)

// Role is the closed set of account roles. Use ParseRole to convert untrusted
// strings; never compare raw strings against role names.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleClient Role = "client"
)

// ParseRole converts s into a Role, rejecting anything outside the known set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleClient:
		return RoleClient, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

func (r Role) String() string { return string(r) }

// User models an account: either the salon admin or a loyalty client.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password"`
	Role         Role      `json:"role" db:"role"`
	FirstName    string    `json:"first_name" db:"first_name"`
	Phone        string    `json:"phone" db:"phone"`
	Points       int64     `json:"points" db:"points"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Profile is the redacted view of a user returned at login.
type Profile struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Role      Role   `json:"role"`
	FirstName string `json:"first_name"`
	Points    int64  `json:"points"`
}

// Profile strips credentials and contact data from u.
func (u *User) Profile() Profile {
	return Profile{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		FirstName: u.FirstName,
		Points:    u.Points,
	}
}

// ClientSummary is one row of the admin client list.
type ClientSummary struct {
	ID        int64     `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	FirstName string    `json:"first_name" db:"first_name"`
	Phone     string    `json:"phone" db:"phone"`
	Points    int64     `json:"points" db:"points"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ClientProfile is what a client sees about themselves.
type ClientProfile struct {
	ID        int64  `json:"id" db:"id"`
	Username  string `json:"username" db:"username"`
	FirstName string `json:"first_name" db:"first_name"`
	Phone     string `json:"phone" db:"phone"`
	Points    int64  `json:"points" db:"points"`
}

// AdminStats aggregates every client account.
type AdminStats struct {
	TotalClients      int64 `json:"total_clients" db:"total_clients"`
	TotalPoints       int64 `json:"total_points" db:"total_points"`
	TotalAppointments int64 `json:"total_appointments" db:"total_appointments"`
}
