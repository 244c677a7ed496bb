package domain

import "time"

// Identity is what a verified session token proves about its bearer.
type Identity struct {
	UserID   int64
	Username string
	Role     Role
}

// Session is the result of a successful login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      Profile
}
