package domain

import "time"

// Role is the authorization level of a user account.
type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleUser       Role = "USER"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleUser:
		return true
	}
	return false
}

// Administrative reports whether the role grants access to the admin console.
func (r Role) Administrative() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// User models a site account. Email and username are stored lowercase so
// uniqueness is case-insensitive. The password hash and the one-time-password
// fields never leave the service layer: they are excluded from JSON and
// stripped by Sanitize before a user is returned to a caller.
type User struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Username      string     `json:"username"`
	PasswordHash  string     `json:"-"`
	Role          Role       `json:"role"`
	Phone         string     `json:"phone,omitempty"`
	Active        bool       `json:"active"`
	Verified      bool       `json:"verified"`
	OTP           string     `json:"-"`
	OTPExpiry     *time.Time `json:"-"`
	LastLoginDate *time.Time `json:"last_login_date,omitempty"`
	CreatedDate   time.Time  `json:"created_date"`
}

// Sanitize returns a copy of the user with all security-sensitive fields
// removed (password hash, OTP, OTP expiry).
func (u *User) Sanitize() *User {
	if u == nil {
		return nil
	}
	clean := *u
	clean.PasswordHash = ""
	clean.OTP = ""
	clean.OTPExpiry = nil
	return &clean
}
