package domain

import "errors"

var (
	ErrUserExists           = errors.New("user with this email or username already exists")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrAccountDeactivated   = errors.New("account is deactivated")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrInvalidRole          = errors.New("invalid role")
)
