package domain

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailExists  = errors.New("user with this email already exists")
	ErrPhoneExists  = errors.New("user with this phone number already exists")

	ErrRoleNotFound  = errors.New("role not found")
	ErrRoleExists    = errors.New("role already exists")
	ErrRoleInUse     = errors.New("role is assigned to users")
	ErrProtectedRole = errors.New("cannot delete default role")
	ErrInvalidRoles  = errors.New("one or more invalid roles provided")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordPolicy     = errors.New("password must be 8-100 characters and contain uppercase, lowercase, number, and special character")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")
)
