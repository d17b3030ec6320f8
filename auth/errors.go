package auth

import "errors"

// Sentinel errors returned by the session service. Controllers map each of
// these to an HTTP status; the messages are safe to show to callers.
var (
	// Registration-time validation failures.
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrInvalidEmailFormat = errors.New("invalid email format")

	// Deliberately generic: covers both unknown user and wrong password so
	// login can't be used to enumerate usernames.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Refresh flow. These are distinguishable because refresh tokens are
	// not an enumeration vector the way usernames are.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrUserNotFound        = errors.New("user not found")

	// Deliberately collapsed: reset-token parse failure, lookup miss and
	// validator mismatch all look the same from the outside.
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")

	ErrUnauthorized = errors.New("unauthorized")
)
