package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrProfileNotFound = errors.New("profile doesn't exists")

	ErrBrushExists   = errors.New("brush record for this date already exists")
	ErrBrushNotFound = errors.New("brush record doesn't exists")
	ErrInvalidMonth  = errors.New("invalid month format, expected YYYY-MM")

	ErrValidation      = errors.New("validation failed")
	ErrChatUnavailable = errors.New("chat service unavailable")
)
