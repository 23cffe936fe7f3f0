package auth

import "foodgram/internal/pkg/apperr"

var (
	ErrUserNotFound       = apperr.NotFound("USER_NOT_FOUND", "user not found")
	ErrUsernameTaken      = apperr.Conflict("USERNAME_TAKEN", "username is already taken")
	ErrEmailTaken         = apperr.Conflict("EMAIL_TAKEN", "email is already registered")
	ErrInvalidCredentials = apperr.Unauthorized("INVALID_CREDENTIALS", "email or password is incorrect")
	ErrWrongPassword      = apperr.Validation("WRONG_PASSWORD", "current password is incorrect")
	ErrAvatarRequired     = apperr.Validation("AVATAR_REQUIRED", "avatar must not be empty")
)
