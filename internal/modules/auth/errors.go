package auth

import "errors"

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrUsernameAlreadyTaken = errors.New("username already taken")
	ErrInvalidUsername      = errors.New("username is reserved or contains forbidden characters")
	ErrWrongPassword        = errors.New("current password is wrong")
)
