package model

import "errors"

var (
	ErrRecordNotFound  = errors.New("record not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrEmailTaken      = errors.New("email already registered")
)
