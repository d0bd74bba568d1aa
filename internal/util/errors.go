package util

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrEmailRegistered       = errors.New("email already registered")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrPermissionDenied      = errors.New("permission denied")
	ErrAssignmentNotFound    = errors.New("assignment not found")
	ErrExerciseNotFound      = errors.New("exercise not found")
	ErrSessionNotFound       = errors.New("session not found")
	ErrScreeningNotFound     = errors.New("no screening in progress")
	ErrClassifierUnavailable = errors.New("risk classifier unavailable")
	ErrResultNotFound        = errors.New("result not found")
)
