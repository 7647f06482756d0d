package errorvalues

import "errors"

var (
	ErrUserExists   = errors.New("such user already exists")
	ErrUserNotFound = errors.New("user doesn't exists")
	ErrInvalidToken = errors.New("invalid token")
	ErrWrongOwner   = errors.New("resource belongs to another user")
	ErrValidation   = errors.New("validation error")

	ErrInvalidOTP  = errors.New("invalid one-time passcode")
	ErrOTPExpired  = errors.New("one-time passcode expired")
	ErrOTPNotFound = errors.New("no one-time passcode was requested")

	ErrExerciseNotFound = errors.New("exercise doesn't exist")
	ErrRecordNotFound   = errors.New("daily record doesn't exist")
	ErrDeviceNotFound   = errors.New("device doesn't exist")
	ErrDeviceExists     = errors.New("device already paired")
	ErrGoalNotFound     = errors.New("goal doesn't exist")

	ErrPushDisabled = errors.New("push notifications are not configured")
)
