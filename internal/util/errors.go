package util

import "errors"

var (
	ErrSessionTooShort = errors.New("study session must be at least one minute")
	ErrItemNotFound    = errors.New("shop item not found")
	ErrTimerRunning    = errors.New("timer is running")
	ErrTimerInProgress = errors.New("timer has unrecorded time, stop it first")
	ErrInvalidMode     = errors.New("invalid timer mode")
	ErrInvalidSubject  = errors.New("invalid subject")
)
