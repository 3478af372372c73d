package engine

import "errors"

var (
	ErrTaskTitleRequired = errors.New("task title is required")
	ErrInvalidCategory   = errors.New("invalid task category")
	ErrInvalidSlot       = errors.New("invalid timetable slot")
)
