package schedule

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("schedule entry not found")
)
