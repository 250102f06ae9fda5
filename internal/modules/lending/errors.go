package lending

import "errors"

var (
	ErrValidation              = errors.New("validation error")
	ErrNotFound                = errors.New("record not found")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
