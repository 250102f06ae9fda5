package equipment

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("equipment not found")
	ErrDuplicateCode = errors.New("equipment code already exists")
	ErrDuplicateName = errors.New("equipment name already exists")
)

// ValidationError carries the field -> failed tag map so handlers can report
// which fields were rejected. Matches ErrValidation under errors.Is.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return ErrValidation.Error() }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
