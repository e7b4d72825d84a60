package resume

import "errors"

var (
	ErrNotFound         = errors.New("draft not found")
	ErrUnknownField     = errors.New("unknown field")
	ErrIndexOutOfRange  = errors.New("entry index out of range")
	ErrInvalidPhoto     = errors.New("photo must be an image data URI")
	ErrValidationFailed = errors.New("required fields are missing")
)
