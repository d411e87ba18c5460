package service

import (
	"errors"
	"fmt"
)

// --- Error Definitions ---
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrValidationFailed = errors.New("validation failed")
)

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrValidationFailed}, args...)...)
}
