package integration

import (
	"errors"
	"fmt"

	apperrors "github.com/louisbranch/dicebot/internal/platform/errors"
)

// ServiceError reports a failed call to a downstream service.
type ServiceError struct {
	// Service names the downstream service, e.g. "dice".
	Service string
	// Code is the domain code attached by the service, when any.
	Code apperrors.Code
	Err  error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e == nil {
		return "service error"
	}
	if e.Code != "" && e.Code != apperrors.CodeUnknown {
		return fmt.Sprintf("%s service (%s): %v", e.Service, e.Code, e.Err)
	}
	return fmt.Sprintf("%s service: %v", e.Service, e.Err)
}

// Unwrap returns the underlying error.
func (e *ServiceError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsServiceError reports whether err came from a downstream service.
func IsServiceError(err error) bool {
	var serviceErr *ServiceError
	return errors.As(err, &serviceErr)
}
