package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrThrottled             = errors.New("upstream throttled")
	ErrTransient             = errors.New("upstream transient failure")
	ErrUpstreamRejected      = errors.New("upstream rejected request")
	ErrSchema                = errors.New("payload schema violation")
)

// SchemaError points at the first offending field of an upstream payload.
type SchemaError struct {
	Path   string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", ErrSchema, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", ErrSchema, e.Path, e.Reason)
}

func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}
