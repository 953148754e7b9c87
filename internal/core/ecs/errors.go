package ecs

import "fmt"

// EntityError reports a programmer error: a violated precondition such as
// releasing an invalid entity or reading a component that was never
// assigned. These are not recoverable — callers should not type-switch on
// them to continue, only to improve a crash report — which is why the
// registry panics with *EntityError rather than returning one.
type EntityError struct {
	Code      string
	Entity    Entity
	Component string
	Message   string
}

// Error codes for EntityError.Code.
const (
	ErrInvalidEntity    = "invalid_entity"
	ErrMissingComponent = "missing_component"
	ErrDuplicateKey     = "duplicate_key"
	ErrOutOfRange       = "out_of_range"
)

func (e *EntityError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("[%s] %s (entity %s, component %s)", e.Code, e.Message, e.Entity, e.Component)
	}
	return fmt.Sprintf("[%s] %s (entity %s)", e.Code, e.Message, e.Entity)
}
