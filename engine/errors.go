package engine

import "github.com/rotisserie/eris"

var (
	// ErrCapacityExhausted is returned by CreateEntity when every identifier below capacity is live
	ErrCapacityExhausted = eris.New("entity capacity exhausted")

	// ErrPreconditionViolation is the panic value root for caller bugs:
	// double destroy, destroy of a never-issued id, out-of-range store index
	ErrPreconditionViolation = eris.New("precondition violation")

	// ErrNotRegistered is the panic value root when a store is requested for an unregistered type
	ErrNotRegistered = eris.New("component type not registered")

	// ErrInvalidConfig is returned by Config.Validate
	ErrInvalidConfig = eris.New("invalid ecs config")
)

// violation panics with an eris-wrapped ErrPreconditionViolation
func violation(format string, args ...any) {
	panic(eris.Wrapf(ErrPreconditionViolation, format, args...))
}
