package core

import "errors"

var (
	// ErrUnknownLevel indicates a level name or value that is not
	// registered.
	ErrUnknownLevel = errors.New("unknown log level")

	// ErrInvalidLevelValue indicates a registration or assignment of a
	// level value that is not allowed, such as a non-positive custom
	// level outside compatibility mode or a value collision.
	ErrInvalidLevelValue = errors.New("invalid log level value")

	// ErrMissingLoggerName indicates that a logger name could not be
	// inferred and none was supplied.
	ErrMissingLoggerName = errors.New("missing logger name")
)
