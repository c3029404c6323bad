package delegate

import "errors"

var (
	// ErrUnknownOperationFromDelegate is returned when the model proposes a name outside the registry.
	ErrUnknownOperationFromDelegate = errors.New("delegate proposed an unknown operation")
	ErrDelegateFailed               = errors.New("delegate call failed")
)
