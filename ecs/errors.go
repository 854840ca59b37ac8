package ecs

import (
	"errors"
	"fmt"
)

// ErrPrecondition is wrapped by every PreconditionError.
var ErrPrecondition = errors.New("ecs: precondition failed")

// PreconditionError reports a singleton query that did not match exactly one entity.
type PreconditionError struct {
	Query string
	Count int
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("ecs: expected exactly one entity with %s, found %d", e.Query, e.Count)
}

func (e *PreconditionError) Unwrap() error {
	return ErrPrecondition
}
