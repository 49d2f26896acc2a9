package list

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyList              = errors.New("list is empty")
	ErrConcurrentModification = errors.New("list modified during iteration")
)

// Error reports a misuse of a List. Kind is one of the Err* values above.
type Error struct {
	Op   string
	Kind error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind.Error())
}

func (e *Error) Unwrap() error { return e.Kind }
