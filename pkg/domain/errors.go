package domain

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when an action addresses a position outside the list.
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexError reports which action addressed an invalid position.
type IndexError struct {
	Kind  ActionKind
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0,%d)", e.Kind, e.Index, e.Len)
}

// Unwrap allows errors.Is(err, ErrIndexOutOfRange).
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
