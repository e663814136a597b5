package db

import (
	"errors"
	"fmt"
)

// ErrKeyNotFound signals a missing key.
var ErrKeyNotFound = errors.New("key not found")

// Op identifies the store operation that failed.
type Op string

// Store operations.
const (
	OpGet Op = "get"
	OpSet Op = "set"
)

// Error wraps a backend failure with the operation that caused it.
type Error struct {
	Op  Op
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("db %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
