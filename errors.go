package linkedhashmap

import (
	"errors"
	"fmt"
)

// ErrInvalidIterator is the sentinel every iterator failure unwraps to.
var ErrInvalidIterator = errors.New("invalid iterator")

// KeyNotFoundError may be returned by functions in this package when they're called with keys that are not present
// in the map.
type KeyNotFoundError[K any] struct {
	MissingKey K
}

func (e *KeyNotFoundError[K]) Error() string {
	return fmt.Sprintf("missing key: %v", e.MissingKey)
}

// InvalidIteratorError describes why an iterator could not be used.
type InvalidIteratorError struct {
	Op     string
	Reason string
}

func (e *InvalidIteratorError) Error() string {
	return fmt.Sprintf("%s: %v: %s", e.Op, ErrInvalidIterator, e.Reason)
}

func (e *InvalidIteratorError) Unwrap() error {
	return ErrInvalidIterator
}

const (
	reasonEnd     = "end sentinel"
	reasonForeign = "iterator belongs to another map"
	reasonStale   = "element was erased or the map was cleared"
	reasonUnbound = "iterator is not bound to a map"
	reasonHead    = "cannot step before the first element"
	reasonEmpty   = "map is empty"
)

func invalidIterator(op, reason string) error {
	return &InvalidIteratorError{Op: op, Reason: reason}
}
