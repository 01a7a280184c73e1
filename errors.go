// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xprops/blob/main/LICENSE.

package xprops

import (
	"errors"
)

// ErrIO is the kind of every error returned by [PropertyMapLoader.Value].
// Check against it with errors.Is.
var ErrIO = errors.New("properties i/o failure")

// ErrNilStream is returned when an [Input] provides no stream and no error.
var ErrNilStream = errors.New("input returned a nil stream")

// IOError is the error returned by [PropertyMapLoader] when a source
// could not be opened, read or decoded.
// It matches [ErrIO] and unwraps to the original cause.
type IOError struct {
	cause error // the underlying error
}

// NewIOError instantiates a new IOError.
// The original cause must be provided.
func NewIOError(cause error) *IOError {
	return &IOError{cause: cause}
}

// Error returns string representation of the IOError.
// It implements standard go error interface.
func (e *IOError) Error() string {
	return ErrIO.Error() + ": " + e.cause.Error()
}

// Unwrap returns the original cause.
func (e *IOError) Unwrap() error {
	return e.cause
}

// Is reports whether target is ErrIO.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// toIOError wraps err as an IOError, if it is not one already.
func toIOError(err error) error {
	var ioErr *IOError
	if errors.As(err, &ioErr) {
		return err
	}

	return NewIOError(err)
}
