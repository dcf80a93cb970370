// Copyright 2013 Benoît Amiaux. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package errors wraps github.com/go-errors/errors so that every error
// leaving the kernel carries the stack of the check that produced it.
package errors

import (
	errorsGo "github.com/go-errors/errors"
)

type Error = errorsGo.Error

func As(err error, target any) bool { return errorsGo.As(err, target) }

func Is(err, target error) bool { return errorsGo.Is(err, target) }

func Unwrap(err error) error { return errorsGo.Unwrap(err) }

// New wraps obj with the caller's stack. It returns nil for nil unlike
// github.com/go-errors/errors.New and keeps the stack of an already
// wrapped error.
func New(obj any) *Error {
	if obj == nil {
		return nil
	}
	if errGo, ok := obj.(*errorsGo.Error); ok {
		return errGo
	}
	return errorsGo.Wrap(obj, 1)
}

func Errorf(format string, a ...any) *Error { return errorsGo.Errorf(format, a...) }

// Wrap is New with an explicit number of frames to skip.
func Wrap(e any, skip int) *Error { return errorsGo.Wrap(e, skip+1) }

func WrapPrefix(e any, prefix string, skip int) *Error {
	return errorsGo.WrapPrefix(e, prefix, skip+1)
}

// Join joins errs and records the caller's stack. It returns nil if
// every error is nil.
func Join(errs ...error) error {
	err := errorsGo.Join(errs...)
	if err == nil {
		return nil
	}
	if errGo, ok := err.(*errorsGo.Error); ok {
		return errGo
	}
	return errorsGo.Wrap(err, 1)
}

// Stack returns the stack trace recorded for err, or an empty string.
func Stack(err error) string {
	var errGo *errorsGo.Error
	if errorsGo.As(err, &errGo) {
		return errGo.ErrorStack()
	}
	return ""
}
