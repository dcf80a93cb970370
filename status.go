// Copyright 2013 Benoît Amiaux. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package resize

import (
	"github.com/zayokami/resize/internal/errors"
)

// Status is the outcome of a resize call. The integer values are stable
// and shared with hosts calling across the wasm boundary.
type Status int32

const (
	// StatusOK means the destination buffer has been filled
	StatusOK Status = iota
	// StatusNullPointer means a source or destination address was null
	StatusNullPointer
	// StatusInvalidSize means a dimension was zero or above the limits
	StatusInvalidSize
	// StatusOverflow means a size or offset did not fit the address width
	StatusOverflow
	// StatusMemory means a buffer could not be obtained from memory
	StatusMemory
	// StatusAlignment means an address was not 4-byte aligned
	StatusAlignment
	// StatusOverlap means source and destination byte ranges intersect
	StatusOverlap
)

var statusMessages = [...]string{
	StatusOK:          "OK",
	StatusNullPointer: "NULL pointer",
	StatusInvalidSize: "Invalid size or dimensions",
	StatusOverflow:    "Overflow in size calculation",
	StatusMemory:      "Memory error",
	StatusAlignment:   "Pointer alignment error",
	StatusOverlap:     "Memory regions overlap",
}

// String returns the human readable description of s.
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusMessages) {
		return "Unknown error"
	}
	return statusMessages[s]
}

func (s Status) Error() string { return s.String() }

// Err returns nil for StatusOK and s wrapped with the caller's stack
// otherwise.
func (s Status) Err() error {
	if s == StatusOK {
		return nil
	}
	return errors.Wrap(s, 1)
}

// StatusOf maps err back to its Status. Errors that do not carry a
// Status are reported as StatusMemory.
func StatusOf(err error) Status {
	if err == nil {
		return StatusOK
	}
	var s Status
	if errors.As(err, &s) {
		return s
	}
	return StatusMemory
}
