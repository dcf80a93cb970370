// Copyright 2013 Benoît Amiaux. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package errors

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	assert.Nil(t, New(nil))

	err := New(io.EOF)
	require.NotNil(t, err)
	assert.True(t, Is(err, io.EOF))
	assert.Same(t, err, New(err))
	assert.Contains(t, Stack(err), "errors_test.go")
}

func TestWrapPrefix(t *testing.T) {
	err := WrapPrefix(io.EOF, "read", 0)
	assert.Equal(t, "read: EOF", err.Error())
	assert.Equal(t, io.EOF, Unwrap(err))
}

func TestJoin(t *testing.T) {
	assert.Nil(t, Join(nil, nil))
	err := Join(io.EOF, io.ErrUnexpectedEOF)
	assert.True(t, Is(err, io.EOF))
	assert.True(t, Is(err, io.ErrUnexpectedEOF))
	assert.NotEmpty(t, Stack(err))
}

func TestStack(t *testing.T) {
	assert.Empty(t, Stack(io.EOF))
	assert.Empty(t, Stack(nil))
	err := Errorf("size %d", 3)
	assert.Equal(t, "size 3", err.Error())
	var target *Error
	assert.True(t, As(err, &target))
}
