// Copyright 2013 Benoît Amiaux. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package resize

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResizePointers(t *testing.T) {
	src := pattern(8, 8)
	got := alignedBytes(3 * 3 * BytesPerPixel)
	want := alignedBytes(len(got))
	sp := unsafe.Pointer(unsafe.SliceData(src))
	dp := unsafe.Pointer(unsafe.SliceData(got))

	ctx := NewContext(nil)
	require.Equal(t, StatusOK, ctx.ResizePointers(sp, 8, 8, dp, 3, 3))
	require.NoError(t, NewContext(nil).Resize(want, 3, 3, src, 8, 8))
	assert.Equal(t, want, got)

	require.Equal(t, StatusOK, ctx.ResizeNearestPointers(sp, 8, 8, dp, 3, 3))
	require.NoError(t, NewContext(nil).ResizeNearest(want, 3, 3, src, 8, 8))
	assert.Equal(t, want, got)
}

func TestResizePointersRejects(t *testing.T) {
	src := pattern(8, 8)
	dst := fill(alignedBytes(4*4*BytesPerPixel), 0xAA)
	sp := unsafe.Pointer(unsafe.SliceData(src))
	dp := unsafe.Pointer(unsafe.SliceData(dst))

	ctx := NewContext(nil)
	assert.Equal(t, StatusNullPointer, ctx.ResizePointers(nil, 8, 8, dp, 2, 2))
	assert.Equal(t, StatusNullPointer, ctx.ResizePointers(sp, 8, 8, nil, 2, 2))
	assert.Equal(t, "NULL pointer", ctx.LastError())
	assert.Equal(t, StatusAlignment, ctx.ResizePointers(sp, 8, 8, unsafe.Add(dp, 1), 2, 2))
	assert.Equal(t, StatusInvalidSize, ctx.ResizePointers(sp, 0, 8, dp, 2, 2))
	assert.Equal(t, StatusOverflow, ctx.ResizePointers(sp, 65535, 65535, dp, 2, 2))
	assert.Equal(t, StatusOverlap, ctx.ResizePointers(sp, 8, 8, unsafe.Add(sp, 16), 2, 2))
	assert.Equal(t, fill(make([]byte, len(dst)), 0xAA), dst)
}

func TestMemoryPointers(t *testing.T) {
	m := NewMemory(256)
	a := mustAlloc(t, m, 16)
	p := m.Pointer(a)
	require.NotNil(t, p)
	buf, err := m.Bytes(a, 16)
	require.NoError(t, err)
	assert.Equal(t, unsafe.Pointer(&buf[0]), p)

	addr, ok := m.AddrOf(p)
	assert.True(t, ok)
	assert.Equal(t, a, addr)
	addr, ok = m.AddrOf(unsafe.Add(p, 4))
	assert.True(t, ok)
	assert.Equal(t, a+4, addr)

	assert.Nil(t, m.Pointer(0))
	assert.Nil(t, m.Pointer(256))
	_, ok = m.AddrOf(nil)
	assert.False(t, ok)
	var local [4]byte
	_, ok = m.AddrOf(unsafe.Pointer(&local[0]))
	assert.False(t, ok)
}

func TestRecord(t *testing.T) {
	ctx := NewContext(nil)
	assert.Equal(t, StatusMemory, ctx.Record(StatusMemory.Err()))
	assert.Equal(t, "Memory error", ctx.LastError())
	assert.Equal(t, StatusOK, ctx.Record(nil))
}
