// Copyright 2013 Benoît Amiaux. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package resize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAlloc(t *testing.T, m *Memory, size uint32) Addr {
	t.Helper()
	addr, err := m.Alloc(size)
	require.NoError(t, err)
	require.NotZero(t, addr)
	require.Zero(t, addr%memAlign)
	return addr
}

func TestMemoryAlloc(t *testing.T) {
	m := NewMemory(1024)
	assert.Equal(t, uint32(1024), m.Size())
	assert.Equal(t, uint32(1016), m.Available())

	a := mustAlloc(t, m, 10)
	b := mustAlloc(t, m, 16)
	c := mustAlloc(t, m, 16)
	assert.Equal(t, Addr(8), a)
	assert.Equal(t, Addr(24), b)
	assert.Equal(t, Addr(40), c)
	assert.Equal(t, uint32(1016-48), m.Available())

	_, err := m.Alloc(0)
	assert.Equal(t, StatusInvalidSize, StatusOf(err))
	_, err = m.Alloc(2000)
	assert.Equal(t, StatusMemory, StatusOf(err))
	_, err = m.Alloc(0xFFFFFFFF)
	assert.Equal(t, StatusMemory, StatusOf(err))
}

func TestMemoryFreeCoalesces(t *testing.T) {
	m := NewMemory(1024)
	a := mustAlloc(t, m, 10)
	b := mustAlloc(t, m, 16)
	c := mustAlloc(t, m, 16)

	m.Free(b, 16)
	m.Free(a, 10)
	m.Free(c, 16)
	assert.Equal(t, uint32(1016), m.Available())
	assert.Equal(t, Addr(8), mustAlloc(t, m, 1016))
}

func TestMemoryFreeIgnoresUnknownBlocks(t *testing.T) {
	m := NewMemory(256)
	a := mustAlloc(t, m, 32)
	before := m.Available()
	m.Free(0, 32)
	m.Free(a, 0)
	m.Free(a+8, 8)
	m.Free(a, 64)
	assert.Equal(t, before, m.Available())

	m.Free(a, 32)
	m.Free(a, 32)
	assert.Equal(t, uint32(248), m.Available())
}

func TestMemoryAllocZeroes(t *testing.T) {
	m := NewMemory(256)
	a := mustAlloc(t, m, 32)
	buf, err := m.Bytes(a, 32)
	require.NoError(t, err)
	fill(buf, 0xFF)
	m.Free(a, 32)

	b := mustAlloc(t, m, 32)
	buf, err = m.Bytes(b, 32)
	require.NoError(t, err)
	assert.Equal(t, make([]byte, 32), buf)

	_, err = m.Bytes(250, 8)
	assert.Equal(t, StatusMemory, StatusOf(err))
}

func TestResizeAt(t *testing.T) {
	m := NewMemory(4096)
	src := mustAlloc(t, m, 4*4*BytesPerPixel)
	dst := mustAlloc(t, m, 2*2*BytesPerPixel)
	buf, err := m.Bytes(src, 4*4*BytesPerPixel)
	require.NoError(t, err)
	copy(buf, solid(4, 4, red))

	ctx := NewContext(nil)
	require.Equal(t, StatusOK, ctx.ResizeNearestAt(m, src, 4, 4, dst, 2, 2))
	out, err := m.Bytes(dst, 2*2*BytesPerPixel)
	require.NoError(t, err)
	for i := 0; i < len(out); i += BytesPerPixel {
		assert.Equal(t, red[:], out[i:i+BytesPerPixel])
	}
	assert.Equal(t, StatusOK, ctx.ResizeAt(m, src, 4, 4, dst, 2, 2))

	tests := []struct {
		name     string
		m        *Memory
		src, dst Addr
		sw, dw   uint32
		want     Status
	}{
		{"nil memory", nil, src, dst, 4, 2, StatusMemory},
		{"null src", m, 0, dst, 4, 2, StatusNullPointer},
		{"null dst", m, src, 0, 4, 2, StatusNullPointer},
		{"misaligned", m, src + 2, dst, 4, 2, StatusAlignment},
		{"zero", m, src, dst, 4, 0, StatusInvalidSize},
		{"overlap", m, src, src + 16, 4, 2, StatusOverlap},
		{"outside", m, src, 4096 - 8, 4, 2, StatusMemory},
		{"too large", m, 4096, dst, 1000, 2, StatusMemory},
		{"both outside", m, 8192, 4096 - 8, 4, 2, StatusMemory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fill(out, 0xAA)
			got := ctx.ResizeAt(tt.m, tt.src, tt.sw, tt.sw, tt.dst, tt.dw, tt.dw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, ctx.Status())
			assert.Equal(t, fill(make([]byte, len(out)), 0xAA), out)
		})
	}
}
