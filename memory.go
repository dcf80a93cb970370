// Copyright 2013 Benoît Amiaux. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package resize

import (
	"log/slog"

	"github.com/google/btree"

	"github.com/zayokami/resize/internal/errors"
)

// Addr is an address inside a Memory. Address 0 is the null pointer and
// is never returned by Alloc.
type Addr uint32

const memAlign = 8

type span struct {
	addr uint32
	size uint32
}

func spanLess(a, b span) bool { return a.addr < b.addr }

// Memory is a linear 32-bit address space, as seen by a host calling
// the kernel across a wasm boundary. It carries a first-fit allocator
// for callers that need somewhere to put their pixels.
//
// Memory is not safe for concurrent use.
type Memory struct {
	data []byte
	free *btree.BTreeG[span] // free spans ordered by address
	live map[Addr]uint32     // allocated spans and their rounded sizes
}

// NewMemory returns a zeroed address space of size bytes, rounded down
// to the allocation alignment. The first aligned block stays reserved
// so that no allocation lands on the null address.
func NewMemory(size uint32) *Memory {
	size &^= memAlign - 1
	m := &Memory{
		data: make([]byte, size),
		free: btree.NewG(8, spanLess),
		live: make(map[Addr]uint32),
	}
	if size > memAlign {
		m.free.ReplaceOrInsert(span{addr: memAlign, size: size - memAlign})
	}
	return m
}

// Size returns the size of the address space in bytes.
func (m *Memory) Size() uint32 { return uint32(len(m.data)) }

// Available returns the number of free bytes, which may be fragmented.
func (m *Memory) Available() uint32 {
	total := uint32(0)
	m.free.Ascend(func(s span) bool {
		total += s.size
		return true
	})
	return total
}

func alignUp(size uint32) (uint32, bool) {
	n := uint64(size) + memAlign - 1
	n &^= memAlign - 1
	if n > 0xFFFFFFFF {
		return 0, false
	}
	return uint32(n), true
}

// Alloc returns the address of size zeroed bytes aligned to 8 bytes.
// Returns 0 and an error if size is 0 or no free span is large enough.
func (m *Memory) Alloc(size uint32) (Addr, error) {
	if size == 0 {
		return 0, StatusInvalidSize.Err()
	}
	n, ok := alignUp(size)
	if !ok {
		return 0, StatusMemory.Err()
	}
	var found span
	hit := false
	m.free.Ascend(func(s span) bool {
		if s.size >= n {
			found, hit = s, true
		}
		return !hit
	})
	if !hit {
		return 0, errors.WrapPrefix(StatusMemory, "out of memory", 0)
	}
	m.free.Delete(found)
	if found.size > n {
		m.free.ReplaceOrInsert(span{addr: found.addr + n, size: found.size - n})
	}
	clear(m.data[found.addr : found.addr+n])
	m.live[Addr(found.addr)] = n
	return Addr(found.addr), nil
}

// Free releases a block returned by Alloc. size must be the size passed
// to Alloc. Null addresses, zero sizes and unknown blocks are ignored.
func (m *Memory) Free(addr Addr, size uint32) {
	if addr == 0 || size == 0 {
		return
	}
	n, ok := m.live[addr]
	if want, _ := alignUp(size); !ok || want != n {
		Logger().Warn("ignoring free of unknown block",
			slog.Uint64("addr", uint64(addr)), slog.Uint64("size", uint64(size)))
		return
	}
	delete(m.live, addr)
	s := span{addr: uint32(addr), size: n}
	var prev, next span
	var hasPrev, hasNext bool
	m.free.DescendLessOrEqual(s, func(p span) bool {
		prev, hasPrev = p, true
		return false
	})
	m.free.AscendGreaterOrEqual(s, func(p span) bool {
		next, hasNext = p, true
		return false
	})
	if hasPrev && prev.addr+prev.size == s.addr {
		m.free.Delete(prev)
		s = span{addr: prev.addr, size: prev.size + s.size}
	}
	if hasNext && s.addr+s.size == next.addr {
		m.free.Delete(next)
		s.size += next.size
	}
	m.free.ReplaceOrInsert(s)
}

// Bytes returns the n bytes starting at addr.
// Returns an error if the range does not fit the address space.
func (m *Memory) Bytes(addr Addr, n uint32) ([]byte, error) {
	end := uint64(addr) + uint64(n)
	if end > uint64(len(m.data)) {
		return nil, errors.WrapPrefix(StatusMemory,
			"range outside of linear memory", 0)
	}
	return m.data[addr:end:end], nil
}

// ResizeAt resizes the sw x sh RGBA buffer at src into the dw x dh
// buffer at dst, both inside m, with the configured algorithm.
func (c *Context) ResizeAt(m *Memory, src Addr, sw, sh uint32, dst Addr, dw, dh uint32) Status {
	return c.runAt(c.cfg.Algorithm, m, src, sw, sh, dst, dw, dh)
}

// ResizeNearestAt is ResizeAt forced to nearest-neighbor sampling.
func (c *Context) ResizeNearestAt(m *Memory, src Addr, sw, sh uint32, dst Addr, dw, dh uint32) Status {
	return c.runAt(Nearest, m, src, sw, sh, dst, dw, dh)
}

func (c *Context) runAt(algo Algorithm, m *Memory, src Addr, sw, sh uint32, dst Addr, dw, dh uint32) Status {
	c.status = StatusOK
	if m == nil {
		c.latch(StatusMemory.Err())
		return c.status
	}
	srcSize, dstSize, err := validate(
		Region{Addr: uint64(src), Width: sw, Height: sh},
		Region{Addr: uint64(dst), Width: dw, Height: dh},
		!c.cfg.AllowUnaligned)
	if err != nil {
		c.latch(err)
		return c.status
	}
	s, errSrc := m.Bytes(src, srcSize)
	d, errDst := m.Bytes(dst, dstSize)
	if err := errors.Join(errSrc, errDst); err != nil {
		c.latch(err)
		return c.status
	}
	c.latch(c.scale(algo,
		&Plane{Pix: d, Width: dw, Height: dh},
		&Plane{Pix: s, Width: sw, Height: sh}))
	return c.status
}
