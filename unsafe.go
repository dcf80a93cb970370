// Copyright 2013 Benoît Amiaux. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package resize

import (
	"unsafe"
)

func sliceAddr(b []byte) uint64 {
	return uint64(uintptr(unsafe.Pointer(unsafe.SliceData(b))))
}

// ResizePointers resizes the sw x sh RGBA buffer at src into the dw x dh
// buffer at dst. It is meant for foreign callers that only own raw
// pointers: slices over the buffers are built only after the addresses
// and dimensions passed the validation gate.
//
// The caller guarantees that src and dst point to at least
// sw*sh*4 and dw*dh*4 bytes which stay alive for the duration of the call.
func (c *Context) ResizePointers(src unsafe.Pointer, sw, sh uint32, dst unsafe.Pointer, dw, dh uint32) Status {
	return c.runPointers(c.cfg.Algorithm, src, sw, sh, dst, dw, dh)
}

// ResizeNearestPointers is ResizePointers forced to nearest-neighbor
// sampling.
func (c *Context) ResizeNearestPointers(src unsafe.Pointer, sw, sh uint32, dst unsafe.Pointer, dw, dh uint32) Status {
	return c.runPointers(Nearest, src, sw, sh, dst, dw, dh)
}

func (c *Context) runPointers(algo Algorithm, src unsafe.Pointer, sw, sh uint32, dst unsafe.Pointer, dw, dh uint32) Status {
	c.status = StatusOK
	srcSize, dstSize, err := validate(
		Region{Addr: uint64(uintptr(src)), Width: sw, Height: sh},
		Region{Addr: uint64(uintptr(dst)), Width: dw, Height: dh},
		!c.cfg.AllowUnaligned)
	if err != nil {
		c.latch(err)
		return c.status
	}
	c.latch(c.scale(algo,
		&Plane{Pix: unsafe.Slice((*byte)(dst), dstSize), Width: dw, Height: dh},
		&Plane{Pix: unsafe.Slice((*byte)(src), srcSize), Width: sw, Height: sh}))
	return c.status
}

// Pointer returns the address of the byte at addr inside m, or nil for
// the null address and addresses past the end of m.
func (m *Memory) Pointer(addr Addr) unsafe.Pointer {
	if addr == 0 || uint64(addr) >= uint64(len(m.data)) {
		return nil
	}
	return unsafe.Pointer(&m.data[addr])
}

// AddrOf returns the address inside m of p, a pointer obtained from
// Pointer. It reports false if p does not point into m.
func (m *Memory) AddrOf(p unsafe.Pointer) (Addr, bool) {
	if p == nil || len(m.data) == 0 {
		return 0, false
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(m.data)))
	if uintptr(p) < base || uintptr(p)-base >= uintptr(len(m.data)) {
		return 0, false
	}
	return Addr(uintptr(p) - base), true
}
