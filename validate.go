// Copyright 2013 Benoît Amiaux. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package resize

import (
	"math"
	"math/bits"
)

const (
	// BytesPerPixel is the size of one RGBA pixel
	BytesPerPixel = 4
	// MaxDimension is the largest accepted width or height
	MaxDimension = 65535
	// MaxPixels is the largest accepted width*height of one buffer
	MaxPixels = 268_435_456

	addrAlign = 4
)

// Region describes a buffer as seen from the caller: its start address
// and its dimensions in pixels. Addr 0 is the null pointer.
type Region struct {
	Addr   uint64
	Width  uint32
	Height uint32
}

// Validate checks a source and destination region and returns their
// sizes in bytes. It never touches memory. Checks run in a fixed order
// and the first failure is returned:
//
//	null address, 4-byte alignment, zero dimension, size overflow,
//	dimension and pixel limits, overlapping byte ranges
func Validate(src, dst Region) (srcSize, dstSize uint32, err error) {
	return validate(src, dst, true)
}

func validate(src, dst Region, strict bool) (srcSize, dstSize uint32, err error) {
	if src.Addr == 0 || dst.Addr == 0 {
		return 0, 0, StatusNullPointer.Err()
	}
	if strict && (src.Addr%addrAlign != 0 || dst.Addr%addrAlign != 0) {
		return 0, 0, StatusAlignment.Err()
	}
	if src.Width == 0 || src.Height == 0 || dst.Width == 0 || dst.Height == 0 {
		return 0, 0, StatusInvalidSize.Err()
	}
	srcSize, ok := bufferSize(src.Width, src.Height)
	if !ok {
		return 0, 0, StatusOverflow.Err()
	}
	dstSize, ok = bufferSize(dst.Width, dst.Height)
	if !ok {
		return 0, 0, StatusOverflow.Err()
	}
	if !withinLimits(src) || !withinLimits(dst) {
		return 0, 0, StatusInvalidSize.Err()
	}
	if overlaps(src.Addr, srcSize, dst.Addr, dstSize) {
		return 0, 0, StatusOverlap.Err()
	}
	return srcSize, dstSize, nil
}

// bufferSize returns w*h*4 if it fits the 32-bit address width of the
// kernel. The product is formed on 64 bits before narrowing.
func bufferSize(w, h uint32) (uint32, bool) {
	hi, pixels := bits.Mul64(uint64(w), uint64(h))
	if hi != 0 {
		return 0, false
	}
	hi, size := bits.Mul64(pixels, BytesPerPixel)
	if hi != 0 || size > math.MaxUint32 {
		return 0, false
	}
	return uint32(size), true
}

func withinLimits(r Region) bool {
	if r.Width > MaxDimension || r.Height > MaxDimension {
		return false
	}
	return uint64(r.Width)*uint64(r.Height) <= MaxPixels
}

// overlaps reports whether [a, a+an) and [b, b+bn) intersect.
func overlaps(a uint64, an uint32, b uint64, bn uint32) bool {
	return a < satAdd(b, uint64(bn)) && b < satAdd(a, uint64(an))
}

func satAdd(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}
