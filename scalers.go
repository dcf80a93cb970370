// Copyright 2013 Benoît Amiaux. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package resize

import (
	"math"
	"math/bits"
)

// u8 narrows x to a channel value, saturating instead of wrapping.
func u8(x float32) byte {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return byte(x)
}

func lerp(a, b byte, t float32) byte {
	return u8(float32(a)*(1-t) + float32(b)*t)
}

func mulOffset(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt {
		return 0, false
	}
	return int(lo), true
}

func addOffset(a, b int) (int, bool) {
	if a < 0 || b < 0 || a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}

// fits reports whether a whole pixel starting at off lies inside buf.
func fits(buf []byte, off int) bool {
	return off >= 0 && off <= len(buf)-BytesPerPixel
}

func pixelAt(src []byte, row, col int) [4]byte {
	pos, ok := addOffset(row, col)
	if !ok || !fits(src, pos) {
		return [4]byte{}
	}
	return [4]byte{src[pos], src[pos+1], src[pos+2], src[pos+3]}
}

// rowOffsets returns the byte offset of row y in a buffer of the given
// stride together with the offset one past its end.
func rowOffsets(y, stride int) (int, int, bool) {
	start, ok := mulOffset(y, stride)
	if !ok {
		return 0, 0, false
	}
	end, ok := addOffset(start, stride)
	return start, end, ok
}

// copyPlane copies height rows of width bytes between buffers with
// different pitches.
func copyPlane(dst, src []byte, width, height, dp, sp int) {
	di := 0
	si := 0
	for y := 0; y < height; y++ {
		copy(dst[di:di+width], src[si:si+width])
		di += dp
		si += sp
	}
}

func psnrPlane(dst, src []byte, width, height, dp, sp int) float64 {
	mse := 0
	di := 0
	si := 0
	for y := 0; y < height; y++ {
		for x, v := range src[si : si+width] {
			n := int(v) - int(dst[di+x])
			mse += n * n
		}
		di += dp
		si += sp
	}
	fmse := float64(mse) / float64(width*height)
	return 10 * math.Log10(255*255/fmse)
}
