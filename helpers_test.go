// Copyright 2013 Benoît Amiaux. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package resize

import (
	"unsafe"
)

// alignedBytes returns n zeroed bytes starting on a 4-byte boundary.
func alignedBytes(n int) []byte {
	words := make([]uint32, (n+3)/4+1)
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(words))), n)
}

func solid(w, h int, px [4]byte) []byte {
	buf := alignedBytes(w * h * BytesPerPixel)
	for i := 0; i < len(buf); i += BytesPerPixel {
		copy(buf[i:], px[:])
	}
	return buf
}

// pattern fills an opaque image whose color channels depend on x and y.
func pattern(w, h int) []byte {
	buf := alignedBytes(w * h * BytesPerPixel)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * BytesPerPixel
			buf[i+0] = byte(x*7 + y*3)
			buf[i+1] = byte(x*13 + y*29)
			buf[i+2] = byte(x ^ y)
			buf[i+3] = 255
		}
	}
	return buf
}

func fill(buf []byte, v byte) []byte {
	for i := range buf {
		buf[i] = v
	}
	return buf
}

func pixel(buf []byte, w, x, y int) [4]byte {
	i := (y*w + x) * BytesPerPixel
	return [4]byte{buf[i], buf[i+1], buf[i+2], buf[i+3]}
}
