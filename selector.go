// Copyright 2013 Benoît Amiaux. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package resize

const (
	// beyond this ratio on any axis nearest is always used
	maxBilinearRatio = 8

	smallImagePixels  = 1_000_000
	mediumImagePixels = 10_000_000
)

// UseNearest reports whether a resize from sw x sh to dw x dh should use
// nearest-neighbor sampling instead of bilinear interpolation.
//
// Pure upscales and same-size copies always use bilinear. A downscale
// by more than 8x on any axis always uses nearest. Otherwise the allowed
// ratio shrinks with the source pixel count: 8x below one megapixel, 4x
// below ten megapixels and 2x above.
func UseNearest(sw, sh, dw, dh uint32) bool {
	downX := sw > dw
	downY := sh > dh
	if !downX && !downY {
		return false
	}
	if exceeds(downX, sw, dw, maxBilinearRatio) || exceeds(downY, sh, dh, maxBilinearRatio) {
		return true
	}
	threshold := uint32(2)
	switch pixels := uint64(sw) * uint64(sh); {
	case pixels < smallImagePixels:
		threshold = 8
	case pixels < mediumImagePixels:
		threshold = 4
	}
	return exceeds(downX, sw, dw, threshold) || exceeds(downY, sh, dh, threshold)
}

func exceeds(down bool, src, dst, ratio uint32) bool {
	return down && src > satMul(dst, ratio)
}

func satMul(a, b uint32) uint32 {
	p := uint64(a) * uint64(b)
	if p > 0xFFFFFFFF {
		return 0xFFFFFFFF
	}
	return uint32(p)
}
