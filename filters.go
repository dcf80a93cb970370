// Copyright 2013 Benoît Amiaux. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package resize

import (
	"strings"

	"github.com/zayokami/resize/internal/errors"
)

// Algorithm selects how destination pixels are sampled.
type Algorithm int

const (
	// Auto runs bilinear unless UseNearest picks nearest for the
	// dimensions of the call
	Auto Algorithm = iota
	// Nearest copies the closest source pixel
	Nearest
	// Bilinear always blends the four closest source pixels
	Bilinear
)

func (a Algorithm) String() string {
	switch a {
	case Auto:
		return "auto"
	case Nearest:
		return "nearest"
	case Bilinear:
		return "bilinear"
	}
	return "unknown"
}

// ParseAlgorithm returns the Algorithm named s.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Auto, nil
	case "nearest", "nn":
		return Nearest, nil
	case "bilinear", "linear":
		return Bilinear, nil
	}
	return Auto, errors.Errorf("unknown algorithm %q", s)
}

// Resolve returns the algorithm that runs for a call with the given
// dimensions.
func (a Algorithm) Resolve(sw, sh, dw, dh uint32) Algorithm {
	if a != Auto {
		return a
	}
	if UseNearest(sw, sh, dw, dh) {
		return Nearest
	}
	return Bilinear
}

func (a Algorithm) scaler() scaler {
	if a == Nearest {
		return nearestScale
	}
	return bilinearScale
}

func (k *Kernel) build(a Algorithm, srcWidth, dstWidth uint32) {
	if a == Nearest {
		k.makeNearest(srcWidth, dstWidth)
		return
	}
	k.makeBilinear(srcWidth, dstWidth)
}
