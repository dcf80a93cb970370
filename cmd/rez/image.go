// Copyright 2013 Benoît Amiaux. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"strconv"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/zayokami/resize/internal/errors"
)

func readImage(name string) (image.Image, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, errors.New(err)
	}
	defer file.Close()
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, errors.WrapPrefix(err, name, 0)
	}
	return img, nil
}

func writeImage(name string, img image.Image) (err error) {
	file, err := os.Create(name)
	if err != nil {
		return errors.New(err)
	}
	defer func() {
		if errClose := file.Close(); errClose != nil && err == nil {
			err = errors.New(errClose)
		}
	}()
	if err := png.Encode(file, img); err != nil {
		return errors.New(err)
	}
	return nil
}

// parseSize parses "<w>x<h>".
func parseSize(s string) (uint32, uint32, error) {
	parts := strings.SplitN(strings.ToLower(s), `x`, 2)
	if len(parts) != 2 {
		return 0, 0, errors.Errorf("invalid size %q, want <w>x<h>", s)
	}
	w, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return 0, 0, errors.WrapPrefix(err, "width", 0)
	}
	h, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return 0, 0, errors.WrapPrefix(err, "height", 0)
	}
	return uint32(w), uint32(h), nil
}
