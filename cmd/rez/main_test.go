// Copyright 2013 Benoît Amiaux. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSize(t *testing.T) {
	w, h, err := parseSize("640x480")
	require.NoError(t, err)
	assert.Equal(t, uint32(640), w)
	assert.Equal(t, uint32(480), h)

	w, h, err = parseSize("12X7")
	require.NoError(t, err)
	assert.Equal(t, uint32(12), w)
	assert.Equal(t, uint32(7), h)

	for _, s := range []string{"", "640", "x480", "640x", "-1x2", "1x99999999999"} {
		_, _, err := parseSize(s)
		assert.Error(t, err, s)
	}
}

func TestImageRoundTrip(t *testing.T) {
	name := filepath.Join(t.TempDir(), "in.png")
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(1, 1, color.NRGBA{10, 20, 30, 255})
	require.NoError(t, writeImage(name, img))

	got, err := readImage(name)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), got.Bounds())
	r, g, b, _ := got.At(1, 1).RGBA()
	assert.Equal(t, []uint32{10, 20, 30}, []uint32{r >> 8, g >> 8, b >> 8})

	_, err = readImage(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestCommands(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.png")
	img := image.NewNRGBA(image.Rect(0, 0, 40, 30))
	for i := range img.Pix {
		img.Pix[i] = byte(i)
	}
	require.NoError(t, writeImage(in, img))

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"resize", in, out, "--size", "10x5"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "40x30 -> 10x5")
	resized, err := readImage(out)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 10, 5), resized.Bounds())

	buf.Reset()
	rootCmd.SetArgs([]string{"select", "2000x1000", "100x50"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "nearest")

	buf.Reset()
	rootCmd.SetArgs([]string{"compare", in, "--size", "20x15"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "gift Linear")
	assert.Contains(t, buf.String(), "auto selects")
}
