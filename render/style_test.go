// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseColor(t *testing.T) {
	c, err := parseColor("#83a1Ff")
	assert.NoError(t, err)
	assert.Equal(t, color.NRGBA{0x83, 0xa1, 0xff, 0xff}, c)

	for _, bad := range []string{"", "838383", "#83838", "#8383833", "#zzzzzz", "red"} {
		_, err := parseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestPaint(t *testing.T) {
	assert.Equal(t, color.NRGBA{0xc1, 0xc1, 0xc1, 0x4d}, paint{"#C1C1C1", 0.3}.nrgba())
	assert.Equal(t, color.NRGBA{}, paint{"#000000", 0}.nrgba())
}

func TestStyleValidate(t *testing.T) {
	assert.NoError(t, DefaultStyle.Validate())

	for _, mod := range []func(*Style){
		func(s *Style) { s.Foreground = "" },
		func(s *Style) { s.Background = "white" },
		func(s *Style) { s.ChordOpacity = 1.5 },
		func(s *Style) { s.ChordOpacity = -0.1 },
		func(s *Style) { s.FontSize = 0 },
	} {
		s := DefaultStyle
		mod(&s)
		assert.Error(t, s.Validate())
	}
}
