package utils

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestColourValidate(t *testing.T) {
	cases := map[string]bool{
		"#ffffff00":  true,
		"#FF0000ff":  true,
		"#fff":       false,
		"ffffff00":   false,
		"#ffffff0g":  false,
		"#ffffff000": false,
		"":           false,
	}
	for in, want := range cases {
		assert.Equal(t, want, ColourValidate(in), in)
	}
}

func TestColourParse(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0}, ColourParse("#ffffff00"))
	assert.Equal(t, color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0x78}, ColourParse("#12345678"))
}

func TestColourVec(t *testing.T) {
	v := ColourVec(color.RGBA{R: 255, G: 0, B: 0, A: 255})
	assert.True(t, v.ApproxEqual(mgl32.Vec4{1, 0, 0, 1}))

	white := ColourVec(ColourParse("#ffffff00"))
	assert.True(t, white.ApproxEqual(mgl32.Vec4{1, 1, 1, 0}))
}

func TestColourHexRoundTrip(t *testing.T) {
	assert.Equal(t, "#0a0b0c0d", ColourHex(ColourParse("#0a0b0c0d")))
}
