package identicon

import (
	"image/color"

	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint
)

// Color is the fill colour of an identicon.
type Color struct {
	R, G, B uint8
}

// Hex returns the colour as #rrggbb.
func (c Color) Hex() string {
	rgb, err := colors.RGB(c.R, c.G, c.B)
	if err != nil {
		return ""
	}

	return rgb.ToHEX().String()
}

// RGBA returns the opaque colour used by the canvas.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// ColoredHash is a RawHash with its colour picked.
type ColoredHash struct {
	RawHash
	Color Color
}

// PickColor uses the first three bytes of the hash as red, green and blue.
func PickColor(raw RawHash) (ColoredHash, error) {
	if len(raw.Bytes) < MinHashBytes {
		return ColoredHash{}, errors.Wrapf(ErrInvalidInput, "hash has %d bytes, at least %d are required", len(raw.Bytes), MinHashBytes)
	}

	return ColoredHash{
		RawHash: raw,
		Color: Color{
			R: raw.Bytes[0],
			G: raw.Bytes[1],
			B: raw.Bytes[2],
		},
	}, nil
}
