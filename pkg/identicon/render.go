package identicon

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/pkg/errors"
)

var errCanvasNotCreated = errors.New("canvas not created")

// Canvas is the rasterisation backend used by Render.
type Canvas interface {
	// New allocates a blank canvas.
	New(width, height int) error
	// FillRect fills the rectangle between the two corners with c.
	FillRect(topLeft, bottomRight image.Point, c Color) error
	// Encode writes the canvas as an image.
	Encode(w io.Writer) error
}

// PNGCanvas draws on an in-memory NRGBA image with a white background and encodes it as PNG.
type PNGCanvas struct {
	img        *image.NRGBA
	background color.Color
}

// NewPNGCanvas creates a PNG canvas.
func NewPNGCanvas() *PNGCanvas {
	return &PNGCanvas{background: color.White}
}

// New allocates the image and paints the background.
func (c *PNGCanvas) New(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.Errorf("invalid canvas size %dx%d", width, height)
	}

	c.img = image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(c.background), image.Point{}, draw.Src)

	return nil
}

// FillRect fills a rectangle. The rectangle must be inside the canvas.
func (c *PNGCanvas) FillRect(topLeft, bottomRight image.Point, col Color) error {
	if c.img == nil {
		return errCanvasNotCreated
	}

	rect := image.Rectangle{Min: topLeft, Max: bottomRight}
	if !rect.In(c.img.Bounds()) {
		return errors.Errorf("rectangle %v is outside of canvas %v", rect, c.img.Bounds())
	}

	draw.Draw(c.img, rect, image.NewUniform(col.RGBA()), image.Point{}, draw.Src)

	return nil
}

// Encode writes the image as PNG.
func (c *PNGCanvas) Encode(w io.Writer) error {
	if c.img == nil {
		return errCanvasNotCreated
	}

	err := png.Encode(w, c.img)
	if err != nil {
		return errors.Wrap(err, "unable to encode png")
	}

	return nil
}

// Image is an encoded identicon.
type Image struct {
	Input  string
	Color  Color
	Filled int
	PNG    []byte
}

// Render draws every rectangle of the pixel map on canvas and encodes the result.
func Render(pm PixelMap, canvas Canvas) (Image, error) {
	err := canvas.New(CanvasSize, CanvasSize)
	if err != nil {
		return Image{}, errors.Wrapf(ErrRenderFailure, "unable to create %dx%d canvas: %v", CanvasSize, CanvasSize, err)
	}

	for _, entry := range pm.Entries {
		err = canvas.FillRect(entry.TopLeft, entry.BottomRight, pm.Color)
		if err != nil {
			return Image{}, errors.Wrapf(ErrRenderFailure, "unable to fill %v: %v", entry.Rect(), err)
		}
	}

	var buf bytes.Buffer

	err = canvas.Encode(&buf)
	if err != nil {
		return Image{}, errors.Wrapf(ErrRenderFailure, "unable to encode canvas: %v", err)
	}

	return Image{
		Input:  pm.Input,
		Color:  pm.Color,
		Filled: len(pm.Entries),
		PNG:    buf.Bytes(),
	}, nil
}
