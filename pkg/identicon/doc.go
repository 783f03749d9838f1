// Package identicon derives a small symmetric image from an arbitrary string.
//
// The input is hashed into 16 bytes. The first three bytes give the colour, the bytes are then
// split into rows of three which are mirrored into a 5x5 grid. Cells holding an even byte are
// filled on a 250x250 canvas, every cell being a 50x50 square.
//
// Every stage is a pure function returning its own value type, so a stage can be tested, reused or
// run concurrently on its own:
//
//	raw := identicon.Hash("banana")
//	colored, err := identicon.PickColor(raw)
//	grid := identicon.BuildGrid(colored)
//	filtered := identicon.FilterSquares(grid)
//	pixels, err := identicon.MapPixels(filtered)
//	img, err := identicon.Render(pixels, identicon.NewPNGCanvas())
//
// Generate chains all the stages for a single input.
package identicon
