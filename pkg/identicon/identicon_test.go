package identicon_test

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-identicon/pkg/identicon"
)

var bananaHash = []byte{114, 179, 2, 191, 41, 122, 34, 138, 117, 115, 1, 35, 239, 239, 124, 65}

func TestHashBanana(t *testing.T) {
	t.Parallel()

	raw := identicon.Hash("banana")
	assert.Equal(t, "banana", raw.Input)
	assert.Equal(t, identicon.HashBytes(bananaHash), raw.Bytes)
	assert.Equal(t, raw, identicon.Hash("banana"))
}

func TestNewRawHashCopies(t *testing.T) {
	t.Parallel()

	b := []byte{1, 2, 3}
	raw := identicon.NewRawHash("x", b)
	b[0] = 42
	assert.Equal(t, identicon.HashBytes{1, 2, 3}, raw.Bytes)
}

func TestPickColor(t *testing.T) {
	t.Parallel()

	colored, err := identicon.PickColor(identicon.Hash("banana"))
	require.NoError(t, err)
	assert.Equal(t, identicon.Color{R: 114, G: 179, B: 2}, colored.Color)
	assert.Equal(t, "#72b302", colored.Color.Hex())
	assert.Equal(t, color.RGBA{R: 114, G: 179, B: 2, A: 255}, colored.Color.RGBA())
}

func TestPickColorExactlyThreeBytes(t *testing.T) {
	t.Parallel()

	colored, err := identicon.PickColor(identicon.NewRawHash("", []byte{0, 255, 7}))
	require.NoError(t, err)
	assert.Equal(t, identicon.Color{R: 0, G: 255, B: 7}, colored.Color)
}

func TestPickColorTooShort(t *testing.T) {
	t.Parallel()

	for _, b := range [][]byte{nil, {}, {1}, {1, 2}} {
		_, err := identicon.PickColor(identicon.NewRawHash("short", b))
		require.ErrorIs(t, err, identicon.ErrInvalidInput)
	}
}

func TestBuildGridBanana(t *testing.T) {
	t.Parallel()

	colored, err := identicon.PickColor(identicon.Hash("banana"))
	require.NoError(t, err)

	grid := identicon.BuildGrid(colored)
	require.Len(t, grid.Cells, identicon.GridCells)

	expectedFirst := []identicon.GridCell{
		{Value: 114, Index: 0}, {Value: 179, Index: 1}, {Value: 2, Index: 2}, {Value: 179, Index: 3}, {Value: 114, Index: 4},
		{Value: 191, Index: 5}, {Value: 41, Index: 6}, {Value: 122, Index: 7}, {Value: 41, Index: 8}, {Value: 191, Index: 9},
	}
	assert.Equal(t, expectedFirst, grid.Cells[:10])

	for i, cell := range grid.Cells {
		assert.Equal(t, i, cell.Index)
	}
}

func TestBuildCellsSymmetric(t *testing.T) {
	t.Parallel()

	cells := identicon.BuildCells(identicon.Hash("symmetry").Bytes)
	require.Len(t, cells, identicon.GridCells)

	for row := 0; row < identicon.GridWidth; row++ {
		line := cells[row*identicon.GridWidth : (row+1)*identicon.GridWidth]
		assert.Equal(t, line[0].Value, line[4].Value)
		assert.Equal(t, line[1].Value, line[3].Value)
	}
}

func TestBuildCellsShortInput(t *testing.T) {
	t.Parallel()

	assert.Empty(t, identicon.BuildCells(nil))
	assert.Empty(t, identicon.BuildCells([]byte{1, 2}))
	assert.Len(t, identicon.BuildCells([]byte{1, 2, 3, 4}), 5)
}

func TestMirrorRow(t *testing.T) {
	t.Parallel()

	assert.Equal(t, [5]byte{1, 2, 3, 2, 1}, identicon.MirrorRow([3]byte{1, 2, 3}))
	assert.Equal(t, [5]byte{9, 9, 9, 9, 9}, identicon.MirrorRow([3]byte{9, 9, 9}))
}

func TestFilterSquaresBanana(t *testing.T) {
	t.Parallel()

	colored, err := identicon.PickColor(identicon.Hash("banana"))
	require.NoError(t, err)

	filtered := identicon.FilterSquares(identicon.BuildGrid(colored))
	expected := []identicon.GridCell{
		{Value: 114, Index: 0},
		{Value: 2, Index: 2},
		{Value: 114, Index: 4},
		{Value: 122, Index: 7},
		{Value: 34, Index: 10},
		{Value: 138, Index: 11},
		{Value: 138, Index: 13},
		{Value: 34, Index: 14},
		{Value: 124, Index: 22},
	}
	assert.Equal(t, expected, filtered.Cells)
	assert.False(t, filtered.Empty())
}

func TestFilterSquaresKeepsEvenInOrder(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "a", "banana", "apple", "a/b", "café", "user@example.com"}
	for i := range 50 {
		inputs = append(inputs, fmt.Sprintf("input-%d", i))
	}

	for _, input := range inputs {
		colored, err := identicon.PickColor(identicon.Hash(input))
		require.NoError(t, err, input)

		grid := identicon.BuildGrid(colored)
		filtered := identicon.FilterSquares(grid)

		want := []identicon.GridCell{}
		for _, cell := range grid.Cells {
			if cell.Value%2 == 0 {
				want = append(want, cell)
			}
		}
		assert.Equal(t, want, append([]identicon.GridCell{}, filtered.Cells...), input)
		assert.Len(t, grid.Cells, identicon.GridCells, input)

		for j, cell := range filtered.Cells {
			assert.Zero(t, cell.Value%2, input)
			if j > 0 {
				assert.Greater(t, cell.Index, filtered.Cells[j-1].Index, input)
			}
			assert.Equal(t, grid.Cells[cell.Index], cell, input)
		}
	}
}

func TestFilterSquaresAllOdd(t *testing.T) {
	t.Parallel()

	odd := make([]byte, 16)
	for i := range odd {
		odd[i] = 1
	}

	colored, err := identicon.PickColor(identicon.NewRawHash("odd", odd))
	require.NoError(t, err)

	filtered := identicon.FilterSquares(identicon.BuildGrid(colored))
	assert.True(t, filtered.Empty())

	pixels, err := identicon.MapPixels(filtered)
	require.NoError(t, err)
	assert.Empty(t, pixels.Entries)
}

func TestMapCell(t *testing.T) {
	t.Parallel()

	for i := 0; i < identicon.GridCells; i++ {
		entry, err := identicon.MapCell(i)
		require.NoError(t, err)

		topLeft := image.Pt(50*(i%5), 50*(i/5))
		assert.Equal(t, topLeft, entry.TopLeft)
		assert.Equal(t, topLeft.Add(image.Pt(50, 50)), entry.BottomRight)
		assert.True(t, entry.Rect().In(image.Rect(0, 0, identicon.CanvasSize, identicon.CanvasSize)))
	}
}

func TestMapCellOutOfGrid(t *testing.T) {
	t.Parallel()

	_, err := identicon.MapCell(identicon.GridCells)
	require.ErrorIs(t, err, identicon.ErrInvalidInput)

	_, err = identicon.MapCell(-1)
	require.ErrorIs(t, err, identicon.ErrInvalidInput)
}

func TestMapPixelsBanana(t *testing.T) {
	t.Parallel()

	colored, err := identicon.PickColor(identicon.Hash("banana"))
	require.NoError(t, err)

	pixels, err := identicon.MapPixels(identicon.FilterSquares(identicon.BuildGrid(colored)))
	require.NoError(t, err)
	require.Len(t, pixels.Entries, 9)
	require.Len(t, pixels.Cells, 9)

	assert.Equal(t, identicon.PixelMapEntry{TopLeft: image.Pt(0, 0), BottomRight: image.Pt(50, 50)}, pixels.Entries[0])
	assert.Equal(t, 22, pixels.Cells[8].Index)
	assert.Equal(t, identicon.PixelMapEntry{TopLeft: image.Pt(100, 200), BottomRight: image.Pt(150, 250)}, pixels.Entries[8])
}

func TestGenerateBanana(t *testing.T) {
	t.Parallel()

	img, err := identicon.Generate("banana")
	require.NoError(t, err)
	assert.Equal(t, "banana", img.Input)
	assert.Equal(t, identicon.Color{R: 114, G: 179, B: 2}, img.Color)
	assert.Equal(t, 9, img.Filled)

	decoded, err := png.Decode(bytes.NewReader(img.PNG))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 250, 250), decoded.Bounds())

	fill := color.NRGBAModel.Convert(color.RGBA{R: 114, G: 179, B: 2, A: 255})
	white := color.NRGBAModel.Convert(color.White)

	// index 0 and 22 are filled, 1 and 20 are not
	assert.Equal(t, fill, color.NRGBAModel.Convert(decoded.At(10, 10)))
	assert.Equal(t, fill, color.NRGBAModel.Convert(decoded.At(149, 249)))
	assert.Equal(t, white, color.NRGBAModel.Convert(decoded.At(60, 10)))
	assert.Equal(t, white, color.NRGBAModel.Convert(decoded.At(10, 210)))
}

func TestGenerateIdempotent(t *testing.T) {
	t.Parallel()

	first, err := identicon.Generate("banana")
	require.NoError(t, err)
	second, err := identicon.Generate("banana")
	require.NoError(t, err)
	assert.Equal(t, first.PNG, second.PNG)

	other, err := identicon.Generate("apple")
	require.NoError(t, err)
	assert.NotEqual(t, first.PNG, other.PNG)
}

func TestGenerateFromShortHash(t *testing.T) {
	t.Parallel()

	_, err := identicon.GenerateFromHash(identicon.NewRawHash("short", []byte{2, 4}))
	require.ErrorIs(t, err, identicon.ErrInvalidInput)
}

type failingCanvas struct {
	failOn string
}

func (f *failingCanvas) New(width, height int) error {
	if f.failOn == "new" {
		return assert.AnError
	}

	return nil
}

func (f *failingCanvas) FillRect(topLeft, bottomRight image.Point, c identicon.Color) error {
	if f.failOn == "fill" {
		return assert.AnError
	}

	return nil
}

func (f *failingCanvas) Encode(w io.Writer) error {
	if f.failOn == "encode" {
		return assert.AnError
	}

	return nil
}

func TestGenerateRenderFailure(t *testing.T) {
	t.Parallel()

	for _, failOn := range []string{"new", "fill", "encode"} {
		failOn := failOn
		t.Run(failOn, func(t *testing.T) {
			t.Parallel()

			_, err := identicon.Generate("banana", identicon.WithCanvas(func() identicon.Canvas {
				return &failingCanvas{failOn: failOn}
			}))
			require.ErrorIs(t, err, identicon.ErrRenderFailure)
		})
	}
}

func TestPNGCanvasRejectsOutOfBounds(t *testing.T) {
	t.Parallel()

	canvas := identicon.NewPNGCanvas()
	require.Error(t, canvas.FillRect(image.Pt(0, 0), image.Pt(1, 1), identicon.Color{}))
	require.NoError(t, canvas.New(10, 10))
	require.Error(t, canvas.FillRect(image.Pt(5, 5), image.Pt(11, 11), identicon.Color{}))
	require.Error(t, canvas.New(0, 10))
}
