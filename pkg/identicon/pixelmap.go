package identicon

import (
	"image"

	"github.com/pkg/errors"
)

// PixelMapEntry is the rectangle drawn for one cell.
type PixelMapEntry struct {
	TopLeft     image.Point
	BottomRight image.Point
}

// Rect returns the entry as an image rectangle.
func (e PixelMapEntry) Rect() image.Rectangle {
	return image.Rectangle{Min: e.TopLeft, Max: e.BottomRight}
}

// PixelMap is the last stage before rendering. Entries[i] is the rectangle of Cells[i].
type PixelMap struct {
	ColoredHash
	Cells   []GridCell
	Entries []PixelMapEntry
}

// MapCell returns the rectangle of the cell at index.
func MapCell(index int) (PixelMapEntry, error) {
	if index < 0 || index >= GridCells {
		return PixelMapEntry{}, errors.Wrapf(ErrInvalidInput, "cell index %d is outside of the %dx%d grid", index, GridWidth, GridWidth)
	}

	horizontal := (index % GridWidth) * CellSize
	vertical := (index / GridWidth) * CellSize

	return PixelMapEntry{
		TopLeft:     image.Pt(horizontal, vertical),
		BottomRight: image.Pt(horizontal+CellSize, vertical+CellSize),
	}, nil
}

// MapPixels computes the rectangle of every filtered cell.
func MapPixels(filtered FilteredGrid) (PixelMap, error) {
	entries := make([]PixelMapEntry, len(filtered.Cells))

	for i, cell := range filtered.Cells {
		entry, err := MapCell(cell.Index)
		if err != nil {
			return PixelMap{}, err
		}

		entries[i] = entry
	}

	return PixelMap{
		ColoredHash: filtered.ColoredHash,
		Cells:       append([]GridCell(nil), filtered.Cells...),
		Entries:     entries,
	}, nil
}
