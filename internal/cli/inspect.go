package cli

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/askiada/go-identicon/pkg/identicon"
	"github.com/askiada/go-identicon/pkg/storage"
)

// Inspect writes every stage of the identicon of input to w, without rendering it. fileName names the file generate
// writes the identicon to, storage.FileName when nil.
func Inspect(w io.Writer, input string, fileName func(string) string, manifest *storage.Manifest) error {
	if fileName == nil {
		fileName = storage.FileName
	}

	raw := identicon.Hash(input)

	colored, err := identicon.PickColor(raw)
	if err != nil {
		return err
	}

	grid := identicon.BuildGrid(colored)
	filtered := identicon.FilterSquares(grid)

	pixels, err := identicon.MapPixels(filtered)
	if err != nil {
		return err
	}

	var b strings.Builder

	fmt.Fprintf(&b, "input:  %q\n", input)
	fmt.Fprintf(&b, "hash:   %s\n", hex.EncodeToString(raw.Bytes))
	fmt.Fprintf(&b, "color:  %s (%d, %d, %d)\n", colored.Color.Hex(), colored.Color.R, colored.Color.G, colored.Color.B)
	fmt.Fprintf(&b, "file:   %s\n", fileName(input))
	b.WriteString("grid:\n")
	b.WriteString(layout(filtered))
	fmt.Fprintf(&b, "pixels: %d\n", len(pixels.Entries))
	for i, entry := range pixels.Entries {
		fmt.Fprintf(&b, "  %2d  (%d,%d)-(%d,%d)\n", pixels.Cells[i].Index,
			entry.TopLeft.X, entry.TopLeft.Y, entry.BottomRight.X, entry.BottomRight.Y)
	}

	if manifest != nil {
		if entry, ok := manifest.Lookup(input); ok {
			fmt.Fprintf(&b, "written: %s\n", entry.File)
		} else {
			b.WriteString("written: no\n")
		}
	}

	_, err = io.WriteString(w, b.String())

	return err
}

func layout(filtered identicon.FilteredGrid) string {
	on := make(map[int]bool, len(filtered.Cells))
	for _, cell := range filtered.Cells {
		on[cell.Index] = true
	}

	var b strings.Builder
	for row := 0; row < identicon.GridWidth; row++ {
		b.WriteString(" ")
		for col := 0; col < identicon.GridWidth; col++ {
			if on[row*identicon.GridWidth+col] {
				b.WriteString(" #")
			} else {
				b.WriteString(" .")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
