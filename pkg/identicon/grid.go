package identicon

// GridCell is one square of the grid. Index is the position in the flattened 5x5 grid and is kept
// as is by the filter.
type GridCell struct {
	Value uint8
	Index int
}

// GridResult holds the complete, unfiltered grid.
type GridResult struct {
	ColoredHash
	Cells []GridCell
}

// MirrorRow expands [a, b, c] into the palindrome [a, b, c, b, a].
func MirrorRow(group [groupSize]byte) [mirrorSize]byte {
	return [mirrorSize]byte{group[0], group[1], group[2], group[1], group[0]}
}

// BuildCells splits b into groups of three, mirrors each of them and numbers the resulting cells.
// A trailing group with less than three bytes is dropped, so less than three bytes give no cell.
func BuildCells(b []byte) []GridCell {
	groups := len(b) / groupSize
	cells := make([]GridCell, 0, groups*mirrorSize)

	for g := 0; g < groups; g++ {
		var group [groupSize]byte

		copy(group[:], b[g*groupSize:])

		for _, v := range MirrorRow(group) {
			cells = append(cells, GridCell{Value: v, Index: len(cells)})
		}
	}

	return cells
}

// BuildGrid builds the grid of a coloured hash.
func BuildGrid(colored ColoredHash) GridResult {
	return GridResult{
		ColoredHash: colored,
		Cells:       BuildCells(colored.Bytes),
	}
}
