package identicon

// FilteredGrid holds the cells that are drawn.
type FilteredGrid struct {
	ColoredHash
	Cells []GridCell
}

// Empty reports whether there is nothing to draw.
func (f FilteredGrid) Empty() bool {
	return len(f.Cells) == 0
}

// FilterSquares keeps the cells with an even value, in order.
func FilterSquares(grid GridResult) FilteredGrid {
	return FilteredGrid{
		ColoredHash: grid.ColoredHash,
		Cells:       evenCells(grid.Cells),
	}
}

func evenCells(cells []GridCell) []GridCell {
	res := make([]GridCell, 0, len(cells))

	for _, cell := range cells {
		if cell.Value%2 == 0 {
			res = append(res, cell)
		}
	}

	return res
}
