package identicon

const (
	// GridWidth is the number of cells per row.
	GridWidth = 5
	// GridCells is the number of cells of a complete grid.
	GridCells = GridWidth * GridWidth
	// CellSize is the side of a cell in pixels.
	CellSize = 50
	// CanvasSize is the side of the square canvas in pixels.
	CanvasSize = GridWidth * CellSize
	// MinHashBytes is the number of bytes needed to pick a colour.
	MinHashBytes = 3

	groupSize  = 3
	mirrorSize = 2*groupSize - 1
)
