package model

// Coordinates is a signed 2D position on, or just off, a board
type Coordinates struct {
	X int64
	Y int64
}

// Sub returns the componentwise difference c - other
func (c Coordinates) Sub(other Coordinates) Coordinates {
	return Coordinates{
		X: c.X - other.X,
		Y: c.Y - other.Y,
	}
}

var neighborOffsets = [8]Coordinates{
	{X: -1, Y: -1},
	{X: -1, Y: 0},
	{X: -1, Y: 1},
	{X: 0, Y: -1},
	{X: 0, Y: 1},
	{X: 1, Y: -1},
	{X: 1, Y: 0},
	{X: 1, Y: 1},
}

// NeighborOffsets returns the eight unit offsets surrounding a cell
func NeighborOffsets() [8]Coordinates {
	return neighborOffsets
}
