package model

const (
	glyphDead  = "◻"
	glyphAlive = "◼"
)

// Cell is the state of a single grid unit. The ordinals are stable.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// IsAlive reports whether the cell is Alive
func (c Cell) IsAlive() bool {
	return c == Alive
}

// Render returns the display glyph of the cell
func (c Cell) Render() string {
	if c == Dead {
		return glyphDead
	}
	return glyphAlive
}

func (c Cell) String() string {
	return c.Render()
}

// cellOf maps an aliveness flag back to a Cell
func cellOf(alive bool) Cell {
	if alive {
		return Alive
	}
	return Dead
}
