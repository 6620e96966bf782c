package rules

// Outcome classifies what the rule does to a single cell in one generation
type Outcome int

const (
	Unchanged Outcome = iota
	Birth
	Underpopulation
	Overpopulation
)

func (o Outcome) String() string {
	switch o {
	case Birth:
		return "birth"
	case Underpopulation:
		return "underpopulation"
	case Overpopulation:
		return "overpopulation"
	default:
		return "unchanged"
	}
}

/*
Evaluate applies Conway's Game of Life rules to one cell.

A dead cell with exactly 3 living neighbors is born. A living cell with 0 or 1
living neighbors dies of underpopulation, with 4 or more of overpopulation.
Everything else keeps its state.
*/
func Evaluate(alive bool, neighbors int) Outcome {
	switch {
	case !alive && neighbors == 3:
		return Birth
	case alive && neighbors <= 1:
		return Underpopulation
	case alive && neighbors >= 4:
		return Overpopulation
	default:
		return Unchanged
	}
}

// ApplyConwayRules returns whether the cell is alive in the next generation
func ApplyConwayRules(neighbors int, alive bool) bool {
	switch Evaluate(alive, neighbors) {
	case Birth:
		return true
	case Underpopulation, Overpopulation:
		return false
	default:
		return alive
	}
}
