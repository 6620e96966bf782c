package model

import (
	"math/rand"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Seed names an initial cell layout
type Seed int

const (
	SeedAlternating Seed = iota
	SeedRandom
	SeedPatterns
	SeedBlank
)

func (s Seed) String() string {
	switch s {
	case SeedRandom:
		return "random"
	case SeedPatterns:
		return "patterns"
	case SeedBlank:
		return "blank"
	default:
		return "alternating"
	}
}

// ParseSeed maps a configuration name to a Seed
func ParseSeed(name string) (Seed, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "alternating":
		return SeedAlternating, nil
	case "random":
		return SeedRandom, nil
	case "patterns":
		return SeedPatterns, nil
	case "blank":
		return SeedBlank, nil
	default:
		return SeedAlternating, errors.Errorf("unknown seed %q", name)
	}
}

// Blank returns an all-dead cell sequence
func Blank(d Dimensions) []Cell {
	return make([]Cell, d.Size())
}

// Alternating returns cells that are alive on even linear indices
func Alternating(d Dimensions) []Cell {
	cells := make([]Cell, d.Size())
	for i := range cells {
		if i%2 == 0 {
			cells[i] = Alive
		}
	}
	return cells
}

// Random returns cells that are alive with the given probability
func Random(d Dimensions, density float64, rng *rand.Rand) []Cell {
	cells := make([]Cell, d.Size())
	for i := range cells {
		cells[i] = cellOf(rng.Float64() < density)
	}
	return cells
}

// stamp sets every alive cell of pattern at the given offset, clipping at the edges
func stamp(b *Board, startX, startY int, pattern [][]Cell) {
	for y, row := range pattern {
		for x, cell := range row {
			// off-board parts of the pattern are dropped
			_ = b.Set(startX+x, startY+y, cell)
		}
	}
}

// AddGlider adds a glider pattern at the specified position
func AddGlider(b *Board, startX, startY int) {
	stamp(b, startX, startY, [][]Cell{
		{Dead, Alive, Dead},
		{Dead, Dead, Alive},
		{Alive, Alive, Alive},
	})
}

// AddBlinker adds a horizontal blinker oscillator
func AddBlinker(b *Board, startX, startY int) {
	stamp(b, startX, startY, [][]Cell{
		{Alive, Alive, Alive},
	})
}

// AddInterestingPatterns places gliders and blinkers sized to the board
func AddInterestingPatterns(b *Board) {
	width, height := int(b.Width()), int(b.Height())
	if width < 10 || height < 10 {
		AddBlinker(b, width/2-1, height/2)
		return
	}

	AddGlider(b, 5, 5)
	if width >= 20 && height >= 15 {
		AddGlider(b, width-8, 5)
	}

	AddBlinker(b, width/4, height/4)
	if width >= 30 {
		AddBlinker(b, 3*width/4, 3*height/4)
	}
}

// SeedBoard builds a board of the given dimensions laid out according to seed
func SeedBoard(
	d Dimensions,
	seed Seed,
	density float64,
	rng *rand.Rand,
	debug bool,
	opts ...Option,
) (*Board, error) {
	var cells []Cell
	switch seed {
	case SeedRandom:
		if rng == nil {
			rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		cells = Random(d, density, rng)
	case SeedAlternating:
		cells = Alternating(d)
	default:
		cells = Blank(d)
	}

	b, err := NewBoard(d, cells, debug, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "[SeedBoard] failed to seed %s board", seed)
	}
	if seed == SeedPatterns {
		AddInterestingPatterns(b)
	}
	return b, nil
}
