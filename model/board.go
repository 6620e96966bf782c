package model

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-board/rules"
)

const (
	defaultWidth  = 128
	defaultHeight = 64
)

// Dimensions is the fixed width and height of a board
type Dimensions struct {
	Width  uint32
	Height uint32
}

// Size returns the number of cells the dimensions describe
func (d Dimensions) Size() int {
	return int(d.Width) * int(d.Height)
}

// UpdateMode selects how a generation is computed
type UpdateMode int

const (
	// Synchronous computes the next generation from a snapshot of the current one
	Synchronous UpdateMode = iota
	// Sequential overwrites cells in place during a forward scan, so cells later in
	// the scan see neighbors that were already advanced
	Sequential
)

func (m UpdateMode) String() string {
	if m == Sequential {
		return "sequential"
	}
	return "synchronous"
}

// ParseUpdateMode maps a configuration name to an UpdateMode
func ParseUpdateMode(name string) (UpdateMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "synchronous":
		return Synchronous, nil
	case "sequential":
		return Sequential, nil
	default:
		return Synchronous, errors.Errorf("unknown update mode %q", name)
	}
}

// Option configures a Board at construction
type Option func(*Board)

// WithUpdateMode sets the update mode, Synchronous by default
func WithUpdateMode(mode UpdateMode) Option {
	return func(b *Board) {
		b.mode = mode
	}
}

// WithBufferPool makes synchronous updates borrow scratch buffers from pool
func WithBufferPool(pool *BufferPool) Option {
	return func(b *Board) {
		b.pool = pool
	}
}

// Board is a finite, non-wrapping grid of cells stored in row-major order
type Board struct {
	dimensions Dimensions
	cells      []Cell
	size       int
	debug      bool // reserved, no behavioral effect
	mode       UpdateMode
	pool       *BufferPool
	generation int
}

// Report summarizes one generation
type Report struct {
	Generation int
	Births     int
	Deaths     int
	Population int
}

func (r *Report) record(outcome rules.Outcome) {
	switch outcome {
	case rules.Birth:
		r.Births++
	case rules.Underpopulation, rules.Overpopulation:
		r.Deaths++
	}
}

// NewBoard creates a board of the given dimensions from a copy of cells
func NewBoard(dimensions Dimensions, cells []Cell, debug bool, opts ...Option) (*Board, error) {
	size := dimensions.Size()
	if size != len(cells) {
		return nil, errors.Wrapf(ErrBoardInitialization,
			"board was supposed to be of size %d, but received one of size %d", size, len(cells))
	}

	b := &Board{
		dimensions: dimensions,
		cells:      append([]Cell(nil), cells...),
		size:       size,
		debug:      debug,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// NewDefaultBoard creates a 128x64 board whose even-indexed cells are alive
func NewDefaultBoard(opts ...Option) *Board {
	dimensions := Dimensions{Width: defaultWidth, Height: defaultHeight}
	b, _ := NewBoard(dimensions, Alternating(dimensions), false, opts...)
	return b
}

// Dimensions returns the board's width and height
func (b *Board) Dimensions() Dimensions {
	return b.dimensions
}

// Width returns the number of columns
func (b *Board) Width() uint32 {
	return b.dimensions.Width
}

// Height returns the number of rows
func (b *Board) Height() uint32 {
	return b.dimensions.Height
}

// Size returns the number of cells
func (b *Board) Size() int {
	return b.size
}

func (b *Board) Debug() bool {
	return b.debug
}

func (b *Board) Mode() UpdateMode {
	return b.mode
}

// Generation returns how many updates completed successfully
func (b *Board) Generation() int {
	return b.generation
}

// Cells returns a copy of the cells in row-major order
func (b *Board) Cells() []Cell {
	return append([]Cell(nil), b.cells...)
}

// Cell returns the cell at (x, y)
func (b *Board) Cell(x, y int) (Cell, error) {
	if !b.inBounds(Coordinates{X: int64(x), Y: int64(y)}) {
		return Dead, errors.Wrapf(ErrOutOfBounds, "(%d, %d) is outside a %dx%d board",
			x, y, b.dimensions.Width, b.dimensions.Height)
	}
	return b.cell(b.toIndex(Coordinates{X: int64(x), Y: int64(y)}))
}

// Set overwrites the cell at (x, y)
func (b *Board) Set(x, y int, cell Cell) error {
	pos := Coordinates{X: int64(x), Y: int64(y)}
	if !b.inBounds(pos) {
		return errors.Wrapf(ErrOutOfBounds, "(%d, %d) is outside a %dx%d board",
			x, y, b.dimensions.Width, b.dimensions.Height)
	}
	index := b.toIndex(pos)
	if index >= len(b.cells) {
		return errors.Wrapf(ErrCellDoesNotExist, "cell of index %d does not exist", index)
	}
	b.cells[index] = cell
	return nil
}

// CountLivingCells returns the number of alive cells
func (b *Board) CountLivingCells() (count int) {
	for _, c := range b.cells {
		if c.IsAlive() {
			count++
		}
	}
	return
}

// Update advances the board by one generation
func (b *Board) Update() error {
	_, err := b.Step()
	return err
}

// Step advances the board by one generation and reports what changed.
// In Synchronous mode a failed step leaves the board untouched. In Sequential mode
// the scan stops at the failing index and cells already visited keep their new state.
func (b *Board) Step() (Report, error) {
	var (
		report Report
		err    error
	)
	if b.mode == Sequential {
		report, err = b.stepSequential()
	} else {
		report, err = b.stepSynchronous()
	}
	if err != nil {
		return report, err
	}

	b.generation++
	report.Generation = b.generation
	report.Population = b.CountLivingCells()
	return report, nil
}

func (b *Board) stepSequential() (Report, error) {
	var report Report
	for i := range b.size {
		outcome, err := b.evaluate(b.cells, i)
		if err != nil {
			return report, err
		}
		b.apply(b.cells, i, outcome)
		report.record(outcome)
	}
	return report, nil
}

func (b *Board) stepSynchronous() (Report, error) {
	var (
		report Report
		next   []Cell
	)
	if b.pool != nil {
		next = b.pool.Get(b.size)
	} else {
		next = make([]Cell, b.size)
	}
	copy(next, b.cells)

	for i := range b.size {
		outcome, err := b.evaluate(b.cells, i)
		if err != nil {
			bufferToPool(next, b.pool)
			return Report{}, err
		}
		b.apply(next, i, outcome)
		report.record(outcome)
	}

	previous := b.cells
	b.cells = next
	bufferToPool(previous, b.pool)
	return report, nil
}

// evaluate reads the cell at index and its neighbors from src
func (b *Board) evaluate(src []Cell, index int) (rules.Outcome, error) {
	cell, err := lookup(src, index)
	if err != nil {
		return rules.Unchanged, err
	}
	living, err := b.livingNeighbors(src, index)
	if err != nil {
		return rules.Unchanged, err
	}
	return rules.Evaluate(cell.IsAlive(), living), nil
}

func (b *Board) apply(dst []Cell, index int, outcome rules.Outcome) {
	switch outcome {
	case rules.Birth:
		dst[index] = Alive
	case rules.Underpopulation, rules.Overpopulation:
		dst[index] = Dead
	}
}

func (b *Board) livingNeighbors(src []Cell, index int) (int, error) {
	living := 0
	for _, pos := range b.neighborCoordinates(index) {
		neighbor, err := lookup(src, b.toIndex(pos))
		if err != nil {
			return 0, err
		}
		if neighbor.IsAlive() {
			living++
		}
	}
	return living, nil
}

// neighborCoordinates returns the on-board positions around index
func (b *Board) neighborCoordinates(index int) []Coordinates {
	origin := b.toCoordinates(index)
	coords := make([]Coordinates, 0, len(neighborOffsets))
	for _, offset := range neighborOffsets {
		if pos := origin.Sub(offset); b.inBounds(pos) {
			coords = append(coords, pos)
		}
	}
	return coords
}

func (b *Board) inBounds(pos Coordinates) bool {
	return pos.X >= 0 && pos.Y >= 0 &&
		pos.X < int64(b.dimensions.Width) && pos.Y < int64(b.dimensions.Height)
}

func (b *Board) cell(index int) (Cell, error) {
	return lookup(b.cells, index)
}

func lookup(cells []Cell, index int) (Cell, error) {
	if index < 0 || index >= len(cells) {
		return Dead, errors.Wrapf(ErrCellDoesNotExist, "cell of index %d does not exist", index)
	}
	return cells[index], nil
}

func (b *Board) toCoordinates(index int) Coordinates {
	width := int64(b.dimensions.Width)
	return Coordinates{
		X: int64(index) % width,
		Y: int64(index) / width,
	}
}

func (b *Board) toIndex(pos Coordinates) int {
	return int(pos.Y*int64(b.dimensions.Width) + pos.X)
}

// Render returns every cell's glyph in row-major order with no separators
func (b *Board) Render() string {
	var sb strings.Builder
	sb.Grow(len(b.cells) * len(glyphAlive))
	for _, c := range b.cells {
		sb.WriteString(c.Render())
	}
	return sb.String()
}

func (b *Board) String() string {
	return b.Render()
}
