package model

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/bits-and-blooms/bitset"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/torus-gol/rules"
)

const (
	// DefaultWidth and DefaultHeight size a grid when the caller has no preference.
	DefaultWidth  = 128
	DefaultHeight = 128

	wordBits = 64
)

var (
	// ErrInvalidDimensions is returned for a width or height below 1.
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	// ErrSizeOverflow is returned when width*height does not fit in an int.
	ErrSizeOverflow = errors.New("grid cell count overflows")
)

// Coord addresses a single cell. Values outside the grid wrap around.
type Coord struct {
	Row int
	Col int
}

// Grid is a toroidal Game of Life board backed by two bit-packed buffers.
//
// cells holds the readable generation and next stages the following one, so a
// Step never observes a partially written generation. A Grid is owned by one
// caller; embeddings that share it must hold a single lock around every call.
type Grid struct {
	width  int
	height int
	cells  *bitset.BitSet
	next   *bitset.BitSet
	rng    *rand.Rand
}

// NewGrid creates a width x height grid seeded by policy. A nil policy leaves
// every cell dead.
func NewGrid(width, height int, policy SeedPolicy) (*Grid, error) {
	size, err := cellCount(width, height)
	if err != nil {
		return nil, errors.Wrapf(err, "[NewGrid] failed to size %dx%d grid", width, height)
	}

	g := &Grid{
		width:  width,
		height: height,
		cells:  bitset.New(uint(size)),
		next:   bitset.New(uint(size)),
		rng:    newRand(time.Now().UnixNano()),
	}
	g.Seed(policy)
	return g, nil
}

// cellCount validates the dimensions and returns width*height.
func cellCount(width, height int) (int, error) {
	if width < 1 || height < 1 {
		return 0, ErrInvalidDimensions
	}
	if width > math.MaxInt/height {
		return 0, ErrSizeOverflow
	}
	return width * height, nil
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Len returns the number of cells, always width*height.
func (g *Grid) Len() int {
	return int(g.cells.Len())
}

// Cells exposes the packed current generation. Cell i lives in bit i%64 of
// word i/64, in row-major order. The slice is invalidated by the next Step,
// SetWidth or SetHeight.
func (g *Grid) Cells() []uint64 {
	return g.cells.Bytes()
}

// SetWidth changes the number of columns. See resize for what happens to the
// existing cells.
func (g *Grid) SetWidth(width int) error {
	if g.width == width {
		return nil
	}

	size, err := cellCount(width, g.height)
	if err != nil {
		return errors.Wrapf(err, "[SetWidth] failed to resize to %dx%d", width, g.height)
	}
	g.width = width
	g.resize(size)
	return nil
}

// SetHeight changes the number of rows. See resize for what happens to the
// existing cells.
func (g *Grid) SetHeight(height int) error {
	if g.height == height {
		return nil
	}

	size, err := cellCount(g.width, height)
	if err != nil {
		return errors.Wrapf(err, "[SetHeight] failed to resize to %dx%d", g.width, height)
	}
	g.height = height
	g.resize(size)
	return nil
}

// resize reallocates both buffers for size cells. Shrinking starts from an
// all-dead board. Growing keeps the old cells by linear index and leaves the
// new tail dead, so a width change shears any existing pattern.
func (g *Grid) resize(size int) {
	switch {
	case int(g.cells.Len()) > size:
		g.cells = bitset.New(uint(size))
	case int(g.cells.Len()) < size:
		grown := bitset.New(uint(size))
		copy(grown.Bytes(), g.cells.Bytes())
		g.cells = grown
	}
	if int(g.next.Len()) != size {
		g.next = bitset.New(uint(size))
	}
}

// index wraps row and col onto the torus and returns the linear index.
func (g *Grid) index(row, col int) uint {
	row %= g.height
	if row < 0 {
		row += g.height
	}
	col %= g.width
	if col < 0 {
		col += g.width
	}
	return uint(row*g.width + col)
}

// Get reports whether the cell at (row, col) is alive.
func (g *Grid) Get(row, col int) bool {
	return g.cells.Test(g.index(row, col))
}

// Toggle flips the cell at (row, col).
func (g *Grid) Toggle(row, col int) {
	g.cells.Flip(g.index(row, col))
}

// SetAlive marks every given cell alive and leaves the others untouched.
func (g *Grid) SetAlive(coords ...Coord) {
	for _, c := range coords {
		g.cells.Set(g.index(c.Row, c.Col))
	}
}

// Clear kills every cell.
func (g *Grid) Clear() {
	g.cells.ClearAll()
}

// Reset re-randomizes every cell, each alive with the given probability.
func (g *Grid) Reset(probability float64) {
	for i := range uint(g.Len()) {
		g.cells.SetTo(i, g.rng.Float64() < probability)
	}
}

// Reseed makes subsequent Reset and InjectRandomLife calls deterministic.
func (g *Grid) Reseed(seed int64) {
	g.rng = newRand(seed)
}

// InjectRandomLife sets up to count random cells alive.
func (g *Grid) InjectRandomLife(count int) {
	for range count {
		g.SetAlive(Coord{Row: g.rng.IntN(g.height), Col: g.rng.IntN(g.width)})
	}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() int {
	return int(g.cells.Count())
}

// LiveCells returns the coordinates of every living cell in row-major order.
func (g *Grid) LiveCells() []Coord {
	live := make([]Coord, 0, g.cells.Count())
	for i, ok := g.cells.NextSet(0); ok; i, ok = g.cells.NextSet(i + 1) {
		live = append(live, Coord{Row: int(i) / g.width, Col: int(i) % g.width})
	}
	return live
}

// Equal reports whether both grids have the same shape and the same live cells.
func (g *Grid) Equal(other *Grid) bool {
	return g.width == other.width && g.height == other.height && g.cells.Equal(other.cells)
}

// Step advances the grid by one generation.
func (g *Grid) Step() {
	g.stepWords(0, len(g.next.Bytes()))
	g.swap()
}

// StepParallel advances the grid by one generation, splitting the packed words
// into bands evaluated concurrently. The result is identical to Step.
func (g *Grid) StepParallel(workers int) error {
	words := len(g.next.Bytes())
	if workers <= 1 || words < 2 {
		g.Step()
		return nil
	}
	workers = min(workers, words)

	var (
		eg             errgroup.Group
		wordsPerWorker = (words + workers - 1) / workers // Ceiling division
	)
	for i := range workers {
		var (
			start = i * wordsPerWorker
			end   = min(start+wordsPerWorker, words)
		)
		if start >= end {
			break
		}

		eg.Go(func() error {
			g.stepWords(start, end)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return errors.Wrap(err, "[StepParallel] failed to compute next generation")
	}

	g.swap()
	return nil
}

// stepWords computes next-generation words [start, end). Each word is built in
// a register and stored once, so bands on distinct words never share writes.
func (g *Grid) stepWords(start, end int) {
	var (
		cur  = g.cells.Bytes()
		next = g.next.Bytes()
		size = g.Len()
	)
	for w := start; w < end; w++ {
		var (
			word  uint64
			first = w * wordBits
			last  = min(first+wordBits, size)
		)
		for i := first; i < last; i++ {
			row, col := i/g.width, i%g.width
			if rules.ApplyConwayRules(g.liveNeighborCount(cur, row, col), isSet(cur, i)) {
				word |= 1 << uint(i-first)
			}
		}
		next[w] = word
	}
}

// liveNeighborCount counts the eight wrapped neighbors of (row, col). Offsets
// are added before the modulo so the arithmetic never goes negative.
func (g *Grid) liveNeighborCount(cur []uint64, row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		r := (row + dr + g.height) % g.height
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			c := (col + dc + g.width) % g.width
			if isSet(cur, r*g.width+c) {
				count++
			}
		}
	}
	return count
}

func isSet(words []uint64, i int) bool {
	return words[i/wordBits]&(1<<uint(i%wordBits)) != 0
}

func (g *Grid) swap() {
	g.cells, g.next = g.next, g.cells
}
