package model

// SeedPolicy decides the initial cells of a new Grid.
type SeedPolicy interface {
	seed(g *Grid)
}

// Seed applies policy on top of the current cells. Only RandomSeed and
// PatternSeed overwrite cells; the others add to what is already alive.
func (g *Grid) Seed(policy SeedPolicy) {
	if policy != nil {
		policy.seed(g)
	}
}

// DeadSeed leaves every cell dead.
type DeadSeed struct{}

func (DeadSeed) seed(*Grid) {}

// RandomSeed makes each cell alive with the given probability. A non-zero Seed
// gives a reproducible board and keeps the grid's generator on that sequence.
type RandomSeed struct {
	Probability float64
	Seed        int64
}

func (s RandomSeed) seed(g *Grid) {
	if s.Seed != 0 {
		g.Reseed(s.Seed)
	}
	g.Reset(s.Probability)
}

// CoordSeed sets the listed cells alive.
type CoordSeed []Coord

func (s CoordSeed) seed(g *Grid) {
	g.SetAlive(s...)
}

// PatternSeed sets alive every linear index for which it returns true.
type PatternSeed func(index int) bool

func (s PatternSeed) seed(g *Grid) {
	for i := range g.Len() {
		g.cells.SetTo(uint(i), s(i))
	}
}

// ModuloPattern is a fixed procedural start: alive where i%2 == 0 || i%7 == 0.
var ModuloPattern = PatternSeed(func(i int) bool {
	return i%2 == 0 || i%7 == 0
})
