package model

// Glider returns a south-east travelling glider whose bounding box starts at (row, col).
func Glider(row, col int) []Coord {
	return []Coord{
		{row, col + 1},
		{row + 1, col + 2},
		{row + 2, col}, {row + 2, col + 1}, {row + 2, col + 2},
	}
}

// Blinker returns a horizontal period-2 oscillator starting at (row, col).
func Blinker(row, col int) []Coord {
	return []Coord{{row, col}, {row, col + 1}, {row, col + 2}}
}

// SeedInteresting randomizes the grid with the given density and stamps a few
// gliders and blinkers on top, scaled to the grid size.
func SeedInteresting(g *Grid, density float64) {
	g.Reset(density)

	if g.width < 10 || g.height < 10 {
		return
	}

	g.SetAlive(Glider(5, 5)...)
	if g.width >= 20 && g.height >= 15 {
		g.SetAlive(Glider(5, g.width-8)...)
	}

	g.SetAlive(Blinker(g.height/4, g.width/4)...)
	if g.width >= 30 {
		g.SetAlive(Blinker(3*g.height/4, 3*g.width/4)...)
	}
}
