package main

import (
	"fmt"
	"log"
	"time"

	"github.com/sheikhrachel/torus-gol/model"
	"github.com/sheikhrachel/torus-gol/utils"
)

// periodicRefresh restarts a long-running board even when it is still active.
const periodicRefresh = 200

// game is the state the host loops carry between frames.
type game struct {
	config  utils.Config
	grid    *model.Grid
	history model.History
	stats   *utils.Stats

	generation     int
	stagnantCount  int
	lastRestartGen int
	lastFrameTime  time.Time
}

// newGame builds the initial grid described by config.
func newGame(config utils.Config) (*game, error) {
	grid, err := model.NewGrid(config.Width, config.Height, nil)
	if err != nil {
		return nil, err
	}

	g := &game{
		config:        config,
		grid:          grid,
		stats:         utils.NewStats(),
		lastFrameTime: time.Now(),
	}
	if config.Seed != 0 {
		grid.Reseed(config.Seed)
	}
	g.seed()
	return g, nil
}

// seed replaces the board with the configured starting pattern.
func (g *game) seed() {
	g.grid.Clear()
	g.history.Forget()

	switch g.config.Pattern {
	case utils.PatternDead:
	case utils.PatternModulo:
		g.grid.Seed(model.ModuloPattern)
	case utils.PatternGlider:
		g.grid.Seed(model.CoordSeed(model.Glider(1, 1)))
	case utils.PatternInteresting:
		model.SeedInteresting(g.grid, g.config.RandomDensity)
	default:
		g.grid.Reset(g.config.RandomDensity)
	}
}

// info describes the configured game before the first frame.
func (g *game) info() string {
	return fmt.Sprintf("Grid: %dx%d | Pattern: %s | Workers: %d | Initial living cells: %d",
		g.grid.Width(), g.grid.Height(), g.config.Pattern, g.config.Workers, g.grid.CountLivingCells())
}

// update refreshes stats and stagnation tracking for the current generation
// and returns the status line to display.
func (g *game) update() (livingCells int, status string) {
	livingCells = g.grid.CountLivingCells()
	density := float64(livingCells) / float64(g.grid.Len()) * 100

	frameStart := time.Now()
	g.stats.Update(g.generation, livingCells, frameStart.Sub(g.lastFrameTime))
	g.lastFrameTime = frameStart

	// Compare against earlier generations before recording this one.
	isStagnant := g.history.IsStagnant(g.grid)
	g.history.Update(g.grid)
	if isStagnant {
		g.stagnantCount++
	} else {
		g.stagnantCount = 0
	}

	state := "Active"
	switch {
	case livingCells == 0:
		state = "Extinct"
	case isStagnant:
		state = fmt.Sprintf("Stagnant (%d)", g.stagnantCount)
	}

	status = fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s | %.1f gen/sec | Avg Pop: %.1f | Step: %v",
		g.generation, livingCells, density, state,
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.LastStep)
	return livingCells, status
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount, generation int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if generation > 0 && generation%periodicRefresh == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// maintain restarts or nudges the board after a frame was displayed.
func (g *game) maintain(livingCells int) {
	shouldRestart, reason := checkRestartConditions(livingCells, g.stagnantCount, g.generation-g.lastRestartGen, g.config)

	switch {
	case shouldRestart && g.config.AutoRestart:
		log.Printf("restarting at generation %d due to %s", g.generation, reason)
		g.seed()
		g.lastRestartGen = g.generation
		g.stagnantCount = 0
	case g.stagnantCount >= 2 && g.stagnantCount < g.config.StagnationThreshold:
		// Inject some life to try to break the stagnation
		g.grid.InjectRandomLife(g.config.InjectionCount)
	}
}

// step advances the grid by one generation.
func (g *game) step() error {
	t := utils.StartTimer("Grid.Step", g.config.Verbose)
	err := g.grid.StepParallel(g.config.Workers)
	g.stats.LastStep = t.Stop()
	if err != nil {
		return err
	}
	g.generation++
	return nil
}

// done reports whether the generation limit has been reached.
func (g *game) done() bool {
	return g.config.MaxGenerations > 0 && g.generation >= g.config.MaxGenerations
}
