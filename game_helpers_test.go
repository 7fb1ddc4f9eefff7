package main

import (
	"testing"

	"github.com/sheikhrachel/torus-gol/model"
	"github.com/sheikhrachel/torus-gol/utils"
)

func testConfig(pattern string) utils.Config {
	config := utils.DefaultConfig()
	config.Width, config.Height = 12, 12
	config.Pattern = pattern
	config.Seed = 42
	return config
}

func TestNewGamePatterns(t *testing.T) {
	tests := []struct {
		pattern string
		want    int
	}{
		{pattern: utils.PatternDead, want: 0},
		{pattern: utils.PatternGlider, want: 5},
		// 144 cells: 72 even indexes plus 7, 21, ..., 133 (10 odd multiples of 7)
		{pattern: utils.PatternModulo, want: 82},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			g, err := newGame(testConfig(tt.pattern))
			if err != nil {
				t.Fatalf("newGame failed: %v", err)
			}
			if got := g.grid.CountLivingCells(); got != tt.want {
				t.Fatalf("%s pattern has %d live cells, want %d", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestNewGameRandomIsSeeded(t *testing.T) {
	a, err := newGame(testConfig(utils.PatternRandom))
	if err != nil {
		t.Fatalf("newGame failed: %v", err)
	}
	b, err := newGame(testConfig(utils.PatternRandom))
	if err != nil {
		t.Fatalf("newGame failed: %v", err)
	}
	if !a.grid.Equal(b.grid) {
		t.Fatal("games with the same seed started from different boards")
	}
}

func TestNewGameRejectsBadSize(t *testing.T) {
	config := testConfig(utils.PatternDead)
	config.Width = 0
	if _, err := newGame(config); err == nil {
		t.Fatal("newGame accepted a zero width")
	}
}

func TestCheckRestartConditions(t *testing.T) {
	config := utils.DefaultConfig()

	tests := []struct {
		name                                     string
		livingCells, stagnantCount, sinceRestart int
		want                                     bool
		reason                                   string
	}{
		{name: "extinct", livingCells: 0, sinceRestart: 3, want: true, reason: "extinction"},
		{name: "stagnant", livingCells: 4, stagnantCount: config.StagnationThreshold, sinceRestart: 3, want: true, reason: "stagnation detected"},
		{name: "refresh", livingCells: 4, sinceRestart: periodicRefresh, want: true, reason: "periodic refresh"},
		{name: "active", livingCells: 4, stagnantCount: 1, sinceRestart: 3},
		{name: "first generation", livingCells: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reason := checkRestartConditions(tt.livingCells, tt.stagnantCount, tt.sinceRestart, config)
			if got != tt.want || reason != tt.reason {
				t.Fatalf("checkRestartConditions = (%v, %q), want (%v, %q)", got, reason, tt.want, tt.reason)
			}
		})
	}
}

func TestGameRestartsStagnantBoard(t *testing.T) {
	config := testConfig(utils.PatternDead)
	config.StagnationThreshold = 2
	config.InjectionCount = 0
	g, err := newGame(config)
	if err != nil {
		t.Fatalf("newGame failed: %v", err)
	}
	g.grid.SetAlive(model.Blinker(5, 5)...)

	for range 10 {
		livingCells, _ := g.update()
		if g.stagnantCount >= config.StagnationThreshold {
			g.maintain(livingCells)
			break
		}
		if err := g.step(); err != nil {
			t.Fatalf("step failed: %v", err)
		}
	}

	if g.lastRestartGen != g.generation || g.generation == 0 {
		t.Fatalf("blinker was not restarted: generation %d, last restart %d", g.generation, g.lastRestartGen)
	}
	if g.grid.CountLivingCells() != 0 {
		t.Fatalf("restart with the dead pattern left %d cells", g.grid.CountLivingCells())
	}
}

func TestGameDone(t *testing.T) {
	config := testConfig(utils.PatternGlider)
	config.MaxGenerations = 3
	g, err := newGame(config)
	if err != nil {
		t.Fatalf("newGame failed: %v", err)
	}

	for !g.done() {
		if err := g.step(); err != nil {
			t.Fatalf("step failed: %v", err)
		}
	}
	if g.generation != 3 {
		t.Fatalf("stopped at generation %d, want 3", g.generation)
	}
}
