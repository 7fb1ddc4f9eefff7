//go:build ebiten

package window

import (
	"errors"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	pkgerrors "github.com/pkg/errors"

	"github.com/sheikhrachel/torus-gol/model"
	"github.com/sheikhrachel/torus-gol/utils"
)

// Game adapts a grid to the ebiten.Game interface.
type Game struct {
	grid   *model.Grid
	config utils.Config
	img    *ebiten.Image
	buf    []byte

	on, off color.RGBA

	paused   bool
	tickOnce bool
}

func newGame(grid *model.Grid, config utils.Config) *Game {
	w, h := grid.Width(), grid.Height()
	return &Game{
		grid:   grid,
		config: config,
		img:    ebiten.NewImage(w, h),
		buf:    make([]byte, 4*w*h),
		on:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
		off:    color.RGBA{A: 255},
	}
}

// Run opens a window and advances grid once per frame until it is closed.
func Run(grid *model.Grid, config utils.Config) error {
	game := newGame(grid, config)

	tps := ebiten.DefaultTPS
	if config.FrameRate > 0 {
		tps = max(1, int(time.Second/config.FrameRate))
	}

	ebiten.SetWindowTitle("torus-gol")
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(grid.Width()*config.Scale, grid.Height()*config.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return pkgerrors.Wrap(err, "[Run] window closed with error")
	}
	return nil
}

// Update handles input and advances the grid.
func (g *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.paused = !g.paused
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.tickOnce = true
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.grid.Clear()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.grid.Reset(g.config.RandomDensity)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.grid.Toggle(y/g.config.Scale, x/g.config.Scale)
	}

	if !g.paused || g.tickOnce {
		g.tickOnce = false
		t := utils.StartTimer("Grid.Step", g.config.Verbose)
		err := g.grid.StepParallel(g.config.Workers)
		t.Stop()
		return err
	}
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	fillRGBA(g.buf, g.grid.Cells(), g.grid.Len(), g.on, g.off)
	g.img.WritePixels(g.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.config.Scale), float64(g.config.Scale))
	screen.DrawImage(g.img, op)
}

// Layout returns the logical screen size.
func (g *Game) Layout(int, int) (int, int) {
	return g.grid.Width() * g.config.Scale, g.grid.Height() * g.config.Scale
}
