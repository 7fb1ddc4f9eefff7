package model

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestTerminalRendererDisplay(t *testing.T) {
	var (
		buf bytes.Buffer
		r   = NewTerminalRenderer(&buf)
		g   = newTestGrid(t, 3, 2, CoordSeed{{0, 1}, {1, 2}})
	)
	if err := r.Display(g); err != nil {
		t.Fatalf("Display failed: %v", err)
	}

	want := strings.Join([]string{
		gridPosEmpty + gridPosBlock + gridPosEmpty,
		gridPosEmpty + gridPosEmpty + gridPosBlock,
	}, "\n") + "\n"
	if buf.String() != want {
		t.Fatalf("Display wrote %q, want %q", buf.String(), want)
	}
}

func TestTerminalRendererClear(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf)

	r.Printf("gen %d\n", 3)
	if err := r.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if buf.String() != "gen 3\n"+ansiClear {
		t.Fatalf("Clear wrote %q", buf.String())
	}
}

func newTestScreen(t *testing.T) (tcell.SimulationScreen, *ScreenRenderer) {
	t.Helper()

	screen := tcell.NewSimulationScreen("")
	r, err := NewScreenRenderer(screen)
	if err != nil {
		t.Fatalf("NewScreenRenderer failed: %v", err)
	}
	t.Cleanup(r.Close)
	return screen, r
}

func nextEvent(t *testing.T, r *ScreenRenderer) Event {
	t.Helper()

	select {
	case ev := <-r.Events():
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a screen event")
	}
	return Event{}
}

func TestScreenRendererDisplay(t *testing.T) {
	screen, r := newTestScreen(t)
	g := newTestGrid(t, 6, 6, CoordSeed(Glider(1, 1)))

	r.Display(g, "ok")

	cells, width, _ := screen.GetContents()
	for row := range g.Height() {
		for col := range g.Width() {
			want := r.dead
			if g.Get(row, col) {
				want = r.alive
			}
			for _, x := range []int{col * 2, col*2 + 1} {
				if got := cells[row*width+x].Style; got != want {
					t.Fatalf("cell (%d,%d) drawn with the wrong style", row, col)
				}
			}
		}
	}

	status := cells[g.Height()*width]
	if len(status.Runes) == 0 || status.Runes[0] != 'o' {
		t.Fatalf("status line not drawn below the grid: %q", status.Runes)
	}
}

func TestScreenRendererEvents(t *testing.T) {
	screen, r := newTestScreen(t)

	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	if ev := nextEvent(t, r); ev.Command != CommandPause {
		t.Fatalf("space produced %+v, want pause", ev)
	}

	screen.InjectMouse(5, 2, tcell.Button1, tcell.ModNone)
	screen.InjectMouse(5, 2, tcell.ButtonNone, tcell.ModNone)
	if ev := nextEvent(t, r); ev != (Event{Command: CommandToggle, Row: 2, Col: 2}) {
		t.Fatalf("click produced %+v, want toggle of (2,2)", ev)
	}

	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	if ev := nextEvent(t, r); ev.Command != CommandQuit {
		t.Fatalf("escape produced %+v, want quit", ev)
	}
}
