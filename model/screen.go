package model

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// Command is a user action read from an interactive screen.
type Command int

const (
	CommandQuit Command = iota + 1
	CommandPause
	CommandStep
	CommandClear
	CommandReset
	CommandToggle
)

// Event carries a Command and, for CommandToggle, the cell that was clicked.
type Event struct {
	Command Command
	Row     int
	Col     int
}

// ScreenRenderer draws the grid on a full-screen tcell terminal and turns key
// presses and mouse clicks into Events.
type ScreenRenderer struct {
	screen tcell.Screen
	events chan Event
	done   chan struct{}

	alive tcell.Style
	dead  tcell.Style
}

// NewScreenRenderer initializes screen, or the real terminal when screen is nil,
// and starts polling it for input.
func NewScreenRenderer(screen tcell.Screen) (*ScreenRenderer, error) {
	if screen == nil {
		var err error
		if screen, err = tcell.NewScreen(); err != nil {
			return nil, errors.Wrap(err, "[NewScreenRenderer] failed to create screen")
		}
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewScreenRenderer] failed to initialize screen")
	}
	screen.EnableMouse()
	screen.Clear()

	r := &ScreenRenderer{
		screen: screen,
		events: make(chan Event, 16),
		done:   make(chan struct{}),
		alive:  tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite),
		dead:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
	}
	go r.poll()
	return r, nil
}

// Events delivers user input until the renderer is closed.
func (r *ScreenRenderer) Events() <-chan Event {
	return r.events
}

func (r *ScreenRenderer) poll() {
	defer close(r.events)

	pressed := false
	for {
		var ev Event
		switch e := r.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			r.screen.Sync()
			continue
		case *tcell.EventKey:
			ev.Command = keyCommand(e)
		case *tcell.EventMouse:
			down := e.Buttons()&tcell.Button1 != 0
			if down && !pressed {
				x, y := e.Position()
				ev = Event{Command: CommandToggle, Row: y, Col: x / 2}
			}
			pressed = down
		}
		if ev.Command == 0 {
			continue
		}

		select {
		case r.events <- ev:
		case <-r.done:
			return
		}
	}
}

func keyCommand(e *tcell.EventKey) Command {
	switch e.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CommandQuit
	case tcell.KeyRune:
	default:
		return 0
	}

	switch e.Rune() {
	case 'q':
		return CommandQuit
	case ' ':
		return CommandPause
	case 'n':
		return CommandStep
	case 'c':
		return CommandClear
	case 'r':
		return CommandReset
	}
	return 0
}

// Display draws the visible part of the grid and a status line beneath it.
func (r *ScreenRenderer) Display(g *Grid, status string) {
	var (
		words       = g.Cells()
		cols, rows  = r.screen.Size()
		visibleRows = min(g.height, rows)
		visibleCols = min(g.width, cols/2)
		line        = []rune(status)
	)
	for row := range visibleRows {
		for col := range visibleCols {
			style := r.dead
			if isSet(words, row*g.width+col) {
				style = r.alive
			}
			r.screen.SetContent(col*2, row, ' ', nil, style)
			r.screen.SetContent(col*2+1, row, ' ', nil, style)
		}
	}

	if visibleRows < rows {
		for x := range cols {
			ch := ' '
			if x < len(line) {
				ch = line[x]
			}
			r.screen.SetContent(x, visibleRows, ch, nil, tcell.StyleDefault)
		}
	}
	r.screen.Show()
}

// Close restores the terminal.
func (r *ScreenRenderer) Close() {
	close(r.done)
	r.screen.Fini()
}
