// Package tui is the terminal frontend. It turns key presses into player
// input and draws the arena with one glyph per entity.
package tui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/petri/components"
	"github.com/pthm-cable/petri/game"
	"github.com/pthm-cable/petri/session"
)

// Frontend owns the terminal screen. It implements game.Input.
type Frontend struct {
	screen tcell.Screen
	keys   chan game.Key

	arenaWidth  float64
	arenaHeight float64
}

// New initializes the terminal.
func New(arenaWidth, arenaHeight float64) (*Frontend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	return newFrontend(screen, arenaWidth, arenaHeight), nil
}

func newFrontend(screen tcell.Screen, arenaWidth, arenaHeight float64) *Frontend {
	return &Frontend{
		screen:      screen,
		keys:        make(chan game.Key, 16),
		arenaWidth:  arenaWidth,
		arenaHeight: arenaHeight,
	}
}

// Close restores the terminal.
func (f *Frontend) Close() {
	f.screen.Fini()
}

// PendingKey returns the oldest unconsumed key press, if any.
func (f *Frontend) PendingKey() (game.Key, bool) {
	select {
	case k := <-f.keys:
		return k, true
	default:
		return 0, false
	}
}

// Run ticks the session at tickRate ticks per second and redraws after every
// tick until the user quits or maxTicks is reached (0 = unlimited). A finished
// game stays on screen until quit.
func (f *Frontend) Run(s *session.Session, tickRate, maxTicks int) {
	ticker := time.NewTicker(time.Second / time.Duration(max(tickRate, 1)))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(f.screen, eventChan, done)

	f.draw(s)
	for {
		select {
		case ev := <-eventChan:
			if !f.handleEvent(ev) {
				return
			}

		case <-ticker.C:
			if !s.Over() {
				s.Step()
			}
			f.draw(s)

			if maxTicks > 0 && s.World().TickCount() >= maxTicks {
				return
			}
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done
// is closed.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent queues game keys. It returns false when the user quits.
func (f *Frontend) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			return false
		}
		if k, ok := keyFor(ev); ok {
			// Drop presses while the queue is full
			select {
			case f.keys <- k:
			default:
			}
		}
	case *tcell.EventResize:
		f.screen.Sync()
	}
	return true
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

// keyFor maps a terminal key to a player input. Arrows or a/d rotate,
// space sprays and enter or f throws flames.
func keyFor(ev *tcell.EventKey) (game.Key, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return game.KeyRotateLeft, true
	case tcell.KeyRight:
		return game.KeyRotateRight, true
	case tcell.KeyEnter:
		return game.KeySecondary, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a':
			return game.KeyRotateLeft, true
		case 'd':
			return game.KeyRotateRight, true
		case ' ':
			return game.KeyPrimary, true
		case 'f':
			return game.KeySecondary, true
		}
	}
	return 0, false
}

// cellFor projects arena coordinates (y up) onto a cols x rows grid (row 0
// at the top). Points outside the arena clamp to the edge cells.
func (f *Frontend) cellFor(x, y float64, cols, rows int) (col, row int) {
	col = int(x / f.arenaWidth * float64(cols))
	row = rows - 1 - int(y/f.arenaHeight*float64(rows))
	col = min(max(col, 0), cols-1)
	row = min(max(row, 0), rows-1)
	return col, row
}

func styleFor(kind components.Kind) tcell.Style {
	style := tcell.StyleDefault
	switch {
	case kind == components.KindPlayer:
		return style.Foreground(tcell.ColorWhite).Bold(true)
	case kind.Is(components.CapOrganism):
		return style.Foreground(tcell.ColorRed)
	case kind == components.KindHazard:
		return style.Foreground(tcell.ColorPurple)
	case kind.Is(components.CapPickup):
		return style.Foreground(tcell.ColorGreen)
	case kind.Is(components.CapProjectile):
		return style.Foreground(tcell.ColorYellow)
	case kind == components.KindDebris:
		return style.Foreground(tcell.ColorGray)
	case kind == components.KindFood:
		return style.Foreground(tcell.ColorBlue)
	}
	return style
}

// draw renders the arena above a one-line status bar. The player is drawn
// last so it stays visible.
func (f *Frontend) draw(s *session.Session) {
	f.screen.Clear()
	width, height := f.screen.Size()
	rows := height - 1
	if width < 1 || rows < 1 {
		return
	}

	var player *game.EntityView
	s.World().Visit(func(v game.EntityView) {
		if v.Kind == components.KindPlayer {
			pv := v
			player = &pv
			return
		}
		col, row := f.cellFor(v.X, v.Y, width, rows)
		f.screen.SetContent(col, row, v.Kind.Glyph(), nil, styleFor(v.Kind))
	})
	if player != nil {
		col, row := f.cellFor(player.X, player.Y, width, rows)
		f.screen.SetContent(col, row, player.Kind.Glyph(), nil, styleFor(player.Kind))
	}

	status := s.Status()
	if s.Over() {
		status += "  GAME OVER (q to quit)"
	}
	f.drawText(0, height-1, status, tcell.StyleDefault.Reverse(true))
	f.screen.Show()
}

func (f *Frontend) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		f.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
