// Package ui provides terminal rendering using tcell.
package ui

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// eventBuffer bounds how many terminal events may queue between polls.
const eventBuffer = 64

// Screen wraps tcell.Screen with a simplified interface and a non-blocking
// event poll.
type Screen struct {
	screen    tcell.Screen
	events    chan tcell.Event
	done      chan struct{}
	closeOnce sync.Once
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return Attach(s)
}

// Attach initializes s and starts forwarding its events. The returned
// Screen owns s and finalizes it on Close.
func Attach(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.HideCursor()
	s.Clear()

	screen := &Screen{
		screen: s,
		events: make(chan tcell.Event, eventBuffer),
		done:   make(chan struct{}),
	}
	go screen.pump()
	return screen, nil
}

// pump forwards events from the blocking tcell poll until the screen closes.
func (s *Screen) pump() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

// Close finalizes the screen and restores terminal state. It is safe to
// call more than once.
func (s *Screen) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.screen.Fini()
	})
}

// Poll returns the next pending event, or nil when none is waiting.
func (s *Screen) Poll() tcell.Event {
	select {
	case ev := <-s.events:
		return ev
	default:
		return nil
	}
}

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// SetContent sets a single cell's content at the given position.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// Sync forces a complete redraw of the screen.
func (s *Screen) Sync() {
	s.screen.Sync()
}
