package slider

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// animator plays the visual transition of an accepted move and reports its
// completion with a TransitionEndMsg. It never touches the track.
type animator struct {
	id       int
	duration time.Duration
	interval time.Duration
	tick     tickFunc

	running bool
	ticket  int
	frame   int
}

func (a animator) frames() int {
	n := int(a.duration / a.interval)
	if n < 1 {
		n = 1
	}
	return n
}

// start begins the transition for ticket. A snapped transition completes
// without frames.
func (a *animator) start(ticket int, snap bool) tea.Cmd {
	a.ticket = ticket
	a.frame = 0
	if snap || a.duration <= 0 {
		a.running = false
		return a.end(ticket)
	}
	a.running = true
	return a.next()
}

func (a *animator) step(msg FrameMsg) tea.Cmd {
	if !a.running || msg.Ticket != a.ticket {
		return nil
	}
	a.frame++
	if a.frame >= a.frames() {
		a.running = false
		return a.end(a.ticket)
	}
	return a.next()
}

func (a *animator) stop() {
	a.running = false
	a.frame = 0
}

// progress returns the eased completion ratio of the running transition
func (a animator) progress() float64 {
	if !a.running {
		return 1
	}
	return easeInOut(float64(a.frame) / float64(a.frames()))
}

func (a animator) next() tea.Cmd {
	id, ticket := a.id, a.ticket
	return a.tick(a.interval, func(time.Time) tea.Msg {
		return FrameMsg{ID: id, Ticket: ticket}
	})
}

func (a animator) end(ticket int) tea.Cmd {
	id := a.id
	return func() tea.Msg {
		return TransitionEndMsg{ID: id, Ticket: ticket}
	}
}

func easeInOut(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	case t < 0.5:
		return 4 * t * t * t
	}
	f := -2*t + 2
	return 1 - f*f*f/2
}
