package slider

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickFunc matches tea.Tick so tests can observe scheduled timers
type tickFunc func(time.Duration, func(time.Time) tea.Msg) tea.Cmd

// scheduler owns the single pending auto-advance timer. A timer is a tea.Tick
// tagged with the scheduler's current tag; bumping the tag invalidates it.
type scheduler struct {
	id       int
	tag      int
	pending  bool
	interval time.Duration

	autoPlay bool
	onHover  bool
	hovered  bool

	tick tickFunc
}

func (s scheduler) enabled() bool {
	if s.onHover {
		return s.hovered
	}
	return s.autoPlay
}

// arm cancels any pending timer and, when enabled, schedules a new one
func (s *scheduler) arm() tea.Cmd {
	s.disarm()
	if !s.enabled() || s.interval <= 0 {
		return nil
	}
	s.pending = true
	id, tag := s.id, s.tag
	return s.tick(s.interval, func(time.Time) tea.Msg {
		return AutoAdvanceMsg{ID: id, tag: tag}
	})
}

func (s *scheduler) disarm() {
	s.tag++
	s.pending = false
}

// fire consumes a timer message. Only the live timer is honoured.
func (s *scheduler) fire(msg AutoAdvanceMsg) bool {
	if msg.ID != s.id || msg.tag != s.tag || !s.pending {
		return false
	}
	s.pending = false
	return true
}
