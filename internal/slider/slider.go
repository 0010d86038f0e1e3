// Package slider implements an infinitely wrapping image carousel as a
// bubbletea component.
//
// Three independent inputs can move the carousel: the auto-advance timer,
// manual navigation (keys, clicks on the arrows) and drag gestures. All of
// them go through the same request path, which accepts a move only while no
// transition is in flight. The transition's completion arrives later as a
// TransitionEndMsg carrying the ticket issued when the move was accepted.
package slider

import (
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

type affordance int

const (
	affordanceNone affordance = iota
	affordancePrevious
	affordanceNext
)

// Model is a carousel instance
type Model struct {
	KeyMap KeyMap
	Styles Styles

	id      int
	opts    Options
	log     *zap.Logger
	mounted bool
	focused bool

	track track
	sched scheduler
	anim  animator
	touch gesture
	focus affordance

	x, y          int
	width, height int
}

// New creates a slider over slides. Slides and circular mode are fixed for
// the lifetime of the instance; create a new Model to change them.
func New(slides []Slide, opts Options) *Model {
	opts = opts.normalized()
	id := nextID()
	return &Model{
		KeyMap: DefaultKeyMap(),
		Styles: DefaultStyles(),
		id:     id,
		opts:   opts,
		log:    opts.Logger.With(zap.Int("slider", id)),
		track:  newTrack(slides, opts.Circular),
		sched: scheduler{
			id:       id,
			interval: opts.AutoSlideInterval,
			autoPlay: opts.AutoPlay,
			onHover:  opts.AutoPlayOnHover,
			tick:     tea.Tick,
		},
		anim: animator{
			id:       id,
			duration: opts.TransitionDuration,
			interval: opts.FrameInterval,
			tick:     tea.Tick,
		},
		width:  40,
		height: 10,
	}
}

// ID identifies the messages that belong to this instance
func (m *Model) ID() int { return m.id }

// Init mounts the slider and arms the auto-advance timer
func (m *Model) Init() tea.Cmd {
	m.mounted = true
	return m.rearm()
}

// Unmount cancels the pending timer and any running animation. Messages
// arriving afterwards are ignored, a pending PaintMsg included. A move in
// flight lands on its target and animation is re-enabled so a later Init
// starts from a settled, animating track.
func (m *Model) Unmount() {
	m.mounted = false
	m.sched.disarm()
	m.anim.stop()
	m.touch = gesture{}
	if m.track.transitioning {
		m.track.settle(m.track.ticket)
	}
	m.track.paint()
}

// Mounted reports whether Init has run and Unmount has not
func (m *Model) Mounted() bool { return m.mounted }

// Update handles slider messages and, when focused, key presses
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.mounted {
		return nil
	}
	switch msg := msg.(type) {
	case AutoAdvanceMsg:
		if msg.ID != m.id || !m.sched.fire(msg) {
			return nil
		}
		m.log.Debug("auto-advance fired", zap.Int("index", m.track.index))
		return m.Next()

	case FrameMsg:
		if msg.ID != m.id {
			return nil
		}
		return m.anim.step(msg)

	case TransitionEndMsg:
		if msg.ID != m.id {
			return nil
		}
		return m.settle(msg.Ticket)

	case PaintMsg:
		if msg.ID != m.id {
			return nil
		}
		if m.track.paint() {
			m.log.Debug("animation re-enabled after wrap")
		}
		return nil

	case tea.KeyMsg:
		if !m.focused {
			return nil
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return nil
}

// Next requests an advance by one slide
func (m *Model) Next() tea.Cmd {
	return m.request(1)
}

// Previous requests a retreat by one slide
func (m *Model) Previous() tea.Cmd {
	return m.request(-1)
}

func (m *Model) request(delta int) tea.Cmd {
	if !m.mounted {
		return nil
	}
	ticket, ok := m.track.request(delta)
	if !ok {
		m.log.Debug("move dropped",
			zap.Int("delta", delta),
			zap.Int("index", m.track.index),
			zap.Bool("transitioning", m.track.transitioning))
		return nil
	}
	m.sched.disarm()
	m.log.Debug("move accepted",
		zap.Int("delta", delta),
		zap.Int("index", m.track.index),
		zap.Int("ticket", ticket))
	return m.anim.start(ticket, m.track.suppressed)
}

func (m *Model) settle(ticket int) tea.Cmd {
	settled, wrapped := m.track.settle(ticket)
	if !settled {
		m.log.Debug("stale completion ignored", zap.Int("ticket", ticket))
		return nil
	}
	m.anim.stop()
	var cmds []tea.Cmd
	if wrapped {
		m.log.Debug("wrapped to real slide", zap.Int("index", m.track.index))
		cmds = append(cmds, m.paint())
	}
	cmds = append(cmds, m.rearm())
	return tea.Batch(cmds...)
}

// paint schedules the PaintMsg one frame after the jump has been rendered
func (m *Model) paint() tea.Cmd {
	id := m.id
	return m.anim.tick(m.opts.FrameInterval, func(time.Time) tea.Msg {
		return PaintMsg{ID: id}
	})
}

// rearm arms the scheduler while idle. During a transition it only cancels:
// settling re-arms.
func (m *Model) rearm() tea.Cmd {
	if !m.mounted || m.track.count == 0 || m.track.transitioning {
		m.sched.disarm()
		return nil
	}
	return m.sched.arm()
}

// SetHovered records pointer enter/leave
func (m *Model) SetHovered(hovered bool) tea.Cmd {
	if m.sched.hovered == hovered {
		return nil
	}
	m.sched.hovered = hovered
	if !hovered && m.opts.Navigation == NavigationVisibleOnHover {
		m.focus = affordanceNone
	}
	return m.rearm()
}

// Hovered reports whether the pointer is over the slider
func (m *Model) Hovered() bool { return m.sched.hovered }

// SetAutoPlay changes the AutoPlay option
func (m *Model) SetAutoPlay(on bool) tea.Cmd {
	m.opts.AutoPlay = on
	m.sched.autoPlay = on
	return m.rearm()
}

// SetAutoPlayOnHover changes the AutoPlayOnHover option
func (m *Model) SetAutoPlayOnHover(on bool) tea.Cmd {
	m.opts.AutoPlayOnHover = on
	m.sched.onHover = on
	return m.rearm()
}

// SetAutoSlideInterval changes the auto-advance period
func (m *Model) SetAutoSlideInterval(d time.Duration) tea.Cmd {
	m.opts.AutoSlideInterval = d
	m.sched.interval = d
	return m.rearm()
}

// TouchStart begins a gesture at column x
func (m *Model) TouchStart(x int) {
	if !m.opts.SwipeSupported {
		return
	}
	m.touch.start(x)
}

// TouchMove records the latest column of the running gesture
func (m *Model) TouchMove(x int) {
	if !m.opts.SwipeSupported {
		return
	}
	m.touch.move(x)
}

// TouchEnd resolves the running gesture into at most one move
func (m *Model) TouchEnd() tea.Cmd {
	if !m.opts.SwipeSupported {
		return nil
	}
	switch m.touch.end(m.opts.TouchThreshold) {
	case 1:
		if m.ShowNext() {
			return m.Next()
		}
	case -1:
		if m.ShowPrevious() {
			return m.Previous()
		}
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.opts.Navigation == NavigationNotVisible {
		return nil
	}
	switch {
	case key.Matches(msg, m.KeyMap.Previous):
		return m.pressPrevious()
	case key.Matches(msg, m.KeyMap.Next):
		return m.pressNext()
	case key.Matches(msg, m.KeyMap.Focus):
		m.cycleFocus()
	case key.Matches(msg, m.KeyMap.Activate):
		switch m.focus {
		case affordancePrevious:
			return m.pressPrevious()
		case affordanceNext:
			return m.pressNext()
		}
	}
	return nil
}

// cycleFocus moves keyboard focus over the rendered arrows. Arrows shown only
// on hover are not focusable.
func (m *Model) cycleFocus() {
	if m.opts.Navigation != NavigationVisible {
		m.focus = affordanceNone
		return
	}
	order := []affordance{affordanceNone}
	if m.ShowPrevious() {
		order = append(order, affordancePrevious)
	}
	if m.ShowNext() {
		order = append(order, affordanceNext)
	}
	for i, a := range order {
		if a == m.focus {
			m.focus = order[(i+1)%len(order)]
			return
		}
	}
	m.focus = affordanceNone
}

func (m *Model) pressPrevious() tea.Cmd {
	if !m.ShowPrevious() {
		return nil
	}
	return m.Previous()
}

func (m *Model) pressNext() tea.Cmd {
	if !m.ShowNext() {
		return nil
	}
	return m.Next()
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.Contains(msg.X, msg.Y) {
			return nil
		}
		switch m.hit(msg.X, msg.Y) {
		case affordancePrevious:
			return m.pressPrevious()
		case affordanceNext:
			return m.pressNext()
		}
		m.TouchStart(msg.X)
	case tea.MouseActionMotion:
		m.TouchMove(msg.X)
	case tea.MouseActionRelease:
		return m.TouchEnd()
	}
	return nil
}

// Focus gives the slider keyboard input
func (m *Model) Focus() { m.focused = true }

// Blur takes keyboard input away
func (m *Model) Blur() {
	m.focused = false
	m.focus = affordanceNone
}

// Focused reports whether the slider receives keys
func (m *Model) Focused() bool { return m.focused }

// Index is the position in the padded sequence
func (m *Model) Index() int { return m.track.index }

// RealIndex is the position among the caller's slides
func (m *Model) RealIndex() int { return m.track.realIndex() }

// Len is the length of the padded sequence
func (m *Model) Len() int { return len(m.track.slides) }

// Count is the number of caller slides
func (m *Model) Count() int { return m.track.count }

// Transitioning reports whether an accepted move has not settled yet
func (m *Model) Transitioning() bool { return m.track.transitioning }

// Animated is false between a wrap jump and the following paint; the
// renderer must snap rather than interpolate while it is false.
func (m *Model) Animated() bool { return !m.track.suppressed }

// Ticket is the completion token of the outstanding move
func (m *Model) Ticket() int { return m.track.ticket }

// TimerPending reports whether an auto-advance timer is armed
func (m *Model) TimerPending() bool { return m.sched.pending }

// Current returns the slide at the current index
func (m *Model) Current() (Slide, bool) {
	if len(m.track.slides) == 0 {
		return Slide{}, false
	}
	return m.track.slides[m.track.index], true
}

// Key returns the identity of the slide at a padded index
func (m *Model) Key(i int) string { return m.track.key(i) }

// ShowPrevious reports whether the previous arrow is available
func (m *Model) ShowPrevious() bool { return m.track.canGoPrevious() }

// ShowNext reports whether the next arrow is available
func (m *Model) ShowNext() bool { return m.track.canGoNext() }

// NavigationVisible reports whether the arrows render at all right now
func (m *Model) NavigationVisible() bool {
	switch m.opts.Navigation {
	case NavigationNotVisible:
		return false
	case NavigationVisibleOnHover:
		return m.sched.hovered
	}
	return true
}

// Options returns the effective options
func (m *Model) Options() Options { return m.opts }
