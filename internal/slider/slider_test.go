package slider

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock fires every scheduled tick as soon as its command runs and
// records the requested durations.
type fakeClock struct {
	scheduled []time.Duration
}

func (c *fakeClock) tick(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	c.scheduled = append(c.scheduled, d)
	return func() tea.Msg { return fn(time.Time{}) }
}

func (c *fakeClock) durations() []time.Duration { return c.scheduled }

// run executes cmd and flattens batches into the produced messages
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// finish delivers frame, completion and paint messages until the slider is
// quiet. Auto-advance messages are returned undelivered.
func finish(m *Model, cmd tea.Cmd) []AutoAdvanceMsg {
	var timers []AutoAdvanceMsg
	queue := run(cmd)
	for len(queue) > 0 {
		msg := queue[0]
		queue = queue[1:]
		if tm, ok := msg.(AutoAdvanceMsg); ok {
			timers = append(timers, tm)
			continue
		}
		queue = append(queue, run(m.Update(msg))...)
	}
	return timers
}

// timerMsgs returns only the auto-advance messages produced by cmd
func timerMsgs(cmd tea.Cmd) []AutoAdvanceMsg {
	var out []AutoAdvanceMsg
	for _, msg := range run(cmd) {
		if tm, ok := msg.(AutoAdvanceMsg); ok {
			out = append(out, tm)
		}
	}
	return out
}

func newTestSlider(t *testing.T, n int, configure func(*Options)) (*Model, *fakeClock) {
	t.Helper()
	opts := DefaultOptions()
	opts.AutoPlay = false
	if configure != nil {
		configure(&opts)
	}
	m := New(testSlides(n), opts)
	clk := &fakeClock{}
	m.sched.tick = clk.tick
	m.anim.tick = clk.tick
	m.SetSize(30, 8)
	return m, clk
}

func TestInitialPosition(t *testing.T) {
	circular, _ := newTestSlider(t, 3, nil)
	assert.Equal(t, 1, circular.Index())
	assert.Equal(t, 0, circular.RealIndex())
	assert.Equal(t, 5, circular.Len())
	assert.False(t, circular.Transitioning())

	flat, _ := newTestSlider(t, 3, func(o *Options) { o.Circular = false })
	assert.Equal(t, 0, flat.Index())
	assert.Equal(t, 3, flat.Len())
}

func TestRapidRequestsApplyOnce(t *testing.T) {
	m, _ := newTestSlider(t, 3, nil)
	m.Init()

	cmd := m.Next()
	require.NotNil(t, cmd)
	assert.Nil(t, m.Next())
	assert.Nil(t, m.Previous())
	assert.Nil(t, m.Next())
	assert.Equal(t, 2, m.Index())
	assert.True(t, m.Transitioning())

	finish(m, cmd)
	assert.False(t, m.Transitioning())
	assert.Equal(t, 2, m.Index())

	require.NotNil(t, m.Next(), "idle slider accepts a new move")
	assert.Equal(t, 3, m.Index())
}

func TestTransitionAnimatesBeforeSettling(t *testing.T) {
	m, clk := newTestSlider(t, 3, nil)
	m.Init()

	cmd := m.Next()
	msgs := run(cmd)
	require.Len(t, msgs, 1)
	frame, ok := msgs[0].(FrameMsg)
	require.True(t, ok, "accepted move starts with an animation frame")
	assert.Equal(t, m.Ticket(), frame.Ticket)
	assert.Equal(t, DefaultFrameInterval, clk.durations()[0])

	finish(m, func() tea.Msg { return frame })
	assert.False(t, m.Transitioning())
}

func TestWrapContinuity(t *testing.T) {
	m, _ := newTestSlider(t, 3, nil)
	m.Init()

	cmd := m.Previous()
	require.NotNil(t, cmd)
	assert.Equal(t, 0, m.Index())
	ticket := m.Ticket()

	// deliver only the completion so the paint is still outstanding
	paint := run(m.Update(TransitionEndMsg{ID: m.ID(), Ticket: ticket}))
	assert.False(t, m.Transitioning())
	assert.Equal(t, 3, m.Index(), "lands on the real last slide")
	assert.Equal(t, 2, m.RealIndex())
	assert.False(t, m.Animated(), "the wrap jump is flagged as non-animated")

	cur, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, "Image 3", cur.Alt)
	assert.Contains(t, m.View(), "Image 3")

	var sawPaint bool
	for _, msg := range paint {
		if p, ok := msg.(PaintMsg); ok {
			sawPaint = true
			m.Update(p)
		}
	}
	require.True(t, sawPaint, "settle schedules the paint that lifts suppression")
	assert.True(t, m.Animated())
}

func TestForwardWrap(t *testing.T) {
	m, _ := newTestSlider(t, 3, nil)
	m.Init()

	for i := 0; i < 3; i++ {
		finish(m, m.Next())
	}
	assert.Equal(t, 1, m.Index())
	assert.Equal(t, 0, m.RealIndex())
	assert.True(t, m.Animated())
}

func TestNonCircularBoundary(t *testing.T) {
	m, _ := newTestSlider(t, 3, func(o *Options) { o.Circular = false })
	m.Init()

	assert.False(t, m.ShowPrevious())
	assert.True(t, m.ShowNext())

	finish(m, m.Next())
	finish(m, m.Next())
	assert.Equal(t, 2, m.Index())
	assert.False(t, m.ShowNext())
	assert.True(t, m.ShowPrevious())

	assert.Nil(t, m.Next())
	assert.Equal(t, 2, m.Index())
	assert.False(t, m.Transitioning())
}

func TestAutoAdvanceMovesOnInterval(t *testing.T) {
	m, clk := newTestSlider(t, 3, func(o *Options) {
		o.AutoPlay = true
		o.AutoSlideInterval = time.Second
	})

	timers := timerMsgs(m.Init())
	require.Len(t, timers, 1)
	assert.Equal(t, time.Second, clk.durations()[0])
	assert.True(t, m.TimerPending())

	cmd := m.Update(timers[0])
	require.NotNil(t, cmd)
	assert.Equal(t, 2, m.Index())
	assert.False(t, m.TimerPending(), "no timer runs while a transition is in flight")

	next := finish(m, cmd)
	require.Len(t, next, 1, "settling re-arms exactly one timer")
	assert.True(t, m.TimerPending())
}

func TestAutoPlayOnHoverPrecedence(t *testing.T) {
	m, _ := newTestSlider(t, 3, func(o *Options) {
		o.AutoPlay = true
		o.AutoPlayOnHover = true
		o.AutoSlideInterval = time.Second
	})

	assert.Empty(t, timerMsgs(m.Init()), "not hovered: hover mode wins over autoPlay")
	assert.False(t, m.TimerPending())

	timers := timerMsgs(m.SetHovered(true))
	require.Len(t, timers, 1)

	anim := m.Update(timers[0])
	require.NotNil(t, anim)
	assert.Equal(t, 2, m.Index(), "index moves once while hovered")

	assert.Nil(t, m.SetHovered(false))
	assert.False(t, m.TimerPending())

	// the old timer is dead and settling does not re-arm while un-hovered
	assert.Empty(t, finish(m, anim))
	assert.Nil(t, m.Update(timers[0]))
	assert.Equal(t, 2, m.Index())
	assert.False(t, m.TimerPending())
}

func TestSettleResetsTimer(t *testing.T) {
	m, _ := newTestSlider(t, 3, func(o *Options) {
		o.AutoPlay = true
		o.AutoSlideInterval = time.Second
	})
	old := timerMsgs(m.Init())
	require.Len(t, old, 1)

	fresh := finish(m, m.Next())
	require.Len(t, fresh, 1)
	assert.NotEqual(t, old[0].tag, fresh[0].tag)

	assert.Nil(t, m.Update(old[0]), "the previous timer reference is invalid")
	assert.Equal(t, 2, m.Index())

	require.NotNil(t, m.Update(fresh[0]))
	assert.Equal(t, 3, m.Index())
}

func TestHoverChangeDuringTransitionDoesNotArm(t *testing.T) {
	m, _ := newTestSlider(t, 3, func(o *Options) {
		o.AutoPlayOnHover = true
		o.AutoSlideInterval = time.Second
	})
	m.Init()

	cmd := m.Next()
	assert.Nil(t, m.SetHovered(true))
	assert.False(t, m.TimerPending())

	assert.Len(t, finish(m, cmd), 1)
	assert.True(t, m.TimerPending())
}

func TestDuplicateCompletionIgnored(t *testing.T) {
	m, _ := newTestSlider(t, 3, nil)
	m.Init()

	m.Next()
	ticket := m.Ticket()
	m.Update(TransitionEndMsg{ID: m.ID(), Ticket: ticket})
	m.Next()
	assert.Equal(t, 3, m.Index())

	assert.Nil(t, m.Update(TransitionEndMsg{ID: m.ID(), Ticket: ticket}))
	assert.True(t, m.Transitioning(), "stale completion must not settle the new move")
}

func TestMessagesForOtherInstancesIgnored(t *testing.T) {
	m, _ := newTestSlider(t, 3, nil)
	m.Init()
	m.Next()

	assert.Nil(t, m.Update(TransitionEndMsg{ID: m.ID() + 1000, Ticket: m.Ticket()}))
	assert.True(t, m.Transitioning())
}

func TestUnmountCancelsTimer(t *testing.T) {
	m, _ := newTestSlider(t, 3, func(o *Options) {
		o.AutoPlay = true
		o.AutoSlideInterval = time.Second
	})
	timers := timerMsgs(m.Init())
	require.Len(t, timers, 1)

	m.Unmount()
	assert.False(t, m.TimerPending())
	assert.False(t, m.Mounted())
	assert.Nil(t, m.Update(timers[0]))
	assert.Nil(t, m.Next())
	assert.Equal(t, 1, m.Index())
}

func TestUnmountDuringTransition(t *testing.T) {
	m, _ := newTestSlider(t, 3, func(o *Options) { o.AutoPlay = true })
	m.Init()
	cmd := m.Next()
	m.Unmount()

	assert.Empty(t, finish(m, cmd))
	assert.False(t, m.TimerPending())
	assert.False(t, m.Transitioning())
	assert.Equal(t, 2, m.Index())

	timers := timerMsgs(m.Init())
	assert.Len(t, timers, 1, "remounting re-arms the settled track")
	assert.True(t, m.TimerPending())
}

func TestRemountAfterWrapAnimates(t *testing.T) {
	m, _ := newTestSlider(t, 3, nil)
	m.Init()

	m.Previous()
	// settle the wrap but hold back the paint, as a page switch would
	run(m.Update(TransitionEndMsg{ID: m.ID(), Ticket: m.Ticket()}))
	require.False(t, m.Animated())

	m.Unmount()
	m.Init()
	assert.True(t, m.Animated(), "remounting re-enables animation")

	msgs := run(m.Previous())
	require.NotEmpty(t, msgs)
	_, isFrame := msgs[0].(FrameMsg)
	assert.True(t, isFrame, "the next move animates instead of snapping")
	assert.True(t, m.Transitioning())
}

func TestRemountAfterUnmountMidWrap(t *testing.T) {
	m, _ := newTestSlider(t, 3, nil)
	m.Init()

	m.Previous()
	require.Equal(t, 0, m.Index())
	m.Unmount()

	assert.False(t, m.Transitioning())
	assert.Equal(t, 3, m.Index(), "the move onto the padding slide wraps on unmount")
	assert.True(t, m.Animated())

	m.Init()
	msgs := run(m.Next())
	require.NotEmpty(t, msgs)
	_, isFrame := msgs[0].(FrameMsg)
	assert.True(t, isFrame)
	assert.Equal(t, 4, m.Index())
}

func TestSwipeThreshold(t *testing.T) {
	m, _ := newTestSlider(t, 3, func(o *Options) { o.TouchThreshold = 50 })
	m.Init()

	m.TouchStart(100)
	m.TouchMove(51)
	assert.Nil(t, m.TouchEnd(), "49px drag is below the threshold")
	assert.Equal(t, 1, m.Index())

	m.TouchStart(100)
	m.TouchMove(151)
	require.NotNil(t, m.TouchEnd())
	assert.Equal(t, 0, m.Index(), "51px drag to the right retreats once")
	assert.True(t, m.Transitioning())
}

func TestSwipeDisabled(t *testing.T) {
	m, _ := newTestSlider(t, 3, func(o *Options) { o.SwipeSupported = false })
	m.Init()

	for _, end := range []int{0, 49, 51, 500, -500} {
		m.TouchStart(100)
		m.TouchMove(end)
		assert.Nil(t, m.TouchEnd())
	}
	assert.Equal(t, 1, m.Index())
	assert.False(t, m.Transitioning())
}

func TestSwipeRespectsBoundaries(t *testing.T) {
	m, _ := newTestSlider(t, 3, func(o *Options) {
		o.Circular = false
		o.TouchThreshold = 5
	})
	m.Init()

	m.TouchStart(10)
	m.TouchMove(30)
	assert.Nil(t, m.TouchEnd(), "cannot retreat from the first slide")
	assert.Equal(t, 0, m.Index())
}

func TestMouseDragSwipes(t *testing.T) {
	m, _ := newTestSlider(t, 3, func(o *Options) { o.TouchThreshold = 5 })
	m.Init()
	m.SetOrigin(0, 0)

	m.Update(tea.MouseMsg{X: 15, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: 8, Y: 2, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	cmd := m.Update(tea.MouseMsg{X: 8, Y: 2, Action: tea.MouseActionRelease})
	require.NotNil(t, cmd)
	assert.Equal(t, 2, m.Index())
}

func TestMouseClickArrows(t *testing.T) {
	m, _ := newTestSlider(t, 3, nil)
	m.Init()
	m.SetOrigin(0, 0)

	cmd := m.Update(tea.MouseMsg{X: 1, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.NotNil(t, cmd)
	assert.Equal(t, 0, m.Index())
	finish(m, cmd)

	cmd = m.Update(tea.MouseMsg{X: 27, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.NotNil(t, cmd)
	assert.Equal(t, 4, m.Index())
}

func TestNavigationVisibility(t *testing.T) {
	hidden, _ := newTestSlider(t, 3, func(o *Options) { o.Navigation = NavigationNotVisible })
	hidden.Init()
	hidden.Focus()
	assert.False(t, hidden.NavigationVisible())
	assert.Nil(t, hidden.Update(tea.KeyMsg{Type: tea.KeyRight}))
	assert.Equal(t, 1, hidden.Index())

	onHover, _ := newTestSlider(t, 3, func(o *Options) { o.Navigation = NavigationVisibleOnHover })
	onHover.Init()
	assert.False(t, onHover.NavigationVisible())
	onHover.SetHovered(true)
	assert.True(t, onHover.NavigationVisible())
	assert.Contains(t, onHover.View(), "›")

	visible, _ := newTestSlider(t, 3, nil)
	assert.True(t, visible.NavigationVisible())
}

func TestKeysRequireFocus(t *testing.T) {
	m, _ := newTestSlider(t, 3, nil)
	m.Init()

	assert.Nil(t, m.Update(tea.KeyMsg{Type: tea.KeyRight}))
	assert.Equal(t, 1, m.Index())

	m.Focus()
	require.NotNil(t, m.Update(tea.KeyMsg{Type: tea.KeyRight}))
	assert.Equal(t, 2, m.Index())
}

func TestFocusedArrowActivation(t *testing.T) {
	m, _ := newTestSlider(t, 3, nil)
	m.Init()
	m.Focus()

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.NotNil(t, m.Update(tea.KeyMsg{Type: tea.KeyEnter}), "enter presses the focused next arrow")
	assert.Equal(t, 2, m.Index())
}

func TestFocusSkipsHoverOnlyArrows(t *testing.T) {
	m, _ := newTestSlider(t, 3, func(o *Options) { o.Navigation = NavigationVisibleOnHover })
	m.Init()
	m.Focus()
	m.SetHovered(true)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Nil(t, m.Update(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, 1, m.Index())
}

func TestEmptySlider(t *testing.T) {
	m, _ := newTestSlider(t, 0, func(o *Options) { o.AutoPlay = true })
	assert.Nil(t, m.Init())
	assert.Nil(t, m.Next())
	assert.False(t, m.ShowNext())
	assert.False(t, m.ShowPrevious())
	_, ok := m.Current()
	assert.False(t, ok)
	assert.Contains(t, m.View(), "no images")
}

func TestViewDuringTransitionKeepsWidth(t *testing.T) {
	m, _ := newTestSlider(t, 3, nil)
	m.Init()
	cmd := m.Next()
	msgs := run(cmd)
	require.Len(t, msgs, 1)
	m.Update(msgs[0])
	m.Update(msgs[0])

	lines := strings.Split(m.View(), "\n")
	require.NotEmpty(t, lines)
	frameWidth := ansi.StringWidth(lines[0])
	for _, l := range lines[:len(lines)-1] {
		assert.Equal(t, frameWidth, ansi.StringWidth(l))
	}
}

func TestParseNavigationVisibility(t *testing.T) {
	for _, v := range []NavigationVisibility{NavigationVisible, NavigationNotVisible, NavigationVisibleOnHover} {
		got, err := ParseNavigationVisibility(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
	_, err := ParseNavigationVisibility("sometimes")
	assert.Error(t, err)
}
