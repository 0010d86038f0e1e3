package slider

import "fmt"

const (
	copyKeyLast  = "lastcopy"
	copyKeyFirst = "firstcopy"
)

// track owns the slide index and the in-flight flag. Nothing else in the
// package writes index or transitioning directly.
type track struct {
	slides   []Slide // padded with a copy of the last and first slide when circular
	count    int     // number of real slides
	circular bool

	index         int
	from          int // index the in-flight move started from
	transitioning bool
	ticket        int // completion token of the outstanding move

	// suppressed is set by a wrap jump and cleared on the next paint so the
	// jump itself is never interpolated.
	suppressed bool
}

func newTrack(slides []Slide, circular bool) track {
	t := track{
		slides:   padSlides(slides, circular),
		count:    len(slides),
		circular: circular,
	}
	if circular && t.count > 0 {
		t.index = 1
	}
	t.from = t.index
	return t
}

func padSlides(slides []Slide, circular bool) []Slide {
	if !circular || len(slides) == 0 {
		out := make([]Slide, len(slides))
		copy(out, slides)
		return out
	}
	out := make([]Slide, 0, len(slides)+2)
	out = append(out, slides[len(slides)-1])
	out = append(out, slides...)
	out = append(out, slides[0])
	return out
}

// key returns a stable identity for the slide at a padded index
func (t track) key(i int) string {
	if t.circular && t.count > 0 {
		switch i {
		case 0:
			return copyKeyLast
		case len(t.slides) - 1:
			return copyKeyFirst
		}
	}
	return fmt.Sprintf("default-%d", i)
}

// request applies delta when idle. Out-of-range targets are dropped, which
// clamps non-circular sequences at their ends.
func (t *track) request(delta int) (int, bool) {
	if t.transitioning || t.count == 0 || delta == 0 {
		return 0, false
	}
	next := t.index + delta
	if next < 0 || next >= len(t.slides) {
		return 0, false
	}
	t.from = t.index
	t.index = next
	t.transitioning = true
	t.ticket++
	return t.ticket, true
}

// settle consumes the completion for ticket. It reports whether the ticket
// was the outstanding one and whether a wrap jump was applied.
func (t *track) settle(ticket int) (settled, wrapped bool) {
	if !t.transitioning || ticket != t.ticket {
		return false, false
	}
	t.transitioning = false
	if t.circular {
		switch t.index {
		case 0:
			t.index = len(t.slides) - 2
			wrapped = true
		case len(t.slides) - 1:
			t.index = 1
			wrapped = true
		}
	}
	if wrapped {
		t.suppressed = true
	}
	t.from = t.index
	return true, wrapped
}

// paint lifts the animation suppression left by a wrap jump
func (t *track) paint() bool {
	was := t.suppressed
	t.suppressed = false
	return was
}

func (t track) canGoNext() bool {
	if t.count == 0 {
		return false
	}
	return t.circular || t.index < t.count-1
}

func (t track) canGoPrevious() bool {
	if t.count == 0 {
		return false
	}
	return t.circular || t.index > 0
}

// realIndex maps the padded index onto [0, count)
func (t track) realIndex() int {
	if t.count == 0 {
		return 0
	}
	if !t.circular {
		return t.index
	}
	return ((t.index-1)%t.count + t.count) % t.count
}
