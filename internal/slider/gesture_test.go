package slider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGestureThreshold(t *testing.T) {
	tests := []struct {
		name  string
		start int
		end   int
		want  int
	}{
		{name: "below threshold", start: 100, end: 51, want: 0},
		{name: "exactly threshold", start: 100, end: 50, want: 0},
		{name: "drag left past threshold", start: 100, end: 49, want: 1},
		{name: "drag right below threshold", start: 100, end: 149, want: 0},
		{name: "drag right past threshold", start: 100, end: 151, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var g gesture
			g.start(tt.start)
			g.move(tt.start + 3)
			g.move(tt.end)
			assert.Equal(t, tt.want, g.end(50))
		})
	}
}

func TestGestureWithoutMovementIsNoop(t *testing.T) {
	var g gesture
	g.start(10)
	assert.Equal(t, 0, g.end(0))
}

func TestGestureStateDoesNotLeak(t *testing.T) {
	var g gesture
	g.start(200)
	g.move(10)
	assert.Equal(t, 1, g.end(50))

	// a new sequence without moves must not reuse the previous lastX
	g.start(500)
	assert.Equal(t, 0, g.end(50))

	// end without start is ignored
	assert.Equal(t, 0, g.end(50))
	g.move(999)
	assert.False(t, g.active)
}
