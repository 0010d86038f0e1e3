package slider

// gesture holds the samples of one touch sequence
type gesture struct {
	startX int
	lastX  int
	active bool
}

func (g *gesture) start(x int) {
	g.startX = x
	g.lastX = x
	g.active = true
}

func (g *gesture) move(x int) {
	if g.active {
		g.lastX = x
	}
}

// end resolves the gesture to +1 (advance), -1 (retreat) or 0 and forgets
// the samples regardless of outcome.
func (g *gesture) end(threshold int) int {
	if !g.active {
		return 0
	}
	delta := g.startX - g.lastX
	*g = gesture{}
	switch {
	case delta > threshold:
		return 1
	case delta < -threshold:
		return -1
	}
	return 0
}
