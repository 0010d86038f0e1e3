package slider

// AutoAdvanceMsg is delivered when the auto-advance timer fires
type AutoAdvanceMsg struct {
	ID  int
	tag int
}

// FrameMsg advances the transition animation by one frame
type FrameMsg struct {
	ID     int
	Ticket int
}

// TransitionEndMsg is the completion signal of an accepted move. Only the
// message carrying the outstanding ticket settles the slider.
type TransitionEndMsg struct {
	ID     int
	Ticket int
}

// PaintMsg marks the paint after a wrap jump; it re-enables animation
type PaintMsg struct {
	ID int
}
