package slider

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// NavigationVisibility controls whether the previous/next affordances render
type NavigationVisibility int

const (
	NavigationVisible NavigationVisibility = iota
	NavigationNotVisible
	NavigationVisibleOnHover
)

func (v NavigationVisibility) String() string {
	switch v {
	case NavigationNotVisible:
		return "not-visible"
	case NavigationVisibleOnHover:
		return "visible-on-hover"
	default:
		return "visible"
	}
}

// ParseNavigationVisibility parses the config spelling of a visibility mode
func ParseNavigationVisibility(s string) (NavigationVisibility, error) {
	switch s {
	case "", "visible":
		return NavigationVisible, nil
	case "not-visible":
		return NavigationNotVisible, nil
	case "visible-on-hover":
		return NavigationVisibleOnHover, nil
	}
	return NavigationVisible, fmt.Errorf("unknown navigation visibility %q", s)
}

// Slide is an opaque displayable unit. The slider only cares about its
// position in the sequence; the Renderer decides what it looks like.
type Slide struct {
	ID  string
	Src string
	Alt string
}

// Renderer draws a slide into a width x height block
type Renderer func(s Slide, width, height int) string

// Default option values
const (
	DefaultAutoSlideInterval  = 3000 * time.Millisecond
	DefaultTouchThreshold     = 50
	DefaultTransitionDuration = 500 * time.Millisecond
	DefaultFrameInterval      = 50 * time.Millisecond
)

// Options configures a slider instance
type Options struct {
	AutoPlay          bool
	Circular          bool
	AutoSlideInterval time.Duration
	Navigation        NavigationVisibility
	// AutoPlayOnHover takes precedence over AutoPlay: when set, auto-advance
	// only runs while the pointer is over the component.
	AutoPlayOnHover bool
	TouchThreshold  int
	SwipeSupported  bool

	TransitionDuration time.Duration
	FrameInterval      time.Duration

	Renderer Renderer
	Logger   *zap.Logger
}

// DefaultOptions returns the documented defaults
func DefaultOptions() Options {
	return Options{
		AutoPlay:           true,
		Circular:           true,
		AutoSlideInterval:  DefaultAutoSlideInterval,
		Navigation:         NavigationVisible,
		AutoPlayOnHover:    false,
		TouchThreshold:     DefaultTouchThreshold,
		SwipeSupported:     true,
		TransitionDuration: DefaultTransitionDuration,
		FrameInterval:      DefaultFrameInterval,
	}
}

func (o Options) normalized() Options {
	if o.FrameInterval <= 0 {
		o.FrameInterval = DefaultFrameInterval
	}
	if o.TransitionDuration < 0 {
		o.TransitionDuration = 0
	}
	if o.TouchThreshold < 0 {
		o.TouchThreshold = 0
	}
	if o.Renderer == nil {
		o.Renderer = PlainRenderer
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}
