package layout

// WheelDelta is the wheel rotation of one notch.
const WheelDelta = 120

// Event is a host input routed to a container through [Container.Dispatch].
// It is implemented by [ResizeEvent], [ScrollEvent] and [WheelEvent].
type Event interface {
	event()
}

// ResizeEvent reports a new content size of the container's surface.
type ResizeEvent struct {
	Width, Height int
}

// ScrollEvent is a scroll bar command on one axis. Pos is only used by
// ScrollThumbTrack and ScrollThumbPosition.
type ScrollEvent struct {
	Axis    Axis
	Command ScrollCommand
	Pos     int
}

// WheelEvent is a mouse wheel rotation; Delta is in 1/WheelDelta notches,
// positive away from the user (up) or to the right.
type WheelEvent struct {
	Axis  Axis
	Delta int
}

func (ResizeEvent) event() {}
func (ScrollEvent) event() {}
func (WheelEvent) event()  {}

// ScrollCommand is a scroll bar action.
type ScrollCommand int

const (
	ScrollTop ScrollCommand = iota
	ScrollBottom
	ScrollLineUp
	ScrollLineDown
	ScrollPageUp
	ScrollPageDown
	ScrollThumbTrack
	ScrollThumbPosition
)

// Handler intercepts events before a container's default handling.
// Returning true marks the event as handled; the default handling is skipped
// and the event does not bubble.
type Handler interface {
	Handle(c *Container, ev Event) bool
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(c *Container, ev Event) bool

// Handle calls f(c, ev).
func (f HandlerFunc) Handle(c *Container, ev Event) bool { return f(c, ev) }
