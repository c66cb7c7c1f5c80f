package reveal

// Observer receives the outbound notifications of a Reveal controller.
type Observer interface {
	// PositionChanged fires on every change of the resolved position.
	PositionChanged(from, to Position, interactive bool)
	// PaneAttached fires when a pane's content must be instantiated.
	PaneAttached(side Side, target Position)
	// PaneDetached fires when a pane's content may be released.
	PaneDetached(side Side)
	// BounceBack fires at drag end when the front pane must snap back from
	// overdraw to target.
	BounceBack(target float64)
}

// ObserverFuncs adapts optional callbacks to the Observer interface. Nil
// fields are skipped.
type ObserverFuncs struct {
	OnPositionChanged func(from, to Position, interactive bool)
	OnPaneAttached    func(side Side, target Position)
	OnPaneDetached    func(side Side)
	OnBounceBack      func(target float64)
}

func (f ObserverFuncs) PositionChanged(from, to Position, interactive bool) {
	if f.OnPositionChanged != nil {
		f.OnPositionChanged(from, to, interactive)
	}
}

func (f ObserverFuncs) PaneAttached(side Side, target Position) {
	if f.OnPaneAttached != nil {
		f.OnPaneAttached(side, target)
	}
}

func (f ObserverFuncs) PaneDetached(side Side) {
	if f.OnPaneDetached != nil {
		f.OnPaneDetached(side)
	}
}

func (f ObserverFuncs) BounceBack(target float64) {
	if f.OnBounceBack != nil {
		f.OnBounceBack(target)
	}
}

// Observers fans notifications out to several observers in order.
type Observers []Observer

func (o Observers) PositionChanged(from, to Position, interactive bool) {
	for _, ob := range o {
		ob.PositionChanged(from, to, interactive)
	}
}

func (o Observers) PaneAttached(side Side, target Position) {
	for _, ob := range o {
		ob.PaneAttached(side, target)
	}
}

func (o Observers) PaneDetached(side Side) {
	for _, ob := range o {
		ob.PaneDetached(side)
	}
}

func (o Observers) BounceBack(target float64) {
	for _, ob := range o {
		ob.BounceBack(target)
	}
}

// EventKind identifies a recorded notification.
type EventKind string

// Recorded notification kinds.
const (
	EventPosition EventKind = "position"
	EventAttach   EventKind = "attach"
	EventDetach   EventKind = "detach"
	EventBounce   EventKind = "bounce"
)

// Event is one recorded notification.
type Event struct {
	Kind        EventKind
	From        Position
	To          Position
	Side        Side
	Offset      float64
	Interactive bool
}

// Recorder is an Observer that keeps every notification in order.
type Recorder struct {
	Events []Event
}

func (r *Recorder) PositionChanged(from, to Position, interactive bool) {
	r.Events = append(r.Events, Event{Kind: EventPosition, From: from, To: to, Side: to.Side(), Interactive: interactive})
}

func (r *Recorder) PaneAttached(side Side, target Position) {
	r.Events = append(r.Events, Event{Kind: EventAttach, Side: side, To: target})
}

func (r *Recorder) PaneDetached(side Side) {
	r.Events = append(r.Events, Event{Kind: EventDetach, Side: side})
}

func (r *Recorder) BounceBack(target float64) {
	r.Events = append(r.Events, Event{Kind: EventBounce, Side: SideOf(target), Offset: target})
}

// Reset drops all recorded events.
func (r *Recorder) Reset() { r.Events = nil }

// Kinds returns the kinds of the recorded events, in order.
func (r *Recorder) Kinds() []EventKind {
	out := make([]EventKind, len(r.Events))
	for i, ev := range r.Events {
		out[i] = ev.Kind
	}
	return out
}

// Positions returns the target of every recorded position change.
func (r *Recorder) Positions() []Position {
	var out []Position
	for _, ev := range r.Events {
		if ev.Kind == EventPosition {
			out = append(out, ev.To)
		}
	}
	return out
}

type nopObserver struct{}

func (nopObserver) PositionChanged(Position, Position, bool) {}
func (nopObserver) PaneAttached(Side, Position)              {}
func (nopObserver) PaneDetached(Side)                        {}
func (nopObserver) BounceBack(float64)                       {}
