package tui

import (
	"fmt"

	"github.com/papapumpkin/reveal/internal/reveal"
)

// maxLogLines caps the front pane history.
const maxLogLines = 200

// EventLog records controller notifications as display lines. It is shared
// by pointer between the model and the controller it observes.
type EventLog struct {
	Lines   []string
	Bounces int
}

func (l *EventLog) add(format string, args ...any) {
	l.Lines = append(l.Lines, fmt.Sprintf(format, args...))
	if n := len(l.Lines) - maxLogLines; n > 0 {
		l.Lines = l.Lines[n:]
	}
}

func (l *EventLog) PositionChanged(from, to reveal.Position, interactive bool) {
	how := "set"
	if interactive {
		how = "drag"
	}
	l.add("%-5s %s → %s", how, from, to)
}

func (l *EventLog) PaneAttached(side reveal.Side, target reveal.Position) {
	l.add("attach %s pane (for %s)", side, target)
}

func (l *EventLog) PaneDetached(side reveal.Side) {
	l.add("detach %s pane", side)
}

func (l *EventLog) BounceBack(target float64) {
	l.Bounces++
	l.add("bounce back to %.0f", target)
}
