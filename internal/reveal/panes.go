package reveal

import (
	"fmt"
	"log/slog"
)

// Panes tracks whether the rear and right pane contents are attached. It is
// the only component that mutates attachment; adapters learn about changes
// through the Observer.
type Panes struct {
	attached [2]bool

	// Exclusive detaches every side the resolved position does not expose
	// when the layout settles.
	Exclusive bool
	// Strict turns unload contract violations into ErrPaneInUse instead of
	// a logged no-op.
	Strict bool

	enabled  func(Side) bool
	observer Observer
	log      *slog.Logger

	resolved Position
	dragging bool
}

// NewPanes returns a manager with nothing attached. enabled reports whether
// a side has a pane that can be revealed; nil treats both sides as enabled.
func NewPanes(enabled func(Side) bool, observer Observer, log *slog.Logger) *Panes {
	if enabled == nil {
		enabled = func(s Side) bool { return s != SideNone }
	}
	if observer == nil {
		observer = nopObserver{}
	}
	if log == nil {
		log = discardLogger()
	}
	return &Panes{
		enabled:  enabled,
		observer: observer,
		log:      log,
		resolved: PositionCenter,
	}
}

// Attached reports whether side's content is attached.
func (p *Panes) Attached(side Side) bool {
	if side == SideNone {
		return false
	}
	return p.attached[side.index()]
}

// Track records the resolved position and drag state that unload requests
// are checked against.
func (p *Panes) Track(resolved Position, dragging bool) {
	p.resolved = resolved
	p.dragging = dragging
}

// Prepare attaches side's content ahead of a move to target. It must run
// before any offset exposing side is applied. Preparing an attached side or
// a side without a pane does nothing. A target on the opposite side returns
// ErrSideMismatch and attaches nothing.
func (p *Panes) Prepare(target Position, side Side) error {
	if ts := target.Side(); ts != SideNone && side != SideNone && ts != side {
		return fmt.Errorf("prepare %s pane for %s: %w", side, target, ErrSideMismatch)
	}
	if side == SideNone || !p.enabled(side) {
		return nil
	}
	if p.Attached(side) {
		return nil
	}
	p.attached[side.index()] = true
	p.log.Debug("pane attached", "side", side, "target", target)
	p.observer.PaneAttached(side, target)
	return nil
}

// Unload detaches side's content. Calling it while the resolved position
// exposes side, or while a drag is active, violates the caller contract.
func (p *Panes) Unload(side Side) error {
	if side == SideNone || !p.Attached(side) {
		return nil
	}
	if p.resolved.Side() == side || p.dragging {
		err := fmt.Errorf("unload %s pane at %s (dragging=%t): %w", side, p.resolved, p.dragging, ErrPaneInUse)
		if p.Strict {
			return err
		}
		p.log.Warn("ignoring unload of pane in use", "side", side, "position", p.resolved, "dragging", p.dragging)
		return nil
	}
	p.detach(side)
	return nil
}

// Settle applies exclusivity once the front pane rests at resolved.
func (p *Panes) Settle(resolved Position) {
	p.Track(resolved, false)
	for _, side := range Sides {
		if !p.Attached(side) {
			continue
		}
		if !p.enabled(side) {
			p.detach(side)
			continue
		}
		if p.Exclusive && resolved.Side() != side {
			p.detach(side)
		}
	}
}

func (p *Panes) detach(side Side) {
	p.attached[side.index()] = false
	p.log.Debug("pane detached", "side", side)
	p.observer.PaneDetached(side)
}
