package reveal

import "log/slog"

// DragState is the transient state of an in-flight drag.
type DragState struct {
	Active      bool
	Side        Side     // side currently engaged, SideNone at the origin
	X           float64  // last raw offset delivered by the gesture layer
	Offset      float64  // last clamped offset
	Origin      Position // resolved position when the drag began
	StartOffset float64
	Moved       bool // a sample arrived since the drag began
}

// ContainsFunc reports whether a press at column x of a front pane of the
// given width may start a drag.
type ContainsFunc func(x, width float64) bool

// DraggableBorder limits drag starts to a band of border units along both
// edges of the front pane. A border of zero or less accepts every point.
func DraggableBorder(border float64) ContainsFunc {
	return func(x, width float64) bool {
		if border <= 0 {
			return true
		}
		return x <= border || x >= width-border
	}
}

// Option configures a Reveal controller.
type Option func(*options)

type options struct {
	observer  Observer
	log       *slog.Logger
	exclusive bool
	strict    bool
	symmetry  SymmetryFunc
	contains  ContainsFunc
	initial   Position
}

// WithObserver sets the receiver of position, pane and bounce notifications.
func WithObserver(o Observer) Option { return func(opts *options) { opts.observer = o } }

// WithLogger sets the logger used for debug traces and contract warnings.
func WithLogger(l *slog.Logger) Option { return func(opts *options) { opts.log = l } }

// WithExclusive keeps at most one pane attached while no drag is active.
func WithExclusive(exclusive bool) Option {
	return func(opts *options) { opts.exclusive = exclusive }
}

// WithStrict makes unload contract violations return ErrPaneInUse.
func WithStrict(strict bool) Option { return func(opts *options) { opts.strict = strict } }

// WithSymmetry installs a late-bound symmetry strategy.
func WithSymmetry(fn SymmetryFunc) Option { return func(opts *options) { opts.symmetry = fn } }

// WithContains installs the drag-start hit test.
func WithContains(fn ContainsFunc) Option { return func(opts *options) { opts.contains = fn } }

// WithInitialPosition sets the position the controller starts in.
func WithInitialPosition(p Position) Option {
	return func(opts *options) { opts.initial = p }
}

// Reveal is the position state machine of a three-pane reveal layout. It is
// not safe for concurrent use; callers deliver gestures and programmatic
// requests from a single goroutine.
type Reveal struct {
	calc     Calculator
	panes    *Panes
	observer Observer
	log      *slog.Logger
	symmetry SymmetryFunc
	contains ContainsFunc

	position Position
	offset   float64
	drag     DragState
}

// New creates a controller at rest in the center (or the initial position
// option) with no pane attached.
func New(g Geometry, opts ...Option) *Reveal {
	o := options{initial: PositionCenter}
	for _, opt := range opts {
		opt(&o)
	}
	if o.observer == nil {
		o.observer = nopObserver{}
	}
	if o.log == nil {
		o.log = discardLogger()
	}
	if o.contains == nil {
		o.contains = DraggableBorder(0)
	}

	r := &Reveal{
		calc:     NewCalculator(g, o.symmetry),
		observer: o.observer,
		log:      o.log,
		symmetry: o.symmetry,
		contains: o.contains,
		position: PositionCenter,
	}
	r.panes = NewPanes(r.sideEnabled, o.observer, o.log)
	r.panes.Exclusive = o.exclusive
	r.panes.Strict = o.strict

	if o.initial != PositionCenter && o.initial != PositionNone {
		r.SetPosition(o.initial)
	}
	return r
}

func (r *Reveal) sideEnabled(side Side) bool {
	return r.calc.Policy(side).Enabled()
}

// Position returns the resolved position.
func (r *Reveal) Position() Position { return r.position }

// Offset returns the current front pane offset.
func (r *Reveal) Offset() float64 { return r.offset }

// Dragging reports whether a drag is in flight.
func (r *Reveal) Dragging() bool { return r.drag.Active }

// Drag returns a copy of the drag state.
func (r *Reveal) Drag() DragState { return r.drag }

// Attached reports whether side's pane content is attached.
func (r *Reveal) Attached(side Side) bool { return r.panes.Attached(side) }

// Policy returns the resolved geometry policy of side.
func (r *Reveal) Policy(side Side) Policy { return r.calc.Policy(side) }

// Geometry returns the active configuration.
func (r *Reveal) Geometry() Geometry { return r.calc.Geometry() }

// FrontLocation returns the offset the front pane rests at in position p.
func (r *Reveal) FrontLocation(p Position) float64 { return r.calc.FrontLocation(p) }

// Contains reports whether a press at x on a front pane of width may begin a
// drag. Outside the center every point may.
func (r *Reveal) Contains(x, width float64) bool {
	if r.position != PositionCenter {
		return true
	}
	return r.contains(x, width)
}

// BeginDrag starts a drag from the current offset. Starting while a drag is
// already active does nothing.
func (r *Reveal) BeginDrag() {
	if r.drag.Active {
		return
	}
	r.drag = DragState{
		Active:      true,
		Side:        r.position.Side(),
		X:           r.offset,
		Offset:      r.offset,
		Origin:      r.position,
		StartOffset: r.offset,
	}
	r.panes.Track(r.position, true)
	r.log.Debug("drag began", "position", r.position, "offset", r.offset)
}

// DragTo moves the front pane to raw offset x. The pane on the side being
// exposed is attached before the offset is applied. A drag is begun
// implicitly when none is active.
func (r *Reveal) DragTo(x float64) DragResult {
	if !r.drag.Active {
		r.BeginDrag()
	}
	res := r.calc.Drag(x)
	if res.Side != SideNone {
		r.prepare(res.Position, res.Side)
	}

	r.drag.Moved = true
	r.drag.X = x
	r.drag.Side = res.Side
	r.drag.Offset = res.Offset
	r.offset = res.Offset

	if r.stableDrag(res.Side) {
		res.Position = r.position
		return res
	}
	r.moveTo(res.Position, true)
	return res
}

// stableDrag reports whether reclassification is suspended for a drag
// engaging side. At the origin the side of the resolved position decides.
func (r *Reveal) stableDrag(side Side) bool {
	if side == SideNone {
		side = r.position.Side()
	}
	return side != SideNone && r.calc.Policy(side).StableDrag
}

// EndDrag releases the drag with the given horizontal velocity and resolves
// the front pane to a terminal position. Without an active drag it reports
// the current state. A drag that never received a sample settles back at
// its origin, like CancelDrag.
func (r *Reveal) EndDrag(velocity float64) Release {
	if !r.drag.Active {
		return Release{Position: r.position, Target: r.offset, Side: r.position.Side()}
	}
	if !r.drag.Moved {
		return r.CancelDrag()
	}
	rel := r.calc.Release(r.drag.X, velocity)
	if rel.Side != SideNone {
		r.prepare(rel.Position, rel.Side)
	}
	r.drag = DragState{}
	r.offset = rel.Target
	r.moveTo(rel.Position, true)
	r.panes.Settle(r.position)
	r.log.Debug("drag ended", "position", rel.Position, "target", rel.Target, "bounce", rel.BounceBack)
	if rel.BounceBack {
		r.observer.BounceBack(rel.Target)
	}
	return rel
}

// CancelDrag abandons the drag and returns the front pane to where it was
// when the drag began.
func (r *Reveal) CancelDrag() Release {
	if !r.drag.Active {
		return Release{Position: r.position, Target: r.offset, Side: r.position.Side()}
	}
	origin, start := r.drag.Origin, r.drag.StartOffset
	r.drag = DragState{}
	r.offset = start
	r.moveTo(origin, true)
	r.panes.Settle(r.position)
	r.log.Debug("drag cancelled", "position", origin)
	return Release{Position: origin, Target: start, Side: origin.Side()}
}

// SetPosition moves the front pane programmatically. Interactive transition
// rules do not apply, but a position on a side without a pane collapses to
// Center, and a partial or overdrawn position resolves the way a release at
// its location would. Any active drag is dropped. It returns the position
// applied.
func (r *Reveal) SetPosition(p Position) Position {
	if p == PositionNone {
		return r.position
	}
	if p.IsTransitional() {
		p = r.calc.Release(r.calc.FrontLocation(p), 0).Position
	}
	side := p.Side()
	if side != SideNone && !r.sideEnabled(side) {
		r.log.Debug("side disabled, staying centered", "requested", p)
		p = PositionCenter
		side = SideNone
	}
	r.drag = DragState{}
	r.prepare(p, side)
	r.offset = r.calc.FrontLocation(p)
	r.moveTo(p, false)
	r.panes.Settle(r.position)
	return r.position
}

// Toggle reveals the rear pane, or closes it when it is already exposed.
func (r *Reveal) Toggle() Position {
	if r.position.IsLeftSide() {
		return r.SetPosition(PositionCenter)
	}
	return r.SetPosition(PositionLeftRevealed)
}

// ToggleRight reveals the right pane, or closes it when it is already exposed.
func (r *Reveal) ToggleRight() Position {
	if r.position.IsRightSide() {
		return r.SetPosition(PositionCenter)
	}
	return r.SetPosition(PositionRightRevealed)
}

// Prepare attaches side's content ahead of a move to target.
func (r *Reveal) Prepare(target Position, side Side) error {
	return r.panes.Prepare(target, side)
}

// Unload detaches side's content. See Panes.Unload for the contract.
func (r *Reveal) Unload(side Side) error {
	return r.panes.Unload(side)
}

// SetGeometry swaps the configuration. A resolved position whose side lost
// its pane collapses to Center; otherwise a resting front pane is moved to
// its position's new location.
func (r *Reveal) SetGeometry(g Geometry) {
	r.calc = NewCalculator(g, r.symmetry)
	if side := r.position.Side(); side != SideNone && !r.sideEnabled(side) {
		r.log.Info("pane disabled by new geometry", "side", side)
		r.SetPosition(PositionCenter)
		return
	}
	if r.drag.Active {
		return
	}
	r.offset = r.calc.FrontLocation(r.position)
	r.panes.Settle(r.position)
}

// prepare attaches side ahead of a move to target. Internal moves always
// pair a target with its own side, so a failure is only logged.
func (r *Reveal) prepare(target Position, side Side) {
	if err := r.panes.Prepare(target, side); err != nil {
		r.log.Warn("prepare failed", "side", side, "target", target, "err", err)
	}
}

// moveTo is the edge detector: observers hear about a position only when it
// changes, and an interactive move across sides is split at Center.
func (r *Reveal) moveTo(to Position, interactive bool) {
	from := r.position
	if from == to {
		return
	}
	if interactive && !IsValidTransition(from, to) {
		r.position = PositionCenter
		r.observer.PositionChanged(from, PositionCenter, true)
		from = PositionCenter
	}
	r.position = to
	r.panes.Track(to, r.drag.Active)
	r.log.Debug("position changed", "from", from, "to", to, "interactive", interactive)
	r.observer.PositionChanged(from, to, interactive)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
