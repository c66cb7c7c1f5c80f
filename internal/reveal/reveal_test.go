package reveal

import (
	"errors"
	"slices"
	"testing"
)

func newTestReveal(g Geometry, opts ...Option) (*Reveal, *Recorder) {
	rec := &Recorder{}
	opts = append([]Option{WithObserver(rec), WithExclusive(true)}, opts...)
	return New(g, opts...), rec
}

func TestRevealDragOverdrawBounces(t *testing.T) {
	t.Parallel()
	r, rec := newTestReveal(DefaultGeometry())

	r.BeginDrag()
	for _, x := range []float64{40, 200, 300} {
		r.DragTo(x)
	}
	if r.Position() != PositionLeftOverdrawn || r.Offset() != 300 {
		t.Fatalf("mid-drag state = %s @ %v, want left-overdrawn @ 300", r.Position(), r.Offset())
	}
	rel := r.EndDrag(0)
	if rel.Position != PositionLeftRevealed || rel.Target != 260 || !rel.BounceBack {
		t.Errorf("EndDrag = %+v", rel)
	}
	if r.Offset() != 260 || r.Dragging() {
		t.Errorf("after release offset=%v dragging=%v", r.Offset(), r.Dragging())
	}

	want := []EventKind{EventAttach, EventPosition, EventPosition, EventPosition, EventPosition, EventBounce}
	if !slices.Equal(rec.Kinds(), want) {
		t.Fatalf("events = %v, want %v", rec.Kinds(), want)
	}
	wantPos := []Position{PositionLeftPartial, PositionLeftRevealed, PositionLeftOverdrawn, PositionLeftRevealed}
	if !slices.Equal(rec.Positions(), wantPos) {
		t.Errorf("positions = %v, want %v", rec.Positions(), wantPos)
	}
	if bounce := rec.Events[len(rec.Events)-1]; bounce.Offset != 260 {
		t.Errorf("bounce target = %v, want 260", bounce.Offset)
	}
}

func TestRevealEdgeDetectorIgnoresRepeatedSamples(t *testing.T) {
	t.Parallel()
	r, rec := newTestReveal(DefaultGeometry())
	for x := 150.0; x <= 250; x += 5 {
		r.DragTo(x)
	}
	if got := rec.Positions(); !slices.Equal(got, []Position{PositionLeftRevealed}) {
		t.Errorf("positions = %v, want a single left-revealed edge", got)
	}
}

func TestRevealStableDragHoldsPosition(t *testing.T) {
	t.Parallel()
	g := DefaultGeometry()
	g.Rear.StableDrag = true
	r, rec := newTestReveal(g)

	r.BeginDrag()
	for x := 5.0; x <= 250; x += 5 {
		res := r.DragTo(x)
		if res.Position != PositionCenter || r.Position() != PositionCenter {
			t.Fatalf("DragTo(%v) reclassified to %s during a stable drag", x, r.Position())
		}
	}
	if len(rec.Positions()) != 0 {
		t.Fatalf("position events during stable drag: %v", rec.Positions())
	}
	if !r.Attached(SideLeft) {
		t.Error("rear pane should be attached while being exposed")
	}

	rel := r.EndDrag(0)
	if rel.Position != PositionLeftRevealed {
		t.Errorf("release = %s, want left-revealed", rel.Position)
	}
	if got := rec.Positions(); !slices.Equal(got, []Position{PositionLeftRevealed}) {
		t.Errorf("positions = %v", got)
	}
}

func TestRevealCrossingSidesPassesCenter(t *testing.T) {
	t.Parallel()
	r, rec := newTestReveal(DefaultGeometry())

	r.DragTo(200)
	r.DragTo(-200)
	if !r.Attached(SideLeft) || !r.Attached(SideRight) {
		t.Error("both panes should be attached mid-drag across center")
	}

	for _, ev := range rec.Events {
		if ev.Kind == EventPosition && !IsValidTransition(ev.From, ev.To) {
			t.Errorf("illegal interactive transition %s -> %s", ev.From, ev.To)
		}
	}
	wantPos := []Position{PositionLeftRevealed, PositionCenter, PositionRightRevealed}
	if !slices.Equal(rec.Positions(), wantPos) {
		t.Errorf("positions = %v, want %v", rec.Positions(), wantPos)
	}

	r.EndDrag(0)
	if r.Attached(SideLeft) {
		t.Error("exclusive mode should detach the rear pane after settling right")
	}
	if !r.Attached(SideRight) {
		t.Error("right pane should stay attached")
	}
	if r.Offset() != -260 {
		t.Errorf("offset = %v, want -260", r.Offset())
	}
}

func TestRevealCancelDragRestoresOrigin(t *testing.T) {
	t.Parallel()
	r, rec := newTestReveal(DefaultGeometry())
	r.SetPosition(PositionLeftRevealed)
	rec.Reset()

	r.BeginDrag()
	r.DragTo(20)
	r.DragTo(-100)
	rel := r.CancelDrag()
	if rel.Position != PositionLeftRevealed || rel.Target != 260 {
		t.Errorf("CancelDrag = %+v", rel)
	}
	if r.Position() != PositionLeftRevealed || r.Offset() != 260 || r.Dragging() {
		t.Errorf("state after cancel = %s @ %v dragging=%v", r.Position(), r.Offset(), r.Dragging())
	}
	if r.Attached(SideRight) {
		t.Error("right pane attached by the cancelled drag should be released")
	}
	if last := rec.Positions(); last[len(last)-1] != PositionLeftRevealed {
		t.Errorf("last position event = %s", last[len(last)-1])
	}
}

func TestRevealUnconfiguredRightNeverAttaches(t *testing.T) {
	t.Parallel()
	g := DefaultGeometry()
	g.Right = SideConfig{}
	r, rec := newTestReveal(g)

	res := r.DragTo(-150)
	if res.Offset != 0 || res.Side != SideNone || r.Position() != PositionCenter {
		t.Errorf("DragTo(-150) = %+v at %s", res, r.Position())
	}
	r.EndDrag(-2000)
	for _, ev := range rec.Events {
		if ev.Side == SideRight {
			t.Errorf("unexpected right-side event %+v", ev)
		}
	}
	if got := r.SetPosition(PositionRightRevealed); got != PositionCenter {
		t.Errorf("SetPosition(right-revealed) on a disabled side = %s, want center", got)
	}
	if got := r.ToggleRight(); got != PositionCenter {
		t.Errorf("ToggleRight on a disabled side = %s, want center", got)
	}
}

func TestRevealUnloadStrictAndLenient(t *testing.T) {
	t.Parallel()
	strict, _ := newTestReveal(DefaultGeometry(), WithStrict(true))
	strict.SetPosition(PositionLeftRevealed)
	if err := strict.Unload(SideLeft); !errors.Is(err, ErrPaneInUse) {
		t.Errorf("strict Unload of exposed pane = %v, want ErrPaneInUse", err)
	}
	if !strict.Attached(SideLeft) {
		t.Error("rejected unload must keep the pane attached")
	}

	lenient, _ := newTestReveal(DefaultGeometry(), WithExclusive(false))
	lenient.SetPosition(PositionLeftRevealed)
	lenient.SetPosition(PositionCenter)
	lenient.BeginDrag()
	if err := lenient.Unload(SideLeft); err != nil {
		t.Errorf("lenient Unload during drag = %v, want nil", err)
	}
	if !lenient.Attached(SideLeft) {
		t.Error("unload during a drag must be a no-op")
	}
	lenient.EndDrag(0)
	if err := lenient.Unload(SideLeft); err != nil || lenient.Attached(SideLeft) {
		t.Errorf("Unload of hidden pane: err=%v attached=%v", err, lenient.Attached(SideLeft))
	}
}

func TestRevealProgrammaticPositions(t *testing.T) {
	t.Parallel()
	r, rec := newTestReveal(DefaultGeometry())

	if got := r.SetPosition(PositionRightRemoved); got != PositionRightRemoved {
		t.Fatalf("SetPosition = %s", got)
	}
	if r.Offset() != -320 {
		t.Errorf("offset = %v, want -320", r.Offset())
	}
	r.SetPosition(PositionLeftRevealed)
	ev := rec.Events[len(rec.Events)-2:]
	if ev[0].Kind != EventPosition || ev[0].From != PositionRightRemoved || ev[0].To != PositionLeftRevealed || ev[0].Interactive {
		t.Errorf("programmatic move should jump sides without a center edge: %+v", ev[0])
	}
	if r.SetPosition(PositionNone) != PositionLeftRevealed {
		t.Error("SetPosition(none) should be ignored")
	}
}

func TestRevealToggles(t *testing.T) {
	t.Parallel()
	r, _ := newTestReveal(DefaultGeometry())
	steps := []struct {
		act  func() Position
		want Position
	}{
		{r.Toggle, PositionLeftRevealed},
		{r.Toggle, PositionCenter},
		{r.ToggleRight, PositionRightRevealed},
		{r.Toggle, PositionLeftRevealed},
		{r.ToggleRight, PositionRightRevealed},
		{r.ToggleRight, PositionCenter},
	}
	for i, s := range steps {
		if got := s.act(); got != s.want {
			t.Fatalf("step %d = %s, want %s", i, got, s.want)
		}
		if !r.Position().IsTerminal() {
			t.Fatalf("step %d left a transitional position", i)
		}
	}
}

func TestRevealSetGeometry(t *testing.T) {
	t.Parallel()
	r, _ := newTestReveal(DefaultGeometry())
	r.SetPosition(PositionLeftRevealed)

	g := DefaultGeometry()
	g.Rear.RevealWidth = 200
	r.SetGeometry(g)
	if r.Offset() != 200 || r.Position() != PositionLeftRevealed {
		t.Errorf("after width change: %s @ %v", r.Position(), r.Offset())
	}

	g.Rear.Enabled = false
	r.SetGeometry(g)
	if r.Position() != PositionCenter || r.Offset() != 0 {
		t.Errorf("disabling the rear pane should center: %s @ %v", r.Position(), r.Offset())
	}
	if r.Attached(SideLeft) {
		t.Error("disabled rear pane still attached")
	}
}

func TestRevealInitialPositionAndContains(t *testing.T) {
	t.Parallel()
	r, _ := newTestReveal(DefaultGeometry(),
		WithInitialPosition(PositionRightRevealed),
		WithContains(DraggableBorder(4)))
	if r.Position() != PositionRightRevealed || !r.Attached(SideRight) {
		t.Fatalf("initial state = %s attached=%v", r.Position(), r.Attached(SideRight))
	}
	if !r.Contains(40, 80) {
		t.Error("off-center pane should accept drags anywhere")
	}
	r.SetPosition(PositionCenter)
	tests := []struct {
		x    float64
		want bool
	}{
		{2, true},
		{40, false},
		{77, true},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, 80); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestRevealMirroredSymmetryStrategy(t *testing.T) {
	t.Parallel()
	g := DefaultGeometry()
	g.Right.RevealWidth = 90
	r, _ := newTestReveal(g, WithSymmetry(func(Side) SymmetryMode { return SymmetryMirrored }))
	if got := r.FrontLocation(PositionRightRevealed); got != -260 {
		t.Errorf("FrontLocation(right-revealed) = %v, want -260", got)
	}
	if got := r.Policy(SideRight).RevealWidth; got != 260 {
		t.Errorf("right policy width = %v, want 260", got)
	}
}

func TestRevealSetPositionResolvesTransitional(t *testing.T) {
	t.Parallel()
	tests := []struct {
		req    Position
		want   Position
		offset float64
	}{
		{PositionLeftPartial, PositionCenter, 0},
		{PositionRightPartial, PositionCenter, 0},
		{PositionLeftOverdrawn, PositionLeftRevealed, 260},
		{PositionRightOverdrawn, PositionRightRevealed, -260},
		{PositionLeftRemoved, PositionLeftRemoved, 320},
	}
	for _, tt := range tests {
		t.Run(tt.req.String(), func(t *testing.T) {
			t.Parallel()
			r, _ := newTestReveal(DefaultGeometry())
			if got := r.SetPosition(tt.req); got != tt.want || r.Offset() != tt.offset {
				t.Errorf("SetPosition(%s) = %s @ %v, want %s @ %v", tt.req, got, r.Offset(), tt.want, tt.offset)
			}
			if r.Position().IsTransitional() {
				t.Errorf("%s left at rest", r.Position())
			}
		})
	}
}

func TestRevealReleaseWithoutSamplesKeepsOrigin(t *testing.T) {
	t.Parallel()
	r, rec := newTestReveal(DefaultGeometry())
	r.SetPosition(PositionLeftRemoved)
	rec.Reset()

	r.BeginDrag()
	rel := r.EndDrag(0)
	if rel.Position != PositionLeftRemoved || rel.BounceBack || r.Offset() != 320 {
		t.Errorf("EndDrag without samples = %+v @ %v, want left-removed @ 320", rel, r.Offset())
	}
	if len(rec.Events) != 0 {
		t.Errorf("unexpected events %+v", rec.Events)
	}
}

func TestRevealFlickFromCenterAttachesPane(t *testing.T) {
	t.Parallel()
	r, rec := newTestReveal(DefaultGeometry())

	r.BeginDrag()
	r.DragTo(-40)
	r.DragTo(0)
	rel := r.EndDrag(800)
	if rel.Position != PositionLeftRevealed || r.Offset() != 260 {
		t.Fatalf("flick from center = %+v @ %v, want left-revealed @ 260", rel, r.Offset())
	}
	if !r.Attached(SideLeft) || r.Attached(SideRight) {
		t.Errorf("attached left=%v right=%v, want only left", r.Attached(SideLeft), r.Attached(SideRight))
	}

	attachAt, revealAt := -1, -1
	for i, ev := range rec.Events {
		switch {
		case ev.Kind == EventAttach && ev.Side == SideLeft:
			attachAt = i
		case ev.Kind == EventPosition && ev.To == PositionLeftRevealed:
			revealAt = i
		}
	}
	if attachAt < 0 || attachAt > revealAt {
		t.Errorf("rear pane must attach before it is revealed: %+v", rec.Events)
	}
}
