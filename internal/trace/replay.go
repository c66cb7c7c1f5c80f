package trace

import (
	"github.com/papapumpkin/reveal/internal/reveal"
)

// StepResult is what a single step produced.
type StepResult struct {
	Index   int
	Step    Step
	Events  []reveal.Event
	Release *reveal.Release // set by end and cancel steps
	Err     error           // contract violations reported by the controller
}

// Result is the outcome of a replay.
type Result struct {
	Steps  []StepResult
	Reveal *reveal.Reveal
}

// Events flattens the events of every step.
func (r *Result) Events() []reveal.Event {
	var out []reveal.Event
	for _, s := range r.Steps {
		out = append(out, s.Events...)
	}
	return out
}

// Replay runs tr against a new controller built from g and opts. Extra, when
// non-nil, receives every notification as well.
func Replay(tr *Trace, g reveal.Geometry, extra reveal.Observer, opts ...reveal.Option) (*Result, error) {
	if err := tr.Validate(); err != nil {
		return nil, err
	}
	rec := &reveal.Recorder{}
	var observer reveal.Observer = rec
	if extra != nil {
		observer = reveal.Observers{rec, extra}
	}
	opts = append(opts, reveal.WithObserver(observer))
	r := reveal.New(g, opts...)

	res := &Result{Reveal: r}
	for i, s := range tr.Steps {
		rec.Reset()
		sr := StepResult{Index: i + 1, Step: s}
		switch s.Action {
		case ActionBegin:
			r.BeginDrag()
		case ActionDrag:
			r.DragTo(s.X)
		case ActionEnd:
			rel := r.EndDrag(s.Velocity)
			sr.Release = &rel
		case ActionCancel:
			rel := r.CancelDrag()
			sr.Release = &rel
		case ActionSet:
			p, _ := reveal.ParsePosition(s.Position)
			r.SetPosition(p)
		case ActionToggle:
			r.Toggle()
		case ActionToggleRight:
			r.ToggleRight()
		case ActionPrepare:
			p, _ := reveal.ParsePosition(s.Position)
			side, _ := reveal.ParseSide(s.Side)
			sr.Err = r.Prepare(p, side)
		case ActionUnload:
			side, _ := reveal.ParseSide(s.Side)
			sr.Err = r.Unload(side)
		}
		sr.Events = append([]reveal.Event(nil), rec.Events...)
		res.Steps = append(res.Steps, sr)
	}
	return res, nil
}
