// Package telemetry records reveal controller notifications as a JSONL
// event stream, so drag sessions can be audited and compared after the fact.
package telemetry

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/papapumpkin/reveal/internal/reveal"
)

// Event kinds mirror the controller's outbound notifications.
const (
	KindPosition = "position"
	KindAttach   = "attach"
	KindDetach   = "detach"
	KindBounce   = "bounce"
)

// Event represents a single telemetry record.
type Event struct {
	Timestamp   time.Time `json:"ts"`
	Kind        string    `json:"kind"`
	From        string    `json:"from,omitempty"`
	To          string    `json:"to,omitempty"`
	Side        string    `json:"side,omitempty"`
	Offset      float64   `json:"offset,omitempty"`
	Interactive bool      `json:"interactive,omitempty"`
}

// Emitter writes telemetry events to a JSONL file. It is safe for concurrent
// use by multiple goroutines. A nil *Emitter is a valid no-op emitter.
type Emitter struct {
	file *os.File
	enc  *json.Encoder
	mu   sync.Mutex
}

// NewEmitter creates a new Emitter that writes JSONL events to the file at
// path. The file is created if it does not exist, or appended to if it does.
func NewEmitter(path string) (*Emitter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("telemetry: open %s: %w", path, err)
	}
	return &Emitter{
		file: f,
		enc:  json.NewEncoder(f),
	}, nil
}

// Emit writes a single event to the JSONL file. It is safe for concurrent use.
// Calling Emit on a nil Emitter is a no-op.
func (e *Emitter) Emit(evt Event) error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.enc.Encode(evt); err != nil {
		return fmt.Errorf("telemetry: encode event: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying file. Calling Close on a nil
// Emitter is a no-op.
func (e *Emitter) Close() error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.file.Close(); err != nil {
		return fmt.Errorf("telemetry: close: %w", err)
	}
	return nil
}

// Observer adapts an Emitter to reveal.Observer. Encoding failures are
// logged rather than returned because observers cannot fail.
type Observer struct {
	Emitter *Emitter
	Log     *slog.Logger
	Now     func() time.Time
}

// NewObserver returns an Observer stamping events with the wall clock.
func NewObserver(em *Emitter, log *slog.Logger) *Observer {
	return &Observer{Emitter: em, Log: log, Now: time.Now}
}

func (o *Observer) PositionChanged(from, to reveal.Position, interactive bool) {
	o.emit(Event{Kind: KindPosition, From: from.String(), To: to.String(), Side: to.Side().String(), Interactive: interactive})
}

func (o *Observer) PaneAttached(side reveal.Side, target reveal.Position) {
	o.emit(Event{Kind: KindAttach, Side: side.String(), To: target.String()})
}

func (o *Observer) PaneDetached(side reveal.Side) {
	o.emit(Event{Kind: KindDetach, Side: side.String()})
}

func (o *Observer) BounceBack(target float64) {
	o.emit(Event{Kind: KindBounce, Side: reveal.SideOf(target).String(), Offset: target})
}

func (o *Observer) emit(evt Event) {
	if o.Now != nil {
		evt.Timestamp = o.Now()
	}
	if err := o.Emitter.Emit(evt); err != nil && o.Log != nil {
		o.Log.Error("telemetry emit failed", "kind", evt.Kind, "err", err)
	}
}
