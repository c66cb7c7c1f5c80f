// Package trace stores scripted drag sessions as TOML and replays them
// through a reveal controller.
package trace

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/papapumpkin/reveal/internal/reveal"
)

// Step actions.
const (
	ActionBegin       = "begin"
	ActionDrag        = "drag"
	ActionEnd         = "end"
	ActionCancel      = "cancel"
	ActionSet         = "set"
	ActionToggle      = "toggle"
	ActionToggleRight = "toggle-right"
	ActionPrepare     = "prepare"
	ActionUnload      = "unload"
)

// Step is one scripted input.
type Step struct {
	Action   string  `toml:"action"`
	X        float64 `toml:"x,omitempty"`
	Velocity float64 `toml:"velocity,omitempty"`
	Position string  `toml:"position,omitempty"`
	Side     string  `toml:"side,omitempty"`
}

// Trace is an ordered list of steps.
type Trace struct {
	Name  string `toml:"name,omitempty"`
	Steps []Step `toml:"step"`
}

// Load reads a trace from path.
func Load(path string) (*Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading trace: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a TOML trace.
func Parse(data []byte) (*Trace, error) {
	var tr Trace
	if err := toml.Unmarshal(data, &tr); err != nil {
		return nil, fmt.Errorf("parsing trace: %w", err)
	}
	if err := tr.Validate(); err != nil {
		return nil, err
	}
	return &tr, nil
}

// Save writes the trace to path, creating parent directories as needed.
func Save(path string, tr *Trace) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	data, err := toml.Marshal(tr)
	if err != nil {
		return fmt.Errorf("marshaling trace: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing trace: %w", err)
	}
	return nil
}

// Validate checks every step's action and arguments.
func (tr *Trace) Validate() error {
	for i, s := range tr.Steps {
		if err := s.validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

func (s Step) validate() error {
	switch s.Action {
	case ActionBegin, ActionDrag, ActionEnd, ActionCancel, ActionToggle, ActionToggleRight:
		return nil
	case ActionSet:
		_, err := reveal.ParsePosition(s.Position)
		return err
	case ActionUnload:
		_, err := reveal.ParseSide(s.Side)
		return err
	case ActionPrepare:
		if _, err := reveal.ParsePosition(s.Position); err != nil {
			return err
		}
		_, err := reveal.ParseSide(s.Side)
		return err
	}
	return fmt.Errorf("unknown action %q", s.Action)
}

// Linear builds a trace that drags from one offset to another in evenly
// spaced samples and releases with the given velocity.
func Linear(from, to float64, samples int, velocity float64) *Trace {
	if samples < 1 {
		samples = 1
	}
	tr := &Trace{Name: fmt.Sprintf("drag %.0f to %.0f", from, to)}
	tr.Steps = append(tr.Steps, Step{Action: ActionBegin})
	for i := 1; i <= samples; i++ {
		x := from + (to-from)*float64(i)/float64(samples)
		tr.Steps = append(tr.Steps, Step{Action: ActionDrag, X: x})
	}
	tr.Steps = append(tr.Steps, Step{Action: ActionEnd, Velocity: velocity})
	return tr
}
