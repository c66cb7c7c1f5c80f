package reveal

import (
	"fmt"
	"math"
	"strings"
)

// Defaults taken from the classic reveal controller.
const (
	DefaultRevealWidth     = 260.0
	DefaultRevealOverdraw  = 60.0
	DefaultThreshold       = 0.5
	DefaultPartialFraction = 0.25
	DefaultFlickVelocity   = 250.0
)

// SymmetryMode selects whether both sides share one configuration.
type SymmetryMode int

const (
	// SymmetryIndependent reads each side's own SideConfig.
	SymmetryIndependent SymmetryMode = iota
	// SymmetryMirrored applies the rear configuration to the right side with
	// the offset sign inverted.
	SymmetryMirrored
)

func (m SymmetryMode) String() string {
	if m == SymmetryMirrored {
		return "mirrored"
	}
	return "independent"
}

// ParseSymmetry accepts "independent" and "mirrored". An empty string is
// independent.
func ParseSymmetry(s string) (SymmetryMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "independent":
		return SymmetryIndependent, nil
	case "mirrored", "mirror", "symmetric":
		return SymmetryMirrored, nil
	}
	return SymmetryIndependent, fmt.Errorf("unknown symmetry mode %q", s)
}

// SymmetryFunc decides the symmetry mode when a side's policy is resolved.
type SymmetryFunc func(side Side) SymmetryMode

// SideConfig is the raw per-side configuration supplied by the adapter.
type SideConfig struct {
	Enabled        bool // a pane exists on this side
	RevealWidth    float64
	RevealOverdraw float64
	BounceBack     bool
	StableDrag     bool
	Elastic        bool // halve the travel past full reveal
}

// Geometry is the complete adapter-owned configuration read by the core.
type Geometry struct {
	Rear            SideConfig
	Right           SideConfig
	Symmetry        SymmetryMode
	Threshold       float64 // fraction of RevealWidth that reclassifies a drag
	PartialFraction float64 // fraction of RevealWidth used for partial positions
	FlickVelocity   float64 // release speed above which direction wins over distance
}

// DefaultGeometry returns a geometry with both panes enabled and the
// classic reveal defaults.
func DefaultGeometry() Geometry {
	side := SideConfig{
		Enabled:        true,
		RevealWidth:    DefaultRevealWidth,
		RevealOverdraw: DefaultRevealOverdraw,
		BounceBack:     true,
	}
	return Geometry{
		Rear:            side,
		Right:           side,
		Threshold:       DefaultThreshold,
		PartialFraction: DefaultPartialFraction,
		FlickVelocity:   DefaultFlickVelocity,
	}
}

// Policy is the resolved, immutable geometry of one side.
type Policy struct {
	Side           Side
	RevealWidth    float64
	RevealOverdraw float64
	BounceBack     bool
	StableDrag     bool
	Elastic        bool
}

// Enabled reports whether the side can be revealed at all.
func (p Policy) Enabled() bool { return p.RevealWidth > 0 }

// Max is the furthest the front pane may travel toward this side.
func (p Policy) Max() float64 { return p.RevealWidth + p.RevealOverdraw }

// Sign is the offset sign of the policy's side.
func (p Policy) Sign() float64 { return float64(p.Side.Sign()) }

// Resolve returns the policy for side using the geometry's own symmetry mode.
func (g Geometry) Resolve(side Side) Policy {
	return Resolve(g, side, g.Symmetry)
}

// Resolve builds the policy for side under mode. A side without a configured
// pane resolves to a zero-width policy, which disables it. In mirrored mode
// the right policy is the resolved rear policy with the side swapped, so a
// disabled rear pane disables both sides.
func Resolve(g Geometry, side Side, mode SymmetryMode) Policy {
	var cfg SideConfig
	switch side {
	case SideLeft:
		cfg = g.Rear
	case SideRight:
		if !g.Right.Enabled {
			return Policy{Side: side}
		}
		if mode == SymmetryMirrored {
			pol := Resolve(g, SideLeft, SymmetryIndependent)
			pol.Side = SideRight
			return pol
		}
		cfg = g.Right
	default:
		return Policy{Side: SideNone}
	}
	if !cfg.Enabled {
		return Policy{Side: side}
	}
	return Policy{
		Side:           side,
		RevealWidth:    nonNegative(cfg.RevealWidth),
		RevealOverdraw: nonNegative(cfg.RevealOverdraw),
		BounceBack:     cfg.BounceBack,
		StableDrag:     cfg.StableDrag,
		Elastic:        cfg.Elastic,
	}
}

func (g Geometry) threshold() float64 {
	t := unitInterval(g.Threshold)
	if t == 0 {
		return DefaultThreshold
	}
	return t
}

func (g Geometry) partialFraction() float64 {
	return unitInterval(g.PartialFraction)
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func unitInterval(v float64) float64 {
	v = nonNegative(v)
	if v > 1 {
		return 1
	}
	return v
}
