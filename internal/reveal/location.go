package reveal

import "math"

// DragResult is the outcome of placing the front pane at a raw drag offset.
type DragResult struct {
	Offset    float64 // clamped front pane offset
	Side      Side
	Position  Position // classification by distance
	Overdrawn bool     // past full reveal; release may bounce back
}

// Release is the outcome of ending a drag.
type Release struct {
	Position   Position // always terminal
	Target     float64  // offset the front pane should settle at
	Side       Side
	BounceBack bool // the pane was overdrawn and must snap back to Target
}

// Calculator maps between logical positions and front pane offsets. It holds
// no state besides its geometry and symmetry strategy, so every method is a
// pure function of its inputs.
type Calculator struct {
	geometry Geometry
	symmetry SymmetryFunc
}

// NewCalculator returns a calculator over g. A nil symmetry strategy uses
// g.Symmetry for both sides.
func NewCalculator(g Geometry, symmetry SymmetryFunc) Calculator {
	return Calculator{geometry: g, symmetry: symmetry}
}

// Geometry returns the configuration the calculator was built with.
func (c Calculator) Geometry() Geometry { return c.geometry }

// Policy resolves the geometry for side.
func (c Calculator) Policy(side Side) Policy {
	mode := c.geometry.Symmetry
	if c.symmetry != nil {
		mode = c.symmetry(side)
	}
	return Resolve(c.geometry, side, mode)
}

// FrontLocation returns the front pane offset for p. Positions on a disabled
// side map to zero.
func (c Calculator) FrontLocation(p Position) float64 {
	pol := c.Policy(p.Side())
	if !pol.Enabled() {
		return 0
	}
	var dist float64
	switch p.Depth() {
	case DepthPartial:
		dist = math.Min(c.geometry.partialFraction()*pol.RevealWidth, pol.Max())
	case DepthRevealed:
		dist = pol.RevealWidth
	case DepthOverdrawn, DepthRemoved:
		dist = pol.Max()
	}
	return dist * pol.Sign()
}

// Drag clamps a raw front pane offset against the policy of the side it
// moves toward and classifies it by distance.
func (c Calculator) Drag(x float64) DragResult {
	side := SideOf(x)
	if math.IsNaN(x) {
		side = SideNone
	}
	pol := c.Policy(side)
	if !pol.Enabled() {
		return DragResult{Position: PositionCenter}
	}

	a := c.travel(math.Abs(x), pol)
	res := DragResult{
		Offset: a * pol.Sign(),
		Side:   side,
	}
	switch {
	case a == 0:
		res.Side = SideNone
		res.Position = PositionCenter
	case a < c.geometry.threshold()*pol.RevealWidth:
		res.Position = PositionFor(side, DepthPartial)
	case a <= pol.RevealWidth:
		res.Position = PositionFor(side, DepthRevealed)
	default:
		res.Position = PositionFor(side, DepthOverdrawn)
		res.Overdrawn = true
	}
	return res
}

// travel converts an unsigned drag distance into the distance the front
// pane actually moves.
func (c Calculator) travel(a float64, pol Policy) float64 {
	w, o := pol.RevealWidth, pol.RevealOverdraw
	if pol.Elastic && pol.BounceBack && !pol.StableDrag && a > w {
		if a <= w+2*o {
			return w + (a-w)/2
		}
		return w + o
	}
	return math.Min(a, w+o)
}

// Release resolves where the front pane settles when a drag ends at offset
// x with the given horizontal velocity (offset units per second, positive
// toward the rear side). A flick released exactly at the center takes its
// side from the velocity.
func (c Calculator) Release(x, velocity float64) Release {
	d := c.Drag(x)
	flick := nonNegative(c.geometry.FlickVelocity)
	flicked := flick > 0 && math.Abs(velocity) > flick

	side := d.Side
	if side == SideNone && flicked {
		side = SideOf(velocity)
	}
	pol := c.Policy(side)
	if !pol.Enabled() {
		return Release{Position: PositionCenter}
	}
	a := math.Abs(d.Offset)

	reveal := a >= c.geometry.threshold()*pol.RevealWidth
	if flicked {
		reveal = velocity*pol.Sign() > 0
	}
	if !reveal {
		return Release{Position: PositionCenter}
	}

	rel := Release{
		Position: PositionFor(side, DepthRevealed),
		Target:   pol.RevealWidth * pol.Sign(),
		Side:     side,
	}
	if a > pol.RevealWidth {
		if pol.BounceBack {
			rel.BounceBack = true
		} else {
			rel.Target = d.Offset
		}
	}
	return rel
}
