// Package reveal implements the position model and drag geometry of a
// three-pane reveal layout: a front pane slid right exposes the rear pane,
// slid left exposes the right pane.
package reveal

import "fmt"

// Position is a logical state of the front pane. Values are ordered from the
// right pane fully exposed (most negative offset) to the rear pane fully
// exposed (most positive offset), with Center in the middle.
type Position int

const (
	PositionRightRemoved   Position = iota // front pushed fully aside to the left
	PositionRightOverdrawn                 // dragged past full right reveal
	PositionRightRevealed                  // right pane fully revealed
	PositionRightPartial                   // right pane exposed below the threshold
	PositionCenter                         // front covers everything
	PositionLeftPartial                    // rear pane exposed below the threshold
	PositionLeftRevealed                   // rear pane fully revealed
	PositionLeftOverdrawn                  // dragged past full rear reveal
	PositionLeftRemoved                    // front pushed fully aside to the right

	// PositionNone is the unset sentinel. A drag never resolves to it.
	PositionNone Position = 0xff
)

// Depth values returned by Position.Depth.
const (
	DepthCenter = iota
	DepthPartial
	DepthRevealed
	DepthOverdrawn
	DepthRemoved
)

var positionNames = map[Position]string{
	PositionRightRemoved:   "right-removed",
	PositionRightOverdrawn: "right-overdrawn",
	PositionRightRevealed:  "right-revealed",
	PositionRightPartial:   "right-partial",
	PositionCenter:         "center",
	PositionLeftPartial:    "left-partial",
	PositionLeftRevealed:   "left-revealed",
	PositionLeftOverdrawn:  "left-overdrawn",
	PositionLeftRemoved:    "left-removed",
	PositionNone:           "none",
}

// Positions lists every concrete position in offset order. PositionNone is
// not included.
func Positions() []Position {
	return []Position{
		PositionRightRemoved,
		PositionRightOverdrawn,
		PositionRightRevealed,
		PositionRightPartial,
		PositionCenter,
		PositionLeftPartial,
		PositionLeftRevealed,
		PositionLeftOverdrawn,
		PositionLeftRemoved,
	}
}

func (p Position) String() string {
	if name, ok := positionNames[p]; ok {
		return name
	}
	return fmt.Sprintf("position(%d)", int(p))
}

// ParsePosition converts a kebab-case name back into a Position.
func ParsePosition(s string) (Position, error) {
	for p, name := range positionNames {
		if name == s {
			return p, nil
		}
	}
	return PositionNone, fmt.Errorf("%w: %q", ErrUnknownPosition, s)
}

// MarshalText implements encoding.TextMarshaler.
func (p Position) MarshalText() ([]byte, error) {
	if _, ok := positionNames[p]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPosition, int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Position) UnmarshalText(text []byte) error {
	parsed, err := ParsePosition(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func (p Position) valid() bool {
	return p >= PositionRightRemoved && p <= PositionLeftRemoved
}

// IsLeftSide reports whether p exposes the rear (left) pane.
func (p Position) IsLeftSide() bool {
	return p.valid() && p > PositionCenter
}

// IsRightSide reports whether p exposes the right pane.
func (p Position) IsRightSide() bool {
	return p.valid() && p < PositionCenter
}

// Side returns the pane side p exposes.
func (p Position) Side() Side {
	switch {
	case p.IsLeftSide():
		return SideLeft
	case p.IsRightSide():
		return SideRight
	default:
		return SideNone
	}
}

// Depth returns how far p is from Center, from DepthCenter to DepthRemoved.
// PositionNone has depth DepthCenter.
func (p Position) Depth() int {
	if !p.valid() {
		return DepthCenter
	}
	d := int(p - PositionCenter)
	if d < 0 {
		return -d
	}
	return d
}

// Mirror reflects p across Center.
func (p Position) Mirror() Position {
	if !p.valid() {
		return p
	}
	return 2*PositionCenter - p
}

// IsTerminal reports whether p may persist once a drag has ended.
func (p Position) IsTerminal() bool {
	switch p {
	case PositionCenter, PositionLeftRevealed, PositionRightRevealed:
		return true
	}
	return false
}

// IsTransitional reports whether p only exists while a drag is in flight.
func (p Position) IsTransitional() bool {
	d := p.Depth()
	return p.valid() && (d == DepthPartial || d == DepthOverdrawn)
}

// IsHierarchical reports whether p removes the front pane from view. These
// positions are reachable only programmatically.
func (p Position) IsHierarchical() bool {
	return p.valid() && p.Depth() == DepthRemoved
}

// PositionFor builds the position at depth on side. SideNone and depth zero
// both yield Center; depth is capped at DepthRemoved.
func PositionFor(side Side, depth int) Position {
	if side == SideNone || depth <= DepthCenter {
		return PositionCenter
	}
	if depth > DepthRemoved {
		depth = DepthRemoved
	}
	return PositionCenter + Position(side.Sign()*depth)
}

// IsValidTransition reports whether an interactive move from one position to
// another is legal. A drag may not jump straight from one side to the other;
// it has to pass Center first. Programmatic moves skip this check.
func IsValidTransition(from, to Position) bool {
	if from == to || from == PositionNone || to == PositionNone {
		return true
	}
	if from.IsLeftSide() && to.IsRightSide() {
		return false
	}
	if from.IsRightSide() && to.IsLeftSide() {
		return false
	}
	return true
}
