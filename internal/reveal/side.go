package reveal

import (
	"fmt"
	"strings"
)

// Side selects which pane a geometry policy or attachment refers to.
type Side int

const (
	SideNone  Side = iota // no pane, the front pane at rest
	SideLeft              // rear pane, exposed by positive offsets
	SideRight             // right pane, exposed by negative offsets
)

// Sides lists the two pane sides.
var Sides = [...]Side{SideLeft, SideRight}

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Sign is +1 for the rear side, -1 for the right side and 0 otherwise.
func (s Side) Sign() int {
	switch s {
	case SideLeft:
		return 1
	case SideRight:
		return -1
	default:
		return 0
	}
}

// Opposite returns the other pane side. SideNone stays SideNone.
func (s Side) Opposite() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return SideNone
	}
}

// SideOf classifies a front pane offset.
func SideOf(x float64) Side {
	switch {
	case x > 0:
		return SideLeft
	case x < 0:
		return SideRight
	default:
		return SideNone
	}
}

// ParseSide accepts "left", "rear", "right" and "none" (case-insensitive).
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "rear":
		return SideLeft, nil
	case "right":
		return SideRight, nil
	case "", "none":
		return SideNone, nil
	}
	return SideNone, fmt.Errorf("%w: %q", ErrUnknownSide, s)
}

// MarshalText implements encoding.TextMarshaler.
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Side) UnmarshalText(text []byte) error {
	parsed, err := ParseSide(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s Side) index() int {
	if s == SideRight {
		return 1
	}
	return 0
}
