package reveal

import "errors"

var (
	// ErrPaneInUse is returned in strict mode when a pane is unloaded while
	// the resolved position still exposes it or a drag could re-expose it.
	ErrPaneInUse = errors.New("pane is still in use")

	// ErrSideMismatch is returned when a pane is prepared for a position
	// that exposes the other side.
	ErrSideMismatch = errors.New("position exposes the other side")

	// ErrUnknownPosition and ErrUnknownSide wrap parse failures.
	ErrUnknownPosition = errors.New("unknown position")
	ErrUnknownSide     = errors.New("unknown side")
)
