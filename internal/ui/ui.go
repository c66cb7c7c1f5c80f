package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/papapumpkin/reveal/internal/reveal"
)

// ANSI color codes.
const (
	reset   = "\033[0m"
	bold    = "\033[1m"
	dim     = "\033[2m"
	blue    = "\033[34m"
	yellow  = "\033[33m"
	green   = "\033[32m"
	red     = "\033[31m"
	cyan    = "\033[36m"
	magenta = "\033[35m"
)

// Printer writes replay and locate output to stderr with ANSI colors.
type Printer struct{}

// New returns a Printer.
func New() *Printer {
	return &Printer{}
}

// Banner prints the program banner.
func (p *Printer) Banner() {
	fmt.Fprintln(os.Stderr, bold+cyan+"  ╔══════════════════════════════╗"+reset)
	fmt.Fprintln(os.Stderr, bold+cyan+"  ║"+reset+bold+"   REVEAL  "+dim+"three-pane layout"+reset+bold+cyan+"  ║"+reset)
	fmt.Fprintln(os.Stderr, bold+cyan+"  ╚══════════════════════════════╝"+reset)
	fmt.Fprintln(os.Stderr)
}

// Error prints msg as an error line.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(os.Stderr, red+bold+"error: "+reset+"%s\n", msg)
}

// Info prints msg dimmed.
func (p *Printer) Info(msg string) {
	fmt.Fprintf(os.Stderr, dim+"%s"+reset+"\n", msg)
}

// sideColor picks the accent for a pane side: blue for the rear pane,
// magenta for the right pane.
func sideColor(s reveal.Side) string {
	switch s {
	case reveal.SideLeft:
		return blue
	case reveal.SideRight:
		return magenta
	default:
		return dim
	}
}

// Event prints one controller notification.
func (p *Printer) Event(step int, ev reveal.Event) {
	prefix := fmt.Sprintf(dim+"%3d"+reset+" ", step)
	switch ev.Kind {
	case reveal.EventPosition:
		mode := "set"
		if ev.Interactive {
			mode = "drag"
		}
		fmt.Fprintf(os.Stderr, prefix+"%s▸ %s"+reset+" → "+bold+"%s"+reset+dim+" (%s)"+reset+"\n",
			sideColor(ev.To.Side()), ev.From, ev.To, mode)
	case reveal.EventAttach:
		fmt.Fprintf(os.Stderr, prefix+green+"+ attach %s"+reset+dim+" for %s"+reset+"\n", ev.Side, ev.To)
	case reveal.EventDetach:
		fmt.Fprintf(os.Stderr, prefix+yellow+"- detach %s"+reset+"\n", ev.Side)
	case reveal.EventBounce:
		fmt.Fprintf(os.Stderr, prefix+cyan+"↺ bounce back to %.1f"+reset+"\n", ev.Offset)
	}
}

// Release prints where a drag settled.
func (p *Printer) Release(rel reveal.Release) {
	fmt.Fprintf(os.Stderr, "    "+bold+"released"+reset+" at %s, target %.1f", rel.Position, rel.Target)
	if rel.BounceBack {
		fmt.Fprint(os.Stderr, cyan+" (bounce)"+reset)
	}
	fmt.Fprintln(os.Stderr)
}

// Final prints the controller's resting state after a replay.
func (p *Printer) Final(r *reveal.Reveal) {
	var attached []string
	for _, side := range reveal.Sides {
		if r.Attached(side) {
			attached = append(attached, side.String())
		}
	}
	if len(attached) == 0 {
		attached = []string{"none"}
	}
	fmt.Fprintf(os.Stderr, green+bold+"✓ settled"+reset+" at %s (offset %.1f), attached: %s\n",
		r.Position(), r.Offset(), strings.Join(attached, ", "))
}

// Geometry prints the resolved policy of both sides.
func (p *Printer) Geometry(r *reveal.Reveal) {
	g := r.Geometry()
	fmt.Fprintf(os.Stderr, dim+"geometry (%s, threshold %.2f, flick %.0f):"+reset+"\n",
		g.Symmetry, g.Threshold, g.FlickVelocity)
	for _, side := range reveal.Sides {
		pol := r.Policy(side)
		if !pol.Enabled() {
			fmt.Fprintf(os.Stderr, "  %s%-5s"+reset+"  "+dim+"disabled"+reset+"\n", sideColor(side), side)
			continue
		}
		fmt.Fprintf(os.Stderr, "  %s%-5s"+reset+"  width %.0f  overdraw %.0f  bounce %v  stable %v  elastic %v\n",
			sideColor(side), side, pol.RevealWidth, pol.RevealOverdraw, pol.BounceBack, pol.StableDrag, pol.Elastic)
	}
}

// Locations prints the front pane offset of every position.
func (p *Printer) Locations(r *reveal.Reveal) {
	fmt.Fprintln(os.Stderr, bold+"front locations:"+reset)
	for _, pos := range reveal.Positions() {
		kind := "transitional"
		switch {
		case pos.IsTerminal():
			kind = "terminal"
		case pos.IsHierarchical():
			kind = "hierarchical"
		}
		fmt.Fprintf(os.Stderr, "  %s%-16s"+reset+" %8.1f  "+dim+"%s"+reset+"\n",
			sideColor(pos.Side()), pos, r.FrontLocation(pos), kind)
	}
}
