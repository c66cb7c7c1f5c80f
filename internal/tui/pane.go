package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// FrontPane is the scrollable front pane. It shows the event log.
type FrontPane struct {
	viewport viewport.Model
	follow   bool
}

// NewFrontPane creates a front pane with the given dimensions.
func NewFrontPane(width, height int) FrontPane {
	vp := viewport.New(width, height)
	vp.SetContent("")
	return FrontPane{viewport: vp, follow: true}
}

// SetSize updates the viewport dimensions.
func (p *FrontPane) SetSize(width, height int) {
	p.viewport.Width = width
	p.viewport.Height = height
}

// SetLines replaces the content. The view sticks to the newest line unless
// the user scrolled away from it.
func (p *FrontPane) SetLines(lines []string) {
	p.viewport.SetContent(strings.Join(lines, "\n"))
	if p.follow {
		p.viewport.GotoBottom()
	}
}

// Scroll moves the view by delta lines.
func (p *FrontPane) Scroll(delta int) {
	if delta < 0 {
		p.viewport.ScrollUp(-delta)
	} else {
		p.viewport.ScrollDown(delta)
	}
	p.follow = p.viewport.AtBottom()
}

// Update forwards viewport messages such as mouse wheel scrolling.
func (p *FrontPane) Update(msg tea.Msg) {
	p.viewport, _ = p.viewport.Update(msg)
	p.follow = p.viewport.AtBottom()
}

// View renders the visible lines.
func (p FrontPane) View() string {
	return p.viewport.View()
}

// backPane renders the static content of a rear or right pane.
func backPane(title string, attached bool, width, overdraw float64) string {
	var b strings.Builder
	b.WriteString(stylePaneTitle.Render(title))
	b.WriteString("\n\n")
	if attached {
		b.WriteString(stylePaneAttached.Render("attached"))
	} else {
		b.WriteString(stylePaneDetached.Render("detached"))
	}
	fmt.Fprintf(&b, "\nwidth %.0f\noverdraw %.0f", width, overdraw)
	return b.String()
}
