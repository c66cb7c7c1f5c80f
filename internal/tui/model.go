package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/papapumpkin/reveal/internal/config"
	"github.com/papapumpkin/reveal/internal/reveal"
)

const (
	// settleFrames is the length of the settle animation after a release
	// or a programmatic move.
	settleFrames = 6
	// nudgeColumns is how far one drag key press moves the front pane.
	nudgeColumns = 4
	// staleSample drops the release velocity when the pointer rested this
	// long before letting go.
	staleSample = 100 * time.Millisecond
)

// Options configures a Model.
type Options struct {
	Config   config.Config
	Scale    float64              // offset units per terminal column
	Reloads  <-chan config.Reload // optional live config reloads
	Observer reveal.Observer      // optional extra notification sink
	Logger   *slog.Logger
	Now      func() time.Time
}

// grab is an in-flight pointer drag.
type grab struct {
	active   bool
	col      int
	offset   float64
	lastX    float64
	lastAt   time.Time
	velocity float64
}

// animation eases the displayed offset toward the controller's offset.
type animation struct {
	active bool
	from   float64
	frame  int
}

// Model drives a reveal controller from terminal input and renders the
// three panes.
type Model struct {
	Reveal *reveal.Reveal
	Log    *EventLog
	Keys   KeyMap
	Front  FrontPane
	Scale  float64
	Width  int
	Height int
	Status string
	Err    error

	reloads <-chan config.Reload
	now     func() time.Time
	grab    grab
	anim    animation
}

// NewModel builds a model and its controller from opts.
func NewModel(opts Options) Model {
	if opts.Scale <= 0 {
		opts.Scale = DefaultScale
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	log := &EventLog{}
	var observer reveal.Observer = log
	if opts.Observer != nil {
		observer = reveal.Observers{log, opts.Observer}
	}
	ropts := append(opts.Config.Options(),
		reveal.WithObserver(observer),
		reveal.WithLogger(opts.Logger))

	return Model{
		Reveal:  reveal.New(opts.Config.Geometry(), ropts...),
		Log:     log,
		Keys:    DefaultKeyMap(),
		Front:   NewFrontPane(MinWidth, MinHeight),
		Scale:   opts.Scale,
		reloads: opts.Reloads,
		now:     opts.Now,
	}
}

// Init starts listening for config reloads.
func (m Model) Init() tea.Cmd {
	return waitForReload(m.reloads)
}

// Update handles all messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Front.SetSize(max(0, msg.Width-2), max(0, msg.Height-chromeHeight))

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case tea.MouseMsg:
		cmd = m.handleMouse(msg)

	case MsgFrame:
		if m.anim.active {
			m.anim.frame++
			if m.anim.frame >= settleFrames {
				m.anim = animation{}
			} else {
				cmd = frameCmd()
			}
		}

	case MsgConfigReload:
		cmd = tea.Batch(m.applyReload(msg.Reload), waitForReload(m.reloads))
	}

	m.Front.SetLines(m.Log.Lines)
	return m, cmd
}

// applyReload swaps in a reloaded geometry. Exclusivity and strictness are
// fixed for the life of the controller.
func (m *Model) applyReload(r config.Reload) tea.Cmd {
	if r.Err != nil {
		m.Err = r.Err
		return nil
	}
	m.Err = nil
	before := m.Reveal.Offset()
	m.Reveal.SetGeometry(r.Config.Geometry())
	m.Status = "config reloaded"
	return m.animateFrom(before)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	before := m.Reveal.Offset()
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.Keys.RevealRear):
		m.Reveal.Toggle()
	case key.Matches(msg, m.Keys.RevealRight):
		m.Reveal.ToggleRight()
	case key.Matches(msg, m.Keys.Center):
		m.Reveal.SetPosition(reveal.PositionCenter)
	case key.Matches(msg, m.Keys.DragLeft):
		m.nudge(-1)
		return nil
	case key.Matches(msg, m.Keys.DragRight):
		m.nudge(1)
		return nil
	case key.Matches(msg, m.Keys.Release):
		return m.release(0)
	case key.Matches(msg, m.Keys.Cancel):
		m.grab = grab{}
		m.Reveal.CancelDrag()
	case key.Matches(msg, m.Keys.ScrollUp):
		m.Front.Scroll(-1)
		return nil
	case key.Matches(msg, m.Keys.ScrollDown):
		m.Front.Scroll(1)
		return nil
	default:
		return nil
	}
	return m.animateFrom(before)
}

// nudge drags the front pane by a fixed step, beginning a drag if needed.
func (m *Model) nudge(dir float64) {
	x := m.Reveal.Offset()
	if m.Reveal.Dragging() {
		x = m.Reveal.Drag().X
	}
	m.anim = animation{}
	m.Reveal.DragTo(x + dir*nudgeColumns*m.Scale)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.Front.Scroll(-3)
		return nil
	case tea.MouseButtonWheelDown:
		m.Front.Scroll(3)
		return nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		frontCol := columns(m.displayOffset(), m.Scale)
		x := float64(msg.X-frontCol) * m.Scale
		if !m.Reveal.Contains(x, float64(m.Width)*m.Scale) {
			return nil
		}
		off := m.Reveal.Offset()
		m.grab = grab{active: true, col: msg.X, offset: off, lastX: off, lastAt: m.now()}
		m.anim = animation{}
		m.Reveal.BeginDrag()

	case tea.MouseActionMotion:
		if !m.grab.active {
			return nil
		}
		x := m.grab.offset + float64(msg.X-m.grab.col)*m.Scale
		t := m.now()
		if dt := t.Sub(m.grab.lastAt).Seconds(); dt > 0 {
			m.grab.velocity = (x - m.grab.lastX) / dt
		}
		m.grab.lastX, m.grab.lastAt = x, t
		m.Reveal.DragTo(x)

	case tea.MouseActionRelease:
		if !m.grab.active {
			return nil
		}
		v := m.grab.velocity
		if m.now().Sub(m.grab.lastAt) > staleSample {
			v = 0
		}
		m.grab = grab{}
		return m.release(v)
	}
	return nil
}

func (m *Model) release(velocity float64) tea.Cmd {
	if !m.Reveal.Dragging() {
		return nil
	}
	before := m.Reveal.Offset()
	rel := m.Reveal.EndDrag(velocity)
	m.Status = fmt.Sprintf("released at %.0f px/s → %s", velocity, rel.Position)
	return m.animateFrom(before)
}

// animateFrom starts a settle animation from the given offset to the
// controller's current offset.
func (m *Model) animateFrom(from float64) tea.Cmd {
	if from == m.Reveal.Offset() {
		return nil
	}
	m.anim = animation{active: true, from: from}
	return frameCmd()
}

// displayOffset is the offset the front pane is drawn at.
func (m Model) displayOffset() float64 {
	to := m.Reveal.Offset()
	if !m.anim.active {
		return to
	}
	t := float64(m.anim.frame) / settleFrames
	ease := 1 - (1-t)*(1-t)
	return m.anim.from + (to-m.anim.from)*ease
}

// View renders the full TUI.
func (m Model) View() string {
	if m.Width == 0 {
		return "initializing..."
	}
	if m.Width < MinWidth || m.Height < MinHeight {
		return fmt.Sprintf("terminal too small (%dx%d, need %dx%d)", m.Width, m.Height, MinWidth, MinHeight)
	}

	sections := []string{m.renderStatus(), m.renderBody()}
	footer := Footer{Width: m.Width, Bindings: FooterBindings(m.Keys, m.Reveal.Dragging())}
	sections = append(sections, footer.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderStatus() string {
	pos := m.Reveal.Position()
	posText := styleStatusValue.Render(pos.String())
	if pos.Depth() == reveal.DepthOverdrawn {
		posText = styleStatusOverdraw.Render(pos.String())
	}
	parts := []string{
		styleStatusLabel.Render("position ") + posText,
		styleStatusLabel.Render("offset ") + styleStatusValue.Render(fmt.Sprintf("%.0f", m.Reveal.Offset())),
		styleStatusLabel.Render("panes ") + styleStatusValue.Render(attachedMark(m.Reveal, reveal.SideLeft)+attachedMark(m.Reveal, reveal.SideRight)),
	}
	switch {
	case m.Err != nil:
		parts = append(parts, styleStatusError.Render(m.Err.Error()))
	case m.Status != "":
		parts = append(parts, styleStatusValue.Render(m.Status))
	}
	line := ansi.Truncate(strings.Join(parts, "   "), m.Width-2, "…")
	return styleStatusBar.Width(m.Width).Render(line)
}

func attachedMark(r *reveal.Reveal, side reveal.Side) string {
	if r.Attached(side) {
		return "●"
	}
	return "○"
}

func (m Model) renderBody() string {
	w, h := m.Width, m.Height-chromeHeight
	rear := m.backBlock(reveal.SideLeft, "REAR", styleRearPane, w, h)
	right := m.backBlock(reveal.SideRight, "RIGHT", styleRightPane, w, h)
	front := fitLines(styleFrontPane.Width(w-2).Height(h).Render(m.Front.View()), w, h, false)

	off := columns(m.displayOffset(), m.Scale)
	rows := make([]string, h)
	for i := range rows {
		rows[i] = composeRow(rear[i], front[i], right[i], w, off)
	}
	return strings.Join(rows, "\n")
}

// backBlock renders a back pane as full-width rows, anchored to its edge.
// A side without a pane is blank.
func (m Model) backBlock(side reveal.Side, title string, style lipgloss.Style, w, h int) []string {
	pol := m.Reveal.Policy(side)
	cols := clampInt(columns(pol.Max(), m.Scale), 0, w)
	if !pol.Enabled() || cols == 0 {
		return fitLines("", w, h, false)
	}
	content := backPane(title, m.Reveal.Attached(side), pol.RevealWidth, pol.RevealOverdraw)
	block := style.Width(cols).Height(h).MaxHeight(h).Render(content)
	return fitLines(block, w, h, side == reveal.SideRight)
}
