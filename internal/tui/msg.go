package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/reveal/internal/config"
)

// frameInterval paces settle animations.
const frameInterval = 16 * time.Millisecond

// MsgFrame advances the settle animation by one frame.
type MsgFrame struct{}

// MsgConfigReload carries a re-read of the watched config file.
type MsgConfigReload struct {
	config.Reload
}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return MsgFrame{}
	})
}

// waitForReload blocks on the next reload. A closed channel ends the chain.
func waitForReload(ch <-chan config.Reload) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return nil
		}
		return MsgConfigReload{Reload: r}
	}
}
