package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// Program is an alias for tea.Program, exposed so callers don't need
// to import bubbletea directly.
type Program = tea.Program

// NewProgram creates a BubbleTea program around a reveal model. The program
// uses the alternate screen and reports mouse motion while a button is held.
func NewProgram(opts Options, progOpts ...tea.ProgramOption) *Program {
	allOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
	allOpts = append(allOpts, progOpts...)
	return tea.NewProgram(NewModel(opts), allOpts...)
}

// Run creates and runs a TUI program, blocking until it exits.
func Run(opts Options) error {
	if _, err := NewProgram(opts).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// WithOutput returns a program option that directs TUI output to the given writer.
func WithOutput(w io.Writer) tea.ProgramOption {
	return tea.WithOutput(w)
}

// WithInput returns a program option that reads input from the given reader.
func WithInput(r io.Reader) tea.ProgramOption {
	return tea.WithInput(r)
}
