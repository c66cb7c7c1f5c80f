package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/papapumpkin/reveal/internal/reveal"
	"github.com/papapumpkin/reveal/internal/telemetry"
)

var eventsCmd = &cobra.Command{
	Use:   "events FILE",
	Short: "View a JSONL event file written with --events",
	Long: `Reads and formats a JSONL telemetry file recorded by "reveal tui --events"
or "reveal replay --events".

With --follow (-f), watches the file for new events (like tail -f).`,
	Args: cobra.ExactArgs(1),
	RunE: runEvents,
}

func init() {
	eventsCmd.Flags().BoolP("follow", "f", false, "follow the file for new events")
	rootCmd.AddCommand(eventsCmd)
}

// eventsObserver opens the --events file, if one was given, and returns an
// observer writing to it along with its cleanup.
func eventsObserver(cmd *cobra.Command, log *slog.Logger) (reveal.Observer, func(), error) {
	path, _ := cmd.Flags().GetString("events")
	if path == "" {
		return nil, func() {}, nil
	}
	em, err := telemetry.NewEmitter(path)
	if err != nil {
		return nil, nil, err
	}
	return telemetry.NewObserver(em, log), func() { _ = em.Close() }, nil
}

func runEvents(cmd *cobra.Command, args []string) error {
	path := args[0]
	follow, _ := cmd.Flags().GetBool("follow")

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("events: open %s: %w", path, err)
	}
	defer f.Close()

	t := newTail(f, cmd.OutOrStdout())
	if err := t.drain(); err != nil {
		return fmt.Errorf("events: read %s: %w", path, err)
	}
	if !follow {
		// The file is complete; a final line without a newline is still an event.
		t.flush()
		return nil
	}
	return t.follow(path)
}

// tail prints the complete JSONL lines of a growing file. A trailing
// fragment without a newline is held until the rest of its line arrives.
type tail struct {
	r       *bufio.Reader
	w       io.Writer
	pending string
}

func newTail(r io.Reader, w io.Writer) *tail {
	return &tail{r: bufio.NewReader(r), w: w}
}

// drain prints every complete line currently readable.
func (t *tail) drain() error {
	for {
		chunk, err := t.r.ReadString('\n')
		t.pending += chunk
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		t.emit()
	}
}

// flush prints a held fragment as if it were a full line.
func (t *tail) flush() { t.emit() }

func (t *tail) emit() {
	line := strings.TrimSpace(t.pending)
	t.pending = ""
	if line != "" {
		printEvent(t.w, line)
	}
}

// follow drains the file again after every write until the watcher closes.
func (t *tail) follow(path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("events: create watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("events: watch %s: %w", path, err)
	}

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) {
				continue
			}
			if err := t.drain(); err != nil {
				return fmt.Errorf("events: read %s: %w", path, err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("events: watch %s: %w", path, err)
		}
	}
}

// printEvent decodes a JSONL line and prints a human-readable representation.
func printEvent(w io.Writer, line string) {
	var evt telemetry.Event
	if err := json.Unmarshal([]byte(line), &evt); err != nil {
		fmt.Fprintf(w, "??? %s\n", line)
		return
	}

	parts := []string{fmt.Sprintf("[%s]", evt.Timestamp.Format(time.TimeOnly)), evt.Kind}
	switch evt.Kind {
	case telemetry.KindPosition:
		mode := "set"
		if evt.Interactive {
			mode = "drag"
		}
		parts = append(parts, fmt.Sprintf("%s -> %s", evt.From, evt.To), mode)
	case telemetry.KindAttach:
		parts = append(parts, "side="+evt.Side, "for="+evt.To)
	case telemetry.KindDetach:
		parts = append(parts, "side="+evt.Side)
	case telemetry.KindBounce:
		parts = append(parts, fmt.Sprintf("target=%.1f", evt.Offset))
	}
	fmt.Fprintln(w, strings.Join(parts, " "))
}
