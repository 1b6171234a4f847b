package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/leapstack-labs/randomness/internal/cli/output"
	"github.com/leapstack-labs/randomness/pkg/dictionary"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// DictionaryStatus is the JSON output for a single dictionary.
type DictionaryStatus struct {
	Kind     string `json:"kind"`
	Location string `json:"location"`
	Active   bool   `json:"active"`
	Valid    bool   `json:"valid"`
	Words    int    `json:"words"`
	Error    string `json:"error,omitempty"`
}

// DictionaryCheckOutput is the JSON output for the dictionary check command.
type DictionaryCheckOutput struct {
	Dictionaries []DictionaryStatus `json:"dictionaries"`
	Selection    string             `json:"selection,omitempty"`
}

// errDictionaryCheck is returned when at least one dictionary failed the check.
var errDictionaryCheck = errors.New("dictionary check failed")

// NewDictionaryCommand creates the dictionary command and its subcommands.
func NewDictionaryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dictionary",
		Aliases: []string{"dict"},
		Short:   "Manage the dictionaries used for word generation",
		Long: `Manage the dictionaries used for word generation.

Bundled dictionaries ship with randomness. User dictionaries are plain text
files with one word per line; blank lines are ignored.`,
	}

	cmd.AddCommand(newDictionaryListCommand())
	cmd.AddCommand(newDictionaryCheckCommand())
	cmd.AddCommand(newDictionaryWatchCommand())

	return cmd
}

func newDictionaryListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List bundled and configured dictionaries",
		Example: `  # List dictionaries
  randomness dictionary list`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)
			r := cmdCtx.Renderer

			statuses, err := listDictionaries(cmdCtx)
			if err != nil {
				return err
			}

			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(statuses)
			}

			rows := make([][]string, 0, len(statuses))
			for _, s := range statuses {
				active := ""
				if s.Active {
					active = "✓"
				}
				rows = append(rows, []string{s.Kind, s.Location, active})
			}
			r.Header(2, "Dictionaries")
			r.Table([]string{"Kind", "Location", "Active"}, rows)
			return nil
		},
	}
}

// listDictionaries returns the configured dictionaries followed by the
// bundled dictionaries that are not configured.
func listDictionaries(cmdCtx *CommandContext) ([]DictionaryStatus, error) {
	entries := cmdCtx.Cfg.Word.Entries(cmdCtx.Dictionaries)
	listed := make(map[string]bool, len(entries))

	var statuses []DictionaryStatus
	for _, e := range entries {
		if e.Dictionary == nil {
			continue
		}
		listed[e.Dictionary.String()] = true
		statuses = append(statuses, DictionaryStatus{
			Kind:     string(e.Dictionary.Kind()),
			Location: e.Dictionary.Location(),
			Active:   e.Active,
		})
	}

	names, err := dictionary.BundledNames(cmdCtx.Dictionaries.Resources())
	if err != nil {
		return nil, fmt.Errorf("failed to list bundled dictionaries: %w", err)
	}
	for _, name := range names {
		d := cmdCtx.Dictionaries.Bundled(name)
		if listed[d.String()] {
			continue
		}
		statuses = append(statuses, DictionaryStatus{
			Kind:     string(d.Kind()),
			Location: d.Location(),
		})
	}

	return statuses, nil
}

func newDictionaryCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the configured dictionaries",
		Long: `Validate every configured dictionary and the selection as a whole.

Each dictionary is read and counted. The command fails if a dictionary cannot
be read, if an active dictionary is empty or if no dictionary is active.`,
		Example: `  # Check dictionaries
  randomness dictionary check

  # Check dictionaries as JSON
  randomness dictionary check --output json`,
		Args: cobra.NoArgs,
		RunE: runDictionaryCheck,
	}
}

func runDictionaryCheck(cmd *cobra.Command, _ []string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	entries := cmdCtx.Cfg.Word.Entries(cmdCtx.Dictionaries)
	statuses := checkDictionaries(cmd.Context(), entries)

	out := DictionaryCheckOutput{Dictionaries: statuses}
	if failure := dictionary.ValidateSelection(entries); failure != nil {
		out.Selection = failure.Message
	}

	failed := out.Selection != ""
	for _, s := range statuses {
		if !s.Valid {
			failed = true
		}
	}

	if r.EffectiveMode() == output.ModeJSON {
		if err := r.JSON(out); err != nil {
			return err
		}
	} else {
		for _, s := range statuses {
			name := fmt.Sprintf("[%s] %s", s.Kind, s.Location)
			switch {
			case !s.Valid:
				r.StatusLine(name, "error", s.Error)
			case s.Words == 0:
				r.StatusLine(name, "warning", "empty")
			default:
				r.StatusLine(name, "success", strconv.Itoa(s.Words)+" words")
			}
		}
		if out.Selection != "" {
			r.Error(out.Selection)
		} else {
			r.Success("Dictionary selection is valid")
		}
	}

	if failed {
		return errDictionaryCheck
	}
	return nil
}

// checkDictionaries validates and reads every dictionary concurrently.
// Statuses are returned in the order of entries.
func checkDictionaries(ctx context.Context, entries []dictionary.Entry) []DictionaryStatus {
	statuses := make([]DictionaryStatus, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, e := range entries {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			statuses[i] = checkDictionary(e)
			return nil
		})
	}
	_ = g.Wait()

	return statuses
}

func checkDictionary(e dictionary.Entry) DictionaryStatus {
	if e.Dictionary == nil {
		return DictionaryStatus{Active: e.Active, Error: "Dictionary location must be set."}
	}

	status := DictionaryStatus{
		Kind:     string(e.Dictionary.Kind()),
		Location: e.Dictionary.Location(),
		Active:   e.Active,
	}
	if err := e.Dictionary.Validate(); err != nil {
		status.Error = err.Error()
		return status
	}
	words, err := e.Dictionary.Words()
	if err != nil {
		status.Error = err.Error()
		return status
	}
	status.Valid = true
	status.Words = words.Len()
	return status
}

func newDictionaryWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch user dictionaries and report changes",
		Long: `Watch the configured user dictionaries and revalidate them when they change.

Runs until interrupted.`,
		Example: `  # Watch user dictionaries
  randomness dictionary watch`,
		Args: cobra.NoArgs,
		RunE: runDictionaryWatch,
	}
}

func runDictionaryWatch(cmd *cobra.Command, _ []string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	paths := cmdCtx.Cfg.Word.UserDictionaries
	if len(paths) == 0 {
		r.Warning("No user dictionaries configured")
		return nil
	}

	w, err := dictionary.NewWatcher(cmdCtx.Dictionaries, cmdCtx.Logger, func(d *dictionary.Dictionary, err error) {
		if err != nil {
			r.StatusLine(d.String(), "error", err.Error())
			return
		}
		words, err := d.Words()
		if err != nil {
			r.StatusLine(d.String(), "error", err.Error())
			return
		}
		r.StatusLine(d.String(), "success", strconv.Itoa(words.Len())+" words")
	})
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	for _, path := range paths {
		if err := w.Add(path); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	r.Printf("Watching %d dictionaries. Press Ctrl+C to stop\n", len(paths))
	return w.Run(ctx)
}
