package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/kazu/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	Limit    int
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List journaled conversions",
		Long: `List the most recent conversions recorded with "convert --db",
oldest first.

Examples:
  kazu history --db ./kazu.db
  kazu history --db ./kazu.db --limit 0 --format yaml`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "number of most recent conversions to list (0 for all)")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	st, err := openJournal(formatter, opts.RootOptions, opts.Database, cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	conversions, err := st.ReadConversions(cmd.Context(), opts.Limit)
	if err != nil {
		_ = formatter.Error(ErrCodeDatabase, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to read conversions", err)
	}

	if formatter.Structured() {
		return formatter.Success(conversions)
	}

	w := formatter.Writer
	if len(conversions) == 0 {
		fmt.Fprintln(w, "No conversions journaled.")
		return nil
	}
	for _, c := range conversions {
		fmt.Fprintf(w, "#%d %d  =>  %s  =>  %s  =>  %s\n", c.Seq, c.Number, c.Kanji, c.Katakana, c.Romaji)
		if opts.Verbose {
			fmt.Fprintf(w, "    id=%s lexicon=%s romaji=%s euphony=%t\n", c.ID, c.Lexicon, c.RomajiStyle, c.Euphony)
		}
	}
	return nil
}

// openJournal opens an existing journal database. A missing file is a
// command error rather than a new empty journal.
func openJournal(formatter *OutputFormatter, opts *RootOptions, path string, cmd *cobra.Command) (*store.Store, error) {
	if _, err := os.Stat(path); err != nil {
		_ = formatter.Error(ErrCodeNotFound, fmt.Sprintf("database not found: %s", path), nil)
		return nil, WrapExitError(ExitCommandError, "database not found", err)
	}

	st, err := store.Open(path, store.WithLogger(opts.logger(cmd)))
	if err != nil {
		_ = formatter.Error(ErrCodeDatabase, err.Error(), nil)
		return nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}
	return st, nil
}
