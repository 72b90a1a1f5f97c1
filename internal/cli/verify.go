package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/kazu/internal/lexicon"
	"github.com/roach88/kazu/internal/numeral"
	"github.com/roach88/kazu/internal/store"
)

// VerifyOptions holds flags for the verify command.
type VerifyOptions struct {
	*RootOptions
	Database string
}

// NewVerifyCommand creates the verify command.
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &VerifyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Replay the journal and verify determinism",
		Long: `Re-convert every journaled conversion with the settings it was
recorded with and compare the output byte for byte.

Records made with a different lexicon than the active one (see
--lexicon) are skipped. The record's own romaji style and euphony
setting are used; the global --romaji and --euphony flags do not apply.

Exit codes:
  0 - Every checked record reproduced exactly
  1 - At least one record differs or no longer converts
  2 - Command error (database not found, etc.)

Examples:
  kazu verify --db ./kazu.db
  kazu verify --db ./kazu.db --lexicon my.yaml --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

type replaySettings struct {
	romaji  lexicon.RomajiStyle
	euphony bool
}

func runVerify(opts *VerifyOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	lex, err := opts.loadLexicon()
	if err != nil {
		_ = formatter.Error(ErrCodeInvalidLexicon, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to load lexicon", err)
	}

	st, err := openJournal(formatter, opts.RootOptions, opts.Database, cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	converters := map[replaySettings]*numeral.Converter{}
	resolve := func(c store.Conversion) (store.Converter, error) {
		if c.Lexicon != lex.Name() {
			formatter.VerboseLog("skipping %s: lexicon %q is not active", c.ID, c.Lexicon)
			return nil, nil
		}
		style, err := lexicon.ParseRomajiStyle(c.RomajiStyle)
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", c.ID, err)
		}
		key := replaySettings{romaji: style, euphony: c.Euphony}
		conv, ok := converters[key]
		if !ok {
			conv = numeral.New(
				numeral.WithLexicon(lex),
				numeral.WithRomajiStyle(style),
				numeral.WithEuphony(c.Euphony),
			)
			converters[key] = conv
		}
		return conv, nil
	}

	report, err := st.Replay(cmd.Context(), resolve)
	if err != nil {
		_ = formatter.Error(ErrCodeDatabase, err.Error(), nil)
		return WrapExitError(ExitCommandError, "replay failed", err)
	}

	if formatter.Structured() {
		return outputVerifyStructured(formatter, report)
	}
	return outputVerifyText(cmd, report)
}

// outputVerifyStructured outputs the replay report as JSON or YAML.
func outputVerifyStructured(formatter *OutputFormatter, report store.ReplayReport) error {
	if report.Deterministic() {
		return formatter.Success(report)
	}
	if err := formatter.Failure(report, ErrCodeDeterminism, "determinism verification failed"); err != nil {
		return err
	}
	// Determinism failure = exit code 1
	return NewExitError(ExitFailure, "determinism verification failed")
}

// outputVerifyText outputs the replay report as text.
func outputVerifyText(cmd *cobra.Command, report store.ReplayReport) error {
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "Verify Summary: %d checked, %d skipped\n", report.Checked, report.Skipped)

	for _, m := range report.Mismatches {
		c := m.Conversion
		fmt.Fprintf(w, "✗ #%d %d (%s)\n", c.Seq, c.Number, c.ID)
		fmt.Fprintf(w, "  stored:   %s  =>  %s  =>  %s\n", c.Kanji, c.Katakana, c.Romaji)
		if m.Got != nil {
			fmt.Fprintf(w, "  replayed: %s  =>  %s  =>  %s\n", m.Got.Kanji, m.Got.Katakana, m.Got.Romaji)
		} else {
			fmt.Fprintf(w, "  replayed: %s\n", m.Err)
		}
	}

	if report.Deterministic() {
		fmt.Fprintln(w, "✓ Journal replay is deterministic")
		return nil
	}

	fmt.Fprintln(w, "✗ Determinism verification failed")
	// Determinism failure = exit code 1
	return NewExitError(ExitFailure, "determinism verification failed")
}
