package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/roach88/kazu/internal/numeral"
	"github.com/roach88/kazu/internal/store"
)

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	*RootOptions
	Database string // optional journal
	Group    bool   // group arabic digits in text output
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "convert <number>...",
		Short: "Spell numbers in kanji, katakana and romaji",
		Long: `Convert each argument to its Japanese numeral spellings.

Arguments are non-negative decimal integers. Surrounding whitespace,
full-width digits and "," or "_" grouping separators are accepted.
Every argument is converted before anything is printed; if one fails,
nothing is printed or journaled except the error.

Exit codes:
  0 - All numbers converted
  2 - Command error (invalid number, out of range, bad lexicon, database error)

Examples:
  kazu convert 12345
  kazu convert 300 8000 --euphony --romaji wapuro
  kazu convert 1234567 --group
  kazu convert 42 --db ./kazu.db --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "journal conversions to this SQLite database")
	cmd.Flags().BoolVar(&opts.Group, "group", false, "print the arabic number with digit grouping")

	return cmd
}

func runConvert(opts *ConvertOptions, args []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	logger := opts.logger(cmd)

	conv, err := opts.converter()
	if err != nil {
		return err
	}

	results := make([]numeral.Result, 0, len(args))
	for _, arg := range args {
		res, err := conv.ConvertString(arg)
		if err != nil {
			code, details := describeConversionError(err)
			if outErr := formatter.Error(code, err.Error(), details); outErr != nil {
				return outErr
			}
			return WrapExitError(ExitCommandError, fmt.Sprintf("cannot convert %q", arg), err)
		}
		results = append(results, res)
	}

	if opts.Database == "" {
		if formatter.Structured() {
			records := make([]numeral.Record, len(results))
			for i, r := range results {
				records[i] = r.Record()
			}
			return formatter.Success(records)
		}
		writeResultsText(formatter.Writer, results, opts.Group)
		return nil
	}

	st, err := store.Open(opts.Database, store.WithLogger(logger))
	if err != nil {
		_ = formatter.Error(ErrCodeDatabase, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	settings := conv.Settings()
	journaled := make([]store.Conversion, 0, len(results))
	for _, r := range results {
		c, err := st.WriteConversion(cmd.Context(), store.NewConversion(r, settings))
		if err != nil {
			_ = formatter.Error(ErrCodeDatabase, err.Error(), nil)
			return WrapExitError(ExitCommandError, "failed to journal conversion", err)
		}
		formatter.VerboseLog("journaled %d as %s (seq %d)", c.Number, c.ID, c.Seq)
		journaled = append(journaled, c)
	}

	if formatter.Structured() {
		return formatter.Success(journaled)
	}
	writeResultsText(formatter.Writer, results, opts.Group)
	return nil
}

// writeResultsText prints one "n  =>  kanji  =>  katakana  =>  romaji" line
// per result.
func writeResultsText(w io.Writer, results []numeral.Result, group bool) {
	if !group {
		for _, r := range results {
			fmt.Fprintln(w, r)
		}
		return
	}

	p := message.NewPrinter(language.Japanese)
	for _, r := range results {
		fmt.Fprintf(w, "%s  =>  %s  =>  %s  =>  %s\n", p.Sprintf("%d", r.Number()), r.Kanji(), r.Katakana(), r.Romaji())
	}
}

// describeConversionError maps a conversion failure to a CLI error code and
// its details.
func describeConversionError(err error) (string, any) {
	var ce *numeral.ConversionError
	if !errors.As(err, &ce) {
		return ErrCodeGeneric, nil
	}

	code := ErrCodeGeneric
	switch ce.Code {
	case numeral.ErrCodeRangeExceeded:
		code = ErrCodeRangeExceeded
	case numeral.ErrCodeInvalidNumber:
		code = ErrCodeInvalidNumber
	}
	if len(ce.Details) == 0 {
		return code, nil
	}
	return code, ce.Details
}
