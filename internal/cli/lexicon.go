package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/roach88/kazu/internal/lexicon"
	"github.com/roach88/kazu/internal/numeral"
)

// LexiconOptions holds flags for the lexicon command.
type LexiconOptions struct {
	*RootOptions
	Validate bool
}

// LexiconSummary is the result of a successful --validate.
type LexiconSummary struct {
	Name  string `json:"name" yaml:"name"`
	Tiers int    `json:"tiers" yaml:"tiers"`
	Max   string `json:"max" yaml:"max"`
	Valid bool   `json:"valid" yaml:"valid"`
}

// NewLexiconCommand creates the lexicon command.
func NewLexiconCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LexiconOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "lexicon",
		Short: "Print or validate the active lexicon",
		Long: `Print the active lexicon (the built-in standard lexicon, or the file
given with --lexicon). Text output is a YAML lexicon file that can be
edited and loaded back with --lexicon.

With --validate, only check the lexicon and report its range.

Exit codes:
  0 - Lexicon printed or valid
  1 - Lexicon failed validation (--validate)
  2 - Command error (file not found, unreadable lexicon)

Examples:
  kazu lexicon > my.yaml
  kazu lexicon --lexicon my.yaml --validate
  kazu lexicon --lexicon numerals.cue --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLexicon(opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Validate, "validate", false, "validate the lexicon instead of printing it")

	return cmd
}

func runLexicon(opts *LexiconOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	lex, err := opts.loadLexicon()
	if err != nil {
		code, exit := ErrCodeGeneric, ExitCommandError
		switch {
		case errors.Is(err, fs.ErrNotExist):
			code = ErrCodeNotFound
		case lexicon.IsValidationError(err):
			code = ErrCodeInvalidLexicon
			if opts.Validate {
				exit = ExitFailure
			}
		}
		if outErr := formatter.Error(code, err.Error(), nil); outErr != nil {
			return outErr
		}
		return WrapExitError(exit, "failed to load lexicon", err)
	}

	if opts.Validate {
		summary := LexiconSummary{
			Name:  lex.Name(),
			Tiers: lex.Tiers(),
			Max:   strconv.FormatUint(numeral.New(numeral.WithLexicon(lex)).MaxValue(), 10),
			Valid: true,
		}
		if formatter.Structured() {
			return formatter.Success(summary)
		}
		fmt.Fprintf(formatter.Writer, "✓ lexicon %s is valid: %d magnitude tier(s), maximum %s\n", summary.Name, summary.Tiers, summary.Max)
		return nil
	}

	file := lex.File()
	if formatter.Structured() {
		return formatter.Success(file)
	}

	enc := yaml.NewEncoder(formatter.Writer)
	enc.SetIndent(2)
	if err := enc.Encode(file); err != nil {
		return err
	}
	return enc.Close()
}
