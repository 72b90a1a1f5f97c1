package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/kazu/internal/lexicon"
	"github.com/roach88/kazu/internal/numeral"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json" | "yaml"
	Lexicon string // optional lexicon file
	Romaji  string // "hepburn" | "wapuro"
	Euphony bool
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// NewRootCommand creates the root command for the kazu CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "kazu",
		Short: "kazu - Japanese numerals",
		Long:  "Spell non-negative integers as Japanese numerals in kanji, katakana and romaji.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if _, err := lexicon.ParseRomajiStyle(opts.Romaji); err != nil {
				return WrapExitError(ExitCommandError, "invalid --romaji", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.Lexicon, "lexicon", "", "lexicon file (.yaml, .yml or .cue); default is the built-in standard lexicon")
	cmd.PersistentFlags().StringVar(&opts.Romaji, "romaji", "hepburn", "romaji style (hepburn|wapuro)")
	cmd.PersistentFlags().BoolVar(&opts.Euphony, "euphony", false, "use euphonic compounds (sanbyaku, happyaku, sanzen, ...)")

	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewLexiconCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))
	cmd.AddCommand(NewVerifyCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}

// formatter returns an OutputFormatter writing to the command's streams.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Diagnostics go to stderr to keep JSON/YAML clean
		Verbose:   o.Verbose,
	}
}

// logger returns a text logger on the command's stderr, at Debug level
// when --verbose is set.
func (o *RootOptions) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if o.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// loadLexicon returns the lexicon named by --lexicon, or the default.
func (o *RootOptions) loadLexicon() (*lexicon.Lexicon, error) {
	if o.Lexicon == "" {
		return lexicon.Default(), nil
	}
	return lexicon.Load(o.Lexicon)
}

// converter builds the converter described by the global flags.
// Errors are ExitErrors ready to be returned from RunE.
func (o *RootOptions) converter() (*numeral.Converter, error) {
	style, err := lexicon.ParseRomajiStyle(o.Romaji)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid --romaji", err)
	}
	lex, err := o.loadLexicon()
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load lexicon", err)
	}
	return numeral.New(
		numeral.WithLexicon(lex),
		numeral.WithRomajiStyle(style),
		numeral.WithEuphony(o.Euphony),
	), nil
}
