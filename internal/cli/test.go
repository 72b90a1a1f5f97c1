package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/kazu/internal/harness"
)

// TestOptions holds flags for the test command.
type TestOptions struct {
	*RootOptions
	Filter string // suite file filter (glob pattern)
}

// TestResult holds the overall test result.
type TestResult struct {
	Suites []*harness.Result `json:"suites" yaml:"suites"`
	Passed int               `json:"passed" yaml:"passed"`
	Failed int               `json:"failed" yaml:"failed"`
	Total  int               `json:"total" yaml:"total"`
}

// NewTestCommand creates the test command.
func NewTestCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TestOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "test <suite.yaml|dir>...",
		Short: "Run conformance suites",
		Long: `Run YAML conformance suites.

Each suite names its own lexicon, romaji style and euphony setting and
lists numbers with their expected spellings or error codes. The global
--lexicon, --romaji and --euphony flags do not apply.

Exit codes:
  0 - All suites passed
  1 - One or more suites failed
  2 - Command error (missing path, malformed suite, bad lexicon)

Examples:
  kazu test ./testdata/cases
  kazu test ./testdata/cases --filter "euph*"
  kazu test basics.yaml --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTests(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter suite files by glob pattern (matched against the file name without extension)")

	return cmd
}

func runTests(opts *TestOptions, paths []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	logger := opts.logger(cmd)

	files, err := findSuiteFiles(paths, opts.Filter)
	if err != nil {
		code := ErrCodeGeneric
		if errors.Is(err, fs.ErrNotExist) {
			code = ErrCodeNotFound
		}
		if outErr := formatter.Error(code, err.Error(), nil); outErr != nil {
			return outErr
		}
		return WrapExitError(ExitCommandError, "failed to find suites", err)
	}

	result := TestResult{
		Suites: make([]*harness.Result, 0, len(files)),
		Total:  len(files),
	}

	for _, file := range files {
		suite, err := harness.LoadSuite(file)
		if err != nil {
			_ = formatter.Error(ErrCodeInvalidSuite, err.Error(), map[string]string{"file": file})
			return WrapExitError(ExitCommandError, fmt.Sprintf("failed to load suite %s", file), err)
		}

		conv, err := suite.Converter()
		if err != nil {
			_ = formatter.Error(ErrCodeInvalidLexicon, err.Error(), map[string]string{"file": file})
			return WrapExitError(ExitCommandError, fmt.Sprintf("failed to build converter for %s", file), err)
		}

		formatter.VerboseLog("running %s (%d cases)", file, len(suite.Cases))
		res := harness.New(conv, logger).Run(suite)
		result.Suites = append(result.Suites, res)
		if res.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
	}

	if formatter.Structured() {
		return outputTestStructured(formatter, result)
	}
	return outputTestText(cmd, result)
}

// findSuiteFiles expands paths into suite files, keeping argument order.
func findSuiteFiles(paths []string, filter string) ([]string, error) {
	var files []string
	for _, p := range paths {
		found, err := harness.FindSuites(p)
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			if filter != "" {
				name := strings.TrimSuffix(filepath.Base(f), filepath.Ext(f))
				matched, err := filepath.Match(filter, name)
				if err != nil {
					return nil, fmt.Errorf("invalid filter pattern: %w", err)
				}
				if !matched {
					continue
				}
			}
			files = append(files, f)
		}
	}
	return files, nil
}

// outputTestStructured outputs the test result as JSON or YAML.
func outputTestStructured(formatter *OutputFormatter, result TestResult) error {
	if result.Failed == 0 {
		return formatter.Success(result)
	}

	msg := fmt.Sprintf("%d suite(s) failed", result.Failed)
	if err := formatter.Failure(result, ErrCodeTestFailed, msg); err != nil {
		return err
	}
	// Test failures = exit code 1
	return NewExitError(ExitFailure, msg)
}

// outputTestText outputs the test result as text.
func outputTestText(cmd *cobra.Command, result TestResult) error {
	w := cmd.OutOrStdout()

	if result.Total == 0 {
		fmt.Fprintln(w, "No suites found.")
		return nil
	}

	for _, res := range result.Suites {
		fmt.Fprint(w, res.Summary())
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Test Summary: %d passed, %d failed, %d total\n", result.Passed, result.Failed, result.Total)

	if result.Failed > 0 {
		// Test failures = exit code 1
		return NewExitError(ExitFailure, fmt.Sprintf("%d suite(s) failed", result.Failed))
	}

	fmt.Fprintln(w, "✓ All suites passed")
	return nil
}
