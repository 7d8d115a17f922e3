// Package cli implements the autocorrect command-line tree: a root command
// that formats or lints a batch of files, and init/update subcommands.
package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/edgard/autocorrect/internal/config"
	aerrors "github.com/edgard/autocorrect/internal/errors"
	"github.com/edgard/autocorrect/internal/ignorer"
	"github.com/edgard/autocorrect/internal/logging"
	"github.com/edgard/autocorrect/internal/walker"
	"github.com/edgard/autocorrect/pkg/autocorrect"
)

// Version is the current release, reported by "autocorrect update".
const Version = "0.1.0"

// ExitError carries the process exit code a failed or finding-reporting run
// should use. main() is the only caller that acts on Code; everything else
// just treats ExitError as an ordinary error.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exiting with code %d", e.Code)
}

type rootFlags struct {
	fix     bool
	lint    bool
	typ     string
	format  string
	threads int
	config  string
	debug   bool
}

// NewRootCommand builds the root "autocorrect" command and attaches its
// init/update subcommands.
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "autocorrect [flags] [files/dirs...]",
		Short:         "Normalize spacing and punctuation at CJK/half-width boundaries",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.fix, "fix", false, "rewrite files in place")
	cmd.Flags().BoolVar(&flags.lint, "lint", false, "report diagnostics without writing (default)")
	cmd.Flags().StringVar(&flags.typ, "type", "", "force file type regardless of extension")
	cmd.Flags().StringVar(&flags.format, "format", "diff", "lint output format: diff or json")
	cmd.Flags().IntVar(&flags.threads, "threads", 0, "worker count (0 = number of CPUs)")
	cmd.Flags().StringVar(&flags.config, "config", "", "config file path (default .autocorrectrc)")
	cmd.Flags().BoolVar(&flags.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(newInitCommand())
	cmd.AddCommand(newUpdateCommand())

	return cmd
}

func runBatch(cmd *cobra.Command, args []string, flags *rootFlags) error {
	start := time.Now()

	cfg, err := config.Load(flags.config)
	if err != nil {
		return err
	}

	if err := logging.Setup(flags.debug || cfg.DebugLogging, false); err != nil {
		return err
	}

	rules := autocorrect.RuleSet{
		Spacing:     cfg.Rules.Spacing,
		Fullwidth:   cfg.Rules.Fullwidth,
		Halfwidth:   cfg.Rules.Halfwidth,
		DashSpacing: cfg.Rules.DashSpacing,
	}

	threads := flags.threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	ig := ignorer.New(cfg.Ignore)

	files, err := walker.Discover(args, ig)
	if err != nil {
		return err
	}

	mode := "lint"
	if flags.fix {
		mode = "fix"
	}

	progress := newProgress(flags.debug, flags.format)

	var (
		lintResults []autocorrect.LintResult
		lintMu      sync.Mutex
	)

	err = walker.Run(context.Background(), files, threads, func(path string) error {
		filetype := flags.typ
		if filetype == "" {
			filetype = walker.FileTypeOf(path)
		}

		raw, readErr := os.ReadFile(path)
		if readErr != nil {
			return aerrors.NewIOError("read failed", readErr)
		}

		switch mode {
		case "fix":
			result := autocorrect.FormatForRules(string(raw), filetype, rules)
			if result.Err != "" {
				return aerrors.NewParseError(path+": "+result.Err, nil)
			}

			if result.Out != string(raw) {
				// A write failure here flows into the aggregated error below
				// (via walker.Run's multierror), which already exits 1 in
				// main(): fix-mode write errors are fatal the same way any
				// other per-file failure is.
				if writeErr := os.WriteFile(path, []byte(result.Out), 0o644); writeErr != nil {
					return aerrors.NewIOError("write failed", writeErr)
				}
			}

			logging.Debug("processed", "path", path, "mode", mode)

			return nil
		default:
			lint := autocorrect.LintForRules(string(raw), path, filetype, rules)
			if lint.Err != "" {
				return aerrors.NewParseError(path+": "+lint.Err, nil)
			}

			lintMu.Lock()
			lintResults = append(lintResults, lint)
			lintMu.Unlock()
			logging.Debug("processed", "path", path, "mode", mode, "findings", len(lint.Lines))

			return nil
		}
	}, func(o walker.Outcome) {
		progress.report(o.Err == nil)

		if o.Err != nil {
			logging.LogResultError(o.Path, o.Err)
		}
	})

	progress.finish()

	fmt.Fprintf(cmd.ErrOrStderr(), "AutoCorrect spent %s\n", time.Since(start).Round(time.Millisecond))

	if mode == "lint" {
		if reportErr := reportLint(cmd, lintResults, flags.format); reportErr != nil {
			return reportErr
		}
	}

	if err != nil {
		return err
	}

	if mode == "lint" && flags.format == "diff" && hasFindings(lintResults) {
		return &ExitError{Code: 1}
	}

	return nil
}

func hasFindings(results []autocorrect.LintResult) bool {
	for _, r := range results {
		if len(r.Lines) > 0 {
			return true
		}
	}

	return false
}

func reportLint(cmd *cobra.Command, results []autocorrect.LintResult, format string) error {
	out := cmd.OutOrStdout()

	if format == "json" {
		batch, err := autocorrect.BatchJSON(results)
		if err != nil {
			return err
		}

		fmt.Fprintln(out, batch)

		return nil
	}

	for _, r := range results {
		if len(r.Lines) == 0 {
			continue
		}

		fmt.Fprintln(out, r.ToDiff())
	}

	return nil
}

// progress prints one "."/"F" character per processed file to stderr, the
// way the original CLI does, but only when stderr is a terminal, output isn't
// piped to a JSON consumer and debug logging (which already prints a line per
// file) is off.
type progress struct {
	w       *os.File
	enabled bool
}

func newProgress(debug bool, format string) *progress {
	return &progress{
		w:       os.Stderr,
		enabled: !debug && format != "json" && isatty.IsTerminal(os.Stderr.Fd()),
	}
}

func (p *progress) report(ok bool) {
	if !p.enabled {
		return
	}

	if ok {
		fmt.Fprint(p.w, ".")
	} else {
		fmt.Fprint(p.w, "F")
	}
}

func (p *progress) finish() {
	if !p.enabled {
		return
	}

	fmt.Fprintln(p.w)
}
