// Package walker discovers the files a batch run should process and fans
// them out to a fixed-size worker pool, aggregating each worker's result
// (and any IO/parse failures) back on a single consumer goroutine.
package walker

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	aerrors "github.com/edgard/autocorrect/internal/errors"
	"github.com/edgard/autocorrect/internal/ignorer"
)

// Skipper decides whether a discovered path should be excluded from the
// walk, beyond the ignore-glob layer. Neither Discover nor Run takes one;
// the per-file "autocorrect: false" directive is checked by the
// autocorrect package's FormatFor/LintFor once a file has been read.
type Skipper func(path string) bool

// Discover expands args (files, directories, and bare glob patterns, per
// SPEC_FULL.md §10's glob-expansion note) into a sorted, de-duplicated list
// of regular file paths, walking directories recursively and excluding
// anything ig matches.
func Discover(args []string, ig *ignorer.Ignorer) ([]string, error) {
	seen := make(map[string]bool)

	var files []string

	add := func(path string) error {
		if seen[path] || ig.Match(path) {
			return nil
		}

		seen[path] = true
		files = append(files, path)

		return nil
	}

	for _, arg := range args {
		info, err := os.Stat(arg)

		switch {
		case err == nil && info.IsDir():
			walkErr := filepath.WalkDir(arg, func(path string, d os.DirEntry, err error) error {
				if err != nil {
					return err
				}

				if d.IsDir() {
					if ig.Match(path) {
						return filepath.SkipDir
					}

					return nil
				}

				return add(path)
			})
			if walkErr != nil {
				return nil, aerrors.NewIOError("walking "+arg, walkErr)
			}
		case err == nil:
			if addErr := add(arg); addErr != nil {
				return nil, addErr
			}
		default:
			matches, globErr := filepath.Glob(arg)
			if globErr != nil || len(matches) == 0 {
				return nil, aerrors.NewIOError("no such file or directory: "+arg, err)
			}

			for _, m := range matches {
				if addErr := add(m); addErr != nil {
					return nil, addErr
				}
			}
		}
	}

	sort.Strings(files)

	return files, nil
}

// Job is one unit of work: a discovered path, ready to be read and
// processed by a worker.
type Job struct {
	Path string
}

// Outcome is one worker's result for a single path.
type Outcome struct {
	Path string
	Err  error
}

// Run fans paths out across threads worker goroutines, invoking process for
// each one, and collects every error into a single *multierror.Error so a
// batch run can report every failure instead of stopping at the first.
// each is called once per path with its Outcome (including a nil Err on
// success), in no particular order, for progress reporting.
func Run(ctx context.Context, paths []string, threads int, process func(path string) error, each func(Outcome)) error {
	if threads < 1 {
		threads = 1
	}

	jobs := make(chan Job)

	g, gctx := errgroup.WithContext(ctx)

	// Buffered to len(paths): every dispatched job produces exactly one
	// Outcome, even one canceled via gctx, so the consumer below always
	// reads exactly len(paths) results and never blocks.
	results := make(chan Outcome, len(paths))

	for i := 0; i < threads; i++ {
		g.Go(func() error {
			for job := range jobs {
				if gctx.Err() != nil {
					results <- Outcome{Path: job.Path, Err: gctx.Err()}
					continue
				}

				results <- Outcome{Path: job.Path, Err: process(job.Path)}
			}

			return nil
		})
	}

	go func() {
		defer close(jobs)

		for _, p := range paths {
			jobs <- Job{Path: p}
		}
	}()

	done := make(chan struct{})

	var errs *multierror.Error

	go func() {
		defer close(done)

		for i := 0; i < len(paths); i++ {
			outcome := <-results

			if outcome.Err != nil {
				errs = multierror.Append(errs, outcome.Err)
			}

			if each != nil {
				each(outcome)
			}
		}
	}()

	waitErr := g.Wait()
	<-done

	if waitErr != nil {
		errs = multierror.Append(errs, waitErr)
	}

	return errs.ErrorOrNil()
}

// FileTypeOf returns the lower-cased extension (without its leading dot)
// used to select a document's format, e.g. "go" for "main.go".
func FileTypeOf(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}
