package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"mahjong-hand/report"
)

var ErrBatchFailed = errors.New("some hands could not be evaluated")

// job is one hand line of a batch file.
type job struct {
	line  int
	input string
}

// result is filled by exactly one worker.
type result struct {
	summary string
	err     error
}

func newBatchCmd(a *app) *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Score every hand of a file, one per line",
		Long: "batch reads one hand per line in the notation accepted by eval. Blank lines\n" +
			"and lines starting with # are skipped. Use - to read stdin.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("workers") {
				if workers < 1 {
					return errors.Errorf("workers must be positive, got %d", workers)
				}
				a.cfg.Batch.Workers = workers
			}

			in := cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Wrap(err, "open batch file")
				}
				defer f.Close()
				in = f
			}

			jobs, err := readJobs(in)
			if err != nil {
				return err
			}
			results, err := a.runBatch(cmd.Context(), jobs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0
			for i, r := range results {
				if r.err != nil {
					failed++
					fmt.Fprintf(out, "line %d: %s: error: %v\n", jobs[i].line, jobs[i].input, r.err)
					continue
				}
				fmt.Fprintln(out, r.summary)
			}
			a.logger.WithFields(logrus.Fields{"hands": len(jobs), "failed": failed}).Info("batch done")
			if failed > 0 {
				return errors.Wrapf(ErrBatchFailed, "%d of %d", failed, len(jobs))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "number of concurrent workers (default from config)")
	return cmd
}

func readJobs(r io.Reader) ([]job, error) {
	var jobs []job
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		jobs = append(jobs, job{line: n, input: line})
	}
	return jobs, errors.Wrap(scanner.Err(), "read batch")
}

// runBatch evaluates the jobs on a bounded pool. A hand that fails to parse
// or score is recorded in its result; only cancellation stops the batch.
func (a *app) runBatch(ctx context.Context, jobs []job) ([]result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]result, len(jobs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Batch.Workers)
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			entry := a.logger.WithFields(logrus.Fields{
				"request_id": uuid.NewString(),
				"line":       j.line,
			})
			ev, err := a.evaluate(j.input, nil)
			if err != nil {
				entry.WithError(err).Warn("hand rejected")
				results[i] = result{err: err}
				return nil
			}
			entry.WithField("winning", ev.Winning()).Debug("hand scored")
			results[i] = result{summary: report.Summary(ev)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "batch cancelled")
	}
	return results, nil
}
