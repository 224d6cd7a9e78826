// Package batch renders a list of charts, carrying on past failures and
// reporting them together at the end.
package batch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/zloyboy/benchchart/chart"
	"golang.org/x/sync/errgroup"
)

// ErrDuplicatePath is reported for every job after the first that targets
// an already claimed output path. Such jobs are never rendered.
var ErrDuplicatePath = errors.New("duplicate output path")

// Job is one chart and the file it is written to. Key identifies the job in
// logs and failures.
type Job struct {
	Key   string
	Path  string
	Chart *chart.BarChart
}

// Failure is a job that did not produce its file.
type Failure struct {
	Key  string
	Path string
	Err  error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("chart %q (%s): %v", f.Key, f.Path, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Report lists the outcome of a batch in job order.
type Report struct {
	Written  []string
	Failures []*Failure
}

// Err combines every failure into one error, or returns nil.
func (r *Report) Err() error {
	errs := make([]error, 0, len(r.Failures))
	for _, f := range r.Failures {
		errs = append(errs, f)
	}
	return errors.Join(errs...)
}

// Options tunes Run. The zero value renders sequentially and logs to the
// logrus standard logger.
type Options struct {
	// Parallelism is the number of charts rendered at once.
	Parallelism int
	Logger      logrus.FieldLogger
}

func (o Options) parallelism() int {
	if o.Parallelism > 0 {
		return o.Parallelism
	}
	return 1
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	return logrus.StandardLogger()
}

// Run renders every job and never stops early on a failed chart. Jobs not
// yet started when ctx is done fail with the context error.
func Run(ctx context.Context, jobs []Job, opts Options) *Report {
	log := opts.logger()
	results := make([]error, len(jobs))

	owners := make(map[string]string, len(jobs))
	var g errgroup.Group
	g.SetLimit(opts.parallelism())
	for i, job := range jobs {
		path := filepath.Clean(job.Path)
		if owner, ok := owners[path]; ok {
			results[i] = errors.Wrapf(ErrDuplicatePath, "%s is already written by %q", job.Path, owner)
			continue
		}
		owners[path] = job.Key

		i, job := i, job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = errors.Wrap(err, "batch stopped")
				return nil
			}
			log.WithField("key", job.Key).Debug("rendering chart")
			results[i] = render(job)
			return nil
		})
	}
	_ = g.Wait()

	report := &Report{}
	for i, job := range jobs {
		entry := log.WithFields(logrus.Fields{"key": job.Key, "path": job.Path})
		if err := results[i]; err != nil {
			entry.WithError(err).Error("chart failed")
			report.Failures = append(report.Failures, &Failure{Key: job.Key, Path: job.Path, Err: err})
			continue
		}
		entry.Info("chart written")
		report.Written = append(report.Written, job.Path)
	}
	return report
}

func render(job Job) error {
	if job.Chart == nil {
		return errors.Wrap(chart.ErrInvalidDataset, "no chart")
	}
	return job.Chart.Save(job.Path)
}
