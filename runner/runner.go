// Package runner provides the batch runtime: it resolves Go files under root
// directories, fans them out to a worker pool, runs one inspector per
// worker, and aggregates a sorted Report.
package runner

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"time"

	"github.com/comalice/immutalint"
	"github.com/comalice/immutalint/internal/core"
	"github.com/comalice/immutalint/internal/extensibility"
	"github.com/comalice/immutalint/internal/primitives"
)

// Config configures the batch run.
type Config struct {
	Workers       int      // parallel inspectors; default GOMAXPROCS
	IncludeTests  bool     // also inspect _test.go files
	Exclude       []string // directory base names to skip
	MaxViolations int      // per-file cap; 0 means unlimited
}

// Logger receives progress notes during a run: parse failures and capped
// files. *log.Logger satisfies it, as does *zerolog.Logger.
type Logger interface {
	Printf(format string, args ...any)
}

// Runner executes batch runs. Safe for reuse; each Run is independent.
type Runner struct {
	cfg      Config
	rules    []immutalint.Rule
	resolver immutalint.SourceResolver
	filter   immutalint.RuleFilter
	baseline immutalint.Baseline
	logger   Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithRules replaces the default ruleset.
func WithRules(rules ...immutalint.Rule) Option {
	return func(r *Runner) {
		r.rules = rules
	}
}

// WithResolver replaces the filesystem resolver, e.g. for virtual inputs.
func WithResolver(resolver immutalint.SourceResolver) Option {
	return func(r *Runner) {
		r.resolver = resolver
	}
}

// WithFilter applies a filter to every violation before it is kept.
func WithFilter(filter immutalint.RuleFilter) Option {
	return func(r *Runner) {
		r.filter = filter
	}
}

// WithBaseline suppresses previously recorded findings.
func WithBaseline(baseline immutalint.Baseline) Option {
	return func(r *Runner) {
		r.baseline = baseline
	}
}

// WithLogger wires a logger that is told about files that fail to parse and
// files truncated by the violation cap.
func WithLogger(logger Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// New creates a Runner. Zero-value Config gives GOMAXPROCS workers, no
// tests, no excludes, no cap.
func New(cfg Config, opts ...Option) *Runner {
	r := &Runner{cfg: cfg, rules: immutalint.DefaultRules()}
	for _, opt := range opts {
		opt(r)
	}
	if r.resolver == nil {
		fsr := extensibility.NewFSResolver()
		fsr.IncludeTests = cfg.IncludeTests
		fsr.Exclude = cfg.Exclude
		r.resolver = fsr
	}
	return r
}

// Run resolves and inspects every file under the roots and returns the
// aggregate report, sorted by position. Worker count does not affect the
// result, only the wall time. When a file hits the violation cap its
// findings up to the cap stay in the report, the remaining files are still
// inspected, and the run returns ErrTooManyViolations alongside the report.
func (r *Runner) Run(ctx context.Context, roots ...string) (immutalint.Report, error) {
	report := primitives.NewReport()

	files, err := r.resolver.Resolve(ctx, roots)
	if err != nil {
		return report, err
	}

	workers := r.cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(files) && len(files) > 0 {
		workers = len(files)
	}

	fileCh := make(chan primitives.SourceFile)
	var (
		mu        sync.Mutex
		collected []primitives.Violation
		runErr    error
	)
	// First error wins, except that a cap notice never masks a real error.
	setErr := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if runErr == nil ||
			(errors.Is(runErr, core.ErrTooManyViolations) && !errors.Is(err, core.ErrTooManyViolations)) {
			runErr = err
		}
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ins, err := r.inspector()
			if err != nil {
				setErr(err)
				for range fileCh {
					// Drain so the feeder never blocks.
				}
				return
			}
			failed := false
			for file := range fileCh {
				if failed {
					continue
				}
				violations, err := ins.Check(ctx, file)
				switch {
				case errors.Is(err, core.ErrTooManyViolations):
					// The cap truncates this file; keep what was collected
					// before it and carry on with the rest of the batch.
					setErr(err)
					if r.logger != nil {
						r.logger.Printf("%s: violation cap reached after %d findings", file.Name, len(violations))
					}
				case err != nil:
					setErr(err)
					failed = true
					continue
				}
				if r.logger != nil {
					for _, v := range violations {
						if v.Rule == core.ParseRuleID {
							r.logger.Printf("%s: %s", file.Name, v.Message)
						}
					}
				}
				mu.Lock()
				collected = append(collected, violations...)
				mu.Unlock()
			}
		}()
	}

feed:
	for _, file := range files {
		select {
		case fileCh <- file:
		case <-ctx.Done():
			setErr(ctx.Err())
			break feed
		}
	}
	close(fileCh)
	wg.Wait()

	report.Files = len(files)
	report.Add(collected...)
	report.Sort()
	report.Duration = time.Since(report.Started)
	return report, runErr
}

func (r *Runner) inspector() (*core.Inspector, error) {
	var opts []core.Option
	if r.filter != nil {
		opts = append(opts, core.WithFilter(r.filter))
	}
	if r.baseline != nil {
		opts = append(opts, core.WithBaseline(r.baseline))
	}
	if r.cfg.MaxViolations > 0 {
		opts = append(opts, core.WithMaxViolations(r.cfg.MaxViolations))
	}
	return core.NewInspector(r.rules, opts...)
}
