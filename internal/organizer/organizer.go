package organizer

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dorg/internal/config"
	"dorg/internal/faults"
	"dorg/internal/fileutil"
	"dorg/internal/layout"
	"dorg/internal/logging"
	"dorg/internal/timestamp"
	"dorg/internal/walker"
)

// TimeSource resolves the timestamp that drives grouping.
type TimeSource interface {
	Resolve(path string, info fs.FileInfo, source config.TimestampSource) (time.Time, error)
}

// Outcome classifies what happened to one file.
type Outcome int

const (
	OutcomeMoved Outcome = iota
	OutcomeUnchanged
	OutcomeSkipped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Result is the per-file report emitted during a run.
type Result struct {
	Source  string
	Target  string
	Outcome Outcome
	Err     error
}

// Reporter receives every per-file result as soon as it is known.
type Reporter interface {
	Report(Result)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(Result)

func (f ReporterFunc) Report(r Result) { f(r) }

// Summary aggregates the results of a run.
type Summary struct {
	Scanned     int
	Directories int
	Moved       int
	Unchanged   int
	Skipped     int
	ByKind      map[string]int
	Elapsed     time.Duration
}

func (s *Summary) add(r Result) {
	switch r.Outcome {
	case OutcomeMoved:
		s.Moved++
	case OutcomeUnchanged:
		s.Unchanged++
	case OutcomeSkipped:
		s.Skipped++
		if s.ByKind == nil {
			s.ByKind = make(map[string]int)
		}
		s.ByKind[faults.Kind(r.Err)]++
	}
}

// Organizer moves files into their year/month(/day) directories.
type Organizer struct {
	cfg      *config.Config
	logger   *slog.Logger
	times    TimeSource
	reporter Reporter
	workDir  string
	locking  bool
}

// Option customizes an Organizer.
type Option func(*Organizer)

// WithTimeSource replaces the platform timestamp resolver (used in tests).
func WithTimeSource(ts TimeSource) Option {
	return func(o *Organizer) {
		if ts != nil {
			o.times = ts
		}
	}
}

// WithReporter sets the per-file result sink.
func WithReporter(r Reporter) Option {
	return func(o *Organizer) {
		o.reporter = r
	}
}

// WithWorkDir sets the directory the legacy anchor policy resolves against.
func WithWorkDir(dir string) Option {
	return func(o *Organizer) {
		o.workDir = dir
	}
}

// WithoutLock disables the per-directory run lock.
func WithoutLock() Option {
	return func(o *Organizer) {
		o.locking = false
	}
}

// New constructs an organizer for cfg.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) *Organizer {
	o := &Organizer{
		cfg:     cfg,
		logger:  logging.NewComponentLogger(logger, "organizer"),
		times:   timestamp.NewResolver(),
		locking: true,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run organizes the configured base directory. The returned error is non-nil
// only for failures that abort the run (see faults.Fatal); per-file failures
// are counted in the summary and passed to the reporter.
func (o *Organizer) Run(ctx context.Context) (Summary, error) {
	var summary Summary
	if o.cfg == nil {
		return summary, faults.Wrap(faults.ErrConfiguration, "organizer", "run", "configuration unavailable", nil)
	}
	if err := o.cfg.Validate(); err != nil {
		return summary, err
	}
	logger := logging.WithContext(ctx, o.logger)
	startedAt := time.Now()

	if o.locking {
		lock, err := acquireRunLock(o.cfg.BaseDir)
		if err != nil {
			return summary, err
		}
		defer func() {
			if err := lock.release(); err != nil {
				logger.Debug("release run lock failed", logging.Error(err))
			}
		}()
	}

	logger.Info(
		"starting organization",
		logging.String("base_dir", o.cfg.BaseDir),
		logging.Bool("recursive", o.cfg.Recursive),
		logging.String("mode", o.cfg.Grouping.String()),
		logging.String("sort", o.cfg.Source.String()),
		logging.String("anchor", o.cfg.Anchor.String()),
	)

	entries, err := walker.Collect(o.cfg.BaseDir, o.cfg.Recursive)
	if err != nil {
		logger.Error("traversal failed; aborting run", logging.Fault(err)...)
		return summary, err
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			summary.Elapsed = time.Since(startedAt)
			return summary, err
		}
		if entry.IsDir {
			summary.Directories++
			logger.Debug("directory left in place", logging.String(logging.FieldPath, entry.Path))
			continue
		}
		summary.Scanned++
		result := o.organizeFile(ctx, entry)
		if faults.Fatal(result.Err) {
			summary.Elapsed = time.Since(startedAt)
			logger.Error("run aborted", logging.Fault(result.Err)...)
			return summary, result.Err
		}
		summary.add(result)
		if o.reporter != nil {
			o.reporter.Report(result)
		}
	}

	summary.Elapsed = time.Since(startedAt)
	logger.Info(
		"organization completed",
		logging.Int("scanned", summary.Scanned),
		logging.Int("moved", summary.Moved),
		logging.Int("unchanged", summary.Unchanged),
		logging.Int("skipped", summary.Skipped),
		logging.Duration("elapsed", summary.Elapsed),
	)
	return summary, nil
}

func (o *Organizer) organizeFile(ctx context.Context, entry walker.Entry) Result {
	logger := logging.WithContext(faults.WithPath(ctx, entry.Path), o.logger)
	result := Result{Source: entry.Path, Outcome: OutcomeSkipped}

	plan, err := o.planFile(entry)
	if err != nil {
		result.Err = err
		logSkip(logger, err)
		return result
	}
	result.Target = plan.TargetPath

	if samePath(entry.Path, plan.TargetPath) {
		result.Outcome = OutcomeUnchanged
		logger.Debug("file already organized", logging.String("target", plan.TargetPath))
		return result
	}

	if err := os.MkdirAll(plan.TargetDir, 0o755); err != nil {
		result.Err = faults.Wrap(faults.ErrMove, "organizer", "create directory", plan.TargetDir, err)
		logSkip(logger, result.Err)
		return result
	}
	if err := fileutil.Move(entry.Path, plan.TargetPath); err != nil {
		message := "rename to " + plan.TargetPath
		if errors.Is(err, fileutil.ErrPartialMove) {
			message = "copied to " + plan.TargetPath + " but source remains"
		}
		result.Err = faults.Wrap(faults.ErrMove, "organizer", "move", message, err)
		logSkip(logger, result.Err)
		return result
	}

	result.Outcome = OutcomeMoved
	logger.Debug("file moved", logging.String("target", plan.TargetPath))
	return result
}

func (o *Organizer) planFile(entry walker.Entry) (layout.Plan, error) {
	when, err := o.times.Resolve(entry.Path, entry.Info, o.cfg.Source)
	if err != nil {
		return layout.Plan{}, err
	}
	anchor, err := layout.Anchor(o.cfg.Anchor, entry.Path, o.cfg.BaseDir, o.workDir)
	if err != nil {
		return layout.Plan{}, err
	}
	return layout.Destination(timestamp.DateOf(when), o.cfg.Grouping, anchor, entry.Name)
}

func logSkip(logger *slog.Logger, err error) {
	logger.Debug("file skipped", logging.Fault(err)...)
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
