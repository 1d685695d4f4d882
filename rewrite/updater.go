package rewrite

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ZaguanLabs/frontkit"
)

// Status is the outcome of processing one page.
type Status string

const (
	StatusUpdated        Status = "updated"
	StatusUnchanged      Status = "unchanged"
	StatusAlreadyApplied Status = "already-applied"
	StatusNotFound       Status = "not-found"
	StatusError          Status = "error"
)

// OK reports whether the status counts as a success.
func (s Status) OK() bool {
	switch s {
	case StatusUpdated, StatusUnchanged, StatusAlreadyApplied:
		return true
	}
	return false
}

// FileResult describes what happened to one page.
type FileResult struct {
	Path   string
	Status Status
	Steps  []string // steps that changed the content
	Diff   string   // set in dry-run mode
	Err    error
}

// Report collects the results of a run in input order.
type Report struct {
	Files []FileResult
}

// Succeeded returns the number of pages updated, unchanged or already applied.
func (r *Report) Succeeded() int {
	n := 0
	for _, f := range r.Files {
		if f.Status.OK() {
			n++
		}
	}
	return n
}

// Failed returns the number of pages missing or in error.
func (r *Report) Failed() int {
	return len(r.Files) - r.Succeeded()
}

// Updater applies rewrite steps to pages held in a file store.
type Updater struct {
	store  frontkit.FileStore
	steps  []Step
	logger *slog.Logger
	out    io.Writer
	dryRun bool
}

// Option configures an Updater.
type Option func(*Updater)

// WithSteps replaces the default step list.
func WithSteps(steps []Step) Option {
	return func(u *Updater) {
		u.steps = steps
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(u *Updater) {
		if logger != nil {
			u.logger = logger
		}
	}
}

// WithOutput sets where progress lines and the summary are printed.
func WithOutput(w io.Writer) Option {
	return func(u *Updater) {
		if w != nil {
			u.out = w
		}
	}
}

// WithDryRun prints a unified diff per page instead of writing it.
func WithDryRun(dryRun bool) Option {
	return func(u *Updater) {
		u.dryRun = dryRun
	}
}

// NewUpdater creates an Updater reading and writing through store.
func NewUpdater(store frontkit.FileStore, opts ...Option) *Updater {
	u := &Updater{
		store:  store,
		steps:  DefaultSteps(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		out:    io.Discard,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Run processes paths in order. A failure on one page is recorded and the
// run moves on to the next.
func (u *Updater) Run(ctx context.Context, paths []string) *Report {
	fmt.Fprintln(u.out, "🚀 Auto-updating pages with responsive layout and animations...")
	fmt.Fprintln(u.out)

	report := &Report{Files: make([]FileResult, 0, len(paths))}
	for _, path := range paths {
		report.Files = append(report.Files, u.UpdateFile(ctx, path))
	}

	fmt.Fprintln(u.out)
	fmt.Fprintln(u.out, "📊 Summary:")
	fmt.Fprintf(u.out, "✅ Successfully updated: %d files\n", report.Succeeded())
	fmt.Fprintf(u.out, "❌ Failed: %d files\n", report.Failed())
	fmt.Fprintln(u.out)
	fmt.Fprintln(u.out, "🎉 Done! Please test the pages.")

	return report
}

// UpdateFile rewrites a single page. It never panics; faults raised by a
// step come back as a *frontkit.StepError in the result.
func (u *Updater) UpdateFile(ctx context.Context, path string) FileResult {
	res := u.updateFile(ctx, path)
	if res.Status == StatusError {
		fmt.Fprintf(u.out, "❌ Error processing %s: %v\n", path, res.Err)
		u.logger.Error("page rewrite failed", "path", path, "error", res.Err)
	}
	return res
}

func (u *Updater) updateFile(ctx context.Context, path string) (res FileResult) {
	res.Path = path

	if err := ctx.Err(); err != nil {
		res.Status, res.Err = StatusError, err
		return res
	}

	exists, err := u.store.Exists(ctx, path)
	if err != nil {
		res.Status, res.Err = StatusError, &frontkit.FileError{Path: path, Op: "stat", Cause: err}
		return res
	}
	if !exists {
		fmt.Fprintf(u.out, "⚠️  File not found: %s\n", path)
		u.logger.Warn("page not found", "path", path)
		res.Status = StatusNotFound
		return res
	}

	fmt.Fprintf(u.out, "🔄 Processing: %s\n", path)

	data, err := u.store.ReadFile(ctx, path)
	if err != nil {
		res.Status, res.Err = StatusError, &frontkit.FileError{Path: path, Op: "read", Cause: err}
		return res
	}
	content := string(data)

	if IsApplied(content) {
		fmt.Fprintf(u.out, "✅ Already updated: %s\n", path)
		res.Status = StatusAlreadyApplied
		return res
	}

	updated, changed, err := u.apply(path, content)
	if err != nil {
		res.Status, res.Err = StatusError, err
		return res
	}
	res.Steps = changed
	u.logger.Debug("steps applied", "path", path, "changed", changed)

	if updated == content {
		fmt.Fprintf(u.out, "✅ No changes needed: %s\n", path)
		res.Status = StatusUnchanged
		return res
	}

	if u.dryRun {
		diff, err := frontkit.UnifiedDiff(path, path, content, updated)
		if err != nil {
			res.Status, res.Err = StatusError, err
			return res
		}
		res.Diff = diff
		fmt.Fprint(u.out, diff)
		fmt.Fprintf(u.out, "📝 Would update: %s\n", path)
		res.Status = StatusUpdated
		return res
	}

	if err := u.store.WriteFile(ctx, path, []byte(updated)); err != nil {
		res.Status, res.Err = StatusError, &frontkit.FileError{Path: path, Op: "write", Cause: err}
		return res
	}

	fmt.Fprintf(u.out, "✅ Updated: %s\n", path)
	res.Status = StatusUpdated
	return res
}

// apply runs the configured steps, converting a panic in any step into a
// StepError naming it.
func (u *Updater) apply(path, content string) (out string, changed []string, err error) {
	var current string
	defer func() {
		if r := recover(); r != nil {
			err = &frontkit.StepError{Step: current, Path: path, Cause: fmt.Errorf("panic: %v", r)}
		}
	}()

	for _, step := range u.steps {
		current = step.Name
		next := step.Apply(content)
		if next != content {
			changed = append(changed, step.Name)
		}
		content = next
	}
	return content, changed, nil
}
