// Package analyzer runs one extraction over a mail store: open, extract
// every item kind, aggregate statistics, serialize, close.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"mailcorpus/internal/attachments"
	"mailcorpus/internal/contextutil"
	"mailcorpus/internal/corpus"
	"mailcorpus/internal/export"
	"mailcorpus/internal/logging"
	"mailcorpus/internal/mailstore"
	"mailcorpus/internal/normalize"
	"mailcorpus/internal/source"
	"mailcorpus/internal/stats"
	"mailcorpus/internal/walker"
)

// ErrOpen is wrapped by Run when the store cannot be opened. Nothing is
// written in that case.
var ErrOpen = errors.New("failed to open store")

// State is a stage of a run.
type State int

const (
	Closed State = iota
	Open
	Extracting
	Aggregated
	Serialized
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case Extracting:
		return "extracting"
	case Aggregated:
		return "aggregated"
	case Serialized:
		return "serialized"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Options tunes a run. The zero value uses the defaults of each component
// and writes no log file.
type Options struct {
	BodyLimit  int
	TopSenders int
	// LogToFile adds <out>/analysis_<stamp>.log next to the outputs.
	LogToFile bool
	// Log configures the run log file handler.
	Log logging.Options
	// Folders overrides the well-known folder names per kind.
	Folders map[corpus.Kind][]string
	// Now is the clock. Defaults to time.Now.
	Now func() time.Time
}

// Report describes a finished run.
type Report struct {
	RunID      string
	States     []State
	Paths      export.Paths
	LogPath    string
	Statistics corpus.Statistics
	Tally      walker.Tally
}

// Analyzer runs extractions. It holds no state between runs.
type Analyzer struct {
	opener mailstore.Opener
	opts   Options
}

// New creates an Analyzer that opens stores with opener.
func New(opener mailstore.Opener, opts Options) *Analyzer {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Folders == nil {
		opts.Folders = DefaultFolders
	}
	return &Analyzer{opener: opener, opts: opts}
}

// Analyze runs one extraction with the built-in back-ends and default
// options. It reports whether the store was opened and both outputs were
// written.
func Analyze(ctx context.Context, sourcePath, outputDir string) bool {
	return New(source.Default(), Options{}).Analyze(ctx, sourcePath, outputDir)
}

// Analyze runs one extraction and reports whether the store was opened and
// both outputs were written.
func (a *Analyzer) Analyze(ctx context.Context, sourcePath, outputDir string) bool {
	_, err := a.Run(ctx, sourcePath, outputDir)
	return err == nil
}

// Run opens sourcePath and writes the corpus into outputDir. The base logger
// is taken from ctx.
//
// An open failure returns an error wrapping ErrOpen and nothing is written.
// Once the store is open every later state is reached; the returned error
// then only reports outputs that could not be written.
func (a *Analyzer) Run(ctx context.Context, sourcePath, outputDir string) (*Report, error) {
	base := contextutil.LoggerFromContext(ctx).With("source", sourcePath)
	now := a.opts.Now()
	stamp := export.Stamp(now)
	report := &Report{States: []State{Closed}}

	store, err := a.opener.Open(ctx, sourcePath)
	if err != nil {
		base.ErrorContext(ctx, "failed to open store", "error", err)
		return report, fmt.Errorf("%w: %w", ErrOpen, err)
	}

	logPath := ""
	if a.opts.LogToFile {
		logPath = filepath.Join(outputDir, "analysis_"+stamp+".log")
	}
	run, err := logging.StartRun(contextutil.LoggerFromContext(ctx), a.opts.Log, logPath, sourcePath)
	if err != nil {
		base.WarnContext(ctx, "run log unavailable, logging to the base logger only", "error", err)
		run, _ = logging.StartRun(contextutil.LoggerFromContext(ctx), a.opts.Log, "", sourcePath)
	}
	defer func() {
		_ = run.Close()
	}()
	logger := run.Logger
	ctx = contextutil.WithLogger(ctx, logger)
	report.RunID = run.ID
	report.LogPath = run.Path

	enter := func(s State) {
		report.States = append(report.States, s)
		logger.InfoContext(ctx, "run state", "state", s.String())
	}

	info := store.Info()
	enter(Open)
	logger.InfoContext(ctx, "store opened", "format", info.Format, "size", info.Size)

	enter(Extracting)
	result, tally := a.extract(ctx, store, outputDir, logger)
	report.Tally = tally
	attrs := make([]any, 0, 2*len(corpus.Kinds)+8)
	for _, k := range corpus.Kinds {
		attrs = append(attrs, string(k), result.Count(k))
	}
	attrs = append(attrs,
		"attachments", len(result.Attachments),
		"folders", tally.Folders,
		"folders_skipped", tally.FoldersSkipped,
		"items_skipped", tally.ItemsSkipped,
	)
	logger.InfoContext(ctx, "extraction finished", attrs...)

	agg := stats.Aggregator{TopN: a.opts.TopSenders, Logger: logger}
	result.Statistics = agg.Aggregate(result, corpus.RunInfo{
		Source:       sourcePath,
		SourceSize:   info.Size,
		AnalysisDate: now.Format(time.RFC3339),
	})
	report.Statistics = result.Statistics
	enter(Aggregated)

	paths, writeErr := export.NewWriter(outputDir, stamp, logger).Write(result)
	report.Paths = paths
	enter(Serialized)
	if writeErr != nil {
		logger.ErrorContext(ctx, "failed to write outputs", "error", writeErr)
	} else {
		logger.InfoContext(ctx, "outputs written", "json", paths.JSON, "csv", paths.CSV)
	}

	if err := store.Close(); err != nil {
		logger.WarnContext(ctx, "failed to close store", "error", err)
	}
	enter(Closed)

	return report, writeErr
}

// extract walks the store once for emails and once per other kind from that
// kind's well-known folder.
func (a *Analyzer) extract(ctx context.Context, store mailstore.Store, outputDir string, logger *slog.Logger) (*corpus.Result, walker.Tally) {
	result := corpus.NewResult()
	w := walker.New(logger)

	root, err := store.RootFolder()
	if err != nil {
		logger.WarnContext(ctx, "root folder unreadable, corpus is empty", "error", err)
		return result, w.Tally()
	}

	persister := attachments.NewPersister(outputDir, logger)
	n := normalize.New(persister, a.opts.BodyLimit, logger)

	result.Emails = walker.Walk(w, root, "", n.Email)
	for _, e := range result.Emails {
		result.Attachments = append(result.Attachments, e.Attachments...)
	}

	if f, path, ok := a.find(ctx, root, corpus.KindContact, logger); ok {
		result.Contacts = walker.Walk(w, f, path, n.Contact)
	}
	if f, path, ok := a.find(ctx, root, corpus.KindCalendar, logger); ok {
		result.Calendar = walker.Walk(w, f, path, n.Calendar)
	}
	if f, path, ok := a.find(ctx, root, corpus.KindTask, logger); ok {
		result.Tasks = walker.Walk(w, f, path, n.Task)
	}
	if f, path, ok := a.find(ctx, root, corpus.KindNote, logger); ok {
		result.Notes = walker.Walk(w, f, path, n.Note)
	}
	if f, path, ok := a.find(ctx, root, corpus.KindJournal, logger); ok {
		result.Journal = walker.Walk(w, f, path, n.Journal)
	}

	return result, w.Tally()
}

func (a *Analyzer) find(ctx context.Context, root mailstore.Folder, kind corpus.Kind, logger *slog.Logger) (mailstore.Folder, string, bool) {
	names := a.opts.Folders[kind]
	if len(names) == 0 {
		return nil, "", false
	}
	f, path, ok := walker.Find(root, names...)
	if !ok {
		logger.WarnContext(ctx, "folder not found", "kind", string(kind), "names", names)
		return nil, "", false
	}
	logger.DebugContext(ctx, "folder found", "kind", string(kind), "path", path)
	return f, path, true
}
