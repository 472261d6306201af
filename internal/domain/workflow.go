// Package domain implements run assembly and scoring: shard normalization and
// merging, focus area classification, score aggregation, and the workflows
// that tie them to storage and the UI.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"wptscore.dev/pkg/wptscore/internal/adapter"
	"wptscore.dev/pkg/wptscore/internal/controller"
	m "wptscore.dev/pkg/wptscore/internal/model"
)

// DateLayout is the layout of run dates, which are also the stored file names.
const DateLayout = "2006-01-02"

// wptRevisionLength is how much of the WPT commit hash is published.
const wptRevisionLength = 9

var (
	// ErrNoChunks is returned when a chunks directory holds no reports.
	ErrNoChunks = errors.New("no chunks found")
	// ErrNoRuns is returned when the runs directory holds no runs.
	ErrNoRuns = errors.New("no runs found")
	// ErrRunNotFound is returned when a requested run date is not stored.
	ErrRunNotFound = errors.New("run not found")
	// ErrInvalidDate is returned for run dates not in DateLayout.
	ErrInvalidDate = errors.New("invalid run date")
)

// RecalcArgs contains the arguments for recalculating the scores of every run.
type RecalcArgs struct {
	Runs   m.Path
	Site   m.Path
	Format adapter.SiteFormat
	// Threads bounds how many runs are loaded and scored at once.
	Threads int
	// Baseline is the date of the baseline run; empty selects the latest run.
	Baseline string
	Areas    []AreaSpec
}

// AddArgs contains the arguments for assembling a new run from its chunks.
type AddArgs struct {
	Chunks m.Path
	Date   string
	Recalc RecalcArgs
}

// ViewArgs contains the arguments for viewing the latest published scores.
type ViewArgs struct {
	Site   m.Path
	Format adapter.SiteFormat
}

// AreasArgs contains the arguments for listing focus areas.
type AreasArgs struct {
	Tests []string
	Areas []AreaSpec
}

// CompareArgs contains the arguments for comparing the scores of two runs.
type CompareArgs struct {
	Runs     m.Path
	Baseline string
	From     string
	To       string
	Areas    []AreaSpec
}

// Workflow defines the operations exposed by the CLI.
type Workflow interface {
	Add(ctx context.Context, args AddArgs) error
	Recalc(ctx context.Context, args RecalcArgs) error
	View(ctx context.Context, args ViewArgs) error
	Areas(ctx context.Context, args AreasArgs) error
	Compare(ctx context.Context, args CompareArgs) error
}

type workflow struct {
	chunks adapter.ChunkSource
	runs   adapter.RunStore
	site   adapter.SiteStore
	ui     controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	chunks adapter.ChunkSource,
	runs adapter.RunStore,
	site adapter.SiteStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		chunks: chunks,
		runs:   runs,
		site:   site,
		ui:     ui,
	}
}

// Add assembles the chunks of a run, stores it under its date and then
// recalculates every score.
func (w *workflow) Add(ctx context.Context, args AddArgs) error {
	if _, err := time.Parse(DateLayout, args.Date); err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidDate, args.Date, err)
	}

	chunks, err := w.chunks.List(args.Chunks)
	if err != nil {
		return fmt.Errorf("list chunks: %w", err)
	}

	if len(chunks) == 0 {
		return fmt.Errorf("%w in %s", ErrNoChunks, args.Chunks)
	}

	shards, err := w.normalizeChunks(ctx, chunks, args.Recalc.Threads)
	if err != nil {
		return err
	}

	run, err := AssembleRun(shards...)
	if err != nil {
		slog.Error("Failed to assemble run", "chunks", args.Chunks, "error", err)
		return fmt.Errorf("assemble run: %w", err)
	}

	path, err := w.runs.Save(args.Recalc.Runs, args.Date, run)
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}

	w.ui.DisplayAssembly(ctx, len(chunks), len(run.TestScores), path)

	return w.Recalc(ctx, args.Recalc)
}

func (w *workflow) normalizeChunks(ctx context.Context, chunks []m.ChunkFile, threads int) ([]m.ProcessedRun, error) {
	shards := make([]m.ProcessedRun, len(chunks))

	group, groupCtx := errgroup.WithContext(ctx)
	if threads > 0 {
		group.SetLimit(threads)
	}

	for i, chunk := range chunks {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			slog.Info("Processing chunk", "chunk", chunk.Name)

			report, err := w.chunks.Read(chunk)
			if err != nil {
				return err
			}

			shard, err := Normalize(report)
			if err != nil {
				slog.Error("Failed to normalize chunk", "chunk", chunk.Name, "error", err)
				return fmt.Errorf("chunk %s: %w", chunk.Name, err)
			}

			shards[i] = shard

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return shards, nil
}

// Recalc scores every stored run against the baseline run and publishes the
// score documents.
func (w *workflow) Recalc(ctx context.Context, args RecalcArgs) error {
	if err := w.ui.Start(ctx, controller.WithRecalcMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.ui.Close(ctx)

	catalog, err := CatalogWithSpecs(args.Areas)
	if err != nil {
		return fmt.Errorf("focus areas: %w", err)
	}

	runFiles, err := w.listRuns(args.Runs)
	if err != nil {
		return err
	}

	baselineFile, err := selectRun(runFiles, args.Baseline)
	if err != nil {
		return err
	}

	slog.Info("Reading baseline run", "path", baselineFile.Path)

	baseline, err := w.runs.Load(baselineFile.Path)
	if err != nil {
		return fmt.Errorf("load baseline: %w", err)
	}

	slog.Info("Building focus area map", "tests", len(baseline.TestScores))
	areaMap := catalog.Classify(baseline)

	rows, err := w.scoreRuns(ctx, runFiles, baselineFile, baseline, areaMap, catalog.Keys(), args.Threads)
	if err != nil {
		slog.Error("Failed to score runs", "error", err)
		return fmt.Errorf("score runs: %w", err)
	}

	areas := catalog.Sorted()
	focusAreas := m.NewFocusAreas(areas)
	lastRun := rows[len(rows)-1]

	err = w.site.Save(args.Site, args.Format,
		m.ScoresDocument{FocusAreas: focusAreas, Runs: rows},
		m.LastRunDocument{FocusAreas: focusAreas, LastRun: &lastRun},
	)
	if err != nil {
		return fmt.Errorf("publish scores: %w", err)
	}

	return w.ui.DisplayScores(ctx, areas, lastRun)
}

func (w *workflow) listRuns(dir m.Path) ([]m.RunFile, error) {
	runFiles, err := w.runs.List(dir)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	if len(runFiles) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoRuns, dir)
	}

	return runFiles, nil
}

// selectRun returns the run stored for date, or the latest run if date is empty.
func selectRun(runFiles []m.RunFile, date string) (m.RunFile, error) {
	if date == "" {
		return runFiles[len(runFiles)-1], nil
	}

	for _, runFile := range runFiles {
		if runFile.Date == date {
			return runFile, nil
		}
	}

	return m.RunFile{}, fmt.Errorf("%w: %s", ErrRunNotFound, date)
}

// scoreRuns scores every run on up to threads workers. Rows come back in
// date order whatever order the workers finish in.
func (w *workflow) scoreRuns(
	ctx context.Context,
	runFiles []m.RunFile,
	baselineFile m.RunFile,
	baseline m.ProcessedRun,
	areaMap m.FocusAreaMap,
	keys []string,
	threads int,
) ([]m.ScoreRow, error) {
	rows := make([]m.ScoreRow, len(runFiles))

	var done atomic.Int64

	group, groupCtx := errgroup.WithContext(ctx)
	if threads > 0 {
		group.SetLimit(threads)
	}

	for i, runFile := range runFiles {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			run := baseline
			if runFile.Path != baselineFile.Path {
				slog.Debug("Reading run", "path", runFile.Path)

				loaded, err := w.runs.Load(runFile.Path)
				if err != nil {
					return err
				}

				run = loaded
			}

			rows[i] = NewScoreRow(runFile.Date, run, baseline, areaMap, keys)
			w.ui.DisplayProgress(groupCtx, int(done.Add(1)), len(runFiles), runFile)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date < rows[j].Date
	})

	return rows, nil
}

// NewScoreRow scores run against baseline and labels it with its date and revisions.
func NewScoreRow(date string, run, baseline m.ProcessedRun, areaMap m.FocusAreaMap, keys []string) m.ScoreRow {
	revision := run.RunInfo.String(m.RunInfoRevision)
	if len(revision) > wptRevisionLength {
		revision = revision[:wptRevisionLength]
	}

	return m.ScoreRow{
		Date:            date,
		WPTRevision:     revision,
		ProductRevision: run.RunInfo.String(m.RunInfoBrowserVersion),
		Scores:          Score(run, baseline, areaMap, keys...).AreaScores(),
	}
}

// View shows the scores of the latest published run.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	document, err := w.site.LoadLastRun(args.Site, args.Format)
	if err != nil {
		return fmt.Errorf("load last run: %w", err)
	}

	if document.LastRun == nil {
		return fmt.Errorf("%w in %s", ErrNoRuns, args.Site)
	}

	areas := make([]m.AreaInfo, 0, len(document.FocusAreas.AreaKeys))
	for _, key := range document.FocusAreas.AreaKeys {
		areas = append(areas, m.AreaInfo{Key: key, Name: document.FocusAreas.AreaNames[key]})
	}

	if err := w.ui.Start(ctx, controller.WithViewMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	if err := w.ui.DisplayScores(ctx, areas, *document.LastRun); err != nil {
		w.ui.Close(ctx)
		return fmt.Errorf("display: %w", err)
	}

	w.ui.Wait(ctx)
	w.ui.Close(ctx)

	return nil
}

// Areas lists the focus area catalog, or the areas of the given tests.
func (w *workflow) Areas(ctx context.Context, args AreasArgs) error {
	catalog, err := CatalogWithSpecs(args.Areas)
	if err != nil {
		return fmt.Errorf("focus areas: %w", err)
	}

	var matches map[string][]string

	if len(args.Tests) > 0 {
		matches = make(map[string][]string, len(args.Tests))
		for _, test := range args.Tests {
			matches[test] = catalog.Match(test)
		}
	}

	return w.ui.DisplayAreas(ctx, catalog.Sorted(), matches)
}
