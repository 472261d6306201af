package domain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pmezard/go-difflib/difflib"
	m "wptscore.dev/pkg/wptscore/internal/model"
)

// Compare scores two stored runs against the same baseline and shows the
// per-area differences as a unified diff.
func (w *workflow) Compare(ctx context.Context, args CompareArgs) error {
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

	fromFile, err := selectRun(runFiles, args.From)
	if err != nil {
		return err
	}

	toFile, err := selectRun(runFiles, args.To)
	if err != nil {
		return err
	}

	baseline, err := w.runs.Load(baselineFile.Path)
	if err != nil {
		return fmt.Errorf("load baseline: %w", err)
	}

	areaMap := catalog.Classify(baseline)
	areas := catalog.Sorted()
	keys := catalog.Keys()

	rows := make([]m.ScoreRow, 0, 2)

	for _, runFile := range []m.RunFile{fromFile, toFile} {
		run, err := w.runs.Load(runFile.Path)
		if err != nil {
			return fmt.Errorf("load run %s: %w", runFile.Date, err)
		}

		rows = append(rows, NewScoreRow(runFile.Date, run, baseline, areaMap, keys))
	}

	diff, err := DiffScores(areas, rows[0], rows[1])
	if err != nil {
		slog.Error("Failed to diff runs", "from", fromFile.Date, "to", toFile.Date, "error", err)
		return fmt.Errorf("diff runs: %w", err)
	}

	return w.ui.DisplayComparison(ctx, diff)
}

// DiffScores renders the area scores of two rows as a unified diff, one line
// per area in display order. Identical rows give an empty diff.
func DiffScores(areas []m.AreaInfo, from, to m.ScoreRow) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        scoreLines(areas, from),
		B:        scoreLines(areas, to),
		FromFile: from.Date,
		ToFile:   to.Date,
		Context:  3,
	}

	return difflib.GetUnifiedDiffString(diff)
}

func scoreLines(areas []m.AreaInfo, row m.ScoreRow) []string {
	lines := make([]string, 0, len(areas))

	for _, area := range areas {
		score, ok := row.Scores[area.Key]
		if !ok {
			continue
		}

		lines = append(lines, fmt.Sprintf("%-12s score=%-4d subtests=%-4d tests=%d\n",
			area.Key, score.PerMille, score.PerMilleSubtests, score.TotalTests))
	}

	return lines
}
