package controller

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "wptscore.dev/pkg/wptscore/internal/model"
)

var scoreTableHeader = []string{"Area", "Name", "Score", "Subtests", "Tests"}

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// DisplayAssembly reports a freshly assembled run.
func (s *SimpleUI) DisplayAssembly(ctx context.Context, chunks int, tests int, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Assembled %d tests from %d chunk(s) into %s\n", tests, chunks, path)
}

// DisplayProgress reports that a run has been scored. It may be called from
// several workers at once.
func (s *SimpleUI) DisplayProgress(ctx context.Context, done int, total int, run m.RunFile) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Scored run %s (%d/%d)\n", run.Date, done, total)
}

// DisplayScores prints the per-area scores of one run as a table.
func (s *SimpleUI) DisplayScores(ctx context.Context, areas []m.AreaInfo, row m.ScoreRow) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\nRun %s (WPT %s, product %s)\n%s", row.Date, row.WPTRevision, row.ProductRevision, renderScoreTable(areas, row))

	return nil
}

// DisplayAreas prints the focus area catalog, or the areas matched by each
// requested test path.
func (s *SimpleUI) DisplayAreas(ctx context.Context, areas []m.AreaInfo, matches map[string][]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderAreasTable(areas, matches))

	return nil
}

// DisplayComparison prints a diff between two runs.
func (s *SimpleUI) DisplayComparison(ctx context.Context, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if strings.TrimSpace(diff) == "" {
		s.printf("No score differences\n")
		return nil
	}

	s.printf("%s", diff)

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func scoreTableRows(areas []m.AreaInfo, row m.ScoreRow) [][]string {
	rows := make([][]string, 0, len(areas))

	for _, area := range areas {
		score, ok := row.Scores[area.Key]
		if !ok {
			continue
		}

		rows = append(rows, []string{
			area.Key,
			area.Name,
			formatPerMille(score.PerMille),
			formatPerMille(score.PerMilleSubtests),
			fmt.Sprintf("%d", score.TotalTests),
		})
	}

	return rows
}

func renderScoreTable(areas []m.AreaInfo, row m.ScoreRow) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(scoreTableHeader)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})
	table.AppendBulk(scoreTableRows(areas, row))
	table.Render()

	return tableBuffer.String()
}

func renderAreasTable(areas []m.AreaInfo, matches map[string][]string) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	if len(matches) == 0 {
		table.SetHeader([]string{"Key", "Name"})

		for _, area := range areas {
			table.Append([]string{area.Key, area.Name})
		}

		table.SetFooter([]string{fmt.Sprintf("Total Areas %d", len(areas)), ""})
		table.Render()

		return tableBuffer.String()
	}

	table.SetHeader([]string{"Test", "Areas"})

	for _, test := range sortedKeys(matches) {
		table.Append([]string{test, strings.Join(matches[test], ", ")})
	}

	table.Render()

	return tableBuffer.String()
}

func sortedKeys(values map[string][]string) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
