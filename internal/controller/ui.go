// Package controller provides output adapters for displaying run scores.
package controller

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	m "wptscore.dev/pkg/wptscore/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeRecalc StartMode = iota
	ModeView
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithRecalcMode sets the UI to batch recalculation mode.
func WithRecalcMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRecalc
	}
}

// WithViewMode sets the UI to interactive viewing mode.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	config := StartConfig{mode: ModeRecalc}
	for _, option := range options {
		option(&config)
	}

	return config
}

// UI defines the interface for displaying assembly progress and scores.
// Implementations can use different output methods (simple text, TUI, etc).
//
//nolint:interfacebloat // one method per thing the workflow reports
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayAssembly(ctx context.Context, chunks int, tests int, path m.Path)
	DisplayProgress(ctx context.Context, done int, total int, run m.RunFile)
	DisplayScores(ctx context.Context, areas []m.AreaInfo, row m.ScoreRow) error
	DisplayAreas(ctx context.Context, areas []m.AreaInfo, matches map[string][]string) error
	DisplayComparison(ctx context.Context, diff string) error
}

// NewUI picks the interactive UI when output is a terminal.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// formatPerMille renders a per-mille score as a percentage with one decimal.
func formatPerMille(perMille int) string {
	return fmt.Sprintf("%d.%d%%", perMille/10, perMille%10)
}
