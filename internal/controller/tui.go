package controller

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	m "wptscore.dev/pkg/wptscore/internal/model"
)

const (
	// headerLines is the height of the table header including its bottom border.
	headerLines = 2
	// chromeLines is the number of lines the table view uses besides its rows:
	// title, blank line, table border and header, and the help line.
	chromeLines = 5 + headerLines
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	tableStyle = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI using Bubble Tea for interactive display. Everything
// that is not a score table is printed the same way SimpleUI does it.
type TUI struct {
	*SimpleUI
	output io.Writer
	config StartConfig
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{
		SimpleUI: NewSimpleUI(cmd),
		output:   cmd.OutOrStdout(),
	}
}

// Start initializes the UI in the requested mode.
func (p *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.config = newStartConfig(options...)

	return nil
}

// DisplayScores shows the score table. In view mode a table taller than the
// terminal becomes a scrollable Bubble Tea program.
func (p *TUI) DisplayScores(ctx context.Context, areas []m.AreaInfo, row m.ScoreRow) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if p.config.mode != ModeView {
		return p.SimpleUI.DisplayScores(ctx, areas, row)
	}

	model := newScoreTableModel(areas, row)

	if f, ok := p.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.resize(width, height)
		}
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(p.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// scoreTableModel is the Bubble Tea model for a scrollable score table.
type scoreTableModel struct {
	title    string
	rows     int
	height   int
	table    table.Model
	quitting bool
}

func newScoreTableModel(areas []m.AreaInfo, row m.ScoreRow) scoreTableModel {
	rows := scoreTableRows(areas, row)

	tableRows := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, table.Row(r))
	}

	t := table.New(
		table.WithColumns(scoreTableColumns(rows)),
		table.WithRows(tableRows),
		table.WithFocused(true),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(styles)
	t.SetHeight(len(tableRows) + headerLines)

	return scoreTableModel{
		title: fmt.Sprintf("Run %s · WPT %s · product %s", row.Date, row.WPTRevision, row.ProductRevision),
		rows:  len(tableRows),
		table: t,
	}
}

func scoreTableColumns(rows [][]string) []table.Column {
	columns := make([]table.Column, 0, len(scoreTableHeader))

	for i, title := range scoreTableHeader {
		width := lipgloss.Width(title)
		for _, r := range rows {
			width = max(width, lipgloss.Width(r[i]))
		}

		columns = append(columns, table.Column{Title: title, Width: width})
	}

	return columns
}

func (st *scoreTableModel) resize(_ int, height int) {
	st.height = height
	if height > chromeLines {
		st.table.SetHeight(min(st.rows, height-chromeLines) + headerLines)
	}
}

func (st scoreTableModel) needsPagination() bool {
	if st.height <= 0 {
		return false
	}

	return st.rows+chromeLines > st.height
}

func (st scoreTableModel) Init() tea.Cmd {
	return nil
}

func (st scoreTableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		st.resize(msg.Width, msg.Height)
		return st, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			st.quitting = true
			return st, tea.Quit
		}
	}

	var cmd tea.Cmd

	st.table, cmd = st.table.Update(msg)

	return st, cmd
}

func (st scoreTableModel) View() string {
	if st.quitting {
		return ""
	}

	return titleStyle.Render(st.title) + "\n\n" +
		tableStyle.Render(st.table.View()) + "\n" +
		helpStyle.Render("↑/↓ scroll • q quit") + "\n"
}
