package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"wptscore.dev/pkg/wptscore/internal/domain"
	domainmocks "wptscore.dev/pkg/wptscore/internal/domain/mocks"
	m "wptscore.dev/pkg/wptscore/internal/model"
)

func TestAddCmd_PassesChunksDateAndRecalcArgs(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newAddCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Add", mock.Anything, mock.MatchedBy(func(args domain.AddArgs) bool {
		return args.Chunks == m.Path("./wpt-chunks") &&
			args.Date == "2024-03-01" &&
			args.Recalc.Runs == m.Path("./runs") &&
			args.Recalc.Threads == 3
	})).Return(nil)

	cmd.SetArgs([]string{"add", "./wpt-chunks", "2024-03-01", "--runs", "./runs", "--parallel", "3"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestAddCmd_RequiresChunksAndDate(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newAddCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	cmd.SetArgs([]string{"add", "./wpt-chunks"})
	err := cmd.Execute()
	require.Error(t, err)
}
