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

func TestCompareCmd_PassesDatesAndBaseline(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newCompareCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Compare", mock.Anything, mock.MatchedBy(func(args domain.CompareArgs) bool {
		return args.Runs == m.Path("runs") &&
			args.From == "2024-03-01" &&
			args.To == "2024-03-08" &&
			args.Baseline == "2024-03-08"
	})).Return(nil)

	cmd.SetArgs([]string{"compare", "2024-03-01", "2024-03-08", "--baseline", "2024-03-08"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestCompareCmd_RequiresTwoDates(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newCompareCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	cmd.SetArgs([]string{"compare", "2024-03-01"})
	err := cmd.Execute()
	require.Error(t, err)
}
