package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_Passed(t *testing.T) {
	assert.True(t, StatusPass.Passed())

	for _, status := range []Status{StatusFail, StatusError, StatusTimeout, StatusNotRun, StatusCrash, StatusPreconditionFailed, StatusSkip, "OK", ""} {
		assert.False(t, status.Passed(), string(status))
	}
}

func TestRunInfo_String(t *testing.T) {
	info := RunInfo{RunInfoRevision: "abc", "debug": true}

	assert.Equal(t, "abc", info.String(RunInfoRevision))
	assert.Empty(t, info.String("debug"))
	assert.Empty(t, info.String(RunInfoOS))
	assert.Empty(t, RunInfo(nil).String(RunInfoRevision))
}

func TestRunInfo_Clone(t *testing.T) {
	info := RunInfo{RunInfoProduct: "servo"}

	clone := info.Clone()
	clone[RunInfoProduct] = "other"

	assert.Equal(t, "servo", info.String(RunInfoProduct))
	assert.Nil(t, RunInfo(nil).Clone())
}

func TestNewRunFile(t *testing.T) {
	tests := []struct {
		path Path
		want string
	}{
		{"runs/2024-03-01.xz", "2024-03-01"},
		{"runs/2024-03-01.json.gz", "2024-03-01"},
		{"2023-12-31", "2023-12-31"},
	}

	for _, tt := range tests {
		t.Run(string(tt.path), func(t *testing.T) {
			run := NewRunFile(tt.path)
			assert.Equal(t, tt.want, run.Date)
			assert.Equal(t, tt.path, run.Path)
		})
	}
}
