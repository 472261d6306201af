package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "wptscore.dev/pkg/wptscore/internal/model"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  m.RawReport
		want map[string]m.TestScore
	}{
		{
			name: "test without subtests",
			raw: m.RawReport{Results: []m.RawTestRecord{
				{Test: "/a.html", Status: m.StatusPass},
				{Test: "/b.html", Status: m.StatusFail},
			}},
			want: map[string]m.TestScore{
				"/a.html": {Score: 1, Subtests: map[string]m.SubtestScore{}},
				"/b.html": {Score: 0, Subtests: map[string]m.SubtestScore{}},
			},
		},
		{
			name: "subtests scored independently of the test",
			raw: m.RawReport{Results: []m.RawTestRecord{
				{Test: "/c.html", Status: m.StatusError, Subtests: []m.RawSubtest{
					{Name: "first", Status: m.StatusPass},
					{Name: "second", Status: m.StatusTimeout},
				}},
			}},
			want: map[string]m.TestScore{
				"/c.html": {Score: 0, Subtests: map[string]m.SubtestScore{
					"first":  {Score: 1},
					"second": {Score: 0},
				}},
			},
		},
		{
			name: "unknown status counts as failure",
			raw: m.RawReport{Results: []m.RawTestRecord{
				{Test: "/d.html", Status: m.Status("OK")},
				{Test: "/e.html", Status: m.StatusSkip},
			}},
			want: map[string]m.TestScore{
				"/d.html": {Score: 0, Subtests: map[string]m.SubtestScore{}},
				"/e.html": {Score: 0, Subtests: map[string]m.SubtestScore{}},
			},
		},
		{
			name: "repeated subtest keeps the last status",
			raw: m.RawReport{Results: []m.RawTestRecord{
				{Test: "/f.html", Status: m.StatusPass, Subtests: []m.RawSubtest{
					{Name: "dup", Status: m.StatusFail},
					{Name: "dup", Status: m.StatusPass},
				}},
			}},
			want: map[string]m.TestScore{
				"/f.html": {Score: 1, Subtests: map[string]m.SubtestScore{"dup": {Score: 1}}},
			},
		},
		{
			name: "subtest names that look like builtins are ordinary keys",
			raw: m.RawReport{Results: []m.RawTestRecord{
				{Test: "/g.html", Status: m.StatusPass, Subtests: []m.RawSubtest{
					{Name: "toString", Status: m.StatusPass},
					{Name: "constructor", Status: m.StatusFail},
				}},
			}},
			want: map[string]m.TestScore{
				"/g.html": {Score: 1, Subtests: map[string]m.SubtestScore{
					"toString":    {Score: 1},
					"constructor": {Score: 0},
				}},
			},
		},
		{
			name: "empty results",
			raw:  m.RawReport{Results: []m.RawTestRecord{}},
			want: map[string]m.TestScore{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.raw)
			require.NoError(t, err)

			if diff := cmp.Diff(tt.want, got.TestScores); diff != "" {
				t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalize_CopiesRunInfo(t *testing.T) {
	raw := m.RawReport{
		RunInfo: m.RunInfo{m.RunInfoRevision: "abc", m.RunInfoProduct: "servo"},
		Results: []m.RawTestRecord{},
	}

	got, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, "abc", got.RunInfo.String(m.RunInfoRevision))

	got.RunInfo[m.RunInfoRevision] = "changed"
	assert.Equal(t, "abc", raw.RunInfo.String(m.RunInfoRevision))
}

func TestNormalize_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  m.RawReport
	}{
		{name: "missing results", raw: m.RawReport{RunInfo: m.RunInfo{}}},
		{name: "missing test path", raw: m.RawReport{Results: []m.RawTestRecord{{Status: m.StatusPass}}}},
		{
			name: "test reported twice",
			raw: m.RawReport{Results: []m.RawTestRecord{
				{Test: "/a.html", Status: m.StatusPass},
				{Test: "/a.html", Status: m.StatusFail},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.raw)
			require.ErrorIs(t, err, ErrMalformedInput)
		})
	}
}
