package domain

import (
	"errors"
	"fmt"

	m "wptscore.dev/pkg/wptscore/internal/model"
)

// ErrMalformedInput is returned when a raw report lacks required fields.
var ErrMalformedInput = errors.New("malformed input")

// Normalize converts one raw report into a ProcessedRun. A test or subtest
// scores 1 when its status is PASS and 0 otherwise.
func Normalize(raw m.RawReport) (m.ProcessedRun, error) {
	if raw.Results == nil {
		return m.ProcessedRun{}, fmt.Errorf("%w: missing results", ErrMalformedInput)
	}

	testScores := make(map[string]m.TestScore, len(raw.Results))

	for i, record := range raw.Results {
		if record.Test == "" {
			return m.ProcessedRun{}, fmt.Errorf("%w: result %d has no test path", ErrMalformedInput, i)
		}

		if _, seen := testScores[record.Test]; seen {
			return m.ProcessedRun{}, fmt.Errorf("%w: test %s reported twice", ErrMalformedInput, record.Test)
		}

		testScores[record.Test] = normalizeRecord(record)
	}

	return m.ProcessedRun{
		RunInfo:    raw.RunInfo.Clone(),
		TestScores: testScores,
	}, nil
}

func normalizeRecord(record m.RawTestRecord) m.TestScore {
	score := m.TestScore{
		Score:    statusScore(record.Status),
		Subtests: make(map[string]m.SubtestScore, len(record.Subtests)),
	}

	// Repeated subtest names keep the last reported status.
	for _, subtest := range record.Subtests {
		score.Subtests[subtest.Name] = m.SubtestScore{Score: statusScore(subtest.Status)}
	}

	return score
}

func statusScore(status m.Status) int {
	if status.Passed() {
		return 1
	}

	return 0
}
