// Package model defines the data structures for test runs and their scores.
package model

// Status is the outcome string reported by the test harness for a test or subtest.
type Status string

// Known statuses. Only StatusPass is significant for scoring; every other value,
// known or not, counts as a failure.
const (
	StatusPass               Status = "PASS"
	StatusFail               Status = "FAIL"
	StatusError              Status = "ERROR"
	StatusTimeout            Status = "TIMEOUT"
	StatusNotRun             Status = "NOTRUN"
	StatusCrash              Status = "CRASH"
	StatusPreconditionFailed Status = "PRECONDITION_FAILED"
	StatusSkip               Status = "SKIP"
)

// Passed reports whether the status is a pass.
func (s Status) Passed() bool {
	return s == StatusPass
}

// RunInfo describes the environment that produced a run (product, revision,
// browser version, OS...). Values are whatever the report carried.
type RunInfo map[string]any

// String returns the value stored under key when it is a string, or "".
func (ri RunInfo) String(key string) string {
	if ri == nil {
		return ""
	}

	value, ok := ri[key].(string)
	if !ok {
		return ""
	}

	return value
}

// Clone returns a shallow copy of the run info.
func (ri RunInfo) Clone() RunInfo {
	if ri == nil {
		return nil
	}

	clone := make(RunInfo, len(ri))
	for k, v := range ri {
		clone[k] = v
	}

	return clone
}

// Well-known RunInfo keys.
const (
	RunInfoRevision       = "revision"
	RunInfoBrowserVersion = "browser_version"
	RunInfoProduct        = "product"
	RunInfoOS             = "os"
)

// RawSubtest is a single subtest entry of a raw report.
type RawSubtest struct {
	Name   string `json:"name"`
	Status Status `json:"status"`
}

// RawTestRecord is a single test entry of a raw report.
type RawTestRecord struct {
	Test     string       `json:"test"`
	Status   Status       `json:"status"`
	Subtests []RawSubtest `json:"subtests"`
}

// RawReport is the parsed contents of one report file, typically one shard of a run.
type RawReport struct {
	RunInfo RunInfo         `json:"run_info"`
	Results []RawTestRecord `json:"results"`
}

// SubtestScore is the 0/1 score of a single subtest.
type SubtestScore struct {
	Score int `json:"score"`
}

// TestScore is the 0/1 score of a test together with its subtest scores.
type TestScore struct {
	Score    int                     `json:"score"`
	Subtests map[string]SubtestScore `json:"subtests"`
}

// ProcessedRun is a normalized run keyed by full test path.
type ProcessedRun struct {
	RunInfo    RunInfo              `json:"run_info"`
	TestScores map[string]TestScore `json:"test_scores"`
}
