package domain

import (
	"fmt"
	"regexp"
	"sort"

	m "wptscore.dev/pkg/wptscore/internal/model"
	"wptscore.dev/pkg/wptscore/pkg/merge"
)

const (
	scoreKey    = "score"
	subtestsKey = "subtests"

	// UnknownBrowserVersion is stored when the browser version cannot be parsed.
	UnknownBrowserVersion = "Unknown"
)

var browserVersionPattern = regexp.MustCompile(`^Servo ([0-9.]+-[a-f0-9]+)?(-dirty)?$`)

// ParseBrowserVersion extracts the engine version from a reported browser
// version such as "Servo 0.0.1-3a1f2b9c-dirty".
func ParseBrowserVersion(reported string) string {
	matches := browserVersionPattern.FindStringSubmatch(reported)
	if len(matches) != 3 || matches[1] == "" {
		return UnknownBrowserVersion
	}

	return matches[1]
}

// MergeRuns joins the test scores of shards of one run. Shards must cover
// disjoint tests; a test reported by two shards fails with merge.ErrKeyOverlap.
func MergeRuns(shards ...m.ProcessedRun) (map[string]m.TestScore, error) {
	merged := merge.Tree{}

	for i, shard := range shards {
		var err error

		merged, err = merge.Merge(merged, scoresToTree(shard.TestScores))
		if err != nil {
			return nil, fmt.Errorf("merge shard %d: %w", i, err)
		}
	}

	return scoresFromTree(merged)
}

// AssembleRun merges the normalized shards of a run. The run info is taken
// from the first shard, with its browser version replaced by the parsed
// engine version.
func AssembleRun(shards ...m.ProcessedRun) (m.ProcessedRun, error) {
	testScores, err := MergeRuns(shards...)
	if err != nil {
		return m.ProcessedRun{}, err
	}

	var runInfo m.RunInfo
	if len(shards) > 0 {
		runInfo = shards[0].RunInfo.Clone()
	}

	if runInfo == nil {
		runInfo = m.RunInfo{}
	}

	runInfo[m.RunInfoBrowserVersion] = ParseBrowserVersion(runInfo.String(m.RunInfoBrowserVersion))

	return m.ProcessedRun{RunInfo: runInfo, TestScores: testScores}, nil
}

// SortedTests returns the test paths of run in lexicographic order.
func SortedTests(run m.ProcessedRun) []string {
	tests := make([]string, 0, len(run.TestScores))
	for test := range run.TestScores {
		tests = append(tests, test)
	}

	sort.Strings(tests)

	return tests
}

func scoresToTree(scores map[string]m.TestScore) merge.Tree {
	tree := make(merge.Tree, len(scores))

	for test, score := range scores {
		subtests := make(merge.Tree, len(score.Subtests))
		for name, subtest := range score.Subtests {
			subtests[name] = merge.Tree{scoreKey: subtest.Score}
		}

		tree[test] = merge.Tree{
			scoreKey:    score.Score,
			subtestsKey: subtests,
		}
	}

	return tree
}

func scoresFromTree(tree merge.Tree) (map[string]m.TestScore, error) {
	scores := make(map[string]m.TestScore, len(tree))

	for test, value := range tree {
		node, ok := value.(merge.Tree)
		if !ok {
			return nil, fmt.Errorf("%w: test %s is not a mapping", ErrMalformedInput, test)
		}

		score, err := scoreFromNode(node)
		if err != nil {
			return nil, fmt.Errorf("test %s: %w", test, err)
		}

		subtestNodes, _ := node[subtestsKey].(merge.Tree)
		subtests := make(map[string]m.SubtestScore, len(subtestNodes))

		for name, subtestValue := range subtestNodes {
			subtestNode, ok := subtestValue.(merge.Tree)
			if !ok {
				return nil, fmt.Errorf("%w: subtest %s of %s is not a mapping", ErrMalformedInput, name, test)
			}

			subtestScore, err := scoreFromNode(subtestNode)
			if err != nil {
				return nil, fmt.Errorf("test %s subtest %s: %w", test, name, err)
			}

			subtests[name] = m.SubtestScore{Score: subtestScore}
		}

		scores[test] = m.TestScore{Score: score, Subtests: subtests}
	}

	return scores, nil
}

func scoreFromNode(node merge.Tree) (int, error) {
	score, ok := node[scoreKey].(int)
	if !ok {
		return 0, fmt.Errorf("%w: missing score", ErrMalformedInput)
	}

	return score, nil
}
