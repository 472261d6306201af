package domain

import (
	m "wptscore.dev/pkg/wptscore/internal/model"
)

// Scores holds one accumulator per focus area key.
type Scores map[string]*m.Accumulator

// PerMille returns the whole-test per-mille score of every area.
func (s Scores) PerMille() map[string]int {
	perMille := make(map[string]int, len(s))
	for key, acc := range s {
		perMille[key] = acc.PerMille()
	}

	return perMille
}

// AreaScores freezes the accumulators into published scores.
func (s Scores) AreaScores() map[string]m.AreaScore {
	published := make(map[string]m.AreaScore, len(s))
	for key, acc := range s {
		published[key] = m.NewAreaScore(*acc)
	}

	return published
}

func (s Scores) area(key string) *m.Accumulator {
	acc, ok := s[key]
	if !ok {
		acc = &m.Accumulator{}
		s[key] = acc
	}

	return acc
}

// Score compares run against baseline, area by area. The baseline decides
// which tests and subtests count and areaMap decides the areas of each test.
// A baseline test missing from run counts as failed. Every key in keys gets an
// accumulator even if no test belongs to it.
func Score(run, baseline m.ProcessedRun, areaMap m.FocusAreaMap, keys ...string) Scores {
	scores := make(Scores, len(keys))
	for _, key := range keys {
		scores.area(key)
	}

	for _, test := range SortedTests(baseline) {
		areas := areaMap[test]
		subtestNames := subtestNamesOf(baseline.TestScores[test])

		weight := max(1, len(subtestNames))
		for _, key := range areas {
			acc := scores.area(key)
			acc.TotalTests++
			acc.TotalSubtests += weight
		}

		runTest, ok := run.TestScores[test]
		if !ok {
			continue
		}

		if len(subtestNames) == 0 {
			for _, key := range areas {
				acc := scores.area(key)
				acc.TotalScore += float64(runTest.Score)
				acc.TotalSubtestsPassed += runTest.Score
			}

			continue
		}

		passed := 0
		for _, name := range subtestNames {
			passed += runTest.Subtests[name].Score
		}

		ratio := float64(passed) / float64(len(subtestNames))
		for _, key := range areas {
			acc := scores.area(key)
			acc.TotalScore += ratio
			acc.TotalSubtestsPassed += passed
		}
	}

	return scores
}

func subtestNamesOf(score m.TestScore) []string {
	names := make([]string, 0, len(score.Subtests))
	for name := range score.Subtests {
		names = append(names, name)
	}

	return names
}
