package model

// FocusAreaMap maps a test path to the keys of the focus areas it belongs to,
// in catalog registration order.
type FocusAreaMap map[string][]string

// AreaInfo is the displayable part of a focus area.
type AreaInfo struct {
	Key  string `json:"key" yaml:"key"`
	Name string `json:"name" yaml:"name"`
}

// Accumulator collects the totals of one focus area while a run is scored.
type Accumulator struct {
	TotalTests          int     `json:"total_tests" yaml:"total_tests"`
	TotalScore          float64 `json:"total_score" yaml:"total_score"`
	TotalSubtests       int     `json:"total_subtests" yaml:"total_subtests"`
	TotalSubtestsPassed int     `json:"total_subtests_passed" yaml:"total_subtests_passed"`
}

// PerMille is the whole-test pass rate times 1000, floored. An area without
// tests scores 0.
func (a Accumulator) PerMille() int {
	if a.TotalTests <= 0 {
		return 0
	}

	return int(1000 * a.TotalScore / float64(a.TotalTests))
}

// PerMilleSubtests is the subtest pass rate times 1000, floored. An area without
// subtests scores 0.
func (a Accumulator) PerMilleSubtests() int {
	if a.TotalSubtests <= 0 {
		return 0
	}

	return 1000 * a.TotalSubtestsPassed / a.TotalSubtests
}

// AreaScore is the published score of one focus area for one run.
type AreaScore struct {
	Accumulator      `yaml:",inline"`
	PerMille         int `json:"per_mille" yaml:"per_mille"`
	PerMilleSubtests int `json:"per_mille_subtests" yaml:"per_mille_subtests"`
}

// NewAreaScore freezes an accumulator into a published score.
func NewAreaScore(acc Accumulator) AreaScore {
	return AreaScore{
		Accumulator:      acc,
		PerMille:         acc.PerMille(),
		PerMilleSubtests: acc.PerMilleSubtests(),
	}
}

// ScoreRow is the score of one historical run.
type ScoreRow struct {
	Date            string               `json:"date" yaml:"date"`
	WPTRevision     string               `json:"wpt_revision" yaml:"wpt_revision"`
	ProductRevision string               `json:"product_revision" yaml:"product_revision"`
	Scores          map[string]AreaScore `json:"scores" yaml:"scores"`
}

// FocusAreas is the catalog as published next to the scores.
type FocusAreas struct {
	AreaKeys  []string          `json:"area_keys" yaml:"area_keys"`
	AreaNames map[string]string `json:"area_names" yaml:"area_names"`
}

// NewFocusAreas builds the published catalog from areas in display order.
func NewFocusAreas(areas []AreaInfo) FocusAreas {
	published := FocusAreas{
		AreaKeys:  make([]string, 0, len(areas)),
		AreaNames: make(map[string]string, len(areas)),
	}

	for _, area := range areas {
		published.AreaKeys = append(published.AreaKeys, area.Key)
		published.AreaNames[area.Key] = area.Name
	}

	return published
}

// ScoresDocument holds the scores of every run.
type ScoresDocument struct {
	FocusAreas FocusAreas `json:"focus_areas" yaml:"focus_areas"`
	Runs       []ScoreRow `json:"runs" yaml:"runs"`
}

// LastRunDocument holds the scores of the latest run only.
type LastRunDocument struct {
	FocusAreas FocusAreas `json:"focus_areas" yaml:"focus_areas"`
	LastRun    *ScoreRow  `json:"last_run" yaml:"last_run"`
}
