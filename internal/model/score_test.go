package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccumulator_PerMille(t *testing.T) {
	tests := []struct {
		name             string
		acc              Accumulator
		perMille         int
		perMilleSubtests int
	}{
		{name: "empty area", acc: Accumulator{}, perMille: 0, perMilleSubtests: 0},
		{name: "all passing", acc: Accumulator{TotalTests: 2, TotalScore: 2, TotalSubtests: 5, TotalSubtestsPassed: 5}, perMille: 1000, perMilleSubtests: 1000},
		{name: "floored", acc: Accumulator{TotalTests: 3, TotalScore: 2, TotalSubtests: 7, TotalSubtestsPassed: 5}, perMille: 666, perMilleSubtests: 714},
		{name: "fractional score", acc: Accumulator{TotalTests: 1, TotalScore: 1.0 / 3, TotalSubtests: 3, TotalSubtestsPassed: 1}, perMille: 333, perMilleSubtests: 333},
		{name: "tests without subtests", acc: Accumulator{TotalTests: 4, TotalScore: 1}, perMille: 250, perMilleSubtests: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.perMille, tt.acc.PerMille())
			assert.Equal(t, tt.perMilleSubtests, tt.acc.PerMilleSubtests())
		})
	}
}

func TestNewAreaScore(t *testing.T) {
	acc := Accumulator{TotalTests: 4, TotalScore: 3, TotalSubtests: 6, TotalSubtestsPassed: 4}

	score := NewAreaScore(acc)
	assert.Equal(t, acc, score.Accumulator)
	assert.Equal(t, 750, score.PerMille)
	assert.Equal(t, 666, score.PerMilleSubtests)
}

func TestNewFocusAreas(t *testing.T) {
	published := NewFocusAreas([]AreaInfo{
		{Key: "all", Name: "All WPT tests"},
		{Key: "css", Name: "/css"},
	})

	assert.Equal(t, []string{"all", "css"}, published.AreaKeys)
	assert.Equal(t, map[string]string{"all": "All WPT tests", "css": "/css"}, published.AreaNames)

	empty := NewFocusAreas(nil)
	assert.NotNil(t, empty.AreaKeys)
	assert.Empty(t, empty.AreaNames)
}
