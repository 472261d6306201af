package cmd

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"wptscore.dev/pkg/wptscore/internal/domain"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "wptscore", configBaseName)
	assert.Equal(t, "wptscore.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "runs", runsFlagName)
	assert.Equal(t, "site", siteFlagName)
	assert.Equal(t, "format", formatFlagName)
	assert.Equal(t, "parallel", parallelFlagName)
	assert.Equal(t, "baseline", baselineFlagName)
	assert.Equal(t, "runs.dir", runsDirKey)
	assert.Equal(t, "site.dir", siteDirKey)
	assert.Equal(t, "site.format", siteFormatKey)
	assert.Equal(t, "recalc.parallel", recalcParallelKey)
	assert.Equal(t, "recalc.baseline", recalcBaselineKey)
	assert.Equal(t, "focus_areas.extra", focusAreasKey)
	assert.Equal(t, "runs", defaultRunsDir)
	assert.Equal(t, "site", defaultSiteDir)
	assert.Equal(t, "json", defaultSiteFormat)
	assert.Equal(t, 1, defaultRecalcParallel)
	assert.Equal(t, "WPTSCORE", envPrefix)
	assert.Equal(t, ".wptscore.log", defaultLogFilename)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestConfiguredAreas_DefaultIsEmpty(t *testing.T) {
	specs, err := configuredAreas()
	require.NoError(t, err)
	assert.Empty(t, specs)
}

func TestConfiguredAreas_ReadsExtraAreas(t *testing.T) {
	viper.Set(focusAreasKey, []map[string]any{
		{"key": "dom", "name": "/dom", "prefix": "/dom/", "order": 103},
		{"key": "fetch", "pattern": "^/fetch/", "order": 104},
	})
	t.Cleanup(func() { viper.Set(focusAreasKey, []map[string]any{}) })

	specs, err := configuredAreas()
	require.NoError(t, err)
	assert.Equal(t, []domain.AreaSpec{
		{Key: "dom", Name: "/dom", Prefix: "/dom/", Order: 103},
		{Key: "fetch", Pattern: "^/fetch/", Order: 104},
	}, specs)
}
