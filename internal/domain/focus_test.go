package domain

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "wptscore.dev/pkg/wptscore/internal/model"
)

func TestCatalog_Match(t *testing.T) {
	catalog := DefaultCatalog()

	tests := []struct {
		test string
		want []string
	}{
		{"/css/CSS2/floats-clear/float-replaced-width-004.xht", []string{"all", "css", "css2", "floats-clear"}},
		{"/css/CSS2/abspos/static-inside-table-cell.html", []string{"all", "css", "css2", "abspos"}},
		{"/css/CSS2/margin-padding-clear/margin-right-078.xht", []string{"all", "css", "css2", "margin-padding-clear"}},
		{"/workers/semantics/multiple-workers/001.html", []string{"all"}},
		{"/css/CSS2/tables/table-anonymous-objects-001.xht", []string{"all", "css", "css2", "csstable"}},
		{"/css/css-tables/border-spacing.html", []string{"all", "css", "csstable"}},
		{"/css/css-flexbox/align-content-001.htm", []string{"all", "css", "cssflex"}},
		{"/css/css-sizing/aspect-ratio/001.html", []string{"all", "css", "csssizing"}},
		{"/content-security-policy/frame-src/frame-src-self.html", []string{"all", "csp"}},
		{"/WebCryptoAPI/digest/digest.https.any.html", []string{"all", "webcryptoapi"}},
		{"/css/CSS2/floats", []string{"all", "css", "css2"}},
	}

	for _, tt := range tests {
		t.Run(tt.test, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.Match(tt.test))
		})
	}
}

func TestCatalog_MatchNothingIsEmptyNotNil(t *testing.T) {
	catalog := Catalog{{Key: "only", Predicate: PrefixPredicate("/only/")}}

	got := catalog.Match("/other/test.html")
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCatalog_Classify(t *testing.T) {
	run := m.ProcessedRun{TestScores: map[string]m.TestScore{
		"/css/CSS2/linebox/a.html": passing(),
		"/streams/b.any.html":      passing("x"),
	}}

	got := DefaultCatalog().Classify(run)
	assert.Equal(t, m.FocusAreaMap{
		"/css/CSS2/linebox/a.html": {"all", "css", "css2", "linebox"},
		"/streams/b.any.html":      {"all", "streams"},
	}, got)
}

func TestCatalog_Sorted(t *testing.T) {
	sorted := DefaultCatalog().Sorted()

	keys := make([]string, 0, len(sorted))
	for _, area := range sorted {
		keys = append(keys, area.Key)
	}

	assert.Equal(t, []string{
		"all", "csp", "css", "css2",
		"abspos", "box-display", "floats", "floats-clear", "linebox",
		"margin-padding-clear", "normal-flow", "positioning",
		"csstable", "cssom", "cssalign", "cssflex", "cssgrid", "csspos", "csssizing",
		"csstext", "gamepad", "shadowdom", "streams", "trustedtypes", "webcryptoapi", "webxr",
	}, keys)

	assert.Equal(t, m.AreaInfo{Key: "all", Name: "All WPT tests"}, sorted[0])
	assert.Equal(t, m.AreaInfo{Key: "css2", Name: "/css/CSS2"}, sorted[3])
	assert.Equal(t, m.AreaInfo{Key: "abspos", Name: "/css/CSS2/abspos/"}, sorted[4])
}

func TestCatalog_KeysFollowRegistrationOrder(t *testing.T) {
	keys := DefaultCatalog().Keys()
	require.Len(t, keys, 26)
	assert.Equal(t, "all", keys[0])
	assert.Equal(t, "webxr", keys[17])
	assert.Equal(t, "abspos", keys[18])
	assert.Equal(t, "positioning", keys[25])
}

func TestDefaultCatalog_ReturnsCopy(t *testing.T) {
	catalog := DefaultCatalog()
	catalog[0].Key = "changed"

	_, ok := DefaultCatalog().Area(AllAreaKey)
	assert.True(t, ok)
}

func TestCatalog_With(t *testing.T) {
	base := DefaultCatalog()

	extended, err := base.With(FocusArea{Key: "dom", Name: "/dom", Order: 103, Predicate: PrefixPredicate("/dom/")})
	require.NoError(t, err)
	assert.Len(t, extended, len(base)+1)
	assert.Equal(t, []string{"all", "dom"}, extended.Match("/dom/nodes/Node-cloneNode.html"))

	_, ok := base.Area("dom")
	assert.False(t, ok, "base catalog must not change")

	_, err = base.With(FocusArea{Key: "css", Predicate: PrefixPredicate("/x/")})
	require.ErrorIs(t, err, ErrDuplicateArea)

	_, err = base.With(FocusArea{Key: "nopredicate"})
	require.Error(t, err)
}

func TestRegexPredicate(t *testing.T) {
	predicate := RegexPredicate(regexp.MustCompile(`\.https\.`))
	assert.True(t, predicate("/fetch/a.https.html"))
	assert.False(t, predicate("/fetch/a.html"))
}

func TestAreaSpec_FocusArea(t *testing.T) {
	tests := []struct {
		name     string
		spec     AreaSpec
		wantName string
		matches  string
		wantErr  bool
	}{
		{name: "prefix", spec: AreaSpec{Key: "dom", Prefix: "/dom/"}, wantName: "/dom/", matches: "/dom/a.html"},
		{name: "pattern", spec: AreaSpec{Key: "https", Name: "Secure", Pattern: `\.https\.`}, wantName: "Secure", matches: "/x/a.https.html"},
		{name: "missing key", spec: AreaSpec{Prefix: "/dom/"}, wantErr: true},
		{name: "neither", spec: AreaSpec{Key: "dom"}, wantErr: true},
		{name: "both", spec: AreaSpec{Key: "dom", Prefix: "/dom/", Pattern: "dom"}, wantErr: true},
		{name: "bad pattern", spec: AreaSpec{Key: "dom", Pattern: "("}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			area, err := tt.spec.FocusArea()
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, area.Name)
			assert.True(t, area.Predicate(tt.matches))
		})
	}
}

func TestCatalogWithSpecs(t *testing.T) {
	catalog, err := CatalogWithSpecs([]AreaSpec{{Key: "dom", Prefix: "/dom/", Order: 50}})
	require.NoError(t, err)

	area, ok := catalog.Area("dom")
	require.True(t, ok)
	assert.InDelta(t, 50, area.Order, 0)

	_, err = CatalogWithSpecs([]AreaSpec{{Key: "css", Prefix: "/css/"}})
	require.ErrorIs(t, err, ErrDuplicateArea)

	catalog, err = CatalogWithSpecs(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultCatalog().Keys(), catalog.Keys())
}
