package domain

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	m "wptscore.dev/pkg/wptscore/internal/model"
)

// AllAreaKey is the key of the area every test belongs to.
const AllAreaKey = "all"

// ErrDuplicateArea is returned when an area key is registered twice.
var ErrDuplicateArea = errors.New("duplicate focus area")

// Predicate decides whether a test path belongs to a focus area.
type Predicate func(test string) bool

// PrefixPredicate matches test paths starting with prefix. The empty prefix
// matches every test.
func PrefixPredicate(prefix string) Predicate {
	return func(test string) bool {
		return strings.HasPrefix(test, prefix)
	}
}

// RegexPredicate matches test paths accepted by exp.
func RegexPredicate(exp *regexp.Regexp) Predicate {
	return exp.MatchString
}

// FocusArea is a named subset of tests used to break down scores.
type FocusArea struct {
	Key  string
	Name string
	// Order is a display sort key only.
	Order     float64
	Predicate Predicate
}

// Catalog is an ordered list of focus areas. Registration order decides the
// order of keys in a FocusAreaMap; Order decides the display order.
type Catalog []FocusArea

var css2FocusFolders = []string{
	"abspos",
	"box-display",
	"floats",
	"floats-clear",
	"linebox",
	"margin-padding-clear",
	"normal-flow",
	"positioning",
}

var cssTablesPattern = regexp.MustCompile(`^/css/(CSS2/tables|css-tables)/`)

func prefixArea(key, prefix string, order float64) FocusArea {
	return FocusArea{
		Key:       key,
		Name:      strings.TrimSuffix(prefix, "/"),
		Order:     order,
		Predicate: PrefixPredicate(prefix),
	}
}

var defaultCatalog = buildDefaultCatalog()

func buildDefaultCatalog() Catalog {
	catalog := Catalog{
		{Key: AllAreaKey, Name: "All WPT tests", Order: 0, Predicate: PrefixPredicate("")},
		prefixArea("csp", "/content-security-policy/", 1),
		prefixArea("css", "/css/", 2),
		prefixArea("css2", "/css/CSS2/", 3),
		{
			Key:       "csstable",
			Name:      "/css/CSS2/tables & /css/css-tables",
			Order:     90,
			Predicate: RegexPredicate(cssTablesPattern),
		},
		prefixArea("cssom", "/css/cssom/", 91),
		prefixArea("cssalign", "/css/css-align/", 92),
		prefixArea("cssflex", "/css/css-flexbox/", 93),
		prefixArea("cssgrid", "/css/css-grid/", 94),
		prefixArea("csspos", "/css/css-position/", 95),
		prefixArea("csssizing", "/css/css-sizing/", 95.5),
		prefixArea("csstext", "/css/css-text/", 96),
		prefixArea("gamepad", "/gamepad/", 97),
		prefixArea("shadowdom", "/shadow-dom/", 98),
		prefixArea("streams", "/streams/", 99),
		prefixArea("trustedtypes", "/trusted-types/", 100),
		prefixArea("webcryptoapi", "/WebCryptoAPI/", 101),
		prefixArea("webxr", "/webxr/", 102),
	}

	for i, folder := range css2FocusFolders {
		path := "/css/CSS2/" + folder + "/"
		catalog = append(catalog, FocusArea{
			Key:       folder,
			Name:      path,
			Order:     float64(i + 3),
			Predicate: PrefixPredicate(path),
		})
	}

	return catalog
}

// DefaultCatalog returns the built-in focus areas.
func DefaultCatalog() Catalog {
	return append(Catalog(nil), defaultCatalog...)
}

// With returns a new catalog with areas appended after the existing ones.
func (c Catalog) With(areas ...FocusArea) (Catalog, error) {
	extended := append(Catalog(nil), c...)

	for _, area := range areas {
		if area.Predicate == nil {
			return nil, fmt.Errorf("focus area %s has no predicate", area.Key)
		}

		if _, exists := extended.Area(area.Key); exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateArea, area.Key)
		}

		extended = append(extended, area)
	}

	return extended, nil
}

// Area looks up an area by key.
func (c Catalog) Area(key string) (FocusArea, bool) {
	for _, area := range c {
		if area.Key == key {
			return area, true
		}
	}

	return FocusArea{}, false
}

// Keys returns the area keys in registration order.
func (c Catalog) Keys() []string {
	keys := make([]string, 0, len(c))
	for _, area := range c {
		keys = append(keys, area.Key)
	}

	return keys
}

// Match returns the keys of every area test belongs to, in registration order.
func (c Catalog) Match(test string) []string {
	keys := []string{}

	for _, area := range c {
		if area.Predicate(test) {
			keys = append(keys, area.Key)
		}
	}

	return keys
}

// Classify maps every test of run to the areas it belongs to.
func (c Catalog) Classify(run m.ProcessedRun) m.FocusAreaMap {
	areaMap := make(m.FocusAreaMap, len(run.TestScores))
	for test := range run.TestScores {
		areaMap[test] = c.Match(test)
	}

	return areaMap
}

// Sorted returns the areas in display order. Areas with the same Order keep
// their registration order.
func (c Catalog) Sorted() []m.AreaInfo {
	sorted := append(Catalog(nil), c...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})

	infos := make([]m.AreaInfo, 0, len(sorted))
	for _, area := range sorted {
		infos = append(infos, m.AreaInfo{Key: area.Key, Name: area.Name})
	}

	return infos
}

// AreaSpec declares an extra focus area in configuration. Exactly one of
// Prefix and Pattern must be set.
type AreaSpec struct {
	Key     string  `mapstructure:"key" yaml:"key"`
	Name    string  `mapstructure:"name" yaml:"name"`
	Prefix  string  `mapstructure:"prefix" yaml:"prefix,omitempty"`
	Pattern string  `mapstructure:"pattern" yaml:"pattern,omitempty"`
	Order   float64 `mapstructure:"order" yaml:"order"`
}

// FocusArea compiles the spec into an area.
func (s AreaSpec) FocusArea() (FocusArea, error) {
	if s.Key == "" {
		return FocusArea{}, errors.New("focus area without key")
	}

	area := FocusArea{Key: s.Key, Name: s.Name, Order: s.Order}

	switch {
	case s.Prefix != "" && s.Pattern != "":
		return FocusArea{}, fmt.Errorf("focus area %s: prefix and pattern are exclusive", s.Key)
	case s.Prefix != "":
		area.Predicate = PrefixPredicate(s.Prefix)
		if area.Name == "" {
			area.Name = s.Prefix
		}
	case s.Pattern != "":
		exp, err := regexp.Compile(s.Pattern)
		if err != nil {
			return FocusArea{}, fmt.Errorf("focus area %s: %w", s.Key, err)
		}

		area.Predicate = RegexPredicate(exp)
		if area.Name == "" {
			area.Name = s.Pattern
		}
	default:
		return FocusArea{}, fmt.Errorf("focus area %s: prefix or pattern required", s.Key)
	}

	return area, nil
}

// CatalogWithSpecs extends the default catalog with configured areas.
func CatalogWithSpecs(specs []AreaSpec) (Catalog, error) {
	areas := make([]FocusArea, 0, len(specs))

	for _, spec := range specs {
		area, err := spec.FocusArea()
		if err != nil {
			return nil, err
		}

		areas = append(areas, area)
	}

	return DefaultCatalog().With(areas...)
}
