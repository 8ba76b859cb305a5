package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/wanderlust-ai/server/internal/travel/knowledge"
)

// CountryDetector finds canonical country keys in free text.
type CountryDetector struct {
	keys     []string
	patterns []*regexp.Regexp
}

// NewCountryDetector prepares a detector for the given keys. Keys are tried
// longest first so "south korea" wins over "korea"; equal lengths are tried
// alphabetically to keep results deterministic.
func NewCountryDetector(keys []string) *CountryDetector {
	seen := make(map[string]struct{}, len(keys))
	uniq := make([]string, 0, len(keys))
	for _, k := range keys {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		uniq = append(uniq, k)
	}
	sort.Slice(uniq, func(i, j int) bool {
		if len(uniq[i]) != len(uniq[j]) {
			return len(uniq[i]) > len(uniq[j])
		}
		return uniq[i] < uniq[j]
	})

	d := &CountryDetector{keys: uniq, patterns: make([]*regexp.Regexp, len(uniq))}
	for i, k := range uniq {
		words := strings.Fields(k)
		for j, w := range words {
			words[j] = regexp.QuoteMeta(w)
		}
		d.patterns[i] = regexp.MustCompile(`\b` + strings.Join(words, `\s+`) + `\b`)
	}
	return d
}

// Detect returns the first key, in precedence order, that appears in text as
// a whole word. "usage" never yields "usa".
func (d *CountryDetector) Detect(text string) (string, bool) {
	text = strings.ToLower(text)
	for i, re := range d.patterns {
		if re.MatchString(text) {
			return d.keys[i], true
		}
	}
	return "", false
}

// Keys returns the keys in precedence order.
func (d *CountryDetector) Keys() []string {
	return append([]string(nil), d.keys...)
}

var knownCountries = NewCountryDetector(knowledge.CountryKeys())

// KnownCountries returns the detector over the knowledge base countries.
func KnownCountries() *CountryDetector {
	return knownCountries
}

// DetectCountry runs detection against the knowledge base countries.
func DetectCountry(text string) (string, bool) {
	return knownCountries.Detect(text)
}
