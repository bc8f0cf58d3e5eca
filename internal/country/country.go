// Package country resolves free-text country names (as printed on player pages) to
// ISO 3166-1 alpha-3 codes.
package country

import (
	"strings"
	"unicode"

	"github.com/antzucaro/matchr"
	"github.com/cockroachdb/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var ErrNotFound = errors.New("country not found")

// the names football sites use for regions that are not ISO countries
// or whose English CLDR name is far from the usual spelling.
var aliases = map[string]string{
	"england":          "GBR",
	"scotland":         "GBR",
	"wales":            "GBR",
	"northern ireland": "GBR",
	"korea, south":     "KOR",
	"korea, north":     "PRK",
	"cote d'ivoire":    "CIV",
	"ivory coast":      "CIV",
	"dr congo":         "COD",
	"congo dr":         "COD",
	"congo":            "COG",
	"czech republic":   "CZE",
	"usa":              "USA",
	"chinese taipei":   "TWN",
	"kosovo":           "XKX",
}

const (
	similarityThreshold = 0.9
	minSubstringLen     = 4
)

type entry struct {
	name string
	code string
}

// Resolver matches names against the English CLDR region names. Resolution is
// exact match, then alias, then substring containment, then Jaro-Winkler similarity.
type Resolver struct {
	entries []entry
	exact   map[string]string
}

func NewResolver() *Resolver {
	r := &Resolver{exact: map[string]string{}}
	namer := display.English.Regions()

	for a := 'A'; a <= 'Z'; a++ {
		for b := 'A'; b <= 'Z'; b++ {
			region, err := language.ParseRegion(string([]rune{a, b}))
			if err != nil || !region.IsCountry() {
				continue
			}
			// deprecated codes (FX, PZ, DY, ...) share the name of their replacement
			if region.Canonicalize() != region {
				continue
			}
			code := region.ISO3()
			name := namer.Name(region)
			if code == "" || name == "" {
				continue
			}
			key := normalize(name)
			if _, seen := r.exact[key]; seen {
				continue
			}
			r.entries = append(r.entries, entry{name: key, code: code})
			r.exact[key] = code
		}
	}

	return r
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func normalize(name string) string {
	out, _, err := transform.String(stripMarks, name)
	if err != nil {
		out = name
	}
	out = strings.ToLower(strings.TrimSpace(out))
	out = strings.ReplaceAll(out, "&", "and")
	return strings.Join(strings.Fields(out), " ")
}

// Resolve returns the alpha-3 code of the country called `name`, or ErrNotFound.
func (r *Resolver) Resolve(name string) (string, error) {
	key := normalize(name)
	if key == "" {
		return "", errors.Wrap(ErrNotFound, "empty name")
	}

	if code, ok := r.exact[key]; ok {
		return code, nil
	}
	if code, ok := aliases[key]; ok {
		return code, nil
	}

	if len(key) >= minSubstringLen {
		code, matches := r.containing(key)
		if matches == 1 {
			return code, nil
		}
		if matches > 1 {
			return "", errors.Wrapf(ErrNotFound, "%q is ambiguous (%d countries)", name, matches)
		}
	}

	best := entry{}
	bestScore := 0.0
	for _, e := range r.entries {
		score := matchr.JaroWinkler(key, e.name, false)
		if score > bestScore {
			best = e
			bestScore = score
		}
	}
	if bestScore >= similarityThreshold {
		return best.code, nil
	}

	return "", errors.Wrapf(ErrNotFound, "%q", name)
}

// containing returns the code of the country whose name contains `key` (or is
// contained by it) and how many distinct countries matched.
func (r *Resolver) containing(key string) (string, int) {
	var code string
	matched := map[string]struct{}{}
	for _, e := range r.entries {
		if strings.Contains(e.name, key) || strings.Contains(key, e.name) {
			code = e.code
			matched[e.code] = struct{}{}
		}
	}
	return code, len(matched)
}
