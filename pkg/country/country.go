// Package country resolves free-text names to ISO 3166 countries.
package country

import (
	"errors"
	"strings"
	"sync"

	"github.com/biter777/countries"
)

// ErrNotFound is returned when a name does not resolve to any country.
var ErrNotFound = errors.New("country not found")

// Country is the subset of ISO 3166 data the location parser needs.
type Country struct {
	Name   string
	Alpha2 string
	Alpha3 string
}

var (
	indexOnce sync.Once
	index     map[string]countries.CountryCode
)

// buildIndex keys every country by its lower-cased name, alpha-2 and alpha-3.
// Aliases and abbreviations are deliberately absent: "UK", "England" and
// "SF" are not countries here.
func buildIndex() {
	index = make(map[string]countries.CountryCode)
	for _, code := range countries.All() {
		if code == countries.Unknown {
			continue
		}
		for _, key := range []string{code.String(), code.Alpha2(), code.Alpha3()} {
			key = strings.ToLower(strings.TrimSpace(key))
			if key == "" {
				continue
			}
			if _, taken := index[key]; !taken {
				index[key] = code
			}
		}
	}
}

// Lookup matches name exactly, ignoring case, against country names and
// alpha-2/alpha-3 codes.
func Lookup(name string) (Country, error) {
	indexOnce.Do(buildIndex)

	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return Country{}, ErrNotFound
	}
	code, ok := index[key]
	if !ok {
		return Country{}, ErrNotFound
	}
	return Country{
		Name:   code.String(),
		Alpha2: code.Alpha2(),
		Alpha3: code.Alpha3(),
	}, nil
}

// IsCountry reports whether name resolves to a country.
func IsCountry(name string) bool {
	_, err := Lookup(name)
	return err == nil
}

// Names returns the English names of all known countries.
func Names() []string {
	all := countries.All()
	names := make([]string, 0, len(all))
	for _, code := range all {
		names = append(names, code.String())
	}
	return names
}
