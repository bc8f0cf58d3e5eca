package transfermarkt

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"tmscraper/pkg/htmlutil"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func loadFixture(t testing.TB, name string) htmlutil.Node {
	t.Helper()

	body, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	doc, err := htmlutil.ParseBytes(body)
	require.NoError(t, err)
	return doc
}

// fixtureFetcher serves documents from testdata, keyed by path and encoded query.
type fixtureFetcher struct {
	pages map[string]string

	mutex     sync.Mutex
	requested []string
}

func fixtureKey(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}

func (f *fixtureFetcher) Document(ctx context.Context, path string, query url.Values) (htmlutil.Node, error) {
	key := fixtureKey(path, query)

	f.mutex.Lock()
	f.requested = append(f.requested, key)
	f.mutex.Unlock()

	name, ok := f.pages[key]
	if !ok {
		return nil, fmt.Errorf("fetch %s: unexpected status 404 Not Found", key)
	}
	body, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		return nil, err
	}
	return htmlutil.ParseBytes(body)
}

type countryNotFound string

func (c countryNotFound) Error() string {
	return fmt.Sprintf("country %q not found", string(c))
}

// mapCountries resolves only the names it was given.
type mapCountries map[string]string

func (m mapCountries) Resolve(name string) (string, error) {
	code, ok := m[name]
	if !ok {
		return "", errors.Wrap(countryNotFound(name), "resolve")
	}
	return code, nil
}

var testCountries = mapCountries{
	"Italy":  "ITA",
	"Bosnia": "BIH",
}
