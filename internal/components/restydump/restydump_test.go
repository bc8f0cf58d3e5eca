package restydump

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

type memoryOutput struct {
	mutex     sync.Mutex
	exchanges map[string]string
}

func (m *memoryOutput) Write(id string, contents string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.exchanges[id] = contents
}

func newServer(t testing.TB) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("x-page", r.URL.Path)
		w.Write([]byte("<html>" + r.URL.Path + "</html>"))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestAttach(t *testing.T) {
	server := newServer(t)
	output := &memoryOutput{exchanges: map[string]string{}}

	client := resty.New().SetBaseURL(server.URL).SetHeader("user-agent", "restydump-test")
	Attach(client, output)

	_, err := client.R().Get("/first")
	require.NoError(t, err)
	_, err = client.R().Get("/second")
	require.NoError(t, err)

	require.Len(t, output.exchanges, 2)

	first := output.exchanges["0001.txt"]
	require.Contains(t, first, "---- REQUEST ----")
	require.Contains(t, first, "GET "+server.URL+"/first")
	require.Contains(t, first, "User-Agent: restydump-test")
	require.Contains(t, first, "---- RESPONSE ----")
	require.Contains(t, first, "200 "+server.URL+"/first")
	require.Contains(t, first, "X-Page: /first")
	require.Contains(t, first, "<html>/first</html>")

	require.Contains(t, output.exchanges["0002.txt"], "<html>/second</html>")
}

func TestFilesystemOutput(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dump")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stale.txt"), []byte("old"), 0600))

	output, err := NewFilesystemOutput(dir)
	require.NoError(t, err)
	output.Write("0001.txt", "contents")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	contents, err := os.ReadFile(filepath.Join(dir, "0001.txt"))
	require.NoError(t, err)
	require.Equal(t, "contents", string(contents))
}

func TestFormatHeaders(t *testing.T) {
	require.Equal(t, "", formatHeaders(nil))
	require.Equal(t, "A: 1\nB: 2\nB: 3", formatHeaders(http.Header{"B": {"2", "3"}, "A": {"1"}}))
}

func TestFormatRequestBody(t *testing.T) {
	get, err := http.NewRequest(http.MethodGet, "http://localhost/search", nil)
	require.NoError(t, err)
	require.Equal(t, "", formatRequestBody(get))

	// resty sets GetBody on every request, bodiless ones return a nil reader
	get.GetBody = func() (io.ReadCloser, error) {
		return nil, nil
	}
	require.Equal(t, "", formatRequestBody(get))

	post, err := http.NewRequest(http.MethodPost, "http://localhost/search", strings.NewReader("query=buffon"))
	require.NoError(t, err)
	require.Equal(t, "query=buffon", formatRequestBody(post))

	require.Equal(t, "", formatRequestBody(nil))
}
