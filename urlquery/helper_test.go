package urlquery

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fixedNow pins the clock so timestamp defaults are reproducible.
var fixedNow = time.Date(2019, 7, 14, 17, 30, 0, 0, time.UTC)

func newTestServer(handler http.HandlerFunc, opts ...Option) (*httptest.Server, *Client) {
	srv := httptest.NewServer(handler)
	cl := New(append([]Option{WithBaseURL(srv.URL)}, opts...)...)
	cl.now = func() time.Time { return fixedNow }
	return srv, cl
}

func newFixedClient(opts ...Option) *Client {
	cl := New(opts...)
	cl.now = func() time.Time { return fixedNow }
	return cl
}

func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	defer r.Body.Close()
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	return m
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}
