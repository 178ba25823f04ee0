package urlquery

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_NonSuccessStatus(t *testing.T) {
	srv, cl := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"permission denied"}`, http.StatusForbidden)
	})
	defer srv.Close()

	_, err := cl.Reputation(context.Background(), "example.com")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "permission denied", apiErr.Message)
	assert.Contains(t, apiErr.Error(), "urlquery API 403")
}

func TestTransportError_UndecodableBody(t *testing.T) {
	srv, cl := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	})
	defer srv.Close()

	_, err := cl.Reputation(context.Background(), "example.com")
	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.False(t, terr.Timeout)
}

func TestTransportError_Timeout(t *testing.T) {
	srv, cl := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		writeJSON(t, w, Reputation{})
	}, WithHTTPClient(&http.Client{Timeout: 50 * time.Millisecond}))
	defer srv.Close()

	_, err := cl.Reputation(context.Background(), "example.com")
	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.True(t, terr.Timeout)
}

func TestTransportError_ConnectionRefused(t *testing.T) {
	cl := newFixedClient(WithBaseURL("http://127.0.0.1:1"))

	_, err := cl.Reputation(context.Background(), "example.com")
	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	require.Error(t, terr.Err)
}

// A service-level error payload on a 2xx response is passed through verbatim,
// not converted into a client error.
func TestRemoteError_PassedThrough(t *testing.T) {
	srv, cl := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{"error": "invalid key"})
	})
	defer srv.Close()

	rep, err := cl.Reputation(context.Background(), "example.com")
	require.NoError(t, err)
	assert.Equal(t, "invalid key", rep["error"])
}
