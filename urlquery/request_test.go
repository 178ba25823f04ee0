package urlquery

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope_KeyPrecedence(t *testing.T) {
	var body map[string]any
	srv, cl := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		body = decodeBody(t, r)
		writeJSON(t, w, Reputation{})
	}, WithAPIKey("client-key"))
	defer srv.Close()

	ctx := context.Background()

	_, err := cl.Reputation(ctx, "example.com")
	require.NoError(t, err)
	assert.Equal(t, "client-key", body["key"])

	_, err = cl.Reputation(ctx, "example.com", WithCallKey("call-key"))
	require.NoError(t, err)
	assert.Equal(t, "call-key", body["key"])

	// An explicit empty override suppresses the key entirely.
	_, err = cl.Reputation(ctx, "example.com", WithCallKey(""))
	require.NoError(t, err)
	assert.NotContains(t, body, "key")
}

func TestEnvelope_GzipEitherSettingEnables(t *testing.T) {
	var body map[string]any
	handler := func(w http.ResponseWriter, r *http.Request) {
		body = decodeBody(t, r)
		writeJSON(t, w, Reputation{})
	}
	ctx := context.Background()

	srv, cl := newTestServer(handler)
	defer srv.Close()

	_, err := cl.Reputation(ctx, "example.com")
	require.NoError(t, err)
	assert.NotContains(t, body, "gzip")

	_, err = cl.Reputation(ctx, "example.com", WithCallGzip(true))
	require.NoError(t, err)
	assert.Equal(t, true, body["gzip"])

	srv2, cl2 := newTestServer(handler, WithGzip(true))
	defer srv2.Close()

	// A per-call false cannot disable the client default.
	_, err = cl2.Reputation(ctx, "example.com", WithCallGzip(false))
	require.NoError(t, err)
	assert.Equal(t, true, body["gzip"])
}

// Building the same request twice with a pinned clock yields byte-identical
// payloads.
func TestBuild_Idempotent(t *testing.T) {
	cl := newFixedClient(WithAPIKey("k"), WithGzip(true))
	co := resolveCallOptions(nil)

	reqs := []func() (wireRequest, error){
		func() (wireRequest, error) {
			return cl.buildSubmit(SubmitRequest{URL: "http://example.com", Priority: "high"}, co)
		},
		func() (wireRequest, error) {
			return cl.buildSearch(SearchRequest{Q: "example.com"}, co)
		},
		func() (wireRequest, error) {
			return cl.buildFeed(FeedRequest{Interval: "day"}, co)
		},
		func() (wireRequest, error) {
			return cl.buildReportList(ReportListRequest{}, co)
		},
	}
	for _, build := range reqs {
		first, err := build()
		require.NoError(t, err)
		second, err := build()
		require.NoError(t, err)

		a, err := json.Marshal(first)
		require.NoError(t, err)
		b, err := json.Marshal(second)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestCallHeadersAndHooks(t *testing.T) {
	var gotHeader, gotUA string
	srv, cl := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-Trace")
		gotUA = r.Header.Get("User-Agent")
		writeJSON(t, w, Reputation{})
	})
	defer srv.Close()

	var events []string
	cl.Logger = func(event string, metadata map[string]any) {
		events = append(events, event)
		assert.NotContains(t, metadata, "key")
	}
	var sawBefore, sawAfter bool
	cl.BeforeHooks = append(cl.BeforeHooks, func(*http.Request) { sawBefore = true })
	cl.AfterHooks = append(cl.AfterHooks, func(*http.Response, []byte, error) { sawAfter = true })

	_, err := cl.Reputation(context.Background(), "example.com", WithHeader("X-Trace", "t-1"))
	require.NoError(t, err)
	assert.Equal(t, "t-1", gotHeader)
	assert.Contains(t, gotUA, "urlquery-go/")
	assert.Equal(t, []string{"request", "response"}, events)
	assert.True(t, sawBefore)
	assert.True(t, sawAfter)
}
