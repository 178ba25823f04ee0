package urlquery

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedStream(t *testing.T) {
	srv, cl := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"start_time": "2019-07-14 16:00",
			"end_time": "2019-07-14 16:59",
			"feed": [
				{"url": "http://a.example"},
				{"url": "http://b.example"},
				{"url": "http://c.example"}
			]
		}`))
	})
	defer srv.Close()

	sc, err := cl.FeedStream(context.Background(), FeedRequest{})
	require.NoError(t, err)
	defer sc.Close()

	var urls []string
	var entry map[string]any
	for sc.Next(&entry) {
		urls = append(urls, entry["url"].(string))
	}
	require.NoError(t, sc.Err())
	assert.Equal(t, []string{"http://a.example", "http://b.example", "http://c.example"}, urls)

	// Exhausted scanners stay exhausted.
	assert.False(t, sc.Next(&entry))
}

func TestFeedStream_ValidationShortCircuits(t *testing.T) {
	calls := 0
	srv, cl := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		calls++
	})
	defer srv.Close()

	_, err := cl.FeedStream(context.Background(), FeedRequest{Interval: "week"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Zero(t, calls)
}

func TestFeedStream_NonJSON(t *testing.T) {
	srv, cl := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	})
	defer srv.Close()

	_, err := cl.FeedStream(context.Background(), FeedRequest{})
	var terr *TransportError
	require.ErrorAs(t, err, &terr)
}
