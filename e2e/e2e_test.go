package e2e

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/urlquery/urlquery-go/urlquery"
)

func TestE2E_Live(t *testing.T) {
	if os.Getenv("URLQUERY_E2E") != "1" {
		t.Skip("set URLQUERY_E2E=1 to run live test")
	}

	opts := []urlquery.Option{
		urlquery.WithHTTPClient(&http.Client{Timeout: 60 * time.Second}),
		urlquery.WithLogger(func(event string, meta map[string]any) { t.Logf("%s: %v", event, meta) }),
	}
	if base := os.Getenv("URLQUERY_BASE_URL"); base != "" {
		opts = append(opts, urlquery.WithBaseURL(base))
	}
	if key := os.Getenv("URLQUERY_API_KEY"); key != "" {
		opts = append(opts, urlquery.WithAPIKey(key))
	}
	cl := urlquery.New(opts...)
	ctx := context.Background()

	// Keyless procedures first.
	uas, err := cl.UserAgentList(ctx)
	if err != nil {
		t.Fatalf("user_agent_list: %v", err)
	}
	if len(uas) == 0 {
		t.Fatal("no user agents returned")
	}

	rep, err := cl.Reputation(ctx, "example.com")
	if err != nil {
		t.Fatalf("reputation: %v", err)
	}
	t.Logf("reputation keys: %d", len(rep))

	res, err := cl.Search(ctx, urlquery.SearchRequest{Q: "example.com"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	t.Logf("search keys: %d", len(res))

	// The feed needs a key.
	if os.Getenv("URLQUERY_API_KEY") != "" {
		feed, err := cl.Feed(ctx, urlquery.FeedRequest{})
		if err != nil {
			t.Fatalf("urlfeed: %v", err)
		}
		t.Logf("feed %s - %s: %d URLs", feed.StartTime, feed.EndTime, len(feed.Feed))
	}
}
