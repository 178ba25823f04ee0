// Package urlquery provides a typed Go client for the urlquery.net URL
// analysis API. The client builds JSON request envelopes for the service's
// remote procedures (feed retrieval, URL submission, report lookup, search,
// reputation lookup), validates parameters locally before any network I/O,
// and POSTs them to a single configured endpoint.
//
// Most procedures are usable without an API key but only return public data.
// A key unlocks non-public and private reports as well as the URL feeds.
package urlquery

import (
	"net"
	"net/http"
	"time"
)

// DefaultBaseURL is the current production endpoint of the API.
const DefaultBaseURL = "https://uqapi.net/v3/json"

// APIVersion selects which generation of the wire protocol the client speaks.
// The two versions share the same transport but differ in method names,
// parameter sets and timestamp defaulting.
type APIVersion int

const (
	// V3 is the current API and the default.
	V3 APIVersion = iota
	// V1 is the legacy API, kept for callers still pointed at old deployments.
	V1
)

// Logger defines an optional structured logging hook. The client never passes
// request bodies or API keys to the hook.
type Logger func(event string, metadata map[string]any)

// Client contains shared configuration and HTTP plumbing for the SDK.
// All fields are read-only after New; a Client is safe for concurrent use.
type Client struct {
	// BaseURL is the API endpoint every request is POSTed to.
	BaseURL string

	// APIKey is attached to each request body as the "key" field when
	// non-empty. Per-call overrides take precedence (see WithCallKey).
	APIKey string

	// Gzip requests compressed responses for every call. A per-call
	// WithCallGzip(true) enables compression for a single request.
	Gzip bool

	// Version selects the wire protocol generation. Defaults to V3.
	Version APIVersion

	// HTTPClient is the underlying HTTP client. A tuned default with an
	// explicit timeout is provided and can be replaced via WithHTTPClient.
	HTTPClient *http.Client

	// UserAgent is added to each request.
	UserAgent string

	// Observability hooks.
	Logger      Logger
	BeforeHooks []func(*http.Request)
	AfterHooks  []func(*http.Response, []byte, error)

	// now backs every timestamp default so request building is reproducible
	// under test. Nil means time.Now.
	now func() time.Time
}

// New constructs a Client with safe defaults. Options can override defaults.
func New(opts ...Option) *Client {
	c := &Client{
		BaseURL: DefaultBaseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   10 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: 30 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
				MaxIdleConns:          100,
				IdleConnTimeout:       90 * time.Second,
			},
		},
		UserAgent: "urlquery-go/0.1 (+https://github.com/urlquery/urlquery-go)",
	}
	for _, f := range opts {
		f(c)
	}
	return c
}

// clock returns the injected or wall clock.
func (c *Client) clock() time.Time {
	if c.now != nil {
		return c.now()
	}
	return time.Now()
}
