package urlquery

import "net/http"

// Option customizes a Client at construction time.
type Option func(*Client)

func WithBaseURL(u string) Option          { return func(c *Client) { c.BaseURL = u } }
func WithAPIKey(k string) Option           { return func(c *Client) { c.APIKey = k } }
func WithGzip(on bool) Option              { return func(c *Client) { c.Gzip = on } }
func WithVersion(v APIVersion) Option      { return func(c *Client) { c.Version = v } }
func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.HTTPClient = h } }
func WithUserAgent(ua string) Option       { return func(c *Client) { c.UserAgent = ua } }
func WithLogger(l Logger) Option           { return func(c *Client) { c.Logger = l } }

// CallOption customizes a single API call.
type CallOption func(*callOptions)

type callOptions struct {
	headers http.Header
	apikey  *string
	gzip    *bool
}

func resolveCallOptions(opts []CallOption) *callOptions {
	co := &callOptions{}
	for _, o := range opts {
		o(co)
	}
	return co
}

// WithCallKey overrides the client API key for a single call. An empty string
// suppresses the key entirely.
func WithCallKey(k string) CallOption {
	return func(co *callOptions) { co.apikey = &k }
}

// WithCallGzip requests a compressed response for a single call. It cannot
// disable a client-level Gzip default; either setting enables compression.
func WithCallGzip(on bool) CallOption {
	return func(co *callOptions) { co.gzip = &on }
}

// WithHeader adds an arbitrary HTTP header to a single API call.
func WithHeader(key, value string) CallOption {
	return func(co *callOptions) {
		if co.headers == nil {
			co.headers = http.Header{}
		}
		co.headers.Add(key, value)
	}
}
