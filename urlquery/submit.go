package urlquery

import "context"

// Flag bits accepted by the legacy submit call. Zero accepts the URL only if
// it is new; NonPublic and Private combined resolve to Private server-side.
const (
	SubmitForce     = 1
	SubmitNonPublic = 2
	SubmitPrivate   = 4
)

// SubmitRequest submits a URL for analysis.
type SubmitRequest struct {
	// URL to submit for analysis.
	URL string

	// UserAgent used when visiting the URL. Only accepted values are
	// honored; see UserAgentList. Invalid values make the service pick a
	// random one.
	UserAgent string

	// Referer applied to the first visited URL.
	Referer string

	// Priority schedules the submission: "urlfeed", "low" (default),
	// "medium" or "high". V3 only.
	Priority string

	// AccessLevel sets report visibility: "public" (default), "nonpublic"
	// or "private". V3 only.
	AccessLevel string

	// CallbackURL receives the results as a POST from uqapi.net once
	// processing completes. Requires an API key. V3 only.
	CallbackURL string

	// SubmitVT forwards unknown files to VirusTotal. V3 only.
	SubmitVT bool

	// SaveOnlyAlerted keeps only reports that contain alerts. V3 only.
	SaveOnlyAlerted bool

	// Flags is the legacy report-type bitmask, an OR of the Submit* bits,
	// 0 to 15. V1 only.
	Flags int
}

type submitQueryV1 struct {
	envelope
	URL     string `json:"url" validate:"required"`
	UA      string `json:"ua,omitempty"`
	Referer string `json:"referer,omitempty"`
	Flags   int    `json:"flags" validate:"gte=0,lte=15"`
}

type submitQueryV3 struct {
	envelope
	URL             string `json:"url" validate:"required"`
	UserAgent       string `json:"useragent,omitempty"`
	Referer         string `json:"referer,omitempty"`
	Priority        string `json:"priority" validate:"oneof=urlfeed low medium high"`
	AccessLevel     string `json:"access_level" validate:"oneof=public nonpublic private"`
	CallbackURL     string `json:"callback_url,omitempty"`
	SubmitVT        bool   `json:"submit_vt,omitempty"`
	SaveOnlyAlerted bool   `json:"save_only_alerted,omitempty"`
}

// Submit queues a URL for analysis. Processing normally takes about a minute;
// poll QueueStatus with the returned queue ID.
func (c *Client) Submit(ctx context.Context, req SubmitRequest, opts ...CallOption) (*QueueStatus, error) {
	co := resolveCallOptions(opts)
	wire, err := c.buildSubmit(req, co)
	if err != nil {
		return nil, err
	}
	var out QueueStatus
	if err := c.call(ctx, wire, &out, co); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) buildSubmit(req SubmitRequest, co *callOptions) (wireRequest, error) {
	var wire wireRequest
	if c.Version == V1 {
		wire = submitQueryV1{
			envelope: c.envelope("urlquery_submit", co),
			URL:      req.URL,
			UA:       req.UserAgent,
			Referer:  req.Referer,
			Flags:    req.Flags,
		}
	} else {
		wire = submitQueryV3{
			envelope:        c.envelope("submit", co),
			URL:             req.URL,
			UserAgent:       req.UserAgent,
			Referer:         req.Referer,
			Priority:        defaultString(req.Priority, "low"),
			AccessLevel:     defaultString(req.AccessLevel, "public"),
			CallbackURL:     req.CallbackURL,
			SubmitVT:        req.SubmitVT,
			SaveOnlyAlerted: req.SaveOnlyAlerted,
		}
	}
	if err := checkParams(wire); err != nil {
		return nil, err
	}
	return wire, nil
}

// MassSubmitRequest queues several URLs with shared settings.
type MassSubmitRequest struct {
	URLs            []string
	UserAgent       string
	Referer         string
	Priority        string
	AccessLevel     string
	CallbackURL     string
	SaveOnlyAlerted bool
}

type massSubmitQuery struct {
	envelope
	URLs            []string `json:"urls" validate:"required,min=1,dive,required"`
	UserAgent       string   `json:"useragent,omitempty"`
	Referer         string   `json:"referer,omitempty"`
	Priority        string   `json:"priority" validate:"oneof=urlfeed low medium high"`
	AccessLevel     string   `json:"access_level" validate:"oneof=public nonpublic private"`
	CallbackURL     string   `json:"callback_url,omitempty"`
	SaveOnlyAlerted bool     `json:"save_only_alerted,omitempty"`
}

// MassSubmit queues every URL in the request with the same settings and
// returns one queue status per URL. V3 only.
func (c *Client) MassSubmit(ctx context.Context, req MassSubmitRequest, opts ...CallOption) ([]QueueStatus, error) {
	co := resolveCallOptions(opts)
	wire := massSubmitQuery{
		envelope:        c.envelope("mass_submit", co),
		URLs:            req.URLs,
		UserAgent:       req.UserAgent,
		Referer:         req.Referer,
		Priority:        defaultString(req.Priority, "low"),
		AccessLevel:     defaultString(req.AccessLevel, "public"),
		CallbackURL:     req.CallbackURL,
		SaveOnlyAlerted: req.SaveOnlyAlerted,
	}
	if err := checkParams(wire); err != nil {
		return nil, err
	}
	var out []QueueStatus
	if err := c.call(ctx, wire, &out, co); err != nil {
		return nil, err
	}
	return out, nil
}

func defaultString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
