package urlquery

import "context"

// FlaggedURLsRequest selects one time slice of the flagged-URL reputation
// feed. The procedure exists only in the legacy API; the client sends its V1
// wire name regardless of the configured version.
type FlaggedURLsRequest struct {
	// Interval sets the slice size: "hour" (default) or "day".
	Interval string

	// Timestamp is a free-form date string inside the wanted slice.
	// Empty selects the current slice.
	Timestamp string

	// Confidence filters URLs by detection confidence, 0 (lowest) to 2.
	// Nil selects the default of 2, where a live exploit kit was detected.
	Confidence *int
}

type flaggedURLsQuery struct {
	envelope
	Interval   string `json:"interval" validate:"oneof=hour day"`
	Timestamp  int64  `json:"timestamp"`
	Confidence int    `json:"confidence" validate:"oneof=0 1 2"`
}

// FlaggedURLs returns the URL list flagged by urlquery's own detections for
// one time slice.
func (c *Client) FlaggedURLs(ctx context.Context, req FlaggedURLsRequest, opts ...CallOption) (*URLFeed, error) {
	co := resolveCallOptions(opts)
	wire, err := c.buildFlaggedURLs(req, co)
	if err != nil {
		return nil, err
	}
	var out URLFeed
	if err := c.call(ctx, wire, &out, co); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) buildFlaggedURLs(req FlaggedURLsRequest, co *callOptions) (wireRequest, error) {
	interval := req.Interval
	if interval == "" {
		interval = "hour"
	}
	confidence := 2
	if req.Confidence != nil {
		confidence = *req.Confidence
	}

	var failures []string
	var ts int64
	if req.Timestamp == "" {
		ts = c.clock().UTC().Unix()
	} else {
		var err error
		if ts, err = parseTimestamp(req.Timestamp); err != nil {
			failures = append(failures, err.Error())
		}
	}

	wire := flaggedURLsQuery{
		envelope:   c.envelope("urlquery_get_flagged_urls", co),
		Interval:   interval,
		Timestamp:  ts,
		Confidence: confidence,
	}
	if err := invalid(checkParams(wire), failures); err != nil {
		return nil, err
	}
	return wire, nil
}
