package urlquery

import "context"

// FeedRequest selects one time slice of the main URL feed.
type FeedRequest struct {
	// Feed selects the feed variant: "unfiltered" (default) or "flagged".
	// V3 only; access to the flagged feed is restricted.
	Feed string

	// Interval sets the slice size: "hour" (default) or "day".
	Interval string

	// Timestamp is a free-form date string; any instant inside a slice
	// selects that slice. Empty selects the most recently completed slice
	// under V3, the current one under V1.
	Timestamp string
}

type feedQueryV3 struct {
	envelope
	Feed      string `json:"feed" validate:"oneof=unfiltered flagged"`
	Interval  string `json:"interval" validate:"oneof=hour day"`
	Timestamp int64  `json:"timestamp"`
}

type feedQueryV1 struct {
	envelope
	Interval  string `json:"interval" validate:"oneof=hour day"`
	Timestamp int64  `json:"timestamp"`
}

// Feed returns the URL feed slice containing the requested timestamp.
// Requires an API key; the feed never contains URLs submitted by the
// caller's own key.
func (c *Client) Feed(ctx context.Context, req FeedRequest, opts ...CallOption) (*URLFeed, error) {
	co := resolveCallOptions(opts)
	wire, err := c.buildFeed(req, co)
	if err != nil {
		return nil, err
	}
	var out URLFeed
	if err := c.call(ctx, wire, &out, co); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) buildFeed(req FeedRequest, co *callOptions) (wireRequest, error) {
	interval := req.Interval
	if interval == "" {
		interval = "hour"
	}

	var failures []string
	var ts int64
	if req.Timestamp == "" {
		if c.Version == V1 {
			ts = c.clock().UTC().Unix()
		} else {
			ts = previousSlice(c.clock(), interval)
		}
	} else {
		var err error
		if ts, err = parseTimestamp(req.Timestamp); err != nil {
			failures = append(failures, err.Error())
		}
	}

	var wire wireRequest
	if c.Version == V1 {
		wire = feedQueryV1{
			envelope:  c.envelope("urlfeed_get", co),
			Interval:  interval,
			Timestamp: ts,
		}
	} else {
		feed := req.Feed
		if feed == "" {
			feed = "unfiltered"
		}
		wire = feedQueryV3{
			envelope:  c.envelope("urlfeed", co),
			Feed:      feed,
			Interval:  interval,
			Timestamp: ts,
		}
	}
	if err := invalid(checkParams(wire), failures); err != nil {
		return nil, err
	}
	return wire, nil
}
