package urlquery

import "context"

type reputationQuery struct {
	envelope
	Q string `json:"q" validate:"required"`
}

// Reputation searches the reputation list of URLs detected over the last
// month. The query can be a domain or an IP. With an API key, matching URLs
// are returned along with the triggering alert.
func (c *Client) Reputation(ctx context.Context, q string, opts ...CallOption) (Reputation, error) {
	co := resolveCallOptions(opts)
	wire := reputationQuery{
		envelope: c.envelope("reputation", co),
		Q:        q,
	}
	if err := checkParams(wire); err != nil {
		return nil, err
	}
	var out Reputation
	if err := c.call(ctx, wire, &out, co); err != nil {
		return nil, err
	}
	return out, nil
}
