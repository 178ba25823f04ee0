package urlquery

import "context"

type userAgentListQuery struct {
	envelope
}

// UserAgentList returns the user agent strings the service currently accepts
// for submissions. The list changes over time; pick one from the result.
func (c *Client) UserAgentList(ctx context.Context, opts ...CallOption) ([]string, error) {
	co := resolveCallOptions(opts)
	wire := userAgentListQuery{envelope: c.envelope("user_agent_list", co)}
	var out []string
	if err := c.call(ctx, wire, &out, co); err != nil {
		return nil, err
	}
	return out, nil
}
