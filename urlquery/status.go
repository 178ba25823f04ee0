package urlquery

import "context"

type queueStatusQuery struct {
	envelope
	QueueID string `json:"queue_id" validate:"required"`
}

// QueueStatus polls the status of a queued submission. Normal processing time
// for a URL is about one minute.
func (c *Client) QueueStatus(ctx context.Context, queueID string, opts ...CallOption) (*QueueStatus, error) {
	co := resolveCallOptions(opts)
	wire := queueStatusQuery{
		envelope: c.envelope("queue_status", co),
		QueueID:  queueID,
	}
	if err := checkParams(wire); err != nil {
		return nil, err
	}
	var out QueueStatus
	if err := c.call(ctx, wire, &out, co); err != nil {
		return nil, err
	}
	return &out, nil
}
