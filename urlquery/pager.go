package urlquery

import "context"

// ReportPager iterates through report_list pages by advancing the timestamp
// past the last report of each page. It stops on a short page. The last
// report of a page may reappear as the first of the next; callers that care
// should de-duplicate on report ID.
type ReportPager struct {
	Client    *Client
	Timestamp string
	Limit     int
	Done      bool
}

// Next returns the next page of reports, or nil when iteration finishes.
func (p *ReportPager) Next(ctx context.Context, opts ...CallOption) ([]BasicReport, error) {
	if p.Done {
		return nil, nil
	}
	resp, err := p.Client.ReportList(ctx, ReportListRequest{Timestamp: p.Timestamp, Limit: p.Limit}, opts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Reports) == 0 {
		p.Done = true
		return nil, nil
	}
	limit := p.Limit
	if limit <= 0 {
		limit = defaultReportListLimit
	}
	if len(resp.Reports) < limit {
		p.Done = true
	}
	p.Timestamp = resp.Reports[len(resp.Reports)-1].Date
	return resp.Reports, nil
}
