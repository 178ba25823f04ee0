package urlquery

import "context"

// Flag bits selecting report sections in the legacy report call. They are
// added together; ReportFull returns everything.
const (
	ReportSettings = 1
	ReportAlerts   = 2
	ReportRecent   = 4
	ReportDetails  = 8
	ReportFull     = 15
)

// ReportRequest fetches one analysis report. How much data comes back depends
// on the parameters and the key's permissions.
type ReportRequest struct {
	// ReportID identifies the report. Obtained from Search, ReportList or
	// a finished QueueStatus.
	ReportID string

	// Flag is the legacy section bitmask, an OR of the Report* bits,
	// 0 to 15. V1 only.
	Flag int

	// RecentLimit bounds the number of recent reports from the same
	// domain/IP/ASN to include. Zero selects the legacy default of 6
	// under V1.
	RecentLimit int

	// IncludeDetails adds alert information, JavaScript and transaction
	// data. V3 only.
	IncludeDetails bool

	// IncludeScreenshot adds a base64 screenshot with its mime type.
	// V3 only.
	IncludeScreenshot bool

	// IncludeDomainGraph adds a base64 domain graph with its mime type.
	// V3 only.
	IncludeDomainGraph bool
}

type reportQueryV1 struct {
	envelope
	URLQueryID  string `json:"urlquery_id" validate:"required"`
	Flag        int    `json:"flag" validate:"gte=0,lte=15"`
	RecentLimit int    `json:"recent_limit"`
}

type reportQueryV3 struct {
	envelope
	ReportID           string `json:"report_id" validate:"required"`
	RecentLimit        int    `json:"recent_limit"`
	IncludeDetails     bool   `json:"include_details,omitempty"`
	IncludeScreenshot  bool   `json:"include_screenshot,omitempty"`
	IncludeDomainGraph bool   `json:"include_domain_graph,omitempty"`
}

// Report fetches one analysis report.
func (c *Client) Report(ctx context.Context, req ReportRequest, opts ...CallOption) (Report, error) {
	co := resolveCallOptions(opts)
	wire, err := c.buildReport(req, co)
	if err != nil {
		return nil, err
	}
	var out Report
	if err := c.call(ctx, wire, &out, co); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) buildReport(req ReportRequest, co *callOptions) (wireRequest, error) {
	var wire wireRequest
	if c.Version == V1 {
		limit := req.RecentLimit
		if limit == 0 {
			limit = 6
		}
		wire = reportQueryV1{
			envelope:    c.envelope("urlquery_get_report", co),
			URLQueryID:  req.ReportID,
			Flag:        req.Flag,
			RecentLimit: limit,
		}
	} else {
		wire = reportQueryV3{
			envelope:           c.envelope("report", co),
			ReportID:           req.ReportID,
			RecentLimit:        req.RecentLimit,
			IncludeDetails:     req.IncludeDetails,
			IncludeScreenshot:  req.IncludeScreenshot,
			IncludeDomainGraph: req.IncludeDomainGraph,
		}
	}
	if err := checkParams(wire); err != nil {
		return nil, err
	}
	return wire, nil
}

// defaultReportListLimit is the page size when none is requested.
const defaultReportListLimit = 50

// ReportListRequest lists reports finished from a given point in time.
type ReportListRequest struct {
	// Timestamp is a free-form date string marking the starting point.
	// Empty lists the most recent reports.
	Timestamp string

	// Limit bounds the page size, default 50.
	Limit int
}

type reportListQuery struct {
	envelope
	Timestamp int64 `json:"timestamp"`
	Limit     int   `json:"limit" validate:"gte=1"`
}

// ReportList returns basic information about reports finished from the given
// timestamp on. Non-public and private reports require a key with access.
func (c *Client) ReportList(ctx context.Context, req ReportListRequest, opts ...CallOption) (*ReportListResponse, error) {
	co := resolveCallOptions(opts)
	wire, err := c.buildReportList(req, co)
	if err != nil {
		return nil, err
	}
	var out ReportListResponse
	if err := c.call(ctx, wire, &out, co); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) buildReportList(req ReportListRequest, co *callOptions) (wireRequest, error) {
	limit := req.Limit
	if limit == 0 {
		limit = defaultReportListLimit
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

	wire := reportListQuery{
		envelope:  c.envelope("report_list", co),
		Timestamp: ts,
		Limit:     limit,
	}
	if err := invalid(checkParams(wire), failures); err != nil {
		return nil, err
	}
	return wire, nil
}
