package urlquery

import "context"

// SearchRequest queries the report database.
type SearchRequest struct {
	// Q is the search query: a string, an IP, a regexp pattern, an alert
	// name or a script hash depending on Type.
	Q string

	// Type selects the search mode, default "string". The legacy API
	// accepts "string" and "regexp"; V3 adds "ids_alert",
	// "urlquery_alert" and "js_script_hash".
	Type string

	// ResultType selects "reports" (default) or "url_list". V3 only.
	ResultType string

	// URLMatching matches patterns against "url_host" (default) or
	// "url_path". Applies to string and regexp searches. V3 only.
	URLMatching string

	// From and To bound the search range as free-form date strings.
	// To defaults to now, From to thirty days before To.
	From string
	To   string

	// Deep searches all URLs, not just submitted ones. Experimental and
	// resource intensive. V3 only.
	Deep bool
}

type searchQueryV1 struct {
	envelope
	Q    string `json:"q" validate:"required"`
	Type string `json:"type" validate:"oneof=string regexp"`
	From int64  `json:"from"`
	To   int64  `json:"to"`
}

type searchQueryV3 struct {
	envelope
	Q           string `json:"q" validate:"required"`
	SearchType  string `json:"search_type" validate:"oneof=string regexp ids_alert urlquery_alert js_script_hash"`
	ResultType  string `json:"result_type" validate:"oneof=reports url_list"`
	URLMatching string `json:"url_matching" validate:"oneof=url_host url_path"`
	From        int64  `json:"from"`
	To          int64  `json:"to"`
	Deep        bool   `json:"deep,omitempty"`
}

// Search queries the report database. The shape of the result depends on the
// requested result type and the key's permissions.
func (c *Client) Search(ctx context.Context, req SearchRequest, opts ...CallOption) (SearchResult, error) {
	co := resolveCallOptions(opts)
	wire, err := c.buildSearch(req, co)
	if err != nil {
		return nil, err
	}
	var out SearchResult
	if err := c.call(ctx, wire, &out, co); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) buildSearch(req SearchRequest, co *callOptions) (wireRequest, error) {
	searchType := req.Type
	if searchType == "" {
		searchType = "string"
	}

	from, to, failures := c.searchRange(req.From, req.To)

	var wire wireRequest
	if c.Version == V1 {
		wire = searchQueryV1{
			envelope: c.envelope("urlquery_search", co),
			Q:        req.Q,
			Type:     searchType,
			From:     from,
			To:       to,
		}
	} else {
		resultType := req.ResultType
		if resultType == "" {
			resultType = "reports"
		}
		urlMatching := req.URLMatching
		if urlMatching == "" {
			urlMatching = "url_host"
		}
		wire = searchQueryV3{
			envelope:    c.envelope("search", co),
			Q:           req.Q,
			SearchType:  searchType,
			ResultType:  resultType,
			URLMatching: urlMatching,
			From:        from,
			To:          to,
			Deep:        req.Deep,
		}
	}
	if err := invalid(checkParams(wire), failures); err != nil {
		return nil, err
	}
	return wire, nil
}

// searchRange resolves the search bounds: To defaults to now, From to thirty
// days before To.
func (c *Client) searchRange(from, to string) (int64, int64, []string) {
	var failures []string

	toTime := c.clock().UTC()
	if to != "" {
		t, err := parseTime(to)
		if err != nil {
			failures = append(failures, err.Error())
		} else {
			toTime = t
		}
	}

	fromTime := toTime.Add(-searchWindow)
	if from != "" {
		t, err := parseTime(from)
		if err != nil {
			failures = append(failures, err.Error())
		} else {
			fromTime = t
		}
	}
	return fromTime.Unix(), toTime.Unix(), failures
}
