package urlquery

// ---- Feed models ----

// URLFeed is one time slice of the URL feed.
type URLFeed struct {
	StartTime string           `json:"start_time"`
	EndTime   string           `json:"end_time"`
	Feed      []map[string]any `json:"feed"`
}

// ---- Submission models ----

// QueueStatus describes a queued submission. ReportID is present once Status
// is "done".
type QueueStatus struct {
	Status   string         `json:"status"`
	QueueID  string         `json:"queue_id"`
	ReportID string         `json:"report_id,omitempty"`
	Priority string         `json:"priority,omitempty"`
	URL      map[string]any `json:"url,omitempty"`
	Settings map[string]any `json:"settings,omitempty"`
}

// ---- Report models ----

// BasicReport is the summary form of a report, as returned by report_list.
type BasicReport struct {
	ReportID            string         `json:"report_id"`
	Date                string         `json:"date"`
	URL                 map[string]any `json:"url"`
	Settings            map[string]any `json:"settings"`
	URLQueryAlertCount  int            `json:"urlquery_alert_count"`
	IDSAlertCount       int            `json:"ids_alert_count"`
	BlacklistAlertCount int            `json:"blacklist_alert_count"`
	Screenshot          map[string]any `json:"screenshot,omitempty"`
	DomainGraph         map[string]any `json:"domain_graph,omitempty"`
}

// ReportListResponse is a page of recently finished reports.
type ReportListResponse struct {
	Reports []BasicReport `json:"reports"`
}

// Report, SearchResult and Reputation are intentionally open: their contents
// depend on key permissions and call parameters, and the service evolves them
// without notice. Use As to map them onto caller-defined structs.
type Report = map[string]any
type SearchResult = map[string]any
type Reputation = map[string]any
