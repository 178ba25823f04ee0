package urlquery

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_V3Wire(t *testing.T) {
	var body map[string]any
	srv, cl := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		body = decodeBody(t, r)
		writeJSON(t, w, map[string]any{"report_id": "r-1", "ids_alert_count": 3})
	})
	defer srv.Close()

	rep, err := cl.Report(context.Background(), ReportRequest{
		ReportID:       "r-1",
		IncludeDetails: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "r-1", rep["report_id"])

	assert.Equal(t, "report", body["method"])
	assert.Equal(t, "r-1", body["report_id"])
	assert.Equal(t, true, body["include_details"])
	assert.Equal(t, float64(0), body["recent_limit"])
	assert.NotContains(t, body, "include_screenshot")
	assert.NotContains(t, body, "flag")
}

func TestReport_V1Defaults(t *testing.T) {
	var body map[string]any
	srv, cl := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		body = decodeBody(t, r)
		writeJSON(t, w, map[string]any{})
	}, WithVersion(V1))
	defer srv.Close()

	_, err := cl.Report(context.Background(), ReportRequest{ReportID: "42", Flag: ReportFull})
	require.NoError(t, err)
	assert.Equal(t, "urlquery_get_report", body["method"])
	assert.Equal(t, "42", body["urlquery_id"])
	assert.Equal(t, float64(15), body["flag"])
	assert.Equal(t, float64(6), body["recent_limit"])
}

func TestReport_V1FlagTooHigh(t *testing.T) {
	calls := 0
	srv, cl := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}, WithVersion(V1))
	defer srv.Close()

	_, err := cl.Report(context.Background(), ReportRequest{ReportID: "42", Flag: 16})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Error(), "flag can only be <= 15")
	assert.Zero(t, calls)
}

func TestReport_MissingID(t *testing.T) {
	calls := 0
	srv, cl := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		calls++
	})
	defer srv.Close()

	_, err := cl.Report(context.Background(), ReportRequest{})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Error(), "report_id is required")
	assert.Zero(t, calls)
}

func TestReportList_Defaults(t *testing.T) {
	var body map[string]any
	srv, cl := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		body = decodeBody(t, r)
		writeJSON(t, w, ReportListResponse{Reports: []BasicReport{{ReportID: "r-1"}}})
	})
	defer srv.Close()

	resp, err := cl.ReportList(context.Background(), ReportListRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Reports, 1)

	assert.Equal(t, "report_list", body["method"])
	assert.Equal(t, float64(defaultReportListLimit), body["limit"])
	assert.Equal(t, float64(fixedNow.Unix()), body["timestamp"])
}

func TestReportList_UnparsableTimestamp(t *testing.T) {
	calls := 0
	srv, cl := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		calls++
	})
	defer srv.Close()

	_, err := cl.ReportList(context.Background(), ReportListRequest{Timestamp: "garbage input"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Error(), "unable to convert time to timestamp: garbage input")
	assert.Zero(t, calls)
}
