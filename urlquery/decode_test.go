package urlquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAs(t *testing.T) {
	type alertCounts struct {
		ReportID string `json:"report_id"`
		IDS      int    `json:"ids_alert_count"`
		UQ       int    `json:"urlquery_alert_count"`
	}
	rep := Report{
		"report_id":            "r-7",
		"ids_alert_count":      3,
		"urlquery_alert_count": 1,
		"date":                 "2019-07-14 12:00",
	}
	got, err := As[alertCounts](rep)
	require.NoError(t, err)
	assert.Equal(t, alertCounts{ReportID: "r-7", IDS: 3, UQ: 1}, got)
}

func TestAs_TypeMismatch(t *testing.T) {
	type strict struct {
		Count int `json:"count"`
	}
	_, err := As[strict](map[string]any{"count": "many"})
	require.Error(t, err)
}
