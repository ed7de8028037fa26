package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend/models"
)

func exportContext(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req, err := http.NewRequest(http.MethodGet, "/api/temperature_log/export/pdf?"+query, nil)
	require.NoError(t, err)
	c.Request = req
	return c
}

func TestParseExportParams(t *testing.T) {
	c := exportContext(t, "unit_ids=1,2,3&start_date=2026-03-01&end_date=2026-03-07")
	params, err := parseExportParams(c)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, params.UnitIDs)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local), params.StartDate)
	assert.Equal(t, time.Date(2026, 3, 7, 0, 0, 0, 0, time.Local), params.EndDate)
}

func TestParseExportParamsEndDefaultsToStart(t *testing.T) {
	c := exportContext(t, "unit_ids=5&start_date=2026-03-01")
	params, err := parseExportParams(c)
	require.NoError(t, err)
	assert.Equal(t, params.StartDate, params.EndDate)
}

func TestParseExportParamsErrors(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"missing unit_ids", "start_date=2026-03-01"},
		{"bad unit id", "unit_ids=1,abc&start_date=2026-03-01"},
		{"missing start_date", "unit_ids=1"},
		{"bad start_date", "unit_ids=1&start_date=03/01/2026"},
		{"bad end_date", "unit_ids=1&start_date=2026-03-01&end_date=tomorrow"},
		{"reversed range", "unit_ids=1&start_date=2026-03-07&end_date=2026-03-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseExportParams(exportContext(t, tt.query))
			assert.Error(t, err)
		})
	}
}

func TestFormatTemperature(t *testing.T) {
	assert.Equal(t, "-", formatTemperature(nil))

	v := 3.5
	assert.Equal(t, "3.5 C", formatTemperature(&v))

	whole := -18.0
	assert.Equal(t, "-18 C", formatTemperature(&whole))
}

func TestEntryOutOfRange(t *testing.T) {
	temp := 9.0
	day := models.UnitDayEntries{
		Unit: models.ColdStorageUnit{UnitType: "Refrigerator"},
		Entries: map[string]*models.TemperatureEntry{
			"10:00 AM": {ScheduledTime: "10:00 AM", Temperature: &temp},
			"02:00 PM": {ScheduledTime: "02:00 PM"},
		},
	}

	assert.True(t, entryOutOfRange(day, "10:00 AM"))
	assert.False(t, entryOutOfRange(day, "02:00 PM"), "no reading means no violation")
	assert.False(t, entryOutOfRange(day, "06:00 PM"), "missing slot means no violation")
}

func TestNormalizeUnitType(t *testing.T) {
	assert.Equal(t, "Refrigerator", normalizeUnitType("  refrigerator "))
	assert.Equal(t, "Wine Chiller", normalizeUnitType("WINE CHILLER"))
	assert.Equal(t, "Freezer", normalizeUnitType("fReEzEr"))
}

func TestParseLogDate(t *testing.T) {
	d, err := parseLogDate("2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local), d)

	_, err = parseLogDate("10-03-2026")
	assert.Error(t, err)
}
