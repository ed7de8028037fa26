//go:build integration
// +build integration

package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend/models"
	"backend/storage"
)

// getTestDB connects to the database named by TEST_DB_* (falling back to the
// regular DB_* variables). Tests are skipped when no database is configured.
func getTestDB(t *testing.T) *sql.DB {
	t.Helper()

	env := func(test, fallback string) string {
		if v := os.Getenv(test); v != "" {
			return v
		}
		return os.Getenv(fallback)
	}
	user := env("TEST_DB_USER", "DB_USER")
	password := env("TEST_DB_PASSWORD", "DB_PASSWORD")
	dbname := env("TEST_DB_NAME", "DB_NAME")
	host := env("TEST_DB_HOST", "DB_HOST")
	port := env("TEST_DB_PORT", "DB_PORT")

	if dbname == "" {
		t.Skip("no test database configured, set TEST_DB_* or DB_* env vars")
		return nil
	}

	connStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		user, password, dbname, host, port)
	testDB, err := sql.Open("postgres", connStr)
	require.NoError(t, err)
	if err := testDB.Ping(); err != nil {
		t.Skipf("test database not reachable: %v", err)
		return nil
	}
	return testDB
}

func createTestUnit(t *testing.T, db *sql.DB, unitType string) int {
	t.Helper()

	var id int
	err := db.QueryRow(`
		INSERT INTO cold_storage_units (unit_number, location, unit_type, created_at, updated_at)
		VALUES ($1, 'Test Kitchen', $2, NOW(), NOW())
		RETURNING id`, fmt.Sprintf("TEST-%d", time.Now().UnixNano()), unitType).Scan(&id)
	require.NoError(t, err)

	t.Cleanup(func() {
		_, _ = db.Exec(`DELETE FROM temperature_entries WHERE log_id IN
			(SELECT id FROM temperature_logs WHERE unit_id = $1)`, id)
		_, _ = db.Exec(`DELETE FROM temperature_logs WHERE unit_id = $1`, id)
		_, _ = db.Exec(`DELETE FROM cold_storage_units WHERE id = $1`, id)
	})
	return id
}

func postJSON(t *testing.T, handler gin.HandlerFunc, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler(c)
	return w
}

// One unit failing validation must never block or roll back its siblings in
// the same batch.
func TestSaveTemperatureEntriesBatchIsolatesFailures(t *testing.T) {
	db := getTestDB(t)
	if db == nil {
		return
	}
	defer db.Close()

	fridgeID := createTestUnit(t, db, "Refrigerator")
	freezerID := createTestUnit(t, db, "Freezer")

	inRange := 3.0
	tooWarm := -5.0
	req := models.BatchEntryRequest{
		LogDate:       "2026-03-10",
		ScheduledTime: "10:00 AM",
		Entries: []models.BatchEntryInput{
			{UnitID: fridgeID, Temperature: &inRange, Initial: "JS"},
			{UnitID: freezerID, Temperature: &tooWarm, Initial: "JS"}, // out of range, no corrective action
			{UnitID: 999999999, Temperature: &inRange, Initial: "JS"},
			{UnitID: fridgeID}, // nothing filled in
		},
	}

	w := postJSON(t, SaveTemperatureEntriesBatch(db), "/api/temperature_log/entries", req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.BatchEntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Saved)
	assert.Equal(t, 1, resp.Skipped)
	assert.Equal(t, 2, resp.Failed)
	require.Len(t, resp.Results, 4)

	assert.Equal(t, "saved", resp.Results[0].Status)
	assert.Equal(t, fridgeID, resp.Results[0].UnitID)
	assert.Equal(t, "error", resp.Results[1].Status)
	assert.NotEmpty(t, resp.Results[1].Error)
	assert.Equal(t, "error", resp.Results[2].Status)
	assert.Equal(t, "Unit not found", resp.Results[2].Error)
	assert.Equal(t, "skipped", resp.Results[3].Status)

	// The valid unit's entry persisted despite its failing siblings.
	logDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	entries, _, _, _, err := storage.GetTemperatureLog(db, fridgeID, logDate)
	require.NoError(t, err)
	fridgeEntry := entries["10:00 AM"]
	require.NotNil(t, fridgeEntry)
	require.NotNil(t, fridgeEntry.Temperature)
	assert.Equal(t, 3.0, *fridgeEntry.Temperature)

	// The rejected unit wrote nothing.
	entries, _, _, _, err = storage.GetTemperatureLog(db, freezerID, logDate)
	require.NoError(t, err)
	assert.Nil(t, entries["10:00 AM"])
}

// A batch against an unknown slot is rejected wholesale before any unit is
// touched.
func TestSaveTemperatureEntriesBatchRejectsUnknownSlot(t *testing.T) {
	db := getTestDB(t)
	if db == nil {
		return
	}
	defer db.Close()

	fridgeID := createTestUnit(t, db, "Refrigerator")

	temp := 3.0
	req := models.BatchEntryRequest{
		LogDate:       "2026-03-10",
		ScheduledTime: "11:00 AM",
		Entries: []models.BatchEntryInput{
			{UnitID: fridgeID, Temperature: &temp, Initial: "JS"},
		},
	}

	w := postJSON(t, SaveTemperatureEntriesBatch(db), "/api/temperature_log/entries", req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	entries, _, _, _, err := storage.GetTemperatureLog(db, fridgeID, time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)
	assert.Empty(t, entries)
}
