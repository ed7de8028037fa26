//go:build integration
// +build integration

package storage

import (
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend/models"
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

func testEntry(slot string, temp float64, initial string) models.TemperatureEntry {
	return models.TemperatureEntry{
		ScheduledTime: slot,
		Temperature:   &temp,
		Initial:       initial,
	}
}

func TestSaveTemperatureEntryUpsert(t *testing.T) {
	db := getTestDB(t)
	if db == nil {
		return
	}
	defer db.Close()

	unitID := createTestUnit(t, db, "Refrigerator")
	logDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)

	err := SaveTemperatureEntry(db, unitID, logDate, testEntry("10:00 AM", 3.0, "JS"))
	require.NoError(t, err)

	// Saving the same slot again replaces, never duplicates.
	err = SaveTemperatureEntry(db, unitID, logDate, testEntry("10:00 AM", 3.5, "AB"))
	require.NoError(t, err)

	entries, verified, _, _, err := GetTemperatureLog(db, unitID, logDate)
	require.NoError(t, err)
	assert.False(t, verified)
	require.Len(t, entries, 1)

	e := entries["10:00 AM"]
	require.NotNil(t, e)
	require.NotNil(t, e.Temperature)
	assert.Equal(t, 3.5, *e.Temperature)
	assert.Equal(t, "AB", e.Initial)
}

func TestGetTemperatureLogEmptyDay(t *testing.T) {
	db := getTestDB(t)
	if db == nil {
		return
	}
	defer db.Close()

	unitID := createTestUnit(t, db, "Freezer")

	entries, verified, name, verifiedAt, err := GetTemperatureLog(db, unitID, time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.False(t, verified)
	assert.Nil(t, name)
	assert.Nil(t, verifiedAt)
}

func TestVerifyTemperatureLogIsTerminal(t *testing.T) {
	db := getTestDB(t)
	if db == nil {
		return
	}
	defer db.Close()

	unitID := createTestUnit(t, db, "Refrigerator")
	logDate := time.Date(2026, 3, 11, 0, 0, 0, 0, time.Local)

	require.NoError(t, SaveTemperatureEntry(db, unitID, logDate, testEntry("02:00 PM", 2.0, "JS")))

	verifiedAt, err := VerifyTemperatureLog(db, unitID, logDate, "Pat Supervisor")
	require.NoError(t, err)
	assert.False(t, verifiedAt.IsZero())

	// Second attempt must fail and keep the original verifier.
	_, err = VerifyTemperatureLog(db, unitID, logDate, "Someone Else")
	assert.ErrorIs(t, err, ErrAlreadyVerified)

	_, verified, name, _, err := GetTemperatureLog(db, unitID, logDate)
	require.NoError(t, err)
	assert.True(t, verified)
	require.NotNil(t, name)
	assert.Equal(t, "Pat Supervisor", *name)
}

func TestVerifyTemperatureLogEmptyDay(t *testing.T) {
	db := getTestDB(t)
	if db == nil {
		return
	}
	defer db.Close()

	unitID := createTestUnit(t, db, "Freezer")
	logDate := time.Date(2026, 3, 12, 0, 0, 0, 0, time.Local)

	// Verification creates the daily log row when no entries were saved.
	_, err := VerifyTemperatureLog(db, unitID, logDate, "Pat Supervisor")
	require.NoError(t, err)

	entries, verified, _, _, err := GetTemperatureLog(db, unitID, logDate)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.True(t, verified)
}

func TestEntriesSurviveUnitDeletion(t *testing.T) {
	db := getTestDB(t)
	if db == nil {
		return
	}
	defer db.Close()

	unitID := createTestUnit(t, db, "Refrigerator")
	logDate := time.Date(2026, 3, 13, 0, 0, 0, 0, time.Local)

	require.NoError(t, SaveTemperatureEntry(db, unitID, logDate, testEntry("06:00 PM", 3.0, "JS")))

	_, err := db.Exec(`DELETE FROM cold_storage_units WHERE id = $1`, unitID)
	require.NoError(t, err)

	// Log data is audit history and must outlive the unit.
	entries, _, _, _, err := GetTemperatureLog(db, unitID, logDate)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// The export read path skips units that no longer exist.
	rangeEntries, err := GetEntriesForRange(db, []int{unitID}, logDate, logDate)
	require.NoError(t, err)
	assert.Empty(t, rangeEntries)
}

func TestCleanupOldTemperatureLogs(t *testing.T) {
	db := getTestDB(t)
	if db == nil {
		return
	}
	defer db.Close()

	unitID := createTestUnit(t, db, "Freezer")
	oldDate := time.Now().Add(-LogRetention).AddDate(0, 0, -1)
	recentDate := time.Now()

	require.NoError(t, SaveTemperatureEntry(db, unitID, oldDate, testEntry("10:00 AM", -18, "JS")))
	require.NoError(t, SaveTemperatureEntry(db, unitID, recentDate, testEntry("10:00 AM", -18, "JS")))

	deleted, err := CleanupOldTemperatureLogs(db)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, deleted, int64(1))

	entries, _, _, _, err := GetTemperatureLog(db, unitID, oldDate)
	require.NoError(t, err)
	assert.Empty(t, entries)

	entries, _, _, _, err = GetTemperatureLog(db, unitID, recentDate)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
