package storage

import (
	"backend/models"
	"backend/utils"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lib/pq"
)

// Sentinel errors the handlers translate into HTTP statuses.
var (
	ErrUnitNotFound    = errors.New("cold storage unit not found")
	ErrAlreadyVerified = errors.New("temperature log already verified")
)

// LogRetention is how long daily logs are kept before the maintenance job
// prunes them.
const LogRetention = 12 * 7 * 24 * time.Hour // 12 weeks

func InitDB() *sql.DB {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")

	connStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		user, password, dbname, host, port)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Set connection pool settings optimized for light server load
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	return db
}

// ---------------------------------------------------------------------------
// Cold storage units

func GetColdStorageUnit(db *sql.DB, id int) (*models.ColdStorageUnit, error) {
	ctx, cancel := utils.GetFastQueryContext(context.Background())
	defer cancel()

	var u models.ColdStorageUnit
	err := db.QueryRowContext(ctx, `
		SELECT id, unit_number, location, unit_type, min_temp, max_temp, created_at, updated_at
		FROM cold_storage_units WHERE id = $1`, id).
		Scan(&u.ID, &u.UnitNumber, &u.Location, &u.UnitType, &u.MinTemp, &u.MaxTemp, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrUnitNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to fetch unit %d: %v", id, err)
	}
	return &u, nil
}

func GetColdStorageUnits(db *sql.DB, ids []int) ([]models.ColdStorageUnit, error) {
	ctx, cancel := utils.GetDefaultQueryContext(context.Background())
	defer cancel()

	rows, err := db.QueryContext(ctx, `
		SELECT id, unit_number, location, unit_type, min_temp, max_temp, created_at, updated_at
		FROM cold_storage_units WHERE id = ANY($1) ORDER BY unit_number`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch units: %v", err)
	}
	defer rows.Close()

	var units []models.ColdStorageUnit
	for rows.Next() {
		var u models.ColdStorageUnit
		if err := rows.Scan(&u.ID, &u.UnitNumber, &u.Location, &u.UnitType, &u.MinTemp, &u.MaxTemp, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return units, rows.Err()
}

// ---------------------------------------------------------------------------
// Temperature logs

// SaveTemperatureEntry upserts one validated entry against its (unit, date,
// slot) key. The daily log row is created on first use; the entry write is a
// single ON CONFLICT statement so a concurrent reader never sees a
// half-written record and the last writer simply wins.
func SaveTemperatureEntry(db *sql.DB, unitID int, logDate time.Time, entry models.TemperatureEntry) error {
	ctx, cancel := utils.GetDefaultQueryContext(context.Background())
	defer cancel()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	var logID int
	err = tx.QueryRowContext(ctx, `
		INSERT INTO temperature_logs (unit_id, log_date, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (unit_id, log_date) DO UPDATE SET unit_id = EXCLUDED.unit_id
		RETURNING id`, unitID, logDate.Format("2006-01-02")).Scan(&logID)
	if err != nil {
		return fmt.Errorf("failed to upsert temperature log: %v", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO temperature_entries
			(log_id, scheduled_time, temperature, corrective_action, action_time,
			 recheck_temperature, initial, is_late_entry, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		ON CONFLICT (log_id, scheduled_time) DO UPDATE SET
			temperature = EXCLUDED.temperature,
			corrective_action = EXCLUDED.corrective_action,
			action_time = EXCLUDED.action_time,
			recheck_temperature = EXCLUDED.recheck_temperature,
			initial = EXCLUDED.initial,
			is_late_entry = EXCLUDED.is_late_entry,
			updated_at = NOW()`,
		logID, entry.ScheduledTime, entry.Temperature, entry.CorrectiveAction,
		entry.ActionTime, entry.RecheckTemperature, entry.Initial, entry.IsLateEntry)
	if err != nil {
		return fmt.Errorf("failed to upsert temperature entry: %v", err)
	}

	return tx.Commit()
}

// GetTemperatureLog returns the entries keyed by slot plus verification
// metadata for one (unit, date). A date with no saved log yields an empty map
// and unverified metadata rather than an error, and the unit itself is not
// required to still exist.
func GetTemperatureLog(db *sql.DB, unitID int, logDate time.Time) (map[string]*models.TemperatureEntry, bool, *string, *time.Time, error) {
	ctx, cancel := utils.GetDefaultQueryContext(context.Background())
	defer cancel()

	entries := make(map[string]*models.TemperatureEntry)

	var logID int
	var verified bool
	var supervisorName *string
	var verifiedAt *time.Time
	err := db.QueryRowContext(ctx, `
		SELECT id, supervisor_verified, supervisor_name, supervisor_verified_at
		FROM temperature_logs WHERE unit_id = $1 AND log_date = $2`,
		unitID, logDate.Format("2006-01-02")).
		Scan(&logID, &verified, &supervisorName, &verifiedAt)
	if err == sql.ErrNoRows {
		return entries, false, nil, nil, nil
	} else if err != nil {
		return nil, false, nil, nil, fmt.Errorf("failed to fetch temperature log: %v", err)
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, log_id, scheduled_time, temperature, corrective_action, action_time,
		       recheck_temperature, initial, is_late_entry, created_at, updated_at
		FROM temperature_entries WHERE log_id = $1`, logID)
	if err != nil {
		return nil, false, nil, nil, fmt.Errorf("failed to fetch temperature entries: %v", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e models.TemperatureEntry
		if err := rows.Scan(&e.ID, &e.LogID, &e.ScheduledTime, &e.Temperature, &e.CorrectiveAction,
			&e.ActionTime, &e.RecheckTemperature, &e.Initial, &e.IsLateEntry, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, false, nil, nil, err
		}
		entry := e
		entries[e.ScheduledTime] = &entry
	}
	return entries, verified, supervisorName, verifiedAt, rows.Err()
}

// GetEntriesForRange is the read path the exporters consume: every requested
// unit's logs across [startDate, endDate], one UnitDayEntries per unit per
// day, ordered by unit then date. Units that no longer exist are skipped.
func GetEntriesForRange(db *sql.DB, unitIDs []int, startDate, endDate time.Time) ([]models.UnitDayEntries, error) {
	units, err := GetColdStorageUnits(db, unitIDs)
	if err != nil {
		return nil, err
	}

	var result []models.UnitDayEntries
	for _, unit := range units {
		for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
			entries, verified, name, verifiedAt, err := GetTemperatureLog(db, unit.ID, d)
			if err != nil {
				return nil, err
			}
			result = append(result, models.UnitDayEntries{
				Unit:                 unit,
				LogDate:              d,
				Entries:              entries,
				SupervisorVerified:   verified,
				SupervisorName:       name,
				SupervisorVerifiedAt: verifiedAt,
			})
		}
	}
	return result, nil
}

// VerifyTemperatureLog records the one-time supervisor attestation for a
// (unit, date). Verification is terminal: a second attempt fails with
// ErrAlreadyVerified and the original verifier is preserved.
func VerifyTemperatureLog(db *sql.DB, unitID int, logDate time.Time, supervisorName string) (time.Time, error) {
	ctx, cancel := utils.GetDefaultQueryContext(context.Background())
	defer cancel()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	var logID int
	err = tx.QueryRowContext(ctx, `
		INSERT INTO temperature_logs (unit_id, log_date, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (unit_id, log_date) DO UPDATE SET unit_id = EXCLUDED.unit_id
		RETURNING id`, unitID, logDate.Format("2006-01-02")).Scan(&logID)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to upsert temperature log: %v", err)
	}

	var verifiedAt time.Time
	err = tx.QueryRowContext(ctx, `
		UPDATE temperature_logs
		SET supervisor_verified = TRUE, supervisor_name = $1, supervisor_verified_at = NOW()
		WHERE id = $2 AND supervisor_verified = FALSE
		RETURNING supervisor_verified_at`, supervisorName, logID).Scan(&verifiedAt)
	if err == sql.ErrNoRows {
		return time.Time{}, ErrAlreadyVerified
	} else if err != nil {
		return time.Time{}, fmt.Errorf("failed to verify temperature log: %v", err)
	}

	if err := tx.Commit(); err != nil {
		return time.Time{}, err
	}
	return verifiedAt, nil
}

// CleanupOldTemperatureLogs prunes logs (and their entries) past the
// retention window. Returns the number of log days removed.
func CleanupOldTemperatureLogs(db *sql.DB) (int64, error) {
	ctx, cancel := utils.GetSlowQueryContext(context.Background())
	defer cancel()

	cutoff := time.Now().Add(-LogRetention).Format("2006-01-02")

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		DELETE FROM temperature_entries
		WHERE log_id IN (SELECT id FROM temperature_logs WHERE log_date < $1)`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old temperature entries: %v", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM temperature_logs WHERE log_date < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old temperature logs: %v", err)
	}
	deleted, _ := res.RowsAffected()

	return deleted, tx.Commit()
}

// ---------------------------------------------------------------------------
// Users and sessions

// SaveSession saves a new session for a user, handling multiple device support.
// If allowMultipleSessions is false, it deletes all existing sessions before
// creating a new one.
func SaveSession(db *sql.DB, session *models.Session, allowMultipleSessions bool) error {
	if !allowMultipleSessions {
		deleteAllQuery := `DELETE FROM session WHERE user_id = $1`
		_, err := db.Exec(deleteAllQuery, session.UserID)
		if err != nil {
			return fmt.Errorf("failed to delete all user sessions: %v", err)
		}
	}

	insertQuery := `INSERT INTO session (user_id, session_id, host_name, ip_address, timestp, expires_at, refresh_token, refresh_token_expires_at)
                    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := db.Exec(insertQuery, session.UserID, session.SessionID, session.HostName, session.IPAddress, session.Timestamp, session.ExpiresAt, session.RefreshToken, session.RefreshTokenExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to insert new session: %v", err)
	}
	return nil
}

// SaveRefreshToken stores a refresh token in the session table bound to a
// session so each device can rotate independently.
func SaveRefreshToken(db *sql.DB, userID int, sessionID string, refreshToken string, expiresAt time.Time) error {
	updateQuery := `UPDATE session SET refresh_token = $1, refresh_token_expires_at = $2 WHERE session_id = $3 AND user_id = $4`

	result, err := db.Exec(updateQuery, refreshToken, expiresAt, sessionID, userID)
	if err != nil {
		return fmt.Errorf("failed to save refresh token: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %v", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("session not found for session_id: %s and user_id: %d", sessionID, userID)
	}
	return nil
}

// GetRefreshTokenBySession retrieves a refresh token for a specific session
func GetRefreshTokenBySession(db *sql.DB, sessionID string) (string, error) {
	var refreshToken string
	err := db.QueryRow(`
		SELECT refresh_token FROM session
		WHERE session_id = $1 AND refresh_token_expires_at > NOW()`, sessionID).Scan(&refreshToken)
	if err != nil {
		return "", fmt.Errorf("refresh token not found: %v", err)
	}
	return refreshToken, nil
}

// DeleteRefreshToken removes a refresh token for a session (for logout)
func DeleteRefreshToken(db *sql.DB, sessionID string) error {
	_, err := db.Exec(`UPDATE session SET refresh_token = NULL, refresh_token_expires_at = NULL WHERE session_id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete refresh token: %v", err)
	}
	return nil
}

func DeleteSessionByID(db *sql.DB, sessionID string, userID int) error {
	result, err := db.Exec(`DELETE FROM session WHERE session_id = $1 AND user_id = $2`, sessionID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %v", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %v", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("session not found or already deleted")
	}
	return nil
}

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	var user models.User
	query := `SELECT id, email, password, first_name, last_name, is_manager, suspended, created_at, updated_at
	          FROM users WHERE LOWER(email) = LOWER($1)`

	err := db.QueryRow(query, email).Scan(&user.ID, &user.Email, &user.Password,
		&user.FirstName, &user.LastName, &user.IsManager, &user.Suspended, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user with email %s not found", email)
		}
		return nil, fmt.Errorf("failed to query user: %v", err)
	}
	return &user, nil
}

// GetUserBySessionID retrieves a User by the given session ID.
func GetUserBySessionID(db *sql.DB, sessionID string) (*models.User, error) {
	query := `
		SELECT u.id, u.email, u.first_name, u.last_name, u.is_manager, u.suspended, u.created_at, u.updated_at
		FROM session s
		JOIN users u ON s.user_id = u.id
		WHERE s.session_id = $1 AND s.expires_at > NOW()
	`

	var user models.User
	err := db.QueryRow(query, sessionID).Scan(
		&user.ID, &user.Email, &user.FirstName, &user.LastName,
		&user.IsManager, &user.Suspended, &user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.New("session not found or expired")
	} else if err != nil {
		return nil, err
	}
	if user.Suspended {
		return nil, errors.New("account suspended")
	}
	return &user, nil
}

func CleanupExpiredSessions(db *sql.DB) error {
	threshold := time.Now().Add(-24 * time.Hour)
	_, err := db.Exec("DELETE FROM session WHERE expires_at < $1", threshold)
	return err
}
