package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"backend/models"
	"backend/repository"
	"backend/storage"

	"github.com/gin-gonic/gin"
)

func parseLogDate(s string) (time.Time, error) {
	// Local time: slot instants and lateness are judged against the venue's
	// wall clock.
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

// GetTemperatureLog godoc
// @Summary      Get a unit's temperature log for a date
// @Description  Returns every scheduled slot (null when nothing saved) plus
// @Description  supervisor verification state. Works for dates with no log
// @Description  and for units that have since been deleted.
// @Tags         temperature-log
// @Param        unit_id  path   int     true   "Unit ID"
// @Param        date     query  string  false  "Log date (YYYY-MM-DD, default today)"
// @Success      200  {object}  models.TemperatureLogResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /api/temperature_log/{unit_id} [get]
func GetTemperatureLog(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		unitID, err := strconv.Atoi(c.Param("unit_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid unit ID"})
			return
		}

		dateStr := c.Query("date")
		logDate := time.Now()
		if dateStr != "" {
			logDate, err = parseLogDate(dateStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
				return
			}
		}

		entries, verified, supervisorName, verifiedAt, err := storage.GetTemperatureLog(db, unitID, logDate)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// The unit may have been deleted since the entries were recorded; the
		// log stays readable, the range check is just disabled.
		unit, err := storage.GetColdStorageUnit(db, unitID)
		if err != nil && !errors.Is(err, storage.ErrUnitNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		resp := models.TemperatureLogResponse{
			UnitID:               unitID,
			LogDate:              logDate.Format("2006-01-02"),
			Entries:              make(map[string]*models.TemperatureEntry),
			OutOfRange:           make(map[string]bool),
			SupervisorVerified:   verified,
			SupervisorName:       supervisorName,
			SupervisorVerifiedAt: verifiedAt,
		}
		for _, slot := range repository.ScheduledTimes {
			resp.Entries[slot] = entries[slot]
			outOfRange := false
			if e := entries[slot]; e != nil && e.Temperature != nil && unit != nil {
				outOfRange = repository.IsOutOfRange(*e.Temperature, *unit)
			}
			resp.OutOfRange[slot] = outOfRange
		}

		c.JSON(http.StatusOK, resp)
	}
}

// SaveTemperatureEntry godoc
// @Summary      Save one temperature entry
// @Description  Upserts the entry for (unit, date, slot). An entry with no
// @Description  populated fields is skipped, not an error. Lateness is
// @Description  computed server-side regardless of the submitted flag.
// @Tags         temperature-log
// @Accept       json
// @Produce      json
// @Param        body  body      models.TemperatureEntryRequest  true  "Entry"
// @Success      200   {object}  models.TemperatureEntry
// @Failure      400   {object}  models.ErrorResponse
// @Failure      404   {object}  models.ErrorResponse
// @Router       /api/temperature_log/entry [post]
func SaveTemperatureEntry(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.TemperatureEntryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		logDate, err := parseLogDate(req.LogDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid log_date, expected YYYY-MM-DD"})
			return
		}

		unit, err := storage.GetColdStorageUnit(db, req.UnitID)
		if errors.Is(err, storage.ErrUnitNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unit not found"})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		input := repository.EntryInput{
			Temperature:        req.Temperature,
			CorrectiveAction:   req.CorrectiveAction,
			RecheckTemperature: req.RecheckTemperature,
			Initial:            req.Initial,
		}
		if input.IsEmpty() {
			c.JSON(http.StatusOK, gin.H{"status": "skipped", "message": "No data submitted for this slot"})
			return
		}

		entry, err := repository.BuildEntry(*unit, logDate, req.ScheduledTime, input, time.Now())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := storage.SaveTemperatureEntry(db, unit.ID, logDate, entry); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, entry)
	}
}

// SaveTemperatureEntriesBatch godoc
// @Summary      Save one slot's entries across many units
// @Description  Each unit's save is independent: a validation failure on one
// @Description  unit never rolls back or blocks the others. The response
// @Description  carries a per-unit breakdown.
// @Tags         temperature-log
// @Accept       json
// @Produce      json
// @Param        body  body      models.BatchEntryRequest  true  "Batch"
// @Success      200   {object}  models.BatchEntryResponse
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/temperature_log/entries [post]
func SaveTemperatureEntriesBatch(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.BatchEntryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		logDate, err := parseLogDate(req.LogDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid log_date, expected YYYY-MM-DD"})
			return
		}
		if !repository.IsScheduledTime(req.ScheduledTime) {
			c.JSON(http.StatusBadRequest, gin.H{"error": repository.ErrInvalidScheduledTime.Error()})
			return
		}

		now := time.Now()
		results := make([]models.BatchEntryResult, 0, len(req.Entries))
		var saved, skipped, failed int

		for _, in := range req.Entries {
			result := models.BatchEntryResult{UnitID: in.UnitID}

			input := repository.EntryInput{
				Temperature:        in.Temperature,
				CorrectiveAction:   in.CorrectiveAction,
				RecheckTemperature: in.RecheckTemperature,
				Initial:            in.Initial,
			}
			if input.IsEmpty() {
				result.Status = "skipped"
				skipped++
				results = append(results, result)
				continue
			}

			unit, err := storage.GetColdStorageUnit(db, in.UnitID)
			if err != nil {
				result.Status = "error"
				if errors.Is(err, storage.ErrUnitNotFound) {
					result.Error = "Unit not found"
				} else {
					result.Error = err.Error()
				}
				failed++
				results = append(results, result)
				continue
			}

			entry, err := repository.BuildEntry(*unit, logDate, req.ScheduledTime, input, now)
			if err != nil {
				result.Status = "error"
				result.Error = err.Error()
				failed++
				results = append(results, result)
				continue
			}

			if err := storage.SaveTemperatureEntry(db, unit.ID, logDate, entry); err != nil {
				result.Status = "error"
				result.Error = err.Error()
				failed++
				results = append(results, result)
				continue
			}

			result.Status = "saved"
			saved++
			results = append(results, result)
		}

		c.JSON(http.StatusOK, models.BatchEntryResponse{
			LogDate:       req.LogDate,
			ScheduledTime: req.ScheduledTime,
			Results:       results,
			Saved:         saved,
			Skipped:       skipped,
			Failed:        failed,
		})
	}
}

// VerifyTemperatureLog godoc
// @Summary      Supervisor verification of a unit's daily log
// @Description  One-time attestation. A second verification for the same
// @Description  (unit, date) is rejected and the original verifier is kept.
// @Tags         temperature-log
// @Accept       json
// @Produce      json
// @Param        body  body      models.VerifyLogRequest  true  "Verification"
// @Success      200   {object}  models.VerifyLogResponse
// @Failure      404   {object}  models.ErrorResponse
// @Failure      409   {object}  models.ErrorResponse
// @Router       /api/temperature_log/verify [post]
func VerifyTemperatureLog(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.VerifyLogRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		logDate, err := parseLogDate(req.LogDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid log_date, expected YYYY-MM-DD"})
			return
		}

		if _, err := storage.GetColdStorageUnit(db, req.UnitID); err != nil {
			if errors.Is(err, storage.ErrUnitNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Unit not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		verifiedAt, err := storage.VerifyTemperatureLog(db, req.UnitID, logDate, req.SupervisorName)
		if errors.Is(err, storage.ErrAlreadyVerified) {
			c.JSON(http.StatusConflict, gin.H{"error": "Log already verified for this date"})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, models.VerifyLogResponse{
			UnitID:               req.UnitID,
			LogDate:              req.LogDate,
			SupervisorName:       req.SupervisorName,
			SupervisorVerifiedAt: verifiedAt,
		})
	}
}
