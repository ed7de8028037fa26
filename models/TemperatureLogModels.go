package models

import "time"

// TemperatureEntry is one reading against a scheduled slot of a unit's daily log.
type TemperatureEntry struct {
	ID                 int        `json:"id"`
	LogID              int        `json:"-"`
	ScheduledTime      string     `json:"scheduled_time"`
	Temperature        *float64   `json:"temperature"`
	CorrectiveAction   *string    `json:"corrective_action"`
	ActionTime         *time.Time `json:"action_time"`
	RecheckTemperature *float64   `json:"recheck_temperature"`
	Initial            string     `json:"initial"`
	IsLateEntry        bool       `json:"is_late_entry"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// TemperatureLogResponse bundles a unit's entries for one date, every
// scheduled slot present (null when nothing has been saved for it), plus the
// supervisor verification state for that date.
type TemperatureLogResponse struct {
	UnitID               int                          `json:"unit_id"`
	LogDate              string                       `json:"log_date"`
	Entries              map[string]*TemperatureEntry `json:"entries"`
	OutOfRange           map[string]bool              `json:"out_of_range"`
	SupervisorVerified   bool                         `json:"supervisor_verified"`
	SupervisorName       *string                      `json:"supervisor_name,omitempty"`
	SupervisorVerifiedAt *time.Time                   `json:"supervisor_verified_at,omitempty"`
}

// TemperatureEntryRequest is the save payload for one (unit, date, slot).
// IsLateEntry is accepted for wire compatibility with older clients but the
// server recomputes it from its own clock.
type TemperatureEntryRequest struct {
	UnitID             int      `json:"unit_id" binding:"required"`
	LogDate            string   `json:"log_date" binding:"required"`
	ScheduledTime      string   `json:"scheduled_time" binding:"required"`
	Temperature        *float64 `json:"temperature"`
	CorrectiveAction   string   `json:"corrective_action"`
	RecheckTemperature *float64 `json:"recheck_temperature"`
	Initial            string   `json:"initial"`
	IsLateEntry        *bool    `json:"is_late_entry"`
}

// BatchEntryRequest saves one slot's readings across many units in one call.
type BatchEntryRequest struct {
	LogDate       string            `json:"log_date" binding:"required"`
	ScheduledTime string            `json:"scheduled_time" binding:"required"`
	Entries       []BatchEntryInput `json:"entries" binding:"required"`
}

type BatchEntryInput struct {
	UnitID             int      `json:"unit_id"`
	Temperature        *float64 `json:"temperature"`
	CorrectiveAction   string   `json:"corrective_action"`
	RecheckTemperature *float64 `json:"recheck_temperature"`
	Initial            string   `json:"initial"`
}

// BatchEntryResult reports one unit's outcome; a failing unit never blocks
// its siblings.
type BatchEntryResult struct {
	UnitID int    `json:"unit_id"`
	Status string `json:"status"` // "saved", "skipped" or "error"
	Error  string `json:"error,omitempty"`
}

type VerifyLogRequest struct {
	UnitID         int    `json:"unit_id" binding:"required"`
	LogDate        string `json:"log_date" binding:"required"`
	SupervisorName string `json:"supervisor_name" binding:"required"`
}

type VerifyLogResponse struct {
	UnitID               int       `json:"unit_id"`
	LogDate              string    `json:"log_date"`
	SupervisorName       string    `json:"supervisor_name"`
	SupervisorVerifiedAt time.Time `json:"supervisor_verified_at"`
}

// UnitDayEntries is one unit's entries for one date as read back for export.
type UnitDayEntries struct {
	Unit                 ColdStorageUnit
	LogDate              time.Time
	Entries              map[string]*TemperatureEntry
	SupervisorVerified   bool
	SupervisorName       *string
	SupervisorVerifiedAt *time.Time
}
