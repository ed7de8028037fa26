package models

import (
	"time"
)

// GORM-compatible models with proper tags. These drive AutoMigrate only; the
// request path goes through storage's raw SQL. Foreign keys are intentionally
// not created (see storage.InitGormDB) so deleting a unit never cascades into
// its historical logs.

// ColdStorageUnitGorm represents the cold_storage_units table with GORM tags
type ColdStorageUnitGorm struct {
	ID         uint      `gorm:"primaryKey;column:id" json:"id"`
	UnitNumber string    `gorm:"column:unit_number;uniqueIndex;not null" json:"unit_number"`
	Location   string    `gorm:"column:location" json:"location"`
	UnitType   string    `gorm:"column:unit_type;not null" json:"unit_type"`
	MinTemp    *string   `gorm:"column:min_temp" json:"min_temp,omitempty"`
	MaxTemp    *string   `gorm:"column:max_temp" json:"max_temp,omitempty"`
	CreatedAt  time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

// TableName specifies the table name for ColdStorageUnitGorm
func (ColdStorageUnitGorm) TableName() string {
	return "cold_storage_units"
}

// TemperatureLogGorm represents the temperature_logs table with GORM tags
type TemperatureLogGorm struct {
	ID                   uint       `gorm:"primaryKey;column:id" json:"id"`
	UnitID               int        `gorm:"column:unit_id;not null;uniqueIndex:idx_temperature_logs_unit_date" json:"unit_id"`
	LogDate              time.Time  `gorm:"column:log_date;type:date;not null;uniqueIndex:idx_temperature_logs_unit_date" json:"log_date"`
	SupervisorVerified   bool       `gorm:"column:supervisor_verified;default:false" json:"supervisor_verified"`
	SupervisorName       *string    `gorm:"column:supervisor_name" json:"supervisor_name,omitempty"`
	SupervisorVerifiedAt *time.Time `gorm:"column:supervisor_verified_at" json:"supervisor_verified_at,omitempty"`
	CreatedAt            time.Time  `gorm:"column:created_at;not null" json:"created_at"`
}

// TableName specifies the table name for TemperatureLogGorm
func (TemperatureLogGorm) TableName() string {
	return "temperature_logs"
}

// TemperatureEntryGorm represents the temperature_entries table with GORM tags
type TemperatureEntryGorm struct {
	ID                 uint       `gorm:"primaryKey;column:id" json:"id"`
	LogID              int        `gorm:"column:log_id;not null;uniqueIndex:idx_temperature_entries_log_slot" json:"log_id"`
	ScheduledTime      string     `gorm:"column:scheduled_time;not null;uniqueIndex:idx_temperature_entries_log_slot" json:"scheduled_time"`
	Temperature        *float64   `gorm:"column:temperature;type:numeric" json:"temperature"`
	CorrectiveAction   *string    `gorm:"column:corrective_action" json:"corrective_action"`
	ActionTime         *time.Time `gorm:"column:action_time" json:"action_time"`
	RecheckTemperature *float64   `gorm:"column:recheck_temperature;type:numeric" json:"recheck_temperature"`
	Initial            string     `gorm:"column:initial" json:"initial"`
	IsLateEntry        bool       `gorm:"column:is_late_entry;default:false" json:"is_late_entry"`
	CreatedAt          time.Time  `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt          time.Time  `gorm:"column:updated_at;not null" json:"updated_at"`
}

// TableName specifies the table name for TemperatureEntryGorm
func (TemperatureEntryGorm) TableName() string {
	return "temperature_entries"
}

// UserGorm represents the users table with GORM tags
type UserGorm struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"id"`
	Email     string    `gorm:"column:email;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"column:password;not null" json:"-"`
	FirstName string    `gorm:"column:first_name" json:"first_name"`
	LastName  string    `gorm:"column:last_name" json:"last_name"`
	IsManager bool      `gorm:"column:is_manager;default:false" json:"is_manager"`
	Suspended bool      `gorm:"column:suspended;default:false" json:"suspended"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

// TableName specifies the table name for UserGorm
func (UserGorm) TableName() string {
	return "users"
}

// SessionGorm represents the session table with GORM tags
type SessionGorm struct {
	ID                    uint       `gorm:"primaryKey;column:id" json:"id"`
	UserID                int        `gorm:"column:user_id;not null" json:"user_id"`
	SessionID             string     `gorm:"column:session_id;uniqueIndex;not null" json:"session_id"`
	HostName              string     `gorm:"column:host_name" json:"host_name"`
	IPAddress             string     `gorm:"column:ip_address" json:"ip_address"`
	Timestamp             time.Time  `gorm:"column:timestp;not null" json:"timestp"`
	ExpiresAt             time.Time  `gorm:"column:expires_at;not null" json:"expires_at"`
	RefreshToken          *string    `gorm:"column:refresh_token" json:"refresh_token,omitempty"`
	RefreshTokenExpiresAt *time.Time `gorm:"column:refresh_token_expires_at" json:"refresh_token_expires_at,omitempty"`
}

// TableName specifies the table name for SessionGorm
func (SessionGorm) TableName() string {
	return "session"
}
