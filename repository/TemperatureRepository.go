package repository

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"backend/models"
)

// Unit types with fixed HACCP ranges. Anything else is accepted but not
// range-enforced.
const (
	UnitTypeRefrigerator = "Refrigerator"
	UnitTypeFreezer      = "Freezer"
	UnitTypeWineChiller  = "Wine Chiller"
)

// Fixed bounds in °C. Wine chillers carry their own bounds on the unit,
// falling back to 0/20.
const (
	RefrigeratorMin = 0.0
	RefrigeratorMax = 4.0
	FreezerMin      = -22.0
	FreezerMax      = -12.0
	WineChillerMin  = 0.0
	WineChillerMax  = 20.0
)

// ScheduledTimes are the fixed reading slots shared by every unit, in order.
var ScheduledTimes = []string{"10:00 AM", "02:00 PM", "06:00 PM", "10:00 PM"}

var (
	ErrInitialsRequired         = errors.New("initials are required when recording an entry")
	ErrCorrectiveActionRequired = errors.New("corrective action is required for an out-of-range temperature")
	ErrInvalidScheduledTime     = errors.New("scheduled time is not one of the configured slots")
)

// IsScheduledTime reports whether slot is one of the configured reading slots.
func IsScheduledTime(slot string) bool {
	for _, s := range ScheduledTimes {
		if s == slot {
			return true
		}
	}
	return false
}

// ResolveRange maps a unit to its inclusive temperature bounds. A nil pair
// means the unit type is unrecognized and no range is enforced.
func ResolveRange(unit models.ColdStorageUnit) (min, max *float64) {
	switch unit.UnitType {
	case UnitTypeRefrigerator:
		return f(RefrigeratorMin), f(RefrigeratorMax)
	case UnitTypeFreezer:
		return f(FreezerMin), f(FreezerMax)
	case UnitTypeWineChiller:
		return f(parseBound(unit.MinTemp, WineChillerMin)), f(parseBound(unit.MaxTemp, WineChillerMax))
	default:
		return nil, nil
	}
}

func f(v float64) *float64 { return &v }

// parseBound parses a stored free-text bound, silently falling back to the
// default when absent or unparsable (matches how stored units behave in the
// field; a bad bound must never make a unit un-loggable).
func parseBound(s *string, def float64) float64 {
	if s == nil {
		return def
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(*s), 64)
	if err != nil {
		return def
	}
	return v
}

// IsOutOfRange reports whether temp violates the unit's resolved range.
// The bounds themselves are compliant.
func IsOutOfRange(temp float64, unit models.ColdStorageUnit) bool {
	min, max := ResolveRange(unit)
	if min == nil || max == nil {
		return false
	}
	return temp < *min || temp > *max
}

// ParseScheduledTime converts a 12-hour slot label like "02:00 PM" into a
// 24-hour hour and minute.
func ParseScheduledTime(slot string) (hour, minute int, err error) {
	fields := strings.Fields(strings.TrimSpace(slot))
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("malformed scheduled time %q", slot)
	}
	hm := strings.SplitN(fields[0], ":", 2)
	if len(hm) != 2 {
		return 0, 0, fmt.Errorf("malformed scheduled time %q", slot)
	}
	hour, err = strconv.Atoi(hm[0])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed scheduled time %q", slot)
	}
	minute, err = strconv.Atoi(hm[1])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed scheduled time %q", slot)
	}
	switch strings.ToUpper(fields[1]) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		return 0, 0, fmt.Errorf("malformed scheduled time %q", slot)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("malformed scheduled time %q", slot)
	}
	return hour, minute, nil
}

// SlotInstant combines the log date with the slot's time of day in the
// server's timezone, seconds zeroed.
func SlotInstant(logDate time.Time, slot string) (time.Time, error) {
	hour, minute, err := ParseScheduledTime(slot)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(logDate.Year(), logDate.Month(), logDate.Day(), hour, minute, 0, 0, logDate.Location()), nil
}

// IsLateEntry reports whether saving now is past the slot's scheduled instant
// on the log date. Strict: saving exactly on the instant is on time. Evaluated
// once at save time, never retroactively.
func IsLateEntry(logDate time.Time, slot string, now time.Time) bool {
	instant, err := SlotInstant(logDate, slot)
	if err != nil {
		return false
	}
	return now.After(instant)
}

// EntryInput is one reading as submitted, before validation.
type EntryInput struct {
	Temperature        *float64
	CorrectiveAction   string
	RecheckTemperature *float64
	Initial            string
}

// IsEmpty reports whether the submission carries no data at all. Empty
// submissions are skipped rather than rejected so bulk saves can post a whole
// slot column without filtering client-side.
func (in EntryInput) IsEmpty() bool {
	return in.Temperature == nil &&
		strings.TrimSpace(in.CorrectiveAction) == "" &&
		in.RecheckTemperature == nil &&
		strings.TrimSpace(in.Initial) == ""
}

// BuildEntry validates a submission and produces the entry to persist.
// Callers must treat an empty input as a no-op before calling (see IsEmpty).
//
// Rules, in order: initials whenever anything is set; corrective action
// whenever the reading is out of range. ActionTime is stamped iff the reading
// is out of range and a corrective action was given. IsLateEntry is computed
// here from the server clock; any client-supplied flag is ignored.
func BuildEntry(unit models.ColdStorageUnit, logDate time.Time, slot string, in EntryInput, now time.Time) (models.TemperatureEntry, error) {
	if !IsScheduledTime(slot) {
		return models.TemperatureEntry{}, ErrInvalidScheduledTime
	}
	if strings.TrimSpace(in.Initial) == "" {
		return models.TemperatureEntry{}, ErrInitialsRequired
	}

	outOfRange := in.Temperature != nil && IsOutOfRange(*in.Temperature, unit)
	corrective := strings.TrimSpace(in.CorrectiveAction)
	if outOfRange && corrective == "" {
		return models.TemperatureEntry{}, ErrCorrectiveActionRequired
	}

	entry := models.TemperatureEntry{
		ScheduledTime:      slot,
		Temperature:        in.Temperature,
		RecheckTemperature: in.RecheckTemperature,
		Initial:            strings.TrimSpace(in.Initial),
		IsLateEntry:        IsLateEntry(logDate, slot, now),
	}
	if corrective != "" {
		entry.CorrectiveAction = &corrective
	}
	if outOfRange && corrective != "" {
		t := now
		entry.ActionTime = &t
	}
	return entry, nil
}
