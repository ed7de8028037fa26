package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend/models"
)

func strPtr(s string) *string { return &s }

func fl(v float64) *float64 { return &v }

func unit(t string) models.ColdStorageUnit {
	return models.ColdStorageUnit{ID: 1, UnitNumber: "U-1", UnitType: t}
}

func TestResolveRangeFixedTypes(t *testing.T) {
	tests := []struct {
		unitType string
		min, max float64
	}{
		{UnitTypeRefrigerator, 0, 4},
		{UnitTypeFreezer, -22, -12},
	}
	for _, tt := range tests {
		t.Run(tt.unitType, func(t *testing.T) {
			u := unit(tt.unitType)
			// Stored bounds are ignored for fixed types.
			u.MinTemp = strPtr("-100")
			u.MaxTemp = strPtr("100")
			min, max := ResolveRange(u)
			require.NotNil(t, min)
			require.NotNil(t, max)
			assert.Equal(t, tt.min, *min)
			assert.Equal(t, tt.max, *max)
		})
	}
}

func TestResolveRangeWineChiller(t *testing.T) {
	u := unit(UnitTypeWineChiller)
	u.MinTemp = strPtr("2")
	u.MaxTemp = strPtr("8")
	min, max := ResolveRange(u)
	require.NotNil(t, min)
	require.NotNil(t, max)
	assert.Equal(t, 2.0, *min)
	assert.Equal(t, 8.0, *max)
}

func TestResolveRangeWineChillerDefaults(t *testing.T) {
	u := unit(UnitTypeWineChiller)
	min, max := ResolveRange(u)
	require.NotNil(t, min)
	require.NotNil(t, max)
	assert.Equal(t, 0.0, *min)
	assert.Equal(t, 20.0, *max)
}

func TestResolveRangeWineChillerUnparsableBounds(t *testing.T) {
	u := unit(UnitTypeWineChiller)
	u.MinTemp = strPtr("around two")
	u.MaxTemp = strPtr(" 8.5 ")
	min, max := ResolveRange(u)
	require.NotNil(t, min)
	require.NotNil(t, max)
	assert.Equal(t, 0.0, *min, "unparsable bound falls back to default")
	assert.Equal(t, 8.5, *max, "whitespace-padded bound still parses")
}

func TestResolveRangeUnknownType(t *testing.T) {
	min, max := ResolveRange(unit("Blast Chiller"))
	assert.Nil(t, min)
	assert.Nil(t, max)
}

func TestIsOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		u    models.ColdStorageUnit
		temp float64
		want bool
	}{
		{"fridge below", unit(UnitTypeRefrigerator), -0.1, true},
		{"fridge min boundary", unit(UnitTypeRefrigerator), 0, false},
		{"fridge max boundary", unit(UnitTypeRefrigerator), 4, false},
		{"fridge above", unit(UnitTypeRefrigerator), 4.1, true},
		{"freezer in range", unit(UnitTypeFreezer), -18, false},
		{"freezer too warm", unit(UnitTypeFreezer), -11.9, true},
		{"freezer too cold", unit(UnitTypeFreezer), -22.5, true},
		{"unknown type never flagged", unit("Dry Store"), 55, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOutOfRange(tt.temp, tt.u))
		})
	}
}

func TestIsOutOfRangeWineChillerCustomBounds(t *testing.T) {
	u := unit(UnitTypeWineChiller)
	u.MinTemp = strPtr("2")
	u.MaxTemp = strPtr("8")

	assert.True(t, IsOutOfRange(1.9, u))
	assert.False(t, IsOutOfRange(2, u))
	assert.False(t, IsOutOfRange(8, u))
	assert.True(t, IsOutOfRange(8.1, u))
}

func TestParseScheduledTime(t *testing.T) {
	tests := []struct {
		slot   string
		hour   int
		minute int
	}{
		{"10:00 AM", 10, 0},
		{"02:00 PM", 14, 0},
		{"06:00 PM", 18, 0},
		{"10:00 PM", 22, 0},
		{"12:00 AM", 0, 0},
		{"12:00 PM", 12, 0},
		{"12:30 pm", 12, 30},
	}
	for _, tt := range tests {
		t.Run(tt.slot, func(t *testing.T) {
			h, m, err := ParseScheduledTime(tt.slot)
			require.NoError(t, err)
			assert.Equal(t, tt.hour, h)
			assert.Equal(t, tt.minute, m)
		})
	}

	for _, bad := range []string{"", "10:00", "25:00 PM", "10:61 AM", "ten AM", "10:00 XM"} {
		_, _, err := ParseScheduledTime(bad)
		assert.Error(t, err, "slot %q", bad)
	}
}

func TestIsScheduledTime(t *testing.T) {
	for _, s := range ScheduledTimes {
		assert.True(t, IsScheduledTime(s))
	}
	assert.False(t, IsScheduledTime("11:00 AM"))
	assert.False(t, IsScheduledTime(""))
}

func TestIsLateEntry(t *testing.T) {
	logDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	slot := "02:00 PM"
	slotInstant := time.Date(2026, 3, 10, 14, 0, 0, 0, time.Local)

	assert.False(t, IsLateEntry(logDate, slot, slotInstant.Add(-time.Minute)), "before the slot is on time")
	assert.False(t, IsLateEntry(logDate, slot, slotInstant), "exactly on the slot is on time")
	assert.True(t, IsLateEntry(logDate, slot, slotInstant.Add(time.Second)), "any time past the slot is late")
	assert.True(t, IsLateEntry(logDate, slot, slotInstant.AddDate(0, 0, 3)), "backfilling a past date is late")
}

func TestEntryInputIsEmpty(t *testing.T) {
	assert.True(t, EntryInput{}.IsEmpty())
	assert.True(t, EntryInput{CorrectiveAction: "   ", Initial: " "}.IsEmpty())
	assert.False(t, EntryInput{Temperature: fl(3)}.IsEmpty())
	assert.False(t, EntryInput{Initial: "JS"}.IsEmpty())
	assert.False(t, EntryInput{RecheckTemperature: fl(2)}.IsEmpty())
}

func TestBuildEntryRequiresInitials(t *testing.T) {
	u := unit(UnitTypeRefrigerator)
	logDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)

	_, err := BuildEntry(u, logDate, "10:00 AM", EntryInput{Temperature: fl(3)}, time.Now())
	assert.ErrorIs(t, err, ErrInitialsRequired)

	// Initials are checked before the corrective-action rule, even when the
	// reading is out of range.
	_, err = BuildEntry(u, logDate, "10:00 AM", EntryInput{Temperature: fl(9)}, time.Now())
	assert.ErrorIs(t, err, ErrInitialsRequired)
}

func TestBuildEntryRequiresCorrectiveActionWhenOutOfRange(t *testing.T) {
	u := unit(UnitTypeRefrigerator)
	logDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)

	_, err := BuildEntry(u, logDate, "10:00 AM", EntryInput{Temperature: fl(9), Initial: "JS"}, time.Now())
	assert.ErrorIs(t, err, ErrCorrectiveActionRequired)

	_, err = BuildEntry(u, logDate, "10:00 AM", EntryInput{Temperature: fl(9), Initial: "JS", CorrectiveAction: "  "}, time.Now())
	assert.ErrorIs(t, err, ErrCorrectiveActionRequired, "whitespace-only action does not count")
}

func TestBuildEntryRejectsUnknownSlot(t *testing.T) {
	u := unit(UnitTypeRefrigerator)
	logDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)

	_, err := BuildEntry(u, logDate, "11:00 AM", EntryInput{Temperature: fl(3), Initial: "JS"}, time.Now())
	assert.ErrorIs(t, err, ErrInvalidScheduledTime)
}

func TestBuildEntryInRange(t *testing.T) {
	u := unit(UnitTypeRefrigerator)
	logDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	now := time.Date(2026, 3, 10, 9, 55, 0, 0, time.Local)

	entry, err := BuildEntry(u, logDate, "10:00 AM", EntryInput{Temperature: fl(3), Initial: " js "}, now)
	require.NoError(t, err)
	assert.Equal(t, "10:00 AM", entry.ScheduledTime)
	require.NotNil(t, entry.Temperature)
	assert.Equal(t, 3.0, *entry.Temperature)
	assert.Equal(t, "js", entry.Initial)
	assert.Nil(t, entry.CorrectiveAction)
	assert.Nil(t, entry.ActionTime, "no action time for an in-range reading")
	assert.False(t, entry.IsLateEntry)
}

func TestBuildEntryOutOfRangeStampsActionTime(t *testing.T) {
	u := unit(UnitTypeFreezer)
	logDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	now := time.Date(2026, 3, 10, 22, 10, 0, 0, time.Local)

	entry, err := BuildEntry(u, logDate, "10:00 PM", EntryInput{
		Temperature:        fl(-8),
		CorrectiveAction:   "Moved stock to backup freezer",
		RecheckTemperature: fl(-15),
		Initial:            "JS",
	}, now)
	require.NoError(t, err)
	require.NotNil(t, entry.CorrectiveAction)
	assert.Equal(t, "Moved stock to backup freezer", *entry.CorrectiveAction)
	require.NotNil(t, entry.ActionTime)
	assert.Equal(t, now, *entry.ActionTime)
	require.NotNil(t, entry.RecheckTemperature)
	assert.Equal(t, -15.0, *entry.RecheckTemperature)
	assert.True(t, entry.IsLateEntry, "saving after the slot instant is late")
}

func TestBuildEntryInRangeWithVoluntaryAction(t *testing.T) {
	u := unit(UnitTypeRefrigerator)
	logDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

	// A corrective action on an in-range reading is kept but not time-stamped.
	entry, err := BuildEntry(u, logDate, "10:00 AM", EntryInput{
		Temperature:      fl(2),
		CorrectiveAction: "Door seal replaced",
		Initial:          "JS",
	}, now)
	require.NoError(t, err)
	require.NotNil(t, entry.CorrectiveAction)
	assert.Nil(t, entry.ActionTime)
}

func TestBuildEntryNoTemperature(t *testing.T) {
	u := unit(UnitTypeRefrigerator)
	logDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)

	// Initials alone are a valid entry; no reading means no range check.
	entry, err := BuildEntry(u, logDate, "06:00 PM", EntryInput{Initial: "JS"}, time.Now())
	require.NoError(t, err)
	assert.Nil(t, entry.Temperature)
	assert.Nil(t, entry.CorrectiveAction)
}
