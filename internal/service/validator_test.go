package service

import (
	"testing"
	"time"

	"github.com/stpnv0/RoomReserve/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator(t *testing.T, now time.Time) *ReservationValidator {
	t.Helper()
	v, err := NewReservationValidator(time.Hour, 8*time.Hour, "07:00", "22:00", 90)
	require.NoError(t, err)
	v.now = func() time.Time { return now }
	return v
}

func validatorTestRoom(t *testing.T, capacity int) *domain.Room {
	t.Helper()
	room, err := domain.NewRoom(domain.RoomTypeClassroom, "CL-101", "Python Programming Lab", capacity, domain.RoomParams{})
	require.NoError(t, err)
	return room
}

func TestNewReservationValidator_BadBusinessHours(t *testing.T) {
	_, err := NewReservationValidator(time.Hour, 8*time.Hour, "seven", "22:00", 90)
	require.Error(t, err)

	_, err = NewReservationValidator(time.Hour, 8*time.Hour, "07:00", "25:99", 90)
	require.Error(t, err)
}

func TestValidateAll_Valid(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)
	v := newTestValidator(t, now)
	room := validatorTestRoom(t, 30)

	start := time.Date(2026, 9, 14, 9, 0, 0, 0, time.Local)
	result := v.ValidateAll(room, start, start.Add(2*time.Hour), "alice")

	assert.True(t, result.OK())
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestValidateAll_CollectsEveryViolation(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)
	v := newTestValidator(t, now)
	room := validatorTestRoom(t, 30)

	// end before start, outside business hours, in the past, bad name:
	// every violated rule must be reported together, not just the first
	start := time.Date(2026, 8, 20, 23, 0, 0, 0, time.Local)
	end := start.Add(-time.Hour)

	result := v.ValidateAll(room, start, end, " a ")

	assert.False(t, result.OK())
	assert.GreaterOrEqual(t, len(result.Errors), 3)
	assert.Contains(t, result.Errors, "end time must be after start time")
	assert.Contains(t, result.Errors, "cannot book reservations in the past")
	assert.Contains(t, result.Errors, "user name must be at least 2 characters")
}

func TestValidateAll_DurationBounds(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)
	v := newTestValidator(t, now)
	room := validatorTestRoom(t, 30)
	start := time.Date(2026, 9, 14, 9, 0, 0, 0, time.Local)

	tooShort := v.ValidateAll(room, start, start.Add(30*time.Minute), "alice")
	assert.Contains(t, tooShort.Errors, "minimum reservation duration is 1h0m0s")

	tooLong := v.ValidateAll(room, start, start.Add(10*time.Hour), "alice")
	assert.Contains(t, tooLong.Errors, "maximum reservation duration is 8h0m0s")
}

func TestValidateAll_BusinessHours(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)
	v := newTestValidator(t, now)
	room := validatorTestRoom(t, 30)

	early := time.Date(2026, 9, 14, 6, 0, 0, 0, time.Local)
	result := v.ValidateAll(room, early, early.Add(2*time.Hour), "alice")
	assert.Contains(t, result.Errors, "reservations must be between 07:00 and 22:00")

	late := time.Date(2026, 9, 14, 21, 0, 0, 0, time.Local)
	result = v.ValidateAll(room, late, late.Add(2*time.Hour), "alice")
	assert.Contains(t, result.Errors, "reservations must be between 07:00 and 22:00")

	// boundaries inclusive
	opening := time.Date(2026, 9, 14, 7, 0, 0, 0, time.Local)
	result = v.ValidateAll(room, opening, opening.Add(2*time.Hour), "alice")
	assert.True(t, result.OK(), "errors: %v", result.Errors)
}

func TestValidateAll_AdvanceWindow(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)
	v := newTestValidator(t, now)
	room := validatorTestRoom(t, 30)

	farAhead := time.Date(2026, 12, 15, 9, 0, 0, 0, time.Local) // 105 days out
	result := v.ValidateAll(room, farAhead, farAhead.Add(2*time.Hour), "alice")
	assert.Contains(t, result.Errors, "cannot book more than 90 days in advance")

	withinWindow := time.Date(2026, 11, 30, 9, 0, 0, 0, time.Local) // exactly 90 days
	result = v.ValidateAll(room, withinWindow, withinWindow.Add(2*time.Hour), "alice")
	assert.True(t, result.OK(), "errors: %v", result.Errors)
}

func TestValidateAll_SmallRoomAdvisory(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)
	v := newTestValidator(t, now)
	room := validatorTestRoom(t, 4)

	start := time.Date(2026, 9, 14, 9, 0, 0, 0, time.Local)
	result := v.ValidateAll(room, start, start.Add(2*time.Hour), "alice")

	// advisory only, still valid
	assert.True(t, result.OK())
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "small room capacity (4 people)", result.Warnings[0])
}

func TestValidateAll_TrimsUserName(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)
	v := newTestValidator(t, now)
	room := validatorTestRoom(t, 30)
	start := time.Date(2026, 9, 14, 9, 0, 0, 0, time.Local)

	result := v.ValidateAll(room, start, start.Add(2*time.Hour), "  al  ")
	assert.True(t, result.OK(), "errors: %v", result.Errors)

	result = v.ValidateAll(room, start, start.Add(2*time.Hour), "   ")
	assert.Contains(t, result.Errors, "user name must be at least 2 characters")
}

func TestValidateCapacity(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)
	v := newTestValidator(t, now)
	room := validatorTestRoom(t, 20)

	ok, msg := v.ValidateCapacity(room, 10)
	assert.True(t, ok)
	assert.Empty(t, msg)

	ok, msg = v.ValidateCapacity(room, 0)
	assert.False(t, ok)
	assert.Equal(t, "number of attendees must be positive", msg)

	ok, msg = v.ValidateCapacity(room, 25)
	assert.False(t, ok)
	assert.Equal(t, "room capacity (20) exceeded by 5 people", msg)

	ok, msg = v.ValidateCapacity(room, 19)
	assert.True(t, ok)
	assert.Equal(t, "room will be at 95% capacity", msg)
}
