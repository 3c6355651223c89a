package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/stpnv0/RoomReserve/internal/domain"
)

// smallRoomCapacity is the threshold below which ValidateAll attaches a
// non-blocking advisory.
const smallRoomCapacity = 5

type ValidationResult struct {
	Errors   []string
	Warnings []string
}

func (r ValidationResult) OK() bool {
	return len(r.Errors) == 0
}

// ReservationValidator checks requests against the configured business rules.
// Stateless apart from the clock; every rule runs unconditionally so the
// caller gets the complete violation list in one pass.
type ReservationValidator struct {
	minDuration    time.Duration
	maxDuration    time.Duration
	businessStart  int // minutes from midnight
	businessEnd    int
	maxAdvanceDays int
	now            func() time.Time
}

func NewReservationValidator(minDuration, maxDuration time.Duration, businessStart, businessEnd string, maxAdvanceDays int) (*ReservationValidator, error) {
	startMin, err := parseTimeOfDay(businessStart)
	if err != nil {
		return nil, fmt.Errorf("business start: %w", err)
	}
	endMin, err := parseTimeOfDay(businessEnd)
	if err != nil {
		return nil, fmt.Errorf("business end: %w", err)
	}

	return &ReservationValidator{
		minDuration:    minDuration,
		maxDuration:    maxDuration,
		businessStart:  startMin,
		businessEnd:    endMin,
		maxAdvanceDays: maxAdvanceDays,
		now:            time.Now,
	}, nil
}

func parseTimeOfDay(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatTimeOfDay(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ValidateAll runs every rule and collects all violations; it never
// short-circuits on the first failure.
func (v *ReservationValidator) ValidateAll(room *domain.Room, start, end time.Time, userName string) ValidationResult {
	var result ValidationResult

	if !start.Before(end) {
		result.Errors = append(result.Errors, "end time must be after start time")
	}

	if msg := v.validateDuration(start, end); msg != "" {
		result.Errors = append(result.Errors, msg)
	}

	if msg := v.validateBusinessHours(start, end); msg != "" {
		result.Errors = append(result.Errors, msg)
	}

	if msg := v.validateAdvanceBooking(start); msg != "" {
		result.Errors = append(result.Errors, msg)
	}

	if !start.After(v.now()) {
		result.Errors = append(result.Errors, "cannot book reservations in the past")
	}

	if len(strings.TrimSpace(userName)) < 2 {
		result.Errors = append(result.Errors, "user name must be at least 2 characters")
	}

	if room.Capacity < smallRoomCapacity {
		result.Warnings = append(result.Warnings, fmt.Sprintf("small room capacity (%d people)", room.Capacity))
	}

	return result
}

func (v *ReservationValidator) validateDuration(start, end time.Time) string {
	duration := end.Sub(start)

	if duration < v.minDuration {
		return fmt.Sprintf("minimum reservation duration is %s", v.minDuration)
	}
	if duration > v.maxDuration {
		return fmt.Sprintf("maximum reservation duration is %s", v.maxDuration)
	}

	return ""
}

func (v *ReservationValidator) validateBusinessHours(start, end time.Time) string {
	startMin := start.Hour()*60 + start.Minute()
	endMin := end.Hour()*60 + end.Minute()

	if startMin < v.businessStart || endMin > v.businessEnd {
		return fmt.Sprintf("reservations must be between %s and %s",
			formatTimeOfDay(v.businessStart), formatTimeOfDay(v.businessEnd))
	}

	return ""
}

func (v *ReservationValidator) validateAdvanceBooking(start time.Time) string {
	now := v.now()
	startDate := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	daysAhead := int(startDate.Sub(today).Hours() / 24)
	if daysAhead > v.maxAdvanceDays {
		return fmt.Sprintf("cannot book more than %d days in advance", v.maxAdvanceDays)
	}

	return ""
}

// ValidateCapacity checks an attendee count against the room. A near-full
// room (above 90%) passes with a warning.
func (v *ReservationValidator) ValidateCapacity(room *domain.Room, attendees int) (bool, string) {
	if attendees <= 0 {
		return false, "number of attendees must be positive"
	}

	if attendees > room.Capacity {
		return false, fmt.Sprintf("room capacity (%d) exceeded by %d people", room.Capacity, attendees-room.Capacity)
	}

	if attendees*10 > room.Capacity*9 {
		return true, fmt.Sprintf("room will be at %d%% capacity", attendees*100/room.Capacity)
	}

	return true, ""
}
