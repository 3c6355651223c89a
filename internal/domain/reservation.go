package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ReservationStatus string

const (
	ReservationStatusConfirmed ReservationStatus = "CONFIRMED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
)

const reservationIDPrefix = "RES-"

type Reservation struct {
	ID        string            `json:"reservation_id"`
	Room      *Room             `json:"room"`
	UserName  string            `json:"user_name"`
	StartTime time.Time         `json:"start_time"`
	EndTime   time.Time         `json:"end_time"`
	Purpose   string            `json:"purpose"`
	Status    ReservationStatus `json:"status"`
}

// NewReservation builds a CONFIRMED reservation. It does not check that
// start < end or that the room exists in the catalog; that is the service's
// and validator's job.
func NewReservation(id string, room *Room, userName string, start, end time.Time, purpose string) *Reservation {
	return &Reservation{
		ID:        id,
		Room:      room,
		UserName:  userName,
		StartTime: start,
		EndTime:   end,
		Purpose:   purpose,
		Status:    ReservationStatusConfirmed,
	}
}

// NewReservationID generates a fresh "RES-" + 8 uppercase hex chars identifier.
func NewReservationID() string {
	u := uuid.New()
	return fmt.Sprintf("%s%X", reservationIDPrefix, u[:4])
}

// ValidReservationID reports whether id has the generated identifier shape.
func ValidReservationID(id string) bool {
	return strings.HasPrefix(id, reservationIDPrefix) && len(id) == len(reservationIDPrefix)+8
}

// OverlapsWith reports whether [start, end) intersects this reservation's
// interval under half-open semantics: intervals that merely touch at an
// endpoint do not overlap. The reservation's own status is not consulted.
func (r *Reservation) OverlapsWith(start, end time.Time) bool {
	return r.StartTime.Before(end) && start.Before(r.EndTime)
}

// Cancel unconditionally marks the reservation CANCELLED. Re-cancellation
// policy and notifications live in the service.
func (r *Reservation) Cancel() {
	r.Status = ReservationStatusCancelled
}

type CreateReservationInput struct {
	Room     *Room
	UserName string
	Start    time.Time
	End      time.Time
	Purpose  string
	// Attendees is optional; 0 means not stated and skips the capacity check.
	Attendees int
}
