package observer

import (
	"sync"
	"time"

	"github.com/stpnv0/RoomReserve/internal/domain"
)

// StatisticsObserver counts reservation events. Attached to the service as an
// after-commit observer; it never influences the transaction outcome.
type StatisticsObserver struct {
	mu        sync.Mutex
	created   int
	cancelled int
	modified  int
	active    int
}

type Statistics struct {
	TotalCreated       int `json:"total_created"`
	TotalCancelled     int `json:"total_cancelled"`
	TotalModified      int `json:"total_modified"`
	ActiveReservations int `json:"active_reservations"`
}

func NewStatisticsObserver() *StatisticsObserver {
	return &StatisticsObserver{}
}

func (o *StatisticsObserver) OnReservationCreated(_ *domain.Reservation) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.created++
	o.active++
}

func (o *StatisticsObserver) OnReservationCancelled(_ *domain.Reservation) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.cancelled++
	o.active--
}

func (o *StatisticsObserver) OnReservationModified(_ *domain.Reservation) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.modified++
}

func (o *StatisticsObserver) Snapshot() Statistics {
	o.mu.Lock()
	defer o.mu.Unlock()
	return Statistics{
		TotalCreated:       o.created,
		TotalCancelled:     o.cancelled,
		TotalModified:      o.modified,
		ActiveReservations: o.active,
	}
}

// AuditLogObserver keeps an in-memory trail of committed transitions.
type AuditLogObserver struct {
	mu      sync.Mutex
	entries []AuditEntry
}

type AuditEntry struct {
	Timestamp     time.Time `json:"timestamp"`
	Event         string    `json:"event"`
	ReservationID string    `json:"reservation_id"`
	Room          string    `json:"room"`
	User          string    `json:"user"`
}

func NewAuditLogObserver() *AuditLogObserver {
	return &AuditLogObserver{}
}

func (o *AuditLogObserver) OnReservationCreated(r *domain.Reservation) {
	o.log("CREATED", r)
}

func (o *AuditLogObserver) OnReservationCancelled(r *domain.Reservation) {
	o.log("CANCELLED", r)
}

func (o *AuditLogObserver) OnReservationModified(r *domain.Reservation) {
	o.log("MODIFIED", r)
}

func (o *AuditLogObserver) log(event string, r *domain.Reservation) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.entries = append(o.entries, AuditEntry{
		Timestamp:     time.Now(),
		Event:         event,
		ReservationID: r.ID,
		Room:          r.Room.Name,
		User:          r.UserName,
	})
}

func (o *AuditLogObserver) Entries() []AuditEntry {
	o.mu.Lock()
	defer o.mu.Unlock()
	entries := make([]AuditEntry, len(o.entries))
	copy(entries, o.entries)
	return entries
}
