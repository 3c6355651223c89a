package ports

import "github.com/stpnv0/RoomReserve/internal/domain"

// ReservationObserver receives events after a state transition has been
// committed. Observers are informational only; they run outside the
// persistence boundary and cannot affect the outcome.
type ReservationObserver interface {
	OnReservationCreated(r *domain.Reservation)
	OnReservationCancelled(r *domain.Reservation)
	OnReservationModified(r *domain.Reservation)
}
