package ports

import (
	"context"

	"github.com/stpnv0/RoomReserve/internal/domain"
)

// ReservationNotifier delivers reservation state changes. Failures are
// non-fatal to the already committed reservation.
type ReservationNotifier interface {
	NotifyReservationConfirmed(ctx context.Context, r *domain.Reservation) error
	NotifyReservationCancelled(ctx context.Context, r *domain.Reservation) error
}
