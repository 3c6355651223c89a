package ports

import (
	"context"
	"time"

	"github.com/stpnv0/RoomReserve/internal/domain"
)

// ReservationRepo is the storage contract shared by the in-memory, file and
// postgres backends. All implementations must behave identically from the
// caller's perspective.
type ReservationRepo interface {
	// Save upserts by reservation ID.
	Save(ctx context.Context, r *domain.Reservation) error
	FindByID(ctx context.Context, id string) (*domain.Reservation, error)
	// FindByRoomAndTime returns every non-cancelled reservation for the room
	// whose interval overlaps [start, end). Order is unspecified.
	FindByRoomAndTime(ctx context.Context, roomID string, start, end time.Time) ([]*domain.Reservation, error)
	FindAll(ctx context.Context) ([]*domain.Reservation, error)
	// Delete hard-removes the record; domain.ErrReservationNotFound if absent.
	Delete(ctx context.Context, id string) error
}
