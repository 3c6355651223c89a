package repository

import (
	"context"
	"sync"
	"time"

	"github.com/stpnv0/RoomReserve/internal/domain"
)

// InMemoryRepository keeps reservations in a map keyed by reservation ID.
// Volatile: contents are lost when the process exits. The mutex only makes
// concurrent handler access memory-safe; there is no transactional isolation.
type InMemoryRepository struct {
	mu           sync.RWMutex
	reservations map[string]*domain.Reservation
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		reservations: make(map[string]*domain.Reservation),
	}
}

func (r *InMemoryRepository) Save(_ context.Context, res *domain.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reservations[res.ID] = res
	return nil
}

func (r *InMemoryRepository) FindByID(_ context.Context, id string) (*domain.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res, ok := r.reservations[id]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	return res, nil
}

func (r *InMemoryRepository) FindByRoomAndTime(_ context.Context, roomID string, start, end time.Time) ([]*domain.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var overlapping []*domain.Reservation
	for _, res := range r.reservations {
		if res.Room.ID == roomID &&
			res.OverlapsWith(start, end) &&
			res.Status != domain.ReservationStatusCancelled {
			overlapping = append(overlapping, res)
		}
	}

	return overlapping, nil
}

func (r *InMemoryRepository) FindAll(_ context.Context) ([]*domain.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*domain.Reservation, 0, len(r.reservations))
	for _, res := range r.reservations {
		all = append(all, res)
	}

	return all, nil
}

func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reservations[id]; !ok {
		return domain.ErrReservationNotFound
	}

	delete(r.reservations, id)
	return nil
}
