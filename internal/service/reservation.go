package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/stpnv0/RoomReserve/internal/domain"
	"github.com/stpnv0/RoomReserve/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ReservationService struct {
	repo      ports.ReservationRepo
	notifier  ports.ReservationNotifier
	validator *ReservationValidator
	observers []ports.ReservationObserver
	logger    logger.Logger
}

func NewReservationService(
	repo ports.ReservationRepo,
	notifier ports.ReservationNotifier,
	validator *ReservationValidator,
	logger logger.Logger,
	observers ...ports.ReservationObserver,
) *ReservationService {
	return &ReservationService{
		repo:      repo,
		notifier:  notifier,
		validator: validator,
		observers: observers,
		logger:    logger,
	}
}

// Create books a room after checking only the time order and conflicts.
// Business rules (duration, business hours, advance window) are not applied
// here; callers wanting full enforcement use CreateValidated.
func (s *ReservationService) Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error) {
	if !input.Start.Before(input.End) {
		return nil, domain.ErrInvalidTimeRange
	}

	conflicts, err := s.repo.FindByRoomAndTime(ctx, input.Room.ID, input.Start, input.End)
	if err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}
	if len(conflicts) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrRoomUnavailable, input.Room.Name)
	}

	reservation := domain.NewReservation(
		domain.NewReservationID(),
		input.Room,
		input.UserName,
		input.Start,
		input.End,
		input.Purpose,
	)

	if err = s.repo.Save(ctx, reservation); err != nil {
		return nil, fmt.Errorf("save reservation: %w", err)
	}

	s.logger.Info("reservation created",
		logger.String("reservation_id", reservation.ID),
		logger.String("room_id", input.Room.ID),
		logger.String("user_name", input.UserName),
	)

	if err = s.notifier.NotifyReservationConfirmed(ctx, reservation); err != nil {
		// notification failure never rolls back a committed reservation
		s.logger.Error("failed to send confirmation notification",
			logger.String("reservation_id", reservation.ID),
			logger.String("error", err.Error()),
		)
	}

	for _, o := range s.observers {
		o.OnReservationCreated(reservation)
	}

	return reservation, nil
}

// CreateValidated runs the full rule set before delegating to Create.
func (s *ReservationService) CreateValidated(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error) {
	result := s.validator.ValidateAll(input.Room, input.Start, input.End, input.UserName)

	if input.Attendees > 0 {
		ok, msg := s.validator.ValidateCapacity(input.Room, input.Attendees)
		if !ok {
			result.Errors = append(result.Errors, msg)
		} else if msg != "" {
			result.Warnings = append(result.Warnings, msg)
		}
	}

	for _, w := range result.Warnings {
		s.logger.Warn("reservation advisory",
			logger.String("room_id", input.Room.ID),
			logger.String("warning", w),
		)
	}

	if !result.OK() {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(result.Errors, "; "))
	}

	return s.Create(ctx, input)
}

// Cancel transitions a reservation to CANCELLED. Re-cancelling is rejected,
// not treated as a no-op success.
func (s *ReservationService) Cancel(ctx context.Context, id string) error {
	reservation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get reservation: %w", err)
	}

	if reservation.Status == domain.ReservationStatusCancelled {
		return domain.ErrAlreadyCancelled
	}

	reservation.Cancel()

	if err = s.repo.Save(ctx, reservation); err != nil {
		// the in-memory status now disagrees with storage; reported, not masked
		return fmt.Errorf("update reservation: %w", err)
	}

	s.logger.Info("reservation cancelled",
		logger.String("reservation_id", reservation.ID),
		logger.String("room_id", reservation.Room.ID),
	)

	if err = s.notifier.NotifyReservationCancelled(ctx, reservation); err != nil {
		s.logger.Error("failed to send cancellation notification",
			logger.String("reservation_id", reservation.ID),
			logger.String("error", err.Error()),
		)
	}

	for _, o := range s.observers {
		o.OnReservationCancelled(reservation)
	}

	return nil
}

func (s *ReservationService) Get(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ReservationService) List(ctx context.Context) ([]*domain.Reservation, error) {
	return s.repo.FindAll(ctx)
}

// RoomAvailability returns the non-cancelled reservations conflicting with
// [start, end) on the room; empty means the slot is free.
func (s *ReservationService) RoomAvailability(ctx context.Context, room *domain.Room, start, end time.Time) ([]*domain.Reservation, error) {
	return s.repo.FindByRoomAndTime(ctx, room.ID, start, end)
}

// Delete hard-removes a reservation from storage. Unlike Cancel this is a
// data-retention operation, not a business one: no notification is sent.
func (s *ReservationService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}

	s.logger.Info("reservation deleted", logger.String("reservation_id", id))
	return nil
}

// PurgeCancelled hard-deletes CANCELLED reservations whose end time is older
// than the retention window and returns the purged records.
func (s *ReservationService) PurgeCancelled(ctx context.Context, olderThan time.Duration) ([]*domain.Reservation, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	cutoff := time.Now().Add(-olderThan)

	var purged []*domain.Reservation
	for _, r := range all {
		if r.Status != domain.ReservationStatusCancelled || !r.EndTime.Before(cutoff) {
			continue
		}

		if err = s.repo.Delete(ctx, r.ID); err != nil {
			return purged, fmt.Errorf("purge reservation %s: %w", r.ID, err)
		}
		purged = append(purged, r)
	}

	if len(purged) > 0 {
		s.logger.Info("cancelled reservations purged",
			logger.Int("count", len(purged)),
		)
	}

	return purged, nil
}
