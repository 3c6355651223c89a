package notification

import (
	"context"
	"errors"

	"github.com/stpnv0/RoomReserve/internal/domain"
	"github.com/stpnv0/RoomReserve/internal/service/ports"
)

// MultiNotifier fans notifications out to several channels. One failing
// channel does not stop the others; all errors are reported together.
type MultiNotifier struct {
	notifiers []ports.ReservationNotifier
}

func NewMultiNotifier(notifiers ...ports.ReservationNotifier) *MultiNotifier {
	return &MultiNotifier{notifiers: notifiers}
}

func (n *MultiNotifier) NotifyReservationConfirmed(ctx context.Context, r *domain.Reservation) error {
	var errs []error
	for _, notifier := range n.notifiers {
		if err := notifier.NotifyReservationConfirmed(ctx, r); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (n *MultiNotifier) NotifyReservationCancelled(ctx context.Context, r *domain.Reservation) error {
	var errs []error
	for _, notifier := range n.notifiers {
		if err := notifier.NotifyReservationCancelled(ctx, r); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
