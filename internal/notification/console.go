package notification

import (
	"context"

	"github.com/stpnv0/RoomReserve/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const notifyTimeLayout = "2006-01-02 15:04"

// ConsoleNotifier writes notifications to the log. Useful default for
// development and for the memory/file storage setups.
type ConsoleNotifier struct {
	logger logger.Logger
}

func NewConsoleNotifier(logger logger.Logger) *ConsoleNotifier {
	return &ConsoleNotifier{logger: logger}
}

func (n *ConsoleNotifier) NotifyReservationConfirmed(ctx context.Context, r *domain.Reservation) error {
	n.logger.LogAttrs(ctx, logger.InfoLevel, "RESERVATION CONFIRMED",
		logger.String("reservation_id", r.ID),
		logger.String("user", r.UserName),
		logger.String("room", r.Room.Name),
		logger.String("start", r.StartTime.Format(notifyTimeLayout)),
		logger.String("end", r.EndTime.Format(notifyTimeLayout)),
		logger.String("purpose", r.Purpose),
	)
	return nil
}

func (n *ConsoleNotifier) NotifyReservationCancelled(ctx context.Context, r *domain.Reservation) error {
	n.logger.LogAttrs(ctx, logger.InfoLevel, "RESERVATION CANCELLED",
		logger.String("reservation_id", r.ID),
		logger.String("user", r.UserName),
		logger.String("room", r.Room.Name),
	)
	return nil
}
