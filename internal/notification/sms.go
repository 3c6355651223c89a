package notification

import (
	"context"
	"fmt"

	"github.com/stpnv0/RoomReserve/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// SMSNotifier simulates an SMS gateway: messages are composed and logged but
// not delivered anywhere. No real provider is wired yet.
type SMSNotifier struct {
	apiKey string
	logger logger.Logger
}

func NewSMSNotifier(apiKey string, logger logger.Logger) *SMSNotifier {
	return &SMSNotifier{apiKey: apiKey, logger: logger}
}

func (n *SMSNotifier) NotifyReservationConfirmed(ctx context.Context, r *domain.Reservation) error {
	message := fmt.Sprintf("Reservation confirmed! %s on %s Ref: %s",
		r.Room.Name, r.StartTime.Format(notifyTimeLayout), r.ID)
	n.send(ctx, r.UserName, message)
	return nil
}

func (n *SMSNotifier) NotifyReservationCancelled(ctx context.Context, r *domain.Reservation) error {
	message := fmt.Sprintf("Reservation %s cancelled for %s", r.ID, r.Room.Name)
	n.send(ctx, r.UserName, message)
	return nil
}

func (n *SMSNotifier) send(ctx context.Context, recipient, message string) {
	n.logger.LogAttrs(ctx, logger.InfoLevel, "sms notification (simulated)",
		logger.String("recipient", recipient),
		logger.String("message", message),
	)
}
