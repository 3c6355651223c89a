package notification

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
	"github.com/stpnv0/RoomReserve/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// EmailNotifier sends reservation emails via the Resend API.
type EmailNotifier struct {
	client *resend.Client
	from   string
	to     string
	logger logger.Logger
}

func NewEmailNotifier(apiKey, from, to string, logger logger.Logger) (*EmailNotifier, error) {
	if apiKey == "" {
		logger.Warn("email api key is empty, email notifications disabled")
		return &EmailNotifier{client: nil, from: from, to: to, logger: logger}, nil
	}
	if to == "" {
		return nil, fmt.Errorf("email notifier: recipient address is required")
	}

	return &EmailNotifier{
		client: resend.NewClient(apiKey),
		from:   from,
		to:     to,
		logger: logger,
	}, nil
}

func (n *EmailNotifier) NotifyReservationConfirmed(ctx context.Context, r *domain.Reservation) error {
	subject := fmt.Sprintf("Reservation Confirmed - %s", r.Room.Name)
	html := fmt.Sprintf(
		"<p>Your reservation <b>%s</b> has been confirmed.</p>"+
			"<p>Room: %s<br>Time: %s - %s</p>",
		r.ID, r.Room.Name,
		r.StartTime.Format(notifyTimeLayout), r.EndTime.Format("15:04"),
	)
	return n.send(ctx, subject, html, r.ID)
}

func (n *EmailNotifier) NotifyReservationCancelled(ctx context.Context, r *domain.Reservation) error {
	subject := fmt.Sprintf("Reservation Cancelled - %s", r.Room.Name)
	html := fmt.Sprintf("<p>Your reservation <b>%s</b> has been cancelled.</p>", r.ID)
	return n.send(ctx, subject, html, r.ID)
}

func (n *EmailNotifier) send(ctx context.Context, subject, html, reservationID string) error {
	if n.client == nil {
		n.logger.Debug("email notification skipped (client disabled)",
			logger.String("subject", subject),
		)
		return nil
	}

	sent, err := n.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{n.to},
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	n.logger.Debug("email notification sent",
		logger.String("message_id", sent.Id),
		logger.String("reservation_id", reservationID),
	)

	return nil
}
