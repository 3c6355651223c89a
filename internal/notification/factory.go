package notification

import (
	"fmt"

	"github.com/stpnv0/RoomReserve/internal/config"
	"github.com/stpnv0/RoomReserve/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// New builds the notifier selected by cfg.Type. An unknown type or channel
// is a configuration error, reported at construction rather than on first use.
func New(cfg config.NotifierConfig, log logger.Logger) (ports.ReservationNotifier, error) {
	if cfg.Type != "multi" {
		return newChannel(cfg.Type, cfg, log)
	}

	channels := cfg.Channels
	if len(channels) == 0 {
		channels = []string{"console", "email"}
	}

	notifiers := make([]ports.ReservationNotifier, 0, len(channels))
	for _, channel := range channels {
		n, err := newChannel(channel, cfg, log)
		if err != nil {
			return nil, err
		}
		notifiers = append(notifiers, n)
	}

	return NewMultiNotifier(notifiers...), nil
}

func newChannel(channel string, cfg config.NotifierConfig, log logger.Logger) (ports.ReservationNotifier, error) {
	switch channel {
	case "console":
		return NewConsoleNotifier(log), nil
	case "email":
		return NewEmailNotifier(cfg.Email.APIKey, cfg.Email.From, cfg.Email.To, log)
	case "sms":
		return NewSMSNotifier(cfg.SMS.APIKey, log), nil
	case "telegram":
		return NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, log)
	default:
		return nil, fmt.Errorf("unknown notifier type %q", channel)
	}
}
