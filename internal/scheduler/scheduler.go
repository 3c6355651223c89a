package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/RoomReserve/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type reservationPurger interface {
	PurgeCancelled(ctx context.Context, olderThan time.Duration) ([]*domain.Reservation, error)
}

// Scheduler periodically purges cancelled reservations that fell out of the
// retention window.
type Scheduler struct {
	reservationService reservationPurger
	interval           time.Duration
	maxAge             time.Duration
	logger             logger.Logger
}

func New(
	reservationService reservationPurger,
	interval time.Duration,
	maxAge time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reservationService: reservationService,
		interval:           interval,
		maxAge:             maxAge,
		logger:             logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("retention scheduler started",
		logger.Duration("interval", s.interval),
		logger.Duration("max_age", s.maxAge),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("retention scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	purged, err := s.reservationService.PurgeCancelled(ctx, s.maxAge)
	if err != nil {
		s.logger.Error("failed to purge cancelled reservations",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, r := range purged {
		s.logger.Info("reservation purged",
			logger.String("reservation_id", r.ID),
			logger.String("room_id", r.Room.ID),
			logger.String("user_name", r.UserName),
		)
	}
}
