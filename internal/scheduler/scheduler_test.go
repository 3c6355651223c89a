package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/RoomReserve/internal/domain"
	"github.com/stpnv0/RoomReserve/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_PurgesCancelled(t *testing.T) {
	purger := mocks.NewMockReservationPurger(t)
	log := newTestLogger(t)

	s := New(purger, 50*time.Millisecond, 30*24*time.Hour, log)

	room := &domain.Room{ID: "CL-101", Name: "Python Programming Lab"}
	purged := []*domain.Reservation{
		{ID: "RES-A1B2C3D4", Room: room, UserName: "alice"},
	}
	purger.EXPECT().PurgeCancelled(mock.Anything, 30*24*time.Hour).Return(purged, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(purger.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	purger := mocks.NewMockReservationPurger(t)
	log := newTestLogger(t)

	s := New(purger, 50*time.Millisecond, 30*24*time.Hour, log)

	purger.EXPECT().PurgeCancelled(mock.Anything, mock.Anything).Return(nil, errors.New("storage error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(purger.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	purger := mocks.NewMockReservationPurger(t)
	log := newTestLogger(t)

	s := New(purger, time.Second, 30*24*time.Hour, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}
