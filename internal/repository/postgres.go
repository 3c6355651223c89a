package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/RoomReserve/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// PostgresRepository is the durable backend behind the same contract as the
// in-memory and file stores.
type PostgresRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPostgresRepository(db *dbpg.DB) *PostgresRepository {
	return &PostgresRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const reservationColumns = `id, room_type, room_id, room_name, room_capacity, room_equipment,
       user_name, start_time, end_time, purpose, status`

func (r *PostgresRepository) Save(ctx context.Context, res *domain.Reservation) error {
	equipment, err := json.Marshal(res.Room.Equipment)
	if err != nil {
		return fmt.Errorf("encode equipment: %w", err)
	}

	query := `INSERT INTO reservations (id, room_type, room_id, room_name, room_capacity, room_equipment,
                                        user_name, start_time, end_time, purpose, status)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			  ON CONFLICT (id) DO UPDATE
			  SET room_type = EXCLUDED.room_type,
			      room_id = EXCLUDED.room_id,
			      room_name = EXCLUDED.room_name,
			      room_capacity = EXCLUDED.room_capacity,
			      room_equipment = EXCLUDED.room_equipment,
			      user_name = EXCLUDED.user_name,
			      start_time = EXCLUDED.start_time,
			      end_time = EXCLUDED.end_time,
			      purpose = EXCLUDED.purpose,
			      status = EXCLUDED.status`

	_, err = r.db.ExecWithRetry(
		ctx, r.strategy, query,
		res.ID, res.Room.Type, res.Room.ID, res.Room.Name, res.Room.Capacity, equipment,
		res.UserName, res.StartTime, res.EndTime, res.Purpose, res.Status,
	)
	if err != nil {
		return fmt.Errorf("save reservation: %w", err)
	}

	return nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	res, err := scanReservation(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return res, nil
}

func (r *PostgresRepository) FindByRoomAndTime(ctx context.Context, roomID string, start, end time.Time) ([]*domain.Reservation, error) {
	// half-open overlap: existing.start < end AND start < existing.end
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE room_id = $1
			    AND status <> $2
			    AND start_time < $4
			    AND $3 < end_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, roomID, domain.ReservationStatusCancelled, start, end)
	if err != nil {
		return nil, fmt.Errorf("find by room and time: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *PostgresRepository) FindAll(ctx context.Context) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrReservationNotFound
	}

	return nil
}

func collectReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	var res []*domain.Reservation
	for rows.Next() {
		reservation, err := scanReservation(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, reservation)
	}

	return res, rows.Err()
}

func scanReservation(scan func(dest ...any) error) (*domain.Reservation, error) {
	var (
		id, roomType, roomID, roomName, userName, purpose, status string
		capacity                                                  int
		equipment                                                 []byte
		start, end                                                time.Time
	)

	if err := scan(
		&id, &roomType, &roomID, &roomName, &capacity, &equipment,
		&userName, &start, &end, &purpose, &status,
	); err != nil {
		return nil, err
	}

	room, err := domain.NewRoom(domain.ParseRoomType(roomType), roomID, roomName, capacity, domain.RoomParams{})
	if err != nil {
		return nil, fmt.Errorf("rebuild room: %w", err)
	}

	res := domain.NewReservation(id, room, userName, start, end, purpose)
	res.Status = domain.ReservationStatus(status)

	return res, nil
}
