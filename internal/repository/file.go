package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/stpnv0/RoomReserve/internal/domain"
)

// timeLayout is the persisted timestamp format: local ISO-8601 without a zone.
const timeLayout = "2006-01-02T15:04:05"

// FileRepository persists reservations as a JSON array. Every call reloads
// the whole file, applies the change in memory and rewrites the file. There
// is no append log and no partial-write protection: a failure mid-write can
// corrupt the store. The mutex serializes callers within this process only;
// concurrent external writers of the same file may race.
type FileRepository struct {
	mu       sync.Mutex
	filepath string
}

type roomRecord struct {
	Type      string         `json:"type"`
	RoomID    string         `json:"room_id"`
	Name      string         `json:"name"`
	Capacity  int            `json:"capacity"`
	Equipment map[string]any `json:"equipment"`
}

type reservationRecord struct {
	ReservationID string     `json:"reservation_id"`
	Room          roomRecord `json:"room"`
	UserName      string     `json:"user_name"`
	StartTime     string     `json:"start_time"`
	EndTime       string     `json:"end_time"`
	Purpose       string     `json:"purpose"`
	Status        string     `json:"status"`
}

// NewFileRepository opens (or creates) the backing file. A missing file is
// initialized to an empty collection before first read.
func NewFileRepository(filepath string) (*FileRepository, error) {
	r := &FileRepository{filepath: filepath}
	if err := r.ensureFileExists(); err != nil {
		return nil, fmt.Errorf("init reservations file: %w", err)
	}
	return r, nil
}

func (r *FileRepository) ensureFileExists() error {
	if _, err := os.Stat(r.filepath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(r.filepath, []byte("[]"), 0o644)
}

func (r *FileRepository) load() ([]*domain.Reservation, error) {
	data, err := os.ReadFile(r.filepath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", r.filepath, err)
	}

	var records []reservationRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.filepath, err)
	}

	reservations := make([]*domain.Reservation, 0, len(records))
	for _, rec := range records {
		res, err := rec.toDomain()
		if err != nil {
			return nil, fmt.Errorf("decode reservation %s: %w", rec.ReservationID, err)
		}
		reservations = append(reservations, res)
	}

	return reservations, nil
}

func (r *FileRepository) store(reservations []*domain.Reservation) error {
	records := make([]reservationRecord, 0, len(reservations))
	for _, res := range reservations {
		records = append(records, toRecord(res))
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode reservations: %w", err)
	}

	if err := os.WriteFile(r.filepath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", r.filepath, err)
	}

	return nil
}

func toRecord(res *domain.Reservation) reservationRecord {
	return reservationRecord{
		ReservationID: res.ID,
		Room: roomRecord{
			Type:      string(res.Room.Type),
			RoomID:    res.Room.ID,
			Name:      res.Room.Name,
			Capacity:  res.Room.Capacity,
			Equipment: res.Room.Equipment,
		},
		UserName:  res.UserName,
		StartTime: res.StartTime.Format(timeLayout),
		EndTime:   res.EndTime.Format(timeLayout),
		Purpose:   res.Purpose,
		Status:    string(res.Status),
	}
}

func (rec reservationRecord) toDomain() (*domain.Reservation, error) {
	// room is rebuilt through the factory so equipment carries the type's
	// defaults; the stored snapshot is informational
	room, err := domain.NewRoom(
		domain.ParseRoomType(rec.Room.Type),
		rec.Room.RoomID, rec.Room.Name, rec.Room.Capacity,
		domain.RoomParams{},
	)
	if err != nil {
		return nil, err
	}

	start, err := time.ParseInLocation(timeLayout, rec.StartTime, time.Local)
	if err != nil {
		return nil, fmt.Errorf("parse start_time: %w", err)
	}
	end, err := time.ParseInLocation(timeLayout, rec.EndTime, time.Local)
	if err != nil {
		return nil, fmt.Errorf("parse end_time: %w", err)
	}

	res := domain.NewReservation(rec.ReservationID, room, rec.UserName, start, end, rec.Purpose)
	if rec.Status != "" {
		res.Status = domain.ReservationStatus(rec.Status)
	}

	return res, nil
}

func (r *FileRepository) Save(_ context.Context, res *domain.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	reservations, err := r.load()
	if err != nil {
		return err
	}

	updated := false
	for i, existing := range reservations {
		if existing.ID == res.ID {
			reservations[i] = res
			updated = true
			break
		}
	}
	if !updated {
		reservations = append(reservations, res)
	}

	return r.store(reservations)
}

func (r *FileRepository) FindByID(_ context.Context, id string) (*domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reservations, err := r.load()
	if err != nil {
		return nil, err
	}

	for _, res := range reservations {
		if res.ID == id {
			return res, nil
		}
	}

	return nil, domain.ErrReservationNotFound
}

func (r *FileRepository) FindByRoomAndTime(_ context.Context, roomID string, start, end time.Time) ([]*domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reservations, err := r.load()
	if err != nil {
		return nil, err
	}

	var overlapping []*domain.Reservation
	for _, res := range reservations {
		if res.Room.ID == roomID &&
			res.OverlapsWith(start, end) &&
			res.Status != domain.ReservationStatusCancelled {
			overlapping = append(overlapping, res)
		}
	}

	return overlapping, nil
}

func (r *FileRepository) FindAll(_ context.Context) ([]*domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load()
}

func (r *FileRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	reservations, err := r.load()
	if err != nil {
		return err
	}

	remaining := reservations[:0]
	found := false
	for _, res := range reservations {
		if res.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, res)
	}

	if !found {
		return domain.ErrReservationNotFound
	}

	return r.store(remaining)
}
