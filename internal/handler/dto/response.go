package dto

import (
	"time"

	"github.com/stpnv0/RoomReserve/internal/domain"
)

type RoomResponse struct {
	RoomID    string         `json:"room_id"`
	Name      string         `json:"name"`
	Capacity  int            `json:"capacity"`
	Type      string         `json:"type"`
	Equipment map[string]any `json:"equipment"`
}

type ReservationResponse struct {
	ReservationID string       `json:"reservation_id"`
	Room          RoomResponse `json:"room"`
	UserName      string       `json:"user_name"`
	StartTime     string       `json:"start_time"`
	EndTime       string       `json:"end_time"`
	Purpose       string       `json:"purpose,omitempty"`
	Status        string       `json:"status"`
}

type AvailabilityResponse struct {
	RoomID    string                `json:"room_id"`
	StartTime string                `json:"start_time"`
	EndTime   string                `json:"end_time"`
	Available bool                  `json:"available"`
	Conflicts []ReservationResponse `json:"conflicts"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToRoomResponse(r *domain.Room) RoomResponse {
	return RoomResponse{
		RoomID:    r.ID,
		Name:      r.Name,
		Capacity:  r.Capacity,
		Type:      string(r.Type),
		Equipment: r.Equipment,
	}
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ReservationID: r.ID,
		Room:          ToRoomResponse(r.Room),
		UserName:      r.UserName,
		StartTime:     r.StartTime.Format(time.RFC3339),
		EndTime:       r.EndTime.Format(time.RFC3339),
		Purpose:       r.Purpose,
		Status:        string(r.Status),
	}
}
