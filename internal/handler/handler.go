package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/stpnv0/RoomReserve/internal/domain"
	"github.com/stpnv0/RoomReserve/internal/handler/dto"
	"github.com/stpnv0/RoomReserve/internal/observer"
	"github.com/wb-go/wbf/ginext"
)

type ReservationSvc interface {
	Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error)
	CreateValidated(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error)
	Cancel(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*domain.Reservation, error)
	List(ctx context.Context) ([]*domain.Reservation, error)
	RoomAvailability(ctx context.Context, room *domain.Room, start, end time.Time) ([]*domain.Reservation, error)
	Delete(ctx context.Context, id string) error
}

type RoomCatalog interface {
	Get(id string) (*domain.Room, error)
	List() []*domain.Room
}

type StatsSource interface {
	Snapshot() observer.Statistics
}

type AuditSource interface {
	Entries() []observer.AuditEntry
}

type Handler struct {
	reservationService ReservationSvc
	catalog            RoomCatalog
	stats              StatsSource
	audit              AuditSource
}

func NewHandler(reservationService ReservationSvc, catalog RoomCatalog, stats StatsSource, audit AuditSource) *Handler {
	return &Handler{
		reservationService: reservationService,
		catalog:            catalog,
		stats:              stats,
		audit:              audit,
	}
}

// Reservations

func (h *Handler) CreateReservation(c *ginext.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_time format, expected RFC3339",
		})
		return
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid end_time format, expected RFC3339",
		})
		return
	}

	room, err := h.catalog.Get(req.RoomID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	input := domain.CreateReservationInput{
		Room:      room,
		UserName:  req.UserName,
		Start:     start,
		End:       end,
		Purpose:   req.Purpose,
		Attendees: req.Attendees,
	}

	create := h.reservationService.CreateValidated
	if req.SkipValidation {
		create = h.reservationService.Create
	}

	reservation, err := create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation))
}

func (h *Handler) GetReservation(c *ginext.Context) {
	id := c.Param("id")
	if !domain.ValidReservationID(id) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	reservation, err := h.reservationService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *Handler) ListReservations(c *ginext.Context) {
	reservations, err := h.reservationService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		resp = append(resp, dto.ToReservationResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CancelReservation(c *ginext.Context) {
	id := c.Param("id")
	if !domain.ValidReservationID(id) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	if err := h.reservationService.Cancel(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) DeleteReservation(c *ginext.Context) {
	id := c.Param("id")
	if !domain.ValidReservationID(id) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	if err := h.reservationService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Rooms

func (h *Handler) ListRooms(c *ginext.Context) {
	rooms := h.catalog.List()

	resp := make([]dto.RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		resp = append(resp, dto.ToRoomResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) RoomAvailability(c *ginext.Context) {
	room, err := h.catalog.Get(c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start format, expected RFC3339",
		})
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid end format, expected RFC3339",
		})
		return
	}

	conflicts, err := h.reservationService.RoomAvailability(c.Request.Context(), room, start, end)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.AvailabilityResponse{
		RoomID:    room.ID,
		StartTime: start.Format(time.RFC3339),
		EndTime:   end.Format(time.RFC3339),
		Available: len(conflicts) == 0,
		Conflicts: make([]dto.ReservationResponse, 0, len(conflicts)),
	}
	for _, r := range conflicts {
		resp.Conflicts = append(resp.Conflicts, dto.ToReservationResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

// Observability

func (h *Handler) GetStats(c *ginext.Context) {
	c.JSON(http.StatusOK, h.stats.Snapshot())
}

func (h *Handler) GetAuditLog(c *ginext.Context) {
	entries := h.audit.Entries()
	if entries == nil {
		entries = []observer.AuditEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrRoomUnavailable),
		errors.Is(err, domain.ErrAlreadyCancelled):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidTimeRange),
		errors.Is(err, domain.ErrUnknownRoomType):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
