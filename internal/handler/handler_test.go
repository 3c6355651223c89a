package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stpnv0/RoomReserve/internal/domain"
	"github.com/stpnv0/RoomReserve/internal/handler/dto"
	hmocks "github.com/stpnv0/RoomReserve/internal/handler/mocks"
	"github.com/stpnv0/RoomReserve/internal/observer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockReservationSvc, *hmocks.MockRoomCatalog, http.Handler) {
	t.Helper()
	reservationSvc := hmocks.NewMockReservationSvc(t)
	catalog := hmocks.NewMockRoomCatalog(t)

	h := NewHandler(reservationSvc, catalog, observer.NewStatisticsObserver(), observer.NewAuditLogObserver())

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/reservations", h.CreateReservation)
		api.GET("/reservations", h.ListReservations)
		api.GET("/reservations/:id", h.GetReservation)
		api.POST("/reservations/:id/cancel", h.CancelReservation)
		api.DELETE("/reservations/:id", h.DeleteReservation)
		api.GET("/rooms", h.ListRooms)
		api.GET("/rooms/:id/availability", h.RoomAvailability)
		api.GET("/stats", h.GetStats)
		api.GET("/audit", h.GetAuditLog)
	}

	return reservationSvc, catalog, r
}

func testRoom(t *testing.T) *domain.Room {
	t.Helper()
	room, err := domain.NewRoom(domain.RoomTypeClassroom, "CL-101", "Python Programming Lab", 30, domain.RoomParams{})
	require.NoError(t, err)
	return room
}

func testReservation(t *testing.T) *domain.Reservation {
	t.Helper()
	start := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	return domain.NewReservation("RES-A1B2C3D4", testRoom(t), "alice", start, start.Add(2*time.Hour), "lecture")
}

// --- Reservations ---

func TestHandler_CreateReservation_Success(t *testing.T) {
	reservationSvc, catalog, r := setupRouter(t)

	room := testRoom(t)
	catalog.EXPECT().Get("CL-101").Return(room, nil)
	reservationSvc.EXPECT().CreateValidated(mock.Anything, mock.Anything).Return(testReservation(t), nil)

	body, _ := json.Marshal(dto.CreateReservationRequest{
		RoomID:    "CL-101",
		UserName:  "alice",
		StartTime: "2026-09-14T09:00:00Z",
		EndTime:   "2026-09-14T11:00:00Z",
		Purpose:   "lecture",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "RES-A1B2C3D4", resp.ReservationID)
	assert.Equal(t, "CONFIRMED", resp.Status)
	assert.Equal(t, "CLASSROOM", resp.Room.Type)
}

func TestHandler_CreateReservation_SkipValidation(t *testing.T) {
	reservationSvc, catalog, r := setupRouter(t)

	catalog.EXPECT().Get("CL-101").Return(testRoom(t), nil)
	// the unchecked path is used, not CreateValidated
	reservationSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(testReservation(t), nil)

	body, _ := json.Marshal(dto.CreateReservationRequest{
		RoomID:         "CL-101",
		UserName:       "alice",
		StartTime:      "2026-09-14T02:00:00Z",
		EndTime:        "2026-09-14T03:00:00Z",
		SkipValidation: true,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	reservationSvc.AssertNotCalled(t, "CreateValidated", mock.Anything, mock.Anything)
}

func TestHandler_CreateReservation_BadRequest(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"room_id":""}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateReservation_InvalidTime(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"room_id":"CL-101","user_name":"alice","start_time":"not-a-time","end_time":"2026-09-14T11:00:00Z"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateReservation_UnknownRoom(t *testing.T) {
	_, catalog, r := setupRouter(t)

	catalog.EXPECT().Get("NOPE-1").Return(nil, domain.ErrRoomNotFound)

	body, _ := json.Marshal(dto.CreateReservationRequest{
		RoomID:    "NOPE-1",
		UserName:  "alice",
		StartTime: "2026-09-14T09:00:00Z",
		EndTime:   "2026-09-14T11:00:00Z",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CreateReservation_Conflict(t *testing.T) {
	reservationSvc, catalog, r := setupRouter(t)

	catalog.EXPECT().Get("CL-101").Return(testRoom(t), nil)
	reservationSvc.EXPECT().CreateValidated(mock.Anything, mock.Anything).Return(nil, domain.ErrRoomUnavailable)

	body, _ := json.Marshal(dto.CreateReservationRequest{
		RoomID:    "CL-101",
		UserName:  "alice",
		StartTime: "2026-09-14T09:00:00Z",
		EndTime:   "2026-09-14T11:00:00Z",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateReservation_ValidationFailed(t *testing.T) {
	reservationSvc, catalog, r := setupRouter(t)

	catalog.EXPECT().Get("CL-101").Return(testRoom(t), nil)
	reservationSvc.EXPECT().CreateValidated(mock.Anything, mock.Anything).Return(nil, domain.ErrValidation)

	body, _ := json.Marshal(dto.CreateReservationRequest{
		RoomID:    "CL-101",
		UserName:  "alice",
		StartTime: "2026-09-14T02:00:00Z",
		EndTime:   "2026-09-14T02:30:00Z",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetReservation_Success(t *testing.T) {
	reservationSvc, _, r := setupRouter(t)

	reservationSvc.EXPECT().Get(mock.Anything, "RES-A1B2C3D4").Return(testReservation(t), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations/RES-A1B2C3D4", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.UserName)
}

func TestHandler_GetReservation_InvalidID(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations/not-an-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetReservation_NotFound(t *testing.T) {
	reservationSvc, _, r := setupRouter(t)

	reservationSvc.EXPECT().Get(mock.Anything, "RES-00000000").Return(nil, domain.ErrReservationNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations/RES-00000000", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListReservations_Success(t *testing.T) {
	reservationSvc, _, r := setupRouter(t)

	reservationSvc.EXPECT().List(mock.Anything).Return([]*domain.Reservation{testReservation(t)}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_CancelReservation_Success(t *testing.T) {
	reservationSvc, _, r := setupRouter(t)

	reservationSvc.EXPECT().Cancel(mock.Anything, "RES-A1B2C3D4").Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/RES-A1B2C3D4/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CancelReservation_AlreadyCancelled(t *testing.T) {
	reservationSvc, _, r := setupRouter(t)

	reservationSvc.EXPECT().Cancel(mock.Anything, "RES-A1B2C3D4").Return(domain.ErrAlreadyCancelled)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/RES-A1B2C3D4/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_DeleteReservation_Success(t *testing.T) {
	reservationSvc, _, r := setupRouter(t)

	reservationSvc.EXPECT().Delete(mock.Anything, "RES-A1B2C3D4").Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/reservations/RES-A1B2C3D4", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Rooms ---

func TestHandler_ListRooms_Success(t *testing.T) {
	_, catalog, r := setupRouter(t)

	catalog.EXPECT().List().Return([]*domain.Room{testRoom(t)})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/rooms", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.RoomResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "CL-101", resp[0].RoomID)
	assert.Equal(t, true, resp[0].Equipment["whiteboard"])
}

func TestHandler_RoomAvailability_Free(t *testing.T) {
	reservationSvc, catalog, r := setupRouter(t)

	catalog.EXPECT().Get("CL-101").Return(testRoom(t), nil)
	reservationSvc.EXPECT().RoomAvailability(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/rooms/CL-101/availability?start=2026-09-14T09:00:00Z&end=2026-09-14T11:00:00Z", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Available)
	assert.Empty(t, resp.Conflicts)
}

func TestHandler_RoomAvailability_Busy(t *testing.T) {
	reservationSvc, catalog, r := setupRouter(t)

	catalog.EXPECT().Get("CL-101").Return(testRoom(t), nil)
	reservationSvc.EXPECT().RoomAvailability(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*domain.Reservation{testReservation(t)}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/rooms/CL-101/availability?start=2026-09-14T10:00:00Z&end=2026-09-14T12:00:00Z", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Available)
	assert.Len(t, resp.Conflicts, 1)
}

func TestHandler_RoomAvailability_BadTimeRange(t *testing.T) {
	_, catalog, r := setupRouter(t)

	catalog.EXPECT().Get("CL-101").Return(testRoom(t), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/rooms/CL-101/availability?start=tomorrow&end=later", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Observability ---

func TestHandler_GetStats(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp observer.Statistics
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.TotalCreated)
}

func TestHandler_GetAuditLog_Empty(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/audit", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	reservationSvc, _, r := setupRouter(t)

	reservationSvc.EXPECT().Get(mock.Anything, "RES-A1B2C3D4").Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations/RES-A1B2C3D4", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
