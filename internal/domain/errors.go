package domain

import "errors"

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrRoomNotFound        = errors.New("room not found")
)

var (
	ErrRoomUnavailable  = errors.New("room is not available for the requested time slot")
	ErrAlreadyCancelled = errors.New("reservation is already cancelled")
	ErrInvalidTimeRange = errors.New("end time must be after start time")
)

var (
	ErrUnknownRoomType = errors.New("unknown room type")
)

var (
	ErrValidation = errors.New("validation error")
)
