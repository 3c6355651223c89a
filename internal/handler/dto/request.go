package dto

type CreateReservationRequest struct {
	RoomID    string `json:"room_id" binding:"required"`
	UserName  string `json:"user_name" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Purpose   string `json:"purpose"`
	Attendees int    `json:"attendees" binding:"omitempty,gt=0"`

	// SkipValidation books through the conflict-only path, bypassing the
	// duration, business-hours and advance-window rules.
	SkipValidation bool `json:"skip_validation"`
}
