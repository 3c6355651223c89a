package domain

import (
	"fmt"
	"strings"
)

type RoomType string

const (
	RoomTypeClassroom   RoomType = "CLASSROOM"
	RoomTypeConference  RoomType = "CONFERENCE_ROOM"
	RoomTypeLaboratory  RoomType = "LABORATORY"
	RoomTypeComputerLab RoomType = "COMPUTER_LAB"
)

var RoomTypes = []RoomType{RoomTypeClassroom, RoomTypeConference, RoomTypeLaboratory, RoomTypeComputerLab}

// Room is an immutable description of a bookable space. Equipment keys and
// value types differ per room type.
type Room struct {
	ID        string         `json:"room_id"`
	Name      string         `json:"name"`
	Capacity  int            `json:"capacity"`
	Type      RoomType       `json:"type"`
	Equipment map[string]any `json:"equipment"`
}

// RoomParams carries optional type-specific attributes for NewRoom.
// Nil pointers mean "use the default for this room type".
type RoomParams struct {
	Projector       *bool
	Whiteboard      *bool
	VideoConference *bool
	SoundSystem     *bool
	LabType         string
	SafetyEquipment *bool
	Computers       int
	Printer         *bool
}

// NewRoom builds a room of the given type with type-specific equipment
// defaults. Computer labs default to one workstation per seat.
func NewRoom(roomType RoomType, id, name string, capacity int, params RoomParams) (*Room, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: room capacity must be positive", ErrValidation)
	}

	room := &Room{
		ID:       id,
		Name:     name,
		Capacity: capacity,
		Type:     roomType,
	}

	switch roomType {
	case RoomTypeClassroom:
		room.Equipment = map[string]any{
			"projector":  boolOrDefault(params.Projector, true),
			"whiteboard": boolOrDefault(params.Whiteboard, true),
			"desks":      true,
		}
	case RoomTypeConference:
		room.Equipment = map[string]any{
			"video_conference": boolOrDefault(params.VideoConference, true),
			"sound_system":     boolOrDefault(params.SoundSystem, true),
			"projector":        true,
			"conference_table": true,
		}
	case RoomTypeLaboratory:
		labType := params.LabType
		if labType == "" {
			labType = "General"
		}
		room.Equipment = map[string]any{
			"lab_type":         labType,
			"safety_equipment": boolOrDefault(params.SafetyEquipment, true),
			"workbenches":      true,
			"storage":          true,
		}
	case RoomTypeComputerLab:
		computers := params.Computers
		if computers <= 0 {
			computers = capacity
		}
		room.Equipment = map[string]any{
			"computers": computers,
			"printer":   boolOrDefault(params.Printer, true),
			"network":   true,
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRoomType, roomType)
	}

	return room, nil
}

// ParseRoomType resolves a serialized type tag. Exact enum tags are matched
// first; free-form legacy tags ("Classroom", "Conference Room",
// "Laboratory (Chemistry)", "Computer Lab") fall back to substring matching,
// with laboratory as the final default.
func ParseRoomType(tag string) RoomType {
	switch RoomType(tag) {
	case RoomTypeClassroom, RoomTypeConference, RoomTypeLaboratory, RoomTypeComputerLab:
		return RoomType(tag)
	}

	switch {
	case strings.Contains(tag, "Classroom"):
		return RoomTypeClassroom
	case strings.Contains(tag, "Conference"):
		return RoomTypeConference
	case strings.Contains(tag, "Computer"):
		return RoomTypeComputerLab
	default:
		return RoomTypeLaboratory
	}
}

func boolOrDefault(v *bool, def bool) bool {
	if v != nil {
		return *v
	}
	return def
}
