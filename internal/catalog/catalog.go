package catalog

import (
	"fmt"

	"github.com/stpnv0/RoomReserve/internal/domain"
)

// Catalog is the fixed set of bookable rooms. Rooms are registered once at
// construction and never mutated.
type Catalog struct {
	rooms map[string]*domain.Room
	order []string
}

func New(rooms ...*domain.Room) (*Catalog, error) {
	c := &Catalog{rooms: make(map[string]*domain.Room, len(rooms))}

	for _, room := range rooms {
		if _, exists := c.rooms[room.ID]; exists {
			return nil, fmt.Errorf("duplicate room id %q", room.ID)
		}
		c.rooms[room.ID] = room
		c.order = append(c.order, room.ID)
	}

	return c, nil
}

func (c *Catalog) Get(id string) (*domain.Room, error) {
	room, ok := c.rooms[id]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	return room, nil
}

// List returns rooms in registration order.
func (c *Catalog) List() []*domain.Room {
	rooms := make([]*domain.Room, 0, len(c.order))
	for _, id := range c.order {
		rooms = append(rooms, c.rooms[id])
	}
	return rooms
}

// DefaultRooms seeds the standard campus catalog.
func DefaultRooms() ([]*domain.Room, error) {
	specs := []struct {
		roomType domain.RoomType
		id       string
		name     string
		capacity int
		params   domain.RoomParams
	}{
		{domain.RoomTypeClassroom, "CL-101", "Python Programming Lab", 30, domain.RoomParams{}},
		{domain.RoomTypeClassroom, "CL-102", "Java Development Lab", 28, domain.RoomParams{}},
		{domain.RoomTypeConference, "CF-201", "Executive Board Room", 15, domain.RoomParams{}},
		{domain.RoomTypeConference, "CF-202", "Meeting Room A", 10, domain.RoomParams{}},
		{domain.RoomTypeLaboratory, "LAB-301", "Chemistry Lab", 25, domain.RoomParams{LabType: "Chemistry"}},
		{domain.RoomTypeLaboratory, "LAB-302", "Physics Lab", 20, domain.RoomParams{LabType: "Physics"}},
		{domain.RoomTypeComputerLab, "CL-401", "AI Research Lab", 35, domain.RoomParams{Computers: 35}},
		{domain.RoomTypeComputerLab, "CL-402", "Software Engineering Lab", 32, domain.RoomParams{Computers: 32}},
	}

	rooms := make([]*domain.Room, 0, len(specs))
	for _, s := range specs {
		room, err := domain.NewRoom(s.roomType, s.id, s.name, s.capacity, s.params)
		if err != nil {
			return nil, fmt.Errorf("seed room %s: %w", s.id, err)
		}
		rooms = append(rooms, room)
	}

	return rooms, nil
}
