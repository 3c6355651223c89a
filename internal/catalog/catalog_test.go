package catalog

import (
	"testing"

	"github.com/stpnv0/RoomReserve/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_GetAndList(t *testing.T) {
	rooms, err := DefaultRooms()
	require.NoError(t, err)

	c, err := New(rooms...)
	require.NoError(t, err)

	room, err := c.Get("CL-101")
	require.NoError(t, err)
	assert.Equal(t, "Python Programming Lab", room.Name)
	assert.Equal(t, domain.RoomTypeClassroom, room.Type)

	list := c.List()
	assert.Len(t, list, 8)
	assert.Equal(t, "CL-101", list[0].ID)
	assert.Equal(t, "CL-402", list[7].ID)
}

func TestCatalog_Get_NotFound(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	_, err = c.Get("CL-999")
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestCatalog_RejectsDuplicateIDs(t *testing.T) {
	room1, err := domain.NewRoom(domain.RoomTypeClassroom, "CL-101", "First", 10, domain.RoomParams{})
	require.NoError(t, err)
	room2, err := domain.NewRoom(domain.RoomTypeConference, "CL-101", "Second", 12, domain.RoomParams{})
	require.NoError(t, err)

	_, err = New(room1, room2)
	require.Error(t, err)
}

func TestDefaultRooms_ComputerLabWorkstations(t *testing.T) {
	rooms, err := DefaultRooms()
	require.NoError(t, err)

	c, err := New(rooms...)
	require.NoError(t, err)

	lab, err := c.Get("CL-401")
	require.NoError(t, err)
	assert.Equal(t, 35, lab.Equipment["computers"])
}
