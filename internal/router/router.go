package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateReservation(c *ginext.Context)
	GetReservation(c *ginext.Context)
	ListReservations(c *ginext.Context)
	CancelReservation(c *ginext.Context)
	DeleteReservation(c *ginext.Context)
	ListRooms(c *ginext.Context)
	RoomAvailability(c *ginext.Context)
	GetStats(c *ginext.Context)
	GetAuditLog(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Reservations
		api.POST("/reservations", h.CreateReservation)
		api.GET("/reservations", h.ListReservations)
		api.GET("/reservations/:id", h.GetReservation)
		api.POST("/reservations/:id/cancel", h.CancelReservation)
		api.DELETE("/reservations/:id", h.DeleteReservation)

		// Rooms
		api.GET("/rooms", h.ListRooms)
		api.GET("/rooms/:id/availability", h.RoomAvailability)

		// Observability
		api.GET("/stats", h.GetStats)
		api.GET("/audit", h.GetAuditLog)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
