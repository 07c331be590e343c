package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/stations/:stationID")
	{
		group.GET("/calendar", h.Calendar)
		group.GET("/bookings/:bookingID", h.Detail)
		group.POST("/bookings/:bookingID/reschedule", h.Reschedule)
	}
}
