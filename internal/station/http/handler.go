package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rentalops/fleet-dashboard/internal/pkg/response"
	"github.com/rentalops/fleet-dashboard/internal/station"
)

type Handler struct {
	service station.Service
}

func NewHandler(service station.Service) *Handler {
	return &Handler{service: service}
}

// Search serves the autocomplete suggestions. A failed remote fetch is not an
// error here: the list simply comes back empty.
func (h *Handler) Search(c *gin.Context) {
	query := c.Query("q")

	stations := h.service.Search(c.Request.Context(), query)

	items := make([]StationResponse, len(stations))
	for i, s := range stations {
		items[i] = NewStationResponse(s)
	}

	c.JSON(http.StatusOK, response.NewListResponse(items))
}
