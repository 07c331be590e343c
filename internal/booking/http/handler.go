package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rentalops/fleet-dashboard/internal/booking"
	"github.com/rentalops/fleet-dashboard/internal/pkg/response"
	"github.com/rentalops/fleet-dashboard/internal/station"
	stationHttp "github.com/rentalops/fleet-dashboard/internal/station/http"
)

type Handler struct {
	service        booking.Service
	stationService station.Service
	defaultAnchor  time.Time
	log            zerolog.Logger
}

func NewHandler(service booking.Service, stationService station.Service, defaultAnchor time.Time, log zerolog.Logger) *Handler {
	return &Handler{
		service:        service,
		stationService: stationService,
		defaultAnchor:  defaultAnchor,
		log:            log,
	}
}

// Calendar serves one week of a station's bookings. The anchor query
// parameter selects the week; without it the configured initial week shows.
func (h *Handler) Calendar(c *gin.Context) {
	stationID := c.Param("stationID")

	var req CalendarRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, booking.ErrInvalidAnchor)
		return
	}

	anchor, err := req.AnchorTime(h.defaultAnchor)
	if err != nil {
		response.Error(c, booking.ErrInvalidAnchor)
		return
	}

	week := h.service.Week(c.Request.Context(), stationID, anchor)

	c.JSON(http.StatusOK, NewWeekResponse(week))
}

// Detail serves the drill-down view of one booking.
func (h *Handler) Detail(c *gin.Context) {
	stationID := c.Param("stationID")
	bookingID := c.Param("bookingID")

	d, err := h.service.Detail(c.Request.Context(), stationID, bookingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	tag := stationHttp.StationTag{ID: stationID}
	if st, ok := h.stationService.GetByID(c.Request.Context(), stationID); ok {
		tag.Name = st.Name
	}

	c.JSON(http.StatusOK, NewDetailResponse(d, tag))
}

// Reschedule applies a dropped booking card to its target day. A payload
// that does not parse is logged and rejected without touching any state.
func (h *Handler) Reschedule(c *gin.Context) {
	stationID := c.Param("stationID")
	bookingID := c.Param("bookingID")

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn().Err(err).
			Str("booking_id", bookingID).
			Msg("malformed reschedule payload")
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid reschedule payload"})
		return
	}

	day, err := time.ParseInLocation(dayFormat, req.Date, time.Local)
	if err != nil {
		h.log.Warn().Err(err).
			Str("booking_id", bookingID).
			Msg("malformed reschedule date")
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid reschedule payload"})
		return
	}

	b, err := h.service.Reschedule(c.Request.Context(), stationID, bookingID, day, booking.Endpoint(req.Type))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}
