package http

import (
	"time"

	"github.com/rentalops/fleet-dashboard/internal/booking"
	stationHttp "github.com/rentalops/fleet-dashboard/internal/station/http"
)

const dayFormat = "2006-01-02"

// detailDateFormat mirrors the long en-US date shown in the detail view.
const detailDateFormat = "Monday, January 2, 2006"

// CalendarRequest binds the optional week anchor query parameter.
type CalendarRequest struct {
	Anchor string `form:"anchor" binding:"omitempty,datetime=2006-01-02"`
}

// AnchorTime parses the bound anchor, falling back when it is absent.
func (r *CalendarRequest) AnchorTime(fallback time.Time) (time.Time, error) {
	if r.Anchor == "" {
		return fallback, nil
	}
	return time.ParseInLocation(dayFormat, r.Anchor, time.Local)
}

// RescheduleRequest is the drop payload of a dragged booking card.
type RescheduleRequest struct {
	Type string `json:"type" binding:"required,oneof=pickup return"`
	Date string `json:"date" binding:"required,datetime=2006-01-02"`
}

// WeekResponse is one rendered week of a station's calendar.
type WeekResponse struct {
	StationID string        `json:"station_id"`
	Label     string        `json:"label"`
	Days      []DayResponse `json:"days"`
}

// DayResponse is a single day cell.
type DayResponse struct {
	Date       string         `json:"date"`
	Weekday    string         `json:"weekday"`
	DayOfMonth int            `json:"day_of_month"`
	Today      bool           `json:"today"`
	Bookings   []CardResponse `json:"bookings"`
}

// CardResponse is one booking chip within a day cell.
type CardResponse struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customer_name"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Pickup       bool      `json:"pickup"`
	Return       bool      `json:"return"`
}

func NewWeekResponse(w *booking.Week) WeekResponse {
	days := make([]DayResponse, len(w.Days))
	for i, d := range w.Days {
		cell := DayResponse{
			Date:       d.Date.Format(dayFormat),
			Weekday:    d.Date.Format("Mon"),
			DayOfMonth: d.Date.Day(),
			Today:      d.Today,
			Bookings:   make([]CardResponse, 0, len(d.Slots)),
		}
		for _, slot := range d.Slots {
			cell.Bookings = append(cell.Bookings, CardResponse{
				ID:           slot.Booking.ID,
				CustomerName: slot.Booking.CustomerName,
				StartDate:    slot.Booking.StartDate,
				EndDate:      slot.Booking.EndDate,
				Pickup:       slot.Pickup,
				Return:       slot.Return,
			})
		}
		days[i] = cell
	}

	return WeekResponse{
		StationID: w.StationID,
		Label:     w.Label,
		Days:      days,
	}
}

// BookingResponse is the full representation returned after a reschedule.
type BookingResponse struct {
	ID                    string    `json:"id"`
	CustomerName          string    `json:"customer_name"`
	PickupReturnStationID string    `json:"pickup_return_station_id"`
	StartDate             time.Time `json:"start_date"`
	EndDate               time.Time `json:"end_date"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:                    b.ID,
		CustomerName:          b.CustomerName,
		PickupReturnStationID: b.PickupReturnStationID,
		StartDate:             b.StartDate,
		EndDate:               b.EndDate,
	}
}

// DetailResponse is the drill-down view of one booking.
type DetailResponse struct {
	ID             string                 `json:"id"`
	CustomerName   string                 `json:"customer_name"`
	Station        stationHttp.StationTag `json:"station"`
	PickupDate     time.Time              `json:"pickup_date"`
	ReturnDate     time.Time              `json:"return_date"`
	PickupDateText string                 `json:"pickup_date_text"`
	ReturnDateText string                 `json:"return_date_text"`
	DurationDays   int                    `json:"duration_days"`
}

func NewDetailResponse(d *booking.Detail, station stationHttp.StationTag) DetailResponse {
	return DetailResponse{
		ID:             d.Booking.ID,
		CustomerName:   d.Booking.CustomerName,
		Station:        station,
		PickupDate:     d.Booking.StartDate,
		ReturnDate:     d.Booking.EndDate,
		PickupDateText: d.Booking.StartDate.In(time.Local).Format(detailDateFormat),
		ReturnDateText: d.Booking.EndDate.In(time.Local).Format(detailDateFormat),
		DurationDays:   d.DurationDays,
	}
}
