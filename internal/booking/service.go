package booking

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rentalops/fleet-dashboard/internal/calendar"
)

// rescheduledBy tags the audit record of a reschedule. There is no user
// identity in the system, so every edit is attributed to the station role.
const rescheduledBy = "station-employee"

// Week is one Sunday-to-Saturday view of a station's bookings.
type Week struct {
	StationID string
	Label     string
	Days      [calendar.DaysPerWeek]Day
}

// Day is a single cell of the week grid.
type Day struct {
	Date  time.Time
	Today bool
	Slots []Slot
}

// Slot is one booking occupying a day. Pickup and Return mark whether that
// day is the booking's pickup or return day; both may be set for a one-day
// booking.
type Slot struct {
	Booking *Booking
	Pickup  bool
	Return  bool
}

// Detail is the drill-down view of one booking.
type Detail struct {
	Booking      *Booking
	DurationDays int
	FromFallback bool
}

type Service interface {
	// Week fetches the station's bookings fresh and buckets them into the
	// Sunday-to-Saturday window containing the anchor. A failed fetch is
	// logged and yields an empty week.
	Week(ctx context.Context, stationID string, anchor time.Time) *Week

	// Detail fetches a single booking, falling back to the locally held copy
	// (including local reschedule edits) when the remote source fails.
	Detail(ctx context.Context, stationID, bookingID string) (*Detail, error)

	// Reschedule moves one endpoint of a held booking to the target day.
	// The edit is a local projection only: the conceptual PUT is written to
	// the audit log but never sent to the remote source.
	Reschedule(ctx context.Context, stationID, bookingID string, day time.Time, endpoint Endpoint) (*Booking, error)
}

type service struct {
	repo  Repository
	store *Store
	log   zerolog.Logger
}

func NewService(repo Repository, store *Store, log zerolog.Logger) Service {
	return &service{
		repo:  repo,
		store: store,
		log:   log,
	}
}

func (s *service) Week(ctx context.Context, stationID string, anchor time.Time) *Week {
	days := calendar.WeekWindow(anchor)

	gen := s.store.Begin(stationID)
	bookings, err := s.repo.ListByStation(ctx, stationID)
	if err != nil {
		s.log.Warn().Err(err).Str("station_id", stationID).Msg("booking fetch failed, showing empty week")
		s.store.Fail(gen)
	} else if !s.store.Complete(gen, bookings) {
		s.log.Debug().Str("station_id", stationID).Uint64("generation", gen).Msg("discarding stale booking fetch")
	}

	week := &Week{
		StationID: stationID,
		Label:     calendar.RangeLabel(days[0], days[calendar.DaysPerWeek-1]),
	}

	now := time.Now()
	for i, day := range days {
		cell := Day{
			Date:  day,
			Today: calendar.SameDay(day, now),
		}
		for _, b := range s.store.ForDay(day) {
			cell.Slots = append(cell.Slots, Slot{
				Booking: b,
				Pickup:  calendar.SameDay(b.StartDate, day),
				Return:  calendar.SameDay(b.EndDate, day),
			})
		}
		week.Days[i] = cell
	}

	return week
}

func (s *service) Detail(ctx context.Context, stationID, bookingID string) (*Detail, error) {
	b, err := s.repo.GetByID(ctx, stationID, bookingID)
	if err != nil {
		s.log.Warn().Err(err).
			Str("station_id", stationID).
			Str("booking_id", bookingID).
			Msg("booking detail fetch failed, falling back to local copy")

		local, ok := s.store.Get(stationID, bookingID)
		if !ok {
			return nil, ErrNotFound
		}
		return &Detail{
			Booking:      local,
			DurationDays: calendar.DurationDays(local.StartDate, local.EndDate),
			FromFallback: true,
		}, nil
	}

	return &Detail{
		Booking:      b,
		DurationDays: calendar.DurationDays(b.StartDate, b.EndDate),
	}, nil
}

func (s *service) Reschedule(ctx context.Context, stationID, bookingID string, day time.Time, endpoint Endpoint) (*Booking, error) {
	if !endpoint.Valid() {
		return nil, ErrInvalidEndpoint
	}

	updated, ok := s.store.Reschedule(bookingID, day, endpoint)
	if !ok {
		return nil, ErrNotFound
	}

	// The remote contract is read-only. The request this edit would issue is
	// recorded here and nowhere else.
	s.log.Info().
		Str("audit_id", uuid.NewString()).
		Str("method", http.MethodPut).
		Str("path", fmt.Sprintf("/stations/%s/bookings/%s", stationID, bookingID)).
		Str("endpoint", string(endpoint)).
		Str("rescheduled_by", rescheduledBy).
		Time("rescheduled_at", time.Now()).
		Time("start_date", updated.StartDate).
		Time("end_date", updated.EndDate).
		Msg("reschedule applied locally, remote call not issued")

	return updated, nil
}
