package booking

import (
	"sync"
	"time"

	"github.com/rentalops/fleet-dashboard/internal/calendar"
)

// Store is the single owner of the week-view state: the bookings loaded for
// the currently viewed station plus any local reschedule edits.
//
// Every fetch cycle goes through Begin/Complete with a generation token.
// Only the most recently begun fetch may publish its result, so a slow
// response for a previously viewed station can never overwrite the list the
// user is looking at now. Each published fetch replaces the whole list,
// which is also what discards local reschedule edits on station or week
// changes.
type Store struct {
	mu        sync.Mutex
	gen       uint64
	stationID string
	bookings  []*Booking
}

func NewStore() *Store {
	return &Store{}
}

// Begin registers a new fetch for a station and returns its generation
// token. The currently held bookings stay visible until the fetch settles.
func (s *Store) Begin(stationID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	s.stationID = stationID
	return s.gen
}

// Complete publishes fetched bookings. Stale generations are discarded and
// reported as false.
func (s *Store) Complete(gen uint64, bookings []*Booking) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return false
	}

	s.bookings = make([]*Booking, len(bookings))
	for i, b := range bookings {
		s.bookings[i] = b.Clone()
	}
	return true
}

// Fail empties the list for a failed fetch, unless a newer fetch has been
// begun in the meantime.
func (s *Store) Fail(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return
	}
	s.bookings = nil
}

// ForDay returns copies of all held bookings occupying the given day.
func (s *Store) ForDay(day time.Time) []*Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*Booking
	for _, b := range s.bookings {
		if calendar.Occupies(b.StartDate, b.EndDate, day) {
			out = append(out, b.Clone())
		}
	}
	return out
}

// Get returns a copy of one held booking, provided the held list was loaded
// for the given station.
func (s *Store) Get(stationID, id string) (*Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if stationID != s.stationID {
		return nil, false
	}
	for _, b := range s.bookings {
		if b.ID == id {
			return b.Clone(), true
		}
	}
	return nil, false
}

// Reschedule moves one endpoint of a held booking to the target day and
// returns the updated copy. Only the bound endpoint changes; the other
// endpoint and all other bookings are untouched. The range is deliberately
// not validated, matching the remote source's own laxness.
func (s *Store) Reschedule(id string, day time.Time, endpoint Endpoint) (*Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.bookings {
		if b.ID != id {
			continue
		}

		if endpoint == EndpointPickup {
			b.StartDate = calendar.DayOf(day)
		} else {
			b.EndDate = calendar.DayOf(day)
		}
		return b.Clone(), true
	}
	return nil, false
}
