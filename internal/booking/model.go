package booking

import (
	"net/http"
	"time"

	"github.com/rentalops/fleet-dashboard/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "booking not found")
	ErrInvalidEndpoint = apperror.New(http.StatusBadRequest, "endpoint type must be pickup or return")
	ErrInvalidAnchor   = apperror.New(http.StatusBadRequest, "anchor must be a YYYY-MM-DD date")
)

// Endpoint names which end of a booking a card represents.
type Endpoint string

const (
	// EndpointPickup is bound to StartDate.
	EndpointPickup Endpoint = "pickup"
	// EndpointReturn is bound to EndDate.
	EndpointReturn Endpoint = "return"
)

// Valid reports whether e is a known endpoint type.
func (e Endpoint) Valid() bool {
	return e == EndpointPickup || e == EndpointReturn
}

// Booking is a vehicle reservation spanning a pickup and a return at one
// station. StartDate <= EndDate is assumed from the remote source and never
// enforced locally; a reschedule may invert the range.
type Booking struct {
	ID                    string
	CustomerName          string
	PickupReturnStationID string
	StartDate             time.Time
	EndDate               time.Time
}

// Clone returns a copy so store snapshots cannot be mutated by callers.
func (b *Booking) Clone() *Booking {
	c := *b
	return &c
}
