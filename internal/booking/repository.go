package booking

import (
	"context"

	"github.com/rentalops/fleet-dashboard/internal/fleetapi"
)

// Repository provides read access to the remote booking source.
// The source is read-only: reschedules are never written back.
type Repository interface {
	ListByStation(ctx context.Context, stationID string) ([]*Booking, error)
	GetByID(ctx context.Context, stationID, bookingID string) (*Booking, error)
}

type apiRepository struct {
	client *fleetapi.Client
}

// NewAPIRepository creates a Repository backed by the remote fleet API.
func NewAPIRepository(client *fleetapi.Client) Repository {
	return &apiRepository{client: client}
}

func (r *apiRepository) ListByStation(ctx context.Context, stationID string) ([]*Booking, error) {
	remote, err := r.client.ListBookings(ctx, stationID)
	if err != nil {
		return nil, err
	}

	bookings := make([]*Booking, len(remote))
	for i := range remote {
		bookings[i] = fromAPI(&remote[i])
	}
	return bookings, nil
}

func (r *apiRepository) GetByID(ctx context.Context, stationID, bookingID string) (*Booking, error) {
	remote, err := r.client.GetBooking(ctx, stationID, bookingID)
	if err != nil {
		return nil, err
	}
	return fromAPI(remote), nil
}

func fromAPI(b *fleetapi.Booking) *Booking {
	return &Booking{
		ID:                    b.ID,
		CustomerName:          b.CustomerName,
		PickupReturnStationID: b.PickupReturnStationID,
		StartDate:             b.StartDate,
		EndDate:               b.EndDate,
	}
}
