package station

import (
	"context"

	"github.com/rentalops/fleet-dashboard/internal/fleetapi"
)

// Repository provides access to the station list.
type Repository interface {
	List(ctx context.Context) ([]*Station, error)
}

type apiRepository struct {
	client *fleetapi.Client
}

// NewAPIRepository creates a Repository backed by the remote fleet API.
func NewAPIRepository(client *fleetapi.Client) Repository {
	return &apiRepository{client: client}
}

func (r *apiRepository) List(ctx context.Context) ([]*Station, error) {
	remote, err := r.client.ListStations(ctx)
	if err != nil {
		return nil, err
	}

	stations := make([]*Station, len(remote))
	for i, s := range remote {
		stations[i] = &Station{
			ID:   s.ID,
			Name: s.Name,
		}
	}
	return stations, nil
}
