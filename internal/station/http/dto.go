package http

import (
	"github.com/rentalops/fleet-dashboard/internal/station"
)

// StationResponse is the public representation of a station.
type StationResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewStationResponse(s *station.Station) StationResponse {
	return StationResponse{
		ID:   s.ID,
		Name: s.Name,
	}
}

// StationTag is the compact station reference embedded in other responses.
type StationTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
