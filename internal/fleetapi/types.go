package fleetapi

import "time"

// Station is a rental station as returned by the remote API.
type Station struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Booking is a vehicle booking as returned by the remote API.
// Dates arrive as ISO-8601 strings and unmarshal straight into time.Time.
type Booking struct {
	ID                    string    `json:"id"`
	CustomerName          string    `json:"customerName"`
	PickupReturnStationID string    `json:"pickupReturnStationId"`
	StartDate             time.Time `json:"startDate"`
	EndDate               time.Time `json:"endDate"`
}
