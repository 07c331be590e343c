package fleetapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Client is a read-only client for the remote fleet booking API.
// The API exposes stations and their bookings; nothing is ever written back.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new fleet API client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ListStations retrieves the full station list.
func (c *Client) ListStations(ctx context.Context) ([]Station, error) {
	var stations []Station
	if err := c.getJSON(ctx, "/stations", &stations); err != nil {
		return nil, err
	}
	return stations, nil
}

// ListBookings retrieves all bookings for a station.
func (c *Client) ListBookings(ctx context.Context, stationID string) ([]Booking, error) {
	path := fmt.Sprintf("/stations/%s/bookings", url.PathEscape(stationID))

	var bookings []Booking
	if err := c.getJSON(ctx, path, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// GetBooking retrieves a single booking of a station.
func (c *Client) GetBooking(ctx context.Context, stationID, bookingID string) (*Booking, error) {
	path := fmt.Sprintf("/stations/%s/bookings/%s", url.PathEscape(stationID), url.PathEscape(bookingID))

	var booking Booking
	if err := c.getJSON(ctx, path, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}
