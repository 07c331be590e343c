package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentalops/fleet-dashboard/internal/pkg/response"
	"github.com/rentalops/fleet-dashboard/internal/station"
)

type stubRepository struct {
	stations []*station.Station
	err      error
}

func (s *stubRepository) List(ctx context.Context) ([]*station.Station, error) {
	return s.stations, s.err
}

func newTestRouter(repo station.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := station.NewService(repo, time.Minute, zerolog.Nop())
	r := gin.New()
	RegisterRoutes(r.Group("/api"), NewHandler(svc))
	return r
}

func TestSearchEndpoint(t *testing.T) {
	router := newTestRouter(&stubRepository{stations: []*station.Station{
		{ID: "1", Name: "Central Station"},
		{ID: "2", Name: "North Station"},
	}})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/stations?q=central", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp response.ListResponse[StationResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Central Station", resp.Items[0].Name)
}

func TestSearchEndpointRemoteFailure(t *testing.T) {
	router := newTestRouter(&stubRepository{err: errors.New("remote down")})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/stations?q=central", nil)
	router.ServeHTTP(w, req)

	// Fetch failures degrade to an empty suggestion list, never an error.
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"items":[]}`, w.Body.String())
}
