package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rentalops/fleet-dashboard/internal/api"
	"github.com/rentalops/fleet-dashboard/internal/booking"
	"github.com/rentalops/fleet-dashboard/internal/fleetapi"
	"github.com/rentalops/fleet-dashboard/internal/station"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction    bool
	ProdOrigins     string
	APIBaseURL      string
	APITimeout      time.Duration
	StationCacheTTL time.Duration
	DefaultAnchor   time.Time
	Logger          zerolog.Logger
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router *gin.Engine
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// Remote fleet API client, shared by both modules
	client := fleetapi.NewClient(cfg.APIBaseURL, cfg.APITimeout)

	// Station module
	stationRepo := station.NewAPIRepository(client)
	stationService := station.NewService(stationRepo, cfg.StationCacheTTL, cfg.Logger)

	// Booking module
	bookingRepo := booking.NewAPIRepository(client)
	bookingStore := booking.NewStore()
	bookingService := booking.NewService(bookingRepo, bookingStore, cfg.Logger)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		Logger:         cfg.Logger,
		StationService: stationService,
		BookingService: bookingService,
		DefaultAnchor:  cfg.DefaultAnchor,
	})

	return &Container{
		Router: router,
	}
}
