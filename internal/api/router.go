package api

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rentalops/fleet-dashboard/internal/booking"
	bookingHttp "github.com/rentalops/fleet-dashboard/internal/booking/http"
	"github.com/rentalops/fleet-dashboard/internal/logging"
	"github.com/rentalops/fleet-dashboard/internal/station"
	stationHttp "github.com/rentalops/fleet-dashboard/internal/station/http"
	"github.com/rentalops/fleet-dashboard/internal/web"
)

// Config carries everything the router needs.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	Logger         zerolog.Logger
	StationService station.Service
	BookingService booking.Service
	DefaultAnchor  time.Time
}

// NewRouter initializes the HTTP router engine: middleware, the dashboard
// page and the JSON API routes for each module.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Recovery turns panics into 500s; every request gets one log line.
	r.Use(logging.RequestLogger(cfg.Logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:8080"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type"}
	r.Use(cors.New(corsConfig))

	// Dashboard page
	web.NewHandler(cfg.DefaultAnchor).Register(r)

	// JSON API consumed by the page
	stationHandler := stationHttp.NewHandler(cfg.StationService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService, cfg.StationService, cfg.DefaultAnchor, cfg.Logger)

	api := r.Group("/api")
	{
		stationHttp.RegisterRoutes(api, stationHandler)
		bookingHttp.RegisterRoutes(api, bookingHandler)
	}

	return r
}
