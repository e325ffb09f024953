package ui

import (
	"climatelens/app"
	"climatelens/internal"
	"climatelens/internal/dataset"

	"github.com/gin-gonic/gin"
)

// Server is the JSON API surface handing computed results to the
// presentation layer. It owns no state of its own; every request reads the
// immutable dataset store through the dashboard service.
type Server struct {
	router    *gin.Engine
	store     *dataset.Store
	dashboard *app.DashboardService
	logger    *internal.Logger
}

// NewServer creates the web server and registers its routes.
func NewServer(store *dataset.Store, dashboard *app.DashboardService, logger *internal.Logger) *Server {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	s := &Server{
		router:    gin.Default(),
		store:     store,
		dashboard: dashboard,
		logger:    logger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.GET("/healthz", s.handleHealth)

	api := s.router.Group("/api")
	{
		api.GET("/continents", s.handleContinents)
		api.GET("/cities", s.handleCities)
		api.GET("/dashboard", s.handleDashboard)
		api.GET("/forecast", s.handleForecast)
		api.GET("/choropleth", s.handleChoropleth)
		api.GET("/choropleth/yearly", s.handleYearlyChoropleth)
	}
}

// Router exposes the underlying engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts serving on the given address, blocking until shutdown.
func (s *Server) Run(addr string) error {
	s.logger.Info("[Server] Listening on %s (dataset %s, %d cities, %d records)",
		addr, s.store.ID(), s.store.CityCount(), s.store.RecordCount())
	return s.router.Run(addr)
}
