package ui

import (
	"net/http"

	"climatelens/app"
	"climatelens/domain/weather"
	"climatelens/internal/errors"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"dataset_id":   s.store.ID().String(),
		"loaded_at":    s.store.LoadedAt(),
		"city_count":   s.store.CityCount(),
		"record_count": s.store.RecordCount(),
	})
}

func (s *Server) handleContinents(c *gin.Context) {
	continents := s.store.Continents()
	c.JSON(http.StatusOK, gin.H{
		"continents": continents,
		"count":      len(continents),
	})
}

func (s *Server) handleCities(c *gin.Context) {
	continent := c.Query("continent")
	if continent == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "continent query parameter is required"})
		return
	}

	cities := s.store.Cities(continent)
	if cities == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "continent " + continent + " not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"continent": continent,
		"cities":    cities,
		"count":     len(cities),
	})
}

func (s *Server) handleDashboard(c *gin.Context) {
	unit, err := weather.ParseUnit(c.Query("unit"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sel := app.Selection{
		Continent: c.Query("continent"),
		City:      c.Query("city"),
		Unit:      unit,
	}

	snap, err := s.dashboard.Snapshot(c.Request.Context(), sel)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"dashboard": snap,
		"insights":  buildInsights(snap),
	})
}

func (s *Server) handleForecast(c *gin.Context) {
	unit, err := weather.ParseUnit(c.Query("unit"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	city := c.Query("city")
	if city == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "city query parameter is required"})
		return
	}

	result, err := s.dashboard.ForecastSeries(c.Request.Context(), city, unit)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"city": city, "unit": unit, "forecast": result})
}

func (s *Server) handleChoropleth(c *gin.Context) {
	unit, err := weather.ParseUnit(c.Query("unit"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	countries := s.dashboard.CountryMeans(unit)
	c.JSON(http.StatusOK, gin.H{"unit": unit, "countries": countries, "count": len(countries)})
}

func (s *Server) handleYearlyChoropleth(c *gin.Context) {
	unit, err := weather.ParseUnit(c.Query("unit"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	frames := s.dashboard.YearlyCountryMeans(unit)
	c.JSON(http.StatusOK, gin.H{"unit": unit, "frames": frames, "count": len(frames)})
}

// renderError maps application error codes onto HTTP statuses.
func (s *Server) renderError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.CodeNotFound:
		status = http.StatusNotFound
	case errors.CodeInvalidInput:
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("[Server] %v", err)
	}
	c.JSON(status, gin.H{"error": err.Error(), "code": errors.GetCode(err)})
}
