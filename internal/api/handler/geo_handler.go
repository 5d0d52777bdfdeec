package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cartowiki/webapp/internal/core/ports"
)

// GeoHandler proxies city GeoJSON from the upstream GeoServer WFS service.
type GeoHandler struct {
	service ports.GeoService
}

func NewGeoHandler(service ports.GeoService) *GeoHandler {
	return &GeoHandler{service: service}
}

// Cities returns the GeoJSON feature collection of cities for a year.
//
// @Summary      City features for a year
// @Tags         geo
// @Produce      json
// @Security     BearerAuth
// @Param        year  query     string  true  "Year, may be negative"
// @Success      200   {string}  string  "GeoJSON feature collection"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/geojson [get]
func (h *GeoHandler) Cities(c echo.Context) error {
	year := c.QueryParam("year")
	if year == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing year")
	}

	payload, err := h.service.CitiesByYear(c.Request().Context(), year)
	if err != nil {
		return err
	}

	return c.JSONBlob(http.StatusOK, payload)
}
