package location

import (
	"net/http"

	"fitcircle/internal/api"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      Create a country
// @Tags         admin,locations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body location.CreateCountryRequest true "Country"
// @Success      201 {object} location.Country
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /countries [post]
func (h *Handler) CreateCountry(c *gin.Context) {
	var req CreateCountryRequest
	if !api.BindJSON(c, &req) {
		return
	}

	country, err := h.service.CreateCountry(c.Request.Context(), req)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, country)
}

// @Summary      List countries
// @Tags         locations
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} location.Country
// @Router       /countries [get]
func (h *Handler) ListCountries(c *gin.Context) {
	countries, err := h.service.ListCountries(c.Request.Context())
	if err != nil {
		api.RespondError(c, err)
		return
	}
	if countries == nil {
		countries = []Country{}
	}
	c.JSON(http.StatusOK, countries)
}

// @Summary      Create a city
// @Tags         admin,locations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body location.CreateCityRequest true "City"
// @Success      201 {object} api.IDResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /cities [post]
func (h *Handler) CreateCity(c *gin.Context) {
	var req CreateCityRequest
	if !api.BindJSON(c, &req) {
		return
	}

	city, err := h.service.CreateCity(c.Request.Context(), req)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, api.IDResponse{ID: city.ID.String()})
}

// @Summary      List cities
// @Tags         locations
// @Produce      json
// @Security     BearerAuth
// @Param        country_id query string false "Country ID"
// @Success      200 {array} location.City
// @Failure      400 {object} api.ErrorResponse
// @Router       /cities [get]
func (h *Handler) ListCities(c *gin.Context) {
	var countryID *uuid.UUID
	if raw := c.Query("country_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid country_id", Kind: "validation"})
			return
		}
		countryID = &id
	}

	cities, err := h.service.ListCities(c.Request.Context(), countryID)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	if cities == nil {
		cities = []City{}
	}
	c.JSON(http.StatusOK, cities)
}

// @Summary      Delete a city
// @Tags         admin,locations
// @Security     BearerAuth
// @Param        id path string true "City ID"
// @Success      204
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /cities/{id} [delete]
func (h *Handler) DeleteCity(c *gin.Context) {
	id, ok := api.UUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteCity(c.Request.Context(), id); err != nil {
		api.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
