package gym

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

// @Summary      Create a gym
// @Tags         admin,gyms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body gym.GymRequest true "Gym payload"
// @Success      201 {object} gym.View
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /gyms [post]
func (h *Handler) Create(c *gin.Context) {
	var req GymRequest
	if !api.BindJSON(c, &req) {
		return
	}

	g, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.service.View(g))
}

// @Summary      List gyms
// @Tags         gyms
// @Produce      json
// @Security     BearerAuth
// @Param        city_id query string false "City ID"
// @Success      200 {array} gym.View
// @Failure      400 {object} api.ErrorResponse
// @Router       /gyms [get]
func (h *Handler) List(c *gin.Context) {
	var cityID *uuid.UUID
	if raw := c.Query("city_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid city_id", Kind: "validation"})
			return
		}
		cityID = &id
	}

	gyms, err := h.service.List(c.Request.Context(), cityID)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	out := make([]View, 0, len(gyms))
	for _, g := range gyms {
		out = append(out, h.service.View(g))
	}
	c.JSON(http.StatusOK, out)
}

// @Summary      Get a gym
// @Tags         gyms
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Gym ID"
// @Success      200 {object} gym.View
// @Failure      404 {object} api.ErrorResponse
// @Router       /gyms/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := api.UUIDParam(c, "id")
	if !ok {
		return
	}

	g, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.service.View(g))
}

// @Summary      Update a gym
// @Tags         admin,gyms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Gym ID"
// @Param        request body gym.GymRequest true "Gym payload"
// @Success      200 {object} gym.View
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /gyms/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := api.UUIDParam(c, "id")
	if !ok {
		return
	}

	var req GymRequest
	if !api.BindJSON(c, &req) {
		return
	}

	g, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.service.View(g))
}
