package trainer

import (
	"net/http"

	"fitcircle/internal/api"
	"fitcircle/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      Add a trainer to a gym
// @Tags         admin,trainers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Gym ID"
// @Param        request body trainer.TrainerRequest true "Trainer"
// @Success      201 {object} trainer.View
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /gyms/{id}/trainers [post]
func (h *Handler) Create(c *gin.Context) {
	gymID, ok := api.UUIDParam(c, "id")
	if !ok {
		return
	}
	var req TrainerRequest
	if !api.BindJSON(c, &req) {
		return
	}

	t, err := h.service.Create(c.Request.Context(), gymID, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t.View())
}

// @Summary      Get a trainer with ratings
// @Tags         trainers
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Trainer ID"
// @Success      200 {object} trainer.View
// @Failure      404 {object} api.ErrorResponse
// @Router       /trainers/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := api.UUIDParam(c, "id")
	if !ok {
		return
	}

	t, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t.View())
}

// @Summary      Update a trainer profile
// @Tags         admin,trainers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Trainer ID"
// @Param        request body trainer.ProfileRequest true "Profile"
// @Success      200 {object} trainer.View
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /trainers/{id} [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
	id, ok := api.UUIDParam(c, "id")
	if !ok {
		return
	}
	var req ProfileRequest
	if !api.BindJSON(c, &req) {
		return
	}

	t, err := h.service.UpdateProfile(c.Request.Context(), id, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t.View())
}

// @Summary      Rate a trainer
// @Tags         trainers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Trainer ID"
// @Param        request body trainer.RatingRequest true "Rating"
// @Success      201 {object} trainer.RatingRecord
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /trainers/{id}/ratings [post]
func (h *Handler) Rate(c *gin.Context) {
	p, ok := auth.MustPrincipal(c)
	if !ok {
		return
	}
	id, ok := api.UUIDParam(c, "id")
	if !ok {
		return
	}
	var req RatingRequest
	if !api.BindJSON(c, &req) {
		return
	}

	r, err := h.service.Rate(c.Request.Context(), p, id, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, r.Record())
}

// @Summary      Edit a rating
// @Tags         trainers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Rating ID"
// @Param        request body trainer.UpdateRatingRequest true "Rating"
// @Success      200 {object} trainer.RatingRecord
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /ratings/{id} [put]
func (h *Handler) UpdateRating(c *gin.Context) {
	p, ok := auth.MustPrincipal(c)
	if !ok {
		return
	}
	id, ok := api.UUIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateRatingRequest
	if !api.BindJSON(c, &req) {
		return
	}

	r, err := h.service.UpdateRating(c.Request.Context(), p, id, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, r.Record())
}

func (h *Handler) setActive(c *gin.Context, active bool) {
	id, ok := api.UUIDParam(c, "id")
	if !ok {
		return
	}

	r, err := h.service.SetRatingActive(c.Request.Context(), id, active)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, r.Record())
}

// @Summary      Hide a rating
// @Tags         admin,trainers
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Rating ID"
// @Success      200 {object} trainer.RatingRecord
// @Failure      404 {object} api.ErrorResponse
// @Router       /ratings/{id}/deactivate [post]
func (h *Handler) DeactivateRating(c *gin.Context) {
	h.setActive(c, false)
}

// @Summary      Restore a hidden rating
// @Tags         admin,trainers
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Rating ID"
// @Success      200 {object} trainer.RatingRecord
// @Failure      404 {object} api.ErrorResponse
// @Router       /ratings/{id}/activate [post]
func (h *Handler) ActivateRating(c *gin.Context) {
	h.setActive(c, true)
}
