package facility

import (
	"net/http"
	"strconv"
	"time"

	"fitcircle/internal/api"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

type CountRequest struct {
	Count *int `json:"count,omitempty" example:"1"`
}

type CapacityRequest struct {
	MaxCapacity int `json:"max_capacity" example:"30"`
}

type RateRequest struct {
	HourlyRate decimal.Decimal `json:"hourly_rate" swaggertype:"string" example:"22.50"`
}

type AvailabilityRequest struct {
	Available *bool  `json:"available" binding:"required" example:"false"`
	Reason    string `json:"reason,omitempty" example:"broken air conditioning"`
}

type MaintenanceRequest struct {
	ScheduledAt time.Time `json:"scheduled_at" binding:"required" example:"2026-11-01T08:00:00Z"`
}

type SessionCostResponse struct {
	Minutes int             `json:"minutes" example:"45"`
	Cost    decimal.Decimal `json:"cost" swaggertype:"string" example:"11.25"`
}

func records(list []*Facility) []Record {
	out := make([]Record, 0, len(list))
	for _, f := range list {
		out = append(out, f.Record())
	}
	return out
}

// @Summary      List facility kinds
// @Tags         facilities
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} facility.KindView
// @Router       /facility-kinds [get]
func (h *Handler) ListKinds(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.ListKinds())
}

// @Summary      Get a facility kind
// @Tags         facilities
// @Produce      json
// @Security     BearerAuth
// @Param        code path int true "Kind code"
// @Success      200 {object} facility.KindView
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /facility-kinds/{code} [get]
func (h *Handler) GetKind(c *gin.Context) {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid code", Kind: "validation"})
		return
	}

	view, err := h.service.GetKind(code)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary      Create a facility
// @Description  Admin-only: add a facility to a gym
// @Tags         admin,facilities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Gym ID"
// @Param        request body facility.CreateFacilityRequest true "Facility payload"
// @Success      201 {object} facility.Record
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /gyms/{id}/facilities [post]
func (h *Handler) Create(c *gin.Context) {
	gymID, ok := api.UUIDParam(c, "id")
	if !ok {
		return
	}

	var req CreateFacilityRequest
	if !api.BindJSON(c, &req) {
		return
	}

	f, err := h.service.Create(c.Request.Context(), gymID, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, f.Record())
}

// @Summary      List a gym's facilities
// @Tags         facilities
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Gym ID"
// @Success      200 {array} facility.Record
// @Failure      400 {object} api.ErrorResponse
// @Router       /gyms/{id}/facilities [get]
func (h *Handler) ListByGym(c *gin.Context) {
	gymID, ok := api.UUIDParam(c, "id")
	if !ok {
		return
	}

	list, err := h.service.ListByGym(c.Request.Context(), gymID)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records(list))
}

// @Summary      Get a facility
// @Tags         facilities
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Facility ID"
// @Success      200 {object} facility.Record
// @Failure      404 {object} api.ErrorResponse
// @Router       /facilities/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := api.UUIDParam(c, "id")
	if !ok {
		return
	}

	f, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, f.Record())
}

func countFrom(req CountRequest) int {
	if req.Count == nil {
		return 1
	}
	return *req.Count
}

// @Summary      Check people into a facility
// @Description  Count defaults to 1
// @Tags         facilities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Facility ID"
// @Param        request body facility.CountRequest false "Headcount"
// @Success      200 {object} facility.Record
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /facilities/{id}/check-in [post]
func (h *Handler) CheckIn(c *gin.Context) {
	id, ok := api.UUIDParam(c, "id")
	if !ok {
		return
	}

	var req CountRequest
	if !api.BindOptionalJSON(c, &req) {
		return
	}

	f, err := h.service.CheckIn(c.Request.Context(), id, countFrom(req))
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, f.Record())
}

// @Summary      Check people out of a facility
// @Description  Count defaults to 1
// @Tags         facilities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Facility ID"
// @Param        request body facility.CountRequest false "Headcount"
// @Success      200 {object} facility.Record
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /facilities/{id}/check-out [post]
func (h *Handler) CheckOut(c *gin.Context) {
	id, ok := api.UUIDParam(c, "id")
	if !ok {
		return
	}

	var req CountRequest
	if !api.BindOptionalJSON(c, &req) {
		return
	}

	f, err := h.service.CheckOut(c.Request.Context(), id, countFrom(req))
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, f.Record())
}

// @Summary      Change facility capacity
// @Tags         admin,facilities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Facility ID"
// @Param        request body facility.CapacityRequest true "New capacity"
// @Success      200 {object} facility.Record
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /facilities/{id}/capacity [post]
func (h *Handler) UpdateCapacity(c *gin.Context) {
	id, ok := api.UUIDParam(c, "id")
	if !ok {
		return
	}

	var req CapacityRequest
	if !api.BindJSON(c, &req) {
		return
	}

	f, err := h.service.UpdateCapacity(c.Request.Context(), id, req.MaxCapacity)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, f.Record())
}

// @Summary      Change facility hourly rate
// @Tags         admin,facilities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Facility ID"
// @Param        request body facility.RateRequest true "New rate"
// @Success      200 {object} facility.Record
// @Failure      400 {object} api.ErrorResponse
// @Router       /facilities/{id}/rate [post]
func (h *Handler) UpdateRate(c *gin.Context) {
	id, ok := api.UUIDParam(c, "id")
	if !ok {
		return
	}

	var req RateRequest
	if !api.BindJSON(c, &req) {
		return
	}

	f, err := h.service.UpdateHourlyRate(c.Request.Context(), id, req.HourlyRate)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, f.Record())
}

// @Summary      Open or close a facility
// @Tags         admin,facilities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Facility ID"
// @Param        request body facility.AvailabilityRequest true "Availability"
// @Success      200 {object} facility.Record
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /facilities/{id}/availability [post]
func (h *Handler) SetAvailability(c *gin.Context) {
	id, ok := api.UUIDParam(c, "id")
	if !ok {
		return
	}

	var req AvailabilityRequest
	if !api.BindJSON(c, &req) {
		return
	}

	f, err := h.service.SetAvailability(c.Request.Context(), id, *req.Available, req.Reason)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, f.Record())
}

// @Summary      Schedule maintenance
// @Description  Closes the facility immediately
// @Tags         admin,facilities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Facility ID"
// @Param        request body facility.MaintenanceRequest true "Maintenance date"
// @Success      200 {object} facility.Record
// @Failure      400 {object} api.ErrorResponse
// @Router       /facilities/{id}/maintenance [post]
func (h *Handler) ScheduleMaintenance(c *gin.Context) {
	id, ok := api.UUIDParam(c, "id")
	if !ok {
		return
	}

	var req MaintenanceRequest
	if !api.BindJSON(c, &req) {
		return
	}

	f, err := h.service.ScheduleMaintenance(c.Request.Context(), id, req.ScheduledAt)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, f.Record())
}

// @Summary      Complete maintenance
// @Tags         admin,facilities
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Facility ID"
// @Success      200 {object} facility.Record
// @Failure      409 {object} api.ErrorResponse
// @Router       /facilities/{id}/maintenance/complete [post]
func (h *Handler) CompleteMaintenance(c *gin.Context) {
	id, ok := api.UUIDParam(c, "id")
	if !ok {
		return
	}

	f, err := h.service.CompleteMaintenance(c.Request.Context(), id)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, f.Record())
}

// @Summary      Price a session
// @Description  Minutes defaults to the kind's recommended session length
// @Tags         facilities
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Facility ID"
// @Param        minutes query int false "Session length in minutes"
// @Success      200 {object} facility.SessionCostResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /facilities/{id}/session-cost [get]
func (h *Handler) SessionCost(c *gin.Context) {
	id, ok := api.UUIDParam(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	minutes, ok := api.IntQuery(c, "minutes", 0)
	if !ok {
		return
	}
	if c.Query("minutes") == "" {
		f, err := h.service.Get(ctx, id)
		if err != nil {
			api.RespondError(c, err)
			return
		}
		minutes = int(f.Kind().RecommendedSessionDuration() / time.Minute)
	}

	cost, err := h.service.SessionCost(ctx, id, time.Duration(minutes)*time.Minute)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SessionCostResponse{Minutes: minutes, Cost: cost})
}

// @Summary      Delete a facility
// @Tags         admin,facilities
// @Security     BearerAuth
// @Param        id path string true "Facility ID"
// @Success      204
// @Failure      404 {object} api.ErrorResponse
// @Router       /facilities/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := api.UUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		api.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
