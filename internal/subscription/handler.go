package subscription

import (
	"net/http"
	"time"

	"fitcircle/internal/api"
	"fitcircle/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

type ExtendRequest struct {
	EndDate time.Time `json:"end_date" binding:"required" example:"2027-01-01T00:00:00Z"`
}

type CancelRequest struct {
	Reason string `json:"reason,omitempty" binding:"max=500" example:"moving to another city"`
}

type TrainerRequest struct {
	TrainerID uuid.UUID `json:"trainer_id" binding:"required" swaggertype:"string" example:"1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed"`
}

type AutoRenewalRequest struct {
	Enabled *bool `json:"enabled" binding:"required" example:"true"`
}

type AmountRequest struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"85.50"`
}

func views(list []*Subscription) []View {
	out := make([]View, 0, len(list))
	for _, s := range list {
		out = append(out, s.View())
	}
	return out
}

// action runs a service call against the subscription named by the :id
// path parameter and writes the result.
func (h *Handler) action(c *gin.Context, status int, call func(p auth.Principal, id uuid.UUID) (*Subscription, error)) {
	p, ok := auth.MustPrincipal(c)
	if !ok {
		return
	}
	id, ok := api.UUIDParam(c, "id")
	if !ok {
		return
	}

	sub, err := call(p, id)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(status, sub.View())
}

// @Summary      List subscription tiers
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} subscription.TierView
// @Router       /subscription-tiers [get]
func (h *Handler) Tiers(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Tiers())
}

// @Summary      Create a subscription
// @Description  Dates, amount and currency default from the tier. Only managers may override the price or subscribe other users.
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body subscription.CreateSubscriptionRequest true "Subscription payload"
// @Success      201 {object} subscription.View
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /subscriptions [post]
func (h *Handler) Create(c *gin.Context) {
	p, ok := auth.MustPrincipal(c)
	if !ok {
		return
	}

	var req CreateSubscriptionRequest
	if !api.BindJSON(c, &req) {
		return
	}

	sub, err := h.service.Create(c.Request.Context(), p, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sub.View())
}

// @Summary      List subscriptions
// @Description  Lists the caller's subscriptions, or another user's for managers
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        user_id query string false "User ID"
// @Success      200 {array} subscription.View
// @Failure      403 {object} api.ErrorResponse
// @Router       /subscriptions [get]
func (h *Handler) List(c *gin.Context) {
	p, ok := auth.MustPrincipal(c)
	if !ok {
		return
	}

	userID := p.UserID
	if raw := c.Query("user_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid user_id", Kind: "validation"})
			return
		}
		userID = parsed
	}

	list, err := h.service.ListForUser(c.Request.Context(), p, userID)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views(list))
}

// @Summary      Get a subscription
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Subscription ID"
// @Success      200 {object} subscription.View
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /subscriptions/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	h.action(c, http.StatusOK, func(p auth.Principal, id uuid.UUID) (*Subscription, error) {
		return h.service.Get(c.Request.Context(), p, id)
	})
}

// @Summary      Extend a subscription
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Subscription ID"
// @Param        request body subscription.ExtendRequest true "New end date"
// @Success      200 {object} subscription.View
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /subscriptions/{id}/extend [post]
func (h *Handler) Extend(c *gin.Context) {
	var req ExtendRequest
	if !api.BindJSON(c, &req) {
		return
	}
	h.action(c, http.StatusOK, func(p auth.Principal, id uuid.UUID) (*Subscription, error) {
		return h.service.Extend(c.Request.Context(), p, id, req.EndDate)
	})
}

// @Summary      Cancel a subscription
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Subscription ID"
// @Param        request body subscription.CancelRequest false "Reason"
// @Success      200 {object} subscription.View
// @Failure      409 {object} api.ErrorResponse
// @Router       /subscriptions/{id}/cancel [post]
func (h *Handler) Cancel(c *gin.Context) {
	var req CancelRequest
	if !api.BindOptionalJSON(c, &req) {
		return
	}
	h.action(c, http.StatusOK, func(p auth.Principal, id uuid.UUID) (*Subscription, error) {
		return h.service.Cancel(c.Request.Context(), p, id, req.Reason)
	})
}

// @Summary      Reactivate a cancelled subscription
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Subscription ID"
// @Success      200 {object} subscription.View
// @Failure      409 {object} api.ErrorResponse
// @Router       /subscriptions/{id}/reactivate [post]
func (h *Handler) Reactivate(c *gin.Context) {
	h.action(c, http.StatusOK, func(p auth.Principal, id uuid.UUID) (*Subscription, error) {
		return h.service.Reactivate(c.Request.Context(), p, id)
	})
}

// @Summary      Renew a subscription
// @Description  Creates the follow-up subscription. Dates default to the day the current one ends.
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Subscription ID"
// @Param        request body subscription.RenewRequest false "Renewal window"
// @Success      201 {object} subscription.View
// @Failure      409 {object} api.ErrorResponse
// @Router       /subscriptions/{id}/renew [post]
func (h *Handler) Renew(c *gin.Context) {
	var req RenewRequest
	if !api.BindOptionalJSON(c, &req) {
		return
	}
	h.action(c, http.StatusCreated, func(p auth.Principal, id uuid.UUID) (*Subscription, error) {
		return h.service.Renew(c.Request.Context(), p, id, req)
	})
}

// @Summary      Assign a trainer
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Subscription ID"
// @Param        request body subscription.TrainerRequest true "Trainer"
// @Success      200 {object} subscription.View
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /subscriptions/{id}/trainer [post]
func (h *Handler) AssignTrainer(c *gin.Context) {
	var req TrainerRequest
	if !api.BindJSON(c, &req) {
		return
	}
	h.action(c, http.StatusOK, func(p auth.Principal, id uuid.UUID) (*Subscription, error) {
		return h.service.AssignTrainer(c.Request.Context(), p, id, req.TrainerID)
	})
}

// @Summary      Remove the trainer
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Subscription ID"
// @Success      200 {object} subscription.View
// @Router       /subscriptions/{id}/trainer [delete]
func (h *Handler) RemoveTrainer(c *gin.Context) {
	h.action(c, http.StatusOK, func(p auth.Principal, id uuid.UUID) (*Subscription, error) {
		return h.service.RemoveTrainer(c.Request.Context(), p, id)
	})
}

// @Summary      Toggle auto-renewal
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Subscription ID"
// @Param        request body subscription.AutoRenewalRequest true "Flag"
// @Success      200 {object} subscription.View
// @Failure      409 {object} api.ErrorResponse
// @Router       /subscriptions/{id}/auto-renewal [post]
func (h *Handler) SetAutoRenewal(c *gin.Context) {
	var req AutoRenewalRequest
	if !api.BindJSON(c, &req) {
		return
	}
	h.action(c, http.StatusOK, func(p auth.Principal, id uuid.UUID) (*Subscription, error) {
		return h.service.SetAutoRenewal(c.Request.Context(), p, id, *req.Enabled)
	})
}

// @Summary      Change the subscription amount
// @Tags         admin,subscriptions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Subscription ID"
// @Param        request body subscription.AmountRequest true "Amount"
// @Success      200 {object} subscription.View
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Router       /subscriptions/{id}/amount [post]
func (h *Handler) UpdateAmount(c *gin.Context) {
	var req AmountRequest
	if !api.BindJSON(c, &req) {
		return
	}
	h.action(c, http.StatusOK, func(p auth.Principal, id uuid.UUID) (*Subscription, error) {
		return h.service.UpdateAmount(c.Request.Context(), p, id, req.Amount)
	})
}

// @Summary      Check gym access
// @Description  Whether the caller's active subscription admits them to the gym
// @Tags         subscriptions,gyms
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Gym ID"
// @Success      200 {object} subscription.AccessDecision
// @Failure      404 {object} api.ErrorResponse
// @Router       /gyms/{id}/access [get]
func (h *Handler) GymAccess(c *gin.Context) {
	p, ok := auth.MustPrincipal(c)
	if !ok {
		return
	}
	gymID, ok := api.UUIDParam(c, "id")
	if !ok {
		return
	}

	decision, err := h.service.CanAccessGym(c.Request.Context(), p.UserID, gymID)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, decision)
}
