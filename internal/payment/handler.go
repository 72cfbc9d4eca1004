package payment

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

func views(list []*Payment) []View {
	out := make([]View, 0, len(list))
	for _, p := range list {
		out = append(out, p.View())
	}
	return out
}

func (h *Handler) respond(c *gin.Context, pay *Payment, err error) {
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pay.View())
}

// @Summary      Create a pending payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body payment.CreatePaymentRequest true "Payment"
// @Success      201 {object} payment.View
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /payments [post]
func (h *Handler) Create(c *gin.Context) {
	p, ok := auth.MustPrincipal(c)
	if !ok {
		return
	}
	var req CreatePaymentRequest
	if !api.BindJSON(c, &req) {
		return
	}

	pay, err := h.service.Create(c.Request.Context(), p, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pay.View())
}

// @Summary      Get a payment
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Payment ID"
// @Success      200 {object} payment.View
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /payments/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	p, ok := auth.MustPrincipal(c)
	if !ok {
		return
	}
	id, ok := api.UUIDParam(c, "id")
	if !ok {
		return
	}

	pay, err := h.service.Get(c.Request.Context(), p, id)
	h.respond(c, pay, err)
}

// @Summary      List payments of a subscription
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Subscription ID"
// @Success      200 {array} payment.View
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /subscriptions/{id}/payments [get]
func (h *Handler) ListBySubscription(c *gin.Context) {
	p, ok := auth.MustPrincipal(c)
	if !ok {
		return
	}
	id, ok := api.UUIDParam(c, "id")
	if !ok {
		return
	}

	list, err := h.service.ListBySubscription(c.Request.Context(), p, id)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views(list))
}

// @Summary      Mark a payment completed
// @Tags         admin,payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Payment ID"
// @Param        request body payment.CompleteRequest false "Settlement details"
// @Success      200 {object} payment.View
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /payments/{id}/complete [post]
func (h *Handler) Complete(c *gin.Context) {
	id, ok := api.UUIDParam(c, "id")
	if !ok {
		return
	}
	var req CompleteRequest
	if !api.BindOptionalJSON(c, &req) {
		return
	}

	pay, err := h.service.Complete(c.Request.Context(), id, req)
	h.respond(c, pay, err)
}

// @Summary      Mark a payment failed
// @Tags         admin,payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Payment ID"
// @Param        request body payment.FailRequest true "Failure"
// @Success      200 {object} payment.View
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /payments/{id}/fail [post]
func (h *Handler) Fail(c *gin.Context) {
	id, ok := api.UUIDParam(c, "id")
	if !ok {
		return
	}
	var req FailRequest
	if !api.BindJSON(c, &req) {
		return
	}

	pay, err := h.service.Fail(c.Request.Context(), id, req)
	h.respond(c, pay, err)
}

// @Summary      Cancel a pending payment
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Payment ID"
// @Success      200 {object} payment.View
// @Failure      403 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /payments/{id}/cancel [post]
func (h *Handler) Cancel(c *gin.Context) {
	p, ok := auth.MustPrincipal(c)
	if !ok {
		return
	}
	id, ok := api.UUIDParam(c, "id")
	if !ok {
		return
	}

	pay, err := h.service.Cancel(c.Request.Context(), p, id)
	h.respond(c, pay, err)
}

// @Summary      Refund a payment
// @Description  Omit amount for a full refund of what is still refundable.
// @Tags         admin,payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Payment ID"
// @Param        request body payment.RefundRequest true "Refund"
// @Success      200 {object} payment.View
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /payments/{id}/refund [post]
func (h *Handler) Refund(c *gin.Context) {
	id, ok := api.UUIDParam(c, "id")
	if !ok {
		return
	}
	var req RefundRequest
	if !api.BindJSON(c, &req) {
		return
	}

	pay, err := h.service.Refund(c.Request.Context(), id, req)
	h.respond(c, pay, err)
}

// @Summary      Update payment details
// @Tags         admin,payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Payment ID"
// @Param        request body payment.UpdateRequest true "Details"
// @Success      200 {object} payment.View
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /payments/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	id, ok := api.UUIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateRequest
	if !api.BindJSON(c, &req) {
		return
	}

	pay, err := h.service.Update(c.Request.Context(), id, req)
	h.respond(c, pay, err)
}

// @Summary      Start a hosted checkout
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Payment ID"
// @Success      200 {object} payment.CheckoutResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /payments/{id}/checkout [post]
func (h *Handler) Checkout(c *gin.Context) {
	p, ok := auth.MustPrincipal(c)
	if !ok {
		return
	}
	id, ok := api.UUIDParam(c, "id")
	if !ok {
		return
	}

	res, err := h.service.Checkout(c.Request.Context(), p, id)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary      Sync a payment with the processor
// @Tags         admin,payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Payment ID"
// @Param        request body payment.SyncRequest true "Processor payment"
// @Success      200 {object} payment.View
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /payments/{id}/sync [post]
func (h *Handler) Sync(c *gin.Context) {
	id, ok := api.UUIDParam(c, "id")
	if !ok {
		return
	}
	var req SyncRequest
	if !api.BindJSON(c, &req) {
		return
	}

	pay, err := h.service.Sync(c.Request.Context(), id, req)
	h.respond(c, pay, err)
}

