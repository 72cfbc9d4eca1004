package payment

import (
	"context"
	"strings"

	"fitcircle/internal/apperror"
	"fitcircle/internal/auth"
	"fitcircle/internal/db"
	"fitcircle/internal/logger"
	"fitcircle/internal/metrics"
	"fitcircle/internal/payment/gateway"
	"fitcircle/internal/subscription"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Subscriptions resolves a subscription on behalf of a caller, enforcing
// ownership.
type Subscriptions interface {
	Get(ctx context.Context, p auth.Principal, id uuid.UUID) (*subscription.Subscription, error)
}

type Gateway interface {
	CreateCheckout(ctx context.Context, req gateway.CheckoutRequest) (gateway.Checkout, error)
	FetchStatus(ctx context.Context, processorID string) (gateway.Result, error)
}

// Notifier receives payment events worth telling the member about.
type Notifier interface {
	PaymentRefunded(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, currency string, full bool)
	PaymentFailed(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, currency, reason string)
}

type CreatePaymentRequest struct {
	SubscriptionID    uuid.UUID        `json:"subscription_id" binding:"required" swaggertype:"string" example:"8b7e2c4a-3f1d-4e6a-9b0c-5d4e3f2a1b0c"`
	Amount            *decimal.Decimal `json:"amount,omitempty" swaggertype:"string" example:"100"`
	Currency          string           `json:"currency,omitempty" example:"AZN"`
	Method            string           `json:"method" binding:"required" example:"credit_card"`
	Description       string           `json:"description,omitempty" binding:"max=500" example:"November membership"`
	ExternalReference string           `json:"external_reference,omitempty" binding:"max=100"`
}

type CompleteRequest struct {
	TransactionID     string `json:"transaction_id,omitempty" example:"TX-99812"`
	ProcessorResponse string `json:"processor_response,omitempty"`
}

type FailRequest struct {
	Reason            string `json:"reason" binding:"required,max=500" example:"card declined"`
	ProcessorResponse string `json:"processor_response,omitempty"`
}

// RefundRequest refunds everything still refundable when Amount is omitted.
type RefundRequest struct {
	Amount *decimal.Decimal `json:"amount,omitempty" swaggertype:"string" example:"40"`
	Reason string           `json:"reason" binding:"required" example:"customer_request"`
	Notes  string           `json:"notes,omitempty" binding:"max=1000"`
}

type UpdateRequest struct {
	TransactionID *string `json:"transaction_id,omitempty" example:"TX-99812"`
	Description   *string `json:"description,omitempty" binding:"omitempty,max=500"`
}

type SyncRequest struct {
	ProcessorPaymentID string `json:"processor_payment_id" binding:"required" example:"1319187412"`
}

type CheckoutResponse struct {
	PaymentID uuid.UUID `json:"payment_id" swaggertype:"string"`
	gateway.Checkout
}

type Service interface {
	Create(ctx context.Context, p auth.Principal, req CreatePaymentRequest) (*Payment, error)
	Get(ctx context.Context, p auth.Principal, id uuid.UUID) (*Payment, error)
	ListBySubscription(ctx context.Context, p auth.Principal, subscriptionID uuid.UUID) ([]*Payment, error)

	Complete(ctx context.Context, id uuid.UUID, req CompleteRequest) (*Payment, error)
	Fail(ctx context.Context, id uuid.UUID, req FailRequest) (*Payment, error)
	Cancel(ctx context.Context, p auth.Principal, id uuid.UUID) (*Payment, error)
	Refund(ctx context.Context, id uuid.UUID, req RefundRequest) (*Payment, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*Payment, error)

	Checkout(ctx context.Context, p auth.Principal, id uuid.UUID) (CheckoutResponse, error)
	Sync(ctx context.Context, id uuid.UUID, req SyncRequest) (*Payment, error)
}

type service struct {
	repo          Repository
	subscriptions Subscriptions
	gateway       Gateway
	notifier      Notifier
}

// NewService wires the payment service. gw may be nil when no processor is
// configured; checkout and sync then report the gateway as unavailable.
func NewService(repo Repository, subscriptions Subscriptions, gw Gateway, notifier Notifier) Service {
	return &service{repo: repo, subscriptions: subscriptions, gateway: gw, notifier: notifier}
}

func (s *service) Create(ctx context.Context, p auth.Principal, req CreatePaymentRequest) (*Payment, error) {
	sub, err := s.subscriptions.Get(ctx, p, req.SubscriptionID)
	if err != nil {
		return nil, err
	}

	method, err := ParseMethod(req.Method)
	if err != nil {
		return nil, err
	}
	if !p.Role.HasAtLeast(auth.RoleManager) {
		if req.Amount != nil {
			return nil, apperror.Forbidden("payment.create", "only managers can set the amount")
		}
		if c := strings.TrimSpace(req.Currency); c != "" && !strings.EqualFold(c, sub.Currency()) {
			return nil, apperror.Forbidden("payment.create", "only managers can set the currency")
		}
	}
	amount := sub.Amount()
	if req.Amount != nil {
		amount = *req.Amount
	}
	currency := req.Currency
	if strings.TrimSpace(currency) == "" {
		currency = sub.Currency()
	}

	pay, err := NewPayment(sub.ID(), sub.UserID(), amount, currency, method, req.Description, req.ExternalReference)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, pay); err != nil {
		return nil, err
	}

	metrics.RecordPayment(string(pay.Status()), string(method))
	logger.Info("payment created",
		"payment_id", pay.ID(),
		"subscription_id", sub.ID(),
		"amount", pay.Amount().String(),
		"currency", pay.Currency(),
	)
	return pay, nil
}

func (s *service) Get(ctx context.Context, p auth.Principal, id uuid.UUID) (*Payment, error) {
	pay, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.CanActFor(pay.UserID()) {
		return nil, apperror.Forbidden("payment.get", "payment belongs to another user")
	}
	return pay, nil
}

func (s *service) ListBySubscription(ctx context.Context, p auth.Principal, subscriptionID uuid.UUID) ([]*Payment, error) {
	if _, err := s.subscriptions.Get(ctx, p, subscriptionID); err != nil {
		return nil, err
	}
	return s.repo.ListBySubscription(ctx, subscriptionID)
}

func (s *service) mutate(ctx context.Context, id uuid.UUID, change func(*Payment) error) (*Payment, error) {
	var pay *Payment
	err := db.RetryOnConflict(ctx, func() error {
		var err error
		pay, err = s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := change(pay); err != nil {
			return err
		}
		return s.repo.Update(ctx, pay)
	})
	if err != nil {
		return nil, err
	}
	return pay, nil
}

func (s *service) Complete(ctx context.Context, id uuid.UUID, req CompleteRequest) (*Payment, error) {
	pay, err := s.mutate(ctx, id, func(pay *Payment) error {
		return pay.MarkCompleted(req.TransactionID, req.ProcessorResponse)
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordPayment(string(pay.Status()), string(pay.Method()))
	logger.Info("payment completed", "payment_id", id, "transaction_id", pay.TransactionID())
	return pay, nil
}

func (s *service) Fail(ctx context.Context, id uuid.UUID, req FailRequest) (*Payment, error) {
	pay, err := s.mutate(ctx, id, func(pay *Payment) error {
		return pay.MarkFailed(req.Reason, req.ProcessorResponse)
	})
	if err != nil {
		return nil, err
	}

	s.failed(ctx, pay)
	return pay, nil
}

func (s *service) failed(ctx context.Context, pay *Payment) {
	metrics.RecordPayment(string(pay.Status()), string(pay.Method()))
	logger.Warn("payment failed", "payment_id", pay.ID(), "reason", pay.FailureReason())
	s.notifier.PaymentFailed(ctx, pay.UserID(), pay.Amount(), pay.Currency(), pay.FailureReason())
}

func (s *service) Cancel(ctx context.Context, p auth.Principal, id uuid.UUID) (*Payment, error) {
	pay, err := s.mutate(ctx, id, func(pay *Payment) error {
		if !p.CanActFor(pay.UserID()) {
			return apperror.Forbidden("payment.cancel", "payment belongs to another user")
		}
		return pay.Cancel()
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordPayment(string(pay.Status()), string(pay.Method()))
	logger.Info("payment cancelled", "payment_id", id)
	return pay, nil
}

func (s *service) Refund(ctx context.Context, id uuid.UUID, req RefundRequest) (*Payment, error) {
	reason, err := ParseRefundReason(req.Reason)
	if err != nil {
		return nil, err
	}

	var refunded decimal.Decimal
	full := req.Amount == nil
	pay, err := s.mutate(ctx, id, func(pay *Payment) error {
		if full {
			amount, err := pay.ProcessFullRefund(reason, req.Notes)
			refunded = amount
			return err
		}
		refunded = *req.Amount
		return pay.ProcessPartialRefund(*req.Amount, reason, req.Notes)
	})
	if err != nil {
		return nil, err
	}

	refundType := "partial"
	if full {
		refundType = "full"
	}
	metrics.RecordRefund(refundType, pay.Currency(), refunded.InexactFloat64())
	logger.Info("payment refunded",
		"payment_id", id,
		"amount", refunded.String(),
		"refunded_total", pay.RefundedAmount().String(),
		"status", pay.Status(),
	)
	s.notifier.PaymentRefunded(ctx, pay.UserID(), refunded, pay.Currency(), pay.Status() == StatusRefunded)
	return pay, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*Payment, error) {
	return s.mutate(ctx, id, func(pay *Payment) error {
		if req.TransactionID != nil {
			if err := pay.UpdateTransactionID(*req.TransactionID); err != nil {
				return err
			}
		}
		if req.Description != nil {
			pay.UpdateDescription(*req.Description)
		}
		return nil
	})
}

func (s *service) requireGateway(op string) error {
	if s.gateway == nil {
		return apperror.Unavailable(op, "payment processor is not configured")
	}
	return nil
}

// Checkout opens a hosted checkout for a pending payment and remembers the
// processor's preference id as the external reference.
func (s *service) Checkout(ctx context.Context, p auth.Principal, id uuid.UUID) (CheckoutResponse, error) {
	const op = "payment.checkout"

	if err := s.requireGateway(op); err != nil {
		return CheckoutResponse{}, err
	}
	pay, err := s.Get(ctx, p, id)
	if err != nil {
		return CheckoutResponse{}, err
	}
	if !pay.IsPending() {
		return CheckoutResponse{}, apperror.InvalidState(op, "only pending payments can be checked out, payment is %s", pay.Status())
	}

	req := gateway.CheckoutRequest{
		ExternalReference: pay.ID().String(),
		Title:             "FitCircle membership",
		Description:       pay.Description(),
		Amount:            pay.Amount(),
		Currency:          pay.Currency(),
	}
	if p.UserID == pay.UserID() {
		req.PayerEmail = p.Email
	}
	checkout, err := s.gateway.CreateCheckout(ctx, req)
	if err != nil {
		return CheckoutResponse{}, err
	}

	if _, err := s.mutate(ctx, id, func(pay *Payment) error {
		pay.UpdateExternalReference(checkout.PreferenceID)
		return nil
	}); err != nil {
		return CheckoutResponse{}, err
	}

	return CheckoutResponse{PaymentID: id, Checkout: checkout}, nil
}

// Sync pulls the processor's verdict and settles a pending payment. The
// processor payment must carry this payment's id as its external reference,
// and an approval must match the amount and currency. Payments that already
// left pending, or that the processor still considers open, are returned
// unchanged.
func (s *service) Sync(ctx context.Context, id uuid.UUID, req SyncRequest) (*Payment, error) {
	const op = "payment.sync"

	if err := s.requireGateway(op); err != nil {
		return nil, err
	}
	result, err := s.gateway.FetchStatus(ctx, req.ProcessorPaymentID)
	if err != nil {
		return nil, err
	}
	if result.ExternalReference != id.String() {
		return nil, apperror.ValidationField(op, "processor_payment_id", "processor payment does not reference payment %s", id)
	}

	settled := false
	pay, err := s.mutate(ctx, id, func(pay *Payment) error {
		settled = false
		if !pay.IsPending() {
			return nil
		}
		switch {
		case result.Approved():
			if !result.Amount.Equal(pay.Amount()) || !strings.EqualFold(result.Currency, pay.Currency()) {
				return apperror.ValidationField(op, "processor_payment_id",
					"processor charged %s %s, payment expects %s %s",
					result.Amount.String(), result.Currency, pay.Amount().String(), pay.Currency())
			}
			settled = true
			return pay.MarkCompleted(result.ProcessorID, result.Summary())
		case result.Declined():
			settled = true
			return pay.MarkFailed(result.StatusDetail, result.Summary())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("payment synced", "payment_id", id, "processor_status", result.Status, "status", pay.Status())
	switch {
	case settled && pay.IsFailed():
		s.failed(ctx, pay)
	case settled && pay.IsCompleted():
		metrics.RecordPayment(string(pay.Status()), string(pay.Method()))
	}
	return pay, nil
}
