// Package gateway talks to the external card processor.
package gateway

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"fitcircle/internal/apperror"
	"fitcircle/internal/logger"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/shopspring/decimal"
)

// Processor statuses reported by MercadoPago.
const (
	StatusApproved   = "approved"
	StatusPending    = "pending"
	StatusInProcess  = "in_process"
	StatusRejected   = "rejected"
	StatusCancelled  = "cancelled"
	StatusRefunded   = "refunded"
	StatusChargeback = "charged_back"
)

type CheckoutRequest struct {
	ExternalReference string
	Title             string
	Description       string
	Amount            decimal.Decimal
	Currency          string
	PayerEmail        string
}

type Checkout struct {
	PreferenceID     string `json:"preference_id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point,omitempty"`
}

// Result is the processor's view of a payment.
type Result struct {
	ProcessorID       string
	Status            string
	StatusDetail      string
	ExternalReference string
	Amount            decimal.Decimal
	Currency          string
}

func (r Result) Approved() bool { return r.Status == StatusApproved }

// Declined covers every terminal outcome where no money moved.
func (r Result) Declined() bool {
	return r.Status == StatusRejected || r.Status == StatusCancelled
}

func (r Result) Summary() string {
	if r.StatusDetail == "" {
		return r.Status
	}
	return r.Status + ": " + r.StatusDetail
}

type preferenceCreator interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

type paymentGetter interface {
	Get(ctx context.Context, id int) (*payment.Response, error)
}

type MercadoPago struct {
	preferences     preferenceCreator
	payments        paymentGetter
	notificationURL string
}

func NewMercadoPago(accessToken, notificationURL string) (*MercadoPago, error) {
	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &MercadoPago{
		preferences:     preference.NewClient(cfg),
		payments:        payment.NewClient(cfg),
		notificationURL: notificationURL,
	}, nil
}

// CreateCheckout creates a Checkout Pro preference for a single item.
func (m *MercadoPago) CreateCheckout(ctx context.Context, req CheckoutRequest) (Checkout, error) {
	pref := preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:       req.Title,
				Description: req.Description,
				Quantity:    1,
				UnitPrice:   req.Amount.InexactFloat64(),
				CurrencyID:  strings.ToUpper(req.Currency),
			},
		},
		ExternalReference: req.ExternalReference,
		NotificationURL:   m.notificationURL,
	}
	if req.PayerEmail != "" {
		pref.Payer = &preference.PayerRequest{Email: req.PayerEmail}
	}

	res, err := m.preferences.Create(ctx, pref)
	if err != nil {
		return Checkout{}, fmt.Errorf("mercadopago create preference: %w", err)
	}

	logger.Info("checkout preference created",
		"preference_id", res.ID,
		"external_reference", req.ExternalReference,
	)
	return Checkout{
		PreferenceID:     res.ID,
		InitPoint:        res.InitPoint,
		SandboxInitPoint: res.SandboxInitPoint,
	}, nil
}

// FetchStatus looks up a processor payment by its numeric id.
func (m *MercadoPago) FetchStatus(ctx context.Context, processorID string) (Result, error) {
	id, err := strconv.Atoi(strings.TrimSpace(processorID))
	if err != nil {
		return Result{}, apperror.ValidationField("payment.sync", "processor_payment_id", "invalid processor payment id %q", processorID)
	}

	res, err := m.payments.Get(ctx, id)
	if err != nil {
		return Result{}, fmt.Errorf("mercadopago get payment %d: %w", id, err)
	}

	return Result{
		ProcessorID:       processorID,
		Status:            res.Status,
		StatusDetail:      res.StatusDetail,
		ExternalReference: res.ExternalReference,
		Amount:            decimal.NewFromFloat(res.TransactionAmount),
		Currency:          res.CurrencyID,
	}, nil
}
