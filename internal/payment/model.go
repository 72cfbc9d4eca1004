package payment

import (
	"strings"
	"time"

	"fitcircle/internal/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var now = func() time.Time { return time.Now().UTC() }

// Payment is one charge against a subscription. Only pending payments can
// settle, and only settled payments can be refunded. The refunded total never
// exceeds the amount.
type Payment struct {
	id                uuid.UUID
	subscriptionID    uuid.UUID
	userID            uuid.UUID
	amount            decimal.Decimal
	currency          string
	status            Status
	method            Method
	paymentDate       time.Time
	completedAt       *time.Time
	transactionID     string
	externalReference string
	description       string
	failureReason     string
	refundedAmount    decimal.Decimal
	refundedAt        *time.Time
	refundReason      RefundReason
	refundNotes       string
	processorResponse string
	version           int
	createdAt         time.Time
	updatedAt         time.Time
}

func NewPayment(
	subscriptionID, userID uuid.UUID,
	amount decimal.Decimal,
	currency string,
	method Method,
	description, externalReference string,
) (*Payment, error) {
	const op = "payment.create"

	if subscriptionID == uuid.Nil {
		return nil, apperror.ValidationField(op, "subscription_id", "subscription id is required")
	}
	if userID == uuid.Nil {
		return nil, apperror.ValidationField(op, "user_id", "user id is required")
	}
	if !amount.IsPositive() {
		return nil, apperror.ValidationField(op, "amount", "amount must be greater than zero")
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return nil, apperror.ValidationField(op, "currency", "currency is required")
	}
	if !method.Valid() {
		return nil, apperror.ValidationField(op, "method", "unknown payment method %q", string(method))
	}

	t := now()
	return &Payment{
		id:                uuid.New(),
		subscriptionID:    subscriptionID,
		userID:            userID,
		amount:            amount,
		currency:          currency,
		status:            StatusPending,
		method:            method,
		paymentDate:       t,
		description:       strings.TrimSpace(description),
		externalReference: strings.TrimSpace(externalReference),
		refundedAmount:    decimal.Zero,
		createdAt:         t,
		updatedAt:         t,
	}, nil
}

func (p *Payment) ID() uuid.UUID                   { return p.id }
func (p *Payment) SubscriptionID() uuid.UUID       { return p.subscriptionID }
func (p *Payment) UserID() uuid.UUID               { return p.userID }
func (p *Payment) Amount() decimal.Decimal         { return p.amount }
func (p *Payment) Currency() string                { return p.currency }
func (p *Payment) Status() Status                  { return p.status }
func (p *Payment) Method() Method                  { return p.method }
func (p *Payment) CompletedAt() *time.Time         { return p.completedAt }
func (p *Payment) TransactionID() string           { return p.transactionID }
func (p *Payment) ExternalReference() string       { return p.externalReference }
func (p *Payment) Description() string             { return p.description }
func (p *Payment) FailureReason() string           { return p.failureReason }
func (p *Payment) RefundedAmount() decimal.Decimal { return p.refundedAmount }
func (p *Payment) RefundReason() RefundReason      { return p.refundReason }
func (p *Payment) Version() int                    { return p.version }

func (p *Payment) IsPending() bool   { return p.status == StatusPending }
func (p *Payment) IsCompleted() bool { return p.status == StatusCompleted }
func (p *Payment) IsFailed() bool    { return p.status == StatusFailed }

func (p *Payment) IsRefunded() bool {
	return p.status == StatusRefunded || p.status == StatusPartiallyRefunded
}

// RefundableAmount is what is left to refund on a settled payment. It is zero
// in every other state.
func (p *Payment) RefundableAmount() decimal.Decimal {
	if p.status != StatusCompleted && p.status != StatusPartiallyRefunded {
		return decimal.Zero
	}
	return p.amount.Sub(p.refundedAmount)
}

func (p *Payment) CanBeRefunded() bool {
	return p.RefundableAmount().IsPositive()
}

func (p *Payment) requirePending(op, action string) error {
	if p.status != StatusPending {
		return apperror.InvalidState(op, "only pending payments can be %s, payment is %s", action, p.status)
	}
	return nil
}

func (p *Payment) MarkCompleted(transactionID, processorResponse string) error {
	if err := p.requirePending("payment.complete", "completed"); err != nil {
		return err
	}

	t := now()
	p.status = StatusCompleted
	p.completedAt = &t
	if id := strings.TrimSpace(transactionID); id != "" {
		p.transactionID = id
	}
	p.processorResponse = processorResponse
	p.failureReason = ""
	p.updatedAt = t
	return nil
}

func (p *Payment) MarkFailed(reason, processorResponse string) error {
	if err := p.requirePending("payment.fail", "failed"); err != nil {
		return err
	}

	p.status = StatusFailed
	p.failureReason = strings.TrimSpace(reason)
	p.processorResponse = processorResponse
	p.updatedAt = now()
	return nil
}

func (p *Payment) Cancel() error {
	if err := p.requirePending("payment.cancel", "cancelled"); err != nil {
		return err
	}

	p.status = StatusCancelled
	p.updatedAt = now()
	return nil
}

// ProcessFullRefund refunds whatever is still refundable and returns that
// amount.
func (p *Payment) ProcessFullRefund(reason RefundReason, notes string) (decimal.Decimal, error) {
	if !p.CanBeRefunded() {
		return decimal.Zero, apperror.InvalidState("payment.refund", "payment cannot be refunded in status %s", p.status)
	}

	amount := p.RefundableAmount()
	p.applyRefund(amount, reason, notes)
	return amount, nil
}

func (p *Payment) ProcessPartialRefund(amount decimal.Decimal, reason RefundReason, notes string) error {
	const op = "payment.refund"

	if !p.CanBeRefunded() {
		return apperror.InvalidState(op, "payment cannot be refunded in status %s", p.status)
	}
	if !amount.IsPositive() || amount.GreaterThan(p.RefundableAmount()) {
		return apperror.ValidationField(op, "amount", "refund amount must be greater than zero and at most %s",
			p.RefundableAmount().StringFixed(2))
	}

	p.applyRefund(amount, reason, notes)
	return nil
}

func (p *Payment) applyRefund(amount decimal.Decimal, reason RefundReason, notes string) {
	t := now()
	p.refundedAmount = p.refundedAmount.Add(amount)
	p.refundedAt = &t
	p.refundReason = reason
	p.refundNotes = strings.TrimSpace(notes)
	if p.refundedAmount.GreaterThanOrEqual(p.amount) {
		p.status = StatusRefunded
	} else {
		p.status = StatusPartiallyRefunded
	}
	p.updatedAt = t
}

func (p *Payment) UpdateTransactionID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return apperror.ValidationField("payment.update_transaction", "transaction_id", "transaction id cannot be blank")
	}

	p.transactionID = id
	p.updatedAt = now()
	return nil
}

func (p *Payment) UpdateExternalReference(ref string) {
	p.externalReference = strings.TrimSpace(ref)
	p.updatedAt = now()
}

func (p *Payment) UpdateDescription(description string) {
	p.description = strings.TrimSpace(description)
	p.updatedAt = now()
}

// Record is the persisted and serialized shape of a payment.
type Record struct {
	ID                uuid.UUID       `db:"id" json:"id"`
	SubscriptionID    uuid.UUID       `db:"subscription_id" json:"subscription_id"`
	UserID            uuid.UUID       `db:"user_id" json:"user_id"`
	Amount            decimal.Decimal `db:"amount" json:"amount"`
	Currency          string          `db:"currency" json:"currency"`
	Status            Status          `db:"status" json:"status"`
	Method            Method          `db:"method" json:"method"`
	PaymentDate       time.Time       `db:"payment_date" json:"payment_date"`
	CompletedAt       *time.Time      `db:"completed_at" json:"completed_at,omitempty"`
	TransactionID     *string         `db:"transaction_id" json:"transaction_id,omitempty"`
	ExternalReference *string         `db:"external_reference" json:"external_reference,omitempty"`
	Description       *string         `db:"description" json:"description,omitempty"`
	FailureReason     *string         `db:"failure_reason" json:"failure_reason,omitempty"`
	RefundedAmount    decimal.Decimal `db:"refunded_amount" json:"refunded_amount"`
	RefundedAt        *time.Time      `db:"refunded_at" json:"refunded_at,omitempty"`
	RefundReason      *string         `db:"refund_reason" json:"refund_reason,omitempty"`
	RefundNotes       *string         `db:"refund_notes" json:"refund_notes,omitempty"`
	ProcessorResponse *string         `db:"processor_response" json:"-"`
	Version           int             `db:"version" json:"version"`
	CreatedAt         time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at" json:"updated_at"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (p *Payment) Record() Record {
	return Record{
		ID:                p.id,
		SubscriptionID:    p.subscriptionID,
		UserID:            p.userID,
		Amount:            p.amount,
		Currency:          p.currency,
		Status:            p.status,
		Method:            p.method,
		PaymentDate:       p.paymentDate,
		CompletedAt:       p.completedAt,
		TransactionID:     optional(p.transactionID),
		ExternalReference: optional(p.externalReference),
		Description:       optional(p.description),
		FailureReason:     optional(p.failureReason),
		RefundedAmount:    p.refundedAmount,
		RefundedAt:        p.refundedAt,
		RefundReason:      optional(string(p.refundReason)),
		RefundNotes:       optional(p.refundNotes),
		ProcessorResponse: optional(p.processorResponse),
		Version:           p.version,
		CreatedAt:         p.createdAt,
		UpdatedAt:         p.updatedAt,
	}
}

// Restore rehydrates a payment from persisted state.
func Restore(r Record) (*Payment, error) {
	const op = "payment.restore"

	if !r.Status.Valid() {
		return nil, apperror.Validation(op, "unknown payment status %q", string(r.Status))
	}
	if !r.Method.Valid() {
		return nil, apperror.Validation(op, "unknown payment method %q", string(r.Method))
	}

	return &Payment{
		id:                r.ID,
		subscriptionID:    r.SubscriptionID,
		userID:            r.UserID,
		amount:            r.Amount,
		currency:          r.Currency,
		status:            r.Status,
		method:            r.Method,
		paymentDate:       r.PaymentDate,
		completedAt:       r.CompletedAt,
		transactionID:     deref(r.TransactionID),
		externalReference: deref(r.ExternalReference),
		description:       deref(r.Description),
		failureReason:     deref(r.FailureReason),
		refundedAmount:    r.RefundedAmount,
		refundedAt:        r.RefundedAt,
		refundReason:      RefundReason(deref(r.RefundReason)),
		refundNotes:       deref(r.RefundNotes),
		processorResponse: deref(r.ProcessorResponse),
		version:           r.Version,
		createdAt:         r.CreatedAt,
		updatedAt:         r.UpdatedAt,
	}, nil
}

// View adds derived refund figures to the record.
type View struct {
	Record
	RefundableAmount decimal.Decimal `json:"refundable_amount" swaggertype:"string" example:"60"`
	CanBeRefunded    bool            `json:"can_be_refunded" example:"true"`
}

func (p *Payment) View() View {
	return View{
		Record:           p.Record(),
		RefundableAmount: p.RefundableAmount(),
		CanBeRefunded:    p.CanBeRefunded(),
	}
}
