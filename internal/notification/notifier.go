package notification

import (
	"context"
	"fmt"
	"time"

	"fitcircle/internal/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TypeWelcome               = "welcome"
	TypeSubscriptionCancelled = "subscription_cancelled"
	TypeSubscriptionRenewed   = "subscription_renewed"
	TypePaymentRefunded       = "payment_refunded"
	TypePaymentFailed         = "payment_failed"

	dateLayout = "Jan 2, 2006"
	signature  = "\n\n- FitCircle Team"
)

type Recipient struct {
	Email string
	Name  string
}

// Directory resolves a user id to a mail recipient.
type Directory interface {
	Recipient(ctx context.Context, userID uuid.UUID) (Recipient, error)
}

// DirectoryFunc adapts a plain function to Directory.
type DirectoryFunc func(ctx context.Context, userID uuid.UUID) (Recipient, error)

func (f DirectoryFunc) Recipient(ctx context.Context, userID uuid.UUID) (Recipient, error) {
	return f(ctx, userID)
}

type enqueuer interface {
	Enqueue(ctx context.Context, job Job) error
}

// Notifier renders domain events into emails. Failures are logged and never
// returned to the caller; a lost email must not fail the request.
type Notifier struct {
	queue     enqueuer
	directory Directory
}

func NewNotifier(queue enqueuer, directory Directory) *Notifier {
	return &Notifier{queue: queue, directory: directory}
}

func (n *Notifier) Welcome(ctx context.Context, email, name string) {
	body := fmt.Sprintf("Hi %s,\n\nWelcome to FitCircle! Your account is ready.", name)
	n.send(ctx, TypeWelcome, Recipient{Email: email, Name: name}, "Welcome to FitCircle", body)
}

func (n *Notifier) SubscriptionCancelled(ctx context.Context, userID uuid.UUID, tier, reason string) {
	r, ok := n.lookup(ctx, userID)
	if !ok {
		return
	}

	body := fmt.Sprintf("Hi %s,\n\nYour %s subscription has been cancelled.", r.Name, tier)
	if reason != "" {
		body += "\nReason: " + reason
	}
	n.send(ctx, TypeSubscriptionCancelled, r, "Subscription Cancelled - "+tier, body)
}

func (n *Notifier) SubscriptionRenewed(ctx context.Context, userID uuid.UUID, tier string, start, end time.Time) {
	r, ok := n.lookup(ctx, userID)
	if !ok {
		return
	}

	body := fmt.Sprintf("Hi %s,\n\nYour %s subscription has been renewed.\n\nFrom: %s\nUntil: %s",
		r.Name, tier, start.Format(dateLayout), end.Format(dateLayout))
	n.send(ctx, TypeSubscriptionRenewed, r, "Subscription Renewed - "+tier, body)
}

func (n *Notifier) PaymentRefunded(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, currency string, full bool) {
	r, ok := n.lookup(ctx, userID)
	if !ok {
		return
	}

	kind := "partial"
	if full {
		kind = "full"
	}
	body := fmt.Sprintf("Hi %s,\n\nWe issued a %s refund of %s %s.", r.Name, kind, amount.StringFixed(2), currency)
	n.send(ctx, TypePaymentRefunded, r, "Refund Issued", body)
}

func (n *Notifier) PaymentFailed(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, currency, reason string) {
	r, ok := n.lookup(ctx, userID)
	if !ok {
		return
	}

	body := fmt.Sprintf("Hi %s,\n\nYour payment of %s %s could not be processed.\nReason: %s",
		r.Name, amount.StringFixed(2), currency, reason)
	n.send(ctx, TypePaymentFailed, r, "Payment Failed", body)
}

func (n *Notifier) lookup(ctx context.Context, userID uuid.UUID) (Recipient, bool) {
	r, err := n.directory.Recipient(ctx, userID)
	if err != nil {
		logger.Warn("notification recipient lookup failed", "user_id", userID, "error", err)
		return Recipient{}, false
	}
	return r, true
}

func (n *Notifier) send(ctx context.Context, typ string, r Recipient, subject, body string) {
	job := Job{Type: typ, To: r.Email, Name: r.Name, Subject: subject, Body: body + signature}
	if err := n.queue.Enqueue(ctx, job); err != nil {
		logger.Error("failed to enqueue notification", "type", typ, "to", r.Email, "error", err)
	}
}
