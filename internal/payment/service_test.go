package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitcircle/internal/apperror"
	"fitcircle/internal/auth"
	"fitcircle/internal/payment/gateway"
	"fitcircle/internal/subscription"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct{ mock.Mock }

func (m *MockRepository) Create(ctx context.Context, p *Payment) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id uuid.UUID) (*Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Payment), args.Error(1)
}

func (m *MockRepository) ListBySubscription(ctx context.Context, subscriptionID uuid.UUID) ([]*Payment, error) {
	args := m.Called(ctx, subscriptionID)
	return args.Get(0).([]*Payment), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, p *Payment) error {
	return m.Called(ctx, p).Error(0)
}

type MockSubscriptions struct{ mock.Mock }

func (m *MockSubscriptions) Get(ctx context.Context, p auth.Principal, id uuid.UUID) (*subscription.Subscription, error) {
	args := m.Called(ctx, p, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscription.Subscription), args.Error(1)
}

type MockGateway struct{ mock.Mock }

func (m *MockGateway) CreateCheckout(ctx context.Context, req gateway.CheckoutRequest) (gateway.Checkout, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(gateway.Checkout), args.Error(1)
}

func (m *MockGateway) FetchStatus(ctx context.Context, processorID string) (gateway.Result, error) {
	args := m.Called(ctx, processorID)
	return args.Get(0).(gateway.Result), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) PaymentRefunded(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, currency string, full bool) {
	m.Called(ctx, userID, amount, currency, full)
}

func (m *MockNotifier) PaymentFailed(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, currency, reason string) {
	m.Called(ctx, userID, amount, currency, reason)
}

type fixture struct {
	repo     *MockRepository
	subs     *MockSubscriptions
	gw       *MockGateway
	notifier *MockNotifier
	svc      Service
}

func newFixture() *fixture {
	f := &fixture{
		repo:     new(MockRepository),
		subs:     new(MockSubscriptions),
		gw:       new(MockGateway),
		notifier: new(MockNotifier),
	}
	f.svc = NewService(f.repo, f.subs, f.gw, f.notifier)
	return f
}

func stored(t *testing.T, p *Payment) *Payment {
	t.Helper()
	cp, err := Restore(p.Record())
	require.NoError(t, err)
	return cp
}

func member(id uuid.UUID) auth.Principal {
	return auth.Principal{UserID: id, Email: "member@fitcircle.az", Role: auth.RoleMember}
}

var manager = auth.Principal{UserID: uuid.New(), Role: auth.RoleManager}

func testSubscription(t *testing.T, userID uuid.UUID) *subscription.Subscription {
	t.Helper()
	start := time.Now().UTC()
	sub, err := subscription.NewSubscription(userID, subscription.TierPremium, start, start.AddDate(0, 0, 30),
		decimal.NewFromInt(100), "AZN", false, nil)
	require.NoError(t, err)
	return sub
}

func TestService_CreateDefaultsFromSubscription(t *testing.T) {
	f := newFixture()
	userID := uuid.New()
	sub := testSubscription(t, userID)
	caller := member(userID)

	f.subs.On("Get", mock.Anything, caller, sub.ID()).Return(sub, nil)
	f.repo.On("Create", mock.Anything, mock.MatchedBy(func(p *Payment) bool {
		return p.Amount().Equal(decimal.NewFromInt(100)) &&
			p.Currency() == "AZN" &&
			p.UserID() == userID &&
			p.Method() == MethodGooglePay
	})).Return(nil)

	p, err := f.svc.Create(context.Background(), caller, CreatePaymentRequest{SubscriptionID: sub.ID(), Method: "google_pay"})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, p.Status())
	f.repo.AssertExpectations(t)
}

func TestService_CreatePricing(t *testing.T) {
	cheap := dec("0.01")

	t.Run("member cannot set amount", func(t *testing.T) {
		f := newFixture()
		userID := uuid.New()
		sub := testSubscription(t, userID)
		caller := member(userID)
		f.subs.On("Get", mock.Anything, caller, sub.ID()).Return(sub, nil)

		_, err := f.svc.Create(context.Background(), caller,
			CreatePaymentRequest{SubscriptionID: sub.ID(), Method: "credit_card", Amount: &cheap})
		assert.ErrorIs(t, err, apperror.ErrForbidden)
		f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("member cannot switch currency", func(t *testing.T) {
		f := newFixture()
		userID := uuid.New()
		sub := testSubscription(t, userID)
		caller := member(userID)
		f.subs.On("Get", mock.Anything, caller, sub.ID()).Return(sub, nil)

		_, err := f.svc.Create(context.Background(), caller,
			CreatePaymentRequest{SubscriptionID: sub.ID(), Method: "credit_card", Currency: "USD"})
		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})

	t.Run("manager sets amount", func(t *testing.T) {
		f := newFixture()
		sub := testSubscription(t, uuid.New())
		f.subs.On("Get", mock.Anything, manager, sub.ID()).Return(sub, nil)
		f.repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		p, err := f.svc.Create(context.Background(), manager,
			CreatePaymentRequest{SubscriptionID: sub.ID(), Method: "credit_card", Amount: &cheap})
		require.NoError(t, err)
		assert.True(t, p.Amount().Equal(cheap))
		assert.Equal(t, sub.UserID(), p.UserID())
	})
}

func TestService_CreateRejected(t *testing.T) {
	f := newFixture()
	caller := member(uuid.New())
	subID := uuid.New()

	f.subs.On("Get", mock.Anything, caller, subID).
		Return(nil, apperror.Forbidden("subscription.get", "subscription belongs to another user"))

	_, err := f.svc.Create(context.Background(), caller, CreatePaymentRequest{SubscriptionID: subID, Method: "credit_card"})
	assert.ErrorIs(t, err, apperror.ErrForbidden)
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_GetOwnership(t *testing.T) {
	f := newFixture()
	p := newTestPayment(t, "10")
	f.repo.On("GetByID", mock.Anything, p.ID()).Return(p, nil)

	_, err := f.svc.Get(context.Background(), member(uuid.New()), p.ID())
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	got, err := f.svc.Get(context.Background(), member(p.UserID()), p.ID())
	require.NoError(t, err)
	assert.Equal(t, p.ID(), got.ID())

	_, err = f.svc.Get(context.Background(), manager, p.ID())
	assert.NoError(t, err)
}

func TestService_CompleteTwice(t *testing.T) {
	f := newFixture()
	p := completed(t, "100")
	f.repo.On("GetByID", mock.Anything, p.ID()).Return(stored(t, p), nil)

	_, err := f.svc.Complete(context.Background(), p.ID(), CompleteRequest{})
	assert.ErrorIs(t, err, apperror.ErrInvalidState)
	f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_FailNotifies(t *testing.T) {
	f := newFixture()
	p := newTestPayment(t, "100")
	f.repo.On("GetByID", mock.Anything, p.ID()).Return(stored(t, p), nil)
	f.repo.On("Update", mock.Anything, mock.Anything).Return(nil)
	f.notifier.On("PaymentFailed", mock.Anything, p.UserID(), p.Amount(), "AZN", "insufficient funds").Return()

	got, err := f.svc.Fail(context.Background(), p.ID(), FailRequest{Reason: "insufficient funds"})
	require.NoError(t, err)
	assert.True(t, got.IsFailed())
	f.notifier.AssertExpectations(t)
}

func TestService_CancelOnlyByOwner(t *testing.T) {
	f := newFixture()
	p := newTestPayment(t, "100")
	f.repo.On("GetByID", mock.Anything, p.ID()).Return(stored(t, p), nil)
	f.repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	_, err := f.svc.Cancel(context.Background(), member(uuid.New()), p.ID())
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	got, err := f.svc.Cancel(context.Background(), member(p.UserID()), p.ID())
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, got.Status())
}

func TestService_RefundPartialThenFull(t *testing.T) {
	f := newFixture()
	p := completed(t, "100")
	forty := decimal.NewFromInt(40)

	f.repo.On("GetByID", mock.Anything, p.ID()).Return(stored(t, p), nil).Once()
	f.repo.On("Update", mock.Anything, mock.Anything).Return(nil)
	f.notifier.On("PaymentRefunded", mock.Anything, p.UserID(), forty, "AZN", false).Return().Once()

	got, err := f.svc.Refund(context.Background(), p.ID(), RefundRequest{Amount: &forty, Reason: "customer_request"})
	require.NoError(t, err)
	assert.Equal(t, StatusPartiallyRefunded, got.Status())

	f.repo.On("GetByID", mock.Anything, p.ID()).Return(stored(t, got), nil).Once()
	f.notifier.On("PaymentRefunded", mock.Anything, p.UserID(), mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(60))
	}), "AZN", true).Return().Once()

	got, err = f.svc.Refund(context.Background(), p.ID(), RefundRequest{Reason: "other"})
	require.NoError(t, err)
	assert.Equal(t, StatusRefunded, got.Status())
	f.notifier.AssertExpectations(t)
}

func TestService_RefundBadReason(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Refund(context.Background(), uuid.New(), RefundRequest{Reason: "bored"})
	assert.ErrorIs(t, err, apperror.ErrValidation)
	f.repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestService_Update(t *testing.T) {
	f := newFixture()
	p := newTestPayment(t, "100")
	f.repo.On("GetByID", mock.Anything, p.ID()).Return(stored(t, p), nil)
	f.repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	blank := " "
	_, err := f.svc.Update(context.Background(), p.ID(), UpdateRequest{TransactionID: &blank})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	desc := "Corrected period"
	got, err := f.svc.Update(context.Background(), p.ID(), UpdateRequest{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "Corrected period", got.Description())
}

func TestService_Checkout(t *testing.T) {
	f := newFixture()
	p := newTestPayment(t, "100")
	caller := member(p.UserID())

	f.repo.On("GetByID", mock.Anything, p.ID()).Return(stored(t, p), nil)
	f.repo.On("Update", mock.Anything, mock.MatchedBy(func(p *Payment) bool {
		return p.ExternalReference() == "pref-9"
	})).Return(nil)
	f.gw.On("CreateCheckout", mock.Anything, mock.MatchedBy(func(req gateway.CheckoutRequest) bool {
		return req.ExternalReference == p.ID().String() && req.PayerEmail == caller.Email && req.Currency == "AZN"
	})).Return(gateway.Checkout{PreferenceID: "pref-9", InitPoint: "https://mp/init"}, nil)

	res, err := f.svc.Checkout(context.Background(), caller, p.ID())
	require.NoError(t, err)
	assert.Equal(t, "https://mp/init", res.InitPoint)
	assert.Equal(t, p.ID(), res.PaymentID)
	f.repo.AssertExpectations(t)
}

func TestService_CheckoutRequiresPending(t *testing.T) {
	f := newFixture()
	p := completed(t, "100")
	f.repo.On("GetByID", mock.Anything, p.ID()).Return(stored(t, p), nil)

	_, err := f.svc.Checkout(context.Background(), manager, p.ID())
	assert.ErrorIs(t, err, apperror.ErrInvalidState)
	f.gw.AssertNotCalled(t, "CreateCheckout", mock.Anything, mock.Anything)
}

func TestService_WithoutGateway(t *testing.T) {
	svc := NewService(new(MockRepository), new(MockSubscriptions), nil, new(MockNotifier))

	_, err := svc.Checkout(context.Background(), manager, uuid.New())
	assert.ErrorIs(t, err, apperror.ErrUnavailable)
	_, err = svc.Sync(context.Background(), uuid.New(), SyncRequest{ProcessorPaymentID: "1"})
	assert.ErrorIs(t, err, apperror.ErrUnavailable)
}

func TestService_Sync(t *testing.T) {
	paid := func(status, detail, amount, currency string) gateway.Result {
		return gateway.Result{ProcessorID: "77", Status: status, StatusDetail: detail, Amount: dec(amount), Currency: currency}
	}

	tests := []struct {
		name       string
		result     gateway.Result
		wantStatus Status
		wantErr    error
		notify     bool
	}{
		{"approved", paid(gateway.StatusApproved, "accredited", "100", "AZN"), StatusCompleted, nil, false},
		{"approved lowercase currency", paid(gateway.StatusApproved, "accredited", "100.00", "azn"), StatusCompleted, nil, false},
		{"approved short amount", paid(gateway.StatusApproved, "accredited", "0.01", "AZN"), StatusPending, apperror.ErrValidation, false},
		{"approved other currency", paid(gateway.StatusApproved, "accredited", "100", "USD"), StatusPending, apperror.ErrValidation, false},
		{"rejected", paid(gateway.StatusRejected, "cc_rejected_high_risk", "100", "AZN"), StatusFailed, nil, true},
		{"still pending", paid(gateway.StatusInProcess, "", "100", "AZN"), StatusPending, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			p := newTestPayment(t, "100")
			tt.result.ExternalReference = p.ID().String()

			f.gw.On("FetchStatus", mock.Anything, "77").Return(tt.result, nil)
			f.repo.On("GetByID", mock.Anything, p.ID()).Return(stored(t, p), nil)
			f.repo.On("Update", mock.Anything, mock.Anything).Return(nil)
			if tt.notify {
				f.notifier.On("PaymentFailed", mock.Anything, p.UserID(), p.Amount(), "AZN", tt.result.StatusDetail).Return()
			}

			got, err := f.svc.Sync(context.Background(), p.ID(), SyncRequest{ProcessorPaymentID: "77"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, got.Status())
			if tt.wantStatus == StatusCompleted {
				assert.Equal(t, "77", got.TransactionID())
			}
			f.notifier.AssertExpectations(t)
		})
	}
}

func TestService_SyncIgnoresSettledPayments(t *testing.T) {
	f := newFixture()
	p := newTestPayment(t, "100")
	require.NoError(t, p.MarkFailed("declined", ""))

	f.gw.On("FetchStatus", mock.Anything, "77").
		Return(gateway.Result{ProcessorID: "77", Status: gateway.StatusRejected, ExternalReference: p.ID().String()}, nil)
	f.repo.On("GetByID", mock.Anything, p.ID()).Return(stored(t, p), nil)
	f.repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	got, err := f.svc.Sync(context.Background(), p.ID(), SyncRequest{ProcessorPaymentID: "77"})
	require.NoError(t, err)
	assert.True(t, got.IsFailed())
	f.notifier.AssertNotCalled(t, "PaymentFailed", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_SyncForeignReference(t *testing.T) {
	f := newFixture()
	f.gw.On("FetchStatus", mock.Anything, "77").
		Return(gateway.Result{ProcessorID: "77", Status: gateway.StatusApproved, ExternalReference: uuid.NewString()}, nil)

	_, err := f.svc.Sync(context.Background(), uuid.New(), SyncRequest{ProcessorPaymentID: "77"})
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestService_SyncMissingReference(t *testing.T) {
	f := newFixture()
	f.gw.On("FetchStatus", mock.Anything, "77").
		Return(gateway.Result{ProcessorID: "77", Status: gateway.StatusApproved, Amount: dec("100"), Currency: "AZN"}, nil)

	_, err := f.svc.Sync(context.Background(), uuid.New(), SyncRequest{ProcessorPaymentID: "77"})
	assert.ErrorIs(t, err, apperror.ErrValidation)
	f.repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestService_SyncGatewayError(t *testing.T) {
	f := newFixture()
	f.gw.On("FetchStatus", mock.Anything, "77").Return(gateway.Result{}, errors.New("timeout"))

	_, err := f.svc.Sync(context.Background(), uuid.New(), SyncRequest{ProcessorPaymentID: "77"})
	assert.EqualError(t, err, "timeout")
}
