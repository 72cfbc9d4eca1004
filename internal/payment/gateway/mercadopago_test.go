package gateway

import (
	"context"
	"errors"
	"testing"

	"fitcircle/internal/apperror"

	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPreferences struct{ mock.Mock }

func (m *MockPreferences) Create(ctx context.Context, req preference.Request) (*preference.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*preference.Response), args.Error(1)
}

type MockPayments struct{ mock.Mock }

func (m *MockPayments) Get(ctx context.Context, id int) (*payment.Response, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Response), args.Error(1)
}

func TestCreateCheckout(t *testing.T) {
	prefs := new(MockPreferences)
	mp := &MercadoPago{preferences: prefs, notificationURL: "https://api.fitcircle.az/payments/webhook"}

	prefs.On("Create", mock.Anything, mock.MatchedBy(func(req preference.Request) bool {
		return len(req.Items) == 1 &&
			req.Items[0].UnitPrice == 100.5 &&
			req.Items[0].CurrencyID == "AZN" &&
			req.ExternalReference == "pay-1" &&
			req.NotificationURL == "https://api.fitcircle.az/payments/webhook" &&
			req.Payer != nil && req.Payer.Email == "member@fitcircle.az"
	})).Return(&preference.Response{ID: "pref-1", InitPoint: "https://mp/init"}, nil)

	out, err := mp.CreateCheckout(context.Background(), CheckoutRequest{
		ExternalReference: "pay-1",
		Title:             "Premium membership",
		Amount:            decimal.RequireFromString("100.50"),
		Currency:          "azn",
		PayerEmail:        "member@fitcircle.az",
	})
	require.NoError(t, err)
	assert.Equal(t, "pref-1", out.PreferenceID)
	assert.Equal(t, "https://mp/init", out.InitPoint)
}

func TestCreateCheckoutError(t *testing.T) {
	prefs := new(MockPreferences)
	mp := &MercadoPago{preferences: prefs}
	prefs.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("401 unauthorized"))

	_, err := mp.CreateCheckout(context.Background(), CheckoutRequest{Amount: decimal.NewFromInt(1), Currency: "AZN"})
	assert.ErrorContains(t, err, "401 unauthorized")
}

func TestFetchStatus(t *testing.T) {
	pays := new(MockPayments)
	mp := &MercadoPago{payments: pays}
	pays.On("Get", mock.Anything, 123456).Return(&payment.Response{
		Status:            "approved",
		StatusDetail:      "accredited",
		ExternalReference: "pay-1",
		TransactionAmount: 100,
		CurrencyID:        "AZN",
	}, nil)

	res, err := mp.FetchStatus(context.Background(), "123456")
	require.NoError(t, err)
	assert.True(t, res.Approved())
	assert.False(t, res.Declined())
	assert.Equal(t, "approved: accredited", res.Summary())
	assert.True(t, res.Amount.Equal(decimal.NewFromInt(100)))
}

func TestFetchStatusInvalidID(t *testing.T) {
	mp := &MercadoPago{payments: new(MockPayments)}

	_, err := mp.FetchStatus(context.Background(), "abc")
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestResult_Declined(t *testing.T) {
	assert.True(t, Result{Status: StatusRejected}.Declined())
	assert.True(t, Result{Status: StatusCancelled}.Declined())
	assert.False(t, Result{Status: StatusPending}.Declined())
	assert.Equal(t, "pending", Result{Status: StatusPending}.Summary())
}
