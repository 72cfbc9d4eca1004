package subscription

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fitcircle/internal/apperror"
	"fitcircle/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct{ mock.Mock }

func (m *MockService) sub(args mock.Arguments) (*Subscription, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Subscription), args.Error(1)
}

func (m *MockService) Tiers() []TierView {
	return m.Called().Get(0).([]TierView)
}

func (m *MockService) Create(ctx context.Context, p auth.Principal, req CreateSubscriptionRequest) (*Subscription, error) {
	return m.sub(m.Called(ctx, p, req))
}

func (m *MockService) Get(ctx context.Context, p auth.Principal, id uuid.UUID) (*Subscription, error) {
	return m.sub(m.Called(ctx, p, id))
}

func (m *MockService) ListForUser(ctx context.Context, p auth.Principal, userID uuid.UUID) ([]*Subscription, error) {
	args := m.Called(ctx, p, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Subscription), args.Error(1)
}

func (m *MockService) Extend(ctx context.Context, p auth.Principal, id uuid.UUID, newEnd time.Time) (*Subscription, error) {
	return m.sub(m.Called(ctx, p, id, newEnd))
}

func (m *MockService) Cancel(ctx context.Context, p auth.Principal, id uuid.UUID, reason string) (*Subscription, error) {
	return m.sub(m.Called(ctx, p, id, reason))
}

func (m *MockService) Reactivate(ctx context.Context, p auth.Principal, id uuid.UUID) (*Subscription, error) {
	return m.sub(m.Called(ctx, p, id))
}

func (m *MockService) Renew(ctx context.Context, p auth.Principal, id uuid.UUID, req RenewRequest) (*Subscription, error) {
	return m.sub(m.Called(ctx, p, id, req))
}

func (m *MockService) AssignTrainer(ctx context.Context, p auth.Principal, id, trainerID uuid.UUID) (*Subscription, error) {
	return m.sub(m.Called(ctx, p, id, trainerID))
}

func (m *MockService) RemoveTrainer(ctx context.Context, p auth.Principal, id uuid.UUID) (*Subscription, error) {
	return m.sub(m.Called(ctx, p, id))
}

func (m *MockService) SetAutoRenewal(ctx context.Context, p auth.Principal, id uuid.UUID, enabled bool) (*Subscription, error) {
	return m.sub(m.Called(ctx, p, id, enabled))
}

func (m *MockService) UpdateAmount(ctx context.Context, p auth.Principal, id uuid.UUID, amount decimal.Decimal) (*Subscription, error) {
	return m.sub(m.Called(ctx, p, id, amount))
}

func (m *MockService) CanAccessGym(ctx context.Context, userID, gymID uuid.UUID) (AccessDecision, error) {
	args := m.Called(ctx, userID, gymID)
	return args.Get(0).(AccessDecision), args.Error(1)
}

var caller = auth.Principal{UserID: uuid.New(), Email: "member@example.com", Role: auth.RoleMember}

func setupRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc)
	r := gin.New()
	r.GET("/subscription-tiers", h.Tiers)

	authed := r.Group("/", func(c *gin.Context) { auth.SetPrincipal(c, caller) })
	authed.POST("/subscriptions", h.Create)
	authed.GET("/subscriptions", h.List)
	authed.GET("/subscriptions/:id", h.Get)
	authed.POST("/subscriptions/:id/cancel", h.Cancel)
	authed.POST("/subscriptions/:id/renew", h.Renew)
	authed.POST("/subscriptions/:id/auto-renewal", h.SetAutoRenewal)
	authed.GET("/gyms/:id/access", h.GymAccess)

	r.GET("/anonymous/subscriptions", h.List)
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_Tiers(t *testing.T) {
	svc := new(MockService)
	svc.On("Tiers").Return([]TierView{TierVip.View()})

	w := doJSON(setupRouter(svc), http.MethodGet, "/subscription-tiers", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"display_name":"VIP"`)
}

func TestHandler_Create(t *testing.T) {
	freezeTime(t, t0)
	svc := new(MockService)
	sub := newTestSubscription(t, 30)
	svc.On("Create", mock.Anything, caller, CreateSubscriptionRequest{Tier: "basic", AutoRenewal: true}).Return(sub, nil)
	r := setupRouter(svc)

	w := doJSON(r, http.MethodPost, "/subscriptions", `{"tier":"basic","auto_renewal":true}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var view View
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, sub.ID(), view.ID)
	assert.True(t, view.IsActive)
	assert.Equal(t, 30, view.RemainingDays)

	w = doJSON(r, http.MethodPost, "/subscriptions", `{"auto_renewal":true}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_List(t *testing.T) {
	freezeTime(t, t0)
	svc := new(MockService)
	other := uuid.New()
	svc.On("ListForUser", mock.Anything, caller, caller.UserID).Return([]*Subscription{newTestSubscription(t, 30)}, nil)
	svc.On("ListForUser", mock.Anything, caller, other).Return(nil, apperror.Forbidden("subscription.list", "nope"))
	r := setupRouter(svc)

	w := doJSON(r, http.MethodGet, "/subscriptions", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/subscriptions?user_id="+other.String(), "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodGet, "/subscriptions?user_id=bogus", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodGet, "/anonymous/subscriptions", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_Cancel(t *testing.T) {
	freezeTime(t, t0)
	svc := new(MockService)
	sub := newTestSubscription(t, 30)
	require.NoError(t, sub.Cancel("moving"))
	svc.On("Cancel", mock.Anything, caller, sub.ID(), "moving").Return(sub, nil).Once()
	svc.On("Cancel", mock.Anything, caller, sub.ID(), "").
		Return(nil, apperror.InvalidState("subscription.cancel", "subscription is already cancelled")).Once()
	r := setupRouter(svc)

	w := doJSON(r, http.MethodPost, "/subscriptions/"+sub.ID().String()+"/cancel", `{"reason":"moving"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_cancelled":true`)

	w = doJSON(r, http.MethodPost, "/subscriptions/"+sub.ID().String()+"/cancel", "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), `"kind":"invalid_state"`)

	svc.AssertExpectations(t)
}

func TestHandler_RenewCreates(t *testing.T) {
	freezeTime(t, t0)
	svc := new(MockService)
	sub := newTestSubscription(t, 30)
	next, err := sub.Renew(sub.EndDate(), sub.EndDate().AddDate(0, 0, 30), nil)
	require.NoError(t, err)
	svc.On("Renew", mock.Anything, caller, sub.ID(), RenewRequest{}).Return(next, nil)

	w := doJSON(setupRouter(svc), http.MethodPost, "/subscriptions/"+sub.ID().String()+"/renew", "")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), next.ID().String())
}

func TestHandler_SetAutoRenewal(t *testing.T) {
	freezeTime(t, t0)
	svc := new(MockService)
	sub := newTestSubscription(t, 30)
	svc.On("SetAutoRenewal", mock.Anything, caller, sub.ID(), false).Return(sub, nil)
	r := setupRouter(svc)

	w := doJSON(r, http.MethodPost, "/subscriptions/"+sub.ID().String()+"/auto-renewal", `{"enabled":false}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPost, "/subscriptions/"+sub.ID().String()+"/auto-renewal", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GymAccess(t *testing.T) {
	svc := new(MockService)
	gymID := uuid.New()
	svc.On("CanAccessGym", mock.Anything, caller.UserID, gymID).
		Return(AccessDecision{Allowed: false, Reason: "no active subscription"}, nil)

	w := doJSON(setupRouter(svc), http.MethodGet, "/gyms/"+gymID.String()+"/access", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"allowed":false,"reason":"no active subscription"}`, w.Body.String())
}
