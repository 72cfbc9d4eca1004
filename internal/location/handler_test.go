package location

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitcircle/internal/api"
	"fitcircle/internal/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct{ mock.Mock }

func (m *MockService) CreateCountry(ctx context.Context, req CreateCountryRequest) (*Country, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Country), args.Error(1)
}

func (m *MockService) ListCountries(ctx context.Context) ([]Country, error) {
	args := m.Called(ctx)
	return args.Get(0).([]Country), args.Error(1)
}

func (m *MockService) CreateCity(ctx context.Context, req CreateCityRequest) (*City, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*City), args.Error(1)
}

func (m *MockService) ListCities(ctx context.Context, countryID *uuid.UUID) ([]City, error) {
	args := m.Called(ctx, countryID)
	return args.Get(0).([]City), args.Error(1)
}

func (m *MockService) DeleteCity(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockService) CityExists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func setupRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc)
	r := gin.New()
	r.GET("/countries", h.ListCountries)
	r.POST("/countries", h.CreateCountry)
	r.GET("/cities", h.ListCities)
	r.POST("/cities", h.CreateCity)
	r.DELETE("/cities/:id", h.DeleteCity)
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

func TestHandler_CreateCountry(t *testing.T) {
	svc := new(MockService)
	svc.On("CreateCountry", mock.Anything, CreateCountryRequest{Name: "Azerbaijan", Code: "AZ"}).
		Return(&Country{ID: uuid.New(), Name: "Azerbaijan", Code: "AZ"}, nil)

	w := doJSON(setupRouter(svc), http.MethodPost, "/countries", `{"name":"Azerbaijan","code":"AZ"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	var body Country
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "AZ", body.Code)
}

func TestHandler_CreateCountryBadCode(t *testing.T) {
	svc := new(MockService)

	w := doJSON(setupRouter(svc), http.MethodPost, "/countries", `{"name":"Azerbaijan","code":"AZE"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "CreateCountry", mock.Anything, mock.Anything)
}

func TestHandler_ListCountriesEmpty(t *testing.T) {
	svc := new(MockService)
	svc.On("ListCountries", mock.Anything).Return([]Country(nil), nil)

	w := doJSON(setupRouter(svc), http.MethodGet, "/countries", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_CreateCity(t *testing.T) {
	svc := new(MockService)
	countryID := uuid.New()
	city := &City{ID: uuid.New(), Name: "Baku", PostalCode: "AZ1000", CountryID: countryID}
	svc.On("CreateCity", mock.Anything, mock.MatchedBy(func(req CreateCityRequest) bool {
		return req.CountryID == countryID && req.Name == "Baku"
	})).Return(city, nil)

	body := `{"name":"Baku","postal_code":"AZ1000","country_id":"` + countryID.String() + `"}`
	w := doJSON(setupRouter(svc), http.MethodPost, "/cities", body)
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp api.IDResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, city.ID.String(), resp.ID)
}

func TestHandler_ListCities(t *testing.T) {
	svc := new(MockService)
	countryID := uuid.New()
	svc.On("ListCities", mock.Anything, &countryID).Return([]City{{Name: "Baku"}}, nil)

	w := doJSON(setupRouter(svc), http.MethodGet, "/cities?country_id="+countryID.String(), "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(setupRouter(svc), http.MethodGet, "/cities?country_id=nope", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteCity(t *testing.T) {
	svc := new(MockService)
	id, missing := uuid.New(), uuid.New()
	svc.On("DeleteCity", mock.Anything, id).Return(nil)
	svc.On("DeleteCity", mock.Anything, missing).Return(apperror.NotFound("location.delete_city", "city not found"))

	r := setupRouter(svc)
	assert.Equal(t, http.StatusNoContent, doJSON(r, http.MethodDelete, "/cities/"+id.String(), "").Code)
	assert.Equal(t, http.StatusNotFound, doJSON(r, http.MethodDelete, "/cities/"+missing.String(), "").Code)
	assert.Equal(t, http.StatusBadRequest, doJSON(r, http.MethodDelete, "/cities/xyz", "").Code)
}
