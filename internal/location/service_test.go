package location

import (
	"context"
	"errors"
	"testing"

	"fitcircle/internal/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct{ mock.Mock }

func (m *MockRepository) CreateCountry(ctx context.Context, c *Country) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockRepository) ListCountries(ctx context.Context) ([]Country, error) {
	args := m.Called(ctx)
	return args.Get(0).([]Country), args.Error(1)
}

func (m *MockRepository) CountryExists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) CreateCity(ctx context.Context, c *City) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockRepository) ListCities(ctx context.Context, countryID *uuid.UUID) ([]City, error) {
	args := m.Called(ctx, countryID)
	return args.Get(0).([]City), args.Error(1)
}

func (m *MockRepository) CityExists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) DeleteCity(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func TestService_CreateCountryNormalizesCode(t *testing.T) {
	repo := new(MockRepository)
	repo.On("CreateCountry", mock.Anything, mock.MatchedBy(func(c *Country) bool {
		return c.Code == "AZ" && c.Name == "Azerbaijan" && c.ID != uuid.Nil
	})).Return(nil)

	c, err := NewService(repo).CreateCountry(context.Background(), CreateCountryRequest{Name: " Azerbaijan ", Code: "az"})
	require.NoError(t, err)
	assert.Equal(t, "AZ", c.Code)
	repo.AssertExpectations(t)
}

func TestService_CreateCountryBlankName(t *testing.T) {
	repo := new(MockRepository)

	_, err := NewService(repo).CreateCountry(context.Background(), CreateCountryRequest{Name: "   ", Code: "AZ"})
	assert.ErrorIs(t, err, apperror.ErrValidation)
	repo.AssertNotCalled(t, "CreateCountry", mock.Anything, mock.Anything)
}

func TestService_CreateCity(t *testing.T) {
	countryID := uuid.New()

	t.Run("country exists", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("CountryExists", mock.Anything, countryID).Return(true, nil)
		repo.On("CreateCity", mock.Anything, mock.AnythingOfType("*location.City")).Return(nil)

		city, err := NewService(repo).CreateCity(context.Background(), CreateCityRequest{
			Name: "Baku", PostalCode: "AZ1000", CountryID: countryID,
		})
		require.NoError(t, err)
		assert.Equal(t, countryID, city.CountryID)
		repo.AssertExpectations(t)
	})

	t.Run("unknown country", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("CountryExists", mock.Anything, countryID).Return(false, nil)

		_, err := NewService(repo).CreateCity(context.Background(), CreateCityRequest{
			Name: "Baku", PostalCode: "AZ1000", CountryID: countryID,
		})
		assert.ErrorIs(t, err, apperror.ErrNotFound)
		repo.AssertNotCalled(t, "CreateCity", mock.Anything, mock.Anything)
	})

	t.Run("lookup fails", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("CountryExists", mock.Anything, countryID).Return(false, errors.New("db down"))

		_, err := NewService(repo).CreateCity(context.Background(), CreateCityRequest{
			Name: "Baku", PostalCode: "AZ1000", CountryID: countryID,
		})
		assert.EqualError(t, err, "db down")
	})
}

func TestService_DeleteCity(t *testing.T) {
	repo := new(MockRepository)
	id := uuid.New()
	repo.On("DeleteCity", mock.Anything, id).Return(apperror.NotFound("location.delete_city", "city not found"))

	err := NewService(repo).DeleteCity(context.Background(), id)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestService_CityExists(t *testing.T) {
	repo := new(MockRepository)
	id := uuid.New()
	repo.On("CityExists", mock.Anything, id).Return(true, nil)

	ok, err := NewService(repo).CityExists(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, ok)
}
