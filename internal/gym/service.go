package gym

import (
	"context"

	"fitcircle/internal/apperror"
	"fitcircle/internal/db"
	"fitcircle/internal/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CityFinder is the slice of the location store the gym service needs.
type CityFinder interface {
	CityExists(ctx context.Context, id uuid.UUID) (bool, error)
}

type GymRequest struct {
	Name             string          `json:"name" binding:"required,max=100" example:"Iron Temple"`
	Description      string          `json:"description,omitempty" binding:"max=1000" example:"Open 24/7"`
	Address          string          `json:"address" binding:"required" example:"28 May St 12"`
	CityID           uuid.UUID       `json:"city_id" binding:"required" swaggertype:"string" example:"0d5c8a0e-6d1f-4bb0-8a3c-2f0d7f6f2b10"`
	Phone            string          `json:"phone" binding:"required" example:"+994501234567"`
	Email            string          `json:"email,omitempty" binding:"omitempty,email" example:"info@irontemple.az"`
	Latitude         float64         `json:"latitude" example:"40.3777"`
	Longitude        float64         `json:"longitude" example:"49.8920"`
	MonthlyPrice     decimal.Decimal `json:"monthly_price" swaggertype:"string" example:"75"`
	VipSupported     bool            `json:"is_vip_supported" example:"false"`
	CorporatePartner bool            `json:"is_corporate_partner" example:"true"`
}

func (r GymRequest) info() Info {
	return Info{
		Name:             r.Name,
		Description:      r.Description,
		Address:          r.Address,
		CityID:           r.CityID,
		Phone:            r.Phone,
		Email:            r.Email,
		Latitude:         r.Latitude,
		Longitude:        r.Longitude,
		MonthlyPrice:     r.MonthlyPrice,
		VipSupported:     r.VipSupported,
		CorporatePartner: r.CorporatePartner,
	}
}

type Service interface {
	Create(ctx context.Context, req GymRequest) (*Gym, error)
	Get(ctx context.Context, id uuid.UUID) (*Gym, error)
	List(ctx context.Context, cityID *uuid.UUID) ([]*Gym, error)
	Update(ctx context.Context, id uuid.UUID, req GymRequest) (*Gym, error)
	View(g *Gym) View

	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	MonthlyPrice(ctx context.Context, id uuid.UUID) (decimal.Decimal, error)
}

type service struct {
	repo   Repository
	cities CityFinder
	bands  PriceBands
}

func NewService(repo Repository, cities CityFinder, bands PriceBands) Service {
	return &service{repo: repo, cities: cities, bands: bands}
}

func (s *service) checkRequest(ctx context.Context, op string, req GymRequest) error {
	if _, err := s.bands.Classify(req.MonthlyPrice); err != nil {
		return err
	}

	ok, err := s.cities.CityExists(ctx, req.CityID)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NotFound(op, "city %s not found", req.CityID)
	}
	return nil
}

func (s *service) Create(ctx context.Context, req GymRequest) (*Gym, error) {
	if err := s.checkRequest(ctx, "gym.create", req); err != nil {
		return nil, err
	}

	g, err := NewGym(req.info())
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, g); err != nil {
		return nil, err
	}

	logger.Info("gym created", "gym_id", g.ID(), "name", g.Name())
	return g, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Gym, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, cityID *uuid.UUID) ([]*Gym, error) {
	return s.repo.List(ctx, cityID)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req GymRequest) (*Gym, error) {
	if err := s.checkRequest(ctx, "gym.update", req); err != nil {
		return nil, err
	}

	var g *Gym
	err := db.RetryOnConflict(ctx, func() error {
		var err error
		if g, err = s.repo.GetByID(ctx, id); err != nil {
			return err
		}
		if err := g.UpdateInfo(req.info()); err != nil {
			return err
		}
		return s.repo.Update(ctx, g)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("gym updated", "gym_id", id)
	return g, nil
}

// View classifies the gym. Gyms priced below the configured minimum have no
// band.
func (s *service) View(g *Gym) View {
	band, _ := s.bands.Classify(g.MonthlyPrice())
	return View{Record: g.Record(), PriceBand: band}
}

func (s *service) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.repo.Exists(ctx, id)
}

func (s *service) MonthlyPrice(ctx context.Context, id uuid.UUID) (decimal.Decimal, error) {
	return s.repo.MonthlyPrice(ctx, id)
}
