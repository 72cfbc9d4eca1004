package facility

import (
	"context"
	"errors"
	"time"

	"fitcircle/internal/apperror"
	"fitcircle/internal/db"
	"fitcircle/internal/logger"
	"fitcircle/internal/metrics"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GymFinder is the slice of the gym store the facility service needs.
type GymFinder interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type CreateFacilityRequest struct {
	Name        string `json:"name" binding:"required" example:"Lap Pool"`
	Description string `json:"description" binding:"required" example:"Eight 25m lanes"`
	Kind        int    `json:"kind" binding:"required" example:"3"`
	MaxCapacity *int   `json:"max_capacity,omitempty" example:"25"`
}

type Service interface {
	ListKinds() []KindView
	GetKind(code int) (KindView, error)

	Create(ctx context.Context, gymID uuid.UUID, req CreateFacilityRequest) (*Facility, error)
	Get(ctx context.Context, id uuid.UUID) (*Facility, error)
	ListByGym(ctx context.Context, gymID uuid.UUID) ([]*Facility, error)

	CheckIn(ctx context.Context, id uuid.UUID, count int) (*Facility, error)
	CheckOut(ctx context.Context, id uuid.UUID, count int) (*Facility, error)
	UpdateCapacity(ctx context.Context, id uuid.UUID, maxCapacity int) (*Facility, error)
	UpdateHourlyRate(ctx context.Context, id uuid.UUID, rate decimal.Decimal) (*Facility, error)
	SetAvailability(ctx context.Context, id uuid.UUID, available bool, reason string) (*Facility, error)
	ScheduleMaintenance(ctx context.Context, id uuid.UUID, at time.Time) (*Facility, error)
	CompleteMaintenance(ctx context.Context, id uuid.UUID) (*Facility, error)
	SessionCost(ctx context.Context, id uuid.UUID, d time.Duration) (decimal.Decimal, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
	gyms GymFinder
}

func NewService(repo Repository, gyms GymFinder) Service {
	return &service{repo: repo, gyms: gyms}
}

func (s *service) ListKinds() []KindView {
	all := AllKinds()
	views := make([]KindView, 0, len(all))
	for _, k := range all {
		views = append(views, k.View())
	}
	return views
}

func (s *service) GetKind(code int) (KindView, error) {
	k, err := KindFromCode(code)
	if err != nil {
		return KindView{}, err
	}
	return k.View(), nil
}

func (s *service) Create(ctx context.Context, gymID uuid.UUID, req CreateFacilityRequest) (*Facility, error) {
	ok, err := s.gyms.Exists(ctx, gymID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.NotFound("facility.create", "gym %s not found", gymID)
	}

	kind, err := KindFromCode(req.Kind)
	if err != nil {
		return nil, apperror.ValidationField("facility.create", "kind", "unknown facility kind %d", req.Kind)
	}

	f, err := NewFacility(req.Name, req.Description, kind, gymID, req.MaxCapacity)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}

	logger.Info("facility created", "facility_id", f.ID(), "gym_id", gymID, "kind", kind.Name())
	return f, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Facility, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByGym(ctx context.Context, gymID uuid.UUID) ([]*Facility, error) {
	return s.repo.ListByGym(ctx, gymID)
}

// mutate loads the facility, applies one change and saves it, reloading when
// another request got there first.
func (s *service) mutate(ctx context.Context, id uuid.UUID, change func(*Facility) error) (*Facility, error) {
	var f *Facility
	err := db.RetryOnConflict(ctx, func() error {
		var err error
		f, err = s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := change(f); err != nil {
			return err
		}
		return s.repo.Update(ctx, f)
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (s *service) CheckIn(ctx context.Context, id uuid.UUID, count int) (*Facility, error) {
	f, err := s.mutate(ctx, id, func(f *Facility) error {
		if err := f.CheckIn(count); err != nil {
			recordRejection(f, err)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordCheckIn(f.Kind().Name(), count)
	logger.Debug("facility check-in", "facility_id", id, "count", count, "occupancy", f.CurrentOccupancy())
	return f, nil
}

func recordRejection(f *Facility, err error) {
	switch {
	case errors.Is(err, apperror.ErrCapacityExceeded):
		metrics.RecordFacilityRejection(f.Kind().Name(), string(apperror.KindCapacityExceeded))
	case errors.Is(err, apperror.ErrUnavailable):
		metrics.RecordFacilityRejection(f.Kind().Name(), string(apperror.KindUnavailable))
	}
}

func (s *service) CheckOut(ctx context.Context, id uuid.UUID, count int) (*Facility, error) {
	f, err := s.mutate(ctx, id, func(f *Facility) error { return f.CheckOut(count) })
	if err != nil {
		return nil, err
	}

	metrics.RecordCheckOut(f.Kind().Name(), count)
	logger.Debug("facility check-out", "facility_id", id, "count", count, "occupancy", f.CurrentOccupancy())
	return f, nil
}

func (s *service) UpdateCapacity(ctx context.Context, id uuid.UUID, maxCapacity int) (*Facility, error) {
	return s.mutate(ctx, id, func(f *Facility) error { return f.UpdateCapacity(maxCapacity) })
}

func (s *service) UpdateHourlyRate(ctx context.Context, id uuid.UUID, rate decimal.Decimal) (*Facility, error) {
	return s.mutate(ctx, id, func(f *Facility) error { return f.UpdateHourlyRate(rate) })
}

func (s *service) SetAvailability(ctx context.Context, id uuid.UUID, available bool, reason string) (*Facility, error) {
	f, err := s.mutate(ctx, id, func(f *Facility) error { return f.SetAvailability(available, reason) })
	if err != nil {
		return nil, err
	}

	logger.Info("facility availability changed", "facility_id", id, "available", available, "reason", reason)
	return f, nil
}

func (s *service) ScheduleMaintenance(ctx context.Context, id uuid.UUID, at time.Time) (*Facility, error) {
	f, err := s.mutate(ctx, id, func(f *Facility) error { return f.ScheduleMaintenance(at) })
	if err != nil {
		return nil, err
	}

	logger.Info("facility maintenance scheduled", "facility_id", id, "at", at)
	return f, nil
}

func (s *service) CompleteMaintenance(ctx context.Context, id uuid.UUID) (*Facility, error) {
	f, err := s.mutate(ctx, id, func(f *Facility) error { return f.CompleteMaintenance() })
	if err != nil {
		return nil, err
	}

	logger.Info("facility maintenance completed", "facility_id", id)
	return f, nil
}

func (s *service) SessionCost(ctx context.Context, id uuid.UUID, d time.Duration) (decimal.Decimal, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}
	return f.SessionCost(d)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.mutate(ctx, id, func(f *Facility) error { return f.Delete() }); err != nil {
		return err
	}

	logger.Info("facility deleted", "facility_id", id)
	return nil
}
