package trainer

import (
	"context"

	"fitcircle/internal/apperror"
	"fitcircle/internal/auth"
	"fitcircle/internal/db"
	"fitcircle/internal/logger"
	"fitcircle/internal/metrics"

	"github.com/google/uuid"
)

// GymFinder is the slice of the gym store the trainer service needs.
type GymFinder interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type TrainerRequest struct {
	FirstName       string `json:"first_name" binding:"required,max=50" example:"Leyla"`
	LastName        string `json:"last_name" binding:"required,max=50" example:"Mammadova"`
	Email           string `json:"email" binding:"required,email" example:"leyla@irontemple.az"`
	Phone           string `json:"phone" binding:"required,max=20" example:"+994551112233"`
	Bio             string `json:"bio,omitempty" binding:"max=1000" example:"Olympic weightlifting coach"`
	ProfileImageURL string `json:"profile_image_url,omitempty" binding:"omitempty,url" example:"https://cdn.fitcircle.az/t/leyla.jpg"`
	CoverImageURL   string `json:"cover_image_url,omitempty" binding:"omitempty,url"`
	InstagramHandle string `json:"instagram_handle,omitempty" example:"leyla.lifts"`
}

// ProfileRequest carries the editable fields. The email address cannot be
// changed.
type ProfileRequest struct {
	FirstName       string `json:"first_name" binding:"required,max=50" example:"Leyla"`
	LastName        string `json:"last_name" binding:"required,max=50" example:"Mammadova"`
	Phone           string `json:"phone" binding:"required,max=20" example:"+994551112233"`
	Bio             string `json:"bio,omitempty" binding:"max=1000"`
	ProfileImageURL string `json:"profile_image_url,omitempty" binding:"omitempty,url"`
	CoverImageURL   string `json:"cover_image_url,omitempty" binding:"omitempty,url"`
	InstagramHandle string `json:"instagram_handle,omitempty"`
}

type RatingRequest struct {
	Rating  int    `json:"rating" example:"5"`
	Comment string `json:"comment,omitempty" example:"Great technique cues"`
}

// UpdateRatingRequest leaves the comment alone when it is omitted.
type UpdateRatingRequest struct {
	Rating  int     `json:"rating" example:"4"`
	Comment *string `json:"comment,omitempty"`
}

type Service interface {
	Create(ctx context.Context, gymID uuid.UUID, req TrainerRequest) (*Trainer, error)
	Get(ctx context.Context, id uuid.UUID) (*Trainer, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req ProfileRequest) (*Trainer, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	Rate(ctx context.Context, p auth.Principal, trainerID uuid.UUID, req RatingRequest) (*Rating, error)
	UpdateRating(ctx context.Context, p auth.Principal, id uuid.UUID, req UpdateRatingRequest) (*Rating, error)
	SetRatingActive(ctx context.Context, id uuid.UUID, active bool) (*Rating, error)
}

type service struct {
	repo Repository
	gyms GymFinder
}

func NewService(repo Repository, gyms GymFinder) Service {
	return &service{repo: repo, gyms: gyms}
}

func (s *service) Create(ctx context.Context, gymID uuid.UUID, req TrainerRequest) (*Trainer, error) {
	ok, err := s.gyms.Exists(ctx, gymID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.NotFound("trainer.create", "gym %s not found", gymID)
	}

	t, err := NewTrainer(gymID, Profile{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		Bio:             req.Bio,
		ProfileImageURL: req.ProfileImageURL,
		CoverImageURL:   req.CoverImageURL,
		InstagramHandle: req.InstagramHandle,
	})
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	logger.Info("trainer created", "trainer_id", t.ID(), "gym_id", gymID)
	return t, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Trainer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.repo.Exists(ctx, id)
}

func (s *service) UpdateProfile(ctx context.Context, id uuid.UUID, req ProfileRequest) (*Trainer, error) {
	var t *Trainer
	err := db.RetryOnConflict(ctx, func() error {
		var err error
		t, err = s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		err = t.UpdateProfile(Profile{
			FirstName:       req.FirstName,
			LastName:        req.LastName,
			Phone:           req.Phone,
			Bio:             req.Bio,
			ProfileImageURL: req.ProfileImageURL,
			CoverImageURL:   req.CoverImageURL,
			InstagramHandle: req.InstagramHandle,
		})
		if err != nil {
			return err
		}
		return s.repo.Update(ctx, t)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("trainer profile updated", "trainer_id", id)
	return t, nil
}

// Rate records the caller's rating of a trainer. A member rates a trainer
// at most once; later changes go through UpdateRating.
func (s *service) Rate(ctx context.Context, p auth.Principal, trainerID uuid.UUID, req RatingRequest) (*Rating, error) {
	t, err := s.repo.GetByID(ctx, trainerID)
	if err != nil {
		return nil, err
	}

	if t.IsAccount(p.Email) {
		return nil, apperror.ValidationField("trainer.rate", "trainer_id", "trainers cannot rate themselves")
	}

	r, err := NewRating(trainerID, p.UserID, req.Rating, req.Comment)
	if err != nil {
		return nil, err
	}
	if err := t.AddRating(r); err != nil {
		return nil, err
	}
	if err := s.repo.CreateRating(ctx, r); err != nil {
		return nil, err
	}

	metrics.RecordRating()
	logger.Info("trainer rated",
		"trainer_id", trainerID,
		"user_id", p.UserID,
		"rating", r.Rating(),
		"average", t.AverageRating(),
	)
	return r, nil
}

func (s *service) mutateRating(ctx context.Context, id uuid.UUID, change func(*Rating) error) (*Rating, error) {
	var r *Rating
	err := db.RetryOnConflict(ctx, func() error {
		var err error
		r, err = s.repo.GetRating(ctx, id)
		if err != nil {
			return err
		}
		if err := change(r); err != nil {
			return err
		}
		return s.repo.UpdateRating(ctx, r)
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (s *service) UpdateRating(ctx context.Context, p auth.Principal, id uuid.UUID, req UpdateRatingRequest) (*Rating, error) {
	r, err := s.mutateRating(ctx, id, func(r *Rating) error {
		if !p.CanActFor(r.UserID()) {
			return apperror.Forbidden("rating.update", "rating belongs to another user")
		}
		if err := r.UpdateRating(req.Rating); err != nil {
			return err
		}
		if req.Comment != nil {
			return r.UpdateComment(*req.Comment)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("rating updated", "rating_id", id, "rating", r.Rating(), "edited", r.IsEdited())
	return r, nil
}

func (s *service) SetRatingActive(ctx context.Context, id uuid.UUID, active bool) (*Rating, error) {
	r, err := s.mutateRating(ctx, id, func(r *Rating) error {
		if active {
			r.Activate()
		} else {
			r.Deactivate()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("rating moderated", "rating_id", id, "active", active)
	return r, nil
}
