package trainer

import (
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"fitcircle/internal/apperror"

	"github.com/google/uuid"
)

var now = func() time.Time { return time.Now().UTC() }

// Profile is the editable part of a trainer.
type Profile struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Bio             string
	ProfileImageURL string
	CoverImageURL   string
	InstagramHandle string
}

func (p Profile) normalized() Profile {
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	p.Phone = strings.TrimSpace(p.Phone)
	p.Bio = strings.TrimSpace(p.Bio)
	p.ProfileImageURL = strings.TrimSpace(p.ProfileImageURL)
	p.CoverImageURL = strings.TrimSpace(p.CoverImageURL)
	p.InstagramHandle = strings.TrimPrefix(strings.TrimSpace(p.InstagramHandle), "@")
	return p
}

type limit struct {
	field    string
	value    string
	max      int
	required bool
}

func validateProfile(op string, p Profile) error {
	limits := []limit{
		{"first_name", p.FirstName, 50, true},
		{"last_name", p.LastName, 50, true},
		{"email", p.Email, 100, true},
		{"phone", p.Phone, 20, true},
		{"bio", p.Bio, 1000, false},
		{"profile_image_url", p.ProfileImageURL, 250, false},
		{"cover_image_url", p.CoverImageURL, 250, false},
		{"instagram_handle", p.InstagramHandle, 100, false},
	}
	for _, l := range limits {
		if l.required && l.value == "" {
			return apperror.ValidationField(op, l.field, "%s is required", l.field)
		}
		if utf8.RuneCountInString(l.value) > l.max {
			return apperror.ValidationField(op, l.field, "%s must be at most %d characters", l.field, l.max)
		}
	}
	if _, err := mail.ParseAddress(p.Email); err != nil {
		return apperror.ValidationField(op, "email", "invalid email address")
	}
	return nil
}

// Trainer works at one gym and collects ratings from members.
type Trainer struct {
	id        uuid.UUID
	gymID     uuid.UUID
	profile   Profile
	ratings   []*Rating
	version   int
	createdAt time.Time
	updatedAt time.Time
}

func NewTrainer(gymID uuid.UUID, profile Profile) (*Trainer, error) {
	const op = "trainer.create"

	if gymID == uuid.Nil {
		return nil, apperror.ValidationField(op, "gym_id", "gym id is required")
	}
	profile = profile.normalized()
	if err := validateProfile(op, profile); err != nil {
		return nil, err
	}

	t := now()
	return &Trainer{
		id:        uuid.New(),
		gymID:     gymID,
		profile:   profile,
		createdAt: t,
		updatedAt: t,
	}, nil
}

func (t *Trainer) ID() uuid.UUID    { return t.id }
func (t *Trainer) GymID() uuid.UUID { return t.gymID }
func (t *Trainer) Profile() Profile { return t.profile }
func (t *Trainer) Version() int     { return t.version }

func (t *Trainer) FullName() string {
	return t.profile.FirstName + " " + t.profile.LastName
}

// IsAccount reports whether the user account with this email is the
// trainer's own. Trainer and user emails are both stored lowercased.
func (t *Trainer) IsAccount(email string) bool {
	return t.profile.Email != "" && strings.EqualFold(t.profile.Email, strings.TrimSpace(email))
}

// Ratings returns a copy of the trainer's ratings in insertion order.
func (t *Trainer) Ratings() []*Rating {
	out := make([]*Rating, len(t.ratings))
	copy(out, t.ratings)
	return out
}

// UpdateProfile replaces everything except the email address, which stays
// the one the trainer was registered with.
func (t *Trainer) UpdateProfile(p Profile) error {
	p.Email = t.profile.Email
	p = p.normalized()
	if err := validateProfile("trainer.update_profile", p); err != nil {
		return err
	}

	t.profile = p
	t.updatedAt = now()
	return nil
}

func (t *Trainer) AddRating(r *Rating) error {
	const op = "trainer.add_rating"

	if r == nil {
		return apperror.Validation(op, "rating is required")
	}
	if r.TrainerID() != t.id {
		return apperror.ValidationField(op, "trainer_id", "rating belongs to trainer %s", r.TrainerID())
	}
	for _, existing := range t.ratings {
		if existing.ID() == r.ID() {
			return apperror.InvalidState(op, "rating %s is already attached", r.ID())
		}
	}

	t.ratings = append(t.ratings, r)
	return nil
}

// AverageRating is the mean score over active ratings, or 0 when there are
// none.
func (t *Trainer) AverageRating() float64 {
	sum, n := 0, 0
	for _, r := range t.ratings {
		if r.IsActive() {
			sum += r.Rating()
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func (t *Trainer) ActiveRatingCount() int {
	n := 0
	for _, r := range t.ratings {
		if r.IsActive() {
			n++
		}
	}
	return n
}

type Record struct {
	ID              uuid.UUID `db:"id" json:"id"`
	GymID           uuid.UUID `db:"gym_id" json:"gym_id"`
	FirstName       string    `db:"first_name" json:"first_name"`
	LastName        string    `db:"last_name" json:"last_name"`
	Email           string    `db:"email" json:"email"`
	Phone           string    `db:"phone" json:"phone"`
	Bio             *string   `db:"bio" json:"bio,omitempty"`
	ProfileImageURL *string   `db:"profile_image_url" json:"profile_image_url,omitempty"`
	CoverImageURL   *string   `db:"cover_image_url" json:"cover_image_url,omitempty"`
	InstagramHandle *string   `db:"instagram_handle" json:"instagram_handle,omitempty"`
	Version         int       `db:"version" json:"version"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
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

func (t *Trainer) Record() Record {
	return Record{
		ID:              t.id,
		GymID:           t.gymID,
		FirstName:       t.profile.FirstName,
		LastName:        t.profile.LastName,
		Email:           t.profile.Email,
		Phone:           t.profile.Phone,
		Bio:             optional(t.profile.Bio),
		ProfileImageURL: optional(t.profile.ProfileImageURL),
		CoverImageURL:   optional(t.profile.CoverImageURL),
		InstagramHandle: optional(t.profile.InstagramHandle),
		Version:         t.version,
		CreatedAt:       t.createdAt,
		UpdatedAt:       t.updatedAt,
	}
}

// Restore rehydrates a trainer and its ratings. Ratings that belong to
// another trainer are rejected.
func Restore(rec Record, ratings []*Rating) (*Trainer, error) {
	t := &Trainer{
		id:    rec.ID,
		gymID: rec.GymID,
		profile: Profile{
			FirstName:       rec.FirstName,
			LastName:        rec.LastName,
			Email:           rec.Email,
			Phone:           rec.Phone,
			Bio:             deref(rec.Bio),
			ProfileImageURL: deref(rec.ProfileImageURL),
			CoverImageURL:   deref(rec.CoverImageURL),
			InstagramHandle: deref(rec.InstagramHandle),
		},
		version:   rec.Version,
		createdAt: rec.CreatedAt,
		updatedAt: rec.UpdatedAt,
	}
	for _, r := range ratings {
		if err := t.AddRating(r); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// View is the JSON shape of a trainer with its rating summary.
type View struct {
	Record
	AverageRating float64        `json:"average_rating" example:"4.5"`
	RatingCount   int            `json:"rating_count" example:"12"`
	Ratings       []RatingRecord `json:"ratings"`
}

// View lists active ratings only.
func (t *Trainer) View() View {
	v := View{
		Record:        t.Record(),
		AverageRating: t.AverageRating(),
		RatingCount:   t.ActiveRatingCount(),
		Ratings:       []RatingRecord{},
	}
	for _, r := range t.ratings {
		if r.IsActive() {
			v.Ratings = append(v.Ratings, r.Record())
		}
	}
	return v
}
