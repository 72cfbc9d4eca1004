package trainer

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"fitcircle/internal/apperror"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5

	maxCommentLength = 500
)

// blockedWords are rejected anywhere in a rating comment, matched as whole
// words regardless of case.
var blockedWords = map[string]bool{
	"idiot":   true,
	"stupid":  true,
	"scam":    true,
	"fraud":   true,
	"useless": true,
	"moron":   true,
	"damn":    true,
	"crap":    true,
}

// Rating is one user's score for a trainer.
type Rating struct {
	id        uuid.UUID
	trainerID uuid.UUID
	userID    uuid.UUID
	rating    int
	comment   string
	active    bool
	editedAt  *time.Time
	version   int
	createdAt time.Time
	updatedAt time.Time
}

// NewRating validates the score and comment. A trainer cannot rate
// themselves.
func NewRating(trainerID, userID uuid.UUID, rating int, comment string) (*Rating, error) {
	const op = "rating.create"

	if err := validateScore(op, rating); err != nil {
		return nil, err
	}
	comment = strings.TrimSpace(comment)
	if err := validateComment(op, comment); err != nil {
		return nil, err
	}
	if trainerID == uuid.Nil || userID == uuid.Nil {
		return nil, apperror.Validation(op, "trainer id and user id are required")
	}
	if trainerID == userID {
		return nil, apperror.ValidationField(op, "user_id", "trainers cannot rate themselves")
	}

	t := now()
	return &Rating{
		id:        uuid.New(),
		trainerID: trainerID,
		userID:    userID,
		rating:    rating,
		comment:   comment,
		active:    true,
		createdAt: t,
		updatedAt: t,
	}, nil
}

func validateScore(op string, rating int) error {
	if rating < MinRating || rating > MaxRating {
		return apperror.Range(op, "rating", "rating must be between %d and %d, got %d", MinRating, MaxRating, rating)
	}
	return nil
}

func validateComment(op, comment string) error {
	if utf8.RuneCountInString(comment) > maxCommentLength {
		return apperror.ValidationField(op, "comment", "comment must be at most %d characters", maxCommentLength)
	}
	words := strings.FieldsFunc(strings.ToLower(comment), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, w := range words {
		if blockedWords[w] {
			return apperror.ValidationField(op, "comment", "comment contains inappropriate language")
		}
	}
	return nil
}

func (r *Rating) ID() uuid.UUID        { return r.id }
func (r *Rating) TrainerID() uuid.UUID { return r.trainerID }
func (r *Rating) UserID() uuid.UUID    { return r.userID }
func (r *Rating) Rating() int          { return r.rating }
func (r *Rating) Comment() string      { return r.comment }
func (r *Rating) IsActive() bool       { return r.active }
func (r *Rating) EditedAt() *time.Time { return r.editedAt }
func (r *Rating) Version() int         { return r.version }
func (r *Rating) CreatedAt() time.Time { return r.createdAt }
func (r *Rating) IsEdited() bool       { return r.editedAt != nil }

func (r *Rating) markEdited() {
	t := now()
	r.editedAt = &t
	r.updatedAt = t
}

// UpdateRating changes the score. Setting the same score is a no-op and does
// not mark the rating as edited.
func (r *Rating) UpdateRating(rating int) error {
	if err := validateScore("rating.update", rating); err != nil {
		return err
	}
	if rating == r.rating {
		return nil
	}

	r.rating = rating
	r.markEdited()
	return nil
}

// UpdateComment follows the same no-op rule as UpdateRating.
func (r *Rating) UpdateComment(comment string) error {
	comment = strings.TrimSpace(comment)
	if err := validateComment("rating.update", comment); err != nil {
		return err
	}
	if comment == r.comment {
		return nil
	}

	r.comment = comment
	r.markEdited()
	return nil
}

func (r *Rating) Activate() {
	r.active = true
	r.updatedAt = now()
}

func (r *Rating) Deactivate() {
	r.active = false
	r.updatedAt = now()
}

type RatingRecord struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	TrainerID uuid.UUID  `db:"trainer_id" json:"trainer_id"`
	UserID    uuid.UUID  `db:"user_id" json:"user_id"`
	Rating    int        `db:"rating" json:"rating"`
	Comment   *string    `db:"comment" json:"comment,omitempty"`
	IsActive  bool       `db:"is_active" json:"is_active"`
	EditedAt  *time.Time `db:"edited_at" json:"edited_at,omitempty"`
	Version   int        `db:"version" json:"version"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

func (r *Rating) Record() RatingRecord {
	rec := RatingRecord{
		ID:        r.id,
		TrainerID: r.trainerID,
		UserID:    r.userID,
		Rating:    r.rating,
		IsActive:  r.active,
		EditedAt:  r.editedAt,
		Version:   r.version,
		CreatedAt: r.createdAt,
		UpdatedAt: r.updatedAt,
	}
	if r.comment != "" {
		comment := r.comment
		rec.Comment = &comment
	}
	return rec
}

func RestoreRating(rec RatingRecord) (*Rating, error) {
	if err := validateScore("rating.restore", rec.Rating); err != nil {
		return nil, err
	}

	r := &Rating{
		id:        rec.ID,
		trainerID: rec.TrainerID,
		userID:    rec.UserID,
		rating:    rec.Rating,
		active:    rec.IsActive,
		editedAt:  rec.EditedAt,
		version:   rec.Version,
		createdAt: rec.CreatedAt,
		updatedAt: rec.UpdatedAt,
	}
	if rec.Comment != nil {
		r.comment = *rec.Comment
	}
	return r, nil
}
