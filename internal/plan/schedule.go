package plan

import (
	"strings"
	"time"

	"fitcircle/internal/apperror"

	"github.com/google/uuid"
)

const (
	minNameLength = 3
	maxNameLength = 100
)

var now = func() time.Time { return time.Now().UTC() }

func today() time.Time {
	return now().Truncate(24 * time.Hour)
}

// schedule is what workout and diet plans share: an owner, an optional
// trainer, a date window and a completion flag.
type schedule struct {
	id           uuid.UUID
	userID       uuid.UUID
	trainerID    *uuid.UUID
	name         string
	description  string
	start        time.Time
	end          time.Time
	completed    bool
	completedAt  *time.Time
	instructions string
	restrictions string
	custom       bool
	version      int
	createdAt    time.Time
	updatedAt    time.Time
}

func newSchedule(op string, userID uuid.UUID, trainerID *uuid.UUID, name, description string, start, end time.Time, custom bool) (schedule, error) {
	if userID == uuid.Nil {
		return schedule{}, apperror.ValidationField(op, "user_id", "user id is required")
	}
	name, err := validateName(op, name)
	if err != nil {
		return schedule{}, err
	}
	if err := validateWindow(op, start, end); err != nil {
		return schedule{}, err
	}
	if trainerID != nil && *trainerID == uuid.Nil {
		trainerID = nil
	}

	t := now()
	return schedule{
		id:          uuid.New(),
		userID:      userID,
		trainerID:   trainerID,
		name:        name,
		description: strings.TrimSpace(description),
		start:       start.UTC(),
		end:         end.UTC(),
		custom:      custom,
		createdAt:   t,
		updatedAt:   t,
	}, nil
}

func validateName(op, name string) (string, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return "", apperror.ValidationField(op, "name", "name is required")
	case len(name) < minNameLength:
		return "", apperror.ValidationField(op, "name", "name must be at least %d characters", minNameLength)
	case len(name) > maxNameLength:
		return "", apperror.ValidationField(op, "name", "name must be at most %d characters", maxNameLength)
	}
	return name, nil
}

func validateWindow(op string, start, end time.Time) error {
	if !start.Before(end) {
		return apperror.ValidationField(op, "start_date", "start date must be before end date")
	}
	if end.Before(today()) {
		return apperror.ValidationField(op, "end_date", "end date cannot be in the past")
	}
	return nil
}

func (s *schedule) ID() uuid.UUID               { return s.id }
func (s *schedule) UserID() uuid.UUID           { return s.userID }
func (s *schedule) TrainerID() *uuid.UUID       { return s.trainerID }
func (s *schedule) Name() string                { return s.name }
func (s *schedule) Description() string         { return s.description }
func (s *schedule) StartDate() time.Time        { return s.start }
func (s *schedule) EndDate() time.Time          { return s.end }
func (s *schedule) IsCompleted() bool           { return s.completed }
func (s *schedule) CompletedAt() *time.Time     { return s.completedAt }
func (s *schedule) SpecialInstructions() string { return s.instructions }
func (s *schedule) Restrictions() string        { return s.restrictions }
func (s *schedule) IsCustom() bool              { return s.custom }
func (s *schedule) Version() int                { return s.version }

// IsActive is true inside the date window until the plan is completed.
func (s *schedule) IsActive() bool {
	t := now()
	return !s.completed && !t.Before(s.start) && !t.After(s.end)
}

func (s *schedule) RemainingDays() int {
	if !s.IsActive() {
		return 0
	}
	days := int(s.end.Truncate(24*time.Hour).Sub(today()).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func (s *schedule) touch() {
	s.updatedAt = now()
}

func (s *schedule) UpdateBasicInfo(name, description string) error {
	name, err := validateName("plan.update", name)
	if err != nil {
		return err
	}

	s.name = name
	s.description = strings.TrimSpace(description)
	s.touch()
	return nil
}

func (s *schedule) UpdateDates(start, end time.Time) error {
	const op = "plan.update_dates"

	if s.completed {
		return apperror.InvalidState(op, "dates of a completed plan cannot change")
	}
	if err := validateWindow(op, start, end); err != nil {
		return err
	}

	s.start = start.UTC()
	s.end = end.UTC()
	s.touch()
	return nil
}

func (s *schedule) SetSpecialInstructions(text string) {
	s.instructions = strings.TrimSpace(text)
	s.touch()
}

func (s *schedule) SetRestrictions(text string) {
	s.restrictions = strings.TrimSpace(text)
	s.touch()
}

func (s *schedule) Complete() error {
	if s.completed {
		return apperror.InvalidState("plan.complete", "plan is already completed")
	}

	t := now()
	s.completed = true
	s.completedAt = &t
	s.updatedAt = t
	return nil
}

func (s *schedule) Reopen() error {
	if !s.completed {
		return apperror.InvalidState("plan.reopen", "plan is not completed")
	}

	s.completed = false
	s.completedAt = nil
	s.touch()
	return nil
}

// ScheduleRecord holds the columns both plan tables share.
type ScheduleRecord struct {
	ID                  uuid.UUID  `db:"id" json:"id"`
	UserID              uuid.UUID  `db:"user_id" json:"user_id"`
	TrainerID           *uuid.UUID `db:"trainer_id" json:"trainer_id,omitempty"`
	Name                string     `db:"name" json:"name"`
	Description         string     `db:"description" json:"description"`
	StartDate           time.Time  `db:"start_date" json:"start_date"`
	EndDate             time.Time  `db:"end_date" json:"end_date"`
	IsCompleted         bool       `db:"is_completed" json:"is_completed"`
	CompletedAt         *time.Time `db:"completed_at" json:"completed_at,omitempty"`
	SpecialInstructions string     `db:"special_instructions" json:"special_instructions"`
	Restrictions        string     `db:"restrictions" json:"restrictions"`
	IsCustom            bool       `db:"is_custom" json:"is_custom"`
	Version             int        `db:"version" json:"version"`
	CreatedAt           time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at" json:"updated_at"`
}

func (s *schedule) record() ScheduleRecord {
	return ScheduleRecord{
		ID:                  s.id,
		UserID:              s.userID,
		TrainerID:           s.trainerID,
		Name:                s.name,
		Description:         s.description,
		StartDate:           s.start,
		EndDate:             s.end,
		IsCompleted:         s.completed,
		CompletedAt:         s.completedAt,
		SpecialInstructions: s.instructions,
		Restrictions:        s.restrictions,
		IsCustom:            s.custom,
		Version:             s.version,
		CreatedAt:           s.createdAt,
		UpdatedAt:           s.updatedAt,
	}
}

func restoreSchedule(r ScheduleRecord) schedule {
	return schedule{
		id:           r.ID,
		userID:       r.UserID,
		trainerID:    r.TrainerID,
		name:         r.Name,
		description:  r.Description,
		start:        r.StartDate,
		end:          r.EndDate,
		completed:    r.IsCompleted,
		completedAt:  r.CompletedAt,
		instructions: r.SpecialInstructions,
		restrictions: r.Restrictions,
		custom:       r.IsCustom,
		version:      r.Version,
		createdAt:    r.CreatedAt,
		updatedAt:    r.UpdatedAt,
	}
}
