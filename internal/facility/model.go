package facility

import (
	"strings"
	"time"
	"unicode/utf8"

	"fitcircle/internal/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 500

	maintenanceReason = "scheduled maintenance"
)

var now = func() time.Time { return time.Now().UTC() }

// Facility is an occupancy-bounded resource owned by a gym. Occupancy never
// leaves [0, maxCapacity].
type Facility struct {
	id                uuid.UUID
	gymID             uuid.UUID
	name              string
	description       string
	kind              Kind
	maxCapacity       int
	hourlyRate        decimal.Decimal
	available         bool
	occupancy         int
	maintenanceAt     *time.Time
	unavailableReason string
	version           int
	createdAt         time.Time
	updatedAt         time.Time
	deletedAt         *time.Time
}

// NewFacility validates its input and returns an available, empty facility.
// Capacity and hourly rate default to the kind's values.
func NewFacility(name, description string, kind Kind, gymID uuid.UUID, maxCapacity *int) (*Facility, error) {
	const op = "facility.create"

	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)

	if err := validateText(op, "name", name, maxNameLength); err != nil {
		return nil, err
	}
	if err := validateText(op, "description", description, maxDescriptionLength); err != nil {
		return nil, err
	}
	if !kind.Valid() {
		return nil, apperror.ValidationField(op, "kind", "unknown facility kind %d", int(kind))
	}
	if gymID == uuid.Nil {
		return nil, apperror.ValidationField(op, "gym_id", "gym id is required")
	}

	capacity := kind.DefaultMaxCapacity()
	if maxCapacity != nil {
		capacity = *maxCapacity
	}
	if capacity <= 0 {
		return nil, apperror.ValidationField(op, "max_capacity", "max capacity must be greater than zero")
	}

	t := now()
	return &Facility{
		id:          uuid.New(),
		gymID:       gymID,
		name:        name,
		description: description,
		kind:        kind,
		maxCapacity: capacity,
		hourlyRate:  kind.BaseHourlyRate(),
		available:   true,
		createdAt:   t,
		updatedAt:   t,
	}, nil
}

func validateText(op, field, value string, max int) error {
	if value == "" {
		return apperror.ValidationField(op, field, "%s is required", field)
	}
	if utf8.RuneCountInString(value) > max {
		return apperror.ValidationField(op, field, "%s must be at most %d characters", field, max)
	}
	return nil
}

func (f *Facility) ID() uuid.UUID               { return f.id }
func (f *Facility) GymID() uuid.UUID            { return f.gymID }
func (f *Facility) Name() string                { return f.name }
func (f *Facility) Description() string         { return f.description }
func (f *Facility) Kind() Kind                  { return f.kind }
func (f *Facility) MaxCapacity() int            { return f.maxCapacity }
func (f *Facility) HourlyRate() decimal.Decimal { return f.hourlyRate }
func (f *Facility) IsAvailable() bool           { return f.available }
func (f *Facility) CurrentOccupancy() int       { return f.occupancy }
func (f *Facility) UnavailableReason() string   { return f.unavailableReason }
func (f *Facility) Version() int                { return f.version }
func (f *Facility) IsDeleted() bool             { return f.deletedAt != nil }
func (f *Facility) MaintenanceAt() *time.Time   { return f.maintenanceAt }
func (f *Facility) IsUnderMaintenance() bool    { return f.maintenanceAt != nil }

func (f *Facility) AvailableSpots() int {
	return f.maxCapacity - f.occupancy
}

// OccupancyRate is the current occupancy as a percentage of capacity.
func (f *Facility) OccupancyRate() float64 {
	if f.maxCapacity == 0 {
		return 0
	}
	return float64(f.occupancy) * 100 / float64(f.maxCapacity)
}

func (f *Facility) IsFull() bool {
	return f.occupancy >= f.maxCapacity
}

func (f *Facility) touch() {
	f.updatedAt = now()
}

func (f *Facility) UpdateDetails(name, description string) error {
	const op = "facility.update_details"

	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if err := validateText(op, "name", name, maxNameLength); err != nil {
		return err
	}
	if err := validateText(op, "description", description, maxDescriptionLength); err != nil {
		return err
	}

	f.name = name
	f.description = description
	f.touch()
	return nil
}

func (f *Facility) CheckIn(count int) error {
	const op = "facility.check_in"

	if count <= 0 {
		return apperror.ValidationField(op, "count", "count must be greater than zero")
	}
	if !f.available {
		return apperror.Unavailable(op, "facility %q is not available", f.name)
	}
	if f.occupancy+count > f.maxCapacity {
		return apperror.CapacityExceeded(op, "facility %q has %d free spots, requested %d",
			f.name, f.AvailableSpots(), count)
	}

	f.occupancy += count
	f.touch()
	return nil
}

func (f *Facility) CheckOut(count int) error {
	const op = "facility.check_out"

	if count <= 0 {
		return apperror.ValidationField(op, "count", "count must be greater than zero")
	}
	if count > f.occupancy {
		return apperror.InvalidState(op, "cannot check out %d, current occupancy is %d", count, f.occupancy)
	}

	f.occupancy -= count
	f.touch()
	return nil
}

// UpdateCapacity never lets capacity drop below the people already inside.
func (f *Facility) UpdateCapacity(maxCapacity int) error {
	const op = "facility.update_capacity"

	if maxCapacity <= 0 {
		return apperror.Range(op, "max_capacity", "max capacity must be greater than zero")
	}
	if maxCapacity < f.occupancy {
		return apperror.InvalidState(op, "max capacity %d is below current occupancy %d", maxCapacity, f.occupancy)
	}

	f.maxCapacity = maxCapacity
	f.touch()
	return nil
}

func (f *Facility) UpdateHourlyRate(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return apperror.ValidationField("facility.update_rate", "hourly_rate", "hourly rate cannot be negative")
	}

	f.hourlyRate = rate
	f.touch()
	return nil
}

// SetAvailability toggles the facility. Turning it off empties it.
func (f *Facility) SetAvailability(available bool, reason string) error {
	if available {
		if f.maintenanceAt != nil {
			return apperror.InvalidState("facility.set_availability", "complete the scheduled maintenance first")
		}
		f.available = true
		f.unavailableReason = ""
		f.touch()
		return nil
	}

	f.available = false
	f.occupancy = 0
	f.unavailableReason = strings.TrimSpace(reason)
	f.touch()
	return nil
}

// ScheduleMaintenance takes the facility offline immediately and records when
// the maintenance happens.
func (f *Facility) ScheduleMaintenance(at time.Time) error {
	if !at.After(now()) {
		return apperror.ValidationField("facility.schedule_maintenance", "date", "maintenance date must be in the future")
	}

	at = at.UTC()
	f.maintenanceAt = &at
	f.available = false
	f.occupancy = 0
	f.unavailableReason = maintenanceReason
	f.touch()
	return nil
}

func (f *Facility) CompleteMaintenance() error {
	if f.maintenanceAt == nil {
		return apperror.InvalidState("facility.complete_maintenance", "no maintenance is scheduled")
	}

	f.maintenanceAt = nil
	f.available = true
	f.unavailableReason = ""
	f.touch()
	return nil
}

// SessionCost prices a session of the given length at the hourly rate,
// rounded half-to-even to two decimals.
func (f *Facility) SessionCost(d time.Duration) (decimal.Decimal, error) {
	if d <= 0 {
		return decimal.Zero, apperror.ValidationField("facility.session_cost", "duration", "duration must be positive")
	}

	hours := decimal.NewFromInt(int64(d)).Div(decimal.NewFromInt(int64(time.Hour)))
	return f.hourlyRate.Mul(hours).RoundBank(2), nil
}

func (f *Facility) Delete() error {
	if f.deletedAt != nil {
		return apperror.InvalidState("facility.delete", "facility is already deleted")
	}

	t := now()
	f.deletedAt = &t
	f.available = false
	f.occupancy = 0
	f.updatedAt = t
	return nil
}

// Record is the persisted and serialized shape of a facility.
type Record struct {
	ID                     uuid.UUID       `db:"id" json:"id"`
	GymID                  uuid.UUID       `db:"gym_id" json:"gym_id"`
	Name                   string          `db:"name" json:"name"`
	Description            string          `db:"description" json:"description"`
	KindCode               int             `db:"kind" json:"kind"`
	KindName               string          `db:"-" json:"kind_name"`
	MaxCapacity            int             `db:"max_capacity" json:"max_capacity"`
	HourlyRate             decimal.Decimal `db:"hourly_rate" json:"hourly_rate"`
	IsAvailable            bool            `db:"is_available" json:"is_available"`
	CurrentOccupancy       int             `db:"current_occupancy" json:"current_occupancy"`
	MaintenanceScheduledAt *time.Time      `db:"maintenance_scheduled_at" json:"maintenance_scheduled_at,omitempty"`
	UnavailableReason      *string         `db:"unavailable_reason" json:"unavailable_reason,omitempty"`
	Version                int             `db:"version" json:"version"`
	CreatedAt              time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt              time.Time       `db:"updated_at" json:"updated_at"`
	DeletedAt              *time.Time      `db:"deleted_at" json:"-"`
}

func (f *Facility) Record() Record {
	r := Record{
		ID:                     f.id,
		GymID:                  f.gymID,
		Name:                   f.name,
		Description:            f.description,
		KindCode:               f.kind.Code(),
		KindName:               f.kind.Name(),
		MaxCapacity:            f.maxCapacity,
		HourlyRate:             f.hourlyRate,
		IsAvailable:            f.available,
		CurrentOccupancy:       f.occupancy,
		MaintenanceScheduledAt: f.maintenanceAt,
		Version:                f.version,
		CreatedAt:              f.createdAt,
		UpdatedAt:              f.updatedAt,
		DeletedAt:              f.deletedAt,
	}
	if f.unavailableReason != "" {
		reason := f.unavailableReason
		r.UnavailableReason = &reason
	}
	return r
}

// Restore rehydrates a facility from persisted state.
func Restore(r Record) (*Facility, error) {
	kind, ok := TryKindFromCode(r.KindCode)
	if !ok {
		return nil, apperror.Validation("facility.restore", "unknown facility kind %d", r.KindCode)
	}

	f := &Facility{
		id:            r.ID,
		gymID:         r.GymID,
		name:          r.Name,
		description:   r.Description,
		kind:          kind,
		maxCapacity:   r.MaxCapacity,
		hourlyRate:    r.HourlyRate,
		available:     r.IsAvailable,
		occupancy:     r.CurrentOccupancy,
		maintenanceAt: r.MaintenanceScheduledAt,
		version:       r.Version,
		createdAt:     r.CreatedAt,
		updatedAt:     r.UpdatedAt,
		deletedAt:     r.DeletedAt,
	}
	if r.UnavailableReason != nil {
		f.unavailableReason = *r.UnavailableReason
	}
	return f, nil
}
