package gym

import (
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"fitcircle/internal/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 1000
	maxAddressLength     = 250
)

var now = func() time.Time { return time.Now().UTC() }

// Info is the editable part of a gym.
type Info struct {
	Name             string
	Description      string
	Address          string
	CityID           uuid.UUID
	Phone            string
	Email            string
	Latitude         float64
	Longitude        float64
	MonthlyPrice     decimal.Decimal
	VipSupported     bool
	CorporatePartner bool
}

// Gym owns the ordered ids of its facilities and trainers. The children keep
// the gym id; the gym never holds the children themselves.
type Gym struct {
	id          uuid.UUID
	info        Info
	facilityIDs []uuid.UUID
	trainerIDs  []uuid.UUID
	version     int
	createdAt   time.Time
	updatedAt   time.Time
}

func NewGym(info Info) (*Gym, error) {
	info, err := validateInfo("gym.create", info)
	if err != nil {
		return nil, err
	}

	t := now()
	return &Gym{id: uuid.New(), info: info, createdAt: t, updatedAt: t}, nil
}

func validateInfo(op string, in Info) (Info, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.Address = strings.TrimSpace(in.Address)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.TrimSpace(in.Email)

	if in.Name == "" {
		return in, apperror.ValidationField(op, "name", "name is required")
	}
	if utf8.RuneCountInString(in.Name) > maxNameLength {
		return in, apperror.ValidationField(op, "name", "name must be at most %d characters", maxNameLength)
	}
	if utf8.RuneCountInString(in.Description) > maxDescriptionLength {
		return in, apperror.ValidationField(op, "description", "description must be at most %d characters", maxDescriptionLength)
	}
	if in.Address == "" || utf8.RuneCountInString(in.Address) > maxAddressLength {
		return in, apperror.ValidationField(op, "address", "address is required and at most %d characters", maxAddressLength)
	}
	if in.CityID == uuid.Nil {
		return in, apperror.ValidationField(op, "city_id", "city id is required")
	}
	if in.Phone == "" {
		return in, apperror.ValidationField(op, "phone", "phone number is required")
	}
	if in.Email != "" {
		if _, err := mail.ParseAddress(in.Email); err != nil {
			return in, apperror.ValidationField(op, "email", "invalid email address")
		}
	}
	if in.Latitude < -90 || in.Latitude > 90 {
		return in, apperror.Range(op, "latitude", "latitude must be within [-90, 90]")
	}
	if in.Longitude < -180 || in.Longitude > 180 {
		return in, apperror.Range(op, "longitude", "longitude must be within [-180, 180]")
	}
	if !in.MonthlyPrice.IsPositive() {
		return in, apperror.ValidationField(op, "monthly_price", "monthly price must be greater than zero")
	}
	return in, nil
}

func (g *Gym) ID() uuid.UUID                 { return g.id }
func (g *Gym) Info() Info                    { return g.info }
func (g *Gym) Name() string                  { return g.info.Name }
func (g *Gym) CityID() uuid.UUID             { return g.info.CityID }
func (g *Gym) MonthlyPrice() decimal.Decimal { return g.info.MonthlyPrice }
func (g *Gym) Version() int                  { return g.version }

func (g *Gym) FacilityIDs() []uuid.UUID {
	return append([]uuid.UUID(nil), g.facilityIDs...)
}

func (g *Gym) TrainerIDs() []uuid.UUID {
	return append([]uuid.UUID(nil), g.trainerIDs...)
}

func (g *Gym) UpdateInfo(info Info) error {
	info, err := validateInfo("gym.update", info)
	if err != nil {
		return err
	}

	g.info = info
	g.updatedAt = now()
	return nil
}

func (g *Gym) AddFacility(id uuid.UUID) error {
	return addChild(&g.facilityIDs, id, "gym.add_facility", "facility")
}

func (g *Gym) AddTrainer(id uuid.UUID) error {
	return addChild(&g.trainerIDs, id, "gym.add_trainer", "trainer")
}

func addChild(ids *[]uuid.UUID, id uuid.UUID, op, what string) error {
	if id == uuid.Nil {
		return apperror.ValidationField(op, what+"_id", "%s id is required", what)
	}
	for _, existing := range *ids {
		if existing == id {
			return apperror.InvalidState(op, "%s %s is already part of the gym", what, id)
		}
	}
	*ids = append(*ids, id)
	return nil
}

// Record is the persisted and serialized shape of a gym.
type Record struct {
	ID               uuid.UUID       `db:"id" json:"id"`
	Name             string          `db:"name" json:"name"`
	Description      *string         `db:"description" json:"description,omitempty"`
	Address          string          `db:"address" json:"address"`
	CityID           uuid.UUID       `db:"city_id" json:"city_id"`
	Phone            string          `db:"phone" json:"phone"`
	Email            *string         `db:"email" json:"email,omitempty"`
	Latitude         float64         `db:"latitude" json:"latitude"`
	Longitude        float64         `db:"longitude" json:"longitude"`
	MonthlyPrice     decimal.Decimal `db:"monthly_price" json:"monthly_price"`
	VipSupported     bool            `db:"is_vip_supported" json:"is_vip_supported"`
	CorporatePartner bool            `db:"is_corporate_partner" json:"is_corporate_partner"`
	Version          int             `db:"version" json:"version"`
	CreatedAt        time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at" json:"updated_at"`
	FacilityIDs      []uuid.UUID     `db:"-" json:"facility_ids"`
	TrainerIDs       []uuid.UUID     `db:"-" json:"trainer_ids"`
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

func (g *Gym) Record() Record {
	return Record{
		ID:               g.id,
		Name:             g.info.Name,
		Description:      optional(g.info.Description),
		Address:          g.info.Address,
		CityID:           g.info.CityID,
		Phone:            g.info.Phone,
		Email:            optional(g.info.Email),
		Latitude:         g.info.Latitude,
		Longitude:        g.info.Longitude,
		MonthlyPrice:     g.info.MonthlyPrice,
		VipSupported:     g.info.VipSupported,
		CorporatePartner: g.info.CorporatePartner,
		Version:          g.version,
		CreatedAt:        g.createdAt,
		UpdatedAt:        g.updatedAt,
		FacilityIDs:      g.FacilityIDs(),
		TrainerIDs:       g.TrainerIDs(),
	}
}

// Restore rehydrates a gym; child ids go through the same duplicate check as
// AddFacility and AddTrainer.
func Restore(r Record) (*Gym, error) {
	g := &Gym{
		id: r.ID,
		info: Info{
			Name:             r.Name,
			Description:      deref(r.Description),
			Address:          r.Address,
			CityID:           r.CityID,
			Phone:            r.Phone,
			Email:            deref(r.Email),
			Latitude:         r.Latitude,
			Longitude:        r.Longitude,
			MonthlyPrice:     r.MonthlyPrice,
			VipSupported:     r.VipSupported,
			CorporatePartner: r.CorporatePartner,
		},
		version:   r.Version,
		createdAt: r.CreatedAt,
		updatedAt: r.UpdatedAt,
	}
	for _, id := range r.FacilityIDs {
		if err := g.AddFacility(id); err != nil {
			return nil, err
		}
	}
	for _, id := range r.TrainerIDs {
		if err := g.AddTrainer(id); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// View adds the price band to the record.
type View struct {
	Record
	PriceBand PriceBand `json:"price_band,omitempty"`
}
