package subscription

import (
	"strings"

	"fitcircle/internal/apperror"

	"github.com/shopspring/decimal"
)

// Tier is a subscription level.
type Tier string

const (
	TierBasic     Tier = "basic"
	TierPremium   Tier = "premium"
	TierVip       Tier = "vip"
	TierCorporate Tier = "corporate"
)

type tierInfo struct {
	displayName     string
	durationDays    int
	basePrice       int64
	requiresTrainer bool
}

var tiers = map[Tier]tierInfo{
	TierBasic:     {"Basic", 30, 50, false},
	TierPremium:   {"Premium", 30, 100, true},
	TierVip:       {"VIP", 30, 200, true},
	TierCorporate: {"Corporate", 365, 1000, true},
}

// Gym price ceilings per tier. Vip is unrestricted, tiers not listed here
// grant no gym access.
var gymPriceCeilings = map[Tier]int64{
	TierBasic:   60,
	TierPremium: 100,
}

func AllTiers() []Tier {
	return []Tier{TierBasic, TierPremium, TierVip, TierCorporate}
}

func ParseTier(s string) (Tier, error) {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", apperror.ValidationField("subscription.tier", "tier", "unknown subscription tier %q", s)
	}
	return t, nil
}

func (t Tier) Valid() bool {
	_, ok := tiers[t]
	return ok
}

func (t Tier) DisplayName() string   { return tiers[t].displayName }
func (t Tier) DurationDays() int     { return tiers[t].durationDays }
func (t Tier) RequiresTrainer() bool { return tiers[t].requiresTrainer }

func (t Tier) BasePrice() decimal.Decimal {
	return decimal.NewFromInt(tiers[t].basePrice)
}

// AllowsGym reports whether a holder of this tier may enter a gym with the
// given monthly price.
func (t Tier) AllowsGym(monthlyPrice decimal.Decimal) bool {
	if t == TierVip {
		return true
	}
	ceiling, ok := gymPriceCeilings[t]
	if !ok {
		return false
	}
	return monthlyPrice.LessThanOrEqual(decimal.NewFromInt(ceiling))
}

type TierView struct {
	Tier            Tier            `json:"tier" example:"premium"`
	DisplayName     string          `json:"display_name" example:"Premium"`
	DurationDays    int             `json:"duration_days" example:"30"`
	BasePrice       decimal.Decimal `json:"base_price" swaggertype:"string" example:"100"`
	RequiresTrainer bool            `json:"requires_trainer" example:"true"`
}

func (t Tier) View() TierView {
	return TierView{
		Tier:            t,
		DisplayName:     t.DisplayName(),
		DurationDays:    t.DurationDays(),
		BasePrice:       t.BasePrice(),
		RequiresTrainer: t.RequiresTrainer(),
	}
}
