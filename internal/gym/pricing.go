package gym

import (
	"fitcircle/internal/apperror"

	"github.com/shopspring/decimal"
)

// PriceBand classifies a gym by its monthly price.
type PriceBand string

const (
	BandStandard PriceBand = "standard"
	BandGold     PriceBand = "gold"
	BandPremium  PriceBand = "premium"
	BandVip      PriceBand = "vip"
)

// PriceBands holds the lower bounds of each band. Standard is [StandardMin,
// GoldMin), Gold is [GoldMin, PremiumMin), Premium is [PremiumMin,
// PremiumMax] and anything above PremiumMax is Vip.
type PriceBands struct {
	StandardMin decimal.Decimal
	GoldMin     decimal.Decimal
	PremiumMin  decimal.Decimal
	PremiumMax  decimal.Decimal
}

func DefaultPriceBands() PriceBands {
	return PriceBands{
		StandardMin: decimal.NewFromInt(40),
		GoldMin:     decimal.NewFromInt(60),
		PremiumMin:  decimal.NewFromInt(80),
		PremiumMax:  decimal.NewFromInt(100),
	}
}

func (b PriceBands) Classify(monthlyPrice decimal.Decimal) (PriceBand, error) {
	switch {
	case monthlyPrice.LessThan(b.StandardMin):
		return "", apperror.ValidationField("gym.price_band", "monthly_price",
			"the minimum monthly price is %s", b.StandardMin.String())
	case monthlyPrice.LessThan(b.GoldMin):
		return BandStandard, nil
	case monthlyPrice.LessThan(b.PremiumMin):
		return BandGold, nil
	case monthlyPrice.LessThanOrEqual(b.PremiumMax):
		return BandPremium, nil
	default:
		return BandVip, nil
	}
}
