package facility

import (
	"fmt"
	"strings"
	"time"

	"fitcircle/internal/apperror"

	"github.com/shopspring/decimal"
)

// Kind is one of a closed set of facility kinds. The zero value is not a
// valid kind.
type Kind int

const (
	Cardio Kind = iota + 1
	Strength
	Pool
	Sauna
	Yoga
	Pilates
	CrossFit
	Boxing
	Basketball
	Tennis
	Spinning
	GroupFitness
	PersonalTraining
	Locker
	Cafe
)

type kindInfo struct {
	name               string
	description        string
	icon               string
	requiresEquipment  bool
	defaultMaxCapacity int
}

var kinds = map[Kind]kindInfo{
	Cardio:           {"Cardio", "Cardiovascular equipment area", "🏃‍♂️", true, 50},
	Strength:         {"Strength", "Weight training and resistance equipment", "💪", true, 30},
	Pool:             {"Pool", "Swimming pool facility", "🏊‍♂️", true, 25},
	Sauna:            {"Sauna", "Steam and relaxation area", "🧖‍♂️", false, 10},
	Yoga:             {"Yoga", "Yoga and meditation studio", "🧘‍♀️", false, 20},
	Pilates:          {"Pilates", "Pilates exercise studio", "🤸‍♀️", false, 15},
	CrossFit:         {"CrossFit", "High-intensity functional fitness", "🏋️‍♂️", true, 20},
	Boxing:           {"Boxing", "Boxing and martial arts area", "🥊", true, 15},
	Basketball:       {"Basketball", "Basketball court", "🏀", true, 10},
	Tennis:           {"Tennis", "Tennis court facility", "🎾", true, 4},
	Spinning:         {"Spinning", "Indoor cycling studio", "🚴‍♀️", true, 25},
	GroupFitness:     {"Group Fitness", "Group exercise classes", "👥", false, 30},
	PersonalTraining: {"Personal Training", "One-on-one training area", "👨‍🏫", false, 2},
	Locker:           {"Locker Room", "Changing and storage facility", "🚿", false, 50},
	Cafe:             {"Cafe", "Food and beverage area", "☕", false, 20},
}

// compatible lists unordered pairs of distinct kinds that may share a
// session. It is business policy, not derived from kind attributes.
var compatible = map[[2]Kind]bool{
	{Cardio, Strength}: true,
	{Pool, Sauna}:      true,
	{Yoga, Pilates}:    true,
	{CrossFit, Boxing}: true,
}

var sessionDurations = map[Kind]time.Duration{
	Cardio:           45 * time.Minute,
	Strength:         60 * time.Minute,
	Pool:             30 * time.Minute,
	Sauna:            20 * time.Minute,
	Yoga:             75 * time.Minute,
	Pilates:          60 * time.Minute,
	CrossFit:         60 * time.Minute,
	Boxing:           90 * time.Minute,
	Spinning:         45 * time.Minute,
	GroupFitness:     60 * time.Minute,
	PersonalTraining: 60 * time.Minute,
}

var hourlyRates = map[Kind]int64{
	PersonalTraining: 80,
	CrossFit:         25,
	Boxing:           30,
	Tennis:           40,
	Pool:             20,
}

const (
	defaultSessionDuration = 60 * time.Minute
	defaultHourlyRate      = 15
)

// AllKinds returns every kind ordered by code.
func AllKinds() []Kind {
	all := make([]Kind, 0, len(kinds))
	for k := Cardio; k <= Cafe; k++ {
		all = append(all, k)
	}
	return all
}

func KindFromCode(code int) (Kind, error) {
	k, ok := TryKindFromCode(code)
	if !ok {
		return 0, apperror.NotFound("facility.kind", "invalid facility kind code: %d", code)
	}
	return k, nil
}

// KindFromName matches display names case-insensitively.
func KindFromName(name string) (Kind, error) {
	k, ok := TryKindFromName(name)
	if !ok {
		return 0, apperror.NotFound("facility.kind", "invalid facility kind name: %q", name)
	}
	return k, nil
}

func TryKindFromCode(code int) (Kind, bool) {
	k := Kind(code)
	_, ok := kinds[k]
	return k, ok
}

func TryKindFromName(name string) (Kind, bool) {
	name = strings.TrimSpace(name)
	for _, k := range AllKinds() {
		if strings.EqualFold(kinds[k].name, name) {
			return k, true
		}
	}
	return 0, false
}

func (k Kind) Valid() bool {
	_, ok := kinds[k]
	return ok
}

func (k Kind) Code() int { return int(k) }

func (k Kind) Name() string { return kinds[k].name }

func (k Kind) Description() string { return kinds[k].description }

func (k Kind) Icon() string { return kinds[k].icon }

func (k Kind) RequiresEquipment() bool { return kinds[k].requiresEquipment }

func (k Kind) DefaultMaxCapacity() int { return kinds[k].defaultMaxCapacity }

// IsCompatibleWith reports whether two kinds can be combined. Every valid
// kind is compatible with itself.
func (k Kind) IsCompatibleWith(other Kind) bool {
	if !k.Valid() || !other.Valid() {
		return false
	}
	if k == other {
		return true
	}
	return compatible[[2]Kind{k, other}] || compatible[[2]Kind{other, k}]
}

func (k Kind) RequiresSpecialCertification() bool {
	return k == Pool || k == PersonalTraining || k == CrossFit
}

func (k Kind) RecommendedSessionDuration() time.Duration {
	if d, ok := sessionDurations[k]; ok {
		return d
	}
	return defaultSessionDuration
}

func (k Kind) BaseHourlyRate() decimal.Decimal {
	if r, ok := hourlyRates[k]; ok {
		return decimal.NewFromInt(r)
	}
	return decimal.NewFromInt(defaultHourlyRate)
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return k.Icon() + " " + k.Name()
}

// KindView is the JSON shape of a kind.
type KindView struct {
	Code                         int             `json:"code"`
	Name                         string          `json:"name"`
	Description                  string          `json:"description"`
	Icon                         string          `json:"icon"`
	RequiresEquipment            bool            `json:"requires_equipment"`
	DefaultMaxCapacity           int             `json:"default_max_capacity"`
	BaseHourlyRate               decimal.Decimal `json:"base_hourly_rate"`
	RecommendedSessionMinutes    int             `json:"recommended_session_minutes"`
	RequiresSpecialCertification bool            `json:"requires_special_certification"`
}

func (k Kind) View() KindView {
	return KindView{
		Code:                         k.Code(),
		Name:                         k.Name(),
		Description:                  k.Description(),
		Icon:                         k.Icon(),
		RequiresEquipment:            k.RequiresEquipment(),
		DefaultMaxCapacity:           k.DefaultMaxCapacity(),
		BaseHourlyRate:               k.BaseHourlyRate(),
		RecommendedSessionMinutes:    int(k.RecommendedSessionDuration() / time.Minute),
		RequiresSpecialCertification: k.RequiresSpecialCertification(),
	}
}
