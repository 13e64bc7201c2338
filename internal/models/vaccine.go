package models

import (
	"time"

	"github.com/google/uuid"
)

// Vaccine defines a vaccine's dosing schedule: when the first dose becomes
// eligible, how doses are spaced, and how many doses and boosters the full
// series takes. A recurring vaccine (e.g. seasonal flu) has no dose ceiling.
type Vaccine struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	MinimumAge     int       `json:"minimum_age"`
	IntervalMonths int       `json:"interval_months"`
	Recurring      bool      `json:"recurring"`
	DoseCount      *int      `json:"dose_count"`
	HasBooster     bool      `json:"has_booster"`
	BoosterCount   *int      `json:"booster_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewVaccine creates a new Vaccine with a generated UUID.
func NewVaccine(name string, minimumAge, intervalMonths int, recurring bool, doseCount *int, hasBooster bool, boosterCount *int) *Vaccine {
	now := time.Now()
	return &Vaccine{
		ID:             uuid.New().String(),
		Name:           name,
		MinimumAge:     minimumAge,
		IntervalMonths: intervalMonths,
		Recurring:      recurring,
		DoseCount:      doseCount,
		HasBooster:     hasBooster,
		BoosterCount:   boosterCount,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Validate enforces the schedule invariants: non-recurring vaccines need a
// positive dose count, and booster-bearing vaccines need a positive booster
// count. Enforced at creation time only.
func (v *Vaccine) Validate() error {
	if !v.Recurring && (v.DoseCount == nil || *v.DoseCount <= 0) {
		return NewConflictError("non-recurring vaccines must have a dose count greater than zero")
	}
	if v.HasBooster && (v.BoosterCount == nil || *v.BoosterCount <= 0) {
		return NewConflictError("vaccines with booster doses must have a booster count greater than zero")
	}
	return nil
}

// TotalDoses returns the full series size: primary doses plus boosters.
// A nil count contributes zero. Meaningless for recurring vaccines, which
// have no ceiling.
func (v *Vaccine) TotalDoses() int {
	total := 0
	if v.DoseCount != nil {
		total += *v.DoseCount
	}
	if v.HasBooster && v.BoosterCount != nil {
		total += *v.BoosterCount
	}
	return total
}
