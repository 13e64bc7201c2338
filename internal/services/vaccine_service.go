package services

import (
	"database/sql"
	"errors"
	"time"

	"github.com/lucasalopess/carteira-vacinacao/internal/models"
	"github.com/lucasalopess/carteira-vacinacao/pkg/metrics"
)

type VaccineService struct {
	vaccineRepo VaccineStore
}

func NewVaccineService(vaccineRepo VaccineStore) *VaccineService {
	return &VaccineService{vaccineRepo: vaccineRepo}
}

// Create adds a vaccine schedule to the catalog after checking the
// dose-count and booster-count invariants.
func (s *VaccineService) Create(vaccine *models.Vaccine) (*models.Vaccine, error) {
	if err := vaccine.Validate(); err != nil {
		metrics.ScheduleInvariantViolations.Inc()
		return nil, err
	}
	if err := s.vaccineRepo.Create(vaccine); err != nil {
		return nil, err
	}
	return vaccine, nil
}

// GetByID retrieves a vaccine, failing with NotFound when the id is unknown
func (s *VaccineService) GetByID(id string) (*models.Vaccine, error) {
	vaccine, err := s.vaccineRepo.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NewNotFoundError("vaccine", id)
	}
	if err != nil {
		return nil, err
	}
	return vaccine, nil
}

// Update overwrites the mutable fields of an existing vaccine schedule.
// The creation invariant is intentionally not re-checked here.
func (s *VaccineService) Update(id string, newVaccine *models.Vaccine) (*models.Vaccine, error) {
	vaccine, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	vaccine.Name = newVaccine.Name
	vaccine.MinimumAge = newVaccine.MinimumAge
	vaccine.IntervalMonths = newVaccine.IntervalMonths
	vaccine.Recurring = newVaccine.Recurring
	vaccine.DoseCount = newVaccine.DoseCount
	vaccine.HasBooster = newVaccine.HasBooster
	vaccine.BoosterCount = newVaccine.BoosterCount
	vaccine.UpdatedAt = time.Now()

	if err := s.vaccineRepo.Update(vaccine); err != nil {
		return nil, err
	}
	return vaccine, nil
}

// Delete removes a vaccine, failing with NotFound when the id is unknown
func (s *VaccineService) Delete(id string) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.vaccineRepo.Delete(id)
}

// GetAll returns the full vaccine catalog
func (s *VaccineService) GetAll() ([]*models.Vaccine, error) {
	return s.vaccineRepo.GetAll()
}
