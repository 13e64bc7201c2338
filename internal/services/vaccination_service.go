package services

import (
	"database/sql"
	"errors"
	"time"

	"github.com/lucasalopess/carteira-vacinacao/internal/models"
	"github.com/lucasalopess/carteira-vacinacao/pkg/logger"
	"github.com/lucasalopess/carteira-vacinacao/pkg/metrics"
)

// VaccinationService is the dose-eligibility and overdue-detection engine.
// It validates every new vaccination record against the vaccine's schedule
// and computes which vaccines a person has fallen behind on. State is
// re-read from the stores on every call; nothing is cached.
type VaccinationService struct {
	vaccinationRepo VaccinationStore
	personService   *PersonService
	vaccineService  *VaccineService
}

func NewVaccinationService(vaccinationRepo VaccinationStore, personService *PersonService, vaccineService *VaccineService) *VaccinationService {
	return &VaccinationService{
		vaccinationRepo: vaccinationRepo,
		personService:   personService,
		vaccineService:  vaccineService,
	}
}

// Create registers an administered dose after running the eligibility
// checks, in precedence order: person exists, vaccine exists, dose cap not
// reached, minimum interval elapsed. The record is appended only when every
// check passes.
//
// Known gap: two concurrent registrations for the same person and vaccine
// can both pass the dose-cap check before either insert lands. There is no
// locking or serialized check-then-act transaction at this layer.
func (s *VaccinationService) Create(vaccination *models.Vaccination) (*models.Vaccination, error) {
	person, err := s.personService.GetByID(vaccination.PersonID)
	if err != nil {
		metrics.VaccinationsRejected.WithLabelValues(metrics.ReasonNotFound).Inc()
		return nil, err
	}

	vaccine, err := s.vaccineService.GetByID(vaccination.VaccineID)
	if err != nil {
		metrics.VaccinationsRejected.WithLabelValues(metrics.ReasonNotFound).Inc()
		return nil, err
	}

	existing, err := s.vaccinationRepo.FindByPersonID(vaccination.PersonID)
	if err != nil {
		return nil, err
	}

	doses := dosesOfVaccine(existing, vaccine.ID)

	if !vaccine.Recurring && len(doses) >= vaccine.TotalDoses() {
		metrics.VaccinationsRejected.WithLabelValues(metrics.ReasonDoseCap).Inc()
		return nil, models.NewConflictError("vaccine %s only allows %d doses", vaccine.Name, vaccine.TotalDoses())
	}

	if len(doses) > 0 {
		last := doses[len(doses)-1]
		nextEligible := last.Date.AddMonths(vaccine.IntervalMonths)
		if vaccination.Date.Before(nextEligible) {
			metrics.VaccinationsRejected.WithLabelValues(metrics.ReasonInterval).Inc()
			return nil, models.NewConflictError("next dose of vaccine %s can only be administered from %s",
				vaccine.Name, nextEligible.DayMonthYear())
		}
	}

	if err := s.vaccinationRepo.Create(vaccination); err != nil {
		return nil, err
	}

	metrics.VaccinationsRegistered.Inc()
	logger.WithFields(map[string]interface{}{
		"person_id":  person.ID,
		"vaccine_id": vaccine.ID,
		"date":       vaccination.Date.String(),
	}).Info("vaccination registered")

	return vaccination, nil
}

// GetByID retrieves a vaccination, failing with NotFound when the id is unknown
func (s *VaccinationService) GetByID(id string) (*models.Vaccination, error) {
	vaccination, err := s.vaccinationRepo.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NewNotFoundError("vaccination", id)
	}
	if err != nil {
		return nil, err
	}
	return vaccination, nil
}

// Update overwrites the mutable fields of an existing vaccination record.
// Updates bypass the eligibility checks; only Create runs them.
func (s *VaccinationService) Update(id string, newVaccination *models.Vaccination) (*models.Vaccination, error) {
	vaccination, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	vaccination.PersonID = newVaccination.PersonID
	vaccination.VaccineID = newVaccination.VaccineID
	vaccination.Date = newVaccination.Date
	vaccination.UpdatedAt = time.Now()

	if err := s.vaccinationRepo.Update(vaccination); err != nil {
		return nil, err
	}
	return vaccination, nil
}

// Delete removes a vaccination, failing with NotFound when the id is unknown
func (s *VaccinationService) Delete(id string) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.vaccinationRepo.Delete(id)
}

// GetAll returns every vaccination record
func (s *VaccinationService) GetAll() ([]*models.Vaccination, error) {
	return s.vaccinationRepo.GetAll()
}

// FindByPersonID returns a person's vaccinations across all vaccines
func (s *VaccinationService) FindByPersonID(personID string) ([]*models.Vaccination, error) {
	return s.vaccinationRepo.FindByPersonID(personID)
}

// HistoryByPersonID returns a person's doses grouped by vaccine, each group
// holding its dose count and the dose dates oldest-first.
func (s *VaccinationService) HistoryByPersonID(personID string) ([]*models.VaccineHistory, error) {
	vaccinations, err := s.vaccinationRepo.FindByPersonID(personID)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string]*models.VaccineHistory)
	var history []*models.VaccineHistory
	for _, vaccination := range vaccinations {
		group, ok := grouped[vaccination.VaccineID]
		if !ok {
			group = &models.VaccineHistory{VaccineID: vaccination.VaccineID}
			grouped[vaccination.VaccineID] = group
			history = append(history, group)
		}
		group.DoseCount++
		group.History = append(group.History, models.DoseRecord{
			VaccinationID: vaccination.ID,
			Date:          vaccination.Date,
		})
	}

	return history, nil
}

// FindOverdueByPersonID computes the set of vaccines the person has fallen
// behind on. A vaccine is overdue when the person is old enough for it, the
// series is not complete (recurring vaccines never complete), and either no
// dose was ever taken or the interval since the last dose has elapsed.
// Pure read; safe to call repeatedly.
func (s *VaccinationService) FindOverdueByPersonID(personID string) ([]*models.Vaccine, error) {
	person, err := s.personService.GetByID(personID)
	if err != nil {
		return nil, err
	}

	vaccinations, err := s.vaccinationRepo.FindByPersonID(personID)
	if err != nil {
		return nil, err
	}

	// One grouping pass keeps the cost at O(events + vaccines).
	dosesByVaccine := make(map[string][]*models.Vaccination)
	for _, vaccination := range vaccinations {
		dosesByVaccine[vaccination.VaccineID] = append(dosesByVaccine[vaccination.VaccineID], vaccination)
	}

	catalog, err := s.vaccineService.GetAll()
	if err != nil {
		return nil, err
	}

	metrics.OverdueQueries.Inc()

	today := models.Today()
	overdue := make([]*models.Vaccine, 0)
	for _, vaccine := range catalog {
		if person.Age < vaccine.MinimumAge {
			continue
		}

		doses := dosesByVaccine[vaccine.ID]
		if !vaccine.Recurring && len(doses) >= vaccine.TotalDoses() {
			continue
		}
		if len(doses) == 0 {
			overdue = append(overdue, vaccine)
			continue
		}

		last := doses[len(doses)-1]
		if today.After(last.Date.AddMonths(vaccine.IntervalMonths)) {
			overdue = append(overdue, vaccine)
		}
	}

	return overdue, nil
}

// dosesOfVaccine filters a person's date-ordered events down to one vaccine.
func dosesOfVaccine(vaccinations []*models.Vaccination, vaccineID string) []*models.Vaccination {
	var doses []*models.Vaccination
	for _, vaccination := range vaccinations {
		if vaccination.VaccineID == vaccineID {
			doses = append(doses, vaccination)
		}
	}
	return doses
}
