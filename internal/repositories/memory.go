package repositories

import (
	"database/sql"
	"sort"
	"sync"

	"github.com/lucasalopess/carteira-vacinacao/internal/models"
)

// In-memory store implementations. They mirror the SQLite repositories'
// behavior (including sql.ErrNoRows for missing ids) so services and tests
// can run against either backend interchangeably.

type MemoryPersonRepository struct {
	mu     sync.RWMutex
	people map[string]models.Person
}

func NewMemoryPersonRepository() *MemoryPersonRepository {
	return &MemoryPersonRepository{people: make(map[string]models.Person)}
}

func (r *MemoryPersonRepository) Create(person *models.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.people[person.ID] = *person
	return nil
}

func (r *MemoryPersonRepository) GetByID(id string) (*models.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	person, ok := r.people[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &person, nil
}

func (r *MemoryPersonRepository) Update(person *models.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.people[person.ID] = *person
	return nil
}

func (r *MemoryPersonRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.people, id)
	return nil
}

func (r *MemoryPersonRepository) GetAll() ([]*models.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	people := make([]*models.Person, 0, len(r.people))
	for id := range r.people {
		person := r.people[id]
		people = append(people, &person)
	}
	sort.Slice(people, func(i, j int) bool { return people[i].Name < people[j].Name })
	return people, nil
}

type MemoryVaccineRepository struct {
	mu       sync.RWMutex
	vaccines map[string]models.Vaccine
}

func NewMemoryVaccineRepository() *MemoryVaccineRepository {
	return &MemoryVaccineRepository{vaccines: make(map[string]models.Vaccine)}
}

func (r *MemoryVaccineRepository) Create(vaccine *models.Vaccine) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vaccines[vaccine.ID] = *vaccine
	return nil
}

func (r *MemoryVaccineRepository) GetByID(id string) (*models.Vaccine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	vaccine, ok := r.vaccines[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &vaccine, nil
}

func (r *MemoryVaccineRepository) Update(vaccine *models.Vaccine) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vaccines[vaccine.ID] = *vaccine
	return nil
}

func (r *MemoryVaccineRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.vaccines, id)
	return nil
}

func (r *MemoryVaccineRepository) GetAll() ([]*models.Vaccine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	vaccines := make([]*models.Vaccine, 0, len(r.vaccines))
	for id := range r.vaccines {
		vaccine := r.vaccines[id]
		vaccines = append(vaccines, &vaccine)
	}
	sort.Slice(vaccines, func(i, j int) bool { return vaccines[i].Name < vaccines[j].Name })
	return vaccines, nil
}

type MemoryVaccinationRepository struct {
	mu           sync.RWMutex
	vaccinations map[string]models.Vaccination
	seq          map[string]int
	next         int
}

func NewMemoryVaccinationRepository() *MemoryVaccinationRepository {
	return &MemoryVaccinationRepository{
		vaccinations: make(map[string]models.Vaccination),
		seq:          make(map[string]int),
	}
}

func (r *MemoryVaccinationRepository) Create(vaccination *models.Vaccination) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vaccinations[vaccination.ID] = *vaccination
	r.next++
	r.seq[vaccination.ID] = r.next
	return nil
}

func (r *MemoryVaccinationRepository) GetByID(id string) (*models.Vaccination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	vaccination, ok := r.vaccinations[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &vaccination, nil
}

func (r *MemoryVaccinationRepository) Update(vaccination *models.Vaccination) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vaccinations[vaccination.ID] = *vaccination
	return nil
}

func (r *MemoryVaccinationRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.vaccinations, id)
	delete(r.seq, id)
	return nil
}

func (r *MemoryVaccinationRepository) GetAll() ([]*models.Vaccination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(models.Vaccination) bool { return true }), nil
}

func (r *MemoryVaccinationRepository) FindByPersonID(personID string) ([]*models.Vaccination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(v models.Vaccination) bool { return v.PersonID == personID }), nil
}

// collect returns matching records sorted by date, with insertion order as
// the tie-break. Callers must hold at least a read lock.
func (r *MemoryVaccinationRepository) collect(match func(models.Vaccination) bool) []*models.Vaccination {
	var vaccinations []*models.Vaccination
	for id := range r.vaccinations {
		vaccination := r.vaccinations[id]
		if match(vaccination) {
			vaccinations = append(vaccinations, &vaccination)
		}
	}
	sort.Slice(vaccinations, func(i, j int) bool {
		if !vaccinations[i].Date.Equal(vaccinations[j].Date.Time) {
			return vaccinations[i].Date.Before(vaccinations[j].Date)
		}
		return r.seq[vaccinations[i].ID] < r.seq[vaccinations[j].ID]
	})
	return vaccinations
}
