package services

import (
	"github.com/lucasalopess/carteira-vacinacao/internal/models"
)

// Store interfaces the services depend on. The SQLite repositories and the
// in-memory repositories both satisfy them, so the engine can run against a
// relational backend in production and a plain map in tests.

type PersonStore interface {
	Create(person *models.Person) error
	GetByID(id string) (*models.Person, error)
	Update(person *models.Person) error
	Delete(id string) error
	GetAll() ([]*models.Person, error)
}

type VaccineStore interface {
	Create(vaccine *models.Vaccine) error
	GetByID(id string) (*models.Vaccine, error)
	Update(vaccine *models.Vaccine) error
	Delete(id string) error
	GetAll() ([]*models.Vaccine, error)
}

type VaccinationStore interface {
	Create(vaccination *models.Vaccination) error
	GetByID(id string) (*models.Vaccination, error)
	Update(vaccination *models.Vaccination) error
	Delete(id string) error
	GetAll() ([]*models.Vaccination, error)
	FindByPersonID(personID string) ([]*models.Vaccination, error)
}
