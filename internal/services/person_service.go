package services

import (
	"database/sql"
	"errors"
	"time"

	"github.com/lucasalopess/carteira-vacinacao/internal/models"
)

type PersonService struct {
	personRepo PersonStore
}

func NewPersonService(personRepo PersonStore) *PersonService {
	return &PersonService{personRepo: personRepo}
}

// Create registers a new person
func (s *PersonService) Create(person *models.Person) (*models.Person, error) {
	if err := s.personRepo.Create(person); err != nil {
		return nil, err
	}
	return person, nil
}

// GetByID retrieves a person, failing with NotFound when the id is unknown
func (s *PersonService) GetByID(id string) (*models.Person, error) {
	person, err := s.personRepo.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NewNotFoundError("person", id)
	}
	if err != nil {
		return nil, err
	}
	return person, nil
}

// Update overwrites the mutable fields of an existing person
func (s *PersonService) Update(id string, newPerson *models.Person) (*models.Person, error) {
	person, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	person.Name = newPerson.Name
	person.Age = newPerson.Age
	person.Sex = newPerson.Sex
	person.UpdatedAt = time.Now()

	if err := s.personRepo.Update(person); err != nil {
		return nil, err
	}
	return person, nil
}

// Delete removes a person, failing with NotFound when the id is unknown
func (s *PersonService) Delete(id string) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.personRepo.Delete(id)
}

// GetAll returns every registered person
func (s *PersonService) GetAll() ([]*models.Person, error) {
	return s.personRepo.GetAll()
}
