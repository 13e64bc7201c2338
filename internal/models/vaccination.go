package models

import (
	"time"

	"github.com/google/uuid"
)

// Vaccination records one administered dose: who received which vaccine on
// what date. References Person and Vaccine by id only.
type Vaccination struct {
	ID        string    `json:"id"`
	PersonID  string    `json:"person_id"`
	VaccineID string    `json:"vaccine_id"`
	Date      Date      `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewVaccination creates a new Vaccination with a generated UUID.
func NewVaccination(personID, vaccineID string, date Date) *Vaccination {
	now := time.Now()
	return &Vaccination{
		ID:        uuid.New().String(),
		PersonID:  personID,
		VaccineID: vaccineID,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
