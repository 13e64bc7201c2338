package models

import (
	"time"

	"github.com/google/uuid"
)

// Sex is a closed enumeration of person sex categories.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// AllSexes returns every valid Sex label, for client-side choice lists.
func AllSexes() []Sex {
	return []Sex{SexMale, SexFemale}
}

// IsValid checks whether s is one of the enumerated labels.
func (s Sex) IsValid() bool {
	switch s {
	case SexMale, SexFemale:
		return true
	}
	return false
}

// Person represents a registered individual whose vaccinations are tracked.
type Person struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Sex       Sex       `json:"sex"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPerson creates a new Person with a generated UUID.
func NewPerson(name string, age int, sex Sex) *Person {
	now := time.Now()
	return &Person{
		ID:        uuid.New().String(),
		Name:      name,
		Age:       age,
		Sex:       sex,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
