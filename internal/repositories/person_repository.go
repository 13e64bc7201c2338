package repositories

import (
	"database/sql"

	"github.com/lucasalopess/carteira-vacinacao/internal/models"
)

type PersonRepository struct {
	db *sql.DB
}

func NewPersonRepository(db *sql.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

// Create creates a new person
func (r *PersonRepository) Create(person *models.Person) error {
	query := `
		INSERT INTO people (
			id, name, age, sex, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query, person.ID, person.Name, person.Age, person.Sex,
		person.CreatedAt, person.UpdatedAt)
	return err
}

// GetByID retrieves a person by ID
func (r *PersonRepository) GetByID(id string) (*models.Person, error) {
	query := `
		SELECT id, name, age, sex, created_at, updated_at
		FROM people WHERE id = ?
	`

	person := &models.Person{}
	err := r.db.QueryRow(query, id).Scan(
		&person.ID, &person.Name, &person.Age, &person.Sex, &person.CreatedAt, &person.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return person, nil
}

// Update updates an existing person
func (r *PersonRepository) Update(person *models.Person) error {
	query := `
		UPDATE people SET
			name = ?, age = ?, sex = ?, updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query, person.Name, person.Age, person.Sex, person.UpdatedAt, person.ID)
	return err
}

// Delete deletes a person by ID
func (r *PersonRepository) Delete(id string) error {
	query := `DELETE FROM people WHERE id = ?`
	_, err := r.db.Exec(query, id)
	return err
}

// GetAll retrieves all people ordered by name
func (r *PersonRepository) GetAll() ([]*models.Person, error) {
	query := `
		SELECT id, name, age, sex, created_at, updated_at
		FROM people ORDER BY name
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var people []*models.Person
	for rows.Next() {
		person := &models.Person{}
		err := rows.Scan(
			&person.ID, &person.Name, &person.Age, &person.Sex, &person.CreatedAt, &person.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		people = append(people, person)
	}

	return people, rows.Err()
}
