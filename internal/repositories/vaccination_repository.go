package repositories

import (
	"database/sql"

	"github.com/lucasalopess/carteira-vacinacao/internal/models"
)

type VaccinationRepository struct {
	db *sql.DB
}

func NewVaccinationRepository(db *sql.DB) *VaccinationRepository {
	return &VaccinationRepository{db: db}
}

// Create appends an administered-dose record
func (r *VaccinationRepository) Create(vaccination *models.Vaccination) error {
	query := `
		INSERT INTO vaccinations (
			id, person_id, vaccine_id, date, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query, vaccination.ID, vaccination.PersonID,
		vaccination.VaccineID, vaccination.Date, vaccination.CreatedAt, vaccination.UpdatedAt)
	return err
}

// GetByID retrieves a vaccination by ID
func (r *VaccinationRepository) GetByID(id string) (*models.Vaccination, error) {
	query := `
		SELECT id, person_id, vaccine_id, date, created_at, updated_at
		FROM vaccinations WHERE id = ?
	`

	vaccination := &models.Vaccination{}
	err := r.db.QueryRow(query, id).Scan(
		&vaccination.ID, &vaccination.PersonID, &vaccination.VaccineID,
		&vaccination.Date, &vaccination.CreatedAt, &vaccination.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return vaccination, nil
}

// Update updates an existing vaccination record
func (r *VaccinationRepository) Update(vaccination *models.Vaccination) error {
	query := `
		UPDATE vaccinations SET
			person_id = ?, vaccine_id = ?, date = ?, updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query, vaccination.PersonID, vaccination.VaccineID,
		vaccination.Date, vaccination.UpdatedAt, vaccination.ID)
	return err
}

// Delete deletes a vaccination by ID
func (r *VaccinationRepository) Delete(id string) error {
	query := `DELETE FROM vaccinations WHERE id = ?`
	_, err := r.db.Exec(query, id)
	return err
}

// GetAll retrieves all vaccination records
func (r *VaccinationRepository) GetAll() ([]*models.Vaccination, error) {
	query := `
		SELECT id, person_id, vaccine_id, date, created_at, updated_at
		FROM vaccinations ORDER BY date, created_at
	`

	return r.queryMany(query)
}

// FindByPersonID retrieves a person's vaccinations across all vaccines,
// oldest dose first. Same-date doses keep creation order.
func (r *VaccinationRepository) FindByPersonID(personID string) ([]*models.Vaccination, error) {
	query := `
		SELECT id, person_id, vaccine_id, date, created_at, updated_at
		FROM vaccinations WHERE person_id = ?
		ORDER BY date, created_at
	`

	return r.queryMany(query, personID)
}

func (r *VaccinationRepository) queryMany(query string, args ...interface{}) ([]*models.Vaccination, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vaccinations []*models.Vaccination
	for rows.Next() {
		vaccination := &models.Vaccination{}
		err := rows.Scan(
			&vaccination.ID, &vaccination.PersonID, &vaccination.VaccineID,
			&vaccination.Date, &vaccination.CreatedAt, &vaccination.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		vaccinations = append(vaccinations, vaccination)
	}

	return vaccinations, rows.Err()
}
