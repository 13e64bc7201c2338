package repositories

import (
	"database/sql"

	"github.com/lucasalopess/carteira-vacinacao/internal/models"
)

type VaccineRepository struct {
	db *sql.DB
}

func NewVaccineRepository(db *sql.DB) *VaccineRepository {
	return &VaccineRepository{db: db}
}

// Create creates a new vaccine schedule
func (r *VaccineRepository) Create(vaccine *models.Vaccine) error {
	query := `
		INSERT INTO vaccines (
			id, name, minimum_age, interval_months, recurring,
			dose_count, has_booster, booster_count, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query, vaccine.ID, vaccine.Name, vaccine.MinimumAge,
		vaccine.IntervalMonths, vaccine.Recurring, vaccine.DoseCount,
		vaccine.HasBooster, vaccine.BoosterCount, vaccine.CreatedAt, vaccine.UpdatedAt)
	return err
}

// GetByID retrieves a vaccine by ID
func (r *VaccineRepository) GetByID(id string) (*models.Vaccine, error) {
	query := `
		SELECT id, name, minimum_age, interval_months, recurring,
			dose_count, has_booster, booster_count, created_at, updated_at
		FROM vaccines WHERE id = ?
	`

	vaccine := &models.Vaccine{}
	err := r.db.QueryRow(query, id).Scan(
		&vaccine.ID, &vaccine.Name, &vaccine.MinimumAge, &vaccine.IntervalMonths,
		&vaccine.Recurring, &vaccine.DoseCount, &vaccine.HasBooster,
		&vaccine.BoosterCount, &vaccine.CreatedAt, &vaccine.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return vaccine, nil
}

// Update updates an existing vaccine schedule
func (r *VaccineRepository) Update(vaccine *models.Vaccine) error {
	query := `
		UPDATE vaccines SET
			name = ?, minimum_age = ?, interval_months = ?, recurring = ?,
			dose_count = ?, has_booster = ?, booster_count = ?, updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query, vaccine.Name, vaccine.MinimumAge,
		vaccine.IntervalMonths, vaccine.Recurring, vaccine.DoseCount,
		vaccine.HasBooster, vaccine.BoosterCount, vaccine.UpdatedAt, vaccine.ID)
	return err
}

// Delete deletes a vaccine by ID
func (r *VaccineRepository) Delete(id string) error {
	query := `DELETE FROM vaccines WHERE id = ?`
	_, err := r.db.Exec(query, id)
	return err
}

// GetAll retrieves the full vaccine catalog ordered by name
func (r *VaccineRepository) GetAll() ([]*models.Vaccine, error) {
	query := `
		SELECT id, name, minimum_age, interval_months, recurring,
			dose_count, has_booster, booster_count, created_at, updated_at
		FROM vaccines ORDER BY name
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vaccines []*models.Vaccine
	for rows.Next() {
		vaccine := &models.Vaccine{}
		err := rows.Scan(
			&vaccine.ID, &vaccine.Name, &vaccine.MinimumAge, &vaccine.IntervalMonths,
			&vaccine.Recurring, &vaccine.DoseCount, &vaccine.HasBooster,
			&vaccine.BoosterCount, &vaccine.CreatedAt, &vaccine.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		vaccines = append(vaccines, vaccine)
	}

	return vaccines, rows.Err()
}
