package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasalopess/carteira-vacinacao/internal/models"
	"github.com/lucasalopess/carteira-vacinacao/internal/repositories"
)

func newVaccineService() *VaccineService {
	return NewVaccineService(repositories.NewMemoryVaccineRepository())
}

func TestVaccineCreate(t *testing.T) {
	testCases := []struct {
		name    string
		vaccine *models.Vaccine
		wantErr string
	}{
		{
			name:    "valid non-recurring vaccine",
			vaccine: models.NewVaccine("Hepatitis B", 0, 1, false, intPtr(3), false, nil),
		},
		{
			name:    "valid recurring vaccine without dose count",
			vaccine: models.NewVaccine("Influenza", 6, 12, true, nil, false, nil),
		},
		{
			name:    "valid vaccine with boosters",
			vaccine: models.NewVaccine("Tetanus", 0, 6, false, intPtr(3), true, intPtr(2)),
		},
		{
			name:    "non-recurring without dose count",
			vaccine: models.NewVaccine("Hepatitis B", 0, 1, false, nil, false, nil),
			wantErr: "non-recurring vaccines must have a dose count greater than zero",
		},
		{
			name:    "non-recurring with zero dose count",
			vaccine: models.NewVaccine("Hepatitis B", 0, 1, false, intPtr(0), false, nil),
			wantErr: "non-recurring vaccines must have a dose count greater than zero",
		},
		{
			name:    "booster flag without booster count",
			vaccine: models.NewVaccine("Tetanus", 0, 6, false, intPtr(3), true, nil),
			wantErr: "vaccines with booster doses must have a booster count greater than zero",
		},
		{
			name:    "booster flag with zero booster count",
			vaccine: models.NewVaccine("Tetanus", 0, 6, false, intPtr(3), true, intPtr(0)),
			wantErr: "vaccines with booster doses must have a booster count greater than zero",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service := newVaccineService()

			created, err := service.Create(tc.vaccine)

			if tc.wantErr != "" {
				require.Error(t, err)
				assert.True(t, models.IsConflict(err))
				assert.EqualError(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.vaccine, created)

			stored, err := service.GetByID(tc.vaccine.ID)
			require.NoError(t, err)
			assert.Equal(t, tc.vaccine.Name, stored.Name)
		})
	}
}

func TestVaccineRoundTrip(t *testing.T) {
	service := newVaccineService()

	vaccine := models.NewVaccine("Tetanus", 7, 6, false, intPtr(3), true, intPtr(2))
	created, err := service.Create(vaccine)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	stored, err := service.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tetanus", stored.Name)
	assert.Equal(t, 7, stored.MinimumAge)
	assert.Equal(t, 6, stored.IntervalMonths)
	assert.False(t, stored.Recurring)
	require.NotNil(t, stored.DoseCount)
	assert.Equal(t, 3, *stored.DoseCount)
	assert.True(t, stored.HasBooster)
	require.NotNil(t, stored.BoosterCount)
	assert.Equal(t, 2, *stored.BoosterCount)
}

func TestVaccineUpdate(t *testing.T) {
	service := newVaccineService()

	vaccine := models.NewVaccine("Hepatitis B", 0, 1, false, intPtr(3), false, nil)
	_, err := service.Create(vaccine)
	require.NoError(t, err)

	updated, err := service.Update(vaccine.ID, models.NewVaccine("Hepatitis B", 0, 2, false, intPtr(4), false, nil))
	require.NoError(t, err)
	assert.Equal(t, vaccine.ID, updated.ID)
	assert.Equal(t, 2, updated.IntervalMonths)
	assert.Equal(t, 4, *updated.DoseCount)
}

// The creation invariant is deliberately not re-checked on update.
func TestVaccineUpdateSkipsInvariant(t *testing.T) {
	service := newVaccineService()

	vaccine := models.NewVaccine("Hepatitis B", 0, 1, false, intPtr(3), false, nil)
	_, err := service.Create(vaccine)
	require.NoError(t, err)

	_, err = service.Update(vaccine.ID, models.NewVaccine("Hepatitis B", 0, 1, false, nil, false, nil))
	assert.NoError(t, err)
}

func TestVaccineNotFound(t *testing.T) {
	service := newVaccineService()

	_, err := service.GetByID("missing")
	assert.True(t, models.IsNotFound(err))
	assert.EqualError(t, err, "vaccine not found with id: missing")

	_, err = service.Update("missing", models.NewVaccine("X", 0, 0, true, nil, false, nil))
	assert.True(t, models.IsNotFound(err))

	err = service.Delete("missing")
	assert.True(t, models.IsNotFound(err))
}

func TestVaccineGetAll(t *testing.T) {
	service := newVaccineService()

	_, err := service.Create(models.NewVaccine("Tetanus", 0, 6, false, intPtr(3), true, intPtr(2)))
	require.NoError(t, err)
	_, err = service.Create(models.NewVaccine("Hepatitis B", 0, 1, false, intPtr(3), false, nil))
	require.NoError(t, err)

	vaccines, err := service.GetAll()
	require.NoError(t, err)
	assert.Len(t, vaccines, 2)
}
