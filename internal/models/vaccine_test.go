package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(n int) *int {
	return &n
}

func TestVaccineTotalDoses(t *testing.T) {
	testCases := []struct {
		name    string
		vaccine *Vaccine
		want    int
	}{
		{
			name:    "primary series only",
			vaccine: NewVaccine("Hepatitis B", 0, 1, false, intPtr(3), false, nil),
			want:    3,
		},
		{
			name:    "primary series plus boosters",
			vaccine: NewVaccine("Tetanus", 0, 6, false, intPtr(3), true, intPtr(2)),
			want:    5,
		},
		{
			name:    "booster count ignored when flag is off",
			vaccine: NewVaccine("Odd", 0, 1, false, intPtr(2), false, intPtr(9)),
			want:    2,
		},
		{
			name:    "recurring with no counts",
			vaccine: NewVaccine("Influenza", 0, 12, true, nil, false, nil),
			want:    0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.vaccine.TotalDoses())
		})
	}
}

func TestVaccineValidate(t *testing.T) {
	valid := NewVaccine("Tetanus", 0, 6, false, intPtr(3), true, intPtr(2))
	assert.NoError(t, valid.Validate())

	noDoses := NewVaccine("Hepatitis B", 0, 1, false, nil, false, nil)
	assert.Error(t, noDoses.Validate())

	noBoosters := NewVaccine("Tetanus", 0, 6, false, intPtr(3), true, nil)
	assert.Error(t, noBoosters.Validate())

	recurring := NewVaccine("Influenza", 0, 12, true, nil, false, nil)
	assert.NoError(t, recurring.Validate())
}

func TestSexLabels(t *testing.T) {
	assert.Equal(t, []Sex{SexMale, SexFemale}, AllSexes())
	assert.True(t, SexMale.IsValid())
	assert.True(t, SexFemale.IsValid())
	assert.False(t, Sex("other").IsValid())
}
