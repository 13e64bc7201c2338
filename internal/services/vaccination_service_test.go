package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasalopess/carteira-vacinacao/internal/models"
	"github.com/lucasalopess/carteira-vacinacao/internal/repositories"
)

type engineFixture struct {
	engine          *VaccinationService
	personService   *PersonService
	vaccineService  *VaccineService
	vaccinationRepo *repositories.MemoryVaccinationRepository
}

func newEngineFixture() *engineFixture {
	personService := NewPersonService(repositories.NewMemoryPersonRepository())
	vaccineService := NewVaccineService(repositories.NewMemoryVaccineRepository())
	vaccinationRepo := repositories.NewMemoryVaccinationRepository()

	return &engineFixture{
		engine:          NewVaccinationService(vaccinationRepo, personService, vaccineService),
		personService:   personService,
		vaccineService:  vaccineService,
		vaccinationRepo: vaccinationRepo,
	}
}

func (f *engineFixture) addPerson(t *testing.T, name string, age int) *models.Person {
	t.Helper()
	person, err := f.personService.Create(models.NewPerson(name, age, models.SexMale))
	require.NoError(t, err)
	return person
}

func (f *engineFixture) addVaccine(t *testing.T, vaccine *models.Vaccine) *models.Vaccine {
	t.Helper()
	created, err := f.vaccineService.Create(vaccine)
	require.NoError(t, err)
	return created
}

func (f *engineFixture) addDose(t *testing.T, personID, vaccineID string, date models.Date) *models.Vaccination {
	t.Helper()
	dose := models.NewVaccination(personID, vaccineID, date)
	require.NoError(t, f.vaccinationRepo.Create(dose))
	return dose
}

func intPtr(n int) *int {
	return &n
}

func monthsAgo(n int) models.Date {
	return models.Today().AddMonths(-n)
}

func TestRegisterFirstDose(t *testing.T) {
	f := newEngineFixture()
	person := f.addPerson(t, "John Smith", 30)
	vaccine := f.addVaccine(t, models.NewVaccine("Hepatitis B", 0, 1, false, intPtr(3), false, nil))

	dose := models.NewVaccination(person.ID, vaccine.ID, models.Today())
	result, err := f.engine.Create(dose)

	require.NoError(t, err)
	assert.Equal(t, dose, result)

	stored, err := f.vaccinationRepo.FindByPersonID(person.ID)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestRegisterRejectsWhenDoseCapReached(t *testing.T) {
	f := newEngineFixture()
	person := f.addPerson(t, "John Smith", 30)
	vaccine := f.addVaccine(t, models.NewVaccine("Hepatitis B", 0, 1, false, intPtr(2), false, nil))

	f.addDose(t, person.ID, vaccine.ID, monthsAgo(3))
	f.addDose(t, person.ID, vaccine.ID, monthsAgo(2))

	_, err := f.engine.Create(models.NewVaccination(person.ID, vaccine.ID, models.Today()))

	require.Error(t, err)
	assert.True(t, models.IsConflict(err))
	assert.EqualError(t, err, "vaccine Hepatitis B only allows 2 doses")

	stored, _ := f.vaccinationRepo.FindByPersonID(person.ID)
	assert.Len(t, stored, 2, "no record should be appended on rejection")
}

func TestRegisterRejectsWithinMinimumInterval(t *testing.T) {
	f := newEngineFixture()
	person := f.addPerson(t, "John Smith", 30)
	vaccine := f.addVaccine(t, models.NewVaccine("Hepatitis B", 0, 6, false, intPtr(3), false, nil))

	last := monthsAgo(2)
	f.addDose(t, person.ID, vaccine.ID, last)

	_, err := f.engine.Create(models.NewVaccination(person.ID, vaccine.ID, models.Today()))

	require.Error(t, err)
	assert.True(t, models.IsConflict(err))
	expected := fmt.Sprintf("next dose of vaccine Hepatitis B can only be administered from %s",
		last.AddMonths(6).DayMonthYear())
	assert.EqualError(t, err, expected)
}

func TestRegisterAcceptsOnceIntervalElapsed(t *testing.T) {
	f := newEngineFixture()
	person := f.addPerson(t, "John Smith", 30)
	vaccine := f.addVaccine(t, models.NewVaccine("Hepatitis B", 0, 6, false, intPtr(3), false, nil))

	last := monthsAgo(7)
	f.addDose(t, person.ID, vaccine.ID, last)

	_, err := f.engine.Create(models.NewVaccination(person.ID, vaccine.ID, models.Today()))
	require.NoError(t, err)

	// The exact eligibility date is also accepted.
	f2 := newEngineFixture()
	person2 := f2.addPerson(t, "Jane Smith", 30)
	vaccine2 := f2.addVaccine(t, models.NewVaccine("Hepatitis B", 0, 6, false, intPtr(3), false, nil))
	prior := monthsAgo(6)
	f2.addDose(t, person2.ID, vaccine2.ID, prior)

	_, err = f2.engine.Create(models.NewVaccination(person2.ID, vaccine2.ID, prior.AddMonths(6)))
	require.NoError(t, err)
}

func TestRegisterUnknownPerson(t *testing.T) {
	f := newEngineFixture()
	vaccine := f.addVaccine(t, models.NewVaccine("Hepatitis B", 0, 1, false, intPtr(3), false, nil))

	_, err := f.engine.Create(models.NewVaccination("missing-person", vaccine.ID, models.Today()))

	require.Error(t, err)
	assert.True(t, models.IsNotFound(err))
	assert.EqualError(t, err, "person not found with id: missing-person")
}

func TestRegisterUnknownVaccine(t *testing.T) {
	f := newEngineFixture()
	person := f.addPerson(t, "John Smith", 30)

	_, err := f.engine.Create(models.NewVaccination(person.ID, "missing-vaccine", models.Today()))

	require.Error(t, err)
	assert.True(t, models.IsNotFound(err))
	assert.EqualError(t, err, "vaccine not found with id: missing-vaccine")
}

func TestRegisterAllowsBoosterDosesBeyondPrimarySeries(t *testing.T) {
	f := newEngineFixture()
	person := f.addPerson(t, "John Smith", 30)
	vaccine := f.addVaccine(t, models.NewVaccine("Tetanus", 0, 6, false, intPtr(3), true, intPtr(2)))

	for _, months := range []int{36, 30, 24, 18} {
		f.addDose(t, person.ID, vaccine.ID, monthsAgo(months))
	}

	// Fifth dose is the second booster; still inside the 3+2 cap.
	_, err := f.engine.Create(models.NewVaccination(person.ID, vaccine.ID, models.Today()))
	require.NoError(t, err)

	// Sixth exceeds it.
	_, err = f.engine.Create(models.NewVaccination(person.ID, vaccine.ID, models.Today().AddMonths(7)))
	require.Error(t, err)
	assert.EqualError(t, err, "vaccine Tetanus only allows 5 doses")
}

func TestRegisterRecurringVaccineHasNoDoseCap(t *testing.T) {
	f := newEngineFixture()
	person := f.addPerson(t, "John Smith", 30)
	vaccine := f.addVaccine(t, models.NewVaccine("Influenza", 0, 12, true, nil, false, nil))

	for _, months := range []int{60, 48, 36, 24, 13} {
		f.addDose(t, person.ID, vaccine.ID, monthsAgo(months))
	}

	_, err := f.engine.Create(models.NewVaccination(person.ID, vaccine.ID, models.Today()))
	require.NoError(t, err)
}

func TestDoseCountCheckPrecedesIntervalCheck(t *testing.T) {
	f := newEngineFixture()
	person := f.addPerson(t, "John Smith", 30)
	vaccine := f.addVaccine(t, models.NewVaccine("Hepatitis B", 0, 6, false, intPtr(2), false, nil))

	// Both checks would fail here; the dose cap must win.
	f.addDose(t, person.ID, vaccine.ID, monthsAgo(2))
	f.addDose(t, person.ID, vaccine.ID, monthsAgo(1))

	_, err := f.engine.Create(models.NewVaccination(person.ID, vaccine.ID, models.Today()))

	require.Error(t, err)
	assert.EqualError(t, err, "vaccine Hepatitis B only allows 2 doses")
}

func TestOverdueIncludesVaccineNeverTaken(t *testing.T) {
	f := newEngineFixture()
	person := f.addPerson(t, "John Smith", 30)
	vaccine := f.addVaccine(t, models.NewVaccine("Hepatitis B", 0, 1, false, intPtr(3), false, nil))

	overdue, err := f.engine.FindOverdueByPersonID(person.ID)

	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, vaccine.ID, overdue[0].ID)
}

func TestOverdueExcludesVaccineBelowMinimumAge(t *testing.T) {
	f := newEngineFixture()
	person := f.addPerson(t, "Baby", 1)
	f.addVaccine(t, models.NewVaccine("HPV", 9, 6, false, intPtr(2), false, nil))

	overdue, err := f.engine.FindOverdueByPersonID(person.ID)

	require.NoError(t, err)
	assert.Empty(t, overdue)
}

func TestOverdueExcludesCompletedSeries(t *testing.T) {
	f := newEngineFixture()
	person := f.addPerson(t, "John Smith", 30)
	vaccine := f.addVaccine(t, models.NewVaccine("Hepatitis B", 0, 1, false, intPtr(2), false, nil))

	f.addDose(t, person.ID, vaccine.ID, monthsAgo(6))
	f.addDose(t, person.ID, vaccine.ID, monthsAgo(5))

	overdue, err := f.engine.FindOverdueByPersonID(person.ID)

	require.NoError(t, err)
	assert.Empty(t, overdue)
}

func TestOverdueExcludesSeriesCompletedByBoosters(t *testing.T) {
	f := newEngineFixture()
	person := f.addPerson(t, "John Smith", 30)
	vaccine := f.addVaccine(t, models.NewVaccine("Tetanus", 0, 6, false, intPtr(2), true, intPtr(1)))

	f.addDose(t, person.ID, vaccine.ID, monthsAgo(20))
	f.addDose(t, person.ID, vaccine.ID, monthsAgo(14))
	f.addDose(t, person.ID, vaccine.ID, monthsAgo(8))

	overdue, err := f.engine.FindOverdueByPersonID(person.ID)

	require.NoError(t, err)
	assert.Empty(t, overdue)
}

func TestOverdueIncludesVaccineWhenIntervalElapsed(t *testing.T) {
	f := newEngineFixture()
	person := f.addPerson(t, "John Smith", 30)
	vaccine := f.addVaccine(t, models.NewVaccine("Hepatitis B", 0, 1, false, intPtr(3), false, nil))

	f.addDose(t, person.ID, vaccine.ID, monthsAgo(3))

	overdue, err := f.engine.FindOverdueByPersonID(person.ID)

	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, vaccine.ID, overdue[0].ID)
}

func TestOverdueExcludesVaccineNotYetDue(t *testing.T) {
	f := newEngineFixture()
	person := f.addPerson(t, "John Smith", 30)
	vaccine := f.addVaccine(t, models.NewVaccine("Hepatitis B", 0, 6, false, intPtr(3), false, nil))

	f.addDose(t, person.ID, vaccine.ID, monthsAgo(2))

	overdue, err := f.engine.FindOverdueByPersonID(person.ID)

	require.NoError(t, err)
	assert.Empty(t, overdue)
}

func TestOverdueRecurringVaccineUsesIntervalOnly(t *testing.T) {
	f := newEngineFixture()
	person := f.addPerson(t, "John Smith", 30)
	vaccine := f.addVaccine(t, models.NewVaccine("Influenza", 0, 12, true, nil, false, nil))

	// Many doses taken, but the last one is past the interval.
	for _, months := range []int{40, 27, 14} {
		f.addDose(t, person.ID, vaccine.ID, monthsAgo(months))
	}

	overdue, err := f.engine.FindOverdueByPersonID(person.ID)

	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, vaccine.ID, overdue[0].ID)
}

func TestOverdueUnknownPerson(t *testing.T) {
	f := newEngineFixture()

	_, err := f.engine.FindOverdueByPersonID("missing-person")

	require.Error(t, err)
	assert.True(t, models.IsNotFound(err))
}

func TestHistoryGroupsDosesByVaccine(t *testing.T) {
	f := newEngineFixture()
	person := f.addPerson(t, "John Smith", 30)
	hepB := f.addVaccine(t, models.NewVaccine("Hepatitis B", 0, 1, false, intPtr(3), false, nil))
	flu := f.addVaccine(t, models.NewVaccine("Influenza", 0, 12, true, nil, false, nil))

	first := f.addDose(t, person.ID, hepB.ID, monthsAgo(6))
	second := f.addDose(t, person.ID, hepB.ID, monthsAgo(4))
	fluDose := f.addDose(t, person.ID, flu.ID, monthsAgo(5))

	history, err := f.engine.HistoryByPersonID(person.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)

	byVaccine := make(map[string]*models.VaccineHistory)
	for _, group := range history {
		byVaccine[group.VaccineID] = group
	}

	hepBGroup := byVaccine[hepB.ID]
	require.NotNil(t, hepBGroup)
	assert.Equal(t, 2, hepBGroup.DoseCount)
	require.Len(t, hepBGroup.History, 2)
	assert.Equal(t, first.ID, hepBGroup.History[0].VaccinationID)
	assert.Equal(t, second.ID, hepBGroup.History[1].VaccinationID)

	fluGroup := byVaccine[flu.ID]
	require.NotNil(t, fluGroup)
	assert.Equal(t, 1, fluGroup.DoseCount)
	assert.Equal(t, fluDose.ID, fluGroup.History[0].VaccinationID)
}

func TestVaccinationCRUDNotFound(t *testing.T) {
	f := newEngineFixture()

	_, err := f.engine.GetByID("missing")
	assert.True(t, models.IsNotFound(err))
	assert.EqualError(t, err, "vaccination not found with id: missing")

	_, err = f.engine.Update("missing", models.NewVaccination("p", "v", models.Today()))
	assert.True(t, models.IsNotFound(err))

	err = f.engine.Delete("missing")
	assert.True(t, models.IsNotFound(err))
}

func TestVaccinationUpdateAndDelete(t *testing.T) {
	f := newEngineFixture()
	person := f.addPerson(t, "John Smith", 30)
	vaccine := f.addVaccine(t, models.NewVaccine("Hepatitis B", 0, 1, false, intPtr(3), false, nil))
	dose := f.addDose(t, person.ID, vaccine.ID, monthsAgo(10))

	newDate := monthsAgo(9)
	updated, err := f.engine.Update(dose.ID, models.NewVaccination(person.ID, vaccine.ID, newDate))
	require.NoError(t, err)
	assert.Equal(t, dose.ID, updated.ID)
	assert.Equal(t, newDate.String(), updated.Date.String())

	require.NoError(t, f.engine.Delete(dose.ID))
	_, err = f.engine.GetByID(dose.ID)
	assert.True(t, models.IsNotFound(err))
}
