package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const cardSheet = "Vaccination Card"

// ExportService renders a person's vaccination card as an Excel workbook:
// one row per administered dose, with the vaccine name resolved from the
// catalog.
type ExportService struct {
	personService      *PersonService
	vaccineService     *VaccineService
	vaccinationService *VaccinationService
}

func NewExportService(personService *PersonService, vaccineService *VaccineService, vaccinationService *VaccinationService) *ExportService {
	return &ExportService{
		personService:      personService,
		vaccineService:     vaccineService,
		vaccinationService: vaccinationService,
	}
}

// BuildCard builds the workbook for the given person. Fails with NotFound
// when the person does not exist.
func (s *ExportService) BuildCard(personID string) (*excelize.File, error) {
	person, err := s.personService.GetByID(personID)
	if err != nil {
		return nil, err
	}

	vaccinations, err := s.vaccinationService.FindByPersonID(personID)
	if err != nil {
		return nil, err
	}

	vaccines, err := s.vaccineService.GetAll()
	if err != nil {
		return nil, err
	}
	namesByID := make(map[string]string, len(vaccines))
	for _, vaccine := range vaccines {
		namesByID[vaccine.ID] = vaccine.Name
	}

	f := excelize.NewFile()
	index, err := f.NewSheet(cardSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	f.SetCellValue(cardSheet, "A1", "Name")
	f.SetCellValue(cardSheet, "B1", person.Name)
	f.SetCellValue(cardSheet, "A2", "Age")
	f.SetCellValue(cardSheet, "B2", person.Age)
	f.SetCellValue(cardSheet, "A3", "Sex")
	f.SetCellValue(cardSheet, "B3", string(person.Sex))

	f.SetCellValue(cardSheet, "A5", "Vaccine")
	f.SetCellValue(cardSheet, "B5", "Dose")
	f.SetCellValue(cardSheet, "C5", "Date")

	// Doses arrive date-ordered; number them per vaccine as they appear.
	doseNumbers := make(map[string]int)
	row := 6
	for _, vaccination := range vaccinations {
		doseNumbers[vaccination.VaccineID]++

		name, ok := namesByID[vaccination.VaccineID]
		if !ok {
			name = vaccination.VaccineID
		}

		f.SetCellValue(cardSheet, fmt.Sprintf("A%d", row), name)
		f.SetCellValue(cardSheet, fmt.Sprintf("B%d", row), doseNumbers[vaccination.VaccineID])
		f.SetCellValue(cardSheet, fmt.Sprintf("C%d", row), vaccination.Date.DayMonthYear())
		row++
	}

	f.SetColWidth(cardSheet, "A", "C", 22)

	return f, nil
}
