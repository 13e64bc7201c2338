package models

// DoseRecord is one administered dose inside a person's history view.
type DoseRecord struct {
	VaccinationID string `json:"vaccination_id"`
	Date          Date   `json:"date"`
}

// VaccineHistory groups a person's administered doses for a single vaccine.
type VaccineHistory struct {
	VaccineID string       `json:"vaccine_id"`
	DoseCount int          `json:"dose_count"`
	History   []DoseRecord `json:"history"`
}
