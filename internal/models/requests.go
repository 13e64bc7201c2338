package models

// Request payloads for the JSON API. Numeric and boolean fields that accept
// zero values are pointers so `required` can tell "absent" from "zero".

// PersonRequest is the payload for creating or updating a person.
type PersonRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
	Age  *int   `json:"age" binding:"required,gte=0,lte=120"`
	Sex  Sex    `json:"sex" binding:"required,oneof=male female"`
}

// ToPerson builds a new Person from the request.
func (r *PersonRequest) ToPerson() *Person {
	return NewPerson(r.Name, *r.Age, r.Sex)
}

// VaccineRequest is the payload for creating or updating a vaccine schedule.
type VaccineRequest struct {
	Name           string `json:"name" binding:"required,min=1,max=100"`
	MinimumAge     *int   `json:"minimum_age" binding:"required,gte=0"`
	IntervalMonths *int   `json:"interval_months" binding:"required,gte=0"`
	Recurring      *bool  `json:"recurring" binding:"required"`
	DoseCount      *int   `json:"dose_count"`
	HasBooster     *bool  `json:"has_booster" binding:"required"`
	BoosterCount   *int   `json:"booster_count"`
}

// ToVaccine builds a new Vaccine from the request. The schedule invariants
// are checked by the service, not here.
func (r *VaccineRequest) ToVaccine() *Vaccine {
	return NewVaccine(r.Name, *r.MinimumAge, *r.IntervalMonths, *r.Recurring,
		r.DoseCount, *r.HasBooster, r.BoosterCount)
}

// VaccinationRequest is the payload for registering or updating a dose.
type VaccinationRequest struct {
	PersonID  string `json:"person_id" binding:"required"`
	VaccineID string `json:"vaccine_id" binding:"required"`
	Date      Date   `json:"date" binding:"required"`
}

// ToVaccination builds a new Vaccination from the request.
func (r *VaccinationRequest) ToVaccination() *Vaccination {
	return NewVaccination(r.PersonID, r.VaccineID, r.Date)
}
