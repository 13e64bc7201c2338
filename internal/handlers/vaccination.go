package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lucasalopess/carteira-vacinacao/internal/models"
	"github.com/lucasalopess/carteira-vacinacao/internal/services"
)

type VaccinationHandler struct {
	vaccinationService *services.VaccinationService
}

func NewVaccinationHandler(vaccinationService *services.VaccinationService) *VaccinationHandler {
	return &VaccinationHandler{vaccinationService: vaccinationService}
}

// RegisterVaccination records an administered dose after the eligibility checks
func (h *VaccinationHandler) RegisterVaccination(c *gin.Context) {
	var request models.VaccinationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request data: " + err.Error()})
		return
	}

	vaccination, err := h.vaccinationService.Create(request.ToVaccination())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, vaccination)
}

// GetVaccination returns a single vaccination record by id
func (h *VaccinationHandler) GetVaccination(c *gin.Context) {
	vaccination, err := h.vaccinationService.GetByID(c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, vaccination)
}

// ListVaccinations returns every vaccination record
func (h *VaccinationHandler) ListVaccinations(c *gin.Context) {
	vaccinations, err := h.vaccinationService.GetAll()
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, vaccinations)
}

// UpdateVaccination replaces a vaccination record's fields
func (h *VaccinationHandler) UpdateVaccination(c *gin.Context) {
	var request models.VaccinationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request data: " + err.Error()})
		return
	}

	vaccination, err := h.vaccinationService.Update(c.Param("id"), request.ToVaccination())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, vaccination)
}

// DeleteVaccination removes a vaccination record
func (h *VaccinationHandler) DeleteVaccination(c *gin.Context) {
	if err := h.vaccinationService.Delete(c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// PersonHistory returns a person's doses grouped by vaccine
func (h *VaccinationHandler) PersonHistory(c *gin.Context) {
	history, err := h.vaccinationService.HistoryByPersonID(c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	if history == nil {
		history = []*models.VaccineHistory{}
	}
	c.JSON(http.StatusOK, history)
}

// PersonOverdue returns the vaccines the person has fallen behind on
func (h *VaccinationHandler) PersonOverdue(c *gin.Context) {
	overdue, err := h.vaccinationService.FindOverdueByPersonID(c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, overdue)
}
