package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lucasalopess/carteira-vacinacao/internal/models"
	"github.com/lucasalopess/carteira-vacinacao/internal/services"
)

type VaccineHandler struct {
	vaccineService *services.VaccineService
}

func NewVaccineHandler(vaccineService *services.VaccineService) *VaccineHandler {
	return &VaccineHandler{vaccineService: vaccineService}
}

// CreateVaccine adds a vaccine schedule to the catalog
func (h *VaccineHandler) CreateVaccine(c *gin.Context) {
	var request models.VaccineRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request data: " + err.Error()})
		return
	}

	vaccine, err := h.vaccineService.Create(request.ToVaccine())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, vaccine)
}

// GetVaccine returns a single vaccine by id
func (h *VaccineHandler) GetVaccine(c *gin.Context) {
	vaccine, err := h.vaccineService.GetByID(c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, vaccine)
}

// ListVaccines returns the full vaccine catalog
func (h *VaccineHandler) ListVaccines(c *gin.Context) {
	vaccines, err := h.vaccineService.GetAll()
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, vaccines)
}

// UpdateVaccine replaces a vaccine's schedule fields
func (h *VaccineHandler) UpdateVaccine(c *gin.Context) {
	var request models.VaccineRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request data: " + err.Error()})
		return
	}

	vaccine, err := h.vaccineService.Update(c.Param("id"), request.ToVaccine())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, vaccine)
}

// DeleteVaccine removes a vaccine from the catalog
func (h *VaccineHandler) DeleteVaccine(c *gin.Context) {
	if err := h.vaccineService.Delete(c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
