package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lucasalopess/carteira-vacinacao/internal/models"
	"github.com/lucasalopess/carteira-vacinacao/internal/services"
)

type PersonHandler struct {
	personService *services.PersonService
	exportService *services.ExportService
}

func NewPersonHandler(personService *services.PersonService, exportService *services.ExportService) *PersonHandler {
	return &PersonHandler{
		personService: personService,
		exportService: exportService,
	}
}

// CreatePerson registers a new person
func (h *PersonHandler) CreatePerson(c *gin.Context) {
	var request models.PersonRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request data: " + err.Error()})
		return
	}

	person, err := h.personService.Create(request.ToPerson())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, person)
}

// GetPerson returns a single person by id
func (h *PersonHandler) GetPerson(c *gin.Context) {
	person, err := h.personService.GetByID(c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, person)
}

// ListPeople returns every registered person
func (h *PersonHandler) ListPeople(c *gin.Context) {
	people, err := h.personService.GetAll()
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, people)
}

// UpdatePerson replaces a person's name, age and sex
func (h *PersonHandler) UpdatePerson(c *gin.Context) {
	var request models.PersonRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request data: " + err.Error()})
		return
	}

	person, err := h.personService.Update(c.Param("id"), request.ToPerson())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, person)
}

// DeletePerson removes a person
func (h *PersonHandler) DeletePerson(c *gin.Context) {
	if err := h.personService.Delete(c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListSexes returns the sex enumeration labels for client-side choices
func (h *PersonHandler) ListSexes(c *gin.Context) {
	c.JSON(http.StatusOK, models.AllSexes())
}

// ExportCard streams the person's vaccination card as an xlsx attachment
func (h *PersonHandler) ExportCard(c *gin.Context) {
	id := c.Param("id")

	card, err := h.exportService.BuildCard(id)
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="vaccination-card-%s.xlsx"`, id))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := card.Write(c.Writer); err != nil {
		c.Error(err)
	}
}
