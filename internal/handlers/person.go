package handlers

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/codekeeper/codekeeper/internal/models"
	"github.com/codekeeper/codekeeper/internal/services"
	"github.com/codekeeper/codekeeper/pkg/logger"
	"github.com/gin-gonic/gin"
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

type personRequest struct {
	FirstName models.NullName `json:"first_name"`
	LastName  models.NullName `json:"last_name"`
}

type personResponse struct {
	*models.Person
	DisplayLabel string `json:"display_label"`
	FullName     string `json:"full_name"`
}

func newPersonResponse(person *models.Person) personResponse {
	return personResponse{
		Person:       person,
		DisplayLabel: person.DisplayLabel(),
		FullName:     person.FullName(),
	}
}

// CreatePerson creates a new person from a JSON body; both name fields
// are optional and may be null
func (h *PersonHandler) CreatePerson(c *gin.Context) {
	var req personRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	person, err := h.personService.CreatePerson(req.FirstName, req.LastName)
	if err != nil {
		if isConstraintError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name fields are limited to 256 characters"})
			return
		}
		logger.WithError(err).Error("Failed to create person")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create person"})
		return
	}

	c.JSON(http.StatusCreated, newPersonResponse(person))
}

// GetPerson retrieves a single person by ID
func (h *PersonHandler) GetPerson(c *gin.Context) {
	id := c.Param("id")

	person, err := h.personService.GetPersonByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Person not found"})
			return
		}
		logger.WithError(err).Error("Failed to get person")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get person"})
		return
	}

	c.JSON(http.StatusOK, newPersonResponse(person))
}

// ListPeople retrieves all people ordered by last name
func (h *PersonHandler) ListPeople(c *gin.Context) {
	people, err := h.personService.GetAllPeople()
	if err != nil {
		logger.WithError(err).Error("Failed to list people")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list people"})
		return
	}

	responses := make([]personResponse, 0, len(people))
	for _, person := range people {
		responses = append(responses, newPersonResponse(person))
	}

	c.JSON(http.StatusOK, responses)
}

// UpdatePerson replaces both name fields of an existing person
func (h *PersonHandler) UpdatePerson(c *gin.Context) {
	id := c.Param("id")

	var req personRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	person, err := h.personService.UpdatePersonNames(id, req.FirstName, req.LastName)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Person not found"})
			return
		}
		if isConstraintError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name fields are limited to 256 characters"})
			return
		}
		logger.WithError(err).Error("Failed to update person")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update person"})
		return
	}

	c.JSON(http.StatusOK, newPersonResponse(person))
}

// DeletePerson deletes a person by ID
func (h *PersonHandler) DeletePerson(c *gin.Context) {
	id := c.Param("id")

	if err := h.personService.DeletePerson(id); err != nil {
		logger.WithError(err).Error("Failed to delete person")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete person"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Person deleted"})
}

// ExportPeople streams the roster as an xlsx attachment
func (h *PersonHandler) ExportPeople(c *gin.Context) {
	workbook, err := h.exportService.BuildPeopleWorkbook()
	if err != nil {
		logger.WithError(err).Error("Failed to build people export")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export people"})
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="people.xlsx"`)
	if err := workbook.Write(c.Writer); err != nil {
		logger.WithError(err).Error("Failed to write people export")
	}
}

// isConstraintError reports whether err is a SQLite constraint violation,
// e.g. a name exceeding the column length check.
func isConstraintError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "constraint failed")
}
