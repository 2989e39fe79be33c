// internal/api/handlers/companies.go
package handlers

import (
	"net/http"

	"talenthub/internal/services"
	"talenthub/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// CompanyHandler holds dependencies for company page operations.
type CompanyHandler struct {
	service   services.CompanyService
	validator *validator.Validate
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(service services.CompanyService, validate *validator.Validate) *CompanyHandler {
	return &CompanyHandler{service: service, validator: validate}
}

// Create godoc
// @Summary      Create a company page
// @Description  Recruiters only.
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        company body dto.CreateCompanyRequest true "Company details"
// @Success      201 {object}  models.Company
// @Failure      403 {object}  map[string]string
// @Router       /companies [post]
// @Security     BearerAuth
func (h *CompanyHandler) Create(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	company, err := h.service.Create(c.Request.Context(), actor, &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, company)
}

// Get godoc
// @Summary      Get a company page by ID
// @Tags         companies
// @Produce      json
// @Param        id path int true "Company ID"
// @Success      200 {object}  models.Company
// @Failure      404 {object}  map[string]string
// @Router       /companies/{id} [get]
// @Security     BearerAuth
func (h *CompanyHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	company, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

// List godoc
// @Summary      List company pages
// @Tags         companies
// @Produce      json
// @Param        limit  query int false "Page size"   default(20)
// @Param        offset query int false "Page offset" default(0)
// @Success      200 {array}  models.Company
// @Router       /companies [get]
// @Security     BearerAuth
func (h *CompanyHandler) List(c *gin.Context) {
	limit, offset := parsePagination(c, 20)

	companies, err := h.service.List(c.Request.Context(), limit, offset)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

// Update godoc
// @Summary      Update a company page
// @Description  Owner or admin only.
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id path int true "Company ID"
// @Param        company body dto.UpdateCompanyRequest true "Fields to update"
// @Success      200 {object}  models.Company
// @Failure      403 {object}  map[string]string
// @Router       /companies/{id} [patch]
// @Security     BearerAuth
func (h *CompanyHandler) Update(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = id
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	company, err := h.service.Update(c.Request.Context(), actor, &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

// Delete godoc
// @Summary      Delete a company page
// @Tags         companies
// @Param        id path int true "Company ID"
// @Success      204
// @Failure      403 {object}  map[string]string
// @Router       /companies/{id} [delete]
// @Security     BearerAuth
func (h *CompanyHandler) Delete(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), actor, id); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
