package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tanvir/campushub/internal/app/models/dto"
	"github.com/tanvir/campushub/internal/app/services"
	"github.com/tanvir/campushub/internal/middleware"
)

// SemesterRegistrationController handles registration window endpoints
type SemesterRegistrationController struct {
	registrationService services.SemesterRegistrationService
}

// NewSemesterRegistrationController creates a new SemesterRegistrationController
func NewSemesterRegistrationController(registrationService services.SemesterRegistrationService) *SemesterRegistrationController {
	return &SemesterRegistrationController{registrationService: registrationService}
}

// Create handles opening a registration window
// @Summary Create a semester registration
// @Tags semester-registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSemesterRegistrationRequest true "Registration information"
// @Success 201 {object} dto.APIResponse{data=models.SemesterRegistration}
// @Failure 404 {object} dto.APIResponse "Academic semester not found"
// @Failure 409 {object} dto.APIResponse "A registration is already open"
// @Router /semester-registrations [post]
func (c *SemesterRegistrationController) Create(ctx *gin.Context) {
	var req dto.CreateSemesterRegistrationRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	reg, err := c.registrationService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(reg, "Semester registration created successfully"))
}

// GetAll handles listing semester registrations
// @Summary List semester registrations
// @Tags semester-registrations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /semester-registrations [get]
func (c *SemesterRegistrationController) GetAll(ctx *gin.Context) {
	regs, meta, err := c.registrationService.GetAll(ctx, ctx.Request.URL.Query())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewListResponse(regs, meta, "Semester registrations retrieved successfully"))
}

// GetByID handles fetching a registration with its semester
// @Summary Get a semester registration by id
// @Tags semester-registrations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Registration ID"
// @Success 200 {object} dto.APIResponse{data=models.SemesterRegistration}
// @Failure 404 {object} dto.APIResponse "Registration not found"
// @Router /semester-registrations/{id} [get]
func (c *SemesterRegistrationController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	reg, err := c.registrationService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(reg, "Semester registration retrieved successfully"))
}

// Update handles a partial registration update
// @Summary Update a semester registration
// @Tags semester-registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Registration ID"
// @Param request body dto.UpdateSemesterRegistrationRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.SemesterRegistration}
// @Failure 400 {object} dto.APIResponse "Registration ended or invalid status transition"
// @Failure 404 {object} dto.APIResponse "Registration not found"
// @Router /semester-registrations/{id} [patch]
func (c *SemesterRegistrationController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateSemesterRegistrationRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	reg, err := c.registrationService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(reg, "Semester registration updated successfully"))
}
