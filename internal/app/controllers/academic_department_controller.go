package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tanvir/campushub/internal/app/models/dto"
	"github.com/tanvir/campushub/internal/app/services"
	"github.com/tanvir/campushub/internal/middleware"
)

// AcademicDepartmentController handles academic department endpoints
type AcademicDepartmentController struct {
	departmentService services.AcademicDepartmentService
}

// NewAcademicDepartmentController creates a new AcademicDepartmentController
func NewAcademicDepartmentController(departmentService services.AcademicDepartmentService) *AcademicDepartmentController {
	return &AcademicDepartmentController{departmentService: departmentService}
}

// Create handles academic department creation
// @Summary Create an academic department
// @Tags academic-departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAcademicDepartmentRequest true "Department information"
// @Success 201 {object} dto.APIResponse{data=models.AcademicDepartment}
// @Failure 404 {object} dto.APIResponse "Parent academic faculty not found"
// @Failure 409 {object} dto.APIResponse "Department already exists"
// @Router /academic-departments [post]
func (c *AcademicDepartmentController) Create(ctx *gin.Context) {
	var req dto.CreateAcademicDepartmentRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	dept, err := c.departmentService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dept, "Academic department created successfully"))
}

// GetAll handles listing academic departments
// @Summary List academic departments
// @Tags academic-departments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /academic-departments [get]
func (c *AcademicDepartmentController) GetAll(ctx *gin.Context) {
	departments, meta, err := c.departmentService.GetAll(ctx, ctx.Request.URL.Query())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewListResponse(departments, meta, "Academic departments retrieved successfully"))
}

// GetByID handles fetching a department with its parent faculty
// @Summary Get an academic department by id
// @Tags academic-departments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Success 200 {object} dto.APIResponse{data=models.AcademicDepartment}
// @Failure 404 {object} dto.APIResponse "Department not found"
// @Router /academic-departments/{id} [get]
func (c *AcademicDepartmentController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	dept, err := c.departmentService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dept, "Academic department retrieved successfully"))
}

// Update handles a partial academic department update
// @Summary Update an academic department
// @Tags academic-departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Param request body dto.UpdateAcademicDepartmentRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.AcademicDepartment}
// @Failure 404 {object} dto.APIResponse "Department not found"
// @Router /academic-departments/{id} [patch]
func (c *AcademicDepartmentController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateAcademicDepartmentRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	dept, err := c.departmentService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dept, "Academic department updated successfully"))
}
