package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tanvir/campushub/internal/app/models/dto"
	"github.com/tanvir/campushub/internal/app/services"
	"github.com/tanvir/campushub/internal/middleware"
)

// AcademicFacultyController handles academic faculty endpoints
type AcademicFacultyController struct {
	facultyService services.AcademicFacultyService
}

// NewAcademicFacultyController creates a new AcademicFacultyController
func NewAcademicFacultyController(facultyService services.AcademicFacultyService) *AcademicFacultyController {
	return &AcademicFacultyController{facultyService: facultyService}
}

// Create handles academic faculty creation
// @Summary Create an academic faculty
// @Tags academic-faculties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAcademicFacultyRequest true "Faculty information"
// @Success 201 {object} dto.APIResponse{data=models.AcademicFaculty}
// @Failure 409 {object} dto.APIResponse "Faculty already exists"
// @Router /academic-faculties [post]
func (c *AcademicFacultyController) Create(ctx *gin.Context) {
	var req dto.CreateAcademicFacultyRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	faculty, err := c.facultyService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(faculty, "Academic faculty created successfully"))
}

// GetAll handles listing academic faculties
// @Summary List academic faculties
// @Tags academic-faculties
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /academic-faculties [get]
func (c *AcademicFacultyController) GetAll(ctx *gin.Context) {
	faculties, meta, err := c.facultyService.GetAll(ctx, ctx.Request.URL.Query())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewListResponse(faculties, meta, "Academic faculties retrieved successfully"))
}

// GetByID handles fetching a single academic faculty
// @Summary Get an academic faculty by id
// @Tags academic-faculties
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=models.AcademicFaculty}
// @Failure 404 {object} dto.APIResponse "Faculty not found"
// @Router /academic-faculties/{id} [get]
func (c *AcademicFacultyController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	faculty, err := c.facultyService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(faculty, "Academic faculty retrieved successfully"))
}

// Update handles renaming an academic faculty
// @Summary Update an academic faculty
// @Tags academic-faculties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Param request body dto.UpdateAcademicFacultyRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.AcademicFaculty}
// @Failure 404 {object} dto.APIResponse "Faculty not found"
// @Router /academic-faculties/{id} [patch]
func (c *AcademicFacultyController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateAcademicFacultyRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	faculty, err := c.facultyService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(faculty, "Academic faculty updated successfully"))
}
