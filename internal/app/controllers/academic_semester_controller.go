package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tanvir/campushub/internal/app/models/dto"
	"github.com/tanvir/campushub/internal/app/services"
	"github.com/tanvir/campushub/internal/middleware"
)

// AcademicSemesterController handles academic semester endpoints
type AcademicSemesterController struct {
	semesterService services.AcademicSemesterService
}

// NewAcademicSemesterController creates a new AcademicSemesterController
func NewAcademicSemesterController(semesterService services.AcademicSemesterService) *AcademicSemesterController {
	return &AcademicSemesterController{semesterService: semesterService}
}

// Create handles academic semester creation
// @Summary Create an academic semester
// @Tags academic-semesters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAcademicSemesterRequest true "Semester information"
// @Success 201 {object} dto.APIResponse{data=models.AcademicSemester}
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Failure 406 {object} dto.APIResponse "Code does not match semester name"
// @Failure 409 {object} dto.APIResponse "Semester already exists"
// @Router /academic-semesters [post]
func (c *AcademicSemesterController) Create(ctx *gin.Context) {
	var req dto.CreateAcademicSemesterRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	semester, err := c.semesterService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(semester, "Academic semester created successfully"))
}

// GetAll handles listing academic semesters
// @Summary List academic semesters
// @Tags academic-semesters
// @Produce json
// @Security BearerAuth
// @Param searchTerm query string false "Case-insensitive search"
// @Param sort query string false "Comma-separated sort fields, - prefix for descending"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param fields query string false "Comma-separated projection fields"
// @Success 200 {object} dto.APIResponse
// @Router /academic-semesters [get]
func (c *AcademicSemesterController) GetAll(ctx *gin.Context) {
	semesters, meta, err := c.semesterService.GetAll(ctx, ctx.Request.URL.Query())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewListResponse(semesters, meta, "Academic semesters retrieved successfully"))
}

// GetByID handles fetching a single academic semester
// @Summary Get an academic semester by id
// @Tags academic-semesters
// @Produce json
// @Security BearerAuth
// @Param id path int true "Semester ID"
// @Success 200 {object} dto.APIResponse{data=models.AcademicSemester}
// @Failure 404 {object} dto.APIResponse "Semester not found"
// @Router /academic-semesters/{id} [get]
func (c *AcademicSemesterController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	semester, err := c.semesterService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(semester, "Academic semester retrieved successfully"))
}

// Update handles a partial academic semester update
// @Summary Update an academic semester
// @Tags academic-semesters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Semester ID"
// @Param request body dto.UpdateAcademicSemesterRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.AcademicSemester}
// @Failure 404 {object} dto.APIResponse "Semester not found"
// @Failure 406 {object} dto.APIResponse "Code does not match semester name"
// @Router /academic-semesters/{id} [patch]
func (c *AcademicSemesterController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateAcademicSemesterRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	semester, err := c.semesterService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(semester, "Academic semester updated successfully"))
}
