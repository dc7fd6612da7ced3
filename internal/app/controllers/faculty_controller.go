package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tanvir/campushub/internal/app/models/dto"
	"github.com/tanvir/campushub/internal/app/services"
	"github.com/tanvir/campushub/internal/middleware"
)

// FacultyController handles faculty member profile endpoints
type FacultyController struct {
	facultyService services.FacultyService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService services.FacultyService) *FacultyController {
	return &FacultyController{facultyService: facultyService}
}

// GetAll handles listing faculty members
// @Summary List faculty members
// @Tags faculties
// @Produce json
// @Security BearerAuth
// @Param searchTerm query string false "Case-insensitive search over code, name and email"
// @Success 200 {object} dto.APIResponse
// @Router /faculties [get]
func (c *FacultyController) GetAll(ctx *gin.Context) {
	faculties, meta, err := c.facultyService.GetAll(ctx, ctx.Request.URL.Query())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewListResponse(faculties, meta, "Faculty members retrieved successfully"))
}

// GetByID handles fetching a single faculty member
// @Summary Get a faculty member by id
// @Tags faculties
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=models.Faculty}
// @Failure 404 {object} dto.APIResponse "Faculty not found"
// @Router /faculties/{id} [get]
func (c *FacultyController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	faculty, err := c.facultyService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(faculty, "Faculty member retrieved successfully"))
}

// Update handles a partial faculty profile update
// @Summary Update a faculty member
// @Tags faculties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Param request body dto.UpdateFacultyRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Faculty}
// @Failure 404 {object} dto.APIResponse "Faculty not found"
// @Router /faculties/{id} [patch]
func (c *FacultyController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateFacultyRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	faculty, err := c.facultyService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(faculty, "Faculty member updated successfully"))
}

// Delete handles soft-deleting a faculty member and their account
// @Summary Delete a faculty member
// @Tags faculties
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Faculty not found"
// @Router /faculties/{id} [delete]
func (c *FacultyController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.facultyService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Faculty member deleted successfully"))
}
