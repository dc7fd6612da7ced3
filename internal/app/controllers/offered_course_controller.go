package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tanvir/campushub/internal/app/models/dto"
	"github.com/tanvir/campushub/internal/app/services"
	"github.com/tanvir/campushub/internal/middleware"
)

// OfferedCourseController handles offered course endpoints
type OfferedCourseController struct {
	offeredCourseService services.OfferedCourseService
}

// NewOfferedCourseController creates a new OfferedCourseController
func NewOfferedCourseController(offeredCourseService services.OfferedCourseService) *OfferedCourseController {
	return &OfferedCourseController{offeredCourseService: offeredCourseService}
}

// Create handles offering a course section
// @Summary Offer a course section
// @Tags offered-courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateOfferedCourseRequest true "Offered course information"
// @Success 201 {object} dto.APIResponse{data=models.OfferedCourse}
// @Failure 400 {object} dto.APIResponse "Validation failed or department mismatch"
// @Failure 404 {object} dto.APIResponse "A referenced entity was not found"
// @Failure 409 {object} dto.APIResponse "Duplicate section or faculty schedule conflict"
// @Router /offered-courses [post]
func (c *OfferedCourseController) Create(ctx *gin.Context) {
	var req dto.CreateOfferedCourseRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	oc, err := c.offeredCourseService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(oc, "Offered course created successfully"))
}

// GetAll handles listing offered courses
// @Summary List offered courses
// @Tags offered-courses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /offered-courses [get]
func (c *OfferedCourseController) GetAll(ctx *gin.Context) {
	courses, meta, err := c.offeredCourseService.GetAll(ctx, ctx.Request.URL.Query())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewListResponse(courses, meta, "Offered courses retrieved successfully"))
}

// GetByID handles fetching a single offered course
// @Summary Get an offered course by id
// @Tags offered-courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Offered course ID"
// @Success 200 {object} dto.APIResponse{data=models.OfferedCourse}
// @Failure 404 {object} dto.APIResponse "Offered course not found"
// @Router /offered-courses/{id} [get]
func (c *OfferedCourseController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	oc, err := c.offeredCourseService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(oc, "Offered course retrieved successfully"))
}

// Update handles rescheduling an offered course
// @Summary Update an offered course schedule
// @Tags offered-courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Offered course ID"
// @Param request body dto.UpdateOfferedCourseRequest true "New faculty and schedule"
// @Success 200 {object} dto.APIResponse{data=models.OfferedCourse}
// @Failure 400 {object} dto.APIResponse "Registration is not UPCOMING"
// @Failure 404 {object} dto.APIResponse "Offered course or faculty not found"
// @Failure 409 {object} dto.APIResponse "Faculty schedule conflict"
// @Router /offered-courses/{id} [patch]
func (c *OfferedCourseController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateOfferedCourseRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	oc, err := c.offeredCourseService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(oc, "Offered course updated successfully"))
}

// Delete handles removing an offered course
// @Summary Delete an offered course
// @Tags offered-courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Offered course ID"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse "Registration is not UPCOMING"
// @Failure 404 {object} dto.APIResponse "Offered course not found"
// @Router /offered-courses/{id} [delete]
func (c *OfferedCourseController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.offeredCourseService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Offered course deleted successfully"))
}
