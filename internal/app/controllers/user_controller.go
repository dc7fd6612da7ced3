package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tanvir/campushub/internal/app/models/dto"
	"github.com/tanvir/campushub/internal/app/services"
	"github.com/tanvir/campushub/internal/middleware"
)

// UserController handles account provisioning endpoints
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// CreateStudent handles provisioning a student account with its profile
// @Summary Create a student account
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Student account information"
// @Success 201 {object} dto.APIResponse{data=models.Student}
// @Failure 404 {object} dto.APIResponse "Admission semester or department not found"
// @Router /users/create-student [post]
func (c *UserController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	student, err := c.userService.CreateStudent(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(student, "Student created successfully"))
}

// CreateFaculty handles provisioning a faculty account with its profile
// @Summary Create a faculty account
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFacultyRequest true "Faculty account information"
// @Success 201 {object} dto.APIResponse{data=models.Faculty}
// @Failure 404 {object} dto.APIResponse "Academic department not found"
// @Router /users/create-faculty [post]
func (c *UserController) CreateFaculty(ctx *gin.Context) {
	var req dto.CreateFacultyRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	faculty, err := c.userService.CreateFaculty(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(faculty, "Faculty created successfully"))
}

// GetMe returns the caller's own profile
// @Summary Get the authenticated user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Profile not found"
// @Router /users/me [get]
func (c *UserController) GetMe(ctx *gin.Context) {
	userID, ok := middleware.CallerID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}
	role, _ := middleware.CallerRole(ctx)

	profile, err := c.userService.GetMe(ctx, userID, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile, "Profile retrieved successfully"))
}

// ChangeStatus blocks or unblocks an account
// @Summary Change a user's status
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body dto.ChangeUserStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.User}
// @Failure 404 {object} dto.APIResponse "User not found"
// @Router /users/{id}/status [patch]
func (c *UserController) ChangeStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.ChangeUserStatusRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	user, err := c.userService.ChangeStatus(ctx, id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(user, "User status updated successfully"))
}
