package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tanvir/campushub/internal/app/controllers"
	"github.com/tanvir/campushub/internal/app/models"
	"github.com/tanvir/campushub/internal/middleware"
	"github.com/tanvir/campushub/internal/pkg/auth"
)

// Controllers groups every controller the router mounts
type Controllers struct {
	Auth                 *controllers.AuthController
	User                 *controllers.UserController
	AcademicSemester     *controllers.AcademicSemesterController
	AcademicFaculty      *controllers.AcademicFacultyController
	AcademicDepartment   *controllers.AcademicDepartmentController
	Course               *controllers.CourseController
	SemesterRegistration *controllers.SemesterRegistrationController
	OfferedCourse        *controllers.OfferedCourseController
	Student              *controllers.StudentController
	Faculty              *controllers.FacultyController
}

// SetupRoutes mounts every endpoint under /api/v1 with its role gate
func SetupRoutes(router *gin.Engine, c *Controllers, jwtService *auth.JWTService) {
	v1 := router.Group("/api/v1")

	authed := middleware.JWTAuth(jwtService)
	adminOnly := middleware.RoleRequired(models.RoleAdmin)
	staffOnly := middleware.RoleRequired(models.RoleAdmin, models.RoleFaculty)
	anyRole := middleware.RoleRequired(models.RoleAdmin, models.RoleFaculty, models.RoleStudent)

	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/login", c.Auth.Login)
		authGroup.POST("/refresh-token", c.Auth.RefreshToken)
		authGroup.POST("/change-password", authed, anyRole, c.Auth.ChangePassword)
		authGroup.POST("/logout", authed, anyRole, c.Auth.Logout)
	}

	users := v1.Group("/users", authed)
	{
		users.POST("/create-student", adminOnly, c.User.CreateStudent)
		users.POST("/create-faculty", adminOnly, c.User.CreateFaculty)
		users.GET("/me", anyRole, c.User.GetMe)
		users.PATCH("/:id/status", adminOnly, c.User.ChangeStatus)
	}

	semesters := v1.Group("/academic-semesters", authed)
	{
		semesters.POST("", adminOnly, c.AcademicSemester.Create)
		semesters.GET("", anyRole, c.AcademicSemester.GetAll)
		semesters.GET("/:id", anyRole, c.AcademicSemester.GetByID)
		semesters.PATCH("/:id", adminOnly, c.AcademicSemester.Update)
	}

	academicFaculties := v1.Group("/academic-faculties", authed)
	{
		academicFaculties.POST("", adminOnly, c.AcademicFaculty.Create)
		academicFaculties.GET("", anyRole, c.AcademicFaculty.GetAll)
		academicFaculties.GET("/:id", anyRole, c.AcademicFaculty.GetByID)
		academicFaculties.PATCH("/:id", adminOnly, c.AcademicFaculty.Update)
	}

	departments := v1.Group("/academic-departments", authed)
	{
		departments.POST("", adminOnly, c.AcademicDepartment.Create)
		departments.GET("", anyRole, c.AcademicDepartment.GetAll)
		departments.GET("/:id", anyRole, c.AcademicDepartment.GetByID)
		departments.PATCH("/:id", adminOnly, c.AcademicDepartment.Update)
	}

	coursesGroup := v1.Group("/courses", authed)
	{
		coursesGroup.POST("", adminOnly, c.Course.Create)
		coursesGroup.GET("", anyRole, c.Course.GetAll)
		coursesGroup.GET("/:id", anyRole, c.Course.GetByID)
		coursesGroup.PATCH("/:id", adminOnly, c.Course.Update)
		coursesGroup.DELETE("/:id", adminOnly, c.Course.Delete)
	}

	registrations := v1.Group("/semester-registrations", authed)
	{
		registrations.POST("", adminOnly, c.SemesterRegistration.Create)
		registrations.GET("", anyRole, c.SemesterRegistration.GetAll)
		registrations.GET("/:id", anyRole, c.SemesterRegistration.GetByID)
		registrations.PATCH("/:id", adminOnly, c.SemesterRegistration.Update)
	}

	offered := v1.Group("/offered-courses", authed)
	{
		offered.POST("", adminOnly, c.OfferedCourse.Create)
		offered.GET("", anyRole, c.OfferedCourse.GetAll)
		offered.GET("/:id", anyRole, c.OfferedCourse.GetByID)
		offered.PATCH("/:id", adminOnly, c.OfferedCourse.Update)
		offered.DELETE("/:id", adminOnly, c.OfferedCourse.Delete)
	}

	students := v1.Group("/students", authed)
	{
		students.GET("", staffOnly, c.Student.GetAll)
		students.GET("/:id", staffOnly, c.Student.GetByID)
		students.PATCH("/:id", adminOnly, c.Student.Update)
		students.DELETE("/:id", adminOnly, c.Student.Delete)
	}

	faculties := v1.Group("/faculties", authed)
	{
		faculties.GET("", staffOnly, c.Faculty.GetAll)
		faculties.GET("/:id", staffOnly, c.Faculty.GetByID)
		faculties.PATCH("/:id", adminOnly, c.Faculty.Update)
		faculties.DELETE("/:id", adminOnly, c.Faculty.Delete)
	}
}
