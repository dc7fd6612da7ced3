package middleware

import (
	"net/http"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/tanvir/campushub/internal/app/models/dto"
)

var validate = validator.New()

var timeOfDayPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

func init() {
	// Report field names by their json tag so error paths match the payload
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterValidation("timeofday", func(fl validator.FieldLevel) bool {
		return timeOfDayPattern.MatchString(fl.Field().String())
	})
}

// BindAndValidate binds the JSON body into obj and runs struct validation.
// On failure it writes the 400 envelope and returns false; the handler
// should return immediately.
func BindAndValidate(ctx *gin.Context, obj interface{}) bool {
	if err := ctx.ShouldBindJSON(obj); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body",
			dto.ErrorDoc{Path: "body", Message: err.Error()}))
		return false
	}

	if err := validate.Struct(obj); err != nil {
		var docs []dto.ErrorDoc
		if fieldErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range fieldErrors {
				docs = append(docs, dto.ErrorDoc{
					Path:    fe.Field(),
					Message: validationMessage(fe),
				})
			}
		}
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Validation failed", docs...))
		return false
	}
	return true
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "timeofday":
		return fe.Field() + " must be in HH:mm format"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	case "min":
		return fe.Field() + " must have at least " + fe.Param() + " items or characters"
	case "max":
		return fe.Field() + " must have at most " + fe.Param() + " items or characters"
	case "gt":
		return fe.Field() + " must be greater than " + fe.Param()
	case "lte":
		return fe.Field() + " must be at most " + fe.Param()
	case "len":
		return fe.Field() + " must be exactly " + fe.Param() + " characters"
	case "numeric":
		return fe.Field() + " must be numeric"
	default:
		return fe.Field() + " is invalid"
	}
}
