package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tanvir/campushub/internal/app/models/dto"
)

// parseIDParam reads the :id path parameter. On failure it writes the 400
// envelope and returns false.
func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid id parameter",
			dto.ErrorDoc{Path: "id", Message: "id must be a positive number"}))
		return 0, false
	}
	return id, true
}
