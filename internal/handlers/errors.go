package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

var statusByCode = httperr.StatusTable{
	domain.CodeValidation:  http.StatusBadRequest,
	domain.CodeStartInPast: http.StatusBadRequest,

	domain.CodeOutOfHours: http.StatusUnprocessableEntity,

	domain.CodeConflict:         http.StatusConflict,
	domain.CodeAlreadyCancelled: http.StatusConflict,
	domain.CodeInvalidState:     http.StatusConflict,

	domain.CodeNotFound:            http.StatusNotFound,
	catalog.CodeBranchNotFound:     http.StatusNotFound,
	catalog.CodeDepartmentNotFound: http.StatusNotFound,
	catalog.CodeDoctorNotFound:     http.StatusNotFound,
}

// writeError maps a use case error to its HTTP response.
func writeError(c *gin.Context, err error) {
	statusByCode.Respond(c, err)
}

func badRequest(c *gin.Context, message string) {
	httperr.BadRequest(c, domain.CodeValidation, message)
}

func appointmentID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		badRequest(c, "appointment id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}
