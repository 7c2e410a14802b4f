package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
)

// DoctorHandler answers availability questions about one doctor.
type DoctorHandler struct {
	check *ucAppointment.CheckAvailability
	slots *ucAppointment.ListFreeSlots
}

func NewDoctorHandler(
	check *ucAppointment.CheckAvailability,
	slots *ucAppointment.ListFreeSlots,
) *DoctorHandler {
	return &DoctorHandler{check: check, slots: slots}
}

func (h *DoctorHandler) Slots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		badRequest(c, "date is required")
		return
	}

	slots, err := h.slots.Execute(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"doctor_id": c.Param("id"),
		"date":      date,
		"slots":     slots,
	})
}

func (h *DoctorHandler) Availability(c *gin.Context) {
	res, err := h.check.Execute(c.Request.Context(), c.Param("id"), c.Query("date"), c.Query("time"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
